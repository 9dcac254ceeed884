package main

import (
	"log"
	"net/http"

	"github.com/DilipRaja06/match-spot/config"
	"github.com/DilipRaja06/match-spot/models"
	"github.com/DilipRaja06/match-spot/routes"
	"github.com/DilipRaja06/match-spot/services"
	"github.com/DilipRaja06/match-spot/socket"

	"github.com/gorilla/mux"
	"github.com/joho/godotenv"
	"github.com/rs/cors"
)

func main() {
	// Load .env if present; a missing file just means plain env vars
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Invalid configuration: ", err)
	}

	// Seed the single-session state
	log.Println("Seeding session state...")
	session := services.NewSessionService(models.SeedUsers(), models.SeedVenues())
	random := services.NewRandomSource()

	gemini := services.NewGeminiService(cfg.GeminiBaseURL, cfg.GeminiAPIKey, cfg.GeminiModel, cfg.GeminiTimeout, random)
	if cfg.GeminiAPIKey == "" {
		log.Println("⚠️ GEMINI_API_KEY not set; interactions will use fallback content")
	}

	// Socket.IO server for chat and match push
	socketServer := socket.NewServer()
	go func() {
		if err := socketServer.Serve(); err != nil {
			log.Fatal("Socket.IO server error: ", err)
		}
	}()
	defer socketServer.Close()

	// Initialize services
	rankerService := &services.RankerService{Session: session}
	swipeService := &services.SwipeService{
		Session:          session,
		Provider:         gemini,
		Random:           random,
		Coupons:          models.SeedCoupons(),
		MatchProbability: cfg.MatchProbability,
		Notifier:         socketServer,
	}
	chatService := &services.ChatService{
		Session:       session,
		Provider:      gemini,
		Random:        random,
		ReplyDelayMin: cfg.ReplyDelayMin,
		ReplyDelayMax: cfg.ReplyDelayMax,
		Broadcaster:   socketServer,
	}
	moderationService := &services.ModerationService{Session: session}
	profileService := services.NewProfileService(session)
	checkinService := &services.CheckinService{Session: session}

	// Initialize the router
	r := mux.NewRouter()

	// Register routes
	routes.RegisterRoutes(r)
	routes.RegisterProfileRoutes(r, profileService, session)
	routes.RegisterCheckinRoutes(r, checkinService, session)
	routes.RegisterRadarRoutes(r, rankerService, swipeService)
	routes.RegisterMatchRoutes(r, swipeService, session)
	routes.RegisterChatRoutes(r, chatService, session)
	routes.RegisterModerationRoutes(r, moderationService)
	r.Handle("/socket.io/", socketServer.Handler())

	// Add CORS middleware
	corsHandler := cors.New(cors.Options{
		AllowedOrigins:   []string{"*"}, // Adjust for specific domains if needed
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Content-Type", "Authorization"},
		AllowCredentials: true,
	}).Handler(r)

	// Start the HTTP server
	log.Printf("Starting server on port %s...\n", cfg.Port)
	log.Fatal(http.ListenAndServe(":"+cfg.Port, corsHandler))
}
