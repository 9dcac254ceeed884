package routes

import (
	"github.com/DilipRaja06/match-spot/controllers"
	"github.com/DilipRaja06/match-spot/services"

	"github.com/gorilla/mux"
)

// RegisterModerationRoutes sets up block/report under /api/moderation
func RegisterModerationRoutes(r *mux.Router, moderationService *services.ModerationService) {
	controller := controllers.NewModerationController(moderationService)

	moderationRouter := r.PathPrefix("/api/moderation").Subrouter()
	moderationRouter.HandleFunc("/block", controller.HandleBlock).Methods("POST")
	moderationRouter.HandleFunc("/report", controller.HandleReport).Methods("POST")
}
