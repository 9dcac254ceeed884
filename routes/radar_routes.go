package routes

import (
	"github.com/DilipRaja06/match-spot/controllers"
	"github.com/DilipRaja06/match-spot/services"

	"github.com/gorilla/mux"
)

// RegisterRadarRoutes sets up candidate browsing and swiping under /api/radar
func RegisterRadarRoutes(r *mux.Router, rankerService *services.RankerService, swipeService *services.SwipeService) {
	controller := controllers.NewRadarController(rankerService, swipeService)

	radarRouter := r.PathPrefix("/api/radar").Subrouter()
	radarRouter.HandleFunc("", controller.HandleGetCandidates).Methods("GET")
	radarRouter.HandleFunc("/swipe", controller.HandleSwipe).Methods("POST")
}
