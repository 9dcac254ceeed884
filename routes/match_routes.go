package routes

import (
	"github.com/DilipRaja06/match-spot/controllers"
	"github.com/DilipRaja06/match-spot/services"

	"github.com/gorilla/mux"
)

// RegisterMatchRoutes sets up match listing and interaction refresh under /api/matches
func RegisterMatchRoutes(r *mux.Router, swipeService *services.SwipeService, session *services.SessionService) {
	controller := controllers.NewMatchController(swipeService, session)

	matchRouter := r.PathPrefix("/api/matches").Subrouter()
	matchRouter.HandleFunc("", controller.HandleGetMatches).Methods("GET")
	matchRouter.HandleFunc("/last", controller.HandleGetLastMatch).Methods("GET")
	matchRouter.HandleFunc("/last", controller.HandleDismissLastMatch).Methods("DELETE")
	matchRouter.HandleFunc("/{userId}/refresh", controller.HandleRefreshInteraction).Methods("POST")
}
