package routes

import (
	"github.com/DilipRaja06/match-spot/controllers"
	"github.com/DilipRaja06/match-spot/services"

	"github.com/gorilla/mux"
)

// RegisterProfileRoutes sets up routes for the local user's profile under /api/profile
func RegisterProfileRoutes(r *mux.Router, profileService *services.ProfileService, session *services.SessionService) {
	controller := controllers.NewProfileController(profileService, session)

	profileRouter := r.PathPrefix("/api/profile").Subrouter()
	profileRouter.HandleFunc("/onboarding", controller.HandleOnboarding).Methods("POST")
	profileRouter.HandleFunc("/ghostmode", controller.HandleToggleGhostMode).Methods("POST")

	r.HandleFunc("/api/session", controller.HandleGetSession).Methods("GET")
}
