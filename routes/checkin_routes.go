package routes

import (
	"github.com/DilipRaja06/match-spot/controllers"
	"github.com/DilipRaja06/match-spot/services"

	"github.com/gorilla/mux"
)

// RegisterCheckinRoutes sets up the venue check-in flow under /api/checkin
func RegisterCheckinRoutes(r *mux.Router, checkinService *services.CheckinService, session *services.SessionService) {
	controller := controllers.NewCheckinController(checkinService, session)

	r.HandleFunc("/api/venues", controller.HandleListVenues).Methods("GET")

	checkinRouter := r.PathPrefix("/api/checkin").Subrouter()
	checkinRouter.HandleFunc("/venue", controller.HandleSelectVenue).Methods("POST")
	checkinRouter.HandleFunc("/selfie", controller.HandleConfirmSelfie).Methods("POST")
	checkinRouter.HandleFunc("/selfie/cancel", controller.HandleCancelSelfie).Methods("POST")
	checkinRouter.HandleFunc("/tags", controller.HandleCompleteQuestionnaire).Methods("POST")
	checkinRouter.HandleFunc("/leave", controller.HandleLeaveVenue).Methods("POST")
}
