package routes

import (
	"github.com/DilipRaja06/match-spot/controllers"

	"github.com/gorilla/mux"
)

// RegisterRoutes sets up the stock routes for the application
func RegisterRoutes(r *mux.Router) {
	r.HandleFunc("/health", controllers.HealthCheckHandler).Methods("GET")
	r.HandleFunc("/welcome", controllers.WelcomeHandler).Methods("GET")
	r.HandleFunc("/", controllers.WelcomeHandler).Methods("GET")
}
