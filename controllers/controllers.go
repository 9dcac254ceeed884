package controllers

import (
	"errors"
	"net/http"

	"github.com/DilipRaja06/match-spot/services"
	"github.com/DilipRaja06/match-spot/utils"
)

// HealthCheckHandler reports service health
func HealthCheckHandler(w http.ResponseWriter, r *http.Request) {
	utils.WriteJSON(w, http.StatusOK, map[string]string{"status": "healthy"})
}

// WelcomeHandler greets API visitors
func WelcomeHandler(w http.ResponseWriter, r *http.Request) {
	utils.WriteMessage(w, http.StatusOK, "Welcome to MatchSpot")
}

// statusForError maps service errors to HTTP status codes.
func statusForError(err error) int {
	switch {
	case errors.Is(err, services.ErrUserNotFound),
		errors.Is(err, services.ErrVenueNotFound),
		errors.Is(err, services.ErrMatchNotFound):
		return http.StatusNotFound
	case errors.Is(err, services.ErrInvalidCheckinState):
		return http.StatusConflict
	default:
		return http.StatusBadRequest
	}
}
