package controllers

import (
	"encoding/json"
	"log"
	"net/http"

	"github.com/DilipRaja06/match-spot/services"
	"github.com/DilipRaja06/match-spot/utils"
)

// ProfileController handles the local user's own profile
type ProfileController struct {
	ProfileService *services.ProfileService
	Session        *services.SessionService
}

// NewProfileController creates a new ProfileController instance
func NewProfileController(profileService *services.ProfileService, session *services.SessionService) *ProfileController {
	return &ProfileController{ProfileService: profileService, Session: session}
}

// HandleOnboarding applies the intro form (name, age, bio)
func (pc *ProfileController) HandleOnboarding(w http.ResponseWriter, r *http.Request) {
	var request services.OnboardingInput
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		http.Error(w, "Invalid request payload", http.StatusBadRequest)
		return
	}

	user, err := pc.ProfileService.CompleteOnboarding(request)
	if err != nil {
		log.Println("Error completing onboarding:", err)
		http.Error(w, err.Error(), statusForError(err))
		return
	}
	utils.WriteJSON(w, http.StatusOK, user)
}

// HandleToggleGhostMode flips radar visibility
func (pc *ProfileController) HandleToggleGhostMode(w http.ResponseWriter, r *http.Request) {
	ghostMode := pc.ProfileService.ToggleGhostMode()
	utils.WriteJSON(w, http.StatusOK, map[string]bool{"ghostMode": ghostMode})
}

// HandleGetSession returns a summary of the current session
func (pc *ProfileController) HandleGetSession(w http.ResponseWriter, r *http.Request) {
	summary := map[string]interface{}{
		"checkinState": pc.Session.CheckinState(),
		"currentUser":  pc.Session.CurrentUser(),
		"ghostMode":    pc.Session.GhostMode(),
		"matchCount":   len(pc.Session.Matches()),
	}
	if venue, ok := pc.Session.CurrentVenue(); ok {
		summary["currentVenue"] = venue
	}
	utils.WriteJSON(w, http.StatusOK, summary)
}
