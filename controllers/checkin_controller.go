package controllers

import (
	"encoding/json"
	"log"
	"net/http"

	"github.com/DilipRaja06/match-spot/services"
	"github.com/DilipRaja06/match-spot/utils"
)

// CheckinController walks the venue check-in flow
type CheckinController struct {
	CheckinService *services.CheckinService
	Session        *services.SessionService
}

// NewCheckinController creates a new CheckinController instance
func NewCheckinController(checkinService *services.CheckinService, session *services.SessionService) *CheckinController {
	return &CheckinController{CheckinService: checkinService, Session: session}
}

// HandleListVenues returns the seed venue list
func (cc *CheckinController) HandleListVenues(w http.ResponseWriter, r *http.Request) {
	utils.WriteJSON(w, http.StatusOK, cc.Session.Venues())
}

// HandleSelectVenue starts a check-in
func (cc *CheckinController) HandleSelectVenue(w http.ResponseWriter, r *http.Request) {
	var request struct {
		VenueID int `json:"venueId"`
	}
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		http.Error(w, "Invalid request payload", http.StatusBadRequest)
		return
	}
	if request.VenueID == 0 {
		http.Error(w, "venueId is required", http.StatusBadRequest)
		return
	}

	venue, err := cc.CheckinService.SelectVenue(request.VenueID)
	if err != nil {
		log.Println("Error selecting venue:", err)
		http.Error(w, err.Error(), statusForError(err))
		return
	}
	utils.WriteJSON(w, http.StatusOK, venue)
}

// HandleConfirmSelfie stores the in-venue selfie
func (cc *CheckinController) HandleConfirmSelfie(w http.ResponseWriter, r *http.Request) {
	var request struct {
		ImageDataURL string `json:"imageDataUrl"`
	}
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		http.Error(w, "Invalid request payload", http.StatusBadRequest)
		return
	}

	if err := cc.CheckinService.ConfirmSelfie(request.ImageDataURL); err != nil {
		log.Println("Error confirming selfie:", err)
		http.Error(w, err.Error(), statusForError(err))
		return
	}
	utils.WriteMessage(w, http.StatusOK, "Selfie confirmed")
}

// HandleCancelSelfie backs out to venue selection
func (cc *CheckinController) HandleCancelSelfie(w http.ResponseWriter, r *http.Request) {
	if err := cc.CheckinService.CancelSelfie(); err != nil {
		http.Error(w, err.Error(), statusForError(err))
		return
	}
	utils.WriteMessage(w, http.StatusOK, "Selfie cancelled")
}

// HandleCompleteQuestionnaire finishes the check-in with preference tags
func (cc *CheckinController) HandleCompleteQuestionnaire(w http.ResponseWriter, r *http.Request) {
	var request struct {
		Tags []string `json:"tags"`
	}
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		http.Error(w, "Invalid request payload", http.StatusBadRequest)
		return
	}

	user, err := cc.CheckinService.CompleteQuestionnaire(request.Tags)
	if err != nil {
		log.Println("Error completing questionnaire:", err)
		http.Error(w, err.Error(), statusForError(err))
		return
	}
	utils.WriteJSON(w, http.StatusOK, user)
}

// HandleLeaveVenue returns the user to venue selection
func (cc *CheckinController) HandleLeaveVenue(w http.ResponseWriter, r *http.Request) {
	if err := cc.CheckinService.LeaveVenue(); err != nil {
		http.Error(w, err.Error(), statusForError(err))
		return
	}
	utils.WriteMessage(w, http.StatusOK, "Left venue")
}
