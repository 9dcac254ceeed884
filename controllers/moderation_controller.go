package controllers

import (
	"encoding/json"
	"log"
	"net/http"

	"github.com/DilipRaja06/match-spot/services"
	"github.com/DilipRaja06/match-spot/utils"
)

// ModerationController handles block and report requests
type ModerationController struct {
	ModerationService *services.ModerationService
}

// NewModerationController creates a new ModerationController instance
func NewModerationController(moderationService *services.ModerationService) *ModerationController {
	return &ModerationController{ModerationService: moderationService}
}

// HandleBlock blocks a user. The confirmed flag is the client-side yes/no
// gate; an unconfirmed request mutates nothing.
func (mc *ModerationController) HandleBlock(w http.ResponseWriter, r *http.Request) {
	var request struct {
		UserID    int  `json:"userId"`
		Confirmed bool `json:"confirmed"`
	}
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		http.Error(w, "Invalid request payload", http.StatusBadRequest)
		return
	}
	if request.UserID == 0 {
		http.Error(w, "userId is required", http.StatusBadRequest)
		return
	}
	if !request.Confirmed {
		http.Error(w, "block requires confirmation", http.StatusBadRequest)
		return
	}

	result, err := mc.ModerationService.Block(request.UserID)
	if err != nil {
		log.Println("Error blocking user:", err)
		http.Error(w, err.Error(), statusForError(err))
		return
	}
	utils.WriteJSON(w, http.StatusOK, result)
}

// HandleReport files a report with a free-text reason
func (mc *ModerationController) HandleReport(w http.ResponseWriter, r *http.Request) {
	var request struct {
		UserID int    `json:"userId"`
		Reason string `json:"reason"`
	}
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		http.Error(w, "Invalid request payload", http.StatusBadRequest)
		return
	}
	if request.UserID == 0 {
		http.Error(w, "userId is required", http.StatusBadRequest)
		return
	}

	report, err := mc.ModerationService.Report(request.UserID, request.Reason)
	if err != nil {
		log.Println("Error reporting user:", err)
		http.Error(w, err.Error(), statusForError(err))
		return
	}
	utils.WriteJSON(w, http.StatusOK, map[string]string{
		"message":  "Report submitted. Thank you for helping keep MatchSpot safe.",
		"reportId": report.ReportID,
	})
}
