package controllers

import (
	"encoding/json"
	"log"
	"net/http"

	"github.com/DilipRaja06/match-spot/services"
	"github.com/DilipRaja06/match-spot/utils"
)

// RadarController serves the candidate pool and swipe decisions
type RadarController struct {
	RankerService *services.RankerService
	SwipeService  *services.SwipeService
}

// NewRadarController creates a new RadarController instance
func NewRadarController(rankerService *services.RankerService, swipeService *services.SwipeService) *RadarController {
	return &RadarController{RankerService: rankerService, SwipeService: swipeService}
}

// HandleGetCandidates returns the ranked swipeable profiles for the current venue
func (rc *RadarController) HandleGetCandidates(w http.ResponseWriter, r *http.Request) {
	utils.WriteJSON(w, http.StatusOK, rc.RankerService.Candidates())
}

// HandleSwipe processes a like/pass decision
func (rc *RadarController) HandleSwipe(w http.ResponseWriter, r *http.Request) {
	var request struct {
		UserID int    `json:"userId"`
		Action string `json:"action"`
	}
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		http.Error(w, "Invalid request payload", http.StatusBadRequest)
		return
	}
	if request.UserID == 0 || request.Action == "" {
		http.Error(w, "userId and action are required", http.StatusBadRequest)
		return
	}

	match, err := rc.SwipeService.Swipe(r.Context(), request.UserID, request.Action)
	if err != nil {
		log.Println("Error processing swipe:", err)
		http.Error(w, err.Error(), statusForError(err))
		return
	}

	response := map[string]interface{}{"matched": match != nil}
	if match != nil {
		response["match"] = match
	}
	utils.WriteJSON(w, http.StatusOK, response)
}
