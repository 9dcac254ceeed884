package controllers

import (
	"log"
	"net/http"
	"strconv"

	"github.com/DilipRaja06/match-spot/services"
	"github.com/DilipRaja06/match-spot/utils"

	"github.com/gorilla/mux"
)

// MatchController serves the match collection and interaction refreshes
type MatchController struct {
	SwipeService *services.SwipeService
	Session      *services.SessionService
}

// NewMatchController creates a new MatchController instance
func NewMatchController(swipeService *services.SwipeService, session *services.SessionService) *MatchController {
	return &MatchController{SwipeService: swipeService, Session: session}
}

// HandleGetMatches returns all matches, most recent first
func (mc *MatchController) HandleGetMatches(w http.ResponseWriter, r *http.Request) {
	utils.WriteJSON(w, http.StatusOK, mc.Session.Matches())
}

// HandleGetLastMatch returns the match shown in the notification banner
func (mc *MatchController) HandleGetLastMatch(w http.ResponseWriter, r *http.Request) {
	match, ok := mc.Session.LastMatch()
	if !ok {
		http.Error(w, "no recent match", http.StatusNotFound)
		return
	}
	utils.WriteJSON(w, http.StatusOK, match)
}

// HandleDismissLastMatch clears the notification banner
func (mc *MatchController) HandleDismissLastMatch(w http.ResponseWriter, r *http.Request) {
	mc.Session.ClearLastMatch()
	utils.WriteMessage(w, http.StatusOK, "Notification dismissed")
}

// HandleRefreshInteraction regenerates the icebreaker for one match
func (mc *MatchController) HandleRefreshInteraction(w http.ResponseWriter, r *http.Request) {
	userID, err := strconv.Atoi(mux.Vars(r)["userId"])
	if err != nil {
		http.Error(w, "Invalid userId", http.StatusBadRequest)
		return
	}

	match, err := mc.SwipeService.RefreshInteraction(r.Context(), userID)
	if err != nil {
		log.Println("Error refreshing interaction:", err)
		http.Error(w, err.Error(), statusForError(err))
		return
	}
	utils.WriteJSON(w, http.StatusOK, match)
}
