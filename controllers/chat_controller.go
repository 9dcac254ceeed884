package controllers

import (
	"encoding/json"
	"log"
	"net/http"
	"strconv"

	"github.com/DilipRaja06/match-spot/services"
	"github.com/DilipRaja06/match-spot/utils"

	"github.com/gorilla/mux"
)

// ChatController handles the chat view and message sending
type ChatController struct {
	ChatService *services.ChatService
	Session     *services.SessionService
}

// NewChatController creates a new ChatController instance
func NewChatController(chatService *services.ChatService, session *services.SessionService) *ChatController {
	return &ChatController{ChatService: chatService, Session: session}
}

// HandleOpenChat selects a match as the active chat target
func (cc *ChatController) HandleOpenChat(w http.ResponseWriter, r *http.Request) {
	var request struct {
		UserID int `json:"userId"`
	}
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		http.Error(w, "Invalid request payload", http.StatusBadRequest)
		return
	}

	match, err := cc.Session.OpenChat(request.UserID)
	if err != nil {
		http.Error(w, err.Error(), statusForError(err))
		return
	}
	utils.WriteJSON(w, http.StatusOK, match)
}

// HandleCloseChat clears the active chat target
func (cc *ChatController) HandleCloseChat(w http.ResponseWriter, r *http.Request) {
	cc.Session.CloseChat()
	utils.WriteMessage(w, http.StatusOK, "Chat closed")
}

// HandleGetMessages returns the message sequence for a match
func (cc *ChatController) HandleGetMessages(w http.ResponseWriter, r *http.Request) {
	userID, err := strconv.Atoi(mux.Vars(r)["userId"])
	if err != nil {
		http.Error(w, "Invalid userId", http.StatusBadRequest)
		return
	}

	messages, err := cc.ChatService.Messages(userID)
	if err != nil {
		http.Error(w, err.Error(), statusForError(err))
		return
	}
	utils.WriteJSON(w, http.StatusOK, messages)
}

// HandleSendMessage appends the user's message and schedules the persona reply
func (cc *ChatController) HandleSendMessage(w http.ResponseWriter, r *http.Request) {
	var request struct {
		UserID int    `json:"userId"`
		Text   string `json:"text"`
	}
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		http.Error(w, "Invalid request payload", http.StatusBadRequest)
		return
	}

	userID := request.UserID
	if userID == 0 {
		userID = cc.Session.ActiveMatchID()
	}
	if userID == 0 {
		http.Error(w, "no active chat", http.StatusBadRequest)
		return
	}

	msg, err := cc.ChatService.SendMessage(userID, request.Text)
	if err != nil {
		log.Println("Error sending message:", err)
		http.Error(w, err.Error(), statusForError(err))
		return
	}
	utils.WriteJSON(w, http.StatusOK, msg)
}
