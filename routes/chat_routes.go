package routes

import (
	"github.com/DilipRaja06/match-spot/controllers"
	"github.com/DilipRaja06/match-spot/services"

	"github.com/gorilla/mux"
)

// RegisterChatRoutes sets up the chat view under /api/chat
func RegisterChatRoutes(r *mux.Router, chatService *services.ChatService, session *services.SessionService) {
	controller := controllers.NewChatController(chatService, session)

	chatRouter := r.PathPrefix("/api/chat").Subrouter()
	chatRouter.HandleFunc("/open", controller.HandleOpenChat).Methods("POST")
	chatRouter.HandleFunc("/close", controller.HandleCloseChat).Methods("POST")
	chatRouter.HandleFunc("/send", controller.HandleSendMessage).Methods("POST")
	chatRouter.HandleFunc("/{userId}/messages", controller.HandleGetMessages).Methods("GET")
}
