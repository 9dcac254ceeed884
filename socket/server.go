package socket

import (
	"fmt"
	"log"
	"net/http"

	"github.com/DilipRaja06/match-spot/models"

	socketio "github.com/googollee/go-socket.io"
)

const radarRoom = "radar"

// Server wraps the Socket.IO server used to push chat messages and match
// events to the client. Chats live in per-match rooms; match notifications go
// to the shared radar room every connection joins.
type Server struct {
	io *socketio.Server
}

// NewServer initializes the Socket.IO server and its event handlers.
func NewServer() *Server {
	io := socketio.NewServer(nil)

	io.OnConnect("/", func(c socketio.Conn) error {
		log.Println("✅ Socket connected:", c.ID())
		c.Join(radarRoom)
		return nil
	})

	io.OnEvent("/", "join", func(c socketio.Conn, matchUserID int) {
		if matchUserID <= 0 {
			log.Println("❌ Invalid matchUserId in join request")
			return
		}
		log.Printf("👥 Socket %s joined chat for user %d\n", c.ID(), matchUserID)
		c.Join(matchRoom(matchUserID))
	})

	io.OnEvent("/", "leave", func(c socketio.Conn, matchUserID int) {
		c.Leave(matchRoom(matchUserID))
	})

	io.OnError("/", func(c socketio.Conn, err error) {
		log.Println("❌ Socket error:", err)
	})

	io.OnDisconnect("/", func(c socketio.Conn, reason string) {
		log.Println("❌ Socket disconnected:", c.ID(), reason)
	})

	return &Server{io: io}
}

func matchRoom(userID int) string {
	return fmt.Sprintf("match-%d", userID)
}

// BroadcastNewMessage pushes a chat message to the match's room.
func (s *Server) BroadcastNewMessage(matchUserID int, msg models.ChatMessage) {
	s.io.BroadcastToRoom("/", matchRoom(matchUserID), "newMessage", msg)
}

// BroadcastMatch announces a fresh match on the radar room.
func (s *Server) BroadcastMatch(match models.Match) {
	s.io.BroadcastToRoom("/", radarRoom, "matchFound", match)
}

// Handler exposes the server for mounting at /socket.io/.
func (s *Server) Handler() http.Handler {
	return s.io
}

// Serve runs the Socket.IO event loop until Close.
func (s *Server) Serve() error {
	return s.io.Serve()
}

// Close shuts the event loop down.
func (s *Server) Close() error {
	return s.io.Close()
}
