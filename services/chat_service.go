package services

import (
	"context"
	"errors"
	"log"
	"strings"
	"time"

	"github.com/DilipRaja06/match-spot/models"

	"github.com/google/uuid"
)

var ErrEmptyMessage = errors.New("message text must not be empty")

// MessageBroadcaster pushes chat messages to the match's socket room.
type MessageBroadcaster interface {
	BroadcastNewMessage(matchUserID int, msg models.ChatMessage)
}

// ChatService appends user messages synchronously and schedules a simulated
// persona reply after a randomized "typing" delay. A reply that resolves
// after its match was destroyed is dropped via the session's chat generation.
type ChatService struct {
	Session       *SessionService
	Provider      InteractionProvider
	Random        *RandomSource
	ReplyDelayMin time.Duration
	ReplyDelayMax time.Duration
	Broadcaster   MessageBroadcaster
}

// SendMessage appends a self-authored message at the tail of the match's
// sequence and schedules one persona reply. Whitespace-only text is rejected
// with no state change. The reply timer never blocks this call.
func (cs *ChatService) SendMessage(userID int, text string) (models.ChatMessage, error) {
	if strings.TrimSpace(text) == "" {
		return models.ChatMessage{}, ErrEmptyMessage
	}

	match, ok := cs.Session.MatchByUserID(userID)
	if !ok {
		return models.ChatMessage{}, ErrMatchNotFound
	}

	msg := models.ChatMessage{
		MessageID: uuid.NewString(),
		Text:      text,
		Timestamp: time.Now().UTC(),
		IsSelf:    true,
	}
	if err := cs.Session.AppendSelfMessage(userID, msg); err != nil {
		return models.ChatMessage{}, err
	}
	if cs.Broadcaster != nil {
		cs.Broadcaster.BroadcastNewMessage(userID, msg)
	}

	cs.scheduleReply(match.User, text)
	return msg, nil
}

// scheduleReply arms a one-shot timer that fetches and appends the persona
// reply. The chat generation is captured now; delivery re-checks it so a
// block or venue switch in the meantime discards the result.
func (cs *ChatService) scheduleReply(persona models.User, lastMessage string) {
	gen := cs.Session.Generation(persona.ID)
	delay := cs.Random.DurationBetween(cs.ReplyDelayMin, cs.ReplyDelayMax)

	time.AfterFunc(delay, func() {
		cs.deliverReply(persona, lastMessage, gen)
	})
}

func (cs *ChatService) deliverReply(persona models.User, lastMessage string, gen int) {
	replyText := cs.Provider.GetChatReply(context.Background(), persona, lastMessage)

	reply := models.ChatMessage{
		MessageID: uuid.NewString(),
		Text:      replyText,
		Timestamp: time.Now().UTC(),
		IsSelf:    false,
	}
	if !cs.Session.AppendReply(persona.ID, reply, gen) {
		log.Printf("Dropping stale chat reply for user %d", persona.ID)
		return
	}
	if cs.Broadcaster != nil {
		cs.Broadcaster.BroadcastNewMessage(persona.ID, reply)
	}
}

// Messages returns the current message sequence for a match.
func (cs *ChatService) Messages(userID int) ([]models.ChatMessage, error) {
	match, ok := cs.Session.MatchByUserID(userID)
	if !ok {
		return nil, ErrMatchNotFound
	}
	return match.Messages, nil
}
