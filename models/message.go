package models

import "time"

// ChatMessage is one entry in a match's append-only message sequence
type ChatMessage struct {
	MessageID string    `json:"messageId"`
	Text      string    `json:"text"`
	Timestamp time.Time `json:"timestamp"`
	IsSelf    bool      `json:"isSelf"` // true when authored by the local user
}
