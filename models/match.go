package models

import "time"

// Match binds a matched user to an interaction, a coupon and a chat history.
// Created once per successful match event; the interaction may be regenerated
// in place, messages only accumulate.
type Match struct {
	User        User          `json:"user"`
	Interaction Interaction   `json:"interaction"`
	Coupon      Coupon        `json:"coupon"`
	CreatedAt   time.Time     `json:"createdAt"`
	Messages    []ChatMessage `json:"messages"`
}
