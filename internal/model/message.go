package model

import (
	"time"

	"github.com/google/uuid"
)

type Message struct {
	ID        uuid.UUID
	AuthorID  int64
	Text      string
	CreatedAt time.Time
}

type CreateMessageRequest struct {
	Text string `json:"text"`
}

// MessageEntry is one row of the public message listing, with the author's
// display name joined in.
type MessageEntry struct {
	ID        uuid.UUID `json:"id"`
	Author    string    `json:"author"`
	Text      string    `json:"text"`
	CreatedAt time.Time `json:"created_at"`
}
