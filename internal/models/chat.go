package models

import (
	"time"

	"github.com/google/uuid"
)

type Speaker string

const (
	SpeakerUser      Speaker = "user"
	SpeakerAssistant Speaker = "assistant"
)

// ChatTurn is one immutable message in a conversation.
type ChatTurn struct {
	ID        uuid.UUID `json:"id"`
	Speaker   Speaker   `json:"speaker"`
	Text      string    `json:"text"`
	CreatedAt time.Time `json:"created_at"`
}
