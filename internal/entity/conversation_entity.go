package entity

import (
	"time"

	"github.com/google/uuid"
)

type Conversation struct {
	Id        uuid.UUID
	SessionId *uuid.UUID
	CreatedAt time.Time
}

// ConversationMessage is one append-only entry of a conversation. A user
// question and its assistant answer are always written as one pair.
type ConversationMessage struct {
	Id             uuid.UUID
	ConversationId uuid.UUID
	Role           string
	Content        string
	CreatedAt      time.Time
}
