package dto

import (
	"time"

	"github.com/google/uuid"
)

type SendChatRequest struct {
	Message        string     `json:"message" validate:"required"`
	SessionId      uuid.UUID  `json:"session_id" validate:"required"`
	ConversationId *uuid.UUID `json:"conversation_id,omitempty"`
}

type SendChatResponse struct {
	Response       string     `json:"response"`
	ConversationId *uuid.UUID `json:"conversation_id"`
	Context        []string   `json:"context"`
}

type ConversationMessageDTO struct {
	Id        uuid.UUID `json:"id"`
	Role      string    `json:"role"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"created_at"`
}

type GetConversationResponse struct {
	Id       uuid.UUID                `json:"id"`
	Messages []ConversationMessageDTO `json:"messages"`
}
