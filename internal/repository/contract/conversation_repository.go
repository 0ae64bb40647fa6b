package contract

import (
	"context"

	"ai-pdfchat-be/internal/entity"

	"github.com/google/uuid"
)

type ConversationRepository interface {
	Create(ctx context.Context, conversation *entity.Conversation) error
	// FindOne returns nil, nil when the conversation does not exist.
	FindOne(ctx context.Context, id uuid.UUID) (*entity.Conversation, error)
	AppendMessages(ctx context.Context, messages []*entity.ConversationMessage) error
	// FindMessages returns the conversation's messages in chronological order.
	FindMessages(ctx context.Context, conversationId uuid.UUID) ([]*entity.ConversationMessage, error)
	DeleteBySessionId(ctx context.Context, sessionId uuid.UUID) error
}
