package memory

import (
	"context"
	"sync"

	"ai-pdfchat-be/internal/entity"
	"ai-pdfchat-be/internal/repository/contract"

	"github.com/google/uuid"
)

type ConversationRepository struct {
	mu            sync.RWMutex
	conversations map[uuid.UUID]*entity.Conversation
	messages      map[uuid.UUID][]*entity.ConversationMessage
}

func NewConversationRepository() *ConversationRepository {
	return &ConversationRepository{
		conversations: make(map[uuid.UUID]*entity.Conversation),
		messages:      make(map[uuid.UUID][]*entity.ConversationMessage),
	}
}

func (r *ConversationRepository) Create(_ context.Context, conversation *entity.Conversation) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	copied := *conversation
	r.conversations[conversation.Id] = &copied
	return nil
}

func (r *ConversationRepository) FindOne(_ context.Context, id uuid.UUID) (*entity.Conversation, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if c, ok := r.conversations[id]; ok {
		copied := *c
		return &copied, nil
	}
	return nil, nil
}

func (r *ConversationRepository) AppendMessages(_ context.Context, messages []*entity.ConversationMessage) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, msg := range messages {
		copied := *msg
		r.messages[msg.ConversationId] = append(r.messages[msg.ConversationId], &copied)
	}
	return nil
}

func (r *ConversationRepository) FindMessages(_ context.Context, conversationId uuid.UUID) ([]*entity.ConversationMessage, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	stored := r.messages[conversationId]
	result := make([]*entity.ConversationMessage, len(stored))
	for i, msg := range stored {
		copied := *msg
		result[i] = &copied
	}
	return result, nil
}

func (r *ConversationRepository) DeleteBySessionId(_ context.Context, sessionId uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for id, c := range r.conversations {
		if c.SessionId != nil && *c.SessionId == sessionId {
			delete(r.conversations, id)
			delete(r.messages, id)
		}
	}
	return nil
}

var _ contract.ConversationRepository = (*ConversationRepository)(nil)
