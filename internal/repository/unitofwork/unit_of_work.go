package unitofwork

import (
	"context"

	"ai-pdfchat-be/internal/repository/contract"
)

type UnitOfWork interface {
	Begin(ctx context.Context) error
	Commit() error
	Rollback() error

	SessionRepository() contract.SessionRepository
	ChunkRepository() contract.ChunkRepository
	ConversationRepository() contract.ConversationRepository
}
