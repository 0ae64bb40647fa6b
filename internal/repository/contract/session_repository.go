package contract

import (
	"context"
	"time"

	"ai-pdfchat-be/internal/entity"

	"github.com/google/uuid"
)

type SessionRepository interface {
	Create(ctx context.Context, session *entity.Session) error
	// FindOne returns nil, nil when the session does not exist.
	FindOne(ctx context.Context, id uuid.UUID) (*entity.Session, error)
	// UpdateDocumentName refreshes the active document without touching the
	// session's TTL window.
	UpdateDocumentName(ctx context.Context, id uuid.UUID, documentName string) error
	// Delete is idempotent; deleting an unknown session is not an error.
	Delete(ctx context.Context, id uuid.UUID) error
	FindExpired(ctx context.Context, at time.Time) ([]*entity.Session, error)
}
