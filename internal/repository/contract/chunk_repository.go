package contract

import (
	"context"

	"ai-pdfchat-be/internal/entity"

	"github.com/google/uuid"
)

// ScoredChunk wraps a DocumentChunk with its similarity score
type ScoredChunk struct {
	Chunk      *entity.DocumentChunk
	Similarity float64
}

type ChunkRepository interface {
	CreateBulk(ctx context.Context, chunks []*entity.DocumentChunk) error
	// FindAllBySessionId returns chunks in insertion order (chunk index).
	FindAllBySessionId(ctx context.Context, sessionId uuid.UUID) ([]*entity.DocumentChunk, error)
	CountBySessionId(ctx context.Context, sessionId uuid.UUID) (int64, error)
	DeleteBySessionId(ctx context.Context, sessionId uuid.UUID) error
	// SearchSimilarWithScore ranks a session's dense-embedded chunks against
	// the query vector in the store itself. Only the Postgres implementation
	// can serve it; stores without native ranking return ErrVectorSearchUnsupported.
	SearchSimilarWithScore(ctx context.Context, query []float32, sessionId uuid.UUID, limit int) ([]*ScoredChunk, error)
}
