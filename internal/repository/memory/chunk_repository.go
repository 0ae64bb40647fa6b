package memory

import (
	"context"
	"sync"

	"ai-pdfchat-be/internal/entity"
	"ai-pdfchat-be/internal/repository/contract"

	"github.com/google/uuid"
)

// ChunkRepository holds chunks per session in insertion order.
type ChunkRepository struct {
	mu     sync.RWMutex
	chunks map[uuid.UUID][]*entity.DocumentChunk
}

func NewChunkRepository() *ChunkRepository {
	return &ChunkRepository{
		chunks: make(map[uuid.UUID][]*entity.DocumentChunk),
	}
}

func (r *ChunkRepository) CreateBulk(_ context.Context, chunks []*entity.DocumentChunk) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, c := range chunks {
		copied := *c
		r.chunks[c.SessionId] = append(r.chunks[c.SessionId], &copied)
	}
	return nil
}

func (r *ChunkRepository) FindAllBySessionId(_ context.Context, sessionId uuid.UUID) ([]*entity.DocumentChunk, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	stored := r.chunks[sessionId]
	result := make([]*entity.DocumentChunk, len(stored))
	for i, c := range stored {
		copied := *c
		result[i] = &copied
	}
	return result, nil
}

func (r *ChunkRepository) CountBySessionId(_ context.Context, sessionId uuid.UUID) (int64, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return int64(len(r.chunks[sessionId])), nil
}

func (r *ChunkRepository) DeleteBySessionId(_ context.Context, sessionId uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.chunks, sessionId)
	return nil
}

func (r *ChunkRepository) SearchSimilarWithScore(_ context.Context, _ []float32, _ uuid.UUID, _ int) ([]*contract.ScoredChunk, error) {
	return nil, contract.ErrVectorSearchUnsupported
}

var _ contract.ChunkRepository = (*ChunkRepository)(nil)
