package rag

import (
	"context"
	"errors"
	"log"
	"sort"

	"ai-pdfchat-be/internal/repository/contract"
	"ai-pdfchat-be/internal/repository/unitofwork"
	"ai-pdfchat-be/pkg/embedding"

	"github.com/google/uuid"
)

const DefaultTopK = 5

// ScoredContext is one retrieved chunk content with its similarity score.
type ScoredContext struct {
	Content    string
	Similarity float64
}

// Retriever embeds a query and ranks a session's chunks against it.
// The default path scores in process with a stable sort, so equal scores keep
// insertion order; when the store offers native dense ranking it can be used
// instead (UseVectorSearch).
type Retriever struct {
	embedder        embedding.Provider
	useVectorSearch bool
	logger          *log.Logger
}

func NewRetriever(embedder embedding.Provider, useVectorSearch bool, logger *log.Logger) *Retriever {
	return &Retriever{
		embedder:        embedder,
		useVectorSearch: useVectorSearch,
		logger:          logger,
	}
}

// Retrieve returns at most k chunk contents for the session, best match
// first. A session without chunks yields an empty slice, not an error.
func (r *Retriever) Retrieve(ctx context.Context, uow unitofwork.UnitOfWork, query string, sessionId uuid.UUID, k int) ([]ScoredContext, error) {
	if k <= 0 {
		k = DefaultTopK
	}

	queryVec, err := r.embedder.Embed(ctx, query)
	if err != nil {
		return nil, err
	}

	if r.useVectorSearch && queryVec.IsDense() {
		scored, err := uow.ChunkRepository().SearchSimilarWithScore(ctx, queryVec.Dense, sessionId, k)
		if err == nil {
			return toScoredContext(scored), nil
		}
		if !errors.Is(err, contract.ErrVectorSearchUnsupported) {
			return nil, err
		}
		// Store cannot rank natively; fall through to in-process scoring.
		if r.logger != nil {
			r.logger.Printf("[INFO] vector search unsupported by store, scoring in process")
		}
	}

	chunks, err := uow.ChunkRepository().FindAllBySessionId(ctx, sessionId)
	if err != nil {
		return nil, err
	}
	if len(chunks) == 0 {
		return []ScoredContext{}, nil
	}

	scored := make([]ScoredContext, len(chunks))
	for i, chunk := range chunks {
		scored[i] = ScoredContext{
			Content:    chunk.Content,
			Similarity: embedding.Cosine(queryVec, chunk.Embedding),
		}
	}

	sort.SliceStable(scored, func(i, j int) bool {
		return scored[i].Similarity > scored[j].Similarity
	})

	if len(scored) > k {
		scored = scored[:k]
	}
	return scored, nil
}

func toScoredContext(scored []*contract.ScoredChunk) []ScoredContext {
	result := make([]ScoredContext, len(scored))
	for i, s := range scored {
		result[i] = ScoredContext{
			Content:    s.Chunk.Content,
			Similarity: s.Similarity,
		}
	}
	return result
}

// Contents strips scores, preserving rank order.
func Contents(scored []ScoredContext) []string {
	contents := make([]string, len(scored))
	for i, s := range scored {
		contents[i] = s.Content
	}
	return contents
}
