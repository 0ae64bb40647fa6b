package rag

import (
	"context"
	"testing"
	"time"

	"ai-pdfchat-be/internal/entity"
	"ai-pdfchat-be/internal/repository/memory"
	"ai-pdfchat-be/internal/repository/unitofwork"
	"ai-pdfchat-be/pkg/embedding"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestFactory() unitofwork.RepositoryFactory {
	return unitofwork.NewMemoryFactory(
		memory.NewSessionRepository(time.Minute),
		memory.NewChunkRepository(),
		memory.NewConversationRepository(),
	)
}

func seedChunks(t *testing.T, factory unitofwork.RepositoryFactory, sessionId uuid.UUID, contents []string) {
	t.Helper()
	ctx := context.Background()
	provider := embedding.NewFrequencyProvider()

	chunks := make([]*entity.DocumentChunk, 0, len(contents))
	for i, content := range contents {
		vec, err := provider.Embed(ctx, content)
		require.NoError(t, err)
		chunks = append(chunks, &entity.DocumentChunk{
			Id:         uuid.New(),
			SessionId:  sessionId,
			Filename:   "test.pdf",
			Content:    content,
			Embedding:  vec,
			ChunkIndex: i,
			CreatedAt:  time.Now(),
		})
	}

	uow := factory.NewUnitOfWork(ctx)
	require.NoError(t, uow.Begin(ctx))
	require.NoError(t, uow.ChunkRepository().CreateBulk(ctx, chunks))
	require.NoError(t, uow.Commit())
}

func TestRetrieveRanksByRelevance(t *testing.T) {
	factory := newTestFactory()
	sessionId := uuid.New()
	seedChunks(t, factory, sessionId, []string{
		"Bananas ripen faster in warm kitchens.",
		"Paris is the capital of France.",
		"The mitochondria is the powerhouse of the cell.",
	})

	r := NewRetriever(embedding.NewFrequencyProvider(), false, nil)
	uow := factory.NewUnitOfWork(context.Background())

	scored, err := r.Retrieve(context.Background(), uow, "What is the capital of France?", sessionId, 2)
	require.NoError(t, err)
	require.Len(t, scored, 2)

	assert.Equal(t, "Paris is the capital of France.", scored[0].Content)
	assert.GreaterOrEqual(t, scored[0].Similarity, scored[1].Similarity)
}

func TestRetrieveHonorsLimit(t *testing.T) {
	factory := newTestFactory()
	sessionId := uuid.New()
	seedChunks(t, factory, sessionId, []string{
		"alpha content one", "beta content two", "gamma content three",
		"delta content four", "epsilon content five", "zeta content six",
	})

	r := NewRetriever(embedding.NewFrequencyProvider(), false, nil)
	uow := factory.NewUnitOfWork(context.Background())

	scored, err := r.Retrieve(context.Background(), uow, "content", sessionId, 5)
	require.NoError(t, err)
	assert.Len(t, scored, 5)
}

func TestRetrieveEmptySession(t *testing.T) {
	factory := newTestFactory()

	r := NewRetriever(embedding.NewFrequencyProvider(), false, nil)
	uow := factory.NewUnitOfWork(context.Background())

	scored, err := r.Retrieve(context.Background(), uow, "anything", uuid.New(), 5)
	require.NoError(t, err)
	assert.NotNil(t, scored)
	assert.Empty(t, scored)
}

func TestRetrieveDefaultsTopK(t *testing.T) {
	factory := newTestFactory()
	sessionId := uuid.New()

	contents := make([]string, 8)
	for i := range contents {
		contents[i] = "shared words plus filler"
	}
	seedChunks(t, factory, sessionId, contents)

	r := NewRetriever(embedding.NewFrequencyProvider(), false, nil)
	uow := factory.NewUnitOfWork(context.Background())

	scored, err := r.Retrieve(context.Background(), uow, "shared words", sessionId, 0)
	require.NoError(t, err)
	assert.Len(t, scored, DefaultTopK)
}

func TestContents(t *testing.T) {
	scored := []ScoredContext{
		{Content: "first", Similarity: 0.9},
		{Content: "second", Similarity: 0.1},
	}
	assert.Equal(t, []string{"first", "second"}, Contents(scored))
	assert.Empty(t, Contents(nil))
}
