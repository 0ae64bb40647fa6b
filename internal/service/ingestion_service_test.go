package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"ai-pdfchat-be/internal/repository/memory"
	"ai-pdfchat-be/internal/repository/unitofwork"
	"ai-pdfchat-be/pkg/chunker"
	"ai-pdfchat-be/pkg/embedding"
	"ai-pdfchat-be/pkg/extractor"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeExtractor returns canned text so tests do not need real PDF bytes.
type fakeExtractor struct {
	text string
	err  error
}

func (f *fakeExtractor) Extract(_ []byte) (string, error) {
	if f.err != nil {
		return "", f.err
	}
	return f.text, nil
}

func newTestStores() (unitofwork.RepositoryFactory, *memory.SessionRepository) {
	sessions := memory.NewSessionRepository(time.Minute)
	factory := unitofwork.NewMemoryFactory(
		sessions,
		memory.NewChunkRepository(),
		memory.NewConversationRepository(),
	)
	return factory, sessions
}

func newTestIngestion(factory unitofwork.RepositoryFactory, text string) IIngestionService {
	return NewIngestionService(
		factory,
		&fakeExtractor{text: text},
		chunker.NewChunker(100, 20),
		embedding.NewFrequencyProvider(),
		24*time.Hour,
	)
}

func TestIngestCreatesSessionAndChunks(t *testing.T) {
	factory, _ := newTestStores()
	svc := newTestIngestion(factory, "The Eiffel Tower is in Paris. It was completed in 1889.")
	ctx := context.Background()

	res, err := svc.Ingest(ctx, nil, "paris.pdf", []byte("raw"))
	require.NoError(t, err)
	require.NotNil(t, res)

	assert.NotEqual(t, uuid.Nil, res.SessionId)
	assert.Equal(t, "paris.pdf", res.Filename)
	assert.Greater(t, res.Chunks, 0)

	uow := factory.NewUnitOfWork(ctx)
	session, err := uow.SessionRepository().FindOne(ctx, res.SessionId)
	require.NoError(t, err)
	require.NotNil(t, session)
	require.NotNil(t, session.DocumentName)
	assert.Equal(t, "paris.pdf", *session.DocumentName)
	assert.WithinDuration(t, time.Now().Add(24*time.Hour), session.ExpiresAt, time.Minute)

	count, err := uow.ChunkRepository().CountBySessionId(ctx, res.SessionId)
	require.NoError(t, err)
	assert.Equal(t, int64(res.Chunks), count)
}

func TestIngestReplacesDocumentInLiveSession(t *testing.T) {
	factory, _ := newTestStores()
	ctx := context.Background()

	first := newTestIngestion(factory, "The first document is about gardening. Roses need sun.")
	res1, err := first.Ingest(ctx, nil, "first.pdf", []byte("raw"))
	require.NoError(t, err)

	second := newTestIngestion(factory, "The second document is about sailing.")
	res2, err := second.Ingest(ctx, &res1.SessionId, "second.pdf", []byte("raw"))
	require.NoError(t, err)

	// Same session, fully swapped content.
	assert.Equal(t, res1.SessionId, res2.SessionId)

	uow := factory.NewUnitOfWork(ctx)
	chunks, err := uow.ChunkRepository().FindAllBySessionId(ctx, res2.SessionId)
	require.NoError(t, err)
	require.NotEmpty(t, chunks)
	for _, chunk := range chunks {
		assert.Equal(t, "second.pdf", chunk.Filename)
		assert.NotContains(t, chunk.Content, "gardening")
	}

	session, err := uow.SessionRepository().FindOne(ctx, res2.SessionId)
	require.NoError(t, err)
	require.NotNil(t, session.DocumentName)
	assert.Equal(t, "second.pdf", *session.DocumentName)
}

func TestIngestReplacementKeepsExpiryWindow(t *testing.T) {
	factory, _ := newTestStores()
	ctx := context.Background()

	svc := newTestIngestion(factory, "Some document text here.")
	res1, err := svc.Ingest(ctx, nil, "first.pdf", []byte("raw"))
	require.NoError(t, err)

	uow := factory.NewUnitOfWork(ctx)
	before, err := uow.SessionRepository().FindOne(ctx, res1.SessionId)
	require.NoError(t, err)

	_, err = svc.Ingest(ctx, &res1.SessionId, "second.pdf", []byte("raw"))
	require.NoError(t, err)

	after, err := uow.SessionRepository().FindOne(ctx, res1.SessionId)
	require.NoError(t, err)
	assert.Equal(t, before.ExpiresAt, after.ExpiresAt, "re-upload must not extend the window")
}

func TestIngestUnknownSessionIdMintsNewSession(t *testing.T) {
	factory, _ := newTestStores()
	ctx := context.Background()

	svc := newTestIngestion(factory, "Some document text here.")
	stale := uuid.New()

	res, err := svc.Ingest(ctx, &stale, "doc.pdf", []byte("raw"))
	require.NoError(t, err)
	assert.NotEqual(t, stale, res.SessionId)
}

func TestIngestExtractionFailureCreatesNothing(t *testing.T) {
	factory, _ := newTestStores()
	ctx := context.Background()

	svc := NewIngestionService(
		factory,
		&fakeExtractor{err: extractor.ErrUnreadableContent},
		chunker.NewChunker(100, 20),
		embedding.NewFrequencyProvider(),
		24*time.Hour,
	)

	res, err := svc.Ingest(ctx, nil, "scanned.pdf", []byte("raw"))
	assert.Nil(t, res)
	require.Error(t, err)
	assert.True(t, errors.Is(err, extractor.ErrUnreadableContent))
}

// flakyEmbedder fails on every other call, imitating an intermittently
// unreachable remote backend.
type flakyEmbedder struct {
	calls int
}

func (f *flakyEmbedder) Embed(ctx context.Context, text string) (embedding.Vector, error) {
	f.calls++
	if f.calls%2 == 1 {
		return embedding.Vector{}, &embedding.ProviderError{Provider: "flaky", Err: errors.New("upstream timeout")}
	}
	return embedding.NewFrequencyProvider().Embed(ctx, text)
}

func (f *flakyEmbedder) Name() string {
	return "flaky"
}

func TestIngestFlakyEmbedderDegradesPerChunk(t *testing.T) {
	factory, _ := newTestStores()
	ctx := context.Background()

	text := "First sentence about gardens. Second sentence about rivers. " +
		"Third sentence about mountains. Fourth sentence about cities."
	svc := NewIngestionService(
		factory,
		&fakeExtractor{text: text},
		chunker.NewChunker(60, 10),
		embedding.NewChain(nil, &flakyEmbedder{}, embedding.NewFrequencyProvider()),
		24*time.Hour,
	)

	res, err := svc.Ingest(ctx, nil, "doc.pdf", []byte("raw"))
	require.NoError(t, err)
	require.Greater(t, res.Chunks, 1)

	uow := factory.NewUnitOfWork(ctx)
	chunks, err := uow.ChunkRepository().FindAllBySessionId(ctx, res.SessionId)
	require.NoError(t, err)
	require.Len(t, chunks, res.Chunks)
	for _, chunk := range chunks {
		assert.False(t, chunk.Embedding.IsZero(), "chunk %q kept a usable embedding", chunk.Content)
	}
}
