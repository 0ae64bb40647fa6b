package memory

import (
	"context"
	"sync"
	"testing"
	"time"

	"ai-pdfchat-be/internal/entity"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateLiveSessionIsReadable(t *testing.T) {
	repo := NewSessionRepository(time.Minute)
	ctx := context.Background()

	id := uuid.New()
	name := "doc.pdf"
	require.NoError(t, repo.Create(ctx, &entity.Session{
		Id:           id,
		DocumentName: &name,
		CreatedAt:    time.Now(),
		ExpiresAt:    time.Now().Add(time.Hour),
	}))

	got, err := repo.FindOne(ctx, id)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "doc.pdf", *got.DocumentName)
}

func TestCreateExpiredSessionIsInvisibleAndEvicted(t *testing.T) {
	repo := NewSessionRepository(20 * time.Millisecond)
	ctx := context.Background()

	var mu sync.Mutex
	var evicted []uuid.UUID
	repo.SetOnExpired(func(id uuid.UUID) {
		mu.Lock()
		defer mu.Unlock()
		evicted = append(evicted, id)
	})

	id := uuid.New()
	require.NoError(t, repo.Create(ctx, &entity.Session{
		Id:        id,
		CreatedAt: time.Now().Add(-25 * time.Hour),
		ExpiresAt: time.Now().Add(-time.Hour),
	}))

	// Invisible to readers immediately.
	got, err := repo.FindOne(ctx, id)
	require.NoError(t, err)
	assert.Nil(t, got)

	// Storage is bounded too: the janitor evicts the record and fires the
	// cascade hook.
	assert.Eventually(t, func() bool {
		mu.Lock()
		defer mu.Unlock()
		for _, e := range evicted {
			if e == id {
				return true
			}
		}
		return false
	}, 2*time.Second, 10*time.Millisecond)
}

func TestUpdateDocumentNameKeepsExpiryWindow(t *testing.T) {
	repo := NewSessionRepository(time.Minute)
	ctx := context.Background()

	id := uuid.New()
	expiresAt := time.Now().Add(time.Hour)
	require.NoError(t, repo.Create(ctx, &entity.Session{
		Id:        id,
		CreatedAt: time.Now(),
		ExpiresAt: expiresAt,
	}))

	require.NoError(t, repo.UpdateDocumentName(ctx, id, "renamed.pdf"))

	got, err := repo.FindOne(ctx, id)
	require.NoError(t, err)
	require.NotNil(t, got)
	require.NotNil(t, got.DocumentName)
	assert.Equal(t, "renamed.pdf", *got.DocumentName)
	assert.Equal(t, expiresAt, got.ExpiresAt)
}
