package memory

import (
	"context"
	"time"

	"ai-pdfchat-be/internal/entity"
	"ai-pdfchat-be/internal/repository/contract"

	"github.com/google/uuid"
	"github.com/patrickmn/go-cache"
)

// SessionRepository keeps sessions in a go-cache store whose per-item TTL
// matches the session's ExpiresAt, so the cache itself enforces the 24h
// window. An eviction hook lets the composition root cascade-delete the
// session's chunks and conversations when the janitor purges an entry.
type SessionRepository struct {
	cache *cache.Cache
}

func NewSessionRepository(sweepInterval time.Duration) *SessionRepository {
	if sweepInterval <= 0 {
		sweepInterval = 10 * time.Minute
	}
	c := cache.New(cache.NoExpiration, sweepInterval)
	return &SessionRepository{
		cache: c,
	}
}

// SetOnExpired registers the cascade hook. Fires on janitor eviction and on
// explicit deletes; both paths are idempotent downstream.
func (r *SessionRepository) SetOnExpired(fn func(id uuid.UUID)) {
	r.cache.OnEvicted(func(key string, _ interface{}) {
		if id, err := uuid.Parse(key); err == nil {
			fn(id)
		}
	})
}

func (r *SessionRepository) Create(_ context.Context, session *entity.Session) error {
	r.cache.Set(session.Id.String(), cloneSession(session), ttlUntil(session.ExpiresAt))
	return nil
}

func (r *SessionRepository) FindOne(_ context.Context, id uuid.UUID) (*entity.Session, error) {
	if x, found := r.cache.Get(id.String()); found {
		return cloneSession(x.(*entity.Session)), nil
	}
	return nil, nil
}

func (r *SessionRepository) UpdateDocumentName(_ context.Context, id uuid.UUID, documentName string) error {
	x, found := r.cache.Get(id.String())
	if !found {
		return nil
	}
	session := cloneSession(x.(*entity.Session))
	session.DocumentName = &documentName
	// Remaining TTL is preserved; re-upload never slides the window.
	r.cache.Set(id.String(), session, ttlUntil(session.ExpiresAt))
	return nil
}

// ttlUntil clamps the remaining window to a minimal positive duration.
// go-cache treats non-positive TTLs as never-expiring, which would leave an
// already-expired record in storage until an explicit delete.
func ttlUntil(expiresAt time.Time) time.Duration {
	d := time.Until(expiresAt)
	if d <= 0 {
		return time.Nanosecond
	}
	return d
}

func (r *SessionRepository) Delete(_ context.Context, id uuid.UUID) error {
	r.cache.Delete(id.String())
	return nil
}

// FindExpired always returns nothing: expired entries are invisible to reads
// and the janitor's eviction hook performs the cascade instead.
func (r *SessionRepository) FindExpired(_ context.Context, _ time.Time) ([]*entity.Session, error) {
	return nil, nil
}

func cloneSession(s *entity.Session) *entity.Session {
	copied := *s
	if s.DocumentName != nil {
		name := *s.DocumentName
		copied.DocumentName = &name
	}
	return &copied
}

var _ contract.SessionRepository = (*SessionRepository)(nil)
