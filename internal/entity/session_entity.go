package entity

import (
	"time"

	"github.com/google/uuid"
)

// Session binds one active document's chunks to an opaque token for a fixed
// 24h window. ExpiresAt is set once at creation; re-uploading a document
// refreshes DocumentName but never the window.
type Session struct {
	Id           uuid.UUID
	DocumentName *string
	CreatedAt    time.Time
	ExpiresAt    time.Time
}

func (s *Session) IsExpired(at time.Time) bool {
	return at.After(s.ExpiresAt)
}
