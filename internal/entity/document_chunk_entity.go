package entity

import (
	"time"

	"ai-pdfchat-be/pkg/embedding"

	"github.com/google/uuid"
)

// DocumentChunk is one bounded segment of extracted document text together
// with its embedding. Chunks are immutable and live exactly as long as their
// session.
type DocumentChunk struct {
	Id         uuid.UUID
	SessionId  uuid.UUID
	Filename   string
	Content    string
	Embedding  embedding.Vector
	ChunkIndex int
	CreatedAt  time.Time
}
