package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/pgvector/pgvector-go"
	"gorm.io/datatypes"
)

type DocumentChunk struct {
	Id        uuid.UUID `gorm:"type:uuid;primaryKey"`
	SessionId uuid.UUID `gorm:"type:uuid;not null;index"`
	Filename  string    `gorm:"type:text;not null"`
	Content   string    `gorm:"type:text;not null"`
	// Embedding holds the tagged union (sparse or dense) as JSONB; the dense
	// variant is mirrored into EmbeddingDense so pgvector can rank with <=>.
	Embedding      datatypes.JSON   `gorm:"type:jsonb;not null"`
	EmbeddingDense *pgvector.Vector `gorm:"type:vector(768)"`
	ChunkIndex     int              `gorm:"default:0"` // 0-based index for ordering
	CreatedAt      time.Time        `gorm:"autoCreateTime"`
}

func (DocumentChunk) TableName() string {
	return "document_chunks"
}
