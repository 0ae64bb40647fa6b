package mapper

import (
	"encoding/json"

	"ai-pdfchat-be/internal/entity"
	"ai-pdfchat-be/internal/model"
	"ai-pdfchat-be/pkg/embedding"

	"github.com/pgvector/pgvector-go"
	"gorm.io/datatypes"
)

type ChunkMapper struct{}

func NewChunkMapper() *ChunkMapper {
	return &ChunkMapper{}
}

func (m *ChunkMapper) ToEntity(c *model.DocumentChunk) *entity.DocumentChunk {
	if c == nil {
		return nil
	}

	var vec embedding.Vector
	// A chunk written by this system always carries a valid vector; an
	// unparseable column degrades to the zero vector, which similarity
	// scoring already treats as score 0.
	_ = json.Unmarshal(c.Embedding, &vec)

	return &entity.DocumentChunk{
		Id:         c.Id,
		SessionId:  c.SessionId,
		Filename:   c.Filename,
		Content:    c.Content,
		Embedding:  vec,
		ChunkIndex: c.ChunkIndex,
		CreatedAt:  c.CreatedAt,
	}
}

func (m *ChunkMapper) ToModel(c *entity.DocumentChunk) *model.DocumentChunk {
	if c == nil {
		return nil
	}

	raw, _ := json.Marshal(c.Embedding)

	var dense *pgvector.Vector
	if c.Embedding.IsDense() {
		v := pgvector.NewVector(c.Embedding.Dense)
		dense = &v
	}

	return &model.DocumentChunk{
		Id:             c.Id,
		SessionId:      c.SessionId,
		Filename:       c.Filename,
		Content:        c.Content,
		Embedding:      datatypes.JSON(raw),
		EmbeddingDense: dense,
		ChunkIndex:     c.ChunkIndex,
		CreatedAt:      c.CreatedAt,
	}
}

func (m *ChunkMapper) ToEntities(chunks []*model.DocumentChunk) []*entity.DocumentChunk {
	entities := make([]*entity.DocumentChunk, len(chunks))
	for i, c := range chunks {
		entities[i] = m.ToEntity(c)
	}
	return entities
}

func (m *ChunkMapper) ToModels(chunks []*entity.DocumentChunk) []*model.DocumentChunk {
	models := make([]*model.DocumentChunk, len(chunks))
	for i, c := range chunks {
		models[i] = m.ToModel(c)
	}
	return models
}
