package service

import (
	"context"
	"time"

	"ai-pdfchat-be/internal/dto"
	"ai-pdfchat-be/internal/entity"
	"ai-pdfchat-be/internal/repository/unitofwork"
	"ai-pdfchat-be/pkg/chunker"
	"ai-pdfchat-be/pkg/embedding"
	"ai-pdfchat-be/pkg/extractor"

	"github.com/google/uuid"
)

type IIngestionService interface {
	Ingest(ctx context.Context, sessionId *uuid.UUID, filename string, raw []byte) (*dto.UploadResponse, error)
}

type ingestionService struct {
	uowFactory        unitofwork.RepositoryFactory
	extractor         extractor.TextExtractor
	chunker           *chunker.Chunker
	embeddingProvider embedding.Provider
	sessionTTL        time.Duration
}

func NewIngestionService(
	uowFactory unitofwork.RepositoryFactory,
	extractor extractor.TextExtractor,
	chunker *chunker.Chunker,
	embeddingProvider embedding.Provider,
	sessionTTL time.Duration,
) IIngestionService {
	return &ingestionService{
		uowFactory:        uowFactory,
		extractor:         extractor,
		chunker:           chunker,
		embeddingProvider: embeddingProvider,
		sessionTTL:        sessionTTL,
	}
}

// Ingest replaces the session's active document: extract, chunk and embed the
// upload, then swap the stored chunks in one transaction. Embedding happens
// before the transaction opens so a slow provider never holds locks.
func (s *ingestionService) Ingest(ctx context.Context, sessionId *uuid.UUID, filename string, raw []byte) (*dto.UploadResponse, error) {
	text, err := s.extractor.Extract(raw)
	if err != nil {
		return nil, err
	}

	chunks := s.chunker.Chunk(text)

	now := time.Now()
	entities := make([]*entity.DocumentChunk, 0, len(chunks))
	for i, content := range chunks {
		vec, err := s.embeddingProvider.Embed(ctx, content)
		if err != nil {
			return nil, err
		}
		entities = append(entities, &entity.DocumentChunk{
			Id:         uuid.New(),
			Filename:   filename,
			Content:    content,
			Embedding:  vec,
			ChunkIndex: i,
			CreatedAt:  now,
		})
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}
	defer uow.Rollback()

	session, err := s.resolveSession(ctx, uow, sessionId, filename, now)
	if err != nil {
		return nil, err
	}

	for _, chunk := range entities {
		chunk.SessionId = session.Id
	}
	if err := uow.ChunkRepository().CreateBulk(ctx, entities); err != nil {
		return nil, err
	}

	if err := uow.Commit(); err != nil {
		return nil, err
	}

	return &dto.UploadResponse{
		SessionId: session.Id,
		Chunks:    len(entities),
		Filename:  filename,
	}, nil
}

// resolveSession reuses a live session when the caller presents one, purging
// its previous document and history; expired or unknown ids fall through to a
// fresh session with a full TTL window.
func (s *ingestionService) resolveSession(ctx context.Context, uow unitofwork.UnitOfWork, sessionId *uuid.UUID, filename string, now time.Time) (*entity.Session, error) {
	if sessionId != nil {
		session, err := uow.SessionRepository().FindOne(ctx, *sessionId)
		if err != nil {
			return nil, err
		}
		if session != nil && !session.IsExpired(now) {
			if err := uow.ChunkRepository().DeleteBySessionId(ctx, session.Id); err != nil {
				return nil, err
			}
			if err := uow.ConversationRepository().DeleteBySessionId(ctx, session.Id); err != nil {
				return nil, err
			}
			if err := uow.SessionRepository().UpdateDocumentName(ctx, session.Id, filename); err != nil {
				return nil, err
			}
			session.DocumentName = &filename
			return session, nil
		}
	}

	session := &entity.Session{
		Id:           uuid.New(),
		DocumentName: &filename,
		CreatedAt:    now,
		ExpiresAt:    now.Add(s.sessionTTL),
	}
	if err := uow.SessionRepository().Create(ctx, session); err != nil {
		return nil, err
	}
	return session, nil
}
