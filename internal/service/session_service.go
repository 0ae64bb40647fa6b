package service

import (
	"context"

	"ai-pdfchat-be/internal/pkg/logger"
	"ai-pdfchat-be/internal/repository/unitofwork"
	"ai-pdfchat-be/pkg/events"

	"github.com/google/uuid"
)

type ISessionService interface {
	Clear(ctx context.Context, sessionId uuid.UUID) error
}

type sessionService struct {
	uowFactory       unitofwork.RepositoryFactory
	publisherService IPublisherService
	log              logger.ILogger
}

func NewSessionService(
	uowFactory unitofwork.RepositoryFactory,
	publisherService IPublisherService,
	log logger.ILogger,
) ISessionService {
	return &sessionService{
		uowFactory:       uowFactory,
		publisherService: publisherService,
		log:              log,
	}
}

// Clear purges the session's chunks, conversations and record in one
// transaction. Clearing an unknown session is a no-op, not an error, so the
// endpoint stays idempotent.
func (s *sessionService) Clear(ctx context.Context, sessionId uuid.UUID) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	if err := uow.Begin(ctx); err != nil {
		return err
	}
	defer uow.Rollback()

	if err := uow.ChunkRepository().DeleteBySessionId(ctx, sessionId); err != nil {
		return err
	}
	if err := uow.ConversationRepository().DeleteBySessionId(ctx, sessionId); err != nil {
		return err
	}
	if err := uow.SessionRepository().Delete(ctx, sessionId); err != nil {
		return err
	}

	if err := uow.Commit(); err != nil {
		return err
	}

	// The purge already happened synchronously; the event only tells other
	// consumers about it, so a publish failure must not fail the request.
	evt := events.SessionPurgeEvent{
		SessionId: sessionId,
		Reason:    events.PurgeReasonCleared,
	}
	if err := s.publisherService.Publish(ctx, evt); err != nil {
		s.log.Warn("session_service", "failed to publish purge event", map[string]interface{}{
			"session_id": sessionId.String(),
			"error":      err.Error(),
		})
	}
	return nil
}
