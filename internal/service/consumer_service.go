package service

import (
	"context"
	"encoding/json"

	"ai-pdfchat-be/internal/pkg/logger"
	"ai-pdfchat-be/internal/repository/unitofwork"
	"ai-pdfchat-be/pkg/events"

	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"github.com/google/uuid"
)

type IConsumerService interface {
	Consume(ctx context.Context) error
}

// consumerService drains SESSION_PURGE events and performs the cascade
// delete: chunks first, then conversations, then the session record.
type consumerService struct {
	pubSub     *gochannel.GoChannel
	uowFactory unitofwork.RepositoryFactory
	log        logger.ILogger
}

func NewConsumerService(
	pubSub *gochannel.GoChannel,
	uowFactory unitofwork.RepositoryFactory,
	log logger.ILogger,
) IConsumerService {
	return &consumerService{
		pubSub:     pubSub,
		uowFactory: uowFactory,
		log:        log,
	}
}

func (cs *consumerService) Consume(ctx context.Context) error {
	messages, err := cs.pubSub.Subscribe(ctx, events.TopicSessionPurge)
	if err != nil {
		return err
	}

	go func() {
		for msg := range messages {
			cs.processMessage(ctx, msg)
		}
	}()

	return nil
}

func (cs *consumerService) processMessage(ctx context.Context, msg *message.Message) {
	var payload events.SessionPurgeEvent
	if err := json.Unmarshal(msg.Payload, &payload); err != nil {
		cs.log.Error("consumer_service", "failed to unmarshal purge event", map[string]interface{}{
			"error": err.Error(),
		})
		msg.Ack() // Ack invalid messages to prevent infinite retry
		return
	}

	cs.log.Info("consumer_service", "purging session", map[string]interface{}{
		"session_id": payload.SessionId.String(),
		"reason":     payload.Reason,
	})

	uow := cs.uowFactory.NewUnitOfWork(ctx)
	if err := uow.Begin(ctx); err != nil {
		cs.logPurgeFailure("failed to open purge transaction", payload.SessionId, err)
		msg.Nack()
		return
	}
	defer uow.Rollback()

	if err := uow.ChunkRepository().DeleteBySessionId(ctx, payload.SessionId); err != nil {
		cs.logPurgeFailure("failed to purge chunks", payload.SessionId, err)
		msg.Nack()
		return
	}
	if err := uow.ConversationRepository().DeleteBySessionId(ctx, payload.SessionId); err != nil {
		cs.logPurgeFailure("failed to purge conversations", payload.SessionId, err)
		msg.Nack()
		return
	}
	if err := uow.SessionRepository().Delete(ctx, payload.SessionId); err != nil {
		cs.logPurgeFailure("failed to delete session", payload.SessionId, err)
		msg.Nack()
		return
	}

	if err := uow.Commit(); err != nil {
		cs.logPurgeFailure("failed to commit purge", payload.SessionId, err)
		msg.Nack()
		return
	}

	msg.Ack()
}

func (cs *consumerService) logPurgeFailure(message string, sessionId uuid.UUID, err error) {
	cs.log.Error("consumer_service", message, map[string]interface{}{
		"session_id": sessionId.String(),
		"error":      err.Error(),
	})
}
