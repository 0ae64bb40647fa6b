package service

import (
	"context"
	"time"

	"ai-pdfchat-be/internal/pkg/logger"
	"ai-pdfchat-be/internal/repository/unitofwork"
	"ai-pdfchat-be/pkg/events"
)

type ISweeperService interface {
	// Run blocks until the context is cancelled, sweeping on every tick.
	Run(ctx context.Context)

	// Sweep publishes a purge event for every session past its window and
	// returns how many it found.
	Sweep(ctx context.Context) (int, error)
}

type sweeperService struct {
	uowFactory       unitofwork.RepositoryFactory
	publisherService IPublisherService
	interval         time.Duration
	log              logger.ILogger
}

func NewSweeperService(
	uowFactory unitofwork.RepositoryFactory,
	publisherService IPublisherService,
	interval time.Duration,
	log logger.ILogger,
) ISweeperService {
	return &sweeperService{
		uowFactory:       uowFactory,
		publisherService: publisherService,
		interval:         interval,
		log:              log,
	}
}

func (s *sweeperService) Run(ctx context.Context) {
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if _, err := s.Sweep(ctx); err != nil {
				s.log.Error("sweeper_service", "session sweep failed", map[string]interface{}{
					"error": err.Error(),
				})
			}
		}
	}
}

func (s *sweeperService) Sweep(ctx context.Context) (int, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	expired, err := uow.SessionRepository().FindExpired(ctx, time.Now())
	if err != nil {
		return 0, err
	}

	for _, session := range expired {
		evt := events.SessionPurgeEvent{
			SessionId: session.Id,
			Reason:    events.PurgeReasonExpired,
		}
		if err := s.publisherService.Publish(ctx, evt); err != nil {
			s.log.Warn("sweeper_service", "failed to publish purge for expired session", map[string]interface{}{
				"session_id": session.Id.String(),
				"error":      err.Error(),
			})
			continue
		}
	}
	if len(expired) > 0 {
		s.log.Info("sweeper_service", "session sweep queued expired sessions for purge", map[string]interface{}{
			"count": len(expired),
		})
	}
	return len(expired), nil
}
