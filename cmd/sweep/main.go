package main

import (
	"context"
	"log"
	"time"

	"ai-pdfchat-be/internal/config"
	"ai-pdfchat-be/internal/repository/unitofwork"
	"ai-pdfchat-be/pkg/database"

	"github.com/fatih/color"
	"github.com/joho/godotenv"
)

// One-shot purge of expired sessions. The running server sweeps on its own
// interval; this exists for operators who want an immediate, visible pass.
func main() {
	if err := godotenv.Load(); err != nil {
		log.Printf("Warning: Could not load .env: %v", err)
	}
	cfg := config.Load()

	if cfg.Database.Connection == "" {
		log.Fatal("DB_CONNECTION_STRING is not set; in-memory sessions expire on their own")
	}

	db, err := database.NewGormDBFromDSN(cfg.Database.Connection)
	if err != nil {
		log.Fatalf("DB connection failed: %v", err)
	}

	ctx := context.Background()
	uowFactory := unitofwork.NewRepositoryFactory(db)
	uow := uowFactory.NewUnitOfWork(ctx)

	expired, err := uow.SessionRepository().FindExpired(ctx, time.Now())
	if err != nil {
		log.Fatalf("Failed to list expired sessions: %v", err)
	}

	if len(expired) == 0 {
		color.Green("No expired sessions found.")
		return
	}

	color.Yellow("Found %d expired session(s)", len(expired))

	purged := 0
	for _, session := range expired {
		uow := uowFactory.NewUnitOfWork(ctx)
		if err := uow.Begin(ctx); err != nil {
			color.Red("  %s: failed to open transaction: %v", session.Id, err)
			continue
		}

		err := func() error {
			if err := uow.ChunkRepository().DeleteBySessionId(ctx, session.Id); err != nil {
				return err
			}
			if err := uow.ConversationRepository().DeleteBySessionId(ctx, session.Id); err != nil {
				return err
			}
			if err := uow.SessionRepository().Delete(ctx, session.Id); err != nil {
				return err
			}
			return uow.Commit()
		}()
		if err != nil {
			uow.Rollback()
			color.Red("  %s: purge failed: %v", session.Id, err)
			continue
		}

		color.Green("  %s: purged (expired %s)", session.Id, session.ExpiresAt.Format(time.RFC3339))
		purged++
	}

	color.Cyan("Done. Purged %d of %d expired session(s).", purged, len(expired))
}
