package bootstrap

import (
	"context"
	"log"

	"ai-pdfchat-be/internal/config"
	"ai-pdfchat-be/internal/controller"
	"ai-pdfchat-be/internal/pkg/logger"
	"ai-pdfchat-be/internal/repository/memory"
	"ai-pdfchat-be/internal/repository/unitofwork"
	"ai-pdfchat-be/internal/service"
	"ai-pdfchat-be/pkg/chunker"
	"ai-pdfchat-be/pkg/embedding"
	"ai-pdfchat-be/pkg/events"
	"ai-pdfchat-be/pkg/extractor"
	"ai-pdfchat-be/pkg/llm/factory"
	"ai-pdfchat-be/pkg/rag"
	"ai-pdfchat-be/pkg/rag/response"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Container struct {
	// Controllers
	UploadController  controller.IUploadController
	ChatController    controller.IChatController
	SessionController controller.ISessionController

	// Background Services (Exposed for main.go to run)
	ConsumerService service.IConsumerService
	SweeperService  service.ISweeperService

	Logger logger.ILogger
}

// NewContainer wires the whole application. A nil db selects the in-memory
// stores, which is how the single-binary and test setups run.
func NewContainer(db *gorm.DB, cfg *config.Config) *Container {
	// 1. Core Facades
	sysLogger := logger.NewZapLogger(cfg.App.LogFilePath, cfg.App.Environment == "production")

	// 2. Event Bus
	watermillLogger := watermill.NewStdLogger(false, false)
	pubSub := gochannel.NewGoChannel(
		gochannel.Config{},
		watermillLogger,
	)
	publisherService := service.NewPublisherService(pubSub)

	// 3. Storage
	var uowFactory unitofwork.RepositoryFactory
	var memorySessions *memory.SessionRepository
	if db != nil {
		uowFactory = unitofwork.NewRepositoryFactory(db)
		sysLogger.Info("bootstrap", "using postgres storage", nil)
	} else {
		memorySessions = memory.NewSessionRepository(cfg.Rag.SweepInterval)
		uowFactory = unitofwork.NewMemoryFactory(
			memorySessions,
			memory.NewChunkRepository(),
			memory.NewConversationRepository(),
		)
		sysLogger.Info("bootstrap", "using in-memory storage", map[string]interface{}{
			"session_ttl": cfg.Rag.SessionTTL.String(),
		})
	}

	// 4. Embedding Providers
	embeddingProvider := buildEmbeddingProvider(cfg, sysLogger)

	// 5. Answer Providers
	llmProviders := factory.NewProviderChain(buildProviderConfigs(cfg, sysLogger), cfg.Ai.ProviderTimeout)
	for _, p := range llmProviders {
		sysLogger.Info("bootstrap", "answer provider registered", map[string]interface{}{
			"provider": p.Name(),
		})
	}

	// 6. RAG Pipeline
	useVectorSearch := db != nil && cfg.Database.VectorSearch == "pgvector"
	retriever := rag.NewRetriever(embeddingProvider, useVectorSearch, log.Default())
	generator := response.NewGenerator(llmProviders, log.Default())

	// 7. Services
	ingestionService := service.NewIngestionService(
		uowFactory,
		extractor.NewPDFExtractor(),
		chunker.NewChunker(cfg.Rag.ChunkSize, cfg.Rag.ChunkOverlap),
		embeddingProvider,
		cfg.Rag.SessionTTL,
	)
	chatService := service.NewChatService(uowFactory, retriever, generator, cfg.Rag.TopK, sysLogger)
	sessionService := service.NewSessionService(uowFactory, publisherService, sysLogger)
	sweeperService := service.NewSweeperService(uowFactory, publisherService, cfg.Rag.SweepInterval, sysLogger)
	consumerService := service.NewConsumerService(pubSub, uowFactory, sysLogger)

	// The memory store evicts expired sessions itself; the hook turns each
	// eviction into a purge event so chunks and conversations follow.
	if memorySessions != nil {
		memorySessions.SetOnExpired(func(id uuid.UUID) {
			evt := events.SessionPurgeEvent{
				SessionId: id,
				Reason:    events.PurgeReasonExpired,
			}
			if err := publisherService.Publish(context.Background(), evt); err != nil {
				sysLogger.Warn("bootstrap", "failed to publish purge for evicted session", map[string]interface{}{
					"session_id": id.String(),
					"error":      err.Error(),
				})
			}
		})
	}

	// 8. Controllers
	return &Container{
		UploadController:  controller.NewUploadController(ingestionService),
		ChatController:    controller.NewChatController(chatService),
		SessionController: controller.NewSessionController(sessionService),
		ConsumerService:   consumerService,
		SweeperService:    sweeperService,
		Logger:            sysLogger,
	}
}

// buildEmbeddingProvider assembles the embedding chain. The frequency
// provider closes the chain because it cannot fail; a remote provider only
// joins in front of it when configured with a key.
func buildEmbeddingProvider(cfg *config.Config, sysLogger logger.ILogger) embedding.Provider {
	terminal := embedding.NewFrequencyProvider()

	if cfg.Ai.EmbeddingProvider == "gemini" && cfg.Ai.GeminiAPIKey != "" {
		gemini := embedding.NewGeminiProvider(cfg.Ai.GeminiAPIKey, cfg.Ai.ProviderTimeout)
		sysLogger.Info("bootstrap", "embedding provider selected", map[string]interface{}{
			"provider": "gemini",
			"fallback": "frequency",
		})
		return embedding.NewChain(log.Default(), gemini, terminal)
	}

	sysLogger.Info("bootstrap", "embedding provider selected", map[string]interface{}{
		"provider": "frequency",
	})
	return terminal
}

func buildProviderConfigs(cfg *config.Config, sysLogger logger.ILogger) []factory.ProviderConfig {
	configs := make([]factory.ProviderConfig, 0, len(cfg.Ai.LLMProviders))
	for _, name := range cfg.Ai.LLMProviders {
		switch name {
		case "gemini":
			configs = append(configs, factory.ProviderConfig{
				Type:   "gemini",
				APIKey: cfg.Ai.GeminiAPIKey,
			})
		case "huggingface":
			configs = append(configs, factory.ProviderConfig{
				Type:    "huggingface",
				APIKey:  cfg.Ai.HuggingFaceAPIKey,
				Model:   cfg.Ai.HuggingFaceModel,
				BaseURL: cfg.Ai.HuggingFaceBaseURL,
			})
		default:
			sysLogger.Warn("bootstrap", "unknown answer provider skipped", map[string]interface{}{
				"provider": name,
			})
		}
	}
	return configs
}
