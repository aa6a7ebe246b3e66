package bootstrap

import (
	"log"
	"time"

	"gorm.io/gorm"

	"medequip-support-be/internal/config"
	"medequip-support-be/internal/controller"
	"medequip-support-be/internal/pkg/logger"
	"medequip-support-be/internal/repository/implementation"
	"medequip-support-be/internal/repository/memory"
	"medequip-support-be/internal/repository/redisstore"
	"medequip-support-be/internal/service"
	"medequip-support-be/pkg/embedding"
	"medequip-support-be/pkg/rag/search"
)

type Container struct {
	ChatController controller.IChatController

	ChatService service.IChatService
	Logger      logger.ILogger
}

func NewContainer(db *gorm.DB, cfg *config.Config) *Container {
	sysLogger := logger.NewZapLogger(cfg.App.LogFilePath, cfg.App.Environment == "production")

	// Repositories
	clientRepo := implementation.NewClientRepository(db)
	knowledgeRepo := implementation.NewKnowledgeRepository(db)
	queryExecutor := implementation.NewQueryExecutor(db)
	sessionRepo := memory.NewSessionRepository()

	// Semantic retrieval stack
	embeddingProvider := embedding.NewOllamaProvider(cfg.Rag.OllamaBaseURL, cfg.Rag.OllamaModel)
	retriever := search.NewOrchestrator(embeddingProvider, knowledgeRepo)
	if cfg.Rag.Enabled {
		log.Printf("[INFO] Semantic retrieval enabled (model: %s, top-k: %d)", cfg.Rag.OllamaModel, cfg.Rag.TopK)
	} else {
		log.Printf("[INFO] Semantic retrieval disabled by config")
	}

	// Transcript archive is optional. Sessions stay fully functional
	// without Redis, they just lose the durable mirror.
	var archive *redisstore.TranscriptArchive
	if cfg.Chat.ArchiveTranscripts && cfg.App.RedisURL != "" {
		var err error
		archive, err = redisstore.NewTranscriptArchive(cfg.App.RedisURL, 24*time.Hour)
		if err != nil {
			log.Printf("[WARN] Transcript archive unavailable: %v", err)
			archive = nil
		}
	}

	chatService := service.NewChatService(
		clientRepo,
		queryExecutor,
		retriever,
		sessionRepo,
		archive,
		service.ChatConfig{
			RagEnabled:      cfg.Rag.Enabled,
			RagTopK:         cfg.Rag.TopK,
			MaxHistoryTurns: cfg.Chat.MaxHistoryTurns,
		},
		sysLogger,
	)

	return &Container{
		ChatController: controller.NewChatController(chatService),
		ChatService:    chatService,
		Logger:         sysLogger,
	}
}
