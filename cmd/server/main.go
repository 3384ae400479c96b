package main

import (
	"context"
	"log"

	"lawmate-backend/config"
	"lawmate-backend/handlers"
	"lawmate-backend/justice"
	"lawmate-backend/llm"
	"lawmate-backend/repository"
	"lawmate-backend/service"
	"lawmate-backend/storage"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Failed to load configuration: ", err)
	}

	logger, err := newLogger(cfg.LogLevel)
	if err != nil {
		log.Fatal("Failed to initialize logger: ", err)
	}
	defer logger.Sync()

	db, err := storage.NewSQLite(cfg.DBPath)
	if err != nil {
		logger.Fatal("failed to open database", zap.String("path", cfg.DBPath), zap.Error(err))
	}
	defer db.Close()

	if err := storage.RunMigrations(context.Background(), db); err != nil {
		logger.Fatal("failed to run migrations", zap.Error(err))
	}
	logger.Info("database ready", zap.String("path", cfg.DBPath))

	sessionRepo := repository.NewSessionRepository(db)
	messageRepo := repository.NewMessageRepository(db)

	provider, err := llm.NewProvider(context.Background(), cfg, logger)
	if err != nil {
		logger.Fatal("failed to initialize provider",
			zap.String("provider", cfg.LLMProvider), zap.Error(err))
	}
	logger.Info("provider initialized", zap.String("provider", provider.Name()))

	gate := service.NewSetupGate()
	if cfg.LLMProvider == config.ProviderOllama {
		// Ollama may need a local server start and a model pull; submissions
		// wait behind the gate while that runs.
		gate.Start("Připravuji Ollama...")
		go func() {
			result := llm.EnsureOllamaReady(context.Background(),
				cfg.OllamaBaseURL, cfg.OllamaAPIKey, cfg.OllamaModel,
				gate.Progress, logger)
			gate.Finish(result.OK, result.Message)
		}()
	}

	searcher := justice.NewClient(justice.DefaultBaseURL, logger)

	sessionService := service.NewSessionService(
		service.WithSessionRepository(sessionRepo),
		service.WithMessageRepository(messageRepo),
		service.WithLogger(logger),
	)

	adviceService := service.NewAdviceService(
		service.AdviceWithSessionRepository(sessionRepo),
		service.AdviceWithMessageRepository(messageRepo),
		service.AdviceWithProvider(provider),
		service.AdviceWithSearcher(searcher),
		service.AdviceWithRetrievalWindow(cfg.JusticeLookbackDays, cfg.JusticeMaxItemsPerDay),
		service.AdviceWithSetupGate(gate),
		service.AdviceWithLogger(logger),
	)

	sessionHandler := handlers.NewSessionHandler(sessionService)
	chatHandler := handlers.NewChatHandler(adviceService, gate)

	r := gin.Default()

	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status": "ok",
		})
	})

	api := r.Group("/api")
	{
		api.POST("/sessions", sessionHandler.CreateSession)
		api.GET("/sessions", sessionHandler.ListSessions)
		api.DELETE("/sessions/:id", sessionHandler.DeleteSession)
		api.GET("/sessions/:id/messages", sessionHandler.ListMessages)
		api.POST("/sessions/:id/ask", chatHandler.Ask)

		api.GET("/submissions/:id", chatHandler.GetSubmission)
		api.GET("/setup/status", chatHandler.SetupStatus)
	}

	logger.Info("server starting", zap.String("port", cfg.Port))
	if err := r.Run(":" + cfg.Port); err != nil {
		logger.Fatal("server exited", zap.Error(err))
	}
}

func newLogger(level string) (*zap.Logger, error) {
	lvl, err := zapcore.ParseLevel(level)
	if err != nil {
		return nil, err
	}
	zcfg := zap.NewProductionConfig()
	zcfg.Level = zap.NewAtomicLevelAt(lvl)
	return zcfg.Build()
}
