package main

import (
	"chatbot-relay/internal/config"
	"chatbot-relay/internal/domain/interfaces/repository"
	Iservices "chatbot-relay/internal/domain/interfaces/services"
	"chatbot-relay/internal/infra/handlers"
	"chatbot-relay/internal/infra/llm"
	"chatbot-relay/internal/infra/logger"
	repo "chatbot-relay/internal/infra/repository"
	"chatbot-relay/internal/infra/routes"
	"chatbot-relay/internal/infra/scheduler"
	"chatbot-relay/internal/infra/services"
	"chatbot-relay/internal/middleware"
	client "chatbot-relay/internal/pkg"
	"context"
	"fmt"
	"strings"

	"github.com/gorilla/mux"
	"github.com/sirupsen/logrus"
)

func main() {
	config.LoadEnv()
	cfg := config.NewChatbotConfig()

	ctx := context.Background()
	log := logger.NewLogger(ctx, cfg.LogLevel, cfg.LogJSON)

	if err := run(ctx, cfg, log); err != nil {
		log.Fatal(err.Error())
	}
}

// run serves the chatbot API until shutdown. Deferred cleanup runs before
// the error is returned to main.
func run(ctx context.Context, cfg *config.ChatbotConfig, log *logger.Logger) error {
	llmClient, err := llm.NewFactory(cfg).CreateClient(cfg.ModelProvider, cfg.ModelName)
	if err != nil {
		return fmt.Errorf("error creating LLM client: %w", err)
	}

	var historyRepo repository.HistoryRepository
	switch strings.ToLower(cfg.HistoryBackend) {
	case "mongo":
		mongoClient, err := client.MongoClient(ctx, cfg.MongoURI)
		if err != nil {
			return err
		}
		defer mongoClient.Disconnect(context.Background())
		historyRepo = repo.NewMongoRepository(mongoClient.Database(cfg.MongoDatabase))
	case "memory":
		historyRepo = repo.NewMemoryRepository()
	default:
		return fmt.Errorf("unknown history backend: %s", cfg.HistoryBackend)
	}

	systemPrompt := cfg.SystemPrompt
	if systemPrompt == "" {
		systemPrompt = services.DefaultSystemPrompt
	}

	chatbotService := services.NewChatbotService(log, llmClient, historyRepo, systemPrompt, cfg.LLMTimeout)
	var chatbotSvc Iservices.IChatbotService = chatbotService

	statsScheduler := scheduler.New(log, chatbotService, cfg.HistoryStatsSchedule)
	if err := statsScheduler.Start(); err != nil {
		return err
	}
	defer statsScheduler.Stop()

	router := mux.NewRouter()
	router.Use(middleware.LoggingMiddleware(log), middleware.RecoverMiddleware(log))

	routes.NewChatbotRoutes(router, handlers.NewChatbotHandlers(log, chatbotSvc)).Init()

	log.Info("Chatbot API configured", logrus.Fields{
		"provider": cfg.ModelProvider,
		"model":    cfg.ModelName,
		"history":  cfg.HistoryBackend,
	})

	return client.RunServer(log, "Chatbot API", cfg.Port, router)
}
