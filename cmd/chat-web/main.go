package main

import (
	"chatbot-relay/internal/config"
	"chatbot-relay/internal/infra/handlers"
	"chatbot-relay/internal/infra/logger"
	"chatbot-relay/internal/infra/routes"
	"chatbot-relay/internal/infra/services"
	"chatbot-relay/internal/middleware"
	client "chatbot-relay/internal/pkg"
	"context"
	"net/http"

	"github.com/gorilla/mux"
)

func main() {
	config.LoadEnv()
	cfg := config.NewWebConfig()

	log := logger.NewLogger(context.Background(), cfg.LogLevel, cfg.LogJSON)

	if cfg.SecretKey == "your-secret-key-here" {
		log.Warn("SECRET_KEY is not set, session cookies are signed with the default key")
	}

	chatbotAPI := services.NewChatbotAPIService(log, cfg.ChatbotAPIBaseURL, &http.Client{}, cfg.ChatTimeout, cfg.HistoryTimeout)
	webHandlers := handlers.NewWebHandlers(log, chatbotAPI, handlers.NewSessionStore(cfg.SecretKey))

	router := mux.NewRouter()
	router.Use(middleware.LoggingMiddleware(log), middleware.RecoverMiddleware(log))

	webRoutes := routes.NewWebRoutes(router, webHandlers)
	webRoutes.Init()

	if err := client.RunServer(log, "Chat web", cfg.Port, webRoutes.Handler(cfg.CORSAllowedOrigins)); err != nil {
		log.Fatal(err.Error())
	}
}
