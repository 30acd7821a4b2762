package main

import (
	"chatbot-relay/internal/config"
	Iservices "chatbot-relay/internal/domain/interfaces/services"
	"chatbot-relay/internal/infra/handlers"
	"chatbot-relay/internal/infra/logger"
	"chatbot-relay/internal/infra/provider"
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
	cfg := config.NewGatewayConfig()

	log := logger.NewLogger(context.Background(), cfg.LogLevel, cfg.LogJSON)

	chatbotAPI := services.NewChatbotAPIService(log, cfg.ChatbotAPIURL, &http.Client{}, cfg.ChatbotAPITimeout, cfg.ChatbotAPITimeout)
	wahaProvider := provider.NewWahaProvider(log, cfg.WahaAPIURL, cfg.WahaAPIKey, &http.Client{Timeout: cfg.WahaAPITimeout})

	var gatewaySvc Iservices.IGatewayService = services.NewGatewayService(log, chatbotAPI, wahaProvider, services.Apologies{
		ChatbotError:    cfg.ApologyChatbotError,
		ConnectionError: cfg.ApologyConnectionError,
		UnexpectedError: cfg.ApologyUnexpectedError,
	})

	router := mux.NewRouter()
	router.Use(middleware.LoggingMiddleware(log), middleware.RecoverMiddleware(log))

	routes.NewGatewayRoutes(router, handlers.NewWahaHandlers(log, gatewaySvc)).Init()

	if err := client.RunServer(log, "WAHA gateway", cfg.Port, router); err != nil {
		log.Fatal(err.Error())
	}
}
