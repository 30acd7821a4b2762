package services

import (
	"bytes"
	"chatbot-relay/internal/infra/logger"
	"context"
)

func testLogger() *logger.Logger {
	log := logger.NewLogger(context.Background(), "error", true)
	log.SetOutput(&bytes.Buffer{})
	return log
}
