package handlers

import (
	"bytes"
	"chatbot-relay/internal/domain/dto"
	"chatbot-relay/internal/infra/logger"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
)

func testLogger() *logger.Logger {
	log := logger.NewLogger(context.Background(), "error", true)
	log.SetOutput(&bytes.Buffer{})
	return log
}

func jsonRequest(method string, target string, body string) *http.Request {
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	return req
}

func decodeError(rec *httptest.ResponseRecorder) string {
	var body dto.ErrorResponse
	json.NewDecoder(rec.Body).Decode(&body)
	return body.Error
}
