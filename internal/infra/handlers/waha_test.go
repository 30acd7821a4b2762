package handlers

import (
	"chatbot-relay/internal/domain/dto"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeGatewayService struct {
	events []dto.WahaWebhook
	ctxErr error
}

func (f *fakeGatewayService) ProcessWebhook(ctx context.Context, event dto.WahaWebhook) dto.GatewayResult {
	f.events = append(f.events, event)
	f.ctxErr = ctx.Err()
	return dto.GatewayResult{Status: dto.StatusSuccess, Message: "Message processed and sent successfully"}
}

func TestWebhookRelaysEvent(t *testing.T) {
	svc := &fakeGatewayService{}
	h := NewWahaHandlers(testLogger(), svc)

	payload := `{"event":"message","session":"default","payload":{"id":"m1","from":"5511@c.us","fromMe":false,"body":"hello"}}`
	rec := httptest.NewRecorder()
	h.Webhook(rec, jsonRequest(http.MethodPost, "/waha/webhook", payload))

	require.Equal(t, http.StatusOK, rec.Code)
	require.Len(t, svc.events, 1)
	assert.Equal(t, "5511@c.us", svc.events[0].Payload.From)
	assert.Equal(t, "hello", svc.events[0].Payload.Body)

	var body dto.GatewayResult
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&body))
	assert.Equal(t, dto.StatusSuccess, body.Status)
}

func TestWebhookSurvivesClientDisconnect(t *testing.T) {
	svc := &fakeGatewayService{}
	h := NewWahaHandlers(testLogger(), svc)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	req := jsonRequest(http.MethodPost, "/waha/webhook", `{"event":"message","payload":{"from":"1@c.us","body":"hi"}}`).WithContext(ctx)

	h.Webhook(httptest.NewRecorder(), req)

	require.Len(t, svc.events, 1)
	assert.NoError(t, svc.ctxErr)
}

func TestWebhookRejectsMalformedJSON(t *testing.T) {
	svc := &fakeGatewayService{}
	h := NewWahaHandlers(testLogger(), svc)

	rec := httptest.NewRecorder()
	h.Webhook(rec, jsonRequest(http.MethodPost, "/waha/webhook", `not json`))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Empty(t, svc.events)

	var body map[string]interface{}
	json.NewDecoder(rec.Body).Decode(&body)
	assert.Equal(t, "Invalid request body", body["error"])
}
