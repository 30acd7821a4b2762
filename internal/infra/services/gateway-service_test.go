package services

import (
	"chatbot-relay/internal/domain/dto"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeChatbotAPI struct {
	resp  dto.ChatbotResponse
	err   error
	asked []dto.ChatbotRequest
}

func (f *fakeChatbotAPI) Ask(ctx context.Context, question string, user string) (dto.ChatbotResponse, error) {
	f.asked = append(f.asked, dto.ChatbotRequest{Question: question, User: user})
	return f.resp, f.err
}

func (f *fakeChatbotAPI) History(ctx context.Context, user string) (dto.HistoryResponse, error) {
	return dto.HistoryResponse{}, nil
}

type sentText struct {
	chatID, text, session string
}

type fakeWaha struct {
	sent []sentText
	err  error
}

func (f *fakeWaha) SendText(ctx context.Context, chatID string, text string, session string) (json.RawMessage, error) {
	f.sent = append(f.sent, sentText{chatID, text, session})
	if f.err != nil {
		return nil, f.err
	}
	return json.RawMessage(`{"id":"sent-1"}`), nil
}

var testApologies = Apologies{
	ChatbotError:    "sorry: chatbot",
	ConnectionError: "sorry: connection",
	UnexpectedError: "sorry: unexpected",
}

func webhookEvent(body string, fromMe bool) dto.WahaWebhook {
	return dto.WahaWebhook{
		Event:   "message",
		Session: "default",
		Payload: dto.MessagePayload{ID: "m1", From: "5511@c.us", To: "5522@c.us", Body: body, FromMe: fromMe},
	}
}

func TestProcessWebhookRelaysAnswer(t *testing.T) {
	api := &fakeChatbotAPI{resp: dto.ChatbotResponse{User: "5511@c.us", Question: "hi", Response: "hello!", Status: "success"}}
	waha := &fakeWaha{}
	gs := NewGatewayService(testLogger(), api, waha, testApologies)

	result := gs.ProcessWebhook(context.Background(), webhookEvent("hi", false))

	assert.Equal(t, dto.StatusSuccess, result.Status)
	assert.Equal(t, "Message processed and sent successfully", result.Message)
	require.NotNil(t, result.ChatbotResponse)
	assert.Equal(t, "hello!", result.ChatbotResponse.Response)
	assert.JSONEq(t, `{"id":"sent-1"}`, string(result.SendResponse))

	assert.Equal(t, []dto.ChatbotRequest{{Question: "hi", User: "5511@c.us"}}, api.asked)
	assert.Equal(t, []sentText{{"5511@c.us", "hello!", "default"}}, waha.sent)
}

func TestProcessWebhookIgnoresOwnAndEmptyMessages(t *testing.T) {
	api := &fakeChatbotAPI{}
	waha := &fakeWaha{}
	gs := NewGatewayService(testLogger(), api, waha, testApologies)

	assert.Equal(t, dto.StatusIgnored, gs.ProcessWebhook(context.Background(), webhookEvent("echo", true)).Status)
	assert.Equal(t, dto.StatusIgnored, gs.ProcessWebhook(context.Background(), webhookEvent("  ", false)).Status)
	assert.Empty(t, api.asked)
	assert.Empty(t, waha.sent)
}

func TestProcessWebhookChatbotErrorSendsApology(t *testing.T) {
	api := &fakeChatbotAPI{
		resp: dto.ChatbotResponse{Response: "Error processing question: boom", Status: "error"},
		err:  fmt.Errorf("%w: status %q", ErrChatbotFailed, "error"),
	}
	waha := &fakeWaha{}
	gs := NewGatewayService(testLogger(), api, waha, testApologies)

	result := gs.ProcessWebhook(context.Background(), webhookEvent("hi", false))

	assert.Equal(t, dto.StatusError, result.Status)
	assert.Equal(t, "Chatbot API error - Status code: 200, Status: error", result.Message)
	require.NotNil(t, result.ChatbotResponse)
	assert.Equal(t, "error", result.ChatbotResponse.Status)
	assert.Equal(t, []sentText{{"5511@c.us", "sorry: chatbot", "default"}}, waha.sent)
}

func TestProcessWebhookConnectionErrorSendsApology(t *testing.T) {
	for _, err := range []error{
		fmt.Errorf("%w: dial tcp: connection refused", ErrChatbotUnavailable),
		fmt.Errorf("%w: deadline exceeded", ErrChatbotTimeout),
		&ChatbotAPIError{StatusCode: 502},
	} {
		waha := &fakeWaha{}
		gs := NewGatewayService(testLogger(), &fakeChatbotAPI{err: err}, waha, testApologies)

		result := gs.ProcessWebhook(context.Background(), webhookEvent("hi", false))

		assert.Equal(t, dto.StatusError, result.Status)
		assert.Contains(t, result.Message, "HTTP error occurred: ")
		assert.Nil(t, result.ChatbotResponse)
		assert.Equal(t, []sentText{{"5511@c.us", "sorry: connection", "default"}}, waha.sent)
	}
}

func TestProcessWebhookUnexpectedErrorSendsApology(t *testing.T) {
	waha := &fakeWaha{}
	gs := NewGatewayService(testLogger(), &fakeChatbotAPI{err: errors.New("invalid character '<'")}, waha, testApologies)

	result := gs.ProcessWebhook(context.Background(), webhookEvent("hi", false))

	assert.Equal(t, dto.StatusError, result.Status)
	assert.Equal(t, "An error occurred: invalid character '<'", result.Message)
	assert.Equal(t, []sentText{{"5511@c.us", "sorry: unexpected", "default"}}, waha.sent)
}

func TestProcessWebhookSendFailureStillSucceeds(t *testing.T) {
	api := &fakeChatbotAPI{resp: dto.ChatbotResponse{Response: "hello!", Status: "success"}}
	waha := &fakeWaha{err: errors.New("waha down")}
	gs := NewGatewayService(testLogger(), api, waha, testApologies)

	result := gs.ProcessWebhook(context.Background(), webhookEvent("hi", false))

	assert.Equal(t, dto.StatusSuccess, result.Status)
	assert.Nil(t, result.SendResponse)
	assert.Len(t, waha.sent, 1)

	encoded, err := json.Marshal(result)
	require.NoError(t, err)
	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(encoded, &body))
	sendResponse, present := body["send_response"]
	assert.True(t, present)
	assert.Nil(t, sendResponse)
}
