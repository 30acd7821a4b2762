package provider

import (
	"bytes"
	"chatbot-relay/internal/infra/logger"
	"chatbot-relay/internal/infra/mapper"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
)

type WahaProvider struct {
	Logger     *logger.Logger
	BaseURL    string
	APIKey     string
	HttpClient *http.Client
}

func NewWahaProvider(logger *logger.Logger, baseURL string, apiKey string, httpClient *http.Client) *WahaProvider {
	return &WahaProvider{Logger: logger, BaseURL: strings.TrimRight(baseURL, "/"), APIKey: apiKey, HttpClient: httpClient}
}

// SendText sends text to chatID through the WAHA session and returns WAHA's reply body.
func (th *WahaProvider) SendText(ctx context.Context, chatID string, text string, session string) (json.RawMessage, error) {
	if chatID == "" || text == "" {
		return nil, fmt.Errorf("recipient (chatId) and text cannot be empty")
	}

	payload, err := json.Marshal(mapper.MapToSendTextRequest(chatID, text, session))
	if err != nil {
		return nil, fmt.Errorf("failed to marshal payload: %w", err)
	}

	url := fmt.Sprintf("%s/api/sendText", th.BaseURL)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("failed to create HTTP request: %w", err)
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	if th.APIKey != "" {
		req.Header.Set("X-Api-Key", th.APIKey)
	}

	res, err := th.HttpClient.Do(req)
	if err != nil {
		th.Logger.Error(fmt.Sprintf("HTTP request failed %v", err))
		return nil, fmt.Errorf("HTTP request failed: %w", err)
	}
	defer res.Body.Close()

	body, err := io.ReadAll(res.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response body: %w", err)
	}

	if res.StatusCode < http.StatusOK || res.StatusCode >= http.StatusMultipleChoices {
		th.Logger.Error(fmt.Sprintf("Unexpected HTTP status %s response_body %s", res.Status, string(body)))
		return nil, fmt.Errorf("unexpected HTTP status: %s", res.Status)
	}

	th.Logger.Info(fmt.Sprintf("Message sent successfully to %s status %s", chatID, res.Status))

	if len(bytes.TrimSpace(body)) == 0 {
		return nil, nil
	}
	if !json.Valid(body) {
		quoted, _ := json.Marshal(string(body))
		return quoted, nil
	}
	return body, nil
}
