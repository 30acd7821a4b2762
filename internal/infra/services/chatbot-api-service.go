package services

import (
	"bytes"
	"chatbot-relay/internal/domain/dto"
	"chatbot-relay/internal/infra/logger"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"net/url"
	"strings"
	"time"
)

var (
	ErrChatbotTimeout     = errors.New("chatbot API request timed out")
	ErrChatbotUnavailable = errors.New("unable to reach chatbot API")
	// ErrChatbotFailed means the chatbot API answered 200 with a non-success status.
	ErrChatbotFailed = errors.New("chatbot API reported an error")
)

// ChatbotAPIError is returned when the chatbot API answers with a non-200 status.
type ChatbotAPIError struct {
	StatusCode int
	Body       string
}

func (e *ChatbotAPIError) Error() string {
	return fmt.Sprintf("chatbot API returned status %d", e.StatusCode)
}

// IsTransportError reports whether err came from talking to the chatbot API
// rather than from the chatbot itself.
func IsTransportError(err error) bool {
	var apiErr *ChatbotAPIError
	return errors.Is(err, ErrChatbotTimeout) || errors.Is(err, ErrChatbotUnavailable) || errors.As(err, &apiErr)
}

// ChatbotAPIService calls the chatbot API over HTTP.
type ChatbotAPIService struct {
	Logger         *logger.Logger
	BaseURL        string
	HttpClient     *http.Client
	AskTimeout     time.Duration
	HistoryTimeout time.Duration
}

func NewChatbotAPIService(logger *logger.Logger, baseURL string, httpClient *http.Client, askTimeout time.Duration, historyTimeout time.Duration) *ChatbotAPIService {
	return &ChatbotAPIService{
		Logger:         logger,
		BaseURL:        strings.TrimRight(baseURL, "/"),
		HttpClient:     httpClient,
		AskTimeout:     askTimeout,
		HistoryTimeout: historyTimeout,
	}
}

// Ask posts a question for user. When the chatbot answers with a non-success
// status the decoded response is returned together with ErrChatbotFailed.
func (th *ChatbotAPIService) Ask(ctx context.Context, question string, user string) (dto.ChatbotResponse, error) {
	payload, err := json.Marshal(dto.ChatbotRequest{Question: question, User: user})
	if err != nil {
		return dto.ChatbotResponse{}, fmt.Errorf("failed to marshal payload: %w", err)
	}

	var response dto.ChatbotResponse
	err = th.do(ctx, th.AskTimeout, http.MethodPost, th.BaseURL+"/api/chatbot", payload, &response)
	if err != nil {
		return dto.ChatbotResponse{}, err
	}

	if response.Status != dto.StatusSuccess {
		return response, fmt.Errorf("%w: status %q", ErrChatbotFailed, response.Status)
	}
	return response, nil
}

func (th *ChatbotAPIService) History(ctx context.Context, user string) (dto.HistoryResponse, error) {
	endpoint := fmt.Sprintf("%s/api/chatbot/history?%s", th.BaseURL, url.Values{"user": {user}}.Encode())

	var response dto.HistoryResponse
	if err := th.do(ctx, th.HistoryTimeout, http.MethodGet, endpoint, nil, &response); err != nil {
		return dto.HistoryResponse{}, err
	}
	if response.Messages == nil {
		response.Messages = []dto.HistoryMessage{}
	}
	return response, nil
}

func (th *ChatbotAPIService) do(ctx context.Context, timeout time.Duration, method string, endpoint string, payload []byte, out interface{}) error {
	if timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, timeout)
		defer cancel()
	}

	var body io.Reader
	if payload != nil {
		body = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, endpoint, body)
	if err != nil {
		return fmt.Errorf("failed to create HTTP request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	res, err := th.HttpClient.Do(req)
	if err != nil {
		th.Logger.Error(fmt.Sprintf("Chatbot API request failed: %v", err))
		return classifyTransportError(err)
	}
	defer res.Body.Close()

	if res.StatusCode != http.StatusOK {
		resBody, _ := io.ReadAll(io.LimitReader(res.Body, 4096))
		th.Logger.Error(fmt.Sprintf("Unexpected chatbot API status %s response_body %s", res.Status, string(resBody)))
		return &ChatbotAPIError{StatusCode: res.StatusCode, Body: string(resBody)}
	}

	if err := json.NewDecoder(res.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode chatbot API response: %w", err)
	}
	return nil
}

func classifyTransportError(err error) error {
	if errors.Is(err, context.DeadlineExceeded) {
		return fmt.Errorf("%w: %v", ErrChatbotTimeout, err)
	}
	var netErr net.Error
	if errors.As(err, &netErr) && netErr.Timeout() {
		return fmt.Errorf("%w: %v", ErrChatbotTimeout, err)
	}
	if errors.Is(err, context.Canceled) {
		return err
	}
	return fmt.Errorf("%w: %v", ErrChatbotUnavailable, err)
}
