package llm

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOpenAIGenerateSendsHistory(t *testing.T) {
	var got struct {
		Model    string `json:"model"`
		Messages []struct {
			Role    string `json:"role"`
			Content string `json:"content"`
		} `json:"messages"`
	}

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/chat/completions", r.URL.Path)
		assert.Equal(t, "Bearer nv-key", r.Header.Get("Authorization"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"id":"c1","object":"chat.completion","created":1,"model":"m",
			"choices":[{"index":0,"message":{"role":"assistant","content":"Hi Ana"},"finish_reason":"stop"}],
			"usage":{"prompt_tokens":12,"completion_tokens":3,"total_tokens":15}}`))
	}))
	defer srv.Close()

	c := NewOpenAI("nv-key", srv.URL, "meta/llama", 0.7)
	resp, err := c.Generate(context.Background(), []Message{
		{Role: "system", Content: "be nice"},
		{Role: "user", Content: "I am Ana"},
		{Role: "assistant", Content: "Hello"},
		{Role: "user", Content: "Who am I?"},
	})
	require.NoError(t, err)

	assert.Equal(t, "Hi Ana", resp.Content)
	assert.Equal(t, 15, resp.TotalTokens)
	assert.Equal(t, "meta/llama", got.Model)
	require.Len(t, got.Messages, 4)
	assert.Equal(t, "assistant", got.Messages[2].Role)
	assert.Equal(t, "Who am I?", got.Messages[3].Content)
}

func TestOpenAIGenerateErrors(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusUnauthorized)
		w.Write([]byte(`{"error":{"message":"bad key","type":"invalid_request_error"}}`))
	}))
	defer srv.Close()

	c := NewOpenAI("bad", srv.URL, "gpt-4o-mini", 0.7)
	_, err := c.Generate(context.Background(), []Message{{Role: "user", Content: "hi"}})
	assert.ErrorContains(t, err, "failed to create chat completion")
}

func TestOpenAIGenerateNoChoices(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"id":"c1","object":"chat.completion","choices":[]}`))
	}))
	defer srv.Close()

	c := NewOpenAI("k", srv.URL, "gpt-4o-mini", 0.7)
	_, err := c.Generate(context.Background(), []Message{{Role: "user", Content: "hi"}})
	assert.ErrorIs(t, err, ErrEmptyResponse)
}
