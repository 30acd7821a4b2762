package config

import (
	"os"
	"testing"
	"time"

	"github.com/caarlos0/env/v6"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestChatbotConfigDefaults(t *testing.T) {
	cfg := NewChatbotConfig()

	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, "openai", cfg.ModelProvider)
	assert.Equal(t, "memory", cfg.HistoryBackend)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.True(t, cfg.LogJSON)
	assert.Equal(t, 60*time.Second, cfg.LLMTimeout)
	assert.InDelta(t, 0.7, cfg.Temperature(), 0.0001)
}

func TestChatbotConfigTemperature(t *testing.T) {
	t.Setenv("MODEL_TEMPERATURE", "0.2")
	cfg := NewChatbotConfig()
	assert.InDelta(t, 0.2, cfg.Temperature(), 0.0001)

	cfg.ModelTemperature = "warm"
	assert.InDelta(t, DefaultTemperature, cfg.Temperature(), 0.0001)
}

func TestGatewayConfigFromEnv(t *testing.T) {
	t.Setenv("CHATBOT_API_URL", "http://chatbot:8080")
	t.Setenv("WAHA_API_URL", "http://waha:3000")
	t.Setenv("CHATBOT_API_TIMEOUT", "5s")
	t.Setenv("LOG_JSON", "false")

	cfg := NewGatewayConfig()

	assert.Equal(t, "http://chatbot:8080", cfg.ChatbotAPIURL)
	assert.Equal(t, "http://waha:3000", cfg.WahaAPIURL)
	assert.Equal(t, 5*time.Second, cfg.ChatbotAPITimeout)
	assert.Equal(t, 15*time.Second, cfg.WahaAPITimeout)
	assert.False(t, cfg.LogJSON)
	assert.NotEmpty(t, cfg.ApologyConnectionError)
}

func TestWebConfigCORSOrigins(t *testing.T) {
	t.Setenv("CORS_ALLOWED_ORIGINS", "http://a.test,http://b.test")
	cfg := NewWebConfig()

	require.Len(t, cfg.CORSAllowedOrigins, 2)
	assert.Equal(t, "http://b.test", cfg.CORSAllowedOrigins[1])
	assert.Equal(t, "http://localhost:8080", cfg.ChatbotAPIBaseURL)
	assert.Equal(t, 30*time.Second, cfg.ChatTimeout)
	assert.Equal(t, 10*time.Second, cfg.HistoryTimeout)
}

func TestWebConfigDefaultsToSameOrigin(t *testing.T) {
	t.Setenv("CORS_ALLOWED_ORIGINS", "")
	cfg := NewWebConfig()

	assert.Empty(t, cfg.CORSAllowedOrigins)
}

func TestGatewayConfigRequiresUpstreamURLs(t *testing.T) {
	t.Setenv("CHATBOT_API_URL", "")
	t.Setenv("WAHA_API_URL", "")
	os.Unsetenv("CHATBOT_API_URL")
	os.Unsetenv("WAHA_API_URL")

	err := env.Parse(&GatewayConfig{})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "CHATBOT_API_URL")
}
