package llm

import (
	"chatbot-relay/internal/config"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateClientSelectsProvider(t *testing.T) {
	f := &Factory{OpenaiAPIKey: "sk-openai", NvidiaAPIKey: "nv-key", AnthropicAPIKey: "sk-ant", Temperature: 0.7}

	c, err := f.CreateClient("OpenAI", "")
	require.NoError(t, err)
	oa, ok := c.(*OpenAIClient)
	require.True(t, ok)
	assert.Equal(t, "gpt-4o-mini", oa.model)

	c, err = f.CreateClient("nvidia", "")
	require.NoError(t, err)
	nv, ok := c.(*OpenAIClient)
	require.True(t, ok)
	assert.Equal(t, "meta/llama-4-maverick-17b-128e-instruct", nv.model)

	c, err = f.CreateClient("anthropic", "claude-sonnet-4-0")
	require.NoError(t, err)
	ant, ok := c.(*AnthropicClient)
	require.True(t, ok)
	assert.Equal(t, "claude-sonnet-4-0", ant.model)
}

func TestCreateClientMissingKey(t *testing.T) {
	f := &Factory{}

	for _, provider := range []string{ProviderOpenAI, ProviderNvidia, ProviderAnthropic, ProviderYandex} {
		_, err := f.CreateClient(provider, "")
		assert.ErrorIs(t, err, ErrMissingAPIKey, provider)
	}

	_, err := f.CreateClient("nvidia", "")
	assert.ErrorContains(t, err, "NVIDIA_API_KEY")
}

func TestCreateClientUnknownProvider(t *testing.T) {
	f := &Factory{OpenaiAPIKey: "sk"}
	_, err := f.CreateClient("mistral", "")
	assert.ErrorIs(t, err, ErrUnknownProvider)
	assert.ErrorContains(t, err, "mistral")
}

func TestNewFactoryFromConfig(t *testing.T) {
	cfg := &config.ChatbotConfig{OpenAIAPIKey: "sk", NvidiaBaseURL: "http://nv.local/v1", ModelTemperature: "0.3"}
	f := NewFactory(cfg)

	assert.Equal(t, "sk", f.OpenaiAPIKey)
	assert.Equal(t, "http://nv.local/v1", f.NvidiaBaseURL)
	assert.InDelta(t, 0.3, f.Temperature, 0.0001)
}
