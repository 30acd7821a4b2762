package llm

import (
	"chatbot-relay/internal/config"
	"fmt"
	"strings"
)

const (
	ProviderOpenAI    = "openai"
	ProviderNvidia    = "nvidia"
	ProviderAnthropic = "anthropic"
	ProviderYandex    = "yandex"
)

// NvidiaBaseURL is NVIDIA's OpenAI-compatible inference endpoint.
const NvidiaBaseURL = "https://integrate.api.nvidia.com/v1"

var DefaultModels = map[string]string{
	ProviderOpenAI:    "gpt-4o-mini",
	ProviderNvidia:    "meta/llama-4-maverick-17b-128e-instruct",
	ProviderAnthropic: "claude-3-5-haiku-latest",
}

// Factory creates LLM clients from the chatbot configuration.
type Factory struct {
	OpenaiAPIKey     string
	OpenaiBaseURL    string
	NvidiaAPIKey     string
	NvidiaBaseURL    string
	AnthropicAPIKey  string
	AnthropicBaseURL string
	YandexOAuthToken string
	YandexFolderID   string
	Temperature      float32
}

func NewFactory(cfg *config.ChatbotConfig) *Factory {
	return &Factory{
		OpenaiAPIKey:     cfg.OpenAIAPIKey,
		OpenaiBaseURL:    cfg.OpenAIBaseURL,
		NvidiaAPIKey:     cfg.NvidiaAPIKey,
		NvidiaBaseURL:    cfg.NvidiaBaseURL,
		AnthropicAPIKey:  cfg.AnthropicAPIKey,
		AnthropicBaseURL: cfg.AnthropicBaseURL,
		YandexOAuthToken: cfg.YandexOAuthToken,
		YandexFolderID:   cfg.YandexFolderID,
		Temperature:      cfg.Temperature(),
	}
}

// CreateClient returns a client for provider. An empty model selects the provider default.
func (f *Factory) CreateClient(provider, model string) (Client, error) {
	provider = strings.ToLower(strings.TrimSpace(provider))
	if model == "" {
		model = DefaultModels[provider]
	}

	switch provider {
	case ProviderOpenAI:
		if f.OpenaiAPIKey == "" {
			return nil, missingKey("OPENAI_API_KEY")
		}
		return NewOpenAI(f.OpenaiAPIKey, f.OpenaiBaseURL, model, f.Temperature), nil
	case ProviderNvidia:
		if f.NvidiaAPIKey == "" {
			return nil, missingKey("NVIDIA_API_KEY")
		}
		baseURL := f.NvidiaBaseURL
		if baseURL == "" {
			baseURL = NvidiaBaseURL
		}
		return NewOpenAI(f.NvidiaAPIKey, baseURL, model, f.Temperature), nil
	case ProviderAnthropic:
		if f.AnthropicAPIKey == "" {
			return nil, missingKey("ANTHROPIC_API_KEY")
		}
		return NewAnthropic(f.AnthropicAPIKey, f.AnthropicBaseURL, model, f.Temperature), nil
	case ProviderYandex:
		if f.YandexOAuthToken == "" || f.YandexFolderID == "" {
			return nil, missingKey("YANDEX_OAUTH_TOKEN and YANDEX_FOLDER_ID")
		}
		return NewYandex(f.YandexOAuthToken, f.YandexFolderID)
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnknownProvider, provider)
	}
}

func missingKey(name string) error {
	return fmt.Errorf("%w: %s is not set", ErrMissingAPIKey, name)
}
