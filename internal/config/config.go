package config

import (
	"log"
	"strconv"
	"time"

	"github.com/caarlos0/env/v6"
	"github.com/joho/godotenv"
)

const DefaultTemperature = 0.7

// LoadEnv loads variables from a .env file in the working directory.
// A missing file is not fatal; the process environment is used as is.
func LoadEnv() error {
	err := godotenv.Load(".env")
	if err != nil {
		log.Printf("Warning: .env file not loaded: %v", err)
		return err
	}
	return nil
}

// Logging is shared by every service.
type Logging struct {
	LogLevel string `env:"LOG_LEVEL" envDefault:"info"`
	LogJSON  bool   `env:"LOG_JSON" envDefault:"true"`
}

type ChatbotConfig struct {
	Logging
	Port string `env:"PORT" envDefault:"8080"`

	ModelProvider    string        `env:"MODEL_PROVIDER" envDefault:"openai"`
	ModelName        string        `env:"MODEL_NAME"`
	ModelTemperature string        `env:"MODEL_TEMPERATURE" envDefault:"0.7"`
	SystemPrompt     string        `env:"SYSTEM_PROMPT"`
	LLMTimeout       time.Duration `env:"LLM_TIMEOUT" envDefault:"60s"`

	OpenAIAPIKey     string `env:"OPENAI_API_KEY"`
	OpenAIBaseURL    string `env:"OPENAI_BASE_URL"`
	NvidiaAPIKey     string `env:"NVIDIA_API_KEY"`
	NvidiaBaseURL    string `env:"NVIDIA_BASE_URL"`
	AnthropicAPIKey  string `env:"ANTHROPIC_API_KEY"`
	AnthropicBaseURL string `env:"ANTHROPIC_BASE_URL"`
	YandexOAuthToken string `env:"YANDEX_OAUTH_TOKEN"`
	YandexFolderID   string `env:"YANDEX_FOLDER_ID"`

	HistoryBackend       string `env:"HISTORY_BACKEND" envDefault:"memory"`
	MongoURI             string `env:"MONGODB_URI"`
	MongoDatabase        string `env:"MONGODB_DATABASE" envDefault:"chatbot"`
	HistoryStatsSchedule string `env:"HISTORY_STATS_SCHEDULE" envDefault:"@every 1h"`
}

// Temperature parses MODEL_TEMPERATURE, falling back to DefaultTemperature
// when the value is not a number.
func (c *ChatbotConfig) Temperature() float32 {
	t, err := strconv.ParseFloat(c.ModelTemperature, 32)
	if err != nil {
		return DefaultTemperature
	}
	return float32(t)
}

type GatewayConfig struct {
	Logging
	Port string `env:"PORT" envDefault:"8000"`

	ChatbotAPIURL     string        `env:"CHATBOT_API_URL,required"`
	ChatbotAPITimeout time.Duration `env:"CHATBOT_API_TIMEOUT" envDefault:"60s"`
	WahaAPIURL        string        `env:"WAHA_API_URL,required"`
	WahaAPIKey        string        `env:"WAHA_API_KEY"`
	WahaAPITimeout    time.Duration `env:"WAHA_API_TIMEOUT" envDefault:"15s"`

	ApologyChatbotError    string `env:"APOLOGY_CHATBOT_ERROR" envDefault:"Sorry, I can't process your message right now. Please try again later."`
	ApologyConnectionError string `env:"APOLOGY_CONNECTION_ERROR" envDefault:"Sorry, there is a connection problem. Please try again later."`
	ApologyUnexpectedError string `env:"APOLOGY_UNEXPECTED_ERROR" envDefault:"Sorry, an unexpected error occurred. Please try again later."`
}

type WebConfig struct {
	Logging
	Port string `env:"PORT" envDefault:"5000"`

	SecretKey          string        `env:"SECRET_KEY" envDefault:"your-secret-key-here"`
	ChatbotAPIBaseURL  string        `env:"CHATBOT_API_BASE_URL" envDefault:"http://localhost:8080"`
	ChatTimeout        time.Duration `env:"CHAT_TIMEOUT" envDefault:"30s"`
	HistoryTimeout     time.Duration `env:"HISTORY_TIMEOUT" envDefault:"10s"`
	CORSAllowedOrigins []string      `env:"CORS_ALLOWED_ORIGINS" envSeparator:","`
}

func NewChatbotConfig() *ChatbotConfig {
	cfg := &ChatbotConfig{}
	mustParse(cfg)
	return cfg
}

func NewGatewayConfig() *GatewayConfig {
	cfg := &GatewayConfig{}
	mustParse(cfg)
	return cfg
}

func NewWebConfig() *WebConfig {
	cfg := &WebConfig{}
	mustParse(cfg)
	return cfg
}

func mustParse(cfg interface{}) {
	if err := env.Parse(cfg); err != nil {
		log.Fatalf("failed to parse config: %v", err)
	}
}
