package llm

import (
	"context"
	"fmt"
	"strings"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"
)

const anthropicMaxTokens = 1024

type AnthropicClient struct {
	client      anthropic.Client
	model       string
	temperature float64
}

func NewAnthropic(apiKey, baseURL, model string, temperature float32) *AnthropicClient {
	opts := []option.RequestOption{option.WithAPIKey(apiKey)}
	if baseURL != "" {
		opts = append(opts, option.WithBaseURL(baseURL))
	}
	return &AnthropicClient{
		client:      anthropic.NewClient(opts...),
		model:       model,
		temperature: float64(temperature),
	}
}

// Generate sends system messages as the system prompt and the rest as turns.
func (c *AnthropicClient) Generate(ctx context.Context, messages []Message) (Response, error) {
	var system []anthropic.TextBlockParam
	var turns []anthropic.MessageParam
	for _, m := range messages {
		switch m.Role {
		case "system":
			system = append(system, anthropic.TextBlockParam{Text: m.Content})
		case "assistant":
			turns = append(turns, anthropic.NewAssistantMessage(anthropic.NewTextBlock(m.Content)))
		default:
			turns = append(turns, anthropic.NewUserMessage(anthropic.NewTextBlock(m.Content)))
		}
	}

	params := anthropic.MessageNewParams{
		Model:       anthropic.Model(c.model),
		MaxTokens:   anthropicMaxTokens,
		Messages:    turns,
		Temperature: anthropic.Float(c.temperature),
	}
	if len(system) > 0 {
		params.System = system
	}

	resp, err := c.client.Messages.New(ctx, params)
	if err != nil {
		return Response{}, fmt.Errorf("anthropic completion failed: %w", err)
	}

	var sb strings.Builder
	for _, block := range resp.Content {
		if block.Type == "text" {
			sb.WriteString(block.Text)
		}
	}
	if sb.Len() == 0 {
		return Response{}, ErrEmptyResponse
	}

	out := Response{Content: sb.String(), Model: string(resp.Model)}
	out.PromptTokens = int(resp.Usage.InputTokens)
	out.CompletionTokens = int(resp.Usage.OutputTokens)
	out.TotalTokens = out.PromptTokens + out.CompletionTokens
	return out, nil
}
