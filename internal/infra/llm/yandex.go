package llm

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/Morwran/yagpt"
)

// iamRefreshMargin renews the IAM token this long before it expires.
const iamRefreshMargin = 5 * time.Minute

type YandexClient struct {
	ya  yagpt.YaGPTFace
	iam yagpt.IamFace

	mu        sync.Mutex
	iamToken  string
	expiresAt time.Time
	now       func() time.Time
}

// NewYandex exchanges the OAuth token for an IAM token. The token is renewed
// on demand once it gets close to expiry.
func NewYandex(oauthToken, folderID string) (*YandexClient, error) {
	iam, err := yagpt.NewYaIam(oauthToken)
	if err != nil {
		return nil, fmt.Errorf("failed to init yandex iam: %w", err)
	}

	ya, err := yagpt.NewYagpt(folderID)
	if err != nil {
		return nil, fmt.Errorf("failed to init yagpt: %w", err)
	}

	client := newYandexClient(ya, iam)
	if _, err := client.token(context.Background()); err != nil {
		return nil, err
	}
	return client, nil
}

func newYandexClient(ya yagpt.YaGPTFace, iam yagpt.IamFace) *YandexClient {
	return &YandexClient{ya: ya, iam: iam, now: time.Now}
}

func (c *YandexClient) token(ctx context.Context) (string, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.iamToken != "" && c.now().Before(c.expiresAt.Add(-iamRefreshMargin)) {
		return c.iamToken, nil
	}

	resp, err := c.iam.CreateWithCtx(ctx)
	if err != nil {
		return "", fmt.Errorf("failed to create iam token: %w", err)
	}
	c.iamToken = resp.IamToken
	c.expiresAt = resp.ExpiresAt
	return c.iamToken, nil
}

func (c *YandexClient) Generate(ctx context.Context, messages []Message) (Response, error) {
	iamToken, err := c.token(ctx)
	if err != nil {
		return Response{}, err
	}

	yaMsgs := make([]yagpt.Message, 0, len(messages))
	for _, m := range messages {
		yaMsgs = append(yaMsgs, yagpt.Message{Role: m.Role, Content: m.Content})
	}

	resp, err := c.ya.CompletionWithCtx(ctx, iamToken, yaMsgs)
	if err != nil {
		return Response{}, fmt.Errorf("yagpt completion failed: %w", err)
	}
	if resp == nil || len(resp.Alternatives) == 0 {
		return Response{}, ErrEmptyResponse
	}
	out := Response{Content: resp.Alternatives[0].Message.Content, Model: yagpt.YaModelLite}
	out.PromptTokens = int(resp.Usage.InputTextTokens)
	out.CompletionTokens = int(resp.Usage.CompletionTokens)
	out.TotalTokens = int(resp.Usage.TotalTokens)
	return out, nil
}
