package provider

import (
	"context"
	"encoding/json"
)

// IWahaProvider sends outbound WhatsApp messages through WAHA.
type IWahaProvider interface {
	SendText(ctx context.Context, chatID string, text string, session string) (json.RawMessage, error)
}
