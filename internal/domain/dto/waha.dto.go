package dto

import "encoding/json"

// WahaWebhook is the event WAHA posts for every incoming WhatsApp message.
type WahaWebhook struct {
	Event   string         `json:"event"`
	Session string         `json:"session"`
	Payload MessagePayload `json:"payload"`
}

type MessagePayload struct {
	ID        string                 `json:"id"`
	Timestamp int64                  `json:"timestamp"`
	From      string                 `json:"from"`
	FromMe    bool                   `json:"fromMe"`
	To        string                 `json:"to"`
	Body      string                 `json:"body"`
	HasMedia  bool                   `json:"hasMedia"`
	Ack       int                    `json:"ack"`
	VCards    []string               `json:"vCards"`
	Data      map[string]interface{} `json:"_data,omitempty"`
}

type SendTextRequest struct {
	ChatID                 string  `json:"chatId"`
	ReplyTo                *string `json:"reply_to"`
	Text                   string  `json:"text"`
	LinkPreview            bool    `json:"linkPreview"`
	LinkPreviewHighQuality bool    `json:"linkPreviewHighQuality"`
	Session                string  `json:"session"`
}

// GatewayResult is returned to WAHA as the webhook response body.
type GatewayResult struct {
	Status          string           `json:"status"`
	Message         string           `json:"message"`
	ChatbotResponse *ChatbotResponse `json:"chatbot_response,omitempty"`
	SendResponse    json.RawMessage  `json:"send_response"`
}
