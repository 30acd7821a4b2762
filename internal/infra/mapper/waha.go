package mapper

import "chatbot-relay/internal/domain/dto"

// MapToChatbotRequest asks the chatbot with the message body on behalf of the sender.
func MapToChatbotRequest(event dto.WahaWebhook) dto.ChatbotRequest {
	return dto.ChatbotRequest{
		Question: event.Payload.Body,
		User:     event.Payload.From,
	}
}

func MapToSendTextRequest(chatID string, text string, session string) dto.SendTextRequest {
	return dto.SendTextRequest{
		ChatID:                 chatID,
		ReplyTo:                nil,
		Text:                   text,
		LinkPreview:            true,
		LinkPreviewHighQuality: false,
		Session:                session,
	}
}
