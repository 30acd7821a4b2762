package services

import (
	"chatbot-relay/internal/domain/dto"
	"chatbot-relay/internal/domain/entities"
	"chatbot-relay/internal/domain/interfaces/repository"
	"chatbot-relay/internal/infra/llm"
	"chatbot-relay/internal/infra/logger"
	"context"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"
)

const DefaultSystemPrompt = "You are a helpful and friendly assistant. Answer clearly and concisely. " +
	"Keep the context of the conversation and remember important information the user shares with you."

// ChatbotService answers questions with the configured LLM, using each user's history as context.
type ChatbotService struct {
	Logger            *logger.Logger
	LLMClient         llm.Client
	HistoryRepository repository.HistoryRepository
	SystemPrompt      string
	Timeout           time.Duration

	now func() time.Time
}

func NewChatbotService(logger *logger.Logger, llmClient llm.Client, historyRepository repository.HistoryRepository, systemPrompt string, timeout time.Duration) *ChatbotService {
	return &ChatbotService{
		Logger:            logger,
		LLMClient:         llmClient,
		HistoryRepository: historyRepository,
		SystemPrompt:      systemPrompt,
		Timeout:           timeout,
		now:               time.Now,
	}
}

// ProcessQuestion never fails; errors are reported through the response status.
func (cs *ChatbotService) ProcessQuestion(ctx context.Context, question string, user string) dto.ChatbotResponse {
	answer, err := cs.answer(ctx, question, user)

	response := dto.ChatbotResponse{
		User:      user,
		Question:  question,
		Timestamp: cs.now().Format(time.RFC3339),
	}
	if err != nil {
		cs.Logger.Error(fmt.Sprintf("Failed to process question: %v", err), logrus.Fields{"user": user})
		response.Status = dto.StatusError
		response.Response = fmt.Sprintf("Error processing question: %v", err)
		return response
	}

	response.Status = dto.StatusSuccess
	response.Response = answer
	return response
}

func (cs *ChatbotService) answer(ctx context.Context, question string, user string) (string, error) {
	conversation, err := cs.HistoryRepository.Find(ctx, user)
	if err != nil {
		return "", fmt.Errorf("load history: %w", err)
	}

	messages := make([]llm.Message, 0, len(conversation.Messages)+2)
	if cs.SystemPrompt != "" {
		messages = append(messages, llm.Message{Role: entities.RoleSystem, Content: cs.SystemPrompt})
	}
	for _, m := range conversation.Messages {
		messages = append(messages, llm.Message{Role: m.Role, Content: m.Content})
	}
	messages = append(messages, llm.Message{Role: entities.RoleUser, Content: question})

	askedAt := cs.now()
	result, err := cs.generate(ctx, messages)
	if err != nil {
		return "", err
	}

	// The question is only remembered together with its answer.
	err = cs.HistoryRepository.Append(ctx, user,
		entities.Message{Role: entities.RoleUser, Content: question, Timestamp: askedAt},
		entities.Message{Role: entities.RoleAssistant, Content: result.Content, Timestamp: cs.now()},
	)
	if err != nil {
		cs.Logger.Warn(fmt.Sprintf("Failed to save history: %v", err), logrus.Fields{"user": user})
	}

	cs.Logger.Debug("LLM answered", logrus.Fields{
		"user":              user,
		"model":             result.Model,
		"prompt_tokens":     result.PromptTokens,
		"completion_tokens": result.CompletionTokens,
	})
	return result.Content, nil
}

func (cs *ChatbotService) generate(ctx context.Context, messages []llm.Message) (llm.Response, error) {
	if cs.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, cs.Timeout)
		defer cancel()
	}
	return cs.LLMClient.Generate(ctx, messages)
}

func (cs *ChatbotService) GetHistory(ctx context.Context, user string) dto.HistoryResponse {
	conversation, err := cs.HistoryRepository.Find(ctx, user)
	if err != nil {
		cs.Logger.Error(fmt.Sprintf("Failed to load history: %v", err), logrus.Fields{"user": user})
		return dto.HistoryResponse{
			User:     user,
			Messages: []dto.HistoryMessage{},
			Status:   dto.StatusError,
			Error:    err.Error(),
		}
	}

	messages := make([]dto.HistoryMessage, 0, len(conversation.Messages))
	for i, m := range conversation.Messages {
		messages = append(messages, dto.HistoryMessage{
			ID:        i,
			Role:      m.Role,
			Content:   m.Content,
			Timestamp: m.Timestamp.Format(time.RFC3339),
		})
	}

	return dto.HistoryResponse{
		User:           user,
		Messages:       messages,
		TotalMessages:  len(messages),
		ConversationID: "user_" + user,
		Status:         dto.StatusSuccess,
	}
}

// Stats counts users with a history and the messages across all of them.
func (cs *ChatbotService) Stats(ctx context.Context) (users int, messages int, err error) {
	conversations, err := cs.HistoryRepository.FindAll(ctx)
	if err != nil {
		return 0, 0, err
	}
	for _, c := range conversations {
		messages += len(c.Messages)
	}
	return len(conversations), messages, nil
}
