package service

import (
	"context"
	"fmt"
)

const (
	ChatbotEmptyPrompt    = "Please enter a question."
	chatbotAnswerTemplate = "LLM chatbot (Local LLM API): here is the answer to '%s'."
)

// ChatbotService answers board questions. The current implementation is a
// placeholder that echoes the question; no model is called.
type ChatbotService interface {
	Ask(ctx context.Context, question string) string
}

type echoChatbot struct{}

func NewChatbotService() ChatbotService {
	return echoChatbot{}
}

func (echoChatbot) Ask(_ context.Context, question string) string {
	if question == "" {
		return ChatbotEmptyPrompt
	}
	return fmt.Sprintf(chatbotAnswerTemplate, question)
}
