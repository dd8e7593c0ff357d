package llm

import (
	"context"
	"fmt"

	"github.com/evandrarf/linguaflow-be/internal/chat"
	"github.com/evandrarf/linguaflow-be/internal/pkg/apperror"
	openai "github.com/sashabaranov/go-openai"
)

// OpenAIClient talks to any OpenAI-compatible chat completions API
// (OpenAI, OpenRouter, local gateways).
type OpenAIClient struct {
	APIKey  string
	BaseURL string
	Model   string
	client  *openai.Client
}

func NewOpenAIClient(apiKey string, model string, baseURL string) *OpenAIClient {
	if model == "" {
		model = "openai/gpt-4o-mini"
	}
	if baseURL == "" {
		baseURL = "https://openrouter.ai/api/v1"
	}

	config := openai.DefaultConfig(apiKey)
	config.BaseURL = baseURL

	return &OpenAIClient{
		APIKey:  apiKey,
		Model:   model,
		BaseURL: baseURL,
		client:  openai.NewClientWithConfig(config),
	}
}

func toOpenAIMessages(req ChatRequest) []openai.ChatCompletionMessage {
	messages := make([]openai.ChatCompletionMessage, 0, len(req.History)+2)
	if req.System != "" {
		messages = append(messages, openai.ChatCompletionMessage{
			Role:    openai.ChatMessageRoleSystem,
			Content: req.System,
		})
	}
	for _, msg := range req.History {
		role := openai.ChatMessageRoleAssistant
		if msg.Role == chat.RoleUser {
			role = openai.ChatMessageRoleUser
		}
		messages = append(messages, openai.ChatCompletionMessage{
			Role:    role,
			Content: msg.Content,
		})
	}
	return append(messages, openai.ChatCompletionMessage{
		Role:    openai.ChatMessageRoleUser,
		Content: req.Message,
	})
}

// Complete returns the plain text tutor reply.
func (c *OpenAIClient) Complete(ctx context.Context, req ChatRequest) (string, error) {
	if c.client == nil {
		return "", fmt.Errorf("client not initialized")
	}

	resp, err := c.client.CreateChatCompletion(
		ctx,
		openai.ChatCompletionRequest{
			Model:       c.Model,
			Messages:    toOpenAIMessages(req),
			Temperature: 0.7,
			TopP:        0.95,
			MaxTokens:   2048,
		},
	)
	if err != nil {
		return "", apperror.Network("openai chat", err)
	}

	if len(resp.Choices) == 0 {
		return "", apperror.Network("openai chat", fmt.Errorf("returned no choices"))
	}

	text := resp.Choices[0].Message.Content
	if text == "" {
		return "", apperror.Network("openai chat", fmt.Errorf("returned empty response"))
	}

	return text, nil
}
