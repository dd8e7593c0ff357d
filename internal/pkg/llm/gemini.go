package llm

import (
	"context"
	"fmt"
	"strings"

	"github.com/evandrarf/linguaflow-be/internal/chat"
	"github.com/evandrarf/linguaflow-be/internal/pkg/apperror"
	"google.golang.org/genai"
)

type GeminiClient struct {
	Model  string
	client *genai.Client
}

func NewGeminiClient(ctx context.Context, apiKey string, model string, baseURL string) (*GeminiClient, error) {
	if model == "" {
		model = "gemini-2.0-flash"
	}

	cc := &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	}
	if baseURL != "" {
		cc.HTTPOptions = genai.HTTPOptions{BaseURL: baseURL}
	}

	client, err := genai.NewClient(ctx, cc)
	if err != nil {
		return nil, fmt.Errorf("genai client: %w", err)
	}

	return &GeminiClient{Model: model, client: client}, nil
}

func toGeminiContents(req ChatRequest) []*genai.Content {
	contents := make([]*genai.Content, 0, len(req.History)+1)
	for _, msg := range req.History {
		var role genai.Role = genai.RoleModel
		if msg.Role == chat.RoleUser {
			role = genai.RoleUser
		}
		contents = append(contents, genai.NewContentFromText(msg.Content, role))
	}
	return append(contents, genai.NewContentFromText(req.Message, genai.RoleUser))
}

func (c *GeminiClient) Complete(ctx context.Context, req ChatRequest) (string, error) {
	config := &genai.GenerateContentConfig{
		Temperature:     genai.Ptr[float32](0.7),
		TopP:            genai.Ptr[float32](0.95),
		MaxOutputTokens: 2048,
	}
	if req.System != "" {
		config.SystemInstruction = genai.NewContentFromText(req.System, genai.RoleUser)
	}

	resp, err := c.client.Models.GenerateContent(ctx, c.Model, toGeminiContents(req), config)
	if err != nil {
		return "", apperror.Network("gemini chat", err)
	}

	text := strings.TrimSpace(resp.Text())
	if text == "" {
		return "", apperror.Network("gemini chat", fmt.Errorf("returned empty response"))
	}
	return text, nil
}
