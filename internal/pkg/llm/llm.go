package llm

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/evandrarf/linguaflow-be/internal/chat"
	"github.com/spf13/viper"
)

const (
	ProviderOpenAI  = "openai"
	ProviderGemini  = "gemini"
	ProviderWebhook = "webhook"

	defaultTimeout = 60 * time.Second
)

// ChatRequest is one tutor turn: the system prompt, the replayed history and
// the new user message.
type ChatRequest struct {
	UserID    string
	SessionID string
	System    string
	History   []chat.Message
	Message   string
}

// ChatCompleter is an opaque text-in/text-out AI endpoint.
type ChatCompleter interface {
	Complete(ctx context.Context, req ChatRequest) (string, error)
}

type Config struct {
	Provider      string
	APIKey        string
	Model         string
	BaseURL       string
	WebhookURL    string
	RetryAttempts uint
	Timeout       time.Duration
}

func ConfigFromViper(v *viper.Viper) Config {
	cfg := Config{
		Provider:      strings.ToLower(v.GetString("llm.provider")),
		APIKey:        v.GetString("llm.api_key"),
		Model:         v.GetString("llm.model"),
		BaseURL:       v.GetString("llm.base_url"),
		WebhookURL:    v.GetString("llm.webhook_url"),
		RetryAttempts: v.GetUint("llm.retry_attempts"),
		Timeout:       v.GetDuration("llm.timeout"),
	}
	if cfg.Provider == "" {
		cfg.Provider = ProviderOpenAI
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = defaultTimeout
	}
	return cfg
}

// New builds the configured provider. Every call is bounded by cfg.Timeout.
func New(ctx context.Context, cfg Config) (ChatCompleter, error) {
	var (
		c   ChatCompleter
		err error
	)
	switch cfg.Provider {
	case ProviderOpenAI:
		c = NewOpenAIClient(cfg.APIKey, cfg.Model, cfg.BaseURL)
	case ProviderGemini:
		c, err = NewGeminiClient(ctx, cfg.APIKey, cfg.Model, cfg.BaseURL)
	case ProviderWebhook:
		c, err = NewWebhookClient(cfg.WebhookURL, cfg.RetryAttempts)
	default:
		return nil, fmt.Errorf("unknown llm provider %q", cfg.Provider)
	}
	if err != nil {
		return nil, err
	}
	return WithTimeout(c, cfg.Timeout), nil
}

type timeoutCompleter struct {
	next    ChatCompleter
	timeout time.Duration
}

func WithTimeout(c ChatCompleter, timeout time.Duration) ChatCompleter {
	if timeout <= 0 {
		return c
	}
	return &timeoutCompleter{next: c, timeout: timeout}
}

func (t *timeoutCompleter) Complete(ctx context.Context, req ChatRequest) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, t.timeout)
	defer cancel()
	return t.next.Complete(ctx, req)
}
