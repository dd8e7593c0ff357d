package llm

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/avast/retry-go"
	"github.com/evandrarf/linguaflow-be/internal/pkg/apperror"
	"github.com/go-resty/resty/v2"
)

const defaultRetryAttempts = 2

// WebhookClient posts each tutor turn to an automation webhook which owns the
// prompt and model selection. The reply is read from output, response or message.
type WebhookClient struct {
	httpClient       *resty.Client
	url              string
	maxRetryAttempts uint
	retryDelay       time.Duration
	now              func() time.Time
}

type webhookRequest struct {
	Message   string `json:"message"`
	UserID    string `json:"user_id"`
	SessionID string `json:"session_id"`
	Timestamp string `json:"timestamp"`
}

type webhookReply struct {
	Output   string `json:"output"`
	Response string `json:"response"`
	Message  string `json:"message"`
}

func (r webhookReply) text() string {
	for _, s := range []string{r.Output, r.Response, r.Message} {
		if s = strings.TrimSpace(s); s != "" {
			return s
		}
	}
	return ""
}

type statusError struct {
	code int
	body string
}

func (e *statusError) Error() string {
	return fmt.Sprintf("response error %d: %s", e.code, e.body)
}

func NewWebhookClient(url string, retryAttempts uint) (*WebhookClient, error) {
	if url == "" {
		return nil, fmt.Errorf("llm.webhook_url is required for the webhook provider")
	}
	if retryAttempts == 0 {
		retryAttempts = defaultRetryAttempts
	}

	client := resty.New()
	client.SetHeader("Content-Type", "application/json")

	return &WebhookClient{
		httpClient:       client,
		url:              url,
		maxRetryAttempts: retryAttempts,
		retryDelay:       200 * time.Millisecond,
		now:              time.Now,
	}, nil
}

func isRetryableError(err error) bool {
	if err == nil {
		return false
	}
	var se *statusError
	if errors.As(err, &se) {
		return se.code >= http.StatusInternalServerError || se.code == http.StatusTooManyRequests
	}
	// transport failures and unreadable bodies
	return true
}

func (c *WebhookClient) Complete(ctx context.Context, req ChatRequest) (string, error) {
	var reply string
	err := retry.Do(
		func() error {
			text, err := c.post(ctx, req)
			if err != nil {
				if !isRetryableError(err) {
					return retry.Unrecoverable(err)
				}
				return err
			}
			reply = text
			return nil
		},
		retry.Context(ctx),
		retry.Attempts(c.maxRetryAttempts+1),
		retry.Delay(c.retryDelay),
		retry.LastErrorOnly(true),
		retry.DelayType(func(n uint, err error, config *retry.Config) time.Duration {
			return retry.BackOffDelay(n, err, config)
		}),
	)
	if err != nil {
		return "", apperror.Network("chat webhook", err)
	}
	return reply, nil
}

func (c *WebhookClient) post(ctx context.Context, req ChatRequest) (string, error) {
	res, err := c.httpClient.R().
		SetContext(ctx).
		SetBody(webhookRequest{
			Message:   req.Message,
			UserID:    req.UserID,
			SessionID: req.SessionID,
			Timestamp: c.now().UTC().Format(time.RFC3339),
		}).
		Post(c.url)
	if err != nil {
		return "", err
	}
	if res.IsError() {
		return "", &statusError{code: res.StatusCode(), body: res.String()}
	}
	return parseWebhookReply(res.Body())
}

// parseWebhookReply accepts a single object or an array whose first element
// carries the reply.
func parseWebhookReply(body []byte) (string, error) {
	var one webhookReply
	if err := json.Unmarshal(body, &one); err == nil {
		if text := one.text(); text != "" {
			return text, nil
		}
		return "", fmt.Errorf("webhook reply has no output")
	}

	var many []webhookReply
	if err := json.Unmarshal(body, &many); err != nil {
		return "", fmt.Errorf("json.Unmarshal webhook reply: %w", err)
	}
	if len(many) == 0 || many[0].text() == "" {
		return "", fmt.Errorf("webhook reply has no output")
	}
	return many[0].text(), nil
}
