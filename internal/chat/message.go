// Package chat holds the canonical chat message schema used by the AI tutor.
package chat

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/evandrarf/linguaflow-be/internal/pkg/apperror"
)

type Role string

const (
	RoleSystem    Role = "system"
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// FallbackReply is sent when the AI provider cannot be reached, so the thread
// still gets an assistant turn.
const FallbackReply = "I'm having trouble connecting right now. Please try again in a moment."

type Message struct {
	Role      Role      `json:"role"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"created_at,omitempty"`
}

// legacyPayload covers both shapes older clients stored:
// {"role":"user","content":"..."} and {"type":"bot","message":"..."}.
type legacyPayload struct {
	Role    string `json:"role"`
	Content string `json:"content"`
	Type    string `json:"type"`
	Message string `json:"message"`

	CreatedAt string `json:"created_at"`
}

var (
	errUnknownRole  = errors.New("unknown message author")
	errEmptyContent = errors.New("empty message content")
)

// ParseRole maps every author label seen in stored rows to a canonical role.
func ParseRole(s string) (Role, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "user", "human":
		return RoleUser, nil
	case "assistant", "bot", "ai":
		return RoleAssistant, nil
	case "system":
		return RoleSystem, nil
	}
	return "", fmt.Errorf("%w: %q", errUnknownRole, s)
}

// Normalize converts a stored JSON payload of either legacy shape into a
// Message. Unparsable payloads are DataErrors.
func Normalize(raw []byte) (Message, error) {
	var p legacyPayload
	if err := json.Unmarshal(raw, &p); err != nil {
		return Message{}, apperror.Data(string(raw), err)
	}

	author, content := p.Role, p.Content
	if author == "" {
		author = p.Type
	}
	if content == "" {
		content = p.Message
	}

	role, err := ParseRole(author)
	if err != nil {
		return Message{}, apperror.Data(string(raw), err)
	}
	if strings.TrimSpace(content) == "" {
		return Message{}, apperror.Data(string(raw), errEmptyContent)
	}

	msg := Message{Role: role, Content: content}
	if t, err := time.Parse(time.RFC3339Nano, p.CreatedAt); err == nil {
		msg.CreatedAt = t
	}
	return msg, nil
}

// NormalizeAll keeps every payload that normalizes and reports the rest.
func NormalizeAll(raws [][]byte) ([]Message, []error) {
	out := make([]Message, 0, len(raws))
	var skipped []error
	for _, raw := range raws {
		m, err := Normalize(raw)
		if err != nil {
			skipped = append(skipped, err)
			continue
		}
		out = append(out, m)
	}
	return out, skipped
}
