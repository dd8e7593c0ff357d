package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/evandrarf/linguaflow-be/internal/chat"
	"github.com/evandrarf/linguaflow-be/internal/delivery/http/entity"
	"github.com/evandrarf/linguaflow-be/internal/delivery/http/repository"
	internalEntity "github.com/evandrarf/linguaflow-be/internal/entity"
	"github.com/evandrarf/linguaflow-be/internal/pkg/auth"
	"github.com/evandrarf/linguaflow-be/internal/pkg/llm"
	"github.com/evandrarf/linguaflow-be/internal/pkg/mapper"
	"github.com/evandrarf/linguaflow-be/internal/pkg/metrics"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

const defaultChatHistoryLimit = 10

type ChatbotUsecase interface {
	Send(ctx context.Context, user auth.User, sessionID string, message string) (*entity.ChatResponse, error)
	SessionHistory(ctx context.Context, user auth.User, sessionID string) ([]entity.ChatHistoryItem, error)
	History(ctx context.Context, user auth.User) ([]entity.ChatHistoryItem, error)
	ClearHistory(ctx context.Context, user auth.User) (*entity.ClearHistoryResponse, error)
	Import(ctx context.Context, userID string, sessionID string, raws [][]byte) (*entity.ImportChatResponse, error)
}

type ChatbotConfig struct {
	DB             *gorm.DB
	Repository     repository.ChatRepository
	WordRepository repository.WordRepository
	Completer      llm.ChatCompleter
	HistoryLimit   int
	Log            *logrus.Logger
	Now            func() time.Time
}

type chatbotUsecase struct {
	cfg ChatbotConfig
}

func NewChatbotUsecase(cfg ChatbotConfig) ChatbotUsecase {
	if cfg.HistoryLimit <= 0 {
		cfg.HistoryLimit = defaultChatHistoryLimit
	}
	if cfg.Now == nil {
		cfg.Now = time.Now
	}
	return &chatbotUsecase{cfg: cfg}
}

// Send replays the last messages of the session to the AI tutor. When the
// provider fails the user still gets the fixed fallback reply, and only the
// user's own message is stored.
func (u *chatbotUsecase) Send(ctx context.Context, user auth.User, sessionID string, message string) (*entity.ChatResponse, error) {
	db := u.cfg.DB.WithContext(ctx)
	message = strings.TrimSpace(message)

	words, err := u.cfg.WordRepository.FindByUserID(db, user.ID, "")
	if err != nil {
		return nil, fmt.Errorf("failed to load vocabulary: %w", err)
	}

	history, err := u.cfg.Repository.FindRecentBySessionID(db, user.ID, sessionID, u.cfg.HistoryLimit)
	if err != nil {
		u.cfg.Log.WithField("session_id", sessionID).WithError(err).Warn("chat history unavailable, continuing without it")
		history = []internalEntity.ChatMessage{}
	}

	start := time.Now()
	reply, callErr := u.cfg.Completer.Complete(ctx, llm.ChatRequest{
		UserID:    user.ID,
		SessionID: sessionID,
		System:    chat.SystemPrompt(mapper.ToVocabularyPairs(words)),
		History:   mapper.ToChatMessages(history),
		Message:   message,
	})
	metrics.RecordLLMCall(callErr == nil, time.Since(start))

	now := u.cfg.Now()
	rows := []internalEntity.ChatMessage{
		{UserID: user.ID, SessionID: sessionID, Role: string(chat.RoleUser), Content: message, CreatedAt: now},
	}
	if callErr == nil {
		rows = append(rows, internalEntity.ChatMessage{
			UserID: user.ID, SessionID: sessionID, Role: string(chat.RoleAssistant), Content: reply, CreatedAt: now,
		})
	}

	err = db.Transaction(func(tx *gorm.DB) error {
		for i := range rows {
			if err := u.cfg.Repository.Create(tx, &rows[i]); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to save chat messages: %w", err)
	}

	if callErr != nil {
		u.cfg.Log.WithField("session_id", sessionID).WithError(callErr).Warn("AI provider failed, sending fallback reply")
		return &entity.ChatResponse{Response: chat.FallbackReply, SessionID: sessionID, Fallback: true}, nil
	}

	return &entity.ChatResponse{Response: reply, SessionID: sessionID}, nil
}

// SessionHistory returns the stored turns of a session. An empty session
// starts with an unsaved greeting that mentions the vocabulary size.
func (u *chatbotUsecase) SessionHistory(ctx context.Context, user auth.User, sessionID string) ([]entity.ChatHistoryItem, error) {
	db := u.cfg.DB.WithContext(ctx)

	messages, err := u.cfg.Repository.FindBySessionID(db, user.ID, sessionID)
	if err != nil {
		return nil, fmt.Errorf("failed to get chat history: %w", err)
	}
	if len(messages) > 0 {
		return toChatHistory(messages), nil
	}

	count, err := u.cfg.WordRepository.CountByUserID(db, user.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to count vocabulary: %w", err)
	}
	return []entity.ChatHistoryItem{{
		SessionID: sessionID,
		Role:      string(chat.RoleAssistant),
		Content:   chat.Greeting(int(count)),
		CreatedAt: u.cfg.Now(),
	}}, nil
}

func (u *chatbotUsecase) History(ctx context.Context, user auth.User) ([]entity.ChatHistoryItem, error) {
	messages, err := u.cfg.Repository.FindByUserID(u.cfg.DB.WithContext(ctx), user.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to get chat history: %w", err)
	}
	return toChatHistory(messages), nil
}

func (u *chatbotUsecase) ClearHistory(ctx context.Context, user auth.User) (*entity.ClearHistoryResponse, error) {
	deleted, err := u.cfg.Repository.DeleteByUserID(u.cfg.DB.WithContext(ctx), user.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to clear chat history: %w", err)
	}
	return &entity.ClearHistoryResponse{Deleted: deleted}, nil
}

// Import normalizes stored payloads of any legacy shape into the canonical
// schema. System turns and unparsable rows are skipped.
func (u *chatbotUsecase) Import(ctx context.Context, userID string, sessionID string, raws [][]byte) (*entity.ImportChatResponse, error) {
	if sessionID == "" {
		sessionID = uuid.NewString()
	}

	messages, skipped := chat.NormalizeAll(raws)
	res := &entity.ImportChatResponse{Errors: make([]string, 0, len(skipped))}
	for _, err := range skipped {
		res.Errors = append(res.Errors, err.Error())
	}

	now := u.cfg.Now()
	rows := make([]internalEntity.ChatMessage, 0, len(messages))
	for _, m := range messages {
		if m.Role == chat.RoleSystem {
			res.Errors = append(res.Errors, "system message skipped")
			continue
		}
		createdAt := m.CreatedAt
		if createdAt.IsZero() {
			createdAt = now
		}
		rows = append(rows, internalEntity.ChatMessage{
			UserID:    userID,
			SessionID: sessionID,
			Role:      string(m.Role),
			Content:   m.Content,
			CreatedAt: createdAt,
		})
	}

	if err := u.cfg.Repository.CreateBatch(u.cfg.DB.WithContext(ctx), rows); err != nil {
		return nil, fmt.Errorf("failed to import chat messages: %w", err)
	}

	res.Imported = len(rows)
	return res, nil
}

func toChatHistory(messages []internalEntity.ChatMessage) []entity.ChatHistoryItem {
	out := make([]entity.ChatHistoryItem, 0, len(messages))
	for _, m := range messages {
		out = append(out, entity.ChatHistoryItem{
			SessionID: m.SessionID,
			Role:      m.Role,
			Content:   m.Content,
			CreatedAt: m.CreatedAt,
		})
	}
	return out
}
