package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/evandrarf/linguaflow-be/internal/chat"
	"github.com/evandrarf/linguaflow-be/internal/delivery/http/repository"
	"github.com/evandrarf/linguaflow-be/internal/pkg/apperror"
	"github.com/evandrarf/linguaflow-be/internal/pkg/testdb"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newChatbotUsecase(t *testing.T, completer *fakeCompleter) (ChatbotUsecase, *gorm.DB, *clock) {
	db := testdb.New(t)
	c := newClock(testNow)
	return NewChatbotUsecase(ChatbotConfig{
		DB:             db,
		Repository:     repository.NewChatRepository(db),
		WordRepository: repository.NewWordRepository(db),
		Completer:      completer,
		HistoryLimit:   3,
		Log:            quietLogger(),
		Now:            c.Now,
	}), db, c
}

func TestChatbotUsecase_Send(t *testing.T) {
	completer := &fakeCompleter{reply: "مرحبا! Let's practice."}
	u, db, c := newChatbotUsecase(t, completer)
	ctx := context.Background()
	seedWords(t, db, testUser.ID, fourWords[:2])

	res, err := u.Send(ctx, testUser, "s1", "  hello  ")
	require.NoError(t, err)
	assert.Equal(t, "مرحبا! Let's practice.", res.Response)
	assert.Equal(t, "s1", res.SessionID)
	assert.False(t, res.Fallback)

	require.Len(t, completer.requests, 1)
	req := completer.requests[0]
	assert.Equal(t, "hello", req.Message)
	assert.Equal(t, testUser.ID, req.UserID)
	assert.Contains(t, req.System, "cat: قطة")
	assert.Contains(t, req.System, "dog: كلب")
	assert.Empty(t, req.History)

	c.Advance(time.Minute)
	_, err = u.Send(ctx, testUser, "s1", "again")
	require.NoError(t, err)

	// the first exchange is replayed in order
	history := completer.requests[1].History
	require.Len(t, history, 2)
	assert.Equal(t, chat.RoleUser, history[0].Role)
	assert.Equal(t, "hello", history[0].Content)
	assert.Equal(t, chat.RoleAssistant, history[1].Role)

	items, err := u.SessionHistory(ctx, testUser, "s1")
	require.NoError(t, err)
	require.Len(t, items, 4)
	assert.Equal(t, "again", items[2].Content)
}

func TestChatbotUsecase_SendFallback(t *testing.T) {
	completer := &fakeCompleter{err: apperror.Network("chat webhook", errors.New("connection refused"))}
	u, _, _ := newChatbotUsecase(t, completer)
	ctx := context.Background()

	res, err := u.Send(ctx, testUser, "s1", "hello")
	require.NoError(t, err)
	assert.True(t, res.Fallback)
	assert.Equal(t, chat.FallbackReply, res.Response)

	items, err := u.SessionHistory(ctx, testUser, "s1")
	require.NoError(t, err)
	require.Len(t, items, 1, "only the user message is stored")
	assert.Equal(t, string(chat.RoleUser), items[0].Role)
}

func TestChatbotUsecase_HistoryAndClear(t *testing.T) {
	u, db, _ := newChatbotUsecase(t, &fakeCompleter{reply: "ok"})
	ctx := context.Background()
	seedWords(t, db, testUser.ID, fourWords)

	greeting, err := u.SessionHistory(ctx, testUser, "empty")
	require.NoError(t, err)
	require.Len(t, greeting, 1)
	assert.Equal(t, string(chat.RoleAssistant), greeting[0].Role)
	assert.Contains(t, greeting[0].Content, "loaded 4 words")

	_, err = u.Send(ctx, testUser, "s1", "one")
	require.NoError(t, err)
	_, err = u.Send(ctx, testUser, "s2", "two")
	require.NoError(t, err)

	other := testUser
	other.ID = "user-2"
	_, err = u.Send(ctx, other, "s1", "not mine")
	require.NoError(t, err)

	all, err := u.History(ctx, testUser)
	require.NoError(t, err)
	assert.Len(t, all, 4)

	cleared, err := u.ClearHistory(ctx, testUser)
	require.NoError(t, err)
	assert.Equal(t, int64(4), cleared.Deleted)

	all, err = u.History(ctx, testUser)
	require.NoError(t, err)
	assert.Empty(t, all)

	theirs, err := u.History(ctx, other)
	require.NoError(t, err)
	assert.Len(t, theirs, 2)
}

func TestChatbotUsecase_Import(t *testing.T) {
	u, _, _ := newChatbotUsecase(t, &fakeCompleter{})
	ctx := context.Background()

	raws := [][]byte{
		[]byte(`{"type":"user","message":"hi","created_at":"2024-01-10T08:00:00Z"}`),
		[]byte(`{"type":"bot","message":"hello there"}`),
		[]byte(`{"role":"assistant","content":"how are you?"}`),
		[]byte(`{"role":"system","content":"be nice"}`),
		[]byte(`{"foo":"bar"}`),
	}

	res, err := u.Import(ctx, testUser.ID, "legacy", raws)
	require.NoError(t, err)
	assert.Equal(t, 3, res.Imported)
	assert.Len(t, res.Errors, 2)

	items, err := u.SessionHistory(ctx, testUser, "legacy")
	require.NoError(t, err)
	require.Len(t, items, 3)
	assert.Equal(t, "hi", items[0].Content)
	assert.True(t, items[0].CreatedAt.Equal(time.Date(2024, 1, 10, 8, 0, 0, 0, time.UTC)))
	assert.Equal(t, string(chat.RoleAssistant), items[1].Role)
}
