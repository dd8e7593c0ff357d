package usecase

import (
	"context"
	"io"
	"sync"
	"testing"
	"time"

	"github.com/evandrarf/linguaflow-be/internal/delivery/http/repository"
	internalEntity "github.com/evandrarf/linguaflow-be/internal/entity"
	"github.com/evandrarf/linguaflow-be/internal/pkg/auth"
	"github.com/evandrarf/linguaflow-be/internal/pkg/llm"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// Wednesday 2024-01-17 12:00 UTC
var testNow = time.Date(2024, 1, 17, 12, 0, 0, 0, time.UTC)

var testUser = auth.User{ID: "user-1", Email: "learner@example.com"}

type clock struct {
	mu sync.Mutex
	t  time.Time
}

func newClock(t time.Time) *clock { return &clock{t: t} }

func (c *clock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.t
}

func (c *clock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.t = c.t.Add(d)
}

func quietLogger() *logrus.Logger {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return log
}

func seedWords(t *testing.T, db *gorm.DB, userID string, pairs [][2]string, createdAt ...time.Time) []internalEntity.Word {
	t.Helper()

	words := make([]internalEntity.Word, 0, len(pairs))
	for i, p := range pairs {
		w := internalEntity.Word{UserID: userID, English: p[0], Arabic: p[1], CreatedAt: testNow}
		if i < len(createdAt) {
			w.CreatedAt = createdAt[i]
		}
		words = append(words, w)
	}
	require.NoError(t, repository.NewWordRepository(db).CreateBatch(db, words))
	return words
}

var fourWords = [][2]string{
	{"cat", "قطة"},
	{"dog", "كلب"},
	{"sun", "شمس"},
	{"moon", "قمر"},
}

type fakeCompleter struct {
	mu       sync.Mutex
	reply    string
	err      error
	requests []llm.ChatRequest
}

func (f *fakeCompleter) Complete(_ context.Context, req llm.ChatRequest) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.requests = append(f.requests, req)
	return f.reply, f.err
}
