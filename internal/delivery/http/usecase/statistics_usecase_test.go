package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/evandrarf/linguaflow-be/internal/delivery/http/entity"
	"github.com/evandrarf/linguaflow-be/internal/delivery/http/repository"
	internalEntity "github.com/evandrarf/linguaflow-be/internal/entity"
	"github.com/evandrarf/linguaflow-be/internal/pkg/testdb"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type failingChatRepository struct {
	repository.ChatRepository
}

func (failingChatRepository) FindRolesByUserID(*gorm.DB, string, time.Time) ([]string, error) {
	return nil, errors.New("chat store offline")
}

func seedStatsFixture(t *testing.T, db *gorm.DB) {
	t.Helper()
	day := func(offset int, hour int) time.Time {
		return time.Date(2024, 1, 17+offset, hour, 0, 0, 0, time.UTC)
	}
	seedWords(t, db, testUser.ID,
		[][2]string{{"a", "أ"}, {"b", "ب"}, {"c", "ج"}, {"d", "د"}, {"e", "ه"}, {"f", "و"}},
		day(0, 8), day(0, 10), day(-1, 9), day(-2, 9), day(-5, 9), day(3, 9),
	)

	chats := []internalEntity.ChatMessage{
		{UserID: testUser.ID, SessionID: "s1", Role: "user", Content: "hi", CreatedAt: day(0, 9)},
		{UserID: testUser.ID, SessionID: "s1", Role: "assistant", Content: "hello", CreatedAt: day(0, 9)},
		{UserID: testUser.ID, SessionID: "s1", Role: "user", Content: "bye", CreatedAt: day(-10, 9)},
	}
	require.NoError(t, repository.NewChatRepository(db).CreateBatch(db, chats))
}

func newStatisticsUsecase(db *gorm.DB, chats repository.ChatRepository) StatisticsUsecase {
	return NewStatisticsUsecase(StatisticsConfig{
		DB:             db,
		WordRepository: repository.NewWordRepository(db),
		ChatRepository: chats,
		Location:       time.UTC,
		Log:            quietLogger(),
		Now:            func() time.Time { return testNow },
	})
}

func TestStatisticsUsecase_Get(t *testing.T) {
	db := testdb.New(t)
	seedStatsFixture(t, db)
	u := newStatisticsUsecase(db, repository.NewChatRepository(db))

	report, err := u.Get(context.Background(), testUser)
	require.NoError(t, err)

	assert.Equal(t, 6, report.TotalWords)
	assert.Equal(t, 1, report.FutureDatedWords)
	assert.Equal(t, 3, report.CurrentStreak)
	assert.Equal(t, 3, report.LongestStreak)
	assert.Equal(t, 2, report.WordsToday)
	assert.Equal(t, 4, report.WordsThisWeek)
	assert.Equal(t, 2, report.MaxWordsInOneDay)
	assert.Equal(t, 3, report.MissedDays)
	require.Len(t, report.Activity, 7)
	assert.Equal(t, "2024-01-17", report.Activity[6].Date)
	assert.Equal(t, 2, report.Activity[6].Count)
	assert.Equal(t, 4, report.WeekComparison.Current)
	assert.Equal(t, 1, report.WeekComparison.Previous)
	assert.Equal(t, 300, report.WeekComparison.PercentChange)
	assert.Equal(t, 0.8, report.AIChatMinutes)
	assert.False(t, report.ChatMinutesFailed)
}

func TestStatisticsUsecase_ChatStoreFailureDegrades(t *testing.T) {
	db := testdb.New(t)
	seedStatsFixture(t, db)
	u := newStatisticsUsecase(db, failingChatRepository{repository.NewChatRepository(db)})

	report, err := u.Report(context.Background(), testUser.ID)
	require.NoError(t, err)
	assert.True(t, report.ChatMinutesFailed)
	assert.Zero(t, report.AIChatMinutes)
	assert.Equal(t, 3, report.CurrentStreak)
}

func TestStatisticsUsecase_Preview(t *testing.T) {
	db := testdb.New(t)
	u := newStatisticsUsecase(db, repository.NewChatRepository(db))

	res, err := u.Preview(context.Background(), testUser, entity.StatisticsPreviewRequest{
		CreatedAt: []string{"2024-01-17T08:00:00Z", "yesterday-ish", "2024-01-16", "2030-01-01"},
	})
	require.NoError(t, err)
	assert.Equal(t, 2, res.TotalWords)
	assert.Equal(t, 1, res.FutureDatedWords)
	assert.Equal(t, 2, res.CurrentStreak)
	require.Len(t, res.Skipped, 1)
	assert.Equal(t, "yesterday-ish", res.Skipped[0].Value)
}
