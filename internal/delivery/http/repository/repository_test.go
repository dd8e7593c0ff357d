package repository

import (
	"testing"
	"time"

	"github.com/evandrarf/linguaflow-be/internal/entity"
	"github.com/evandrarf/linguaflow-be/internal/pkg/apperror"
	"github.com/evandrarf/linguaflow-be/internal/pkg/testdb"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWordRepository_FindByUserID(t *testing.T) {
	db := testdb.New(t)
	repo := NewWordRepository(db)
	base := time.Date(2024, 1, 1, 9, 0, 0, 0, time.UTC)

	require.NoError(t, repo.CreateBatch(db, []entity.Word{
		{UserID: "u1", English: "Apple", Arabic: "تفاحة", CreatedAt: base},
		{UserID: "u1", English: "pineapple", Arabic: "أناناس", CreatedAt: base.Add(time.Hour)},
		{UserID: "u1", English: "bread", Arabic: "خبز", CreatedAt: base.Add(2 * time.Hour)},
		{UserID: "u2", English: "apple", Arabic: "تفاحة", CreatedAt: base},
	}))

	tests := []struct {
		name   string
		search string
		want   []string
	}{
		{name: "all newest first", search: "", want: []string{"bread", "pineapple", "Apple"}},
		{name: "english is case insensitive", search: "APPLE", want: []string{"pineapple", "Apple"}},
		{name: "arabic substring", search: "خب", want: []string{"bread"}},
		{name: "no match", search: "zebra", want: []string{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			words, err := repo.FindByUserID(db, "u1", tt.search)
			require.NoError(t, err)
			got := make([]string, 0, len(words))
			for _, w := range words {
				got = append(got, w.English)
			}
			assert.Equal(t, tt.want, got)
		})
	}

	count, err := repo.CountByUserID(db, "u1")
	require.NoError(t, err)
	assert.Equal(t, int64(3), count)

	_, err = repo.FindByID(db, "u2", 1)
	assert.True(t, apperror.IsNotFound(err))
}

func TestRevisionRepository_CreateAnswerOnce(t *testing.T) {
	db := testdb.New(t)
	repo := NewRevisionRepository(db)

	revision := &entity.Revision{
		SessionID: "session-1",
		UserID:    "u1",
		Status:    "in_progress",
		StartedAt: time.Now(),
		Questions: []entity.RevisionQuestion{
			{Position: 0, WordID: 1, English: "cat", Arabic: "قطة", QuestionType: "write", Prompt: `Write "قطة" in English`, CorrectAnswer: "cat"},
		},
	}
	require.NoError(t, repo.Create(db, revision))

	answer := func() *entity.RevisionAnswer {
		return &entity.RevisionAnswer{RevisionID: revision.ID, Position: 0, UserID: "u1", WordID: 1, QuestionType: "write", CorrectAnswer: "cat", AnsweredAt: time.Now()}
	}
	require.NoError(t, repo.CreateAnswer(db, answer()))
	assert.ErrorIs(t, repo.CreateAnswer(db, answer()), ErrDuplicateAnswer)

	loaded, err := repo.FindBySessionID(db, "u1", "session-1", true)
	require.NoError(t, err)
	assert.Len(t, loaded.Questions, 1)
	assert.Len(t, loaded.Answers, 1)

	_, err = repo.FindBySessionID(db, "u2", "session-1", false)
	assert.True(t, apperror.IsNotFound(err))
}

func TestGoalRepository_FindOrCreate(t *testing.T) {
	db := testdb.New(t)
	repo := NewGoalRepository(db)

	goal, err := repo.FindOrCreate(db, "u1")
	require.NoError(t, err)
	assert.Equal(t, entity.DefaultDailyWordGoal, goal.DailyWordGoal)

	goal.DailyWordGoal = 25
	require.NoError(t, repo.Save(db, goal))

	again, err := repo.FindOrCreate(db, "u1")
	require.NoError(t, err)
	assert.Equal(t, goal.ID, again.ID)
	assert.Equal(t, 25, again.DailyWordGoal)
}
