package usecase

import (
	"context"
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

func newGoalUsecase(db *gorm.DB) GoalUsecase {
	return NewGoalUsecase(GoalConfig{
		DB:                 db,
		Repository:         repository.NewGoalRepository(db),
		WordRepository:     repository.NewWordRepository(db),
		RevisionRepository: repository.NewRevisionRepository(db),
		ChatRepository:     repository.NewChatRepository(db),
		Location:           time.UTC,
		Log:                quietLogger(),
		Now:                func() time.Time { return testNow },
	})
}

func progressByKey(res *entity.GoalResponse) map[string]entity.GoalProgress {
	out := make(map[string]entity.GoalProgress, len(res.Progress))
	for _, p := range res.Progress {
		out[p.Key] = p
	}
	return out
}

func TestGoalUsecase_DefaultsAndProgress(t *testing.T) {
	db := testdb.New(t)
	seedStatsFixture(t, db)

	revisions := repository.NewRevisionRepository(db)
	for i, started := range []time.Time{testNow.Add(-time.Hour), testNow.AddDate(0, 0, -2), testNow.AddDate(0, 0, -7)} {
		require.NoError(t, revisions.Create(db, &internalEntity.Revision{
			SessionID: string(rune('a'+i)) + "-session",
			UserID:    testUser.ID,
			Status:    "completed",
			StartedAt: started,
		}))
	}

	u := newGoalUsecase(db)
	res, err := u.Get(context.Background(), testUser)
	require.NoError(t, err)

	assert.Equal(t, internalEntity.DefaultDailyWordGoal, res.DailyWordGoal)
	assert.Equal(t, internalEntity.DefaultWeeklyRevisionGoal, res.WeeklyRevisionGoal)
	assert.Equal(t, internalEntity.DefaultAIChatTimeGoal, res.AIChatTimeGoal)

	progress := progressByKey(res)
	assert.Equal(t, 2.0, progress["daily_words"].Current)
	assert.Equal(t, 20, progress["daily_words"].Percentage)
	assert.Equal(t, 2.0, progress["weekly_revisions"].Current)
	assert.Equal(t, 13, progress["weekly_revisions"].Percentage)
	assert.Equal(t, 0.6, progress["ai_chat_time"].Current)
	assert.Equal(t, 1, progress["ai_chat_time"].Percentage)
	assert.False(t, progress["daily_words"].Completed)
}

func TestGoalUsecase_UpdateCompletesGoal(t *testing.T) {
	db := testdb.New(t)
	seedStatsFixture(t, db)
	u := newGoalUsecase(db)

	res, err := u.Update(context.Background(), testUser, entity.UpdateGoalRequest{
		DailyWordGoal:      1,
		WeeklyRevisionGoal: 3,
		AIChatTimeGoal:     30,
	})
	require.NoError(t, err)
	assert.Equal(t, 1, res.DailyWordGoal)

	progress := progressByKey(res)
	assert.Equal(t, 100, progress["daily_words"].Percentage, "percentage is clamped")
	assert.True(t, progress["daily_words"].Completed)

	again, err := u.Get(context.Background(), testUser)
	require.NoError(t, err)
	assert.Equal(t, 3, again.WeeklyRevisionGoal)
	assert.Equal(t, 30, again.AIChatTimeGoal)
}

func TestGoalUsecase_WeekBoundaryOutsideUTC(t *testing.T) {
	riyadh := time.FixedZone("UTC+3", 3*60*60)
	// Monday 2024-01-15 01:00 local, still Sunday in UTC
	now := time.Date(2024, 1, 15, 1, 0, 0, 0, riyadh)

	tests := []struct {
		name      string
		startedAt time.Time
		want      float64
	}{
		{name: "started after local monday midnight", startedAt: time.Date(2024, 1, 14, 21, 30, 0, 0, time.UTC), want: 1},
		{name: "started with a local offset", startedAt: time.Date(2024, 1, 15, 0, 30, 0, 0, riyadh), want: 1},
		{name: "started before local monday midnight", startedAt: time.Date(2024, 1, 14, 20, 30, 0, 0, time.UTC), want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db := testdb.New(t)
			require.NoError(t, repository.NewRevisionRepository(db).Create(db, &internalEntity.Revision{
				SessionID: "boundary-session",
				UserID:    testUser.ID,
				Status:    "completed",
				StartedAt: tt.startedAt,
			}))
			require.NoError(t, repository.NewChatRepository(db).CreateBatch(db, []internalEntity.ChatMessage{
				{UserID: testUser.ID, SessionID: "s1", Role: "user", Content: "hi", CreatedAt: tt.startedAt},
				{UserID: testUser.ID, SessionID: "s1", Role: "assistant", Content: "hello", CreatedAt: tt.startedAt},
			}))

			u := NewGoalUsecase(GoalConfig{
				DB:                 db,
				Repository:         repository.NewGoalRepository(db),
				WordRepository:     repository.NewWordRepository(db),
				RevisionRepository: repository.NewRevisionRepository(db),
				ChatRepository:     repository.NewChatRepository(db),
				Location:           riyadh,
				Log:                quietLogger(),
				Now:                func() time.Time { return now },
			})

			res, err := u.Get(context.Background(), testUser)
			require.NoError(t, err)

			progress := progressByKey(res)
			assert.Equal(t, tt.want, progress["weekly_revisions"].Current)
			assert.InDelta(t, tt.want*0.6, progress["ai_chat_time"].Current, 0.001)
		})
	}
}

func TestPreferenceUsecase(t *testing.T) {
	db := testdb.New(t)
	u := NewPreferenceUsecase(PreferenceConfig{
		DB:         db,
		Repository: repository.NewPreferenceRepository(db),
		Log:        quietLogger(),
	})
	ctx := context.Background()

	got, err := u.Get(ctx, testUser)
	require.NoError(t, err)
	assert.Equal(t, &entity.PreferenceResponse{
		Email:              testUser.Email,
		EmailNotifications: true,
		DailyReminders:     true,
		WeeklyReports:      false,
		AchievementAlerts:  true,
	}, got)

	off, on := false, true
	email := "  new@example.com "
	updated, err := u.Update(ctx, testUser, entity.UpdatePreferenceRequest{
		Email:          &email,
		DailyReminders: &off,
		WeeklyReports:  &on,
	})
	require.NoError(t, err)
	assert.Equal(t, "new@example.com", updated.Email)
	assert.False(t, updated.DailyReminders)
	assert.True(t, updated.WeeklyReports)
	assert.True(t, updated.EmailNotifications, "omitted fields keep their value")

	again, err := u.Get(ctx, testUser)
	require.NoError(t, err)
	assert.Equal(t, updated, again)
}
