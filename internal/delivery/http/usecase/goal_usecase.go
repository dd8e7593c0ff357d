package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/evandrarf/linguaflow-be/internal/delivery/http/entity"
	"github.com/evandrarf/linguaflow-be/internal/delivery/http/repository"
	internalEntity "github.com/evandrarf/linguaflow-be/internal/entity"
	"github.com/evandrarf/linguaflow-be/internal/pkg/auth"
	"github.com/evandrarf/linguaflow-be/internal/stats"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

type GoalUsecase interface {
	Get(ctx context.Context, user auth.User) (*entity.GoalResponse, error)
	Update(ctx context.Context, user auth.User, req entity.UpdateGoalRequest) (*entity.GoalResponse, error)
}

type GoalConfig struct {
	DB                 *gorm.DB
	Repository         repository.GoalRepository
	WordRepository     repository.WordRepository
	RevisionRepository repository.RevisionRepository
	ChatRepository     repository.ChatRepository
	Location           *time.Location
	Log                *logrus.Logger
	Now                func() time.Time
}

type goalUsecase struct {
	cfg GoalConfig
}

func NewGoalUsecase(cfg GoalConfig) GoalUsecase {
	if cfg.Location == nil {
		cfg.Location = time.UTC
	}
	if cfg.Now == nil {
		cfg.Now = time.Now
	}
	return &goalUsecase{cfg: cfg}
}

func (u *goalUsecase) Get(ctx context.Context, user auth.User) (*entity.GoalResponse, error) {
	db := u.cfg.DB.WithContext(ctx)

	goal, err := u.cfg.Repository.FindOrCreate(db, user.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to get goals: %w", err)
	}
	return u.withProgress(db, goal)
}

func (u *goalUsecase) Update(ctx context.Context, user auth.User, req entity.UpdateGoalRequest) (*entity.GoalResponse, error) {
	db := u.cfg.DB.WithContext(ctx)

	goal, err := u.cfg.Repository.FindOrCreate(db, user.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to get goals: %w", err)
	}

	goal.DailyWordGoal = req.DailyWordGoal
	goal.WeeklyRevisionGoal = req.WeeklyRevisionGoal
	goal.AIChatTimeGoal = req.AIChatTimeGoal
	if err := u.cfg.Repository.Save(db, goal); err != nil {
		return nil, fmt.Errorf("failed to update goals: %w", err)
	}

	u.cfg.Log.WithField("user_id", user.ID).Info("learning goals updated")
	return u.withProgress(db, goal)
}

func (u *goalUsecase) withProgress(db *gorm.DB, goal *internalEntity.UserGoal) (*entity.GoalResponse, error) {
	now := u.cfg.Now().In(u.cfg.Location)
	weekStart := stats.StartOfWeek(now)

	createdAt, err := u.cfg.WordRepository.FindCreatedAtByUserID(db, goal.UserID)
	if err != nil {
		return nil, fmt.Errorf("failed to load word history: %w", err)
	}
	wordsToday := stats.CountSince(createdAt, stats.StartOfDay(now, now.Location()), now)

	revisions, err := u.cfg.RevisionRepository.CountStartedSince(db, goal.UserID, weekStart)
	if err != nil {
		return nil, fmt.Errorf("failed to count revisions: %w", err)
	}

	minutes := 0.0
	roles, err := u.cfg.ChatRepository.FindRolesByUserID(db, goal.UserID, weekStart)
	if err != nil {
		u.cfg.Log.WithField("user_id", goal.UserID).WithError(err).Warn("chat history unavailable, reporting 0 chat minutes")
	} else {
		minutes = stats.AIChatMinutes(toStatsRoles(roles))
	}

	return &entity.GoalResponse{
		DailyWordGoal:      goal.DailyWordGoal,
		WeeklyRevisionGoal: goal.WeeklyRevisionGoal,
		AIChatTimeGoal:     goal.AIChatTimeGoal,
		Progress: []entity.GoalProgress{
			goalProgress("daily_words", "Words added today", float64(wordsToday), goal.DailyWordGoal, "words"),
			goalProgress("weekly_revisions", "Revisions this week", float64(revisions), goal.WeeklyRevisionGoal, "sessions"),
			goalProgress("ai_chat_time", "AI chat time this week", minutes, goal.AIChatTimeGoal, "minutes"),
		},
	}, nil
}

func goalProgress(key, label string, current float64, target int, unit string) entity.GoalProgress {
	return entity.GoalProgress{
		Key:        key,
		Label:      label,
		Current:    current,
		Target:     target,
		Unit:       unit,
		Percentage: stats.GoalPercentage(current, target),
		Completed:  target > 0 && current >= float64(target),
	}
}
