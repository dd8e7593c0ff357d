package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/evandrarf/linguaflow-be/internal/delivery/http/entity"
	"github.com/evandrarf/linguaflow-be/internal/delivery/http/repository"
	"github.com/evandrarf/linguaflow-be/internal/pkg/apperror"
	"github.com/evandrarf/linguaflow-be/internal/pkg/auth"
	"github.com/evandrarf/linguaflow-be/internal/stats"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

type StatisticsUsecase interface {
	Get(ctx context.Context, user auth.User) (*entity.StatisticsResponse, error)
	Report(ctx context.Context, userID string) (*entity.StatisticsResponse, error)
	Preview(ctx context.Context, user auth.User, req entity.StatisticsPreviewRequest) (*entity.StatisticsPreviewResponse, error)
}

type StatisticsConfig struct {
	DB             *gorm.DB
	WordRepository repository.WordRepository
	ChatRepository repository.ChatRepository
	Location       *time.Location
	Log            *logrus.Logger
	Now            func() time.Time
}

type statisticsUsecase struct {
	cfg StatisticsConfig
}

func NewStatisticsUsecase(cfg StatisticsConfig) StatisticsUsecase {
	if cfg.Location == nil {
		cfg.Location = time.UTC
	}
	if cfg.Now == nil {
		cfg.Now = time.Now
	}
	return &statisticsUsecase{cfg: cfg}
}

func (u *statisticsUsecase) Get(ctx context.Context, user auth.User) (*entity.StatisticsResponse, error) {
	return u.Report(ctx, user.ID)
}

// Report computes the dashboard numbers for userID. A failing chat store only
// zeroes the chat minutes.
func (u *statisticsUsecase) Report(ctx context.Context, userID string) (*entity.StatisticsResponse, error) {
	db := u.cfg.DB.WithContext(ctx)
	now := u.cfg.Now().In(u.cfg.Location)

	createdAt, err := u.cfg.WordRepository.FindCreatedAtByUserID(db, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to load word history: %w", err)
	}

	valid, future := stats.SplitFuture(createdAt, now)
	if len(future) > 0 {
		u.cfg.Log.WithField("user_id", userID).WithField("count", len(future)).
			Warn("ignoring future dated words in statistics")
	}

	report := buildReport(valid, now)
	report.TotalWords = len(createdAt)
	report.FutureDatedWords = len(future)

	roles, err := u.cfg.ChatRepository.FindRolesByUserID(db, userID, time.Time{})
	if err != nil {
		u.cfg.Log.WithField("user_id", userID).WithError(err).Warn("chat history unavailable, reporting 0 chat minutes")
		report.ChatMinutesFailed = true
	} else {
		report.AIChatMinutes = stats.AIChatMinutes(toStatsRoles(roles))
	}

	return &report, nil
}

// Preview runs the engine over raw timestamps; malformed values are reported
// instead of failing the request.
func (u *statisticsUsecase) Preview(ctx context.Context, user auth.User, req entity.StatisticsPreviewRequest) (*entity.StatisticsPreviewResponse, error) {
	now := u.cfg.Now().In(u.cfg.Location)

	parsed, errs := stats.ParseTimestamps(req.CreatedAt, u.cfg.Location)
	valid, future := stats.SplitFuture(parsed, now)

	res := &entity.StatisticsPreviewResponse{
		StatisticsResponse: buildReport(valid, now),
		Skipped:            make([]entity.SkippedRow, 0, len(errs)),
	}
	res.TotalWords = len(valid)
	res.FutureDatedWords = len(future)

	for _, err := range errs {
		row := entity.SkippedRow{Error: err.Error()}
		var dataErr *apperror.DataError
		if errors.As(err, &dataErr) {
			row.Value = dataErr.Value
		}
		res.Skipped = append(res.Skipped, row)
	}

	if len(errs) > 0 {
		u.cfg.Log.WithField("user_id", user.ID).WithField("skipped", len(errs)).Warn("skipped malformed timestamps")
	}
	return res, nil
}

func buildReport(entries []time.Time, now time.Time) entity.StatisticsResponse {
	activity := stats.ActivityHistogram(entries, now, stats.DefaultWindowDays)
	streaks := stats.Streaks(entries, now)

	return entity.StatisticsResponse{
		TotalWords:       len(entries),
		CurrentStreak:    streaks.Current,
		LongestStreak:    streaks.Longest,
		MissedDays:       stats.MissedDays(activity),
		MaxWordsInOneDay: stats.MaxWordsInOneDay(entries, now),
		WordsToday:       stats.CountSince(entries, stats.StartOfDay(now, now.Location()), now),
		WordsThisWeek:    stats.CountSince(entries, stats.StartOfWeek(now), now),
		Activity:         activity,
		WeekComparison:   stats.ComparePeriod(entries, now, stats.PeriodWeek),
		MonthComparison:  stats.ComparePeriod(entries, now, stats.PeriodMonth),
	}
}

func toStatsRoles(roles []string) []stats.Role {
	out := make([]stats.Role, 0, len(roles))
	for _, r := range roles {
		out = append(out, stats.Role(r))
	}
	return out
}
