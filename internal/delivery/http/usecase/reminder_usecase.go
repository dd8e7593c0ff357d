package usecase

import (
	"context"
	"fmt"

	"github.com/evandrarf/linguaflow-be/internal/delivery/http/repository"
	"github.com/evandrarf/linguaflow-be/internal/pkg/metrics"
	"github.com/evandrarf/linguaflow-be/internal/pkg/notifier"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

const (
	ReminderDaily  = "daily_reminder"
	ReminderWeekly = "weekly_report"
)

// ReminderStats counts one run of a reminder job.
type ReminderStats struct {
	Candidates int `json:"candidates"`
	Sent       int `json:"sent"`
	Skipped    int `json:"skipped"`
	Failed     int `json:"failed"`
}

type ReminderUsecase interface {
	SendDailyReminders(ctx context.Context) (ReminderStats, error)
	SendWeeklyReports(ctx context.Context) (ReminderStats, error)
}

type ReminderConfig struct {
	DB                   *gorm.DB
	PreferenceRepository repository.PreferenceRepository
	Statistics           StatisticsUsecase
	Notifier             notifier.Notifier
	Log                  *logrus.Logger
}

type reminderUsecase struct {
	cfg ReminderConfig
}

func NewReminderUsecase(cfg ReminderConfig) ReminderUsecase {
	return &reminderUsecase{cfg: cfg}
}

// SendDailyReminders mails subscribers who have not added a word today.
func (u *reminderUsecase) SendDailyReminders(ctx context.Context) (ReminderStats, error) {
	var result ReminderStats

	subscribers, err := u.cfg.PreferenceRepository.FindDailyReminderSubscribers(u.cfg.DB.WithContext(ctx))
	if err != nil {
		return result, fmt.Errorf("failed to load daily reminder subscribers: %w", err)
	}
	result.Candidates = len(subscribers)

	for _, p := range subscribers {
		report, err := u.cfg.Statistics.Report(ctx, p.UserID)
		if err != nil {
			u.cfg.Log.WithField("user_id", p.UserID).WithError(err).Error("failed to build daily reminder")
			result.Failed++
			continue
		}
		if report.WordsToday > 0 {
			result.Skipped++
			continue
		}

		subject := "Keep your streak going"
		text := "You haven't added a word today. Add one now to keep learning!"
		if report.CurrentStreak > 0 {
			text = fmt.Sprintf("You're on a %d day streak. Add a word today so you don't lose it!", report.CurrentStreak)
		}
		if report.CurrentStreak == 0 && report.LongestStreak > 0 {
			text = fmt.Sprintf("Your best streak is %d days. Add a word today to start a new one!", report.LongestStreak)
		}

		if !u.cfg.Notifier.Enabled() {
			u.cfg.Log.WithField("user_id", p.UserID).Debug("notifier disabled, daily reminder not sent")
			result.Skipped++
			continue
		}

		err = u.cfg.Notifier.Send(ctx, notifier.Email{To: p.Email, Subject: subject, Text: text})
		metrics.RecordReminder(ReminderDaily, err)
		if err != nil {
			u.cfg.Log.WithField("user_id", p.UserID).WithError(err).Error("failed to send daily reminder")
			result.Failed++
			continue
		}
		result.Sent++
	}

	u.cfg.Log.WithField("sent", result.Sent).WithField("skipped", result.Skipped).
		WithField("failed", result.Failed).Info("daily reminders processed")
	return result, nil
}

// SendWeeklyReports mails the weekly progress summary to subscribers.
func (u *reminderUsecase) SendWeeklyReports(ctx context.Context) (ReminderStats, error) {
	var result ReminderStats

	subscribers, err := u.cfg.PreferenceRepository.FindWeeklyReportSubscribers(u.cfg.DB.WithContext(ctx))
	if err != nil {
		return result, fmt.Errorf("failed to load weekly report subscribers: %w", err)
	}
	result.Candidates = len(subscribers)

	for _, p := range subscribers {
		report, err := u.cfg.Statistics.Report(ctx, p.UserID)
		if err != nil {
			u.cfg.Log.WithField("user_id", p.UserID).WithError(err).Error("failed to build weekly report")
			result.Failed++
			continue
		}

		if !u.cfg.Notifier.Enabled() {
			u.cfg.Log.WithField("user_id", p.UserID).Debug("notifier disabled, weekly report not sent")
			result.Skipped++
			continue
		}

		err = u.cfg.Notifier.Send(ctx, notifier.Email{
			To:      p.Email,
			Subject: "Your weekly LinguaFlow report",
			Text:    WeeklyReportText(report.WeekComparison.Current, report.WeekComparison.PercentChange, report.CurrentStreak, report.TotalWords),
		})
		metrics.RecordReminder(ReminderWeekly, err)
		if err != nil {
			u.cfg.Log.WithField("user_id", p.UserID).WithError(err).Error("failed to send weekly report")
			result.Failed++
			continue
		}
		result.Sent++
	}

	u.cfg.Log.WithField("sent", result.Sent).WithField("skipped", result.Skipped).
		WithField("failed", result.Failed).Info("weekly reports processed")
	return result, nil
}

func WeeklyReportText(wordsThisWeek, change, streak, totalWords int) string {
	trend := "the same as"
	switch {
	case change > 0:
		trend = fmt.Sprintf("%d%% more than", change)
	case change < 0:
		trend = fmt.Sprintf("%d%% fewer than", -change)
	}
	return fmt.Sprintf(
		"This week you added %d words, %s last week.\nCurrent streak: %d days.\nTotal vocabulary: %d words.",
		wordsThisWeek, trend, streak, totalWords,
	)
}
