package scheduler

import (
	"context"
	"fmt"
	"time"

	"github.com/evandrarf/linguaflow-be/internal/delivery/http/usecase"
	"github.com/go-co-op/gocron"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

const (
	defaultDailyAt  = "18:00"
	defaultWeeklyAt = "09:00"
	jobTimeout      = 5 * time.Minute
)

// Jobs is the work the scheduler triggers.
type Jobs interface {
	SendDailyReminders(ctx context.Context) (usecase.ReminderStats, error)
	SendWeeklyReports(ctx context.Context) (usecase.ReminderStats, error)
}

type Config struct {
	Location *time.Location
	DailyAt  string
	WeeklyAt string
}

func ConfigFromViper(v *viper.Viper) (Config, error) {
	cfg := Config{
		Location: time.UTC,
		DailyAt:  v.GetString("scheduler.daily_reminder_at"),
		WeeklyAt: v.GetString("scheduler.weekly_report_at"),
	}
	if tz := v.GetString("scheduler.timezone"); tz != "" {
		loc, err := time.LoadLocation(tz)
		if err != nil {
			return cfg, fmt.Errorf("invalid scheduler.timezone %q: %w", tz, err)
		}
		cfg.Location = loc
	}
	return cfg, nil
}

// Scheduler runs the daily streak reminder and the Monday weekly report.
type Scheduler struct {
	scheduler *gocron.Scheduler
	jobs      Jobs
	log       *logrus.Logger
}

func New(cfg Config, jobs Jobs, log *logrus.Logger) (*Scheduler, error) {
	if cfg.Location == nil {
		cfg.Location = time.UTC
	}
	if cfg.DailyAt == "" {
		cfg.DailyAt = defaultDailyAt
	}
	if cfg.WeeklyAt == "" {
		cfg.WeeklyAt = defaultWeeklyAt
	}

	s := &Scheduler{
		scheduler: gocron.NewScheduler(cfg.Location),
		jobs:      jobs,
		log:       log,
	}
	s.scheduler.SingletonModeAll()

	if _, err := s.scheduler.Every(1).Day().At(cfg.DailyAt).Tag(usecase.ReminderDaily).Do(s.RunDaily); err != nil {
		return nil, fmt.Errorf("failed to schedule daily reminders: %w", err)
	}
	if _, err := s.scheduler.Every(1).Week().Monday().At(cfg.WeeklyAt).Tag(usecase.ReminderWeekly).Do(s.RunWeekly); err != nil {
		return nil, fmt.Errorf("failed to schedule weekly reports: %w", err)
	}

	return s, nil
}

// Start runs the jobs in the background.
func (s *Scheduler) Start() {
	s.scheduler.StartAsync()
	s.log.WithField("jobs", len(s.scheduler.Jobs())).Info("scheduler started")
}

func (s *Scheduler) Stop() {
	s.scheduler.Stop()
	s.log.Info("scheduler stopped")
}

func (s *Scheduler) RunDaily() {
	s.run(usecase.ReminderDaily, s.jobs.SendDailyReminders)
}

func (s *Scheduler) RunWeekly() {
	s.run(usecase.ReminderWeekly, s.jobs.SendWeeklyReports)
}

func (s *Scheduler) run(name string, job func(context.Context) (usecase.ReminderStats, error)) {
	ctx, cancel := context.WithTimeout(context.Background(), jobTimeout)
	defer cancel()

	stats, err := job(ctx)
	if err != nil {
		s.log.WithField("job", name).WithError(err).Error("scheduled job failed")
		return
	}
	s.log.WithField("job", name).WithField("candidates", stats.Candidates).
		WithField("sent", stats.Sent).Debug("scheduled job finished")
}
