package config

import (
	"context"
	"fmt"
	"time"

	"github.com/evandrarf/linguaflow-be/internal/delivery/http/repository"
	"github.com/evandrarf/linguaflow-be/internal/delivery/http/usecase"
	"github.com/evandrarf/linguaflow-be/internal/pkg/llm"
	"github.com/evandrarf/linguaflow-be/internal/pkg/notifier"
	"github.com/evandrarf/linguaflow-be/internal/pkg/validate"
	"github.com/evandrarf/linguaflow-be/internal/quiz"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
	"gorm.io/gorm"
)

type UsecaseConfig struct {
	Config    *viper.Viper
	DB        *gorm.DB
	Log       *logrus.Logger
	Validator *validate.Validator
}

// Usecases is the application layer shared by the HTTP API, the scheduler and
// the admin CLI.
type Usecases struct {
	Word       usecase.WordUsecase
	Revision   usecase.RevisionUsecase
	Chatbot    usecase.ChatbotUsecase
	Statistics usecase.StatisticsUsecase
	Goal       usecase.GoalUsecase
	Preference usecase.PreferenceUsecase
	Reminder   usecase.ReminderUsecase
}

func NewUsecases(ctx context.Context, c *UsecaseConfig) (*Usecases, error) {
	location, err := StatsLocation(c.Config)
	if err != nil {
		return nil, err
	}

	completer, err := llm.New(ctx, llm.ConfigFromViper(c.Config))
	if err != nil {
		return nil, fmt.Errorf("failed to create AI provider: %w", err)
	}

	mailer, err := notifier.NewSESNotifier(ctx, c.Config, c.Log)
	if err != nil {
		return nil, err
	}

	wordRepo := repository.NewWordRepository(c.DB)
	chatRepo := repository.NewChatRepository(c.DB)
	revisionRepo := repository.NewRevisionRepository(c.DB)
	goalRepo := repository.NewGoalRepository(c.DB)
	preferenceRepo := repository.NewPreferenceRepository(c.DB)

	statistics := usecase.NewStatisticsUsecase(usecase.StatisticsConfig{
		DB:             c.DB,
		WordRepository: wordRepo,
		ChatRepository: chatRepo,
		Location:       location,
		Log:            c.Log,
	})

	return &Usecases{
		Word: usecase.NewWordUsecase(usecase.WordConfig{
			DB:         c.DB,
			Repository: wordRepo,
			Validator:  c.Validator,
			Location:   location,
			Log:        c.Log,
		}),
		Revision: usecase.NewRevisionUsecase(usecase.RevisionConfig{
			DB:             c.DB,
			Repository:     revisionRepo,
			WordRepository: wordRepo,
			Generator:      quiz.NewGenerator(),
			DefaultSize:    c.Config.GetInt("quiz.size"),
			Log:            c.Log,
		}),
		Chatbot: usecase.NewChatbotUsecase(usecase.ChatbotConfig{
			DB:             c.DB,
			Repository:     chatRepo,
			WordRepository: wordRepo,
			Completer:      completer,
			Log:            c.Log,
		}),
		Statistics: statistics,
		Goal: usecase.NewGoalUsecase(usecase.GoalConfig{
			DB:                 c.DB,
			Repository:         goalRepo,
			WordRepository:     wordRepo,
			RevisionRepository: revisionRepo,
			ChatRepository:     chatRepo,
			Location:           location,
			Log:                c.Log,
		}),
		Preference: usecase.NewPreferenceUsecase(usecase.PreferenceConfig{
			DB:         c.DB,
			Repository: preferenceRepo,
			Log:        c.Log,
		}),
		Reminder: usecase.NewReminderUsecase(usecase.ReminderConfig{
			DB:                   c.DB,
			PreferenceRepository: preferenceRepo,
			Statistics:           statistics,
			Notifier:             mailer,
			Log:                  c.Log,
		}),
	}, nil
}

// StatsLocation is the calendar used for day boundaries in statistics.
func StatsLocation(config *viper.Viper) (*time.Location, error) {
	tz := config.GetString("stats.timezone")
	if tz == "" {
		return time.UTC, nil
	}
	loc, err := time.LoadLocation(tz)
	if err != nil {
		return nil, fmt.Errorf("invalid stats.timezone %q: %w", tz, err)
	}
	return loc, nil
}
