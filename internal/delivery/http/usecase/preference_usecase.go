package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/evandrarf/linguaflow-be/internal/delivery/http/entity"
	"github.com/evandrarf/linguaflow-be/internal/delivery/http/repository"
	internalEntity "github.com/evandrarf/linguaflow-be/internal/entity"
	"github.com/evandrarf/linguaflow-be/internal/pkg/auth"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

type PreferenceUsecase interface {
	Get(ctx context.Context, user auth.User) (*entity.PreferenceResponse, error)
	Update(ctx context.Context, user auth.User, req entity.UpdatePreferenceRequest) (*entity.PreferenceResponse, error)
}

type PreferenceConfig struct {
	DB         *gorm.DB
	Repository repository.PreferenceRepository
	Log        *logrus.Logger
}

type preferenceUsecase struct {
	cfg PreferenceConfig
}

func NewPreferenceUsecase(cfg PreferenceConfig) PreferenceUsecase {
	return &preferenceUsecase{cfg: cfg}
}

func (u *preferenceUsecase) Get(ctx context.Context, user auth.User) (*entity.PreferenceResponse, error) {
	preference, err := u.load(u.cfg.DB.WithContext(ctx), user)
	if err != nil {
		return nil, err
	}
	return toPreferenceResponse(preference), nil
}

func (u *preferenceUsecase) Update(ctx context.Context, user auth.User, req entity.UpdatePreferenceRequest) (*entity.PreferenceResponse, error) {
	db := u.cfg.DB.WithContext(ctx)

	preference, err := u.load(db, user)
	if err != nil {
		return nil, err
	}

	if req.Email != nil {
		preference.Email = strings.TrimSpace(*req.Email)
	}
	if req.EmailNotifications != nil {
		preference.EmailNotifications = *req.EmailNotifications
	}
	if req.DailyReminders != nil {
		preference.DailyReminders = *req.DailyReminders
	}
	if req.WeeklyReports != nil {
		preference.WeeklyReports = *req.WeeklyReports
	}
	if req.AchievementAlerts != nil {
		preference.AchievementAlerts = *req.AchievementAlerts
	}

	if err := u.cfg.Repository.Save(db, preference); err != nil {
		return nil, fmt.Errorf("failed to update preferences: %w", err)
	}

	u.cfg.Log.WithField("user_id", user.ID).Info("preferences updated")
	return toPreferenceResponse(preference), nil
}

// load returns the stored preferences. The email defaults to the token's
// address until the user sets one.
func (u *preferenceUsecase) load(db *gorm.DB, user auth.User) (*internalEntity.UserPreference, error) {
	preference, err := u.cfg.Repository.FindOrCreate(db, user.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to get preferences: %w", err)
	}
	if preference.Email == "" && user.Email != "" {
		preference.Email = user.Email
		if err := u.cfg.Repository.Save(db, preference); err != nil {
			return nil, fmt.Errorf("failed to save preferences: %w", err)
		}
	}
	return preference, nil
}

func toPreferenceResponse(p *internalEntity.UserPreference) *entity.PreferenceResponse {
	return &entity.PreferenceResponse{
		Email:              p.Email,
		EmailNotifications: p.EmailNotifications,
		DailyReminders:     p.DailyReminders,
		WeeklyReports:      p.WeeklyReports,
		AchievementAlerts:  p.AchievementAlerts,
	}
}
