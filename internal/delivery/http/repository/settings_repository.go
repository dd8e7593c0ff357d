package repository

import (
	"github.com/evandrarf/linguaflow-be/internal/entity"
	"gorm.io/gorm"
)

type (
	GoalRepository interface {
		FindOrCreate(db *gorm.DB, userID string) (*entity.UserGoal, error)
		Save(db *gorm.DB, goal *entity.UserGoal) error
	}

	goalRepository struct {
		db *gorm.DB
	}

	PreferenceRepository interface {
		FindOrCreate(db *gorm.DB, userID string) (*entity.UserPreference, error)
		Save(db *gorm.DB, preference *entity.UserPreference) error
		FindDailyReminderSubscribers(db *gorm.DB) ([]entity.UserPreference, error)
		FindWeeklyReportSubscribers(db *gorm.DB) ([]entity.UserPreference, error)
	}

	preferenceRepository struct {
		db *gorm.DB
	}
)

func NewGoalRepository(db *gorm.DB) GoalRepository {
	return &goalRepository{db: db}
}

// FindOrCreate returns the user's goals, inserting the defaults on first read.
func (r *goalRepository) FindOrCreate(db *gorm.DB, userID string) (*entity.UserGoal, error) {
	if db == nil {
		db = r.db
	}
	goal := entity.DefaultUserGoal(userID)
	err := db.Where("user_id = ?", userID).Attrs(goal).FirstOrCreate(&goal).Error
	if err != nil {
		return nil, err
	}
	return &goal, nil
}

func (r *goalRepository) Save(db *gorm.DB, goal *entity.UserGoal) error {
	if db == nil {
		db = r.db
	}
	return db.Save(goal).Error
}

func NewPreferenceRepository(db *gorm.DB) PreferenceRepository {
	return &preferenceRepository{db: db}
}

func (r *preferenceRepository) FindOrCreate(db *gorm.DB, userID string) (*entity.UserPreference, error) {
	if db == nil {
		db = r.db
	}
	preference := entity.DefaultUserPreference(userID)
	err := db.Where("user_id = ?", userID).Attrs(preference).FirstOrCreate(&preference).Error
	if err != nil {
		return nil, err
	}
	return &preference, nil
}

func (r *preferenceRepository) Save(db *gorm.DB, preference *entity.UserPreference) error {
	if db == nil {
		db = r.db
	}
	return db.Save(preference).Error
}

func (r *preferenceRepository) FindDailyReminderSubscribers(db *gorm.DB) ([]entity.UserPreference, error) {
	if db == nil {
		db = r.db
	}
	var preferences []entity.UserPreference
	err := db.Where("email_notifications = ? AND daily_reminders = ? AND email <> ''", true, true).
		Find(&preferences).Error
	return preferences, err
}

func (r *preferenceRepository) FindWeeklyReportSubscribers(db *gorm.DB) ([]entity.UserPreference, error) {
	if db == nil {
		db = r.db
	}
	var preferences []entity.UserPreference
	err := db.Where("email_notifications = ? AND weekly_reports = ? AND email <> ''", true, true).
		Find(&preferences).Error
	return preferences, err
}
