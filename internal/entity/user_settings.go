package entity

import (
	"time"
)

const (
	DefaultDailyWordGoal      = 10
	DefaultWeeklyRevisionGoal = 15
	DefaultAIChatTimeGoal     = 60
)

// UserGoal - Learning targets, created with defaults on first read
type UserGoal struct {
	ID                 uint      `gorm:"primarykey" json:"id"`
	UserID             string    `gorm:"uniqueIndex;size:100;not null" json:"user_id"`
	DailyWordGoal      int       `gorm:"not null;default:10" json:"daily_word_goal"`
	WeeklyRevisionGoal int       `gorm:"not null;default:15" json:"weekly_revision_goal"`
	AIChatTimeGoal     int       `gorm:"not null;default:60" json:"ai_chat_time_goal"` // minutes per week
	CreatedAt          time.Time `json:"created_at"`
	UpdatedAt          time.Time `json:"updated_at"`
}

func (UserGoal) TableName() string {
	return "user_goals"
}

func DefaultUserGoal(userID string) UserGoal {
	return UserGoal{
		UserID:             userID,
		DailyWordGoal:      DefaultDailyWordGoal,
		WeeklyRevisionGoal: DefaultWeeklyRevisionGoal,
		AIChatTimeGoal:     DefaultAIChatTimeGoal,
	}
}

// UserPreference - Notification settings
type UserPreference struct {
	ID                 uint      `gorm:"primarykey" json:"id"`
	UserID             string    `gorm:"uniqueIndex;size:100;not null" json:"user_id"`
	Email              string    `gorm:"size:255" json:"email"`
	EmailNotifications bool      `gorm:"not null" json:"email_notifications"`
	DailyReminders     bool      `gorm:"not null" json:"daily_reminders"`
	WeeklyReports      bool      `gorm:"not null" json:"weekly_reports"`
	AchievementAlerts  bool      `gorm:"not null" json:"achievement_alerts"`
	CreatedAt          time.Time `json:"created_at"`
	UpdatedAt          time.Time `json:"updated_at"`
}

func (UserPreference) TableName() string {
	return "user_preferences"
}

func DefaultUserPreference(userID string) UserPreference {
	return UserPreference{
		UserID:             userID,
		EmailNotifications: true,
		DailyReminders:     true,
		WeeklyReports:      false,
		AchievementAlerts:  true,
	}
}
