package entity

// UpdatePreferenceRequest is a partial update: omitted fields keep their value.
type UpdatePreferenceRequest struct {
	Email              *string `json:"email" validate:"omitempty,email,max=255"`
	EmailNotifications *bool   `json:"email_notifications"`
	DailyReminders     *bool   `json:"daily_reminders"`
	WeeklyReports      *bool   `json:"weekly_reports"`
	AchievementAlerts  *bool   `json:"achievement_alerts"`
}

type PreferenceResponse struct {
	Email              string `json:"email"`
	EmailNotifications bool   `json:"email_notifications"`
	DailyReminders     bool   `json:"daily_reminders"`
	WeeklyReports      bool   `json:"weekly_reports"`
	AchievementAlerts  bool   `json:"achievement_alerts"`
}
