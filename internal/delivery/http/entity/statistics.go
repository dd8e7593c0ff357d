package entity

import "github.com/evandrarf/linguaflow-be/internal/stats"

type StatisticsResponse struct {
	TotalWords        int                    `json:"total_words"`
	CurrentStreak     int                    `json:"current_streak"`
	LongestStreak     int                    `json:"longest_streak"`
	MissedDays        int                    `json:"missed_days"`
	MaxWordsInOneDay  int                    `json:"max_words_in_one_day"`
	WordsToday        int                    `json:"words_today"`
	WordsThisWeek     int                    `json:"words_this_week"`
	Activity          []stats.ActivityDay    `json:"activity"`
	WeekComparison    stats.PeriodComparison `json:"week_comparison"`
	MonthComparison   stats.PeriodComparison `json:"month_comparison"`
	AIChatMinutes     float64                `json:"ai_chat_minutes"`
	FutureDatedWords  int                    `json:"future_dated_words,omitempty"`
	ChatMinutesFailed bool                   `json:"chat_minutes_unavailable,omitempty"`
}

type StatisticsPreviewRequest struct {
	CreatedAt []string `json:"created_at" validate:"required,max=10000"`
}

type SkippedRow struct {
	Value string `json:"value"`
	Error string `json:"error"`
}

type StatisticsPreviewResponse struct {
	StatisticsResponse
	Skipped []SkippedRow `json:"skipped"`
}
