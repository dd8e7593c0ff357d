package entity

type UpdateGoalRequest struct {
	DailyWordGoal      int `json:"daily_word_goal" validate:"required,gt=0,lte=1000"`
	WeeklyRevisionGoal int `json:"weekly_revision_goal" validate:"required,gt=0,lte=1000"`
	AIChatTimeGoal     int `json:"ai_chat_time_goal" validate:"required,gt=0,lte=10000"`
}

type GoalProgress struct {
	Key        string  `json:"key"`
	Label      string  `json:"label"`
	Current    float64 `json:"current"`
	Target     int     `json:"target"`
	Unit       string  `json:"unit"`
	Percentage int     `json:"percentage"`
	Completed  bool    `json:"completed"`
}

type GoalResponse struct {
	DailyWordGoal      int            `json:"daily_word_goal"`
	WeeklyRevisionGoal int            `json:"weekly_revision_goal"`
	AIChatTimeGoal     int            `json:"ai_chat_time_goal"`
	Progress           []GoalProgress `json:"progress"`
}
