package entity

import (
	"time"

	"github.com/evandrarf/linguaflow-be/internal/quiz"
)

type CreateRevisionRequest struct {
	Size int `json:"size" validate:"omitempty,min=1,max=50"`
}

// RevisionQuestion never carries the correct answer before it is answered.
type RevisionQuestion struct {
	Index         int                `json:"index"`
	Type          quiz.QuestionType  `json:"type"`
	Prompt        string             `json:"prompt"`
	Options       []string           `json:"options,omitempty"`
	State         quiz.QuestionState `json:"state"`
	UserAnswer    string             `json:"user_answer,omitempty"`
	Correct       *bool              `json:"correct,omitempty"`
	CorrectAnswer string             `json:"correct_answer,omitempty"`
}

type RevisionResponse struct {
	SessionID      string             `json:"session_id"`
	Status         quiz.Status        `json:"status"`
	CurrentIndex   int                `json:"current_index"`
	TotalQuestions int                `json:"total_questions"`
	Score          int                `json:"score"`
	CorrectAnswers int                `json:"correct_answers"`
	StartedAt      time.Time          `json:"started_at"`
	Questions      []RevisionQuestion `json:"questions"`
	Summary        *quiz.Summary      `json:"summary,omitempty"`
}

type SubmitAnswerRequest struct {
	QuestionIndex *int   `json:"question_index" validate:"required,min=0"`
	Answer        string `json:"answer" validate:"required,max=255"`
}

type SubmitAnswerResponse struct {
	SessionID        string `json:"session_id"`
	QuestionIndex    int    `json:"question_index"`
	IsCorrect        bool   `json:"is_correct"`
	CorrectAnswer    string `json:"correct_answer"`
	TimeTakenSeconds int    `json:"time_taken_seconds"`
	Score            int    `json:"score"`
	CorrectAnswers   int    `json:"correct_answers"`
	Duplicate        bool   `json:"duplicate"`
	Completed        bool   `json:"completed"`
}

type RevisionListItem struct {
	SessionID       string     `json:"session_id"`
	Status          string     `json:"status"`
	TotalQuestions  int        `json:"total_questions"`
	CorrectAnswers  int        `json:"correct_answers"`
	Score           int        `json:"score"`
	Accuracy        float64    `json:"accuracy"`
	DurationSeconds int        `json:"duration_seconds"`
	StartedAt       time.Time  `json:"started_at"`
	CompletedAt     *time.Time `json:"completed_at,omitempty"`
}
