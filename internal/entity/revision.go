package entity

import (
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Revision - A quiz session over the user's vocabulary
type Revision struct {
	ID              uint               `gorm:"primarykey" json:"id"`
	SessionID       string             `gorm:"uniqueIndex;size:36;not null" json:"session_id"`
	UserID          string             `gorm:"size:100;not null;index" json:"user_id"`
	TotalQuestions  int                `gorm:"not null" json:"total_questions"`
	CurrentIndex    int                `gorm:"not null;default:0" json:"current_index"`
	CorrectAnswers  int                `gorm:"not null;default:0" json:"correct_answers"`
	Score           int                `gorm:"not null;default:0" json:"score"`
	Accuracy        float64            `gorm:"not null;default:0" json:"accuracy"`
	DurationSeconds int                `gorm:"not null;default:0" json:"duration_seconds"`
	Status          string             `gorm:"size:20;not null;index" json:"status"` // in_progress, completed, abandoned
	StartedAt       time.Time          `gorm:"index" json:"started_at"`
	CompletedAt     *time.Time         `json:"completed_at,omitempty"`
	Questions       []RevisionQuestion `gorm:"constraint:OnDelete:CASCADE" json:"questions,omitempty"`
	Answers         []RevisionAnswer   `gorm:"constraint:OnDelete:CASCADE" json:"answers,omitempty"`
	CreatedAt       time.Time          `json:"created_at"`
	UpdatedAt       time.Time          `json:"updated_at"`
}

func (Revision) TableName() string {
	return "revisions"
}

// BeforeCreate stores timestamps in UTC; sqlite compares them as text.
func (r *Revision) BeforeCreate(*gorm.DB) error {
	r.StartedAt = r.StartedAt.UTC()
	r.CompletedAt = utcPtr(r.CompletedAt)
	return nil
}

// RevisionQuestion - A generated question, in session order
type RevisionQuestion struct {
	ID            uint           `gorm:"primarykey" json:"id"`
	RevisionID    uint           `gorm:"not null;uniqueIndex:idx_revision_question_position" json:"revision_id"`
	Position      int            `gorm:"not null;uniqueIndex:idx_revision_question_position" json:"position"`
	WordID        uint           `gorm:"not null" json:"word_id"`
	English       string         `gorm:"size:255;not null" json:"english"`
	Arabic        string         `gorm:"size:255;not null" json:"arabic"`
	QuestionType  string         `gorm:"size:20;not null" json:"question_type"` // multiple_choice, translation, write
	Prompt        string         `gorm:"type:text;not null" json:"prompt"`
	Options       datatypes.JSON `json:"options"` // JSON array, multiple choice only
	CorrectAnswer string         `gorm:"size:255;not null" json:"correct_answer"`
	PresentedAt   *time.Time     `json:"presented_at,omitempty"`
}

func (RevisionQuestion) TableName() string {
	return "revision_questions"
}

func (q *RevisionQuestion) BeforeCreate(*gorm.DB) error {
	q.PresentedAt = utcPtr(q.PresentedAt)
	return nil
}

// RevisionAnswer - The single accepted answer for a question
type RevisionAnswer struct {
	ID               uint      `gorm:"primarykey" json:"id"`
	RevisionID       uint      `gorm:"not null;uniqueIndex:idx_revision_answer_position" json:"revision_id"`
	Position         int       `gorm:"not null;uniqueIndex:idx_revision_answer_position" json:"position"`
	UserID           string    `gorm:"size:100;not null;index" json:"user_id"`
	WordID           uint      `gorm:"not null" json:"word_id"`
	QuestionType     string    `gorm:"size:20;not null" json:"question_type"`
	UserAnswer       string    `gorm:"size:255" json:"user_answer"`
	CorrectAnswer    string    `gorm:"size:255;not null" json:"correct_answer"`
	IsCorrect        bool      `gorm:"not null" json:"is_correct"`
	TimeTakenSeconds int       `gorm:"not null;default:0" json:"time_taken_seconds"`
	AnsweredAt       time.Time `json:"answered_at"`
}

func (RevisionAnswer) TableName() string {
	return "revision_answers"
}

func (a *RevisionAnswer) BeforeCreate(*gorm.DB) error {
	a.AnsweredAt = a.AnsweredAt.UTC()
	return nil
}

func utcPtr(t *time.Time) *time.Time {
	if t == nil {
		return nil
	}
	u := t.UTC()
	return &u
}
