package mapper

import (
	"encoding/json"
	"fmt"
	"sort"
	"time"

	"github.com/evandrarf/linguaflow-be/internal/entity"
	"github.com/evandrarf/linguaflow-be/internal/quiz"
	"gorm.io/datatypes"
)

// ToRevisionEntity - Convert a freshly generated session to its DB rows
func ToRevisionEntity(userID string, s *quiz.Session) (entity.Revision, error) {
	rev := entity.Revision{
		SessionID:      s.ID,
		UserID:         userID,
		TotalQuestions: len(s.Questions),
		CurrentIndex:   s.Index,
		CorrectAnswers: s.CorrectCount,
		Score:          s.Score,
		Status:         string(s.Status),
		StartedAt:      s.StartedAt,
		Questions:      make([]entity.RevisionQuestion, 0, len(s.Questions)),
	}

	for i, q := range s.Questions {
		row, err := ToRevisionQuestion(i, q)
		if err != nil {
			return entity.Revision{}, err
		}
		rev.Questions = append(rev.Questions, row)
	}

	return rev, nil
}

func ToRevisionQuestion(position int, q quiz.Question) (entity.RevisionQuestion, error) {
	row := entity.RevisionQuestion{
		Position:      position,
		WordID:        q.Word.ID,
		English:       q.Word.English,
		Arabic:        q.Word.Arabic,
		QuestionType:  string(q.Type),
		Prompt:        q.Prompt,
		CorrectAnswer: q.CorrectAnswer,
	}
	if len(q.Options) > 0 {
		options, err := json.Marshal(q.Options)
		if err != nil {
			return entity.RevisionQuestion{}, fmt.Errorf("failed to marshal options for question %d: %w", position, err)
		}
		row.Options = datatypes.JSON(options)
	}
	if q.State != quiz.StatePending {
		presentedAt := q.PresentedAt
		row.PresentedAt = &presentedAt
	}
	return row, nil
}

// ToRevisionAnswer - The stored answer for question i of s
func ToRevisionAnswer(rev *entity.Revision, s *quiz.Session, i int, answeredAt time.Time) entity.RevisionAnswer {
	q := s.Questions[i]
	return entity.RevisionAnswer{
		RevisionID:       rev.ID,
		Position:         i,
		UserID:           rev.UserID,
		WordID:           q.Word.ID,
		QuestionType:     string(q.Type),
		UserAnswer:       q.UserAnswer,
		CorrectAnswer:    q.CorrectAnswer,
		IsCorrect:        q.Correct,
		TimeTakenSeconds: q.ElapsedSeconds,
		AnsweredAt:       answeredAt,
	}
}

// ToSession - Rebuild the engine state from stored rows
func ToSession(rev *entity.Revision) (*quiz.Session, error) {
	questions := make([]entity.RevisionQuestion, len(rev.Questions))
	copy(questions, rev.Questions)
	sort.Slice(questions, func(i, j int) bool { return questions[i].Position < questions[j].Position })

	answers := make(map[int]entity.RevisionAnswer, len(rev.Answers))
	for _, a := range rev.Answers {
		answers[a.Position] = a
	}

	s := &quiz.Session{
		ID:           rev.SessionID,
		Questions:    make([]quiz.Question, 0, len(questions)),
		Index:        rev.CurrentIndex,
		Score:        rev.Score,
		CorrectCount: rev.CorrectAnswers,
		StartedAt:    rev.StartedAt,
		Status:       quiz.Status(rev.Status),
	}

	for _, row := range questions {
		q := quiz.Question{
			Type:          quiz.QuestionType(row.QuestionType),
			Prompt:        row.Prompt,
			CorrectAnswer: row.CorrectAnswer,
			Word:          quiz.Word{ID: row.WordID, English: row.English, Arabic: row.Arabic},
			State:         quiz.StatePending,
		}
		if len(row.Options) > 0 {
			if err := json.Unmarshal(row.Options, &q.Options); err != nil {
				return nil, fmt.Errorf("failed to unmarshal options for question %d: %w", row.Position, err)
			}
		}
		if row.PresentedAt != nil {
			q.State = quiz.StatePresented
			q.PresentedAt = *row.PresentedAt
		}
		if a, ok := answers[row.Position]; ok {
			q.State = quiz.StateAnswered
			q.UserAnswer = a.UserAnswer
			q.Correct = a.IsCorrect
			q.ElapsedSeconds = a.TimeTakenSeconds
		}
		s.Questions = append(s.Questions, q)
	}

	if s.Terminal() {
		s.Restore(quiz.Summary{
			Score:           rev.Score,
			CorrectCount:    rev.CorrectAnswers,
			TotalQuestions:  rev.TotalQuestions,
			Accuracy:        rev.Accuracy,
			DurationSeconds: rev.DurationSeconds,
			Status:          s.Status,
		})
	}

	return s, nil
}

// ApplySummary - Copy a finished session's summary onto the revision row
func ApplySummary(rev *entity.Revision, summary quiz.Summary, completedAt time.Time) {
	rev.Score = summary.Score
	rev.CorrectAnswers = summary.CorrectCount
	rev.TotalQuestions = summary.TotalQuestions
	rev.Accuracy = summary.Accuracy
	rev.DurationSeconds = summary.DurationSeconds
	rev.Status = string(summary.Status)
	rev.CompletedAt = &completedAt
}
