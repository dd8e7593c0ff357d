package quiz

import (
	"math"
	"time"

	"github.com/evandrarf/linguaflow-be/internal/pkg/apperror"
)

// Session is a revision in progress. It is not safe for concurrent use; the
// caller owns it for the duration of a request.
type Session struct {
	ID           string
	Questions    []Question
	Index        int
	Score        int
	CorrectCount int
	StartedAt    time.Time
	Status       Status

	summary *Summary
}

func (s *Session) start(now time.Time) {
	if s.Status != StatusNotStarted {
		return
	}
	s.Status = StatusInProgress
	if len(s.Questions) > 0 {
		s.present(0, now)
	}
}

func (s *Session) present(i int, now time.Time) {
	s.Index = i
	if i < len(s.Questions) && s.Questions[i].State == StatePending {
		s.Questions[i].State = StatePresented
		s.Questions[i].PresentedAt = now
	}
}

func (s *Session) Terminal() bool {
	return s.Status == StatusCompleted || s.Status == StatusAbandoned
}

// Answered counts the questions that reached the Answered state.
func (s *Session) Answered() int {
	n := 0
	for _, q := range s.Questions {
		if q.State == StateAnswered {
			n++
		}
	}
	return n
}

// Submit grades the answer for question i. Re-submitting an answered question
// is a no-op that returns the first result.
func (s *Session) Submit(i int, rawAnswer string, now time.Time) (Result, error) {
	if i < 0 || i >= len(s.Questions) {
		return Result{}, apperror.Validation("question index %d out of range", i)
	}

	q := &s.Questions[i]
	if q.State == StateAnswered {
		return s.result(i, true), nil
	}
	if s.Terminal() {
		return Result{}, apperror.Validation("revision session is already finished")
	}
	if q.State != StatePresented {
		return Result{}, apperror.Validation("question %d has not been presented yet", i)
	}

	q.UserAnswer = rawAnswer
	q.Correct = IsCorrect(*q, rawAnswer)
	q.ElapsedSeconds = int(now.Sub(q.PresentedAt) / time.Second)
	if q.ElapsedSeconds < 0 {
		q.ElapsedSeconds = 0
	}
	q.State = StateAnswered

	if q.Correct {
		s.Score += PointsPerAnswer
		s.CorrectCount++
	}

	if i+1 < len(s.Questions) {
		s.present(i+1, now)
	} else {
		s.Index = len(s.Questions)
	}

	return s.result(i, false), nil
}

func (s *Session) result(i int, duplicate bool) Result {
	q := s.Questions[i]
	return Result{
		Index:          i,
		Correct:        q.Correct,
		CorrectAnswer:  q.CorrectAnswer,
		ElapsedSeconds: q.ElapsedSeconds,
		Score:          s.Score,
		CorrectCount:   s.CorrectCount,
		Duplicate:      duplicate,
		Completed:      s.Index >= len(s.Questions),
	}
}

// IsCorrect compares multiple-choice selections verbatim and typed answers
// trimmed and case-insensitively.
func IsCorrect(q Question, rawAnswer string) bool {
	if q.Type == TypeMultipleChoice {
		return rawAnswer == q.CorrectAnswer
	}
	return normalize(rawAnswer) == normalize(q.CorrectAnswer)
}

// Finish computes the summary once and marks the session terminal. Finishing
// before every question is answered abandons the session, and the summary then
// covers the answered questions only.
func (s *Session) Finish(now time.Time) Summary {
	if s.summary != nil {
		return *s.summary
	}

	total := len(s.Questions)
	status := StatusCompleted
	if answered := s.Answered(); answered < total {
		total = answered
		status = StatusAbandoned
	}

	duration := int(now.Sub(s.StartedAt) / time.Second)
	if duration < 0 {
		duration = 0
	}

	summary := Summary{
		Score:           s.Score,
		CorrectCount:    s.CorrectCount,
		TotalQuestions:  total,
		Accuracy:        Accuracy(s.CorrectCount, total),
		DurationSeconds: duration,
		Status:          status,
	}
	s.Status = status
	s.summary = &summary
	return summary
}

// Accuracy is correct/total as a percentage rounded to two decimals.
func Accuracy(correct, total int) float64 {
	if total == 0 {
		return 0
	}
	return math.Round(float64(correct)/float64(total)*100*100) / 100
}

// Summary returns the stored summary of a finished session.
func (s *Session) Summary() (Summary, bool) {
	if s.summary == nil {
		return Summary{}, false
	}
	return *s.summary, true
}

// Restore rebuilds a finished session's summary from stored values so that a
// repeated Finish returns what was persisted.
func (s *Session) Restore(summary Summary) {
	s.Status = summary.Status
	s.summary = &summary
}
