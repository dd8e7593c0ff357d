// Package quiz builds and grades revision sessions from a user's vocabulary.
package quiz

import (
	"math/rand"
	"strings"
	"sync"
	"time"

	"github.com/evandrarf/linguaflow-be/internal/pkg/apperror"
)

const (
	DefaultSize     = 10
	MinVocabulary   = 3
	PointsPerAnswer = 10
	OptionCount     = 4
)

type QuestionType string

const (
	TypeMultipleChoice QuestionType = "multiple_choice"
	TypeTranslation    QuestionType = "translation"
	TypeWrite          QuestionType = "write"
)

var questionTypes = []QuestionType{TypeMultipleChoice, TypeTranslation, TypeWrite}

type QuestionState string

const (
	StatePending   QuestionState = "pending"
	StatePresented QuestionState = "presented"
	StateAnswered  QuestionState = "answered"
)

type Status string

const (
	StatusNotStarted Status = "not_started"
	StatusInProgress Status = "in_progress"
	StatusCompleted  Status = "completed"
	StatusAbandoned  Status = "abandoned"
)

// Word is the part of a vocabulary entry the generator needs.
type Word struct {
	ID      uint
	English string
	Arabic  string
}

type Question struct {
	Type          QuestionType
	Prompt        string
	Options       []string
	CorrectAnswer string
	Word          Word

	State          QuestionState
	PresentedAt    time.Time
	UserAnswer     string
	Correct        bool
	ElapsedSeconds int
}

type Result struct {
	Index          int
	Correct        bool
	CorrectAnswer  string
	ElapsedSeconds int
	Score          int
	CorrectCount   int
	Duplicate      bool
	Completed      bool
}

type Summary struct {
	Score           int     `json:"score"`
	CorrectCount    int     `json:"correct_count"`
	TotalQuestions  int     `json:"total_questions"`
	Accuracy        float64 `json:"accuracy"`
	DurationSeconds int     `json:"duration_seconds"`
	Status          Status  `json:"status"`
}

var ErrInsufficientVocabulary = &apperror.ValidationError{Message: "insufficient vocabulary: at least 3 words are needed to start a revision"}

// Generator draws questions using its own random source so tests can seed it.
// It is safe for concurrent use.
type Generator struct {
	mu  sync.Mutex
	rnd *rand.Rand
	now func() time.Time
}

type Option func(*Generator)

func WithRand(rnd *rand.Rand) Option {
	return func(g *Generator) { g.rnd = rnd }
}

func WithClock(now func() time.Time) Option {
	return func(g *Generator) { g.now = now }
}

func NewGenerator(opts ...Option) *Generator {
	g := &Generator{
		rnd: rand.New(rand.NewSource(time.Now().UnixNano())),
		now: time.Now,
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// GenerateSession shuffles the vocabulary and builds min(size, len) questions,
// one per word, with a uniformly random type each. The first question is
// presented immediately.
func (g *Generator) GenerateSession(vocabulary []Word, size int) (*Session, error) {
	if len(vocabulary) < MinVocabulary {
		return nil, ErrInsufficientVocabulary
	}
	if size <= 0 {
		size = DefaultSize
	}
	if size > len(vocabulary) {
		size = len(vocabulary)
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	shuffled := make([]Word, len(vocabulary))
	copy(shuffled, vocabulary)
	g.rnd.Shuffle(len(shuffled), func(i, j int) {
		shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
	})

	questions := make([]Question, 0, size)
	for i, w := range shuffled[:size] {
		qType := questionTypes[g.rnd.Intn(len(questionTypes))]
		questions = append(questions, g.buildQuestion(qType, w, shuffled, i))
	}

	s := &Session{
		Questions: questions,
		StartedAt: g.now(),
		Status:    StatusNotStarted,
	}
	s.start(s.StartedAt)
	return s, nil
}

func (g *Generator) buildQuestion(qType QuestionType, w Word, pool []Word, self int) Question {
	if qType == TypeMultipleChoice {
		distractors := g.distractors(w, pool, self)
		if len(distractors) < OptionCount-1 {
			qType = TypeTranslation
		} else {
			options := append(distractors, w.Arabic)
			g.rnd.Shuffle(len(options), func(i, j int) {
				options[i], options[j] = options[j], options[i]
			})
			return Question{
				Type:          TypeMultipleChoice,
				Prompt:        `What is the meaning of "` + w.English + `"?`,
				Options:       options,
				CorrectAnswer: w.Arabic,
				Word:          w,
				State:         StatePending,
			}
		}
	}

	if qType == TypeWrite {
		return Question{
			Type:          TypeWrite,
			Prompt:        `Write "` + w.Arabic + `" in English`,
			CorrectAnswer: w.English,
			Word:          w,
			State:         StatePending,
		}
	}

	return Question{
		Type:          TypeTranslation,
		Prompt:        w.Arabic,
		CorrectAnswer: w.English,
		Word:          w,
		State:         StatePending,
	}
}

// distractors samples up to three other translations, without replacement,
// whose text differs from the correct answer and from each other.
func (g *Generator) distractors(w Word, pool []Word, self int) []string {
	seen := map[string]bool{normalize(w.Arabic): true}
	candidates := make([]string, 0, len(pool))
	for i, other := range pool {
		if i == self || (w.ID != 0 && other.ID == w.ID) {
			continue
		}
		key := normalize(other.Arabic)
		if key == "" || seen[key] {
			continue
		}
		seen[key] = true
		candidates = append(candidates, other.Arabic)
	}

	g.rnd.Shuffle(len(candidates), func(i, j int) {
		candidates[i], candidates[j] = candidates[j], candidates[i]
	})
	if len(candidates) > OptionCount-1 {
		candidates = candidates[:OptionCount-1]
	}
	return candidates
}

func normalize(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}
