package quiz

import (
	"math/rand"
	"testing"
	"time"

	"github.com/evandrarf/linguaflow-be/internal/pkg/apperror"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var start = time.Date(2025, 3, 12, 10, 0, 0, 0, time.UTC)

func sampleVocabulary() []Word {
	return []Word{
		{ID: 1, English: "cat", Arabic: "قطة"},
		{ID: 2, English: "dog", Arabic: "كلب"},
		{ID: 3, English: "sun", Arabic: "شمس"},
		{ID: 4, English: "moon", Arabic: "قمر"},
	}
}

func newTestGenerator(seed int64) *Generator {
	return NewGenerator(
		WithRand(rand.New(rand.NewSource(seed))),
		WithClock(func() time.Time { return start }),
	)
}

func TestGenerateSession_InsufficientVocabulary(t *testing.T) {
	g := newTestGenerator(1)
	for _, vocab := range [][]Word{nil, sampleVocabulary()[:1], sampleVocabulary()[:2]} {
		s, err := g.GenerateSession(vocab, 10)
		assert.Nil(t, s)
		require.Error(t, err)
		assert.True(t, apperror.IsValidation(err))
	}
}

func TestGenerateSession_SizeAndDistinctWords(t *testing.T) {
	vocab := make([]Word, 0, 25)
	for i := 1; i <= 25; i++ {
		vocab = append(vocab, Word{ID: uint(i), English: string(rune('a'+i-1)) + "word", Arabic: "كلمة" + string(rune('a'+i-1))})
	}

	tests := []struct {
		name  string
		vocab []Word
		size  int
		want  int
	}{
		{"default size", vocab, 0, DefaultSize},
		{"size capped by vocabulary", vocab[:4], 10, 4},
		{"exact size", vocab, 7, 7},
		{"minimum vocabulary", vocab[:3], 10, 3},
	}

	for seed := int64(0); seed < 20; seed++ {
		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				s, err := newTestGenerator(seed).GenerateSession(tt.vocab, tt.size)
				require.NoError(t, err)
				require.Len(t, s.Questions, tt.want)

				seen := map[uint]bool{}
				for _, q := range s.Questions {
					assert.False(t, seen[q.Word.ID], "word %d used twice", q.Word.ID)
					seen[q.Word.ID] = true
				}
			})
		}
	}
}

func TestGenerateSession_QuestionShapes(t *testing.T) {
	for seed := int64(0); seed < 50; seed++ {
		s, err := newTestGenerator(seed).GenerateSession(sampleVocabulary(), 4)
		require.NoError(t, err)

		for _, q := range s.Questions {
			switch q.Type {
			case TypeMultipleChoice:
				require.Len(t, q.Options, OptionCount)
				assert.Contains(t, q.Options, q.Word.Arabic)
				assert.Equal(t, q.Word.Arabic, q.CorrectAnswer)
				unique := map[string]bool{}
				for _, o := range q.Options {
					unique[o] = true
				}
				assert.Len(t, unique, OptionCount)
				assert.Equal(t, `What is the meaning of "`+q.Word.English+`"?`, q.Prompt)
			case TypeTranslation:
				assert.Equal(t, q.Word.Arabic, q.Prompt)
				assert.Equal(t, q.Word.English, q.CorrectAnswer)
				assert.Empty(t, q.Options)
			case TypeWrite:
				assert.Equal(t, `Write "`+q.Word.Arabic+`" in English`, q.Prompt)
				assert.Equal(t, q.Word.English, q.CorrectAnswer)
			default:
				t.Fatalf("unexpected question type %q", q.Type)
			}
		}
	}
}

func TestGenerateSession_FallsBackWhenDistractorsAreScarce(t *testing.T) {
	// Only two distinct translations exist besides the correct one.
	vocab := []Word{
		{ID: 1, English: "cat", Arabic: "قطة"},
		{ID: 2, English: "kitten", Arabic: "قطة"},
		{ID: 3, English: "dog", Arabic: "كلب"},
		{ID: 4, English: "sun", Arabic: "شمس"},
	}

	for seed := int64(0); seed < 50; seed++ {
		s, err := newTestGenerator(seed).GenerateSession(vocab, 4)
		require.NoError(t, err)
		for _, q := range s.Questions {
			if q.Word.ID == 1 || q.Word.ID == 2 {
				assert.NotEqual(t, TypeMultipleChoice, q.Type)
			}
			if q.Type == TypeMultipleChoice {
				assert.Len(t, q.Options, OptionCount)
			}
		}
	}
}

func TestGenerateSession_UsesEveryQuestionType(t *testing.T) {
	seen := map[QuestionType]bool{}
	for seed := int64(0); seed < 30; seed++ {
		s, err := newTestGenerator(seed).GenerateSession(sampleVocabulary(), 4)
		require.NoError(t, err)
		for _, q := range s.Questions {
			seen[q.Type] = true
		}
	}
	assert.True(t, seen[TypeMultipleChoice])
	assert.True(t, seen[TypeTranslation])
	assert.True(t, seen[TypeWrite])
}

func TestGenerateSession_DoesNotMutateInput(t *testing.T) {
	vocab := sampleVocabulary()
	_, err := newTestGenerator(3).GenerateSession(vocab, 4)
	require.NoError(t, err)
	assert.Equal(t, sampleVocabulary(), vocab)
}

func TestGenerateSession_PresentsFirstQuestion(t *testing.T) {
	s, err := newTestGenerator(1).GenerateSession(sampleVocabulary(), 4)
	require.NoError(t, err)

	assert.Equal(t, StatusInProgress, s.Status)
	assert.Equal(t, 0, s.Index)
	assert.Equal(t, StatePresented, s.Questions[0].State)
	assert.Equal(t, start, s.Questions[0].PresentedAt)
	for _, q := range s.Questions[1:] {
		assert.Equal(t, StatePending, q.State)
	}
}
