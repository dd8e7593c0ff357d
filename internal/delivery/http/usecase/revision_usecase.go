package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/evandrarf/linguaflow-be/internal/delivery/http/entity"
	"github.com/evandrarf/linguaflow-be/internal/delivery/http/repository"
	internalEntity "github.com/evandrarf/linguaflow-be/internal/entity"
	"github.com/evandrarf/linguaflow-be/internal/pkg/auth"
	"github.com/evandrarf/linguaflow-be/internal/pkg/mapper"
	"github.com/evandrarf/linguaflow-be/internal/pkg/metrics"
	"github.com/evandrarf/linguaflow-be/internal/quiz"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

const revisionListLimit = 50

type RevisionUsecase interface {
	Create(ctx context.Context, user auth.User, req entity.CreateRevisionRequest) (*entity.RevisionResponse, error)
	SubmitAnswer(ctx context.Context, user auth.User, sessionID string, req entity.SubmitAnswerRequest) (*entity.SubmitAnswerResponse, error)
	Finish(ctx context.Context, user auth.User, sessionID string) (*quiz.Summary, error)
	Get(ctx context.Context, user auth.User, sessionID string) (*entity.RevisionResponse, error)
	List(ctx context.Context, user auth.User) ([]entity.RevisionListItem, error)
}

type RevisionConfig struct {
	DB             *gorm.DB
	Repository     repository.RevisionRepository
	WordRepository repository.WordRepository
	Generator      *quiz.Generator
	DefaultSize    int
	Log            *logrus.Logger
	Now            func() time.Time
}

type revisionUsecase struct {
	cfg RevisionConfig
}

func NewRevisionUsecase(cfg RevisionConfig) RevisionUsecase {
	if cfg.Now == nil {
		cfg.Now = time.Now
	}
	if cfg.Generator == nil {
		cfg.Generator = quiz.NewGenerator(quiz.WithClock(cfg.Now))
	}
	if cfg.DefaultSize <= 0 {
		cfg.DefaultSize = quiz.DefaultSize
	}
	return &revisionUsecase{cfg: cfg}
}

func (u *revisionUsecase) Create(ctx context.Context, user auth.User, req entity.CreateRevisionRequest) (*entity.RevisionResponse, error) {
	db := u.cfg.DB.WithContext(ctx)

	words, err := u.cfg.WordRepository.FindByUserID(db, user.ID, "")
	if err != nil {
		return nil, fmt.Errorf("failed to load vocabulary: %w", err)
	}

	size := req.Size
	if size <= 0 {
		size = u.cfg.DefaultSize
	}

	session, err := u.cfg.Generator.GenerateSession(mapper.ToQuizWords(words), size)
	if err != nil {
		return nil, err
	}
	session.ID = uuid.NewString()

	revision, err := mapper.ToRevisionEntity(user.ID, session)
	if err != nil {
		return nil, err
	}
	if err := u.cfg.Repository.Create(db, &revision); err != nil {
		return nil, fmt.Errorf("failed to save revision: %w", err)
	}

	u.cfg.Log.WithField("user_id", user.ID).WithField("session_id", session.ID).
		WithField("questions", len(session.Questions)).Info("revision started")

	return toRevisionResponse(session), nil
}

// SubmitAnswer grades one answer. The unique (revision, position) index keeps a
// question to a single stored answer; a losing concurrent submission gets the
// stored result back as a duplicate.
func (u *revisionUsecase) SubmitAnswer(ctx context.Context, user auth.User, sessionID string, req entity.SubmitAnswerRequest) (*entity.SubmitAnswerResponse, error) {
	index := *req.QuestionIndex
	now := u.cfg.Now()

	var (
		result       quiz.Result
		total        int
		questionType quiz.QuestionType
	)
	err := u.cfg.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		revision, session, err := u.load(tx, user.ID, sessionID, true)
		if err != nil {
			return err
		}
		total = len(session.Questions)

		result, err = session.Submit(index, req.Answer, now)
		if err != nil || result.Duplicate {
			return err
		}
		questionType = session.Questions[index].Type

		answer := mapper.ToRevisionAnswer(revision, session, index, now)
		if err := u.cfg.Repository.CreateAnswer(tx, &answer); err != nil {
			if !errors.Is(err, repository.ErrDuplicateAnswer) {
				return fmt.Errorf("failed to save answer: %w", err)
			}
			_, stored, err := u.load(tx, user.ID, sessionID, false)
			if err != nil {
				return err
			}
			result, err = stored.Submit(index, req.Answer, now)
			return err
		}

		if session.Index < total {
			if err := u.cfg.Repository.MarkPresented(tx, revision.ID, session.Index, now); err != nil {
				return fmt.Errorf("failed to present next question: %w", err)
			}
		}

		revision.CurrentIndex = session.Index
		revision.Score = session.Score
		revision.CorrectAnswers = session.CorrectCount
		return u.cfg.Repository.UpdateProgress(tx, revision)
	})
	if err != nil {
		return nil, err
	}
	if !result.Duplicate {
		metrics.RecordRevisionAnswer(string(questionType), result.Correct)
	}

	return &entity.SubmitAnswerResponse{
		SessionID:        sessionID,
		QuestionIndex:    result.Index,
		IsCorrect:        result.Correct,
		CorrectAnswer:    result.CorrectAnswer,
		TimeTakenSeconds: result.ElapsedSeconds,
		Score:            result.Score,
		CorrectAnswers:   result.CorrectCount,
		Duplicate:        result.Duplicate,
		Completed:        result.Completed,
	}, nil
}

// Finish is idempotent: a finished revision returns its stored summary.
func (u *revisionUsecase) Finish(ctx context.Context, user auth.User, sessionID string) (*quiz.Summary, error) {
	now := u.cfg.Now()

	var summary quiz.Summary
	err := u.cfg.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		revision, session, err := u.load(tx, user.ID, sessionID, true)
		if err != nil {
			return err
		}

		finished := session.Terminal()
		summary = session.Finish(now)
		if finished {
			return nil
		}

		mapper.ApplySummary(revision, summary, now)
		revision.CurrentIndex = session.Index
		if err := u.cfg.Repository.UpdateProgress(tx, revision); err != nil {
			return fmt.Errorf("failed to finish revision: %w", err)
		}

		u.cfg.Log.WithField("user_id", user.ID).WithField("session_id", sessionID).
			WithField("status", summary.Status).WithField("accuracy", summary.Accuracy).Info("revision finished")
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &summary, nil
}

func (u *revisionUsecase) Get(ctx context.Context, user auth.User, sessionID string) (*entity.RevisionResponse, error) {
	_, session, err := u.load(u.cfg.DB.WithContext(ctx), user.ID, sessionID, false)
	if err != nil {
		return nil, err
	}
	return toRevisionResponse(session), nil
}

func (u *revisionUsecase) List(ctx context.Context, user auth.User) ([]entity.RevisionListItem, error) {
	revisions, err := u.cfg.Repository.FindByUserID(u.cfg.DB.WithContext(ctx), user.ID, revisionListLimit)
	if err != nil {
		return nil, fmt.Errorf("failed to list revisions: %w", err)
	}

	out := make([]entity.RevisionListItem, 0, len(revisions))
	for _, r := range revisions {
		out = append(out, entity.RevisionListItem{
			SessionID:       r.SessionID,
			Status:          r.Status,
			TotalQuestions:  r.TotalQuestions,
			CorrectAnswers:  r.CorrectAnswers,
			Score:           r.Score,
			Accuracy:        r.Accuracy,
			DurationSeconds: r.DurationSeconds,
			StartedAt:       r.StartedAt,
			CompletedAt:     r.CompletedAt,
		})
	}
	return out, nil
}

func (u *revisionUsecase) load(db *gorm.DB, userID, sessionID string, forUpdate bool) (*internalEntity.Revision, *quiz.Session, error) {
	revision, err := u.cfg.Repository.FindBySessionID(db, userID, sessionID, forUpdate)
	if err != nil {
		return nil, nil, err
	}
	session, err := mapper.ToSession(revision)
	if err != nil {
		return nil, nil, err
	}
	return revision, session, nil
}

func toRevisionResponse(s *quiz.Session) *entity.RevisionResponse {
	res := &entity.RevisionResponse{
		SessionID:      s.ID,
		Status:         s.Status,
		CurrentIndex:   s.Index,
		TotalQuestions: len(s.Questions),
		Score:          s.Score,
		CorrectAnswers: s.CorrectCount,
		StartedAt:      s.StartedAt,
		Questions:      make([]entity.RevisionQuestion, 0, len(s.Questions)),
	}

	for i, q := range s.Questions {
		item := entity.RevisionQuestion{
			Index:   i,
			Type:    q.Type,
			Prompt:  q.Prompt,
			Options: q.Options,
			State:   q.State,
		}
		if q.State == quiz.StateAnswered {
			correct := q.Correct
			item.UserAnswer = q.UserAnswer
			item.Correct = &correct
			item.CorrectAnswer = q.CorrectAnswer
		}
		res.Questions = append(res.Questions, item)
	}

	if summary, ok := s.Summary(); ok {
		res.Summary = &summary
	}
	return res
}
