package usecase

import (
	"context"
	"fmt"
	"io"
	"sort"
	"strings"
	"time"

	"github.com/evandrarf/linguaflow-be/internal/delivery/http/entity"
	"github.com/evandrarf/linguaflow-be/internal/delivery/http/repository"
	internalEntity "github.com/evandrarf/linguaflow-be/internal/entity"
	"github.com/evandrarf/linguaflow-be/internal/pkg/auth"
	"github.com/evandrarf/linguaflow-be/internal/pkg/importer"
	"github.com/evandrarf/linguaflow-be/internal/pkg/validate"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

type WordUsecase interface {
	List(ctx context.Context, user auth.User, query entity.ListWordsQuery) ([]entity.WordResponse, error)
	Create(ctx context.Context, user auth.User, req entity.WordRequest) (*entity.WordResponse, error)
	Update(ctx context.Context, user auth.User, id uint, req entity.WordRequest) (*entity.WordResponse, error)
	Delete(ctx context.Context, user auth.User, id uint) error
	Import(ctx context.Context, userID string, r io.Reader) (*entity.ImportWordsResponse, error)
}

type WordConfig struct {
	DB         *gorm.DB
	Repository repository.WordRepository
	Validator  *validate.Validator
	Location   *time.Location
	Log        *logrus.Logger
	Now        func() time.Time
}

type wordUsecase struct {
	cfg WordConfig
}

func NewWordUsecase(cfg WordConfig) WordUsecase {
	if cfg.Location == nil {
		cfg.Location = time.UTC
	}
	if cfg.Now == nil {
		cfg.Now = time.Now
	}
	return &wordUsecase{cfg: cfg}
}

func toWordResponse(w internalEntity.Word) entity.WordResponse {
	return entity.WordResponse{
		ID:        w.ID,
		English:   w.English,
		Arabic:    w.Arabic,
		CreatedAt: w.CreatedAt,
	}
}

func (u *wordUsecase) List(ctx context.Context, user auth.User, query entity.ListWordsQuery) ([]entity.WordResponse, error) {
	words, err := u.cfg.Repository.FindByUserID(u.cfg.DB.WithContext(ctx), user.ID, query.Q)
	if err != nil {
		return nil, fmt.Errorf("failed to list words: %w", err)
	}

	out := make([]entity.WordResponse, 0, len(words))
	for _, w := range words {
		out = append(out, toWordResponse(w))
	}
	return out, nil
}

func (u *wordUsecase) Create(ctx context.Context, user auth.User, req entity.WordRequest) (*entity.WordResponse, error) {
	word := &internalEntity.Word{
		UserID:  user.ID,
		English: strings.TrimSpace(req.English),
		Arabic:  strings.TrimSpace(req.Arabic),
	}
	if err := u.cfg.Repository.Create(u.cfg.DB.WithContext(ctx), word); err != nil {
		return nil, fmt.Errorf("failed to save word: %w", err)
	}

	res := toWordResponse(*word)
	return &res, nil
}

func (u *wordUsecase) Update(ctx context.Context, user auth.User, id uint, req entity.WordRequest) (*entity.WordResponse, error) {
	db := u.cfg.DB.WithContext(ctx)
	word, err := u.cfg.Repository.FindByID(db, user.ID, id)
	if err != nil {
		return nil, err
	}

	word.English = strings.TrimSpace(req.English)
	word.Arabic = strings.TrimSpace(req.Arabic)
	if err := u.cfg.Repository.Update(db, word); err != nil {
		return nil, fmt.Errorf("failed to update word: %w", err)
	}

	res := toWordResponse(*word)
	return &res, nil
}

func (u *wordUsecase) Delete(ctx context.Context, user auth.User, id uint) error {
	return u.cfg.Repository.Delete(u.cfg.DB.WithContext(ctx), user.ID, id)
}

// Import stores every valid spreadsheet row in one transaction. Rows without a
// created_at column are stamped with the import time.
func (u *wordUsecase) Import(ctx context.Context, userID string, r io.Reader) (*entity.ImportWordsResponse, error) {
	parsed, err := importer.ReadWords(r, u.cfg.Location)
	if err != nil {
		return nil, err
	}

	res := &entity.ImportWordsResponse{Skipped: parsed.Skipped, Errors: parsed.Errors}
	now := u.cfg.Now()

	words := make([]internalEntity.Word, 0, len(parsed.Rows))
	for _, row := range parsed.Rows {
		req := entity.WordRequest{English: row.English, Arabic: row.Arabic}
		if err := u.cfg.Validator.Struct(&req); err != nil {
			res.Errors = append(res.Errors, fmt.Sprintf("Row %d: %v", row.Line, describeValidation(err)))
			continue
		}

		w := internalEntity.Word{UserID: userID, English: row.English, Arabic: row.Arabic, CreatedAt: now}
		if row.CreatedAt != nil {
			if row.CreatedAt.After(now) {
				u.cfg.Log.WithField("user_id", userID).WithField("row", row.Line).Warn("future dated word in import")
			}
			w.CreatedAt = *row.CreatedAt
		}
		words = append(words, w)
	}

	err = u.cfg.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return u.cfg.Repository.CreateBatch(tx, words)
	})
	if err != nil {
		return nil, fmt.Errorf("failed to import words: %w", err)
	}

	res.Imported = len(words)
	return res, nil
}

func describeValidation(err error) string {
	if fe, ok := err.(*validate.FieldsError); ok {
		parts := make([]string, 0, len(fe.Fields))
		for _, msg := range fe.Fields {
			parts = append(parts, msg)
		}
		sort.Strings(parts)
		return strings.Join(parts, "; ")
	}
	return err.Error()
}
