package repository

import (
	"errors"
	"time"

	"github.com/evandrarf/linguaflow-be/internal/entity"
	"github.com/evandrarf/linguaflow-be/internal/pkg/apperror"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type (
	RevisionRepository interface {
		Create(db *gorm.DB, revision *entity.Revision) error
		FindBySessionID(db *gorm.DB, userID, sessionID string, forUpdate bool) (*entity.Revision, error)
		FindByUserID(db *gorm.DB, userID string, limit int) ([]entity.Revision, error)
		CountStartedSince(db *gorm.DB, userID string, since time.Time) (int64, error)
		UpdateProgress(db *gorm.DB, revision *entity.Revision) error
		MarkPresented(db *gorm.DB, revisionID uint, position int, presentedAt time.Time) error
		CreateAnswer(db *gorm.DB, answer *entity.RevisionAnswer) error
	}

	revisionRepository struct {
		db *gorm.DB
	}
)

func NewRevisionRepository(db *gorm.DB) RevisionRepository {
	return &revisionRepository{db: db}
}

func (r *revisionRepository) Create(db *gorm.DB, revision *entity.Revision) error {
	if db == nil {
		db = r.db
	}
	return db.Create(revision).Error
}

// FindBySessionID loads the revision with its questions and answers. forUpdate
// takes a row lock where the database supports one.
func (r *revisionRepository) FindBySessionID(db *gorm.DB, userID, sessionID string, forUpdate bool) (*entity.Revision, error) {
	if db == nil {
		db = r.db
	}
	query := db
	if forUpdate && db.Dialector.Name() == "postgres" {
		query = query.Clauses(clause.Locking{Strength: "UPDATE"})
	}

	var revision entity.Revision
	err := query.
		Preload("Questions", func(db *gorm.DB) *gorm.DB { return db.Order("position ASC") }).
		Preload("Answers", func(db *gorm.DB) *gorm.DB { return db.Order("position ASC") }).
		Where("user_id = ? AND session_id = ?", userID, sessionID).
		First(&revision).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperror.NotFound("revision session")
	}
	if err != nil {
		return nil, err
	}
	return &revision, nil
}

func (r *revisionRepository) FindByUserID(db *gorm.DB, userID string, limit int) ([]entity.Revision, error) {
	if db == nil {
		db = r.db
	}
	var revisions []entity.Revision
	query := db.Where("user_id = ?", userID).Order("started_at DESC")
	if limit > 0 {
		query = query.Limit(limit)
	}
	err := query.Find(&revisions).Error
	return revisions, err
}

func (r *revisionRepository) CountStartedSince(db *gorm.DB, userID string, since time.Time) (int64, error) {
	if db == nil {
		db = r.db
	}
	var count int64
	err := db.Model(&entity.Revision{}).
		Where("user_id = ? AND started_at >= ?", userID, since.UTC()).
		Count(&count).Error
	return count, err
}

// UpdateProgress writes the counters and status of the revision row only.
func (r *revisionRepository) UpdateProgress(db *gorm.DB, revision *entity.Revision) error {
	if db == nil {
		db = r.db
	}
	var completedAt *time.Time
	if revision.CompletedAt != nil {
		utc := revision.CompletedAt.UTC()
		completedAt = &utc
	}
	return db.Model(&entity.Revision{}).
		Where("id = ?", revision.ID).
		Updates(map[string]interface{}{
			"total_questions":  revision.TotalQuestions,
			"current_index":    revision.CurrentIndex,
			"correct_answers":  revision.CorrectAnswers,
			"score":            revision.Score,
			"accuracy":         revision.Accuracy,
			"duration_seconds": revision.DurationSeconds,
			"status":           revision.Status,
			"completed_at":     completedAt,
		}).Error
}

func (r *revisionRepository) MarkPresented(db *gorm.DB, revisionID uint, position int, presentedAt time.Time) error {
	if db == nil {
		db = r.db
	}
	return db.Model(&entity.RevisionQuestion{}).
		Where("revision_id = ? AND position = ? AND presented_at IS NULL", revisionID, position).
		Update("presented_at", presentedAt.UTC()).Error
}

// CreateAnswer fails with ErrDuplicateAnswer when the question already has one.
func (r *revisionRepository) CreateAnswer(db *gorm.DB, answer *entity.RevisionAnswer) error {
	if db == nil {
		db = r.db
	}
	res := db.Clauses(clause.OnConflict{DoNothing: true}).Create(answer)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrDuplicateAnswer
	}
	return nil
}

var ErrDuplicateAnswer = errors.New("question already answered")
