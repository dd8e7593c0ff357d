package repository

import (
	"errors"
	"strings"
	"time"

	"github.com/evandrarf/linguaflow-be/internal/entity"
	"github.com/evandrarf/linguaflow-be/internal/pkg/apperror"
	"gorm.io/gorm"
)

type (
	WordRepository interface {
		Create(db *gorm.DB, word *entity.Word) error
		CreateBatch(db *gorm.DB, words []entity.Word) error
		Update(db *gorm.DB, word *entity.Word) error
		Delete(db *gorm.DB, userID string, id uint) error
		FindByID(db *gorm.DB, userID string, id uint) (*entity.Word, error)
		FindByUserID(db *gorm.DB, userID string, search string) ([]entity.Word, error)
		FindCreatedAtByUserID(db *gorm.DB, userID string) ([]time.Time, error)
		CountByUserID(db *gorm.DB, userID string) (int64, error)
	}

	wordRepository struct {
		db *gorm.DB
	}
)

func NewWordRepository(db *gorm.DB) WordRepository {
	return &wordRepository{db: db}
}

func (r *wordRepository) Create(db *gorm.DB, word *entity.Word) error {
	if db == nil {
		db = r.db
	}
	return db.Create(word).Error
}

func (r *wordRepository) CreateBatch(db *gorm.DB, words []entity.Word) error {
	if db == nil {
		db = r.db
	}
	if len(words) == 0 {
		return nil
	}
	return db.CreateInBatches(&words, 200).Error
}

func (r *wordRepository) Update(db *gorm.DB, word *entity.Word) error {
	if db == nil {
		db = r.db
	}
	return db.Model(word).
		Where("user_id = ?", word.UserID).
		Updates(map[string]interface{}{"english": word.English, "arabic": word.Arabic}).Error
}

func (r *wordRepository) Delete(db *gorm.DB, userID string, id uint) error {
	if db == nil {
		db = r.db
	}
	res := db.Where("user_id = ? AND id = ?", userID, id).Delete(&entity.Word{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return apperror.NotFound("word")
	}
	return nil
}

func (r *wordRepository) FindByID(db *gorm.DB, userID string, id uint) (*entity.Word, error) {
	if db == nil {
		db = r.db
	}
	var word entity.Word
	err := db.Where("user_id = ? AND id = ?", userID, id).First(&word).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperror.NotFound("word")
	}
	if err != nil {
		return nil, err
	}
	return &word, nil
}

// FindByUserID lists the user's words, newest first. search matches english
// case-insensitively or arabic as a substring.
func (r *wordRepository) FindByUserID(db *gorm.DB, userID string, search string) ([]entity.Word, error) {
	if db == nil {
		db = r.db
	}
	var words []entity.Word
	query := db.Where("user_id = ?", userID)
	if search = strings.TrimSpace(search); search != "" {
		like := "%" + search + "%"
		query = query.Where("LOWER(english) LIKE ? OR arabic LIKE ?", strings.ToLower(like), like)
	}
	err := query.Order("created_at DESC").Order("id DESC").Find(&words).Error
	return words, err
}

func (r *wordRepository) FindCreatedAtByUserID(db *gorm.DB, userID string) ([]time.Time, error) {
	if db == nil {
		db = r.db
	}
	var createdAt []time.Time
	err := db.Model(&entity.Word{}).Where("user_id = ?", userID).Pluck("created_at", &createdAt).Error
	return createdAt, err
}

func (r *wordRepository) CountByUserID(db *gorm.DB, userID string) (int64, error) {
	if db == nil {
		db = r.db
	}
	var count int64
	err := db.Model(&entity.Word{}).Where("user_id = ?", userID).Count(&count).Error
	return count, err
}
