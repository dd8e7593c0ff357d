package repository

import (
	"time"

	"github.com/evandrarf/linguaflow-be/internal/entity"
	"gorm.io/gorm"
)

type (
	ChatRepository interface {
		Create(db *gorm.DB, message *entity.ChatMessage) error
		CreateBatch(db *gorm.DB, messages []entity.ChatMessage) error
		FindRecentBySessionID(db *gorm.DB, userID, sessionID string, limit int) ([]entity.ChatMessage, error)
		FindBySessionID(db *gorm.DB, userID, sessionID string) ([]entity.ChatMessage, error)
		FindByUserID(db *gorm.DB, userID string) ([]entity.ChatMessage, error)
		FindRolesByUserID(db *gorm.DB, userID string, since time.Time) ([]string, error)
		DeleteByUserID(db *gorm.DB, userID string) (int64, error)
	}

	chatRepository struct {
		db *gorm.DB
	}
)

func NewChatRepository(db *gorm.DB) ChatRepository {
	return &chatRepository{db: db}
}

func (r *chatRepository) Create(db *gorm.DB, message *entity.ChatMessage) error {
	if db == nil {
		db = r.db
	}
	return db.Create(message).Error
}

func (r *chatRepository) CreateBatch(db *gorm.DB, messages []entity.ChatMessage) error {
	if db == nil {
		db = r.db
	}
	if len(messages) == 0 {
		return nil
	}
	return db.CreateInBatches(&messages, 200).Error
}

// FindRecentBySessionID returns the last limit messages in chronological order.
func (r *chatRepository) FindRecentBySessionID(db *gorm.DB, userID, sessionID string, limit int) ([]entity.ChatMessage, error) {
	if db == nil {
		db = r.db
	}
	var messages []entity.ChatMessage
	query := db.Where("user_id = ? AND session_id = ?", userID, sessionID).Order("created_at DESC").Order("id DESC")
	if limit > 0 {
		query = query.Limit(limit)
	}
	if err := query.Find(&messages).Error; err != nil {
		return nil, err
	}
	for i, j := 0, len(messages)-1; i < j; i, j = i+1, j-1 {
		messages[i], messages[j] = messages[j], messages[i]
	}
	return messages, nil
}

func (r *chatRepository) FindBySessionID(db *gorm.DB, userID, sessionID string) ([]entity.ChatMessage, error) {
	if db == nil {
		db = r.db
	}
	var messages []entity.ChatMessage
	err := db.Where("user_id = ? AND session_id = ?", userID, sessionID).
		Order("created_at ASC").Order("id ASC").
		Find(&messages).Error
	return messages, err
}

func (r *chatRepository) FindByUserID(db *gorm.DB, userID string) ([]entity.ChatMessage, error) {
	if db == nil {
		db = r.db
	}
	var messages []entity.ChatMessage
	err := db.Where("user_id = ?", userID).Order("created_at ASC").Order("id ASC").Find(&messages).Error
	return messages, err
}

// FindRolesByUserID plucks message authors, optionally only since a point in time.
func (r *chatRepository) FindRolesByUserID(db *gorm.DB, userID string, since time.Time) ([]string, error) {
	if db == nil {
		db = r.db
	}
	var roles []string
	query := db.Model(&entity.ChatMessage{}).Where("user_id = ?", userID)
	if !since.IsZero() {
		query = query.Where("created_at >= ?", since.UTC())
	}
	err := query.Pluck("role", &roles).Error
	return roles, err
}

func (r *chatRepository) DeleteByUserID(db *gorm.DB, userID string) (int64, error) {
	if db == nil {
		db = r.db
	}
	res := db.Where("user_id = ?", userID).Delete(&entity.ChatMessage{})
	return res.RowsAffected, res.Error
}
