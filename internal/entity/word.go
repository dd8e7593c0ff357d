package entity

import (
	"time"

	"gorm.io/gorm"
)

// Word - One vocabulary entry owned by a user
type Word struct {
	ID        uint           `gorm:"primarykey" json:"id"`
	UserID    string         `gorm:"size:100;not null;index" json:"user_id"`
	English   string         `gorm:"size:255;not null" json:"english"`
	Arabic    string         `gorm:"size:255;not null" json:"arabic"`
	CreatedAt time.Time      `gorm:"index" json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"deleted_at,omitempty"`
}

func (Word) TableName() string {
	return "words"
}

func (w *Word) BeforeCreate(*gorm.DB) error {
	w.CreatedAt = w.CreatedAt.UTC()
	return nil
}
