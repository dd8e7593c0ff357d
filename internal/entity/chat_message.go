package entity

import (
	"time"

	"gorm.io/gorm"
)

// ChatMessage - One tutor conversation turn, canonical schema for every source
type ChatMessage struct {
	ID        uint      `gorm:"primarykey" json:"id"`
	UserID    string    `gorm:"size:100;not null;index" json:"user_id"`
	SessionID string    `gorm:"size:100;not null;index" json:"session_id"`
	Role      string    `gorm:"size:20;not null" json:"role"` // user, assistant
	Content   string    `gorm:"type:text;not null" json:"content"`
	CreatedAt time.Time `gorm:"index" json:"created_at"`
}

func (ChatMessage) TableName() string {
	return "chat_messages"
}

func (m *ChatMessage) BeforeCreate(*gorm.DB) error {
	m.CreatedAt = m.CreatedAt.UTC()
	return nil
}
