package database

import (
	"github.com/evandrarf/linguaflow-be/internal/entity"
	"gorm.io/gorm"
)

func Migrate(db *gorm.DB) error {
	err := db.AutoMigrate(
		&entity.Word{},
		&entity.ChatMessage{},
		&entity.Revision{},
		&entity.RevisionQuestion{},
		&entity.RevisionAnswer{},
		&entity.UserGoal{},
		&entity.UserPreference{},
	)
	return err
}
