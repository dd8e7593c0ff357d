package database

import (
	"fmt"

	"github.com/evandrarf/linguaflow-be/internal/entity"
	"gorm.io/gorm"
)

// DemoVocabulary - Starter words for a fresh demo account
var DemoVocabulary = []struct {
	English string
	Arabic  string
}{
	{English: "book", Arabic: "كتاب"},
	{English: "pen", Arabic: "قلم"},
	{English: "house", Arabic: "بيت"},
	{English: "door", Arabic: "باب"},
	{English: "water", Arabic: "ماء"},
	{English: "sun", Arabic: "شمس"},
	{English: "moon", Arabic: "قمر"},
	{English: "school", Arabic: "مدرسة"},
	{English: "teacher", Arabic: "معلم"},
	{English: "student", Arabic: "طالب"},
	{English: "car", Arabic: "سيارة"},
	{English: "city", Arabic: "مدينة"},
	{English: "friend", Arabic: "صديق"},
	{English: "food", Arabic: "طعام"},
	{English: "tree", Arabic: "شجرة"},
}

// SeedDemoVocabulary - Insert DemoVocabulary for userID when the user has no words
func SeedDemoVocabulary(db *gorm.DB, userID string) (int, error) {
	var count int64
	if err := db.Model(&entity.Word{}).Where("user_id = ?", userID).Count(&count).Error; err != nil {
		return 0, fmt.Errorf("count words for %s: %w", userID, err)
	}
	if count > 0 {
		return 0, nil
	}

	words := make([]entity.Word, 0, len(DemoVocabulary))
	for _, w := range DemoVocabulary {
		words = append(words, entity.Word{UserID: userID, English: w.English, Arabic: w.Arabic})
	}

	if err := db.Create(&words).Error; err != nil {
		return 0, fmt.Errorf("failed to seed demo vocabulary: %w", err)
	}

	return len(words), nil
}
