package mapper

import (
	"github.com/evandrarf/linguaflow-be/internal/chat"
	"github.com/evandrarf/linguaflow-be/internal/entity"
	"github.com/evandrarf/linguaflow-be/internal/quiz"
)

func ToQuizWords(words []entity.Word) []quiz.Word {
	out := make([]quiz.Word, 0, len(words))
	for _, w := range words {
		out = append(out, quiz.Word{ID: w.ID, English: w.English, Arabic: w.Arabic})
	}
	return out
}

func ToVocabularyPairs(words []entity.Word) []chat.VocabularyPair {
	out := make([]chat.VocabularyPair, 0, len(words))
	for _, w := range words {
		out = append(out, chat.VocabularyPair{English: w.English, Arabic: w.Arabic})
	}
	return out
}

func ToChatMessages(rows []entity.ChatMessage) []chat.Message {
	out := make([]chat.Message, 0, len(rows))
	for _, r := range rows {
		out = append(out, chat.Message{Role: chat.Role(r.Role), Content: r.Content, CreatedAt: r.CreatedAt})
	}
	return out
}
