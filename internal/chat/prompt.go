package chat

import (
	"fmt"
	"strings"
)

// VocabularyPair is one english/arabic entry shown to the tutor.
type VocabularyPair struct {
	English string
	Arabic  string
}

const tutorPromptTemplate = `You are a multilingual AI language teacher helping a student practice their vocabulary.

CRITICAL RULES:
1. Automatically detect the user's language.
2. ALWAYS respond in the SAME language as the user.
3. NEVER switch languages unless the user explicitly asks.
4. Use ONLY the words provided in the user's vocabulary list.
5. Do NOT introduce new vocabulary outside the list.
6. Keep explanations simple and adapted to the learner's level.
7. Be encouraging, friendly, and educational.

CONTEXT:
- Vocabulary count: %d
- User Vocabulary List (with translations):
%s

YOUR ROLE:
- Help the student practice and memorize THESE specific words
- Quiz them on meanings, usage, and translations
- Create simple and clear example sentences using ONLY their words
- Explain usage, context, and nuances in a beginner-friendly way
- Correct mistakes gently and clearly
- Keep responses concise and focused

IMPORTANT:
- Always reference and rely on the words from the vocabulary list
- If the user asks something that requires a word not in the list,
  explain the idea using simpler known words or ask a clarification question.`

// SystemPrompt seeds the tutor with the user's vocabulary.
func SystemPrompt(vocabulary []VocabularyPair) string {
	lines := make([]string, 0, len(vocabulary))
	for _, w := range vocabulary {
		lines = append(lines, w.English+": "+w.Arabic)
	}
	return fmt.Sprintf(tutorPromptTemplate, len(vocabulary), strings.Join(lines, "\n"))
}

// Greeting is the first assistant turn for a user without history.
func Greeting(vocabularySize int) string {
	if vocabularySize == 0 {
		return "Hello! I'm your AI vocabulary assistant. It looks like you haven't added any words yet. " +
			"Add some words to your collection first, and then I can help you practice and review them!"
	}
	return fmt.Sprintf("Hello! I'm your AI vocabulary assistant. I've loaded %d words from your collection. I can help you:\n"+
		"- Practice and review your vocabulary\n"+
		"- Quiz you on word meanings\n"+
		"- Create example sentences\n"+
		"- Explain word usage and context\n"+
		"- Test your knowledge with translations\n\n"+
		"How would you like to start learning today?", vocabularySize)
}
