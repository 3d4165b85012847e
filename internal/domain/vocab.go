package domain

import (
	"time"

	"github.com/google/uuid"
)

// VocabList is an administrator-authored collection of word/definition pairs.
type VocabList struct {
	ID          uuid.UUID
	Title       string
	Description string
	Difficulty  Difficulty
	TotalWords  int
	IsActive    bool
	CreatedBy   uuid.UUID
	CreatedAt   time.Time
}

// EstimatedMinutes is the study time shown on the dashboard: one minute per
// ten words, rounded up.
func (l VocabList) EstimatedMinutes() int {
	if l.TotalWords <= 0 {
		return 0
	}
	return (l.TotalWords + 9) / 10
}

// VocabularyWord is a single word/definition pair belonging to one list.
type VocabularyWord struct {
	ID              uuid.UUID
	VocabListID     uuid.UUID
	Word            string
	Definition      string
	DifficultyScore int
	Position        int // zero-based line of the upload it came from
	CreatedAt       time.Time
}

// WordPair is a parsed (word, definition) tuple that has not been stored yet.
type WordPair struct {
	Word       string
	Definition string
}
