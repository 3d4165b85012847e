package domain

import (
	"time"

	"github.com/google/uuid"
)

// Flashcard is one prompt/answer pair derived from a vocabulary word.
// Cards are immutable after creation.
type Flashcard struct {
	ID          uuid.UUID
	VocabListID uuid.UUID
	WordID      uuid.UUID
	FrontText   string
	BackText    string
	CardType    CardType
	CreatedAt   time.Time
}

// NewFlashcard is a generated card that has not been stored yet.
type NewFlashcard struct {
	VocabListID uuid.UUID
	WordID      uuid.UUID
	FrontText   string
	BackText    string
	CardType    CardType
}

// StudyCard is a flashcard joined with the word it was generated from,
// in the shape a study session consumes.
type StudyCard struct {
	Flashcard
	Word       string
	Definition string
}
