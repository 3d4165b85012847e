package flashcard

import (
	"github.com/google/uuid"

	"github.com/heartmarshall/vocab-trainer-backend/internal/domain"
)

// GenerateInput identifies the list to generate cards for.
type GenerateInput struct {
	VocabListID uuid.UUID
}

// Validate validates the generate input.
func (i GenerateInput) Validate() error {
	if i.VocabListID == uuid.Nil {
		return domain.NewValidationError("vocabListId", "Vocabulary list ID is required")
	}
	return nil
}

// GenerateResult reports what a generation pass did.
type GenerateResult struct {
	WordsProcessed int
	CardsCreated   int
}
