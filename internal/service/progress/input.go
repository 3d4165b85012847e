package progress

import (
	"errors"

	"github.com/google/uuid"

	"github.com/heartmarshall/vocab-trainer-backend/internal/domain"
)

// AnswerInput is one answered card; the server computes the new counters.
type AnswerInput struct {
	UserID      uuid.UUID
	VocabListID uuid.UUID
	WordID      uuid.UUID
	Correct     bool
}

// Validate validates the answer input.
func (i AnswerInput) Validate() error {
	errs := validateKeys(i.UserID, i.VocabListID, i.WordID)
	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

// SnapshotInput carries counters computed by the client.
type SnapshotInput struct {
	UserID       uuid.UUID
	VocabListID  uuid.UUID
	WordID       uuid.UUID
	MasteryLevel int
	ReviewCount  int
	CorrectCount int
}

// Validate validates the snapshot input.
func (i SnapshotInput) Validate() error {
	errs := validateKeys(i.UserID, i.VocabListID, i.WordID)

	counters := domain.UserProgress{
		MasteryLevel: i.MasteryLevel,
		ReviewCount:  i.ReviewCount,
		CorrectCount: i.CorrectCount,
	}
	var ve *domain.ValidationError
	if err := counters.Validate(); errors.As(err, &ve) {
		errs = append(errs, ve.Errors...)
	}

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

func validateKeys(userID, listID, wordID uuid.UUID) []domain.FieldError {
	var errs []domain.FieldError
	if userID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "userId", Message: "required"})
	}
	if listID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "vocabListId", Message: "required"})
	}
	if wordID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "wordId", Message: "required"})
	}
	return errs
}
