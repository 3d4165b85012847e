package vocab

import (
	"strings"

	"github.com/heartmarshall/vocab-trainer-backend/internal/domain"
)

const (
	maxTitleLength       = 255
	maxDescriptionLength = 2000
	maxWordLength        = 255
	maxDefinitionLength  = 4000
	maxImportPairs       = 10000
)

// UploadInput holds the fields of the admin upload form.
type UploadInput struct {
	Title       string
	Description string
	Difficulty  domain.Difficulty
	Text        string
}

// Validate validates the header fields. The word text is validated by parsing.
func (i UploadInput) Validate() error {
	errs := validateHeader(i.Title, i.Description, i.Difficulty)
	if strings.TrimSpace(i.Text) == "" {
		errs = append(errs, domain.FieldError{Field: "text", Message: "required"})
	}

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

// ImportInput creates a list from pairs that were parsed elsewhere,
// e.g. from a spreadsheet.
type ImportInput struct {
	Title       string
	Description string
	Difficulty  domain.Difficulty
	Pairs       []domain.WordPair
}

// Validate validates the import input.
func (i ImportInput) Validate() error {
	errs := validateHeader(i.Title, i.Description, i.Difficulty)

	switch {
	case len(i.Pairs) == 0:
		errs = append(errs, domain.FieldError{Field: "pairs", Message: "no valid word pairs found"})
	case len(i.Pairs) > maxImportPairs:
		errs = append(errs, domain.FieldError{Field: "pairs", Message: "too many words"})
	}

	for _, p := range i.Pairs {
		if strings.TrimSpace(p.Word) == "" || len(p.Word) > maxWordLength {
			errs = append(errs, domain.FieldError{Field: "pairs.word", Message: "must be 1-255 characters"})
			break
		}
		if len(p.Definition) > maxDefinitionLength {
			errs = append(errs, domain.FieldError{Field: "pairs.definition", Message: "too long"})
			break
		}
	}

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

func validateHeader(title, description string, difficulty domain.Difficulty) []domain.FieldError {
	var errs []domain.FieldError

	title = strings.TrimSpace(title)
	if title == "" {
		errs = append(errs, domain.FieldError{Field: "title", Message: "required"})
	} else if len(title) > maxTitleLength {
		errs = append(errs, domain.FieldError{Field: "title", Message: "too long"})
	}

	if len(description) > maxDescriptionLength {
		errs = append(errs, domain.FieldError{Field: "description", Message: "too long"})
	}

	if !difficulty.IsValid() {
		errs = append(errs, domain.FieldError{Field: "difficulty", Message: "must be beginner, intermediate or advanced"})
	}

	return errs
}
