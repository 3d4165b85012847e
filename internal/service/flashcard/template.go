package flashcard

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/heartmarshall/vocab-trainer-backend/internal/domain"
)

// ErrEmptyWord is returned by TemplateGenerator for a word without text.
var ErrEmptyWord = errors.New("word is empty")

// TemplateGenerator derives a fixed set of three cards from a word without
// any external call. The same word always yields the same cards.
type TemplateGenerator struct{}

// Generate returns the definition, example and synonym cards for word.
func (TemplateGenerator) Generate(_ context.Context, word domain.VocabularyWord) ([]domain.NewFlashcard, error) {
	text := strings.TrimSpace(word.Word)
	if text == "" {
		return nil, fmt.Errorf("word %s: %w", word.ID, ErrEmptyWord)
	}

	card := func(front, back string, t domain.CardType) domain.NewFlashcard {
		return domain.NewFlashcard{
			VocabListID: word.VocabListID,
			WordID:      word.ID,
			FrontText:   front,
			BackText:    back,
			CardType:    t,
		}
	}

	return []domain.NewFlashcard{
		card(word.Word, word.Definition, domain.CardTypeDefinition),
		card(
			fmt.Sprintf(`Use "%s" in a sentence`, word.Word),
			fmt.Sprintf("Example: The %s is commonly used in everyday situations.", word.Word),
			domain.CardTypeExample,
		),
		card(
			fmt.Sprintf(`What's a synonym for "%s"?`, word.Word),
			"A word similar to "+word.Word,
			domain.CardTypeSynonym,
		),
	}, nil
}
