package vocab

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/heartmarshall/vocab-trainer-backend/internal/domain"
)

// Upload parses the free-text word list and stores it as a new active list.
// Text without a single valid pair is rejected before anything is written.
func (s *Service) Upload(ctx context.Context, input UploadInput) (domain.VocabList, error) {
	if _, err := domain.AuthorizeVocabularyManager(ctx); err != nil {
		return domain.VocabList{}, err
	}
	if err := input.Validate(); err != nil {
		return domain.VocabList{}, err
	}

	pairs := ParseVocabulary(input.Text)
	if len(pairs) == 0 {
		return domain.VocabList{}, domain.NewValidationError("text", "no valid word pairs found")
	}

	return s.Import(ctx, ImportInput{
		Title:       input.Title,
		Description: input.Description,
		Difficulty:  input.Difficulty,
		Pairs:       pairs,
	})
}

// Import stores a list header and its words in one transaction, so a failed
// word insert leaves no empty list behind.
func (s *Service) Import(ctx context.Context, input ImportInput) (domain.VocabList, error) {
	principal, err := domain.AuthorizeVocabularyManager(ctx)
	if err != nil {
		return domain.VocabList{}, err
	}
	if err := input.Validate(); err != nil {
		return domain.VocabList{}, err
	}

	var created domain.VocabList
	err = s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		list, err := s.lists.Create(txCtx, domain.VocabList{
			Title:       strings.TrimSpace(input.Title),
			Description: strings.TrimSpace(input.Description),
			Difficulty:  input.Difficulty,
			TotalWords:  len(input.Pairs),
			IsActive:    true,
			CreatedBy:   principal.UserID,
		})
		if err != nil {
			return fmt.Errorf("create list: %w", err)
		}

		if _, err := s.words.CreateBatch(txCtx, list.ID, input.Pairs, input.Difficulty.Score()); err != nil {
			return fmt.Errorf("create words: %w", err)
		}

		created = list
		return nil
	})
	if err != nil {
		return domain.VocabList{}, err
	}

	s.log.InfoContext(ctx, "vocab list created",
		slog.String("list_id", created.ID.String()),
		slog.String("created_by", principal.UserID.String()),
		slog.Int("total_words", created.TotalWords),
	)

	return created, nil
}
