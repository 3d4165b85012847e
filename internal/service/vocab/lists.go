package vocab

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/vocab-trainer-backend/internal/domain"
)

// debugSampleSize matches the first-five preview of the admin debug page.
const debugSampleSize = 5

// ListAll returns every list including inactive ones. Admin only.
func (s *Service) ListAll(ctx context.Context) ([]domain.VocabList, error) {
	if _, err := domain.AuthorizeVocabularyManager(ctx); err != nil {
		return nil, err
	}

	lists, err := s.lists.ListAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("list vocab lists: %w", err)
	}
	return lists, nil
}

// ListActive returns the lists learners can study.
func (s *Service) ListActive(ctx context.Context) ([]domain.VocabList, error) {
	if _, ok := domain.PrincipalFromCtx(ctx); !ok {
		return nil, domain.ErrUnauthorized
	}

	lists, err := s.lists.ListActive(ctx)
	if err != nil {
		return nil, fmt.Errorf("list active vocab lists: %w", err)
	}
	return lists, nil
}

// SetActive publishes or hides a list. Admin only.
func (s *Service) SetActive(ctx context.Context, listID uuid.UUID, active bool) (domain.VocabList, error) {
	principal, err := domain.AuthorizeVocabularyManager(ctx)
	if err != nil {
		return domain.VocabList{}, err
	}
	if listID == uuid.Nil {
		return domain.VocabList{}, domain.NewValidationError("vocabListId", "required")
	}

	list, err := s.lists.SetActive(ctx, listID, active)
	if err != nil {
		return domain.VocabList{}, fmt.Errorf("set list active: %w", err)
	}

	s.log.InfoContext(ctx, "vocab list visibility changed",
		slog.String("list_id", listID.String()),
		slog.Bool("active", active),
		slog.String("changed_by", principal.UserID.String()),
	)
	return list, nil
}

// DebugSnapshot is the raw view used to inspect generation output.
type DebugSnapshot struct {
	Lists []domain.VocabList
	Cards []domain.Flashcard
}

// DebugSnapshot returns the oldest lists and flashcards. Admin only.
func (s *Service) DebugSnapshot(ctx context.Context) (DebugSnapshot, error) {
	if _, err := domain.AuthorizeVocabularyManager(ctx); err != nil {
		return DebugSnapshot{}, err
	}

	lists, err := s.lists.ListOldest(ctx, debugSampleSize)
	if err != nil {
		return DebugSnapshot{}, fmt.Errorf("list oldest lists: %w", err)
	}
	cards, err := s.cards.ListOldest(ctx, debugSampleSize)
	if err != nil {
		return DebugSnapshot{}, fmt.Errorf("list oldest cards: %w", err)
	}

	return DebugSnapshot{Lists: lists, Cards: cards}, nil
}
