package study

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/heartmarshall/vocab-trainer-backend/internal/domain"
)

// Deck is everything a study session needs for one list.
type Deck struct {
	List     domain.VocabList
	Cards    []domain.StudyCard
	Progress map[uuid.UUID]domain.UserProgress // keyed by word id
}

// GetDeck loads an active list with its cards in creation order and the
// caller's progress for its words. Inactive lists are reported as not found.
func (s *Service) GetDeck(ctx context.Context, listID uuid.UUID) (Deck, error) {
	principal, ok := domain.PrincipalFromCtx(ctx)
	if !ok {
		return Deck{}, domain.ErrUnauthorized
	}
	if listID == uuid.Nil {
		return Deck{}, domain.NewValidationError("listId", "required")
	}

	list, err := s.lists.GetActiveByID(ctx, listID)
	if err != nil {
		return Deck{}, fmt.Errorf("get vocab list: %w", err)
	}

	cards, err := s.cards.ListStudyCards(ctx, listID)
	if err != nil {
		return Deck{}, fmt.Errorf("list study cards: %w", err)
	}

	rows, err := s.progress.ListByUserAndList(ctx, principal.UserID, listID)
	if err != nil {
		return Deck{}, fmt.Errorf("list progress: %w", err)
	}

	progress := make(map[uuid.UUID]domain.UserProgress, len(rows))
	for _, p := range rows {
		progress[p.WordID] = p
	}

	return Deck{List: list, Cards: cards, Progress: progress}, nil
}
