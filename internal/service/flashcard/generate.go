package flashcard

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/vocab-trainer-backend/internal/domain"
)

// GenerateForList creates cards for every word of the list that has none yet.
// A failure for one word is logged and skipped; a failure to store the batch
// fails the whole call and stores nothing. Concurrent calls for the same list
// are rejected with domain.ErrConflict while the lock is held.
func (s *Service) GenerateForList(ctx context.Context, input GenerateInput) (GenerateResult, error) {
	principal, err := domain.AuthorizeVocabularyManager(ctx)
	if err != nil {
		return GenerateResult{}, err
	}
	if err := input.Validate(); err != nil {
		return GenerateResult{}, err
	}

	listID := input.VocabListID
	list, err := s.lists.GetByID(ctx, listID)
	if err != nil {
		return GenerateResult{}, fmt.Errorf("get vocab list: %w", err)
	}

	holder := uuid.NewString()
	acquired, err := s.lock.TryAcquire(ctx, listID, holder, s.lockTTL+pauseBudget(list.TotalWords))
	if err != nil {
		return GenerateResult{}, fmt.Errorf("acquire generation lock: %w", err)
	}
	if !acquired {
		return GenerateResult{}, fmt.Errorf("generation already running for list %s: %w", listID, domain.ErrConflict)
	}
	defer func() {
		if err := s.lock.Release(context.WithoutCancel(ctx), listID, holder); err != nil {
			s.log.WarnContext(ctx, "release generation lock",
				slog.String("list_id", listID.String()),
				slog.String("error", err.Error()),
			)
		}
	}()

	pending, err := s.uncoveredWords(ctx, listID)
	if err != nil {
		return GenerateResult{}, err
	}

	var (
		batch     []domain.NewFlashcard
		processed int
	)
	for _, w := range pending {
		cards, err := s.generator.Generate(ctx, w)
		if err != nil {
			s.log.WarnContext(ctx, "generate flashcards for word",
				slog.String("list_id", listID.String()),
				slog.String("word_id", w.ID.String()),
				slog.String("error", err.Error()),
			)
			continue
		}

		batch = append(batch, cards...)
		processed++

		if processed%pauseEvery == 0 {
			if err := s.pause(ctx); err != nil {
				return GenerateResult{}, fmt.Errorf("generation interrupted: %w", err)
			}
		}
	}

	created := 0
	if len(batch) > 0 {
		err = s.tx.RunInTx(ctx, func(txCtx context.Context) error {
			n, err := s.cards.InsertBatch(txCtx, batch)
			if err != nil {
				return err
			}
			created = n
			return nil
		})
		if err != nil {
			return GenerateResult{}, fmt.Errorf("save flashcards: %w", err)
		}
	}

	s.log.InfoContext(ctx, "flashcards generated",
		slog.String("list_id", listID.String()),
		slog.String("requested_by", principal.UserID.String()),
		slog.Int("words_processed", processed),
		slog.Int("cards_created", created),
	)

	return GenerateResult{WordsProcessed: processed, CardsCreated: created}, nil
}

func (s *Service) uncoveredWords(ctx context.Context, listID uuid.UUID) ([]domain.VocabularyWord, error) {
	words, err := s.words.ListByList(ctx, listID)
	if err != nil {
		return nil, fmt.Errorf("list words: %w", err)
	}

	coveredIDs, err := s.cards.CoveredWordIDs(ctx, listID)
	if err != nil {
		return nil, fmt.Errorf("list covered words: %w", err)
	}

	covered := make(map[uuid.UUID]struct{}, len(coveredIDs))
	for _, id := range coveredIDs {
		covered[id] = struct{}{}
	}

	pending := make([]domain.VocabularyWord, 0, len(words))
	for _, w := range words {
		if _, ok := covered[w.ID]; !ok {
			pending = append(pending, w)
		}
	}
	return pending, nil
}
