package progress

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/heartmarshall/vocab-trainer-backend/internal/domain"
)

// RecordAnswer applies one answer to the caller's progress for a word and
// returns the stored row. A missing prior row counts as all zeros.
func (s *Service) RecordAnswer(ctx context.Context, input AnswerInput) (domain.UserProgress, error) {
	if err := authorizeOwner(ctx, input.UserID); err != nil {
		return domain.UserProgress{}, err
	}
	if err := input.Validate(); err != nil {
		return domain.UserProgress{}, err
	}

	var next domain.UserProgress
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		prior, err := s.progress.Get(txCtx, input.UserID, input.WordID)
		if err != nil && !errors.Is(err, domain.ErrNotFound) {
			return fmt.Errorf("get progress: %w", err)
		}
		if errors.Is(err, domain.ErrNotFound) {
			prior = domain.UserProgress{UserID: input.UserID, WordID: input.WordID}
		}
		prior.VocabListID = input.VocabListID

		next = prior.ApplyAnswer(input.Correct, s.now())
		if err := s.progress.Upsert(txCtx, next); err != nil {
			return fmt.Errorf("upsert progress: %w", err)
		}
		return nil
	})
	if err != nil {
		return domain.UserProgress{}, err
	}

	s.log.DebugContext(ctx, "answer recorded",
		slog.String("user_id", input.UserID.String()),
		slog.String("word_id", input.WordID.String()),
		slog.Bool("correct", input.Correct),
		slog.Int("mastery_level", next.MasteryLevel),
	)
	return next, nil
}

// SaveSnapshot stores client-computed counters for a word as they are,
// stamping the review times.
func (s *Service) SaveSnapshot(ctx context.Context, input SnapshotInput) (domain.UserProgress, error) {
	if err := authorizeOwner(ctx, input.UserID); err != nil {
		return domain.UserProgress{}, err
	}
	if err := input.Validate(); err != nil {
		return domain.UserProgress{}, err
	}

	now := s.now()
	p := domain.UserProgress{
		UserID:         input.UserID,
		VocabListID:    input.VocabListID,
		WordID:         input.WordID,
		MasteryLevel:   input.MasteryLevel,
		ReviewCount:    input.ReviewCount,
		CorrectCount:   input.CorrectCount,
		LastReviewedAt: now,
		NextReviewAt:   now.Add(domain.ReviewInterval),
		UpdatedAt:      now,
	}

	if err := s.progress.Upsert(ctx, p); err != nil {
		return domain.UserProgress{}, fmt.Errorf("upsert progress: %w", err)
	}
	return p, nil
}
