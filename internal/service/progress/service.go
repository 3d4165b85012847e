package progress

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/vocab-trainer-backend/internal/domain"
)

type progressRepo interface {
	Get(ctx context.Context, userID, wordID uuid.UUID) (domain.UserProgress, error)
	Upsert(ctx context.Context, p domain.UserProgress) error
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// Service implements per-word progress tracking.
type Service struct {
	log      *slog.Logger
	progress progressRepo
	tx       txManager
	now      func() time.Time
}

// NewService creates a new progress service instance.
func NewService(logger *slog.Logger, progress progressRepo, tx txManager) *Service {
	return &Service{
		log:      logger.With("service", "progress"),
		progress: progress,
		tx:       tx,
		now:      func() time.Time { return time.Now().UTC() },
	}
}

// NextMastery returns the mastery level after one answer.
func NextMastery(prior int, correct bool) int {
	return domain.NextMastery(prior, correct)
}

// authorizeOwner rejects the write unless the caller is the row's user.
func authorizeOwner(ctx context.Context, userID uuid.UUID) error {
	p, ok := domain.PrincipalFromCtx(ctx)
	if !ok || p.UserID != userID {
		return domain.ErrUnauthorized
	}
	return nil
}
