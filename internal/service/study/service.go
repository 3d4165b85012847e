package study

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/vocab-trainer-backend/internal/domain"
)

type listRepo interface {
	GetActiveByID(ctx context.Context, id uuid.UUID) (domain.VocabList, error)
	ListActive(ctx context.Context) ([]domain.VocabList, error)
}

type cardRepo interface {
	ListStudyCards(ctx context.Context, listID uuid.UUID) ([]domain.StudyCard, error)
}

type progressRepo interface {
	ListByUser(ctx context.Context, userID uuid.UUID) ([]domain.UserProgress, error)
	ListByUserAndList(ctx context.Context, userID, listID uuid.UUID) ([]domain.UserProgress, error)
}

// Service implements the read side of studying: decks and the dashboard.
type Service struct {
	log      *slog.Logger
	lists    listRepo
	cards    cardRepo
	progress progressRepo
}

// NewService creates a new study service instance.
func NewService(logger *slog.Logger, lists listRepo, cards cardRepo, progress progressRepo) *Service {
	return &Service{
		log:      logger.With("service", "study"),
		lists:    lists,
		cards:    cards,
		progress: progress,
	}
}
