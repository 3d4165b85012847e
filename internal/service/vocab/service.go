package vocab

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/vocab-trainer-backend/internal/domain"
)

// listRepo defines the vocab list repository interface needed by the service.
type listRepo interface {
	Create(ctx context.Context, l domain.VocabList) (domain.VocabList, error)
	ListAll(ctx context.Context) ([]domain.VocabList, error)
	ListActive(ctx context.Context) ([]domain.VocabList, error)
	ListOldest(ctx context.Context, limit uint64) ([]domain.VocabList, error)
	SetActive(ctx context.Context, id uuid.UUID, active bool) (domain.VocabList, error)
}

// wordRepo defines the word repository interface needed by the service.
type wordRepo interface {
	CreateBatch(ctx context.Context, listID uuid.UUID, pairs []domain.WordPair, score int) (int, error)
}

// cardRepo is used only by the debug snapshot.
type cardRepo interface {
	ListOldest(ctx context.Context, limit uint64) ([]domain.Flashcard, error)
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// Service implements vocabulary ingestion and list queries.
type Service struct {
	log   *slog.Logger
	lists listRepo
	words wordRepo
	cards cardRepo
	tx    txManager
}

// NewService creates a new vocab service instance.
func NewService(
	logger *slog.Logger,
	lists listRepo,
	words wordRepo,
	cards cardRepo,
	tx txManager,
) *Service {
	return &Service{
		log:   logger.With("service", "vocab"),
		lists: lists,
		words: words,
		cards: cards,
		tx:    tx,
	}
}
