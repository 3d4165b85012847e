package flashcard

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/vocab-trainer-backend/internal/domain"
)

const (
	// pauseEvery and pauseFor define the fixed courtesy delay between
	// generator calls.
	pauseEvery = 10
	pauseFor   = time.Second
)

type listRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (domain.VocabList, error)
}

type wordRepo interface {
	ListByList(ctx context.Context, listID uuid.UUID) ([]domain.VocabularyWord, error)
}

type cardRepo interface {
	CoveredWordIDs(ctx context.Context, listID uuid.UUID) ([]uuid.UUID, error)
	InsertBatch(ctx context.Context, cards []domain.NewFlashcard) (int, error)
}

// cardGenerator produces the cards for one word.
type cardGenerator interface {
	Generate(ctx context.Context, word domain.VocabularyWord) ([]domain.NewFlashcard, error)
}

// locker is implemented by both the Redis and the PostgreSQL generation lock.
type locker interface {
	TryAcquire(ctx context.Context, listID uuid.UUID, holder string, ttl time.Duration) (bool, error)
	Release(ctx context.Context, listID uuid.UUID, holder string) error
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// Service implements flashcard generation.
type Service struct {
	log       *slog.Logger
	lists     listRepo
	words     wordRepo
	cards     cardRepo
	generator cardGenerator
	lock      locker
	tx        txManager
	lockTTL   time.Duration // margin on top of the list's pause budget
	pause     func(ctx context.Context) error
}

// NewService creates a new flashcard service instance.
func NewService(
	logger *slog.Logger,
	lists listRepo,
	words wordRepo,
	cards cardRepo,
	generator cardGenerator,
	lock locker,
	tx txManager,
	lockTTL time.Duration,
) *Service {
	return &Service{
		log:       logger.With("service", "flashcard"),
		lists:     lists,
		words:     words,
		cards:     cards,
		generator: generator,
		lock:      lock,
		tx:        tx,
		lockTTL:   lockTTL,
		pause:     sleep,
	}
}

// pauseBudget is the total courtesy delay of a run over the given number of words.
// The lock must outlive it or a second run could start mid-generation.
func pauseBudget(words int) time.Duration {
	return time.Duration(words/pauseEvery) * pauseFor
}

func sleep(ctx context.Context) error {
	t := time.NewTimer(pauseFor)
	defer t.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}
