// Package progress implements the UserProgress repository using PostgreSQL.
package progress

import (
	"context"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/google/uuid"

	postgres "github.com/heartmarshall/vocab-trainer-backend/internal/adapter/postgres"
	"github.com/heartmarshall/vocab-trainer-backend/internal/domain"
)

const table = "user_progress"

var columns = []string{
	"user_id", "vocab_list_id", "word_id", "mastery_level", "review_count", "correct_count",
	"last_reviewed_at", "next_review_at", "updated_at",
}

type row struct {
	UserID         uuid.UUID `db:"user_id"`
	VocabListID    uuid.UUID `db:"vocab_list_id"`
	WordID         uuid.UUID `db:"word_id"`
	MasteryLevel   int       `db:"mastery_level"`
	ReviewCount    int       `db:"review_count"`
	CorrectCount   int       `db:"correct_count"`
	LastReviewedAt time.Time `db:"last_reviewed_at"`
	NextReviewAt   time.Time `db:"next_review_at"`
	UpdatedAt      time.Time `db:"updated_at"`
}

func (r row) toDomain() domain.UserProgress {
	return domain.UserProgress{
		UserID:         r.UserID,
		VocabListID:    r.VocabListID,
		WordID:         r.WordID,
		MasteryLevel:   r.MasteryLevel,
		ReviewCount:    r.ReviewCount,
		CorrectCount:   r.CorrectCount,
		LastReviewedAt: r.LastReviewedAt,
		NextReviewAt:   r.NextReviewAt,
		UpdatedAt:      r.UpdatedAt,
	}
}

// Repo provides user progress persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new progress repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

// Get returns the progress row for (userID, wordID) or domain.ErrNotFound.
func (r *Repo) Get(ctx context.Context, userID, wordID uuid.UUID) (domain.UserProgress, error) {
	sql, args, err := postgres.Builder().
		Select(columns...).
		From(table).
		Where(squirrel.Eq{"user_id": userID, "word_id": wordID}).
		ToSql()
	if err != nil {
		return domain.UserProgress{}, fmt.Errorf("build select progress: %w", err)
	}

	var out row
	if err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &out, sql, args...); err != nil {
		return domain.UserProgress{}, postgres.MapError(err, "user_progress", wordID)
	}
	return out.toDomain(), nil
}

// Upsert writes p keyed on (user_id, word_id). Concurrent writers for the same
// key are last-writer-wins.
func (r *Repo) Upsert(ctx context.Context, p domain.UserProgress) error {
	sql, args, err := postgres.Builder().
		Insert(table).
		Columns(columns...).
		Values(
			p.UserID, p.VocabListID, p.WordID, p.MasteryLevel, p.ReviewCount, p.CorrectCount,
			p.LastReviewedAt, p.NextReviewAt, p.UpdatedAt,
		).
		Suffix(`ON CONFLICT (user_id, word_id) DO UPDATE SET
			vocab_list_id    = EXCLUDED.vocab_list_id,
			mastery_level    = EXCLUDED.mastery_level,
			review_count     = EXCLUDED.review_count,
			correct_count    = EXCLUDED.correct_count,
			last_reviewed_at = EXCLUDED.last_reviewed_at,
			next_review_at   = EXCLUDED.next_review_at,
			updated_at       = EXCLUDED.updated_at`).
		ToSql()
	if err != nil {
		return fmt.Errorf("build upsert progress: %w", err)
	}

	if _, err := postgres.QuerierFromCtx(ctx, r.db).Exec(ctx, sql, args...); err != nil {
		return postgres.MapError(err, "user_progress", p.WordID)
	}
	return nil
}

// ListByUser returns every progress row of a user.
func (r *Repo) ListByUser(ctx context.Context, userID uuid.UUID) ([]domain.UserProgress, error) {
	return r.list(ctx, squirrel.Eq{"user_id": userID})
}

// ListByUserAndList returns a user's progress rows restricted to one list.
func (r *Repo) ListByUserAndList(ctx context.Context, userID, listID uuid.UUID) ([]domain.UserProgress, error) {
	return r.list(ctx, squirrel.Eq{"user_id": userID, "vocab_list_id": listID})
}

func (r *Repo) list(ctx context.Context, where squirrel.Eq) ([]domain.UserProgress, error) {
	sql, args, err := postgres.Builder().
		Select(columns...).
		From(table).
		Where(where).
		OrderBy("updated_at DESC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build select progress: %w", err)
	}

	var rows []row
	if err := pgxscan.Select(ctx, postgres.QuerierFromCtx(ctx, r.db), &rows, sql, args...); err != nil {
		return nil, postgres.MapError(err, "user_progress", uuid.Nil)
	}

	out := make([]domain.UserProgress, 0, len(rows))
	for _, rw := range rows {
		out = append(out, rw.toDomain())
	}
	return out, nil
}
