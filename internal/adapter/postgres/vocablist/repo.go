// Package vocablist implements the VocabList repository using PostgreSQL.
package vocablist

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/google/uuid"

	postgres "github.com/heartmarshall/vocab-trainer-backend/internal/adapter/postgres"
	"github.com/heartmarshall/vocab-trainer-backend/internal/domain"
)

const table = "vocab_lists"

var columns = []string{
	"id", "title", "description", "difficulty", "total_words", "is_active", "created_by", "created_at",
}

type row struct {
	ID          uuid.UUID `db:"id"`
	Title       string    `db:"title"`
	Description string    `db:"description"`
	Difficulty  string    `db:"difficulty"`
	TotalWords  int       `db:"total_words"`
	IsActive    bool      `db:"is_active"`
	CreatedBy   uuid.UUID `db:"created_by"`
	CreatedAt   time.Time `db:"created_at"`
}

func (r row) toDomain() domain.VocabList {
	return domain.VocabList{
		ID:          r.ID,
		Title:       r.Title,
		Description: r.Description,
		Difficulty:  domain.Difficulty(r.Difficulty),
		TotalWords:  r.TotalWords,
		IsActive:    r.IsActive,
		CreatedBy:   r.CreatedBy,
		CreatedAt:   r.CreatedAt,
	}
}

// Repo provides vocabulary list persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new vocab list repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

// Create inserts the list header and returns the stored row.
// The id is generated by the database.
func (r *Repo) Create(ctx context.Context, l domain.VocabList) (domain.VocabList, error) {
	insert := postgres.Builder().
		Insert(table).
		Columns("title", "description", "difficulty", "total_words", "is_active", "created_by").
		Values(l.Title, l.Description, string(l.Difficulty), l.TotalWords, l.IsActive, l.CreatedBy).
		Suffix("RETURNING " + strings.Join(columns, ", "))

	var out row
	if err := r.get(ctx, &out, insert); err != nil {
		return domain.VocabList{}, postgres.MapError(err, "vocab_list", uuid.Nil)
	}
	return out.toDomain(), nil
}

// GetByID returns a list regardless of its active flag.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (domain.VocabList, error) {
	var out row
	if err := r.get(ctx, &out, r.selectBuilder().Where(squirrel.Eq{"id": id})); err != nil {
		return domain.VocabList{}, postgres.MapError(err, "vocab_list", id)
	}
	return out.toDomain(), nil
}

// GetActiveByID returns an active list or domain.ErrNotFound.
func (r *Repo) GetActiveByID(ctx context.Context, id uuid.UUID) (domain.VocabList, error) {
	var out row
	query := r.selectBuilder().Where(squirrel.Eq{"id": id, "is_active": true})
	if err := r.get(ctx, &out, query); err != nil {
		return domain.VocabList{}, postgres.MapError(err, "vocab_list", id)
	}
	return out.toDomain(), nil
}

// ListAll returns every list, newest first.
func (r *Repo) ListAll(ctx context.Context) ([]domain.VocabList, error) {
	return r.list(ctx, r.selectBuilder().OrderBy("created_at DESC", "id"))
}

// ListActive returns active lists, newest first.
func (r *Repo) ListActive(ctx context.Context) ([]domain.VocabList, error) {
	return r.list(ctx, r.selectBuilder().
		Where(squirrel.Eq{"is_active": true}).
		OrderBy("created_at DESC", "id"))
}

// ListOldest returns up to limit lists in creation order.
func (r *Repo) ListOldest(ctx context.Context, limit uint64) ([]domain.VocabList, error) {
	return r.list(ctx, r.selectBuilder().OrderBy("created_at ASC", "id").Limit(limit))
}

// SetActive toggles the is_active flag and returns the updated row.
func (r *Repo) SetActive(ctx context.Context, id uuid.UUID, active bool) (domain.VocabList, error) {
	update := postgres.Builder().
		Update(table).
		Set("is_active", active).
		Where(squirrel.Eq{"id": id}).
		Suffix("RETURNING " + strings.Join(columns, ", "))

	var out row
	if err := r.get(ctx, &out, update); err != nil {
		return domain.VocabList{}, postgres.MapError(err, "vocab_list", id)
	}
	return out.toDomain(), nil
}

func (r *Repo) selectBuilder() squirrel.SelectBuilder {
	return postgres.Builder().Select(columns...).From(table)
}

func (r *Repo) get(ctx context.Context, dst *row, q squirrel.Sqlizer) error {
	sql, args, err := q.ToSql()
	if err != nil {
		return fmt.Errorf("build query: %w", err)
	}
	return pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), dst, sql, args...)
}

func (r *Repo) list(ctx context.Context, q squirrel.Sqlizer) ([]domain.VocabList, error) {
	sql, args, err := q.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}

	var rows []row
	if err := pgxscan.Select(ctx, postgres.QuerierFromCtx(ctx, r.db), &rows, sql, args...); err != nil {
		return nil, postgres.MapError(err, "vocab_list", uuid.Nil)
	}

	lists := make([]domain.VocabList, 0, len(rows))
	for _, rw := range rows {
		lists = append(lists, rw.toDomain())
	}
	return lists, nil
}
