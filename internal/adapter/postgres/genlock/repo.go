// Package genlock implements per-list generation locks as rows in PostgreSQL.
// It is the fallback used when no Redis instance is configured.
package genlock

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	postgres "github.com/heartmarshall/vocab-trainer-backend/internal/adapter/postgres"
)

const table = "generation_locks"

// Repo provides lock rows backed by PostgreSQL.
type Repo struct {
	db  postgres.Querier
	now func() time.Time
}

// New creates a new lock repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db, now: time.Now}
}

// TryAcquire takes the lock for listID on behalf of holder for ttl. An existing
// lock is taken over only once it has expired. Returns false if another live
// holder owns it.
func (r *Repo) TryAcquire(ctx context.Context, listID uuid.UUID, holder string, ttl time.Duration) (bool, error) {
	now := r.now()

	sql, args, err := postgres.Builder().
		Insert(table).
		Columns("vocab_list_id", "holder", "expires_at").
		Values(listID, holder, now.Add(ttl)).
		Suffix(`ON CONFLICT (vocab_list_id) DO UPDATE
			SET holder = EXCLUDED.holder, expires_at = EXCLUDED.expires_at
			WHERE generation_locks.expires_at < ?
			RETURNING holder`, now).
		ToSql()
	if err != nil {
		return false, fmt.Errorf("build acquire lock: %w", err)
	}

	var got string
	err = postgres.QuerierFromCtx(ctx, r.db).QueryRow(ctx, sql, args...).Scan(&got)
	if errors.Is(err, pgx.ErrNoRows) {
		return false, nil
	}
	if err != nil {
		return false, postgres.MapError(err, "generation_lock", listID)
	}
	return got == holder, nil
}

// Release drops the lock if it is still owned by holder.
func (r *Repo) Release(ctx context.Context, listID uuid.UUID, holder string) error {
	sql, args, err := postgres.Builder().
		Delete(table).
		Where(squirrel.Eq{"vocab_list_id": listID, "holder": holder}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build release lock: %w", err)
	}

	if _, err := postgres.QuerierFromCtx(ctx, r.db).Exec(ctx, sql, args...); err != nil {
		return postgres.MapError(err, "generation_lock", listID)
	}
	return nil
}
