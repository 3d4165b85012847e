// Package token implements the revoked access token repository using PostgreSQL.
package token

import (
	"context"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"

	postgres "github.com/heartmarshall/vocab-trainer-backend/internal/adapter/postgres"
	"github.com/heartmarshall/vocab-trainer-backend/internal/domain"
)

const table = "revoked_tokens"

// Repo provides revoked-token persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new token repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

// Revoke records a token hash as revoked. Revoking twice is not an error.
func (r *Repo) Revoke(ctx context.Context, t domain.RevokedToken) error {
	sql, args, err := postgres.Builder().
		Insert(table).
		Columns("token_hash", "user_id", "expires_at", "revoked_at").
		Values(t.TokenHash, t.UserID, t.ExpiresAt, t.RevokedAt).
		Suffix("ON CONFLICT (token_hash) DO NOTHING").
		ToSql()
	if err != nil {
		return fmt.Errorf("build insert revoked token: %w", err)
	}

	if _, err := postgres.QuerierFromCtx(ctx, r.db).Exec(ctx, sql, args...); err != nil {
		return postgres.MapError(err, "revoked_token", t.UserID)
	}
	return nil
}

// IsRevoked reports whether the token hash has been revoked.
func (r *Repo) IsRevoked(ctx context.Context, tokenHash string) (bool, error) {
	sql, args, err := postgres.Builder().
		Select("1").
		Prefix("SELECT EXISTS (").
		From(table).
		Where(squirrel.Eq{"token_hash": tokenHash}).
		Suffix(")").
		ToSql()
	if err != nil {
		return false, fmt.Errorf("build select revoked token: %w", err)
	}

	var revoked bool
	if err := postgres.QuerierFromCtx(ctx, r.db).QueryRow(ctx, sql, args...).Scan(&revoked); err != nil {
		return false, postgres.MapError(err, "revoked_token", uuid.Nil)
	}
	return revoked, nil
}

// DeleteExpired removes revocations whose tokens expired before now and
// returns the number of deleted rows.
func (r *Repo) DeleteExpired(ctx context.Context, now time.Time) (int64, error) {
	sql, args, err := postgres.Builder().
		Delete(table).
		Where(squirrel.Lt{"expires_at": now}).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("build delete expired tokens: %w", err)
	}

	tag, err := postgres.QuerierFromCtx(ctx, r.db).Exec(ctx, sql, args...)
	if err != nil {
		return 0, postgres.MapError(err, "revoked_token", uuid.Nil)
	}
	return tag.RowsAffected(), nil
}
