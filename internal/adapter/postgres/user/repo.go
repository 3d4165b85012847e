// Package user implements the User repository using PostgreSQL.
package user

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

const table = "users"

var columns = []string{"id", "email", "role", "created_at", "updated_at"}

type row struct {
	ID        uuid.UUID `db:"id"`
	Email     string    `db:"email"`
	Role      string    `db:"role"`
	CreatedAt time.Time `db:"created_at"`
	UpdatedAt time.Time `db:"updated_at"`
}

func (r row) toDomain() domain.User {
	return domain.User{
		ID:        r.ID,
		Email:     r.Email,
		Role:      domain.UserRole(r.Role),
		CreatedAt: r.CreatedAt,
		UpdatedAt: r.UpdatedAt,
	}
}

// Repo provides user persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new user repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

// GetByID returns a user by primary key.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (domain.User, error) {
	return r.getWhere(ctx, squirrel.Eq{"id": id}, id)
}

// GetByEmail returns a user by e-mail, compared case-insensitively.
func (r *Repo) GetByEmail(ctx context.Context, email string) (domain.User, error) {
	return r.getWhere(ctx, squirrel.Expr("lower(email) = lower(?)", email), uuid.Nil)
}

// CreateIfMissing inserts a user with the default role unless the id already
// exists, then returns the stored row. A new id whose e-mail already belongs
// to another user yields domain.ErrAlreadyExists.
func (r *Repo) CreateIfMissing(ctx context.Context, id uuid.UUID, email string) (domain.User, error) {
	sql, args, err := postgres.Builder().
		Insert(table).
		Columns("id", "email", "role").
		Values(id, email, string(domain.UserRoleUser)).
		Suffix("ON CONFLICT (id) DO NOTHING").
		ToSql()
	if err != nil {
		return domain.User{}, fmt.Errorf("build insert user: %w", err)
	}

	if _, err := postgres.QuerierFromCtx(ctx, r.db).Exec(ctx, sql, args...); err != nil {
		return domain.User{}, postgres.MapError(err, "user", id)
	}
	return r.GetByID(ctx, id)
}

// SetRoleByEmail updates the role of the user with the given e-mail and returns
// the number of affected rows.
func (r *Repo) SetRoleByEmail(ctx context.Context, email string, role domain.UserRole) (int64, error) {
	sql, args, err := postgres.Builder().
		Update(table).
		Set("role", string(role)).
		Set("updated_at", squirrel.Expr("now()")).
		Where(squirrel.Expr("lower(email) = lower(?)", email)).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("build update role: %w", err)
	}

	tag, err := postgres.QuerierFromCtx(ctx, r.db).Exec(ctx, sql, args...)
	if err != nil {
		return 0, postgres.MapError(err, "user", uuid.Nil)
	}
	return tag.RowsAffected(), nil
}

// List returns users ordered by creation time.
func (r *Repo) List(ctx context.Context, limit, offset uint64) ([]domain.User, error) {
	sql, args, err := postgres.Builder().
		Select(columns...).
		From(table).
		OrderBy("created_at", "id").
		Limit(limit).
		Offset(offset).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list users: %w", err)
	}

	var rows []row
	if err := pgxscan.Select(ctx, postgres.QuerierFromCtx(ctx, r.db), &rows, sql, args...); err != nil {
		return nil, postgres.MapError(err, "user", uuid.Nil)
	}

	users := make([]domain.User, len(rows))
	for i, rw := range rows {
		users[i] = rw.toDomain()
	}
	return users, nil
}

// Count returns the total number of users.
func (r *Repo) Count(ctx context.Context) (int, error) {
	sql, args, err := postgres.Builder().Select("count(*)").From(table).ToSql()
	if err != nil {
		return 0, fmt.Errorf("build count users: %w", err)
	}

	var n int
	if err := postgres.QuerierFromCtx(ctx, r.db).QueryRow(ctx, sql, args...).Scan(&n); err != nil {
		return 0, postgres.MapError(err, "user", uuid.Nil)
	}
	return n, nil
}

func (r *Repo) getWhere(ctx context.Context, where squirrel.Sqlizer, id uuid.UUID) (domain.User, error) {
	sql, args, err := postgres.Builder().Select(columns...).From(table).Where(where).ToSql()
	if err != nil {
		return domain.User{}, fmt.Errorf("build select user: %w", err)
	}

	var out row
	if err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &out, sql, args...); err != nil {
		return domain.User{}, postgres.MapError(err, "user", id)
	}
	return out.toDomain(), nil
}
