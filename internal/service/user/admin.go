package user

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/heartmarshall/vocab-trainer-backend/internal/domain"
)

// SetRole changes the role of the user with the given e-mail (admin only).
// The user must have signed in at least once.
func (s *Service) SetRole(ctx context.Context, input SetRoleInput) (domain.User, error) {
	caller, err := domain.AuthorizeVocabularyManager(ctx)
	if err != nil {
		return domain.User{}, err
	}
	if err := input.Validate(); err != nil {
		return domain.User{}, err
	}

	// Prevent admin from demoting themselves.
	if strings.EqualFold(caller.Email, input.Email) && !input.Role.IsAdmin() {
		return domain.User{}, domain.NewValidationError("role", "cannot demote yourself")
	}

	n, err := s.users.SetRoleByEmail(ctx, input.Email, input.Role)
	if err != nil {
		return domain.User{}, fmt.Errorf("set role: %w", err)
	}
	if n == 0 {
		return domain.User{}, fmt.Errorf("user %s: %w", input.Email, domain.ErrNotFound)
	}

	user, err := s.users.GetByEmail(ctx, input.Email)
	if err != nil {
		return domain.User{}, fmt.Errorf("get user: %w", err)
	}

	s.log.InfoContext(ctx, "user role updated",
		slog.String("target_user_id", user.ID.String()),
		slog.String("new_role", input.Role.String()),
		slog.String("changed_by", caller.UserID.String()),
	)
	return user, nil
}

// ListUsers returns a page of users and the total count (admin only).
func (s *Service) ListUsers(ctx context.Context, input ListInput) ([]domain.User, int, error) {
	if _, err := domain.AuthorizeVocabularyManager(ctx); err != nil {
		return nil, 0, err
	}
	if err := input.Validate(); err != nil {
		return nil, 0, err
	}

	limit := input.Limit
	if limit == 0 {
		limit = defaultPageSize
	}

	users, err := s.users.List(ctx, uint64(limit), uint64(input.Offset))
	if err != nil {
		return nil, 0, fmt.Errorf("list users: %w", err)
	}

	total, err := s.users.Count(ctx)
	if err != nil {
		return nil, 0, fmt.Errorf("count users: %w", err)
	}

	return users, total, nil
}
