package auth

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/heartmarshall/vocab-trainer-backend/internal/auth"
	"github.com/heartmarshall/vocab-trainer-backend/internal/domain"
)

// ValidateToken resolves the principal for a bearer token. Invalid, expired and
// signed-out tokens yield ErrUnauthorized. The first request of a new identity
// creates its users row with the default role.
func (s *Service) ValidateToken(ctx context.Context, token string) (domain.Principal, error) {
	claims, err := s.jwt.Validate(token)
	if err != nil {
		return domain.Principal{}, domain.ErrUnauthorized
	}

	revoked, err := s.tokens.IsRevoked(ctx, auth.HashToken(token))
	if err != nil {
		return domain.Principal{}, fmt.Errorf("check token revocation: %w", err)
	}
	if revoked {
		return domain.Principal{}, domain.ErrUnauthorized
	}

	user, err := s.users.GetByID(ctx, claims.UserID)
	if errors.Is(err, domain.ErrNotFound) {
		user, err = s.users.CreateIfMissing(ctx, claims.UserID, claims.Email)
		if errors.Is(err, domain.ErrAlreadyExists) {
			s.log.WarnContext(ctx, "token e-mail owned by another user",
				slog.String("user_id", claims.UserID.String()),
				slog.String("email", claims.Email),
			)
			return domain.Principal{}, domain.ErrUnauthorized
		}
		if err == nil {
			s.log.InfoContext(ctx, "user registered",
				slog.String("user_id", user.ID.String()),
				slog.String("email", user.Email),
			)
		}
	}
	if err != nil {
		return domain.Principal{}, fmt.Errorf("resolve user: %w", err)
	}

	return domain.Principal{UserID: user.ID, Email: user.Email, Role: user.Role}, nil
}

// CurrentUser returns the users row of the authenticated caller.
func (s *Service) CurrentUser(ctx context.Context) (domain.User, error) {
	principal, ok := domain.PrincipalFromCtx(ctx)
	if !ok {
		return domain.User{}, domain.ErrUnauthorized
	}

	user, err := s.users.GetByID(ctx, principal.UserID)
	if err != nil {
		return domain.User{}, fmt.Errorf("get user: %w", err)
	}
	return user, nil
}
