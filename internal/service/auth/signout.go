package auth

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/heartmarshall/vocab-trainer-backend/internal/auth"
	"github.com/heartmarshall/vocab-trainer-backend/internal/domain"
)

// SignOut revokes the token the caller authenticated with until it expires.
// Signing out twice is not an error.
func (s *Service) SignOut(ctx context.Context, token string) error {
	principal, ok := domain.PrincipalFromCtx(ctx)
	if !ok {
		return domain.ErrUnauthorized
	}

	claims, err := s.jwt.Validate(token)
	if err != nil || claims.UserID != principal.UserID {
		return domain.ErrUnauthorized
	}

	err = s.tokens.Revoke(ctx, domain.RevokedToken{
		TokenHash: auth.HashToken(token),
		UserID:    principal.UserID,
		ExpiresAt: claims.ExpiresAt,
		RevokedAt: s.now(),
	})
	if err != nil {
		return fmt.Errorf("revoke token: %w", err)
	}

	s.log.InfoContext(ctx, "user signed out", slog.String("user_id", principal.UserID.String()))
	return nil
}

// CleanupRevokedTokens removes revocations of tokens that have expired anyway.
// Returns the number of rows deleted. This is a maintenance operation.
func (s *Service) CleanupRevokedTokens(ctx context.Context) (int64, error) {
	count, err := s.tokens.DeleteExpired(ctx, s.now())
	if err != nil {
		s.log.ErrorContext(ctx, "token cleanup failed", slog.String("error", err.Error()))
		return 0, fmt.Errorf("delete expired revocations: %w", err)
	}

	if count > 0 {
		s.log.InfoContext(ctx, "cleaned up revoked tokens", slog.Int64("count", count))
	}
	return count, nil
}
