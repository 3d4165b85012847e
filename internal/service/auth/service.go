package auth

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/vocab-trainer-backend/internal/auth"
	"github.com/heartmarshall/vocab-trainer-backend/internal/domain"
)

// userRepo defines the user repository interface needed by auth service.
type userRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (domain.User, error)
	CreateIfMissing(ctx context.Context, id uuid.UUID, email string) (domain.User, error)
}

// tokenRepo defines the revoked token repository interface needed by auth service.
type tokenRepo interface {
	Revoke(ctx context.Context, t domain.RevokedToken) error
	IsRevoked(ctx context.Context, tokenHash string) (bool, error)
	DeleteExpired(ctx context.Context, now time.Time) (int64, error)
}

// jwtManager defines the token validation interface needed by auth service.
type jwtManager interface {
	Validate(token string) (auth.Claims, error)
}

// Service adapts the external session provider: it validates bearer tokens,
// resolves roles from the users table and handles sign-out.
type Service struct {
	log    *slog.Logger
	users  userRepo
	tokens tokenRepo
	jwt    jwtManager
	now    func() time.Time
}

// NewService creates a new auth service instance.
func NewService(logger *slog.Logger, users userRepo, tokens tokenRepo, jwt jwtManager) *Service {
	return &Service{
		log:    logger.With("service", "auth"),
		users:  users,
		tokens: tokens,
		jwt:    jwt,
		now:    time.Now,
	}
}
