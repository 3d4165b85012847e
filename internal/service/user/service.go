package user

import (
	"context"
	"log/slog"

	"github.com/heartmarshall/vocab-trainer-backend/internal/domain"
)

// userRepo defines the user repository interface needed by user service.
type userRepo interface {
	GetByEmail(ctx context.Context, email string) (domain.User, error)
	SetRoleByEmail(ctx context.Context, email string, role domain.UserRole) (int64, error)
	List(ctx context.Context, limit, offset uint64) ([]domain.User, error)
	Count(ctx context.Context) (int, error)
}

// Service implements user administration.
type Service struct {
	log   *slog.Logger
	users userRepo
}

// NewService creates a new user service instance.
func NewService(logger *slog.Logger, users userRepo) *Service {
	return &Service{
		log:   logger.With("service", "user"),
		users: users,
	}
}
