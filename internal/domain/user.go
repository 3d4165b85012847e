package domain

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/vocab-trainer-backend/pkg/ctxutil"
)

// User is the application-side record of an identity owned by the session
// provider. Role is the only source of administrator rights.
type User struct {
	ID        uuid.UUID
	Email     string
	Role      UserRole
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Principal is the identity acting on a single request. It is resolved per
// request and never cached across requests.
type Principal struct {
	UserID uuid.UUID
	Email  string
	Role   UserRole
}

// IsAdmin reports whether the principal holds the admin role.
func (p Principal) IsAdmin() bool {
	return p.Role.IsAdmin()
}

// PrincipalFromCtx assembles the principal stored by the auth middleware.
// ok is false when the request is anonymous.
func PrincipalFromCtx(ctx context.Context) (Principal, bool) {
	id, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return Principal{}, false
	}
	return Principal{
		UserID: id,
		Email:  ctxutil.UserEmailFromCtx(ctx),
		Role:   UserRole(ctxutil.UserRoleFromCtx(ctx)),
	}, true
}

// CanManageVocabulary is the single policy check guarding list upload,
// flashcard generation and the admin views.
func CanManageVocabulary(p Principal) bool {
	return p.UserID != uuid.Nil && p.IsAdmin()
}

// RevokedToken is an access token invalidated by sign-out before its expiry.
type RevokedToken struct {
	TokenHash string
	UserID    uuid.UUID
	ExpiresAt time.Time
	RevokedAt time.Time
}

// IsExpired returns true if the underlying token has expired relative to now,
// after which the revocation row may be purged.
func (t RevokedToken) IsExpired(now time.Time) bool {
	return t.ExpiresAt.Before(now)
}

// AuthorizeVocabularyManager resolves the principal from ctx and applies
// CanManageVocabulary. Anonymous callers get ErrUnauthorized, authenticated
// non-admins ErrForbidden.
func AuthorizeVocabularyManager(ctx context.Context) (Principal, error) {
	p, ok := PrincipalFromCtx(ctx)
	if !ok {
		return Principal{}, ErrUnauthorized
	}
	if !CanManageVocabulary(p) {
		return Principal{}, ErrForbidden
	}
	return p, nil
}
