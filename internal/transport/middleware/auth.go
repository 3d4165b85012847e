package middleware

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/heartmarshall/vocab-trainer-backend/internal/domain"
	"github.com/heartmarshall/vocab-trainer-backend/pkg/ctxutil"
)

type tokenValidator interface {
	ValidateToken(ctx context.Context, token string) (domain.Principal, error)
}

// Auth resolves the bearer token into a principal stored in the request
// context. Requests without a token pass through anonymously; services decide
// whether anonymous access is allowed.
func Auth(validator tokenValidator) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token := extractBearerToken(r)
			if token == "" {
				next.ServeHTTP(w, r) // Anonymous
				return
			}

			p, err := validator.ValidateToken(r.Context(), token)
			switch {
			case errors.Is(err, domain.ErrUnauthorized):
				writeError(w, http.StatusUnauthorized, "Unauthorized")
				return
			case err != nil:
				writeError(w, http.StatusInternalServerError, "internal error")
				return
			}

			ctx := ctxutil.WithUserID(r.Context(), p.UserID)
			ctx = ctxutil.WithUserEmail(ctx, p.Email)
			ctx = ctxutil.WithUserRole(ctx, p.Role.String())
			ctx = ctxutil.WithBearerToken(ctx, token)
			annotateUser(ctx, p.UserID.String())

			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func extractBearerToken(r *http.Request) string {
	auth := r.Header.Get("Authorization")
	if len(auth) < 7 || !strings.EqualFold(auth[:7], "Bearer ") {
		return ""
	}
	return strings.TrimSpace(auth[7:])
}
