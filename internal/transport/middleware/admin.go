package middleware

import (
	"context"
	"errors"
	"net/http"

	"github.com/heartmarshall/vocab-trainer-backend/internal/domain"
)

// RequireAdmin applies the vocabulary management policy to the context user.
// Returns domain.ErrUnauthorized for anonymous callers and domain.ErrForbidden
// for non-admins.
func RequireAdmin(ctx context.Context) error {
	_, err := domain.AuthorizeVocabularyManager(ctx)
	return err
}

// AdminOnly rejects requests that fail RequireAdmin. It must run after Auth.
func AdminOnly() Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			err := RequireAdmin(r.Context())
			switch {
			case errors.Is(err, domain.ErrUnauthorized):
				writeError(w, http.StatusUnauthorized, "Unauthorized")
				return
			case err != nil:
				writeError(w, http.StatusForbidden, "Forbidden")
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
