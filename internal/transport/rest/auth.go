package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/heartmarshall/vocab-trainer-backend/internal/domain"
	"github.com/heartmarshall/vocab-trainer-backend/pkg/ctxutil"
)

type authService interface {
	CurrentUser(ctx context.Context) (domain.User, error)
	SignOut(ctx context.Context, token string) error
}

// AuthHandler serves identity endpoints. Sign-in happens at the session
// provider; this side only resolves and revokes its tokens.
type AuthHandler struct {
	svc authService
	log *slog.Logger
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(svc authService, logger *slog.Logger) *AuthHandler {
	return &AuthHandler{svc: svc, log: logger.With("handler", "auth")}
}

// Me handles GET /api/me.
func (h *AuthHandler) Me(w http.ResponseWriter, r *http.Request) {
	user, err := h.svc.CurrentUser(r.Context())
	if err != nil {
		handleError(h.log, w, r, err, "Failed to load user")
		return
	}
	writeJSON(w, http.StatusOK, toUser(user))
}

// SignOut handles POST /api/auth/sign-out.
func (h *AuthHandler) SignOut(w http.ResponseWriter, r *http.Request) {
	if err := h.svc.SignOut(r.Context(), ctxutil.BearerTokenFromCtx(r.Context())); err != nil {
		handleError(h.log, w, r, err, "Failed to sign out")
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
