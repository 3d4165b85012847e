package rest

import (
	"net/http"

	"github.com/gorilla/mux"

	"github.com/heartmarshall/vocab-trainer-backend/internal/transport/middleware"
)

// Handlers groups every HTTP handler the router mounts.
type Handlers struct {
	Health    *HealthHandler
	Auth      *AuthHandler
	Vocab     *VocabHandler
	Flashcard *FlashcardHandler
	Progress  *ProgressHandler
	Study     *StudyHandler
	User      *UserHandler
}

// Limits holds the per-route rate limits. A nil Limiter disables them.
type Limits struct {
	Limiter  *middleware.RateLimiter
	Generate int
	Upload   int
}

func (l Limits) wrap(name string, perMinute int, h http.HandlerFunc) http.Handler {
	if l.Limiter == nil || perMinute <= 0 {
		return h
	}
	return l.Limiter.Limit(name, perMinute)(h)
}

// NewRouter mounts the health probes at the root and the API under /api.
// Admin routes are gated by AdminOnly; generation is authorized by the
// service so a missing list id can be rejected before authentication.
//
// Routes are registered flat on one router with full paths. A PathPrefix
// subrouter re-runs the prefix match for every route it holds, which resets
// a recorded method mismatch, so a wrong method would surface as 404.
func NewRouter(h Handlers, limits Limits) *mux.Router {
	r := mux.NewRouter()
	r.NotFoundHandler = http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		writeError(w, http.StatusNotFound, "not found")
	})
	r.MethodNotAllowedHandler = http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed")
	})

	r.HandleFunc("/live", h.Health.Live).Methods(http.MethodGet)
	r.HandleFunc("/ready", h.Health.Ready).Methods(http.MethodGet)
	r.HandleFunc("/health", h.Health.Health).Methods(http.MethodGet)

	api := func(method, path string, handler http.Handler) {
		r.Handle("/api"+path, handler).Methods(method)
	}
	adminOnly := middleware.AdminOnly()
	admin := func(method, path string, handler http.Handler) {
		api(method, "/admin"+path, adminOnly(handler))
	}

	api(http.MethodGet, "/me", http.HandlerFunc(h.Auth.Me))
	api(http.MethodPost, "/auth/sign-out", http.HandlerFunc(h.Auth.SignOut))
	api(http.MethodGet, "/vocab-lists", http.HandlerFunc(h.Vocab.ListActive))
	api(http.MethodGet, "/dashboard", http.HandlerFunc(h.Study.Dashboard))
	api(http.MethodGet, "/study/{listId}", http.HandlerFunc(h.Study.Deck))
	api(http.MethodPost, "/update-progress", http.HandlerFunc(h.Progress.Update))
	api(http.MethodPost, "/generate-flashcards", limits.wrap("generate", limits.Generate, h.Flashcard.Generate))

	admin(http.MethodGet, "/vocab-lists", http.HandlerFunc(h.Vocab.ListAll))
	admin(http.MethodPost, "/vocab-lists", limits.wrap("upload", limits.Upload, h.Vocab.Upload))
	admin(http.MethodPatch, "/vocab-lists/{id}", http.HandlerFunc(h.Vocab.SetActive))
	admin(http.MethodGet, "/debug", http.HandlerFunc(h.Vocab.Debug))
	admin(http.MethodGet, "/users", http.HandlerFunc(h.User.List))
	admin(http.MethodPost, "/users/role", http.HandlerFunc(h.User.SetRole))

	return r
}
