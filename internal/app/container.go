package app

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	goredis "github.com/redis/go-redis/v9"

	"github.com/heartmarshall/vocab-trainer-backend/internal/adapter/postgres"
	flashcardrepo "github.com/heartmarshall/vocab-trainer-backend/internal/adapter/postgres/flashcard"
	"github.com/heartmarshall/vocab-trainer-backend/internal/adapter/postgres/genlock"
	progressrepo "github.com/heartmarshall/vocab-trainer-backend/internal/adapter/postgres/progress"
	"github.com/heartmarshall/vocab-trainer-backend/internal/adapter/postgres/token"
	userrepo "github.com/heartmarshall/vocab-trainer-backend/internal/adapter/postgres/user"
	"github.com/heartmarshall/vocab-trainer-backend/internal/adapter/postgres/vocablist"
	"github.com/heartmarshall/vocab-trainer-backend/internal/adapter/postgres/word"
	redisadapter "github.com/heartmarshall/vocab-trainer-backend/internal/adapter/redis"
	"github.com/heartmarshall/vocab-trainer-backend/internal/auth"
	"github.com/heartmarshall/vocab-trainer-backend/internal/config"
	"github.com/heartmarshall/vocab-trainer-backend/internal/domain"
	authsvc "github.com/heartmarshall/vocab-trainer-backend/internal/service/auth"
	"github.com/heartmarshall/vocab-trainer-backend/internal/service/flashcard"
	"github.com/heartmarshall/vocab-trainer-backend/internal/service/progress"
	"github.com/heartmarshall/vocab-trainer-backend/internal/service/study"
	usersvc "github.com/heartmarshall/vocab-trainer-backend/internal/service/user"
	"github.com/heartmarshall/vocab-trainer-backend/internal/service/vocab"
	"github.com/heartmarshall/vocab-trainer-backend/internal/transport/middleware"
	"github.com/heartmarshall/vocab-trainer-backend/internal/transport/rest"
	"github.com/heartmarshall/vocab-trainer-backend/pkg/ctxutil"
)

// generationLock is implemented by both the Redis and the PostgreSQL lock.
type generationLock interface {
	TryAcquire(ctx context.Context, listID uuid.UUID, holder string, ttl time.Duration) (bool, error)
	Release(ctx context.Context, listID uuid.UUID, holder string) error
}

// App holds the wired services and the infrastructure they share.
type App struct {
	cfg     *config.Config
	logger  *slog.Logger
	pool    *pgxpool.Pool
	rdb     *goredis.Client
	limiter *middleware.RateLimiter
	users   *userrepo.Repo

	Auth      *authsvc.Service
	Vocab     *vocab.Service
	Flashcard *flashcard.Service
	Progress  *progress.Service
	Study     *study.Service
	User      *usersvc.Service
}

// New wires repositories and services. rdb may be nil, in which case
// generation locks are kept in PostgreSQL.
func New(cfg *config.Config, logger *slog.Logger, pool *pgxpool.Pool, rdb *goredis.Client) *App {
	txm := postgres.NewTxManager(pool)

	users := userrepo.New(pool)
	tokens := token.New(pool)
	lists := vocablist.New(pool)
	words := word.New(pool)
	cards := flashcardrepo.New(pool)
	progressRows := progressrepo.New(pool)

	var lock generationLock = genlock.New(pool)
	if rdb != nil {
		lock = redisadapter.NewGenerationLock(rdb, cfg.Redis.KeyPrefix)
	}

	jwtMgr := auth.NewJWTManager(cfg.Auth.JWTSecret, cfg.Auth.JWTIssuer, cfg.Auth.AccessTokenTTL)

	a := &App{
		cfg:    cfg,
		logger: logger,
		pool:   pool,
		rdb:    rdb,
		users:  users,

		Auth:  authsvc.NewService(logger, users, tokens, jwtMgr),
		Vocab: vocab.NewService(logger, lists, words, cards, txm),
		Flashcard: flashcard.NewService(
			logger, lists, words, cards, flashcard.TemplateGenerator{}, lock, txm, cfg.Generation.LockTTL,
		),
		Progress: progress.NewService(logger, progressRows, txm),
		Study:    study.NewService(logger, lists, cards, progressRows),
		User:     usersvc.NewService(logger, users),
	}
	if cfg.RateLimit.Enabled {
		a.limiter = middleware.NewRateLimiter(cfg.RateLimit.CleanupInterval)
	}
	return a
}

// Handler builds the HTTP handler: the API router wrapped in the global
// middleware stack. Outermost first: request id, access log, panic
// recovery, CORS, token resolution.
func (a *App) Handler() http.Handler {
	checks := []rest.Check{{Name: "database", Ping: a.pool.Ping}}
	if a.rdb != nil {
		rdb := a.rdb
		checks = append(checks, rest.Check{Name: "redis", Ping: func(ctx context.Context) error {
			return rdb.Ping(ctx).Err()
		}})
	}

	router := rest.NewRouter(rest.Handlers{
		Health:    rest.NewHealthHandler(BuildVersion(), checks...),
		Auth:      rest.NewAuthHandler(a.Auth, a.logger),
		Vocab:     rest.NewVocabHandler(a.Vocab, a.logger, a.cfg.Server.MaxUploadBytes),
		Flashcard: rest.NewFlashcardHandler(a.Flashcard, a.logger),
		Progress:  rest.NewProgressHandler(a.Progress, a.logger),
		Study:     rest.NewStudyHandler(a.Study, a.logger),
		User:      rest.NewUserHandler(a.User, a.logger),
	}, rest.Limits{
		Limiter:  a.limiter,
		Generate: a.cfg.RateLimit.Generate,
		Upload:   a.cfg.RateLimit.Upload,
	})

	return middleware.Chain(
		middleware.RequestID,
		middleware.Logger(a.logger),
		middleware.Recovery(a.logger),
		middleware.CORS(a.cfg.CORS),
		middleware.Auth(a.Auth),
	)(router)
}

// ActAs returns ctx carrying the principal of the registered user with the
// given email. Command-line tools use it in place of a bearer token.
func (a *App) ActAs(ctx context.Context, email string) (context.Context, domain.User, error) {
	u, err := a.users.GetByEmail(ctx, email)
	if err != nil {
		return ctx, domain.User{}, fmt.Errorf("find user %q: %w", email, err)
	}

	ctx = ctxutil.WithUserID(ctx, u.ID)
	ctx = ctxutil.WithUserEmail(ctx, u.Email)
	ctx = ctxutil.WithUserRole(ctx, u.Role.String())
	return ctx, u, nil
}

// Close stops background workers owned by the app. Connections passed to
// New are closed by their owner.
func (a *App) Close() {
	if a.limiter != nil {
		a.limiter.Stop()
	}
}
