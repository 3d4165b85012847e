package auth

import (
	"context"
	"github.com/heartmarshall/vocab-trainer-backend/internal/domain"
	"sync"
	"time"
)

var _ tokenRepo = &tokenRepoMock{}

type tokenRepoMock struct {
	DeleteExpiredFunc func(ctx context.Context, now time.Time) (int64, error)
	IsRevokedFunc     func(ctx context.Context, tokenHash string) (bool, error)
	RevokeFunc        func(ctx context.Context, t domain.RevokedToken) error

	calls struct {
		DeleteExpired []struct {
			Ctx context.Context
			Now time.Time
		}
		IsRevoked []struct {
			Ctx       context.Context
			TokenHash string
		}
		Revoke []struct {
			Ctx context.Context
			T   domain.RevokedToken
		}
	}
	lockDeleteExpired sync.RWMutex
	lockIsRevoked     sync.RWMutex
	lockRevoke        sync.RWMutex
}

func (mock *tokenRepoMock) DeleteExpired(ctx context.Context, now time.Time) (int64, error) {
	if mock.DeleteExpiredFunc == nil {
		panic("tokenRepoMock.DeleteExpiredFunc: method is nil but tokenRepo.DeleteExpired was just called")
	}
	callInfo := struct {
		Ctx context.Context
		Now time.Time
	}{Ctx: ctx, Now: now}
	mock.lockDeleteExpired.Lock()
	mock.calls.DeleteExpired = append(mock.calls.DeleteExpired, callInfo)
	mock.lockDeleteExpired.Unlock()
	return mock.DeleteExpiredFunc(ctx, now)
}

func (mock *tokenRepoMock) DeleteExpiredCalls() []struct {
	Ctx context.Context
	Now time.Time
} {
	mock.lockDeleteExpired.RLock()
	calls := mock.calls.DeleteExpired
	mock.lockDeleteExpired.RUnlock()
	return calls
}

func (mock *tokenRepoMock) IsRevoked(ctx context.Context, tokenHash string) (bool, error) {
	if mock.IsRevokedFunc == nil {
		panic("tokenRepoMock.IsRevokedFunc: method is nil but tokenRepo.IsRevoked was just called")
	}
	callInfo := struct {
		Ctx       context.Context
		TokenHash string
	}{Ctx: ctx, TokenHash: tokenHash}
	mock.lockIsRevoked.Lock()
	mock.calls.IsRevoked = append(mock.calls.IsRevoked, callInfo)
	mock.lockIsRevoked.Unlock()
	return mock.IsRevokedFunc(ctx, tokenHash)
}

func (mock *tokenRepoMock) IsRevokedCalls() []struct {
	Ctx       context.Context
	TokenHash string
} {
	mock.lockIsRevoked.RLock()
	calls := mock.calls.IsRevoked
	mock.lockIsRevoked.RUnlock()
	return calls
}

func (mock *tokenRepoMock) Revoke(ctx context.Context, t domain.RevokedToken) error {
	if mock.RevokeFunc == nil {
		panic("tokenRepoMock.RevokeFunc: method is nil but tokenRepo.Revoke was just called")
	}
	callInfo := struct {
		Ctx context.Context
		T   domain.RevokedToken
	}{Ctx: ctx, T: t}
	mock.lockRevoke.Lock()
	mock.calls.Revoke = append(mock.calls.Revoke, callInfo)
	mock.lockRevoke.Unlock()
	return mock.RevokeFunc(ctx, t)
}

func (mock *tokenRepoMock) RevokeCalls() []struct {
	Ctx context.Context
	T   domain.RevokedToken
} {
	mock.lockRevoke.RLock()
	calls := mock.calls.Revoke
	mock.lockRevoke.RUnlock()
	return calls
}
