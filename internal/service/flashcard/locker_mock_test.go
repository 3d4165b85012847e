package flashcard

import (
	"context"
	"github.com/google/uuid"
	"sync"
	"time"
)

var _ locker = &lockerMock{}

type lockerMock struct {
	ReleaseFunc    func(ctx context.Context, listID uuid.UUID, holder string) error
	TryAcquireFunc func(ctx context.Context, listID uuid.UUID, holder string, ttl time.Duration) (bool, error)

	calls struct {
		Release []struct {
			Ctx    context.Context
			ListID uuid.UUID
			Holder string
		}
		TryAcquire []struct {
			Ctx    context.Context
			ListID uuid.UUID
			Holder string
			Ttl    time.Duration
		}
	}
	lockRelease    sync.RWMutex
	lockTryAcquire sync.RWMutex
}

func (mock *lockerMock) Release(ctx context.Context, listID uuid.UUID, holder string) error {
	if mock.ReleaseFunc == nil {
		panic("lockerMock.ReleaseFunc: method is nil but locker.Release was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		ListID uuid.UUID
		Holder string
	}{Ctx: ctx, ListID: listID, Holder: holder}
	mock.lockRelease.Lock()
	mock.calls.Release = append(mock.calls.Release, callInfo)
	mock.lockRelease.Unlock()
	return mock.ReleaseFunc(ctx, listID, holder)
}

func (mock *lockerMock) ReleaseCalls() []struct {
	Ctx    context.Context
	ListID uuid.UUID
	Holder string
} {
	mock.lockRelease.RLock()
	calls := mock.calls.Release
	mock.lockRelease.RUnlock()
	return calls
}

func (mock *lockerMock) TryAcquire(ctx context.Context, listID uuid.UUID, holder string, ttl time.Duration) (bool, error) {
	if mock.TryAcquireFunc == nil {
		panic("lockerMock.TryAcquireFunc: method is nil but locker.TryAcquire was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		ListID uuid.UUID
		Holder string
		Ttl    time.Duration
	}{Ctx: ctx, ListID: listID, Holder: holder, Ttl: ttl}
	mock.lockTryAcquire.Lock()
	mock.calls.TryAcquire = append(mock.calls.TryAcquire, callInfo)
	mock.lockTryAcquire.Unlock()
	return mock.TryAcquireFunc(ctx, listID, holder, ttl)
}

func (mock *lockerMock) TryAcquireCalls() []struct {
	Ctx    context.Context
	ListID uuid.UUID
	Holder string
	Ttl    time.Duration
} {
	mock.lockTryAcquire.RLock()
	calls := mock.calls.TryAcquire
	mock.lockTryAcquire.RUnlock()
	return calls
}
