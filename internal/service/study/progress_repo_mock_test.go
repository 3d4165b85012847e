package study

import (
	"context"
	"github.com/google/uuid"
	"github.com/heartmarshall/vocab-trainer-backend/internal/domain"
	"sync"
)

var _ progressRepo = &progressRepoMock{}

type progressRepoMock struct {
	ListByUserFunc        func(ctx context.Context, userID uuid.UUID) ([]domain.UserProgress, error)
	ListByUserAndListFunc func(ctx context.Context, userID uuid.UUID, listID uuid.UUID) ([]domain.UserProgress, error)

	calls struct {
		ListByUser []struct {
			Ctx    context.Context
			UserID uuid.UUID
		}
		ListByUserAndList []struct {
			Ctx    context.Context
			UserID uuid.UUID
			ListID uuid.UUID
		}
	}
	lockListByUser        sync.RWMutex
	lockListByUserAndList sync.RWMutex
}

func (mock *progressRepoMock) ListByUser(ctx context.Context, userID uuid.UUID) ([]domain.UserProgress, error) {
	if mock.ListByUserFunc == nil {
		panic("progressRepoMock.ListByUserFunc: method is nil but progressRepo.ListByUser was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		UserID uuid.UUID
	}{Ctx: ctx, UserID: userID}
	mock.lockListByUser.Lock()
	mock.calls.ListByUser = append(mock.calls.ListByUser, callInfo)
	mock.lockListByUser.Unlock()
	return mock.ListByUserFunc(ctx, userID)
}

func (mock *progressRepoMock) ListByUserCalls() []struct {
	Ctx    context.Context
	UserID uuid.UUID
} {
	mock.lockListByUser.RLock()
	calls := mock.calls.ListByUser
	mock.lockListByUser.RUnlock()
	return calls
}

func (mock *progressRepoMock) ListByUserAndList(ctx context.Context, userID uuid.UUID, listID uuid.UUID) ([]domain.UserProgress, error) {
	if mock.ListByUserAndListFunc == nil {
		panic("progressRepoMock.ListByUserAndListFunc: method is nil but progressRepo.ListByUserAndList was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		UserID uuid.UUID
		ListID uuid.UUID
	}{Ctx: ctx, UserID: userID, ListID: listID}
	mock.lockListByUserAndList.Lock()
	mock.calls.ListByUserAndList = append(mock.calls.ListByUserAndList, callInfo)
	mock.lockListByUserAndList.Unlock()
	return mock.ListByUserAndListFunc(ctx, userID, listID)
}

func (mock *progressRepoMock) ListByUserAndListCalls() []struct {
	Ctx    context.Context
	UserID uuid.UUID
	ListID uuid.UUID
} {
	mock.lockListByUserAndList.RLock()
	calls := mock.calls.ListByUserAndList
	mock.lockListByUserAndList.RUnlock()
	return calls
}
