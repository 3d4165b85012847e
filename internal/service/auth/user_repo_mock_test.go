package auth

import (
	"context"
	"github.com/google/uuid"
	"github.com/heartmarshall/vocab-trainer-backend/internal/domain"
	"sync"
)

var _ userRepo = &userRepoMock{}

type userRepoMock struct {
	CreateIfMissingFunc func(ctx context.Context, id uuid.UUID, email string) (domain.User, error)
	GetByIDFunc         func(ctx context.Context, id uuid.UUID) (domain.User, error)

	calls struct {
		CreateIfMissing []struct {
			Ctx   context.Context
			Id    uuid.UUID
			Email string
		}
		GetByID []struct {
			Ctx context.Context
			Id  uuid.UUID
		}
	}
	lockCreateIfMissing sync.RWMutex
	lockGetByID         sync.RWMutex
}

func (mock *userRepoMock) CreateIfMissing(ctx context.Context, id uuid.UUID, email string) (domain.User, error) {
	if mock.CreateIfMissingFunc == nil {
		panic("userRepoMock.CreateIfMissingFunc: method is nil but userRepo.CreateIfMissing was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Id    uuid.UUID
		Email string
	}{Ctx: ctx, Id: id, Email: email}
	mock.lockCreateIfMissing.Lock()
	mock.calls.CreateIfMissing = append(mock.calls.CreateIfMissing, callInfo)
	mock.lockCreateIfMissing.Unlock()
	return mock.CreateIfMissingFunc(ctx, id, email)
}

func (mock *userRepoMock) CreateIfMissingCalls() []struct {
	Ctx   context.Context
	Id    uuid.UUID
	Email string
} {
	mock.lockCreateIfMissing.RLock()
	calls := mock.calls.CreateIfMissing
	mock.lockCreateIfMissing.RUnlock()
	return calls
}

func (mock *userRepoMock) GetByID(ctx context.Context, id uuid.UUID) (domain.User, error) {
	if mock.GetByIDFunc == nil {
		panic("userRepoMock.GetByIDFunc: method is nil but userRepo.GetByID was just called")
	}
	callInfo := struct {
		Ctx context.Context
		Id  uuid.UUID
	}{Ctx: ctx, Id: id}
	mock.lockGetByID.Lock()
	mock.calls.GetByID = append(mock.calls.GetByID, callInfo)
	mock.lockGetByID.Unlock()
	return mock.GetByIDFunc(ctx, id)
}

func (mock *userRepoMock) GetByIDCalls() []struct {
	Ctx context.Context
	Id  uuid.UUID
} {
	mock.lockGetByID.RLock()
	calls := mock.calls.GetByID
	mock.lockGetByID.RUnlock()
	return calls
}
