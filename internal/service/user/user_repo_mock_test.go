package user

import (
	"context"
	"github.com/heartmarshall/vocab-trainer-backend/internal/domain"
	"sync"
)

var _ userRepo = &userRepoMock{}

type userRepoMock struct {
	CountFunc          func(ctx context.Context) (int, error)
	GetByEmailFunc     func(ctx context.Context, email string) (domain.User, error)
	ListFunc           func(ctx context.Context, limit uint64, offset uint64) ([]domain.User, error)
	SetRoleByEmailFunc func(ctx context.Context, email string, role domain.UserRole) (int64, error)

	calls struct {
		Count []struct {
			Ctx context.Context
		}
		GetByEmail []struct {
			Ctx   context.Context
			Email string
		}
		List []struct {
			Ctx    context.Context
			Limit  uint64
			Offset uint64
		}
		SetRoleByEmail []struct {
			Ctx   context.Context
			Email string
			Role  domain.UserRole
		}
	}
	lockCount          sync.RWMutex
	lockGetByEmail     sync.RWMutex
	lockList           sync.RWMutex
	lockSetRoleByEmail sync.RWMutex
}

func (mock *userRepoMock) Count(ctx context.Context) (int, error) {
	if mock.CountFunc == nil {
		panic("userRepoMock.CountFunc: method is nil but userRepo.Count was just called")
	}
	callInfo := struct {
		Ctx context.Context
	}{Ctx: ctx}
	mock.lockCount.Lock()
	mock.calls.Count = append(mock.calls.Count, callInfo)
	mock.lockCount.Unlock()
	return mock.CountFunc(ctx)
}

func (mock *userRepoMock) CountCalls() []struct {
	Ctx context.Context
} {
	mock.lockCount.RLock()
	calls := mock.calls.Count
	mock.lockCount.RUnlock()
	return calls
}

func (mock *userRepoMock) GetByEmail(ctx context.Context, email string) (domain.User, error) {
	if mock.GetByEmailFunc == nil {
		panic("userRepoMock.GetByEmailFunc: method is nil but userRepo.GetByEmail was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Email string
	}{Ctx: ctx, Email: email}
	mock.lockGetByEmail.Lock()
	mock.calls.GetByEmail = append(mock.calls.GetByEmail, callInfo)
	mock.lockGetByEmail.Unlock()
	return mock.GetByEmailFunc(ctx, email)
}

func (mock *userRepoMock) GetByEmailCalls() []struct {
	Ctx   context.Context
	Email string
} {
	mock.lockGetByEmail.RLock()
	calls := mock.calls.GetByEmail
	mock.lockGetByEmail.RUnlock()
	return calls
}

func (mock *userRepoMock) List(ctx context.Context, limit uint64, offset uint64) ([]domain.User, error) {
	if mock.ListFunc == nil {
		panic("userRepoMock.ListFunc: method is nil but userRepo.List was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		Limit  uint64
		Offset uint64
	}{Ctx: ctx, Limit: limit, Offset: offset}
	mock.lockList.Lock()
	mock.calls.List = append(mock.calls.List, callInfo)
	mock.lockList.Unlock()
	return mock.ListFunc(ctx, limit, offset)
}

func (mock *userRepoMock) ListCalls() []struct {
	Ctx    context.Context
	Limit  uint64
	Offset uint64
} {
	mock.lockList.RLock()
	calls := mock.calls.List
	mock.lockList.RUnlock()
	return calls
}

func (mock *userRepoMock) SetRoleByEmail(ctx context.Context, email string, role domain.UserRole) (int64, error) {
	if mock.SetRoleByEmailFunc == nil {
		panic("userRepoMock.SetRoleByEmailFunc: method is nil but userRepo.SetRoleByEmail was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Email string
		Role  domain.UserRole
	}{Ctx: ctx, Email: email, Role: role}
	mock.lockSetRoleByEmail.Lock()
	mock.calls.SetRoleByEmail = append(mock.calls.SetRoleByEmail, callInfo)
	mock.lockSetRoleByEmail.Unlock()
	return mock.SetRoleByEmailFunc(ctx, email, role)
}

func (mock *userRepoMock) SetRoleByEmailCalls() []struct {
	Ctx   context.Context
	Email string
	Role  domain.UserRole
} {
	mock.lockSetRoleByEmail.RLock()
	calls := mock.calls.SetRoleByEmail
	mock.lockSetRoleByEmail.RUnlock()
	return calls
}
