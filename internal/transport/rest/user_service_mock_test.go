package rest

import (
	"context"
	"github.com/heartmarshall/vocab-trainer-backend/internal/domain"
	"github.com/heartmarshall/vocab-trainer-backend/internal/service/user"
	"sync"
)

var _ userService = &userServiceMock{}

type userServiceMock struct {
	SetRoleFunc   func(ctx context.Context, input user.SetRoleInput) (domain.User, error)
	ListUsersFunc func(ctx context.Context, input user.ListInput) ([]domain.User, int, error)

	calls struct {
		SetRole []struct {
			Ctx   context.Context
			Input user.SetRoleInput
		}
		ListUsers []struct {
			Ctx   context.Context
			Input user.ListInput
		}
	}
	lockSetRole   sync.RWMutex
	lockListUsers sync.RWMutex
}

func (mock *userServiceMock) SetRole(ctx context.Context, input user.SetRoleInput) (domain.User, error) {
	if mock.SetRoleFunc == nil {
		panic("userServiceMock.SetRoleFunc: method is nil but userService.SetRole was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input user.SetRoleInput
	}{Ctx: ctx, Input: input}
	mock.lockSetRole.Lock()
	mock.calls.SetRole = append(mock.calls.SetRole, callInfo)
	mock.lockSetRole.Unlock()
	return mock.SetRoleFunc(ctx, input)
}

func (mock *userServiceMock) SetRoleCalls() []struct {
	Ctx   context.Context
	Input user.SetRoleInput
} {
	mock.lockSetRole.RLock()
	calls := mock.calls.SetRole
	mock.lockSetRole.RUnlock()
	return calls
}

func (mock *userServiceMock) ListUsers(ctx context.Context, input user.ListInput) ([]domain.User, int, error) {
	if mock.ListUsersFunc == nil {
		panic("userServiceMock.ListUsersFunc: method is nil but userService.ListUsers was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input user.ListInput
	}{Ctx: ctx, Input: input}
	mock.lockListUsers.Lock()
	mock.calls.ListUsers = append(mock.calls.ListUsers, callInfo)
	mock.lockListUsers.Unlock()
	return mock.ListUsersFunc(ctx, input)
}

func (mock *userServiceMock) ListUsersCalls() []struct {
	Ctx   context.Context
	Input user.ListInput
} {
	mock.lockListUsers.RLock()
	calls := mock.calls.ListUsers
	mock.lockListUsers.RUnlock()
	return calls
}
