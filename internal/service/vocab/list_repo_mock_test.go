package vocab

import (
	"context"
	"github.com/google/uuid"
	"github.com/heartmarshall/vocab-trainer-backend/internal/domain"
	"sync"
)

var _ listRepo = &listRepoMock{}

type listRepoMock struct {
	CreateFunc     func(ctx context.Context, l domain.VocabList) (domain.VocabList, error)
	ListActiveFunc func(ctx context.Context) ([]domain.VocabList, error)
	ListAllFunc    func(ctx context.Context) ([]domain.VocabList, error)
	ListOldestFunc func(ctx context.Context, limit uint64) ([]domain.VocabList, error)
	SetActiveFunc  func(ctx context.Context, id uuid.UUID, active bool) (domain.VocabList, error)

	calls struct {
		Create []struct {
			Ctx context.Context
			L   domain.VocabList
		}
		ListActive []struct {
			Ctx context.Context
		}
		ListAll []struct {
			Ctx context.Context
		}
		ListOldest []struct {
			Ctx   context.Context
			Limit uint64
		}
		SetActive []struct {
			Ctx    context.Context
			Id     uuid.UUID
			Active bool
		}
	}
	lockCreate     sync.RWMutex
	lockListActive sync.RWMutex
	lockListAll    sync.RWMutex
	lockListOldest sync.RWMutex
	lockSetActive  sync.RWMutex
}

func (mock *listRepoMock) Create(ctx context.Context, l domain.VocabList) (domain.VocabList, error) {
	if mock.CreateFunc == nil {
		panic("listRepoMock.CreateFunc: method is nil but listRepo.Create was just called")
	}
	callInfo := struct {
		Ctx context.Context
		L   domain.VocabList
	}{Ctx: ctx, L: l}
	mock.lockCreate.Lock()
	mock.calls.Create = append(mock.calls.Create, callInfo)
	mock.lockCreate.Unlock()
	return mock.CreateFunc(ctx, l)
}

func (mock *listRepoMock) CreateCalls() []struct {
	Ctx context.Context
	L   domain.VocabList
} {
	mock.lockCreate.RLock()
	calls := mock.calls.Create
	mock.lockCreate.RUnlock()
	return calls
}

func (mock *listRepoMock) ListActive(ctx context.Context) ([]domain.VocabList, error) {
	if mock.ListActiveFunc == nil {
		panic("listRepoMock.ListActiveFunc: method is nil but listRepo.ListActive was just called")
	}
	callInfo := struct {
		Ctx context.Context
	}{Ctx: ctx}
	mock.lockListActive.Lock()
	mock.calls.ListActive = append(mock.calls.ListActive, callInfo)
	mock.lockListActive.Unlock()
	return mock.ListActiveFunc(ctx)
}

func (mock *listRepoMock) ListActiveCalls() []struct {
	Ctx context.Context
} {
	mock.lockListActive.RLock()
	calls := mock.calls.ListActive
	mock.lockListActive.RUnlock()
	return calls
}

func (mock *listRepoMock) ListAll(ctx context.Context) ([]domain.VocabList, error) {
	if mock.ListAllFunc == nil {
		panic("listRepoMock.ListAllFunc: method is nil but listRepo.ListAll was just called")
	}
	callInfo := struct {
		Ctx context.Context
	}{Ctx: ctx}
	mock.lockListAll.Lock()
	mock.calls.ListAll = append(mock.calls.ListAll, callInfo)
	mock.lockListAll.Unlock()
	return mock.ListAllFunc(ctx)
}

func (mock *listRepoMock) ListAllCalls() []struct {
	Ctx context.Context
} {
	mock.lockListAll.RLock()
	calls := mock.calls.ListAll
	mock.lockListAll.RUnlock()
	return calls
}

func (mock *listRepoMock) ListOldest(ctx context.Context, limit uint64) ([]domain.VocabList, error) {
	if mock.ListOldestFunc == nil {
		panic("listRepoMock.ListOldestFunc: method is nil but listRepo.ListOldest was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Limit uint64
	}{Ctx: ctx, Limit: limit}
	mock.lockListOldest.Lock()
	mock.calls.ListOldest = append(mock.calls.ListOldest, callInfo)
	mock.lockListOldest.Unlock()
	return mock.ListOldestFunc(ctx, limit)
}

func (mock *listRepoMock) ListOldestCalls() []struct {
	Ctx   context.Context
	Limit uint64
} {
	mock.lockListOldest.RLock()
	calls := mock.calls.ListOldest
	mock.lockListOldest.RUnlock()
	return calls
}

func (mock *listRepoMock) SetActive(ctx context.Context, id uuid.UUID, active bool) (domain.VocabList, error) {
	if mock.SetActiveFunc == nil {
		panic("listRepoMock.SetActiveFunc: method is nil but listRepo.SetActive was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		Id     uuid.UUID
		Active bool
	}{Ctx: ctx, Id: id, Active: active}
	mock.lockSetActive.Lock()
	mock.calls.SetActive = append(mock.calls.SetActive, callInfo)
	mock.lockSetActive.Unlock()
	return mock.SetActiveFunc(ctx, id, active)
}

func (mock *listRepoMock) SetActiveCalls() []struct {
	Ctx    context.Context
	Id     uuid.UUID
	Active bool
} {
	mock.lockSetActive.RLock()
	calls := mock.calls.SetActive
	mock.lockSetActive.RUnlock()
	return calls
}
