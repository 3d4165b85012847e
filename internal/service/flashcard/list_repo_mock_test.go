package flashcard

import (
	"context"
	"github.com/google/uuid"
	"github.com/heartmarshall/vocab-trainer-backend/internal/domain"
	"sync"
)

var _ listRepo = &listRepoMock{}

type listRepoMock struct {
	GetByIDFunc func(ctx context.Context, id uuid.UUID) (domain.VocabList, error)

	calls struct {
		GetByID []struct {
			Ctx context.Context
			Id  uuid.UUID
		}
	}
	lockGetByID sync.RWMutex
}

func (mock *listRepoMock) GetByID(ctx context.Context, id uuid.UUID) (domain.VocabList, error) {
	if mock.GetByIDFunc == nil {
		panic("listRepoMock.GetByIDFunc: method is nil but listRepo.GetByID was just called")
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

func (mock *listRepoMock) GetByIDCalls() []struct {
	Ctx context.Context
	Id  uuid.UUID
} {
	mock.lockGetByID.RLock()
	calls := mock.calls.GetByID
	mock.lockGetByID.RUnlock()
	return calls
}
