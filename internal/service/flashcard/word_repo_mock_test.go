package flashcard

import (
	"context"
	"github.com/google/uuid"
	"github.com/heartmarshall/vocab-trainer-backend/internal/domain"
	"sync"
)

var _ wordRepo = &wordRepoMock{}

type wordRepoMock struct {
	ListByListFunc func(ctx context.Context, listID uuid.UUID) ([]domain.VocabularyWord, error)

	calls struct {
		ListByList []struct {
			Ctx    context.Context
			ListID uuid.UUID
		}
	}
	lockListByList sync.RWMutex
}

func (mock *wordRepoMock) ListByList(ctx context.Context, listID uuid.UUID) ([]domain.VocabularyWord, error) {
	if mock.ListByListFunc == nil {
		panic("wordRepoMock.ListByListFunc: method is nil but wordRepo.ListByList was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		ListID uuid.UUID
	}{Ctx: ctx, ListID: listID}
	mock.lockListByList.Lock()
	mock.calls.ListByList = append(mock.calls.ListByList, callInfo)
	mock.lockListByList.Unlock()
	return mock.ListByListFunc(ctx, listID)
}

func (mock *wordRepoMock) ListByListCalls() []struct {
	Ctx    context.Context
	ListID uuid.UUID
} {
	mock.lockListByList.RLock()
	calls := mock.calls.ListByList
	mock.lockListByList.RUnlock()
	return calls
}
