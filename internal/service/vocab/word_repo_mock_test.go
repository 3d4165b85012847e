package vocab

import (
	"context"
	"github.com/google/uuid"
	"github.com/heartmarshall/vocab-trainer-backend/internal/domain"
	"sync"
)

var _ wordRepo = &wordRepoMock{}

type wordRepoMock struct {
	CreateBatchFunc func(ctx context.Context, listID uuid.UUID, pairs []domain.WordPair, score int) (int, error)

	calls struct {
		CreateBatch []struct {
			Ctx    context.Context
			ListID uuid.UUID
			Pairs  []domain.WordPair
			Score  int
		}
	}
	lockCreateBatch sync.RWMutex
}

func (mock *wordRepoMock) CreateBatch(ctx context.Context, listID uuid.UUID, pairs []domain.WordPair, score int) (int, error) {
	if mock.CreateBatchFunc == nil {
		panic("wordRepoMock.CreateBatchFunc: method is nil but wordRepo.CreateBatch was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		ListID uuid.UUID
		Pairs  []domain.WordPair
		Score  int
	}{Ctx: ctx, ListID: listID, Pairs: pairs, Score: score}
	mock.lockCreateBatch.Lock()
	mock.calls.CreateBatch = append(mock.calls.CreateBatch, callInfo)
	mock.lockCreateBatch.Unlock()
	return mock.CreateBatchFunc(ctx, listID, pairs, score)
}

func (mock *wordRepoMock) CreateBatchCalls() []struct {
	Ctx    context.Context
	ListID uuid.UUID
	Pairs  []domain.WordPair
	Score  int
} {
	mock.lockCreateBatch.RLock()
	calls := mock.calls.CreateBatch
	mock.lockCreateBatch.RUnlock()
	return calls
}
