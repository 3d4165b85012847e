package flashcard

import (
	"context"
	"github.com/google/uuid"
	"github.com/heartmarshall/vocab-trainer-backend/internal/domain"
	"sync"
)

var _ cardRepo = &cardRepoMock{}

type cardRepoMock struct {
	CoveredWordIDsFunc func(ctx context.Context, listID uuid.UUID) ([]uuid.UUID, error)
	InsertBatchFunc    func(ctx context.Context, cards []domain.NewFlashcard) (int, error)

	calls struct {
		CoveredWordIDs []struct {
			Ctx    context.Context
			ListID uuid.UUID
		}
		InsertBatch []struct {
			Ctx   context.Context
			Cards []domain.NewFlashcard
		}
	}
	lockCoveredWordIDs sync.RWMutex
	lockInsertBatch    sync.RWMutex
}

func (mock *cardRepoMock) CoveredWordIDs(ctx context.Context, listID uuid.UUID) ([]uuid.UUID, error) {
	if mock.CoveredWordIDsFunc == nil {
		panic("cardRepoMock.CoveredWordIDsFunc: method is nil but cardRepo.CoveredWordIDs was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		ListID uuid.UUID
	}{Ctx: ctx, ListID: listID}
	mock.lockCoveredWordIDs.Lock()
	mock.calls.CoveredWordIDs = append(mock.calls.CoveredWordIDs, callInfo)
	mock.lockCoveredWordIDs.Unlock()
	return mock.CoveredWordIDsFunc(ctx, listID)
}

func (mock *cardRepoMock) CoveredWordIDsCalls() []struct {
	Ctx    context.Context
	ListID uuid.UUID
} {
	mock.lockCoveredWordIDs.RLock()
	calls := mock.calls.CoveredWordIDs
	mock.lockCoveredWordIDs.RUnlock()
	return calls
}

func (mock *cardRepoMock) InsertBatch(ctx context.Context, cards []domain.NewFlashcard) (int, error) {
	if mock.InsertBatchFunc == nil {
		panic("cardRepoMock.InsertBatchFunc: method is nil but cardRepo.InsertBatch was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Cards []domain.NewFlashcard
	}{Ctx: ctx, Cards: cards}
	mock.lockInsertBatch.Lock()
	mock.calls.InsertBatch = append(mock.calls.InsertBatch, callInfo)
	mock.lockInsertBatch.Unlock()
	return mock.InsertBatchFunc(ctx, cards)
}

func (mock *cardRepoMock) InsertBatchCalls() []struct {
	Ctx   context.Context
	Cards []domain.NewFlashcard
} {
	mock.lockInsertBatch.RLock()
	calls := mock.calls.InsertBatch
	mock.lockInsertBatch.RUnlock()
	return calls
}
