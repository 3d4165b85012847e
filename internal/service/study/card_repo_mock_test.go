package study

import (
	"context"
	"github.com/google/uuid"
	"github.com/heartmarshall/vocab-trainer-backend/internal/domain"
	"sync"
)

var _ cardRepo = &cardRepoMock{}

type cardRepoMock struct {
	ListStudyCardsFunc func(ctx context.Context, listID uuid.UUID) ([]domain.StudyCard, error)

	calls struct {
		ListStudyCards []struct {
			Ctx    context.Context
			ListID uuid.UUID
		}
	}
	lockListStudyCards sync.RWMutex
}

func (mock *cardRepoMock) ListStudyCards(ctx context.Context, listID uuid.UUID) ([]domain.StudyCard, error) {
	if mock.ListStudyCardsFunc == nil {
		panic("cardRepoMock.ListStudyCardsFunc: method is nil but cardRepo.ListStudyCards was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		ListID uuid.UUID
	}{Ctx: ctx, ListID: listID}
	mock.lockListStudyCards.Lock()
	mock.calls.ListStudyCards = append(mock.calls.ListStudyCards, callInfo)
	mock.lockListStudyCards.Unlock()
	return mock.ListStudyCardsFunc(ctx, listID)
}

func (mock *cardRepoMock) ListStudyCardsCalls() []struct {
	Ctx    context.Context
	ListID uuid.UUID
} {
	mock.lockListStudyCards.RLock()
	calls := mock.calls.ListStudyCards
	mock.lockListStudyCards.RUnlock()
	return calls
}
