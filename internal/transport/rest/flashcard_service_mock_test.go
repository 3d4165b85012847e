package rest

import (
	"context"
	"github.com/heartmarshall/vocab-trainer-backend/internal/service/flashcard"
	"sync"
)

var _ flashcardService = &flashcardServiceMock{}

type flashcardServiceMock struct {
	GenerateForListFunc func(ctx context.Context, input flashcard.GenerateInput) (flashcard.GenerateResult, error)

	calls struct {
		GenerateForList []struct {
			Ctx   context.Context
			Input flashcard.GenerateInput
		}
	}
	lockGenerateForList sync.RWMutex
}

func (mock *flashcardServiceMock) GenerateForList(ctx context.Context, input flashcard.GenerateInput) (flashcard.GenerateResult, error) {
	if mock.GenerateForListFunc == nil {
		panic("flashcardServiceMock.GenerateForListFunc: method is nil but flashcardService.GenerateForList was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input flashcard.GenerateInput
	}{Ctx: ctx, Input: input}
	mock.lockGenerateForList.Lock()
	mock.calls.GenerateForList = append(mock.calls.GenerateForList, callInfo)
	mock.lockGenerateForList.Unlock()
	return mock.GenerateForListFunc(ctx, input)
}

func (mock *flashcardServiceMock) GenerateForListCalls() []struct {
	Ctx   context.Context
	Input flashcard.GenerateInput
} {
	mock.lockGenerateForList.RLock()
	calls := mock.calls.GenerateForList
	mock.lockGenerateForList.RUnlock()
	return calls
}
