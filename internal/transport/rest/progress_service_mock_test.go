package rest

import (
	"context"
	"github.com/heartmarshall/vocab-trainer-backend/internal/domain"
	"github.com/heartmarshall/vocab-trainer-backend/internal/service/progress"
	"sync"
)

var _ progressService = &progressServiceMock{}

type progressServiceMock struct {
	RecordAnswerFunc func(ctx context.Context, input progress.AnswerInput) (domain.UserProgress, error)
	SaveSnapshotFunc func(ctx context.Context, input progress.SnapshotInput) (domain.UserProgress, error)

	calls struct {
		RecordAnswer []struct {
			Ctx   context.Context
			Input progress.AnswerInput
		}
		SaveSnapshot []struct {
			Ctx   context.Context
			Input progress.SnapshotInput
		}
	}
	lockRecordAnswer sync.RWMutex
	lockSaveSnapshot sync.RWMutex
}

func (mock *progressServiceMock) RecordAnswer(ctx context.Context, input progress.AnswerInput) (domain.UserProgress, error) {
	if mock.RecordAnswerFunc == nil {
		panic("progressServiceMock.RecordAnswerFunc: method is nil but progressService.RecordAnswer was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input progress.AnswerInput
	}{Ctx: ctx, Input: input}
	mock.lockRecordAnswer.Lock()
	mock.calls.RecordAnswer = append(mock.calls.RecordAnswer, callInfo)
	mock.lockRecordAnswer.Unlock()
	return mock.RecordAnswerFunc(ctx, input)
}

func (mock *progressServiceMock) RecordAnswerCalls() []struct {
	Ctx   context.Context
	Input progress.AnswerInput
} {
	mock.lockRecordAnswer.RLock()
	calls := mock.calls.RecordAnswer
	mock.lockRecordAnswer.RUnlock()
	return calls
}

func (mock *progressServiceMock) SaveSnapshot(ctx context.Context, input progress.SnapshotInput) (domain.UserProgress, error) {
	if mock.SaveSnapshotFunc == nil {
		panic("progressServiceMock.SaveSnapshotFunc: method is nil but progressService.SaveSnapshot was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input progress.SnapshotInput
	}{Ctx: ctx, Input: input}
	mock.lockSaveSnapshot.Lock()
	mock.calls.SaveSnapshot = append(mock.calls.SaveSnapshot, callInfo)
	mock.lockSaveSnapshot.Unlock()
	return mock.SaveSnapshotFunc(ctx, input)
}

func (mock *progressServiceMock) SaveSnapshotCalls() []struct {
	Ctx   context.Context
	Input progress.SnapshotInput
} {
	mock.lockSaveSnapshot.RLock()
	calls := mock.calls.SaveSnapshot
	mock.lockSaveSnapshot.RUnlock()
	return calls
}
