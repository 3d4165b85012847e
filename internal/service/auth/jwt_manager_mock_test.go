package auth

import (
	"github.com/heartmarshall/vocab-trainer-backend/internal/auth"
	"sync"
)

var _ jwtManager = &jwtManagerMock{}

type jwtManagerMock struct {
	ValidateFunc func(token string) (auth.Claims, error)

	calls struct {
		Validate []struct {
			Token string
		}
	}
	lockValidate sync.RWMutex
}

func (mock *jwtManagerMock) Validate(token string) (auth.Claims, error) {
	if mock.ValidateFunc == nil {
		panic("jwtManagerMock.ValidateFunc: method is nil but jwtManager.Validate was just called")
	}
	callInfo := struct {
		Token string
	}{Token: token}
	mock.lockValidate.Lock()
	mock.calls.Validate = append(mock.calls.Validate, callInfo)
	mock.lockValidate.Unlock()
	return mock.ValidateFunc(token)
}

func (mock *jwtManagerMock) ValidateCalls() []struct {
	Token string
} {
	mock.lockValidate.RLock()
	calls := mock.calls.Validate
	mock.lockValidate.RUnlock()
	return calls
}
