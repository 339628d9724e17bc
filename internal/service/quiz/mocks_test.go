package quiz

import (
	"context"
	"sync"

	"github.com/heartmarshall/holyghost-backend/internal/provider"
)

var _ completer = &completerMock{}

type completerMock struct {
	CompleteFunc func(ctx context.Context, req provider.CompletionRequest) (string, error)

	calls struct {
		Complete []struct {
			Req provider.CompletionRequest
		}
	}
	lockComplete sync.RWMutex
}

func (mock *completerMock) Complete(ctx context.Context, req provider.CompletionRequest) (string, error) {
	if mock.CompleteFunc == nil {
		panic("completerMock.CompleteFunc: method is nil but completer.Complete was just called")
	}
	callInfo := struct {
		Req provider.CompletionRequest
	}{Req: req}
	mock.lockComplete.Lock()
	mock.calls.Complete = append(mock.calls.Complete, callInfo)
	mock.lockComplete.Unlock()
	return mock.CompleteFunc(ctx, req)
}

func (mock *completerMock) CompleteCalls() []struct {
	Req provider.CompletionRequest
} {
	mock.lockComplete.RLock()
	calls := mock.calls.Complete
	mock.lockComplete.RUnlock()
	return calls
}
