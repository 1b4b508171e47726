package mocks

import (
	"context"

	"github.com/metinatakli/cinema-operations/internal/domain"
	"github.com/stretchr/testify/mock"
)

type MockSessionLocker struct {
	mock.Mock
	domain.SessionLocker
}

// Lock records the call. Unlocking records an "Unlock" call when one is
// expected, so tests can assert the lock is always released.
func (m *MockSessionLocker) Lock(ctx context.Context, sessionID int) (func(), error) {
	args := m.Called(ctx, sessionID)
	if err := args.Error(0); err != nil {
		return nil, err
	}

	return func() {
		m.MethodCalled("Unlock", sessionID)
	}, nil
}

type MockEventPublisher struct {
	mock.Mock
	domain.EventPublisher
}

func (m *MockEventPublisher) Publish(ctx context.Context, event domain.Event) error {
	args := m.Called(ctx, event)
	return args.Error(0)
}
