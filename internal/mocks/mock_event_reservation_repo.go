package mocks

import (
	"context"
	"time"

	"github.com/metinatakli/cinema-operations/internal/domain"
	"github.com/stretchr/testify/mock"
)

type MockEventReservationRepo struct {
	mock.Mock
	domain.EventReservationRepository
}

func (m *MockEventReservationRepo) Create(ctx context.Context, reservation *domain.EventReservation) error {
	args := m.Called(ctx, reservation)
	return args.Error(0)
}

func (m *MockEventReservationRepo) GetById(ctx context.Context, id int) (*domain.EventReservation, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.EventReservation), args.Error(1)
}

func (m *MockEventReservationRepo) UpdateStatus(ctx context.Context, id int, status domain.EventReservationStatus) error {
	args := m.Called(ctx, id, status)
	return args.Error(0)
}

func (m *MockEventReservationRepo) ListEventReservationsConflicting(
	ctx context.Context,
	roomID int,
	start, end time.Time,
	excludeReservationID *int) ([]domain.EventReservation, error) {

	args := m.Called(ctx, roomID, start, end, excludeReservationID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.EventReservation), args.Error(1)
}
