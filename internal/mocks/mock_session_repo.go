package mocks

import (
	"context"
	"time"

	"github.com/metinatakli/cinema-operations/internal/domain"
	"github.com/stretchr/testify/mock"
)

type MockSessionRepo struct {
	mock.Mock
	domain.SessionRepository
}

func (m *MockSessionRepo) Create(ctx context.Context, session *domain.Session) error {
	args := m.Called(ctx, session)
	return args.Error(0)
}

func (m *MockSessionRepo) GetById(ctx context.Context, id int) (*domain.Session, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Session), args.Error(1)
}

func (m *MockSessionRepo) Save(ctx context.Context, session *domain.Session) error {
	args := m.Called(ctx, session)
	return args.Error(0)
}

func (m *MockSessionRepo) List(ctx context.Context, filters domain.SessionFilters) ([]domain.SessionSummary, *domain.Metadata, error) {
	args := m.Called(ctx, filters)
	if args.Get(0) == nil {
		return nil, nil, args.Error(2)
	}
	return args.Get(0).([]domain.SessionSummary), args.Get(1).(*domain.Metadata), args.Error(2)
}

func (m *MockSessionRepo) ListActiveIDs(ctx context.Context) ([]int, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]int), args.Error(1)
}

type MockScreeningFinder struct {
	mock.Mock
}

func (m *MockScreeningFinder) ListScreeningsConflicting(
	ctx context.Context,
	roomID int,
	start, end time.Time,
	excludeSessionID *int) ([]domain.Screening, error) {

	args := m.Called(ctx, roomID, start, end, excludeSessionID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Screening), args.Error(1)
}
