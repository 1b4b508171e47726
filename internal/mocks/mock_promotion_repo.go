package mocks

import (
	"context"
	"time"

	"github.com/metinatakli/cinema-operations/internal/domain"
	"github.com/stretchr/testify/mock"
)

type MockPromotionRuleRepo struct {
	mock.Mock
	domain.PromotionRuleRepository
}

func (m *MockPromotionRuleRepo) Create(ctx context.Context, rule *domain.PromotionRule) error {
	args := m.Called(ctx, rule)
	return args.Error(0)
}

func (m *MockPromotionRuleRepo) ListInForce(ctx context.Context, date time.Time) ([]domain.PromotionRule, error) {
	args := m.Called(ctx, date)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.PromotionRule), args.Error(1)
}
