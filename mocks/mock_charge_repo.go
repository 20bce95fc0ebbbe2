package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"charges/internal/domain"
	"charges/internal/port"
)

// MockChargeRepo is a mock implementation of port.ChargeRepository.
type MockChargeRepo struct {
	mock.Mock
}

func (m *MockChargeRepo) GetOrNull(ctx context.Context, id domain.ChargeIdentifier) (*domain.Charge, error) {
	args := m.Called(ctx, id)
	if rf, ok := args.Get(0).(func(context.Context, domain.ChargeIdentifier) *domain.Charge); ok {
		return rf(ctx, id), args.Error(1)
	}
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Charge), args.Error(1)
}

func (m *MockChargeRepo) Save(ctx context.Context, changes port.ChargeChanges) error {
	args := m.Called(ctx, changes)
	return args.Error(0)
}
