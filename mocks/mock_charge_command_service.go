package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"charges/internal/domain"
	"charges/internal/service"
)

// MockChargeCommandService is a mock implementation of service.ChargeCommandService.
type MockChargeCommandService struct {
	mock.Mock
}

func (m *MockChargeCommandService) HandleChargeInformation(ctx context.Context, cmd *domain.ChargeInformationCommand) (*service.Outcome, error) {
	args := m.Called(ctx, cmd)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.Outcome), args.Error(1)
}

func (m *MockChargeCommandService) HandleChargePrices(ctx context.Context, cmd *domain.ChargePriceCommand) (*service.Outcome, error) {
	args := m.Called(ctx, cmd)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.Outcome), args.Error(1)
}
