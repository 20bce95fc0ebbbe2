package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"charges/internal/domain"
)

// MockMarketParticipantRepo is a mock implementation of port.MarketParticipantRepository.
type MockMarketParticipantRepo struct {
	mock.Mock
}

func (m *MockMarketParticipantRepo) GetByMarketParticipantID(ctx context.Context, marketParticipantID string) (*domain.MarketParticipant, error) {
	args := m.Called(ctx, marketParticipantID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.MarketParticipant), args.Error(1)
}
