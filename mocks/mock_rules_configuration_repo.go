package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"charges/internal/domain"
)

// MockRulesConfigurationRepo is a mock implementation of port.RulesConfigurationRepository.
type MockRulesConfigurationRepo struct {
	mock.Mock
}

func (m *MockRulesConfigurationRepo) Get(ctx context.Context) (domain.RulesConfiguration, error) {
	args := m.Called(ctx)
	return args.Get(0).(domain.RulesConfiguration), args.Error(1)
}
