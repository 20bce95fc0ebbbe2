package mocks

import (
	"time"

	"github.com/stretchr/testify/mock"

	"charges/internal/domain"
	"charges/internal/service"
)

// MockAuthService is a mock implementation of service.AuthService.
type MockAuthService struct {
	mock.Mock
}

func (m *MockAuthService) IssueToken(participant domain.MarketParticipantRef, ttl time.Duration) (string, error) {
	args := m.Called(participant, ttl)
	return args.String(0), args.Error(1)
}

func (m *MockAuthService) ValidateToken(tokenString string) (*service.Claims, error) {
	args := m.Called(tokenString)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.Claims), args.Error(1)
}
