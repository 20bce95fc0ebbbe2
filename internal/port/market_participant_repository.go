package port

import (
	"context"

	"charges/internal/domain"
)

// MarketParticipantRepository defines the contract for market participant lookups.
type MarketParticipantRepository interface {
	// GetByMarketParticipantID returns nil, nil for unknown participants.
	GetByMarketParticipantID(ctx context.Context, marketParticipantID string) (*domain.MarketParticipant, error)
}
