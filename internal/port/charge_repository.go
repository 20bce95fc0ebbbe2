package port

import (
	"context"

	"charges/internal/domain"
)

// ChargeChanges holds the charges one document creates and modifies.
type ChargeChanges struct {
	Added   []*domain.Charge
	Updated []*domain.Charge
}

// IsEmpty reports whether there is nothing to store.
func (c ChargeChanges) IsEmpty() bool {
	return len(c.Added) == 0 && len(c.Updated) == 0
}

// ChargeRepository defines the contract for charge persistence.
type ChargeRepository interface {
	// GetOrNull returns nil, nil when no charge has the identifier.
	GetOrNull(ctx context.Context, id domain.ChargeIdentifier) (*domain.Charge, error)
	// Save stores all changes in one transaction. It fails with
	// domain.ErrConcurrentUpdate when an updated charge changed after it was read.
	Save(ctx context.Context, changes ChargeChanges) error
}
