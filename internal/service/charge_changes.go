package service

import (
	"context"
	"fmt"

	"charges/internal/domain"
	"charges/internal/port"
)

// maxSaveAttempts bounds how often a document is re-applied after losing an
// optimistic concurrency check.
const maxSaveAttempts = 3

// changeSet stages the charges touched by one document so they are stored together.
// Later operations on a charge see the changes of earlier ones.
type changeSet struct {
	charges port.ChargeRepository
	staged  map[domain.ChargeIdentifier]*domain.Charge
	changes port.ChargeChanges
}

func newChangeSet(charges port.ChargeRepository) *changeSet {
	return &changeSet{charges: charges, staged: make(map[domain.ChargeIdentifier]*domain.Charge)}
}

func (cs *changeSet) add(charge *domain.Charge) error {
	id := charge.Identifier()
	if _, ok := cs.staged[id]; ok {
		return fmt.Errorf("charge %s: %w", id.SenderProvidedChargeID, domain.ErrDuplicateCharge)
	}
	cs.staged[id] = charge
	cs.changes.Added = append(cs.changes.Added, charge)
	return nil
}

// load returns the staged charge with id, reading it from the store on first use.
func (cs *changeSet) load(ctx context.Context, id domain.ChargeIdentifier) (*domain.Charge, error) {
	if charge, ok := cs.staged[id]; ok {
		return charge, nil
	}
	charge, err := cs.charges.GetOrNull(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("loading charge %s: %w", id.SenderProvidedChargeID, err)
	}
	if charge == nil {
		return nil, fmt.Errorf("charge %s: %w", id.SenderProvidedChargeID, domain.ErrChargeNotFound)
	}
	cs.staged[id] = charge
	cs.changes.Updated = append(cs.changes.Updated, charge)
	return charge, nil
}
