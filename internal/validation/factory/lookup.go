package factory

import (
	"context"
	"fmt"

	"charges/internal/domain"
	"charges/internal/port"
)

// lookup fetches the stored data business rules are built from.
type lookup struct {
	charges      port.ChargeRepository
	participants port.MarketParticipantRepository
	settings     port.RulesConfigurationRepository
}

func (l *lookup) configuration(ctx context.Context) (domain.RulesConfiguration, error) {
	cfg, err := l.settings.Get(ctx)
	if err != nil {
		return domain.RulesConfiguration{}, fmt.Errorf("loading rules configuration: %w", err)
	}
	return cfg, nil
}

func (l *lookup) sender(ctx context.Context, doc domain.Document) (*domain.MarketParticipant, error) {
	sender, err := l.participants.GetByMarketParticipantID(ctx, doc.Sender.MarketParticipantID)
	if err != nil {
		return nil, fmt.Errorf("loading sender %s: %w", doc.Sender.MarketParticipantID, err)
	}
	return sender, nil
}

// identifier resolves the owner and returns the charge's natural key, or nil
// when the owner is unknown.
func (l *lookup) identifier(ctx context.Context, chargeID, owner string, t domain.ChargeType) (*domain.ChargeIdentifier, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	ownerParticipant, err := l.participants.GetByMarketParticipantID(ctx, owner)
	if err != nil {
		return nil, fmt.Errorf("loading charge owner %s: %w", owner, err)
	}
	if ownerParticipant == nil {
		return nil, nil
	}
	return &domain.ChargeIdentifier{SenderProvidedChargeID: chargeID, OwnerID: ownerParticipant.ID, Type: t}, nil
}

// charge returns the stored charge, or nil when the owner or the charge is unknown.
func (l *lookup) charge(ctx context.Context, chargeID, owner string, t domain.ChargeType) (*domain.Charge, error) {
	id, err := l.identifier(ctx, chargeID, owner, t)
	if err != nil || id == nil {
		return nil, err
	}
	return l.stored(ctx, *id)
}

func (l *lookup) stored(ctx context.Context, id domain.ChargeIdentifier) (*domain.Charge, error) {
	charge, err := l.charges.GetOrNull(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("loading charge %s: %w", id.SenderProvidedChargeID, err)
	}
	return charge, nil
}

// pending is the state of the charges touched by earlier operations of the
// same document. Later operations are validated against it instead of the store.
type pending map[domain.ChargeIdentifier]*domain.Charge

// apply records the state op leaves the charge in. charge is the state op was
// validated against and is not modified.
func (p pending) apply(id domain.ChargeIdentifier, charge *domain.Charge, op domain.ChargeInformationOperation) {
	switch op.Kind {
	case domain.OperationKindCreate:
		if charge == nil {
			p[id] = domain.NewCharge(id, op.Resolution, op.TaxIndicator, op.Period())
		}
	case domain.OperationKindUpdate:
		if charge != nil {
			next := charge.Clone()
			next.Update(op.Period())
			p[id] = next
		}
	case domain.OperationKindStop:
		if charge != nil {
			next := charge.Clone()
			next.Stop(op.StartDateTime)
			p[id] = next
		}
	}
}
