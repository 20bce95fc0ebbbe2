package factory

import (
	"context"
	"fmt"

	"charges/internal/calendar"
	"charges/internal/domain"
	"charges/internal/port"
	"charges/internal/validation"
	"charges/internal/validation/rules"
)

// ChargeInformationBusinessRulesFactory builds business rules for charge information commands.
type ChargeInformationBusinessRulesFactory struct {
	lookup
	zone *calendar.ZonedDateTimeService
}

var _ validation.BusinessRulesFactory[*domain.ChargeInformationCommand] = (*ChargeInformationBusinessRulesFactory)(nil)

// NewChargeInformationBusinessRulesFactory creates a ChargeInformationBusinessRulesFactory.
func NewChargeInformationBusinessRulesFactory(
	charges port.ChargeRepository,
	participants port.MarketParticipantRepository,
	settings port.RulesConfigurationRepository,
	zone *calendar.ZonedDateTimeService,
) *ChargeInformationBusinessRulesFactory {
	return &ChargeInformationBusinessRulesFactory{
		lookup: lookup{charges: charges, participants: participants, settings: settings},
		zone:   zone,
	}
}

// CreateRules checks the sender once for the document, then adds each operation's rules.
// Operations are validated in order, each against the charge as left by the
// earlier operations of the document.
func (f *ChargeInformationBusinessRulesFactory) CreateRules(ctx context.Context, cmd *domain.ChargeInformationCommand) (*validation.RuleSet, error) {
	cfg, err := f.configuration(ctx)
	if err != nil {
		return nil, err
	}
	sender, err := f.sender(ctx, cmd.Document)
	if err != nil {
		return nil, err
	}

	rs := validation.NewRuleSet(validation.NewDocumentRuleContainer(
		rules.NewCommandSenderMustBeAnExistingMarketParticipantRule(sender)))
	state := pending{}
	for i := range cmd.Operations {
		opRules, err := f.operationRules(ctx, cfg, sender, state, cmd.Operations[i])
		if err != nil {
			return nil, err
		}
		rs.Concat(opRules)
	}
	return rs, nil
}

// CreateRulesForOperation builds the rules of a single operation, including the sender check.
func (f *ChargeInformationBusinessRulesFactory) CreateRulesForOperation(
	ctx context.Context,
	doc domain.Document,
	op domain.ChargeInformationOperation,
) (*validation.RuleSet, error) {
	cfg, err := f.configuration(ctx)
	if err != nil {
		return nil, err
	}
	sender, err := f.sender(ctx, doc)
	if err != nil {
		return nil, err
	}

	rs := validation.NewRuleSet(validation.NewOperationRuleContainer(
		rules.NewCommandSenderMustBeAnExistingMarketParticipantRule(sender), op.OperationID))
	opRules, err := f.operationRules(ctx, cfg, sender, pending{}, op)
	if err != nil {
		return nil, err
	}
	rs.Concat(opRules)
	return rs, nil
}

func (f *ChargeInformationBusinessRulesFactory) operationRules(
	ctx context.Context,
	cfg domain.RulesConfiguration,
	sender *domain.MarketParticipant,
	state pending,
	op domain.ChargeInformationOperation,
) (*validation.RuleSet, error) {
	specs, ok := informationRegistry(op.Kind)
	if !ok {
		return nil, fmt.Errorf("%w: %q in operation %s", validation.ErrUnsupportedOperationKind, op.Kind, op.OperationID)
	}
	id, err := f.identifier(ctx, op.ChargeID, op.ChargeOwner, op.Type)
	if err != nil {
		return nil, err
	}
	var charge *domain.Charge
	if id != nil {
		var staged bool
		if charge, staged = state[*id]; !staged {
			if charge, err = f.stored(ctx, *id); err != nil {
				return nil, err
			}
		}
		state.apply(*id, charge, op)
	}
	return evaluate(specs, &informationContext{
		config: cfg,
		zone:   f.zone,
		sender: sender,
		charge: charge,
		op:     op,
	}, op.OperationID), nil
}

// ChargePriceBusinessRulesFactory builds business rules for price commands.
type ChargePriceBusinessRulesFactory struct {
	lookup
	zone *calendar.ZonedDateTimeService
}

var _ validation.BusinessRulesFactory[*domain.ChargePriceCommand] = (*ChargePriceBusinessRulesFactory)(nil)

// NewChargePriceBusinessRulesFactory creates a ChargePriceBusinessRulesFactory.
func NewChargePriceBusinessRulesFactory(
	charges port.ChargeRepository,
	participants port.MarketParticipantRepository,
	settings port.RulesConfigurationRepository,
	zone *calendar.ZonedDateTimeService,
) *ChargePriceBusinessRulesFactory {
	return &ChargePriceBusinessRulesFactory{
		lookup: lookup{charges: charges, participants: participants, settings: settings},
		zone:   zone,
	}
}

func (f *ChargePriceBusinessRulesFactory) CreateRules(ctx context.Context, cmd *domain.ChargePriceCommand) (*validation.RuleSet, error) {
	cfg, err := f.configuration(ctx)
	if err != nil {
		return nil, err
	}
	sender, err := f.sender(ctx, cmd.Document)
	if err != nil {
		return nil, err
	}

	rs := validation.NewRuleSet(validation.NewDocumentRuleContainer(
		rules.NewCommandSenderMustBeAnExistingMarketParticipantRule(sender)))
	for i := range cmd.Operations {
		opRules, err := f.operationRules(ctx, cfg, sender, cmd.Operations[i])
		if err != nil {
			return nil, err
		}
		rs.Concat(opRules)
	}
	return rs, nil
}

func (f *ChargePriceBusinessRulesFactory) CreateRulesForOperation(
	ctx context.Context,
	doc domain.Document,
	op domain.ChargePriceOperation,
) (*validation.RuleSet, error) {
	cfg, err := f.configuration(ctx)
	if err != nil {
		return nil, err
	}
	sender, err := f.sender(ctx, doc)
	if err != nil {
		return nil, err
	}

	rs := validation.NewRuleSet(validation.NewOperationRuleContainer(
		rules.NewCommandSenderMustBeAnExistingMarketParticipantRule(sender), op.OperationID))
	opRules, err := f.operationRules(ctx, cfg, sender, op)
	if err != nil {
		return nil, err
	}
	rs.Concat(opRules)
	return rs, nil
}

func (f *ChargePriceBusinessRulesFactory) operationRules(
	ctx context.Context,
	cfg domain.RulesConfiguration,
	sender *domain.MarketParticipant,
	op domain.ChargePriceOperation,
) (*validation.RuleSet, error) {
	charge, err := f.charge(ctx, op.ChargeID, op.ChargeOwner, op.Type)
	if err != nil {
		return nil, err
	}
	return evaluate(priceRules, &priceContext{
		config: cfg,
		zone:   f.zone,
		sender: sender,
		charge: charge,
		op:     op,
	}, op.OperationID), nil
}
