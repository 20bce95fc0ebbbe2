package factory

import (
	"charges/internal/calendar"
	"charges/internal/domain"
	"charges/internal/validation"
	"charges/internal/validation/rules"
)

// ChargeInformationInputRulesFactory builds the static rules of charge information commands.
type ChargeInformationInputRulesFactory struct{}

var _ validation.InputRulesFactory[*domain.ChargeInformationCommand] = ChargeInformationInputRulesFactory{}

func (f ChargeInformationInputRulesFactory) CreateRules(cmd *domain.ChargeInformationCommand) (*validation.RuleSet, error) {
	rs := documentRules(cmd.Document, rules.NewDocumentTypeMustBeRequestUpdateChargeInformationRule(cmd.Document))
	for i := range cmd.Operations {
		rs.Concat(f.CreateRulesForOperation(cmd.Document, cmd.Operations[i]))
	}
	return rs, nil
}

// CreateRulesForOperation builds the rules of one operation.
func (ChargeInformationInputRulesFactory) CreateRulesForOperation(doc domain.Document, op domain.ChargeInformationOperation) *validation.RuleSet {
	return scoped(op.OperationID,
		rules.NewChargeOperationIDRequiredRule(op.OperationID),
		rules.NewChargeOperationIDLengthRule(op.OperationID),
		rules.NewChargeIDRequiredRule(op.ChargeID),
		rules.NewChargeIDLengthRule(op.ChargeID),
		rules.NewChargeOwnerIsRequiredRule(op.ChargeOwner),
		rules.NewChargeOwnerMustMatchSenderRule(op.ChargeOwner, doc),
		rules.NewChargeTypeIsKnownRule(op.Type),
		rules.NewChargeNameHasMaximumLengthRule(op.Name),
		rules.NewChargeDescriptionHasMaximumLengthRule(op.Description),
		rules.NewStartDateTimeRequiredRule(op.StartDateTime),
		rules.NewEndDateTimeMustNotBeBeforeStartDateTimeRule(op),
		rules.NewResolutionTariffRule(op.Type, op.Resolution),
		rules.NewResolutionFeeRule(op.Type, op.Resolution),
		rules.NewResolutionSubscriptionRule(op.Type, op.Resolution),
		rules.NewVatClassificationRule(op.VatClassification),
		rules.NewTaxIndicatorMustBeFalseForFeeRule(op),
		rules.NewTaxIndicatorMustBeFalseForSubscriptionRule(op),
		rules.NewTransparentInvoicingIsNotAllowedForFeeRule(op),
	)
}

// ChargePriceInputRulesFactory builds the static rules of price commands.
type ChargePriceInputRulesFactory struct {
	zone *calendar.ZonedDateTimeService
}

var _ validation.InputRulesFactory[*domain.ChargePriceCommand] = (*ChargePriceInputRulesFactory)(nil)

// NewChargePriceInputRulesFactory creates a ChargePriceInputRulesFactory.
func NewChargePriceInputRulesFactory(zone *calendar.ZonedDateTimeService) *ChargePriceInputRulesFactory {
	return &ChargePriceInputRulesFactory{zone: zone}
}

func (f *ChargePriceInputRulesFactory) CreateRules(cmd *domain.ChargePriceCommand) (*validation.RuleSet, error) {
	rs := documentRules(cmd.Document, rules.NewDocumentTypeMustBeRequestChangeOfPriceListRule(cmd.Document))
	for i := range cmd.Operations {
		opRules, err := f.CreateRulesForOperation(cmd.Document, cmd.Operations[i])
		if err != nil {
			return nil, err
		}
		rs.Concat(opRules)
	}
	return rs, nil
}

// CreateRulesForOperation builds the rules of one price operation. Point count
// rules need a resolution and are left to PriceListResolutionMustBeSpecified
// when none is given.
func (f *ChargePriceInputRulesFactory) CreateRulesForOperation(doc domain.Document, op domain.ChargePriceOperation) (*validation.RuleSet, error) {
	rs := scoped(op.OperationID,
		rules.NewChargeOperationIDRequiredRule(op.OperationID),
		rules.NewChargeOperationIDLengthRule(op.OperationID),
		rules.NewChargeIDRequiredRule(op.ChargeID),
		rules.NewChargeIDLengthRule(op.ChargeID),
		rules.NewChargeOwnerIsRequiredRule(op.ChargeOwner),
		rules.NewChargeOwnerMustMatchSenderRule(op.ChargeOwner, doc),
		rules.NewChargeTypeIsKnownRule(op.Type),
		rules.NewStartDateTimeRequiredRule(op.StartDateTime),
		rules.NewPriceListResolutionMustBeSpecifiedRule(op.Resolution),
		rules.NewChargePriceMaximumDigitsAndDecimalsRule(op.Points),
		rules.NewFeeMustHaveSinglePriceRule(op),
		rules.NewSubscriptionMustHaveSinglePriceRule(op),
		rules.NewPriceListMustStartAndStopAtMidnightRule(op, f.zone),
	)
	if op.Resolution == domain.ResolutionUnknown {
		return rs, nil
	}

	count, err := rules.NewChargeTypeTariffPriceCountRule(op)
	if err != nil {
		return nil, err
	}
	points, err := rules.NewNumberOfPointsMatchTimeIntervalAndResolutionRule(op, f.zone)
	if err != nil {
		return nil, err
	}
	rs.Append(
		validation.NewOperationRuleContainer(count, op.OperationID),
		validation.NewOperationRuleContainer(points, op.OperationID),
	)
	return rs, nil
}

func documentRules(doc domain.Document, documentType validation.Rule) *validation.RuleSet {
	rs := validation.NewRuleSet()
	for _, r := range []validation.Rule{
		rules.NewBusinessReasonCodeRule(doc),
		documentType,
		rules.NewSenderIsMandatoryRule(doc),
		rules.NewRecipientIsMandatoryRule(doc),
		rules.NewRecipientRoleMustBeDdzRule(doc),
	} {
		rs.Append(validation.NewDocumentRuleContainer(r))
	}
	return rs
}

func scoped(operationID string, rs ...validation.Rule) *validation.RuleSet {
	set := validation.NewRuleSet()
	for _, r := range rs {
		set.Append(validation.NewOperationRuleContainer(r, operationID))
	}
	return set
}
