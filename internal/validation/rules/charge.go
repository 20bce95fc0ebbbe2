package rules

import (
	"time"

	"charges/internal/domain"
	"charges/internal/validation"
)

// NewCommandSenderMustBeAnExistingMarketParticipantRule fails when the sender lookup found nothing.
func NewCommandSenderMustBeAnExistingMarketParticipantRule(sender *domain.MarketParticipant) validation.Rule {
	return fieldRule{
		id:    validation.CommandSenderMustBeAnExistingMarketParticipant,
		valid: sender != nil,
	}
}

// NewChargeMustExistRule fails when no stored charge matches the operation.
func NewChargeMustExistRule(charge *domain.Charge) validation.Rule {
	return fieldRule{id: validation.ChargeMustExist, valid: charge != nil}
}

// NewChargeMustNotAlreadyExistRule fails when a create targets a charge that already exists.
func NewChargeMustNotAlreadyExistRule(charge *domain.Charge) validation.Rule {
	return fieldRule{id: validation.ChargeMustNotAlreadyExist, valid: charge == nil}
}

// NewChangingTariffTaxValueNotAllowedRule keeps a tariff's tax indicator fixed.
func NewChangingTariffTaxValueNotAllowedRule(op domain.ChargeInformationOperation, charge domain.Charge) validation.Rule {
	return fieldRule{
		id:    validation.ChangingTariffTaxValueNotAllowed,
		valid: op.TaxIndicator == charge.TaxIndicator,
	}
}

// NewChangingTariffVatValueNotAllowedRule keeps a tariff's VAT class fixed.
// The class is read from the charge's latest period.
func NewChangingTariffVatValueNotAllowedRule(op domain.ChargeInformationOperation, charge domain.Charge) validation.Rule {
	valid := true
	if last, ok := charge.LastPeriod(); ok {
		valid = op.VatClassification == last.VatClassification
	}
	return fieldRule{id: validation.ChangingTariffVatValueNotAllowed, valid: valid}
}

// NewChargeResolutionCanNotBeUpdatedRule keeps a charge's resolution fixed.
func NewChargeResolutionCanNotBeUpdatedRule(resolution domain.Resolution, charge domain.Charge) validation.Rule {
	return fieldRule{
		id:    validation.ChargeResolutionCanNotBeUpdated,
		valid: resolution == charge.Resolution,
	}
}

// NewUpdateChargeMustHaveEffectiveDateBeforeOrOnStopDateRule rejects changes
// taking effect after the charge has been stopped.
func NewUpdateChargeMustHaveEffectiveDateBeforeOrOnStopDateRule(effective time.Time, charge domain.Charge) validation.Rule {
	valid := true
	if last, ok := charge.LastPeriod(); ok {
		valid = !effective.After(last.EndDateTime)
	}
	return fieldRule{id: validation.UpdateChargeMustHaveEffectiveDateBeforeOrOnStopDate, valid: valid}
}
