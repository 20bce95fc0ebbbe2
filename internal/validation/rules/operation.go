package rules

import (
	"time"

	"charges/internal/domain"
	"charges/internal/validation"
)

// NewChargeIDRequiredRule requires a sender-provided charge id.
func NewChargeIDRequiredRule(chargeID string) validation.Rule {
	return required(validation.ChargeIdRequiredValidation, chargeID)
}

// NewChargeIDLengthRule limits the charge id to ChargeIDMaxLength characters.
func NewChargeIDLengthRule(chargeID string) validation.Rule {
	return maxLength(validation.ChargeIdLengthValidation, chargeID, ChargeIDMaxLength)
}

// NewChargeOperationIDRequiredRule requires an operation id.
func NewChargeOperationIDRequiredRule(operationID string) validation.Rule {
	return required(validation.ChargeOperationIdRequired, operationID)
}

// NewChargeOperationIDLengthRule limits the operation id to ChargeOperationIDMaxLength characters.
func NewChargeOperationIDLengthRule(operationID string) validation.Rule {
	return maxLength(validation.ChargeOperationIdLengthValidation, operationID, ChargeOperationIDMaxLength)
}

// NewChargeOwnerIsRequiredRule requires the charge owner's market participant id.
func NewChargeOwnerIsRequiredRule(owner string) validation.Rule {
	return required(validation.ChargeOwnerIsRequiredValidation, owner)
}

// NewChargeOwnerMustMatchSenderRule only lets a market participant submit its own charges.
func NewChargeOwnerMustMatchSenderRule(owner string, doc domain.Document) validation.Rule {
	return fieldRule{
		id:    validation.ChargeOwnerMustMatchSender,
		valid: owner == doc.Sender.MarketParticipantID,
	}
}

// NewChargeTypeIsKnownRule requires one of the defined charge types.
func NewChargeTypeIsKnownRule(t domain.ChargeType) validation.Rule {
	return fieldRule{id: validation.ChargeTypeIsKnownValidation, valid: t.IsKnown()}
}

// NewChargeNameHasMaximumLengthRule limits the charge name to ChargeNameMaxLength characters.
func NewChargeNameHasMaximumLengthRule(name string) validation.Rule {
	return maxLength(validation.ChargeNameHasMaximumLength, name, ChargeNameMaxLength)
}

// NewChargeDescriptionHasMaximumLengthRule limits the description to ChargeDescriptionMaxLength characters.
func NewChargeDescriptionHasMaximumLengthRule(description string) validation.Rule {
	return maxLength(validation.ChargeDescriptionHasMaximumLength, description, ChargeDescriptionMaxLength)
}

// NewStartDateTimeRequiredRule requires an effective date.
func NewStartDateTimeRequiredRule(start time.Time) validation.Rule {
	return fieldRule{id: validation.StartDateTimeRequiredValidation, valid: !start.IsZero()}
}

// NewEndDateTimeMustNotBeBeforeStartDateTimeRule accepts a missing end date.
func NewEndDateTimeMustNotBeBeforeStartDateTimeRule(op domain.ChargeInformationOperation) validation.Rule {
	return fieldRule{
		id:    validation.EndDateTimeMustNotBeBeforeStartDateTime,
		valid: op.EndDateTime == nil || !op.EndDateTime.Before(op.StartDateTime),
	}
}

// NewVatClassificationRule requires a known VAT classification.
func NewVatClassificationRule(vat domain.VatClassification) validation.Rule {
	return fieldRule{id: validation.VatClassificationValidation, valid: vat.IsKnown()}
}

// NewTaxIndicatorMustBeFalseForFeeRule rejects fees marked as tax. Only tariffs may be taxes.
func NewTaxIndicatorMustBeFalseForFeeRule(op domain.ChargeInformationOperation) validation.Rule {
	return fieldRule{
		id:    validation.TaxIndicatorMustBeFalseForFee,
		valid: op.Type != domain.ChargeTypeFee || !op.TaxIndicator,
	}
}

// NewTaxIndicatorMustBeFalseForSubscriptionRule rejects subscriptions marked as tax.
func NewTaxIndicatorMustBeFalseForSubscriptionRule(op domain.ChargeInformationOperation) validation.Rule {
	return fieldRule{
		id:    validation.TaxIndicatorMustBeFalseForSubscription,
		valid: op.Type != domain.ChargeTypeSubscription || !op.TaxIndicator,
	}
}

// NewTransparentInvoicingIsNotAllowedForFeeRule rejects fees with transparent invoicing.
func NewTransparentInvoicingIsNotAllowedForFeeRule(op domain.ChargeInformationOperation) validation.Rule {
	return fieldRule{
		id:    validation.TransparentInvoicingIsNotAllowedForFee,
		valid: op.Type != domain.ChargeTypeFee || !op.TransparentInvoicing,
	}
}
