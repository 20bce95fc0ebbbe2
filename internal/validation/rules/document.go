package rules

import (
	"charges/internal/domain"
	"charges/internal/validation"
)

// NewBusinessReasonCodeRule requires a charge information or charge price business reason.
func NewBusinessReasonCodeRule(doc domain.Document) validation.Rule {
	code := doc.BusinessReasonCode
	return fieldRule{
		id: validation.BusinessReasonCodeMustBeUpdateChargeInformationOrChargePrices,
		valid: code == domain.BusinessReasonCodeUpdateChargeInformation ||
			code == domain.BusinessReasonCodeUpdateChargePrices,
	}
}

// NewDocumentTypeMustBeRequestUpdateChargeInformationRule guards charge information documents.
func NewDocumentTypeMustBeRequestUpdateChargeInformationRule(doc domain.Document) validation.Rule {
	return fieldRule{
		id:    validation.DocumentTypeMustBeRequestUpdateChargeInformation,
		valid: doc.Type == domain.DocumentTypeRequestUpdateChargeInformation,
	}
}

// NewDocumentTypeMustBeRequestChangeOfPriceListRule guards price documents.
func NewDocumentTypeMustBeRequestChangeOfPriceListRule(doc domain.Document) validation.Rule {
	return fieldRule{
		id:    validation.DocumentTypeMustBeRequestChangeOfPriceList,
		valid: doc.Type == domain.DocumentTypeRequestChangeOfPriceList,
	}
}

// NewSenderIsMandatoryRule requires a sender id.
func NewSenderIsMandatoryRule(doc domain.Document) validation.Rule {
	return required(validation.SenderIsMandatoryTypeValidation, doc.Sender.MarketParticipantID)
}

// NewRecipientIsMandatoryRule requires a recipient id.
func NewRecipientIsMandatoryRule(doc domain.Document) validation.Rule {
	return required(validation.RecipientIsMandatoryTypeValidation, doc.Recipient.MarketParticipantID)
}

// NewRecipientRoleMustBeDdzRule requires the metering point administrator as recipient.
func NewRecipientRoleMustBeDdzRule(doc domain.Document) validation.Rule {
	return fieldRule{
		id:    validation.RecipientRoleMustBeDdz,
		valid: doc.Recipient.BusinessProcessRole == domain.RoleMeteringPointAdministrator,
	}
}
