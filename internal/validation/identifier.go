package validation

import "strconv"

// RuleIdentifier identifies a regulatory validation rule.
//
// Values are echoed into rejection documents sent to market participants.
// They are append-only: never renumber or reuse a value.
type RuleIdentifier int

const (
	Unknown RuleIdentifier = 0

	// Business rules.
	StartDateValidation                                 RuleIdentifier = 1 // VR209
	CommandSenderMustBeAnExistingMarketParticipant      RuleIdentifier = 2 // VR902
	ChangingTariffTaxValueNotAllowed                    RuleIdentifier = 3 // VR630
	ChangingTariffVatValueNotAllowed                    RuleIdentifier = 4 // VR630
	ChargeResolutionCanNotBeUpdated                     RuleIdentifier = 5 // VR630
	UpdateChargeMustHaveEffectiveDateBeforeOrOnStopDate RuleIdentifier = 6 // VR902
	ChargeMustExist                                     RuleIdentifier = 7 // VR679
	ChargeMustNotAlreadyExist                           RuleIdentifier = 8 // VR677

	// Document input rules.
	BusinessReasonCodeMustBeUpdateChargeInformationOrChargePrices RuleIdentifier = 20 // VR424
	DocumentTypeMustBeRequestUpdateChargeInformation              RuleIdentifier = 21 // VR009
	DocumentTypeMustBeRequestChangeOfPriceList                    RuleIdentifier = 22 // VR009
	SenderIsMandatoryTypeValidation                               RuleIdentifier = 23 // VR150
	RecipientIsMandatoryTypeValidation                            RuleIdentifier = 24 // VR153
	RecipientRoleMustBeDdz                                        RuleIdentifier = 25 // VR153

	// Operation input rules.
	ChargeIdRequiredValidation              RuleIdentifier = 40 // VR223
	ChargeIdLengthValidation                RuleIdentifier = 41 // VR441
	ChargeOperationIdRequired               RuleIdentifier = 42 // VR223
	ChargeOperationIdLengthValidation       RuleIdentifier = 43 // VR441
	ChargeOwnerIsRequiredValidation         RuleIdentifier = 44 // VR223
	ChargeOwnerMustMatchSender              RuleIdentifier = 45 // VR673
	ChargeTypeIsKnownValidation             RuleIdentifier = 46 // VR203
	ChargeNameHasMaximumLength              RuleIdentifier = 47 // VR441
	ChargeDescriptionHasMaximumLength       RuleIdentifier = 48 // VR441
	StartDateTimeRequiredValidation         RuleIdentifier = 49 // VR223
	EndDateTimeMustNotBeBeforeStartDateTime RuleIdentifier = 50 // VR905
	ResolutionTariffValidation              RuleIdentifier = 51 // VR505
	ResolutionFeeValidation                 RuleIdentifier = 52 // VR505
	ResolutionSubscriptionValidation        RuleIdentifier = 53 // VR505
	VatClassificationValidation             RuleIdentifier = 54 // VR488
	TaxIndicatorMustBeFalseForFee           RuleIdentifier = 55 // VR488
	TaxIndicatorMustBeFalseForSubscription  RuleIdentifier = 56 // VR488
	TransparentInvoicingIsNotAllowedForFee  RuleIdentifier = 57 // VR488

	// Price input rules.
	ChargePriceMaximumDigitsAndDecimals               RuleIdentifier = 70 // VR457
	ChargeTypeTariffPriceCount                        RuleIdentifier = 71 // VR507
	NumberOfPointsMatchTimeIntervalAndResolution      RuleIdentifier = 72 // VR508
	PriceListMustStartAndStopAtMidnightValidationRule RuleIdentifier = 73 // VR509
	FeeMustHaveSinglePrice                            RuleIdentifier = 74 // VR507
	SubscriptionMustHaveSinglePrice                   RuleIdentifier = 75 // VR507
	PriceListResolutionMustBeSpecified                RuleIdentifier = 76 // VR505
)

var identifierNames = map[RuleIdentifier]string{
	Unknown: "Unknown",

	StartDateValidation:                                 "StartDateValidation",
	CommandSenderMustBeAnExistingMarketParticipant:      "CommandSenderMustBeAnExistingMarketParticipant",
	ChangingTariffTaxValueNotAllowed:                    "ChangingTariffTaxValueNotAllowed",
	ChangingTariffVatValueNotAllowed:                    "ChangingTariffVatValueNotAllowed",
	ChargeResolutionCanNotBeUpdated:                     "ChargeResolutionCanNotBeUpdated",
	UpdateChargeMustHaveEffectiveDateBeforeOrOnStopDate: "UpdateChargeMustHaveEffectiveDateBeforeOrOnStopDate",
	ChargeMustExist:                                     "ChargeMustExist",
	ChargeMustNotAlreadyExist:                           "ChargeMustNotAlreadyExist",

	BusinessReasonCodeMustBeUpdateChargeInformationOrChargePrices: "BusinessReasonCodeMustBeUpdateChargeInformationOrChargePrices",
	DocumentTypeMustBeRequestUpdateChargeInformation:              "DocumentTypeMustBeRequestUpdateChargeInformation",
	DocumentTypeMustBeRequestChangeOfPriceList:                    "DocumentTypeMustBeRequestChangeOfPriceList",
	SenderIsMandatoryTypeValidation:                               "SenderIsMandatoryTypeValidation",
	RecipientIsMandatoryTypeValidation:                            "RecipientIsMandatoryTypeValidation",
	RecipientRoleMustBeDdz:                                        "RecipientRoleMustBeDdz",

	ChargeIdRequiredValidation:              "ChargeIdRequiredValidation",
	ChargeIdLengthValidation:                "ChargeIdLengthValidation",
	ChargeOperationIdRequired:               "ChargeOperationIdRequired",
	ChargeOperationIdLengthValidation:       "ChargeOperationIdLengthValidation",
	ChargeOwnerIsRequiredValidation:         "ChargeOwnerIsRequiredValidation",
	ChargeOwnerMustMatchSender:              "ChargeOwnerMustMatchSender",
	ChargeTypeIsKnownValidation:             "ChargeTypeIsKnownValidation",
	ChargeNameHasMaximumLength:              "ChargeNameHasMaximumLength",
	ChargeDescriptionHasMaximumLength:       "ChargeDescriptionHasMaximumLength",
	StartDateTimeRequiredValidation:         "StartDateTimeRequiredValidation",
	EndDateTimeMustNotBeBeforeStartDateTime: "EndDateTimeMustNotBeBeforeStartDateTime",
	ResolutionTariffValidation:              "ResolutionTariffValidation",
	ResolutionFeeValidation:                 "ResolutionFeeValidation",
	ResolutionSubscriptionValidation:        "ResolutionSubscriptionValidation",
	VatClassificationValidation:             "VatClassificationValidation",
	TaxIndicatorMustBeFalseForFee:           "TaxIndicatorMustBeFalseForFee",
	TaxIndicatorMustBeFalseForSubscription:  "TaxIndicatorMustBeFalseForSubscription",
	TransparentInvoicingIsNotAllowedForFee:  "TransparentInvoicingIsNotAllowedForFee",

	ChargePriceMaximumDigitsAndDecimals:               "ChargePriceMaximumDigitsAndDecimals",
	ChargeTypeTariffPriceCount:                        "ChargeTypeTariffPriceCount",
	NumberOfPointsMatchTimeIntervalAndResolution:      "NumberOfPointsMatchTimeIntervalAndResolution",
	PriceListMustStartAndStopAtMidnightValidationRule: "PriceListMustStartAndStopAtMidnightValidationRule",
	FeeMustHaveSinglePrice:                            "FeeMustHaveSinglePrice",
	SubscriptionMustHaveSinglePrice:                   "SubscriptionMustHaveSinglePrice",
	PriceListResolutionMustBeSpecified:                "PriceListResolutionMustBeSpecified",
}

func (id RuleIdentifier) String() string {
	if s, ok := identifierNames[id]; ok {
		return s
	}
	return "RuleIdentifier(" + strconv.Itoa(int(id)) + ")"
}

// MarshalText encodes the identifier by name.
func (id RuleIdentifier) MarshalText() ([]byte, error) {
	return []byte(id.String()), nil
}
