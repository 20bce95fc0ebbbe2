package rules

import (
	"slices"

	"charges/internal/domain"
	"charges/internal/validation"
)

// resolutionRule restricts the resolutions allowed for one charge type.
// Other charge types pass, and an unspecified resolution is not a violation.
type resolutionRule struct {
	plain
	id         validation.RuleIdentifier
	chargeType domain.ChargeType
	allowed    []domain.Resolution
	actualType domain.ChargeType
	resolution domain.Resolution
}

func (r *resolutionRule) Identifier() validation.RuleIdentifier { return r.id }

func (r *resolutionRule) IsValid() bool {
	if r.actualType != r.chargeType {
		return true
	}
	if r.resolution == domain.ResolutionUnknown {
		return true
	}
	return slices.Contains(r.allowed, r.resolution)
}

// NewResolutionTariffRule allows tariffs PT15M, PT1H and P1D.
func NewResolutionTariffRule(t domain.ChargeType, resolution domain.Resolution) validation.Rule {
	return &resolutionRule{
		id:         validation.ResolutionTariffValidation,
		chargeType: domain.ChargeTypeTariff,
		allowed:    []domain.Resolution{domain.ResolutionPT15M, domain.ResolutionPT1H, domain.ResolutionP1D},
		actualType: t,
		resolution: resolution,
	}
}

// NewResolutionFeeRule allows fees P1M only.
func NewResolutionFeeRule(t domain.ChargeType, resolution domain.Resolution) validation.Rule {
	return &resolutionRule{
		id:         validation.ResolutionFeeValidation,
		chargeType: domain.ChargeTypeFee,
		allowed:    []domain.Resolution{domain.ResolutionP1M},
		actualType: t,
		resolution: resolution,
	}
}

// NewResolutionSubscriptionRule allows subscriptions P1M only.
func NewResolutionSubscriptionRule(t domain.ChargeType, resolution domain.Resolution) validation.Rule {
	return &resolutionRule{
		id:         validation.ResolutionSubscriptionValidation,
		chargeType: domain.ChargeTypeSubscription,
		allowed:    []domain.Resolution{domain.ResolutionP1M},
		actualType: t,
		resolution: resolution,
	}
}
