// Package factory assembles the rule sets for charge commands. Business rule
// sets are described by registries of rule specs: each spec says when it
// applies to an operation's context and how to build its rule.
package factory

import (
	"charges/internal/calendar"
	"charges/internal/domain"
	"charges/internal/validation"
	"charges/internal/validation/rules"
)

// ruleContext is everything a business rule may read, fetched before any rule is built.
type ruleContext[T any] struct {
	config domain.RulesConfiguration
	zone   *calendar.ZonedDateTimeService
	sender *domain.MarketParticipant
	charge *domain.Charge
	op     T
}

type ruleSpec[T any] struct {
	applies func(*ruleContext[T]) bool
	build   func(*ruleContext[T]) validation.Rule
}

func always[T any](build func(*ruleContext[T]) validation.Rule) ruleSpec[T] {
	return ruleSpec[T]{applies: func(*ruleContext[T]) bool { return true }, build: build}
}

func whenChargeExists[T any](build func(*ruleContext[T]) validation.Rule) ruleSpec[T] {
	return ruleSpec[T]{
		applies: func(c *ruleContext[T]) bool { return c.charge != nil },
		build:   build,
	}
}

func whenTariffExists[T any](build func(*ruleContext[T]) validation.Rule) ruleSpec[T] {
	return ruleSpec[T]{
		applies: func(c *ruleContext[T]) bool {
			return c.charge != nil && c.charge.Type == domain.ChargeTypeTariff
		},
		build: build,
	}
}

// evaluate builds the applicable rules of specs, in registry order, scoped to operationID.
func evaluate[T any](specs []ruleSpec[T], c *ruleContext[T], operationID string) *validation.RuleSet {
	rs := validation.NewRuleSet()
	for _, s := range specs {
		if s.applies(c) {
			rs.Append(validation.NewOperationRuleContainer(s.build(c), operationID))
		}
	}
	return rs
}

type (
	informationContext = ruleContext[domain.ChargeInformationOperation]
	priceContext       = ruleContext[domain.ChargePriceOperation]
)

var (
	informationStartDate = func(c *informationContext) validation.Rule {
		return rules.NewStartDateValidationRule(c.op.StartDateTime, c.config.StartDateValidationRuleConfiguration, c.zone)
	}
	informationChargeMustExist = func(c *informationContext) validation.Rule {
		return rules.NewChargeMustExistRule(c.charge)
	}
	informationEffectiveBeforeStop = func(c *informationContext) validation.Rule {
		return rules.NewUpdateChargeMustHaveEffectiveDateBeforeOrOnStopDateRule(c.op.StartDateTime, *c.charge)
	}
)

var createRules = []ruleSpec[domain.ChargeInformationOperation]{
	always(informationStartDate),
	always(func(c *informationContext) validation.Rule {
		return rules.NewChargeMustNotAlreadyExistRule(c.charge)
	}),
}

var updateRules = []ruleSpec[domain.ChargeInformationOperation]{
	always(informationStartDate),
	always(informationChargeMustExist),
	whenTariffExists(func(c *informationContext) validation.Rule {
		return rules.NewChangingTariffTaxValueNotAllowedRule(c.op, *c.charge)
	}),
	whenTariffExists(func(c *informationContext) validation.Rule {
		return rules.NewChangingTariffVatValueNotAllowedRule(c.op, *c.charge)
	}),
	whenChargeExists(informationEffectiveBeforeStop),
	whenChargeExists(func(c *informationContext) validation.Rule {
		return rules.NewChargeResolutionCanNotBeUpdatedRule(c.op.Resolution, *c.charge)
	}),
}

var stopRules = []ruleSpec[domain.ChargeInformationOperation]{
	always(informationStartDate),
	always(informationChargeMustExist),
	whenChargeExists(informationEffectiveBeforeStop),
}

var priceRules = []ruleSpec[domain.ChargePriceOperation]{
	always(func(c *priceContext) validation.Rule {
		return rules.NewStartDateValidationRule(c.op.StartDateTime, c.config.StartDateValidationRuleConfiguration, c.zone)
	}),
	always(func(c *priceContext) validation.Rule {
		return rules.NewChargeMustExistRule(c.charge)
	}),
	whenChargeExists(func(c *priceContext) validation.Rule {
		return rules.NewUpdateChargeMustHaveEffectiveDateBeforeOrOnStopDateRule(c.op.StartDateTime, *c.charge)
	}),
	whenChargeExists(func(c *priceContext) validation.Rule {
		return rules.NewChargeResolutionCanNotBeUpdatedRule(c.op.Resolution, *c.charge)
	}),
}

func informationRegistry(kind domain.OperationKind) ([]ruleSpec[domain.ChargeInformationOperation], bool) {
	switch kind {
	case domain.OperationKindCreate:
		return createRules, true
	case domain.OperationKindUpdate:
		return updateRules, true
	case domain.OperationKindStop:
		return stopRules, true
	default:
		return nil, false
	}
}
