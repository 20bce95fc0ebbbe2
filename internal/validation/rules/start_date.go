package rules

import (
	"time"

	"charges/internal/calendar"
	"charges/internal/domain"
	"charges/internal/validation"
)

// startDateRule accepts effective dates inside [periodStart, periodEnd).
type startDateRule struct {
	plain
	start       time.Time
	periodStart time.Time
	periodEnd   time.Time
}

// NewStartDateValidationRule anchors the allowed window on today's market date.
// The window runs from midnight ValidIntervalFromNowInDays.Start days from today
// to midnight End+1 days from today, exclusive, so the End day itself is allowed.
func NewStartDateValidationRule(
	start time.Time,
	cfg domain.StartDateValidationRuleConfiguration,
	zone *calendar.ZonedDateTimeService,
) validation.Rule {
	if zone == nil {
		panic("rules: nil zoned date time service")
	}
	today := zone.Today()
	interval := cfg.ValidIntervalFromNowInDays
	return &startDateRule{
		start:       start,
		periodStart: zone.AddDays(today, interval.Start).UTC(),
		periodEnd:   zone.AddDays(today, interval.End+1).UTC(),
	}
}

func (r *startDateRule) Identifier() validation.RuleIdentifier {
	return validation.StartDateValidation
}

func (r *startDateRule) IsValid() bool {
	return !r.start.Before(r.periodStart) && r.start.Before(r.periodEnd)
}
