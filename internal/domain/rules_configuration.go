package domain

// Interval is a closed integer interval.
type Interval struct {
	Start int `json:"start"`
	End   int `json:"end"`
}

// StartDateValidationRuleConfiguration bounds how far from today a charge may take effect.
type StartDateValidationRuleConfiguration struct {
	ValidIntervalFromNowInDays Interval `json:"valid_interval_from_now_in_days"`
}

// RulesConfiguration holds the tunable parameters of the validation rules.
type RulesConfiguration struct {
	StartDateValidationRuleConfiguration StartDateValidationRuleConfiguration `json:"start_date_validation_rule_configuration"`
}
