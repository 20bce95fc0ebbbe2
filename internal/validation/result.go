package validation

import "fmt"

// Result is the outcome of evaluating a rule set.
type Result struct {
	invalidRules []RuleContainer
}

// Success returns a result without failed rules.
func Success() *Result {
	return &Result{}
}

// NewFailure returns a failed result. Every container must hold a rule that is
// currently invalid; anything else is a programming error.
func NewFailure(invalidRules []RuleContainer) (*Result, error) {
	if len(invalidRules) == 0 {
		return nil, ErrEmptyFailure
	}
	for _, c := range invalidRules {
		if c.Rule().IsValid() {
			return nil, fmt.Errorf("%w: %s", ErrValidRuleInFailure, c.Rule().Identifier())
		}
	}
	rules := make([]RuleContainer, len(invalidRules))
	copy(rules, invalidRules)
	return &Result{invalidRules: rules}, nil
}

// IsFailed reports whether any rule failed.
func (r *Result) IsFailed() bool { return len(r.invalidRules) > 0 }

// InvalidRules returns the failed containers in evaluation order.
func (r *Result) InvalidRules() []RuleContainer {
	out := make([]RuleContainer, len(r.invalidRules))
	copy(out, r.invalidRules)
	return out
}
