package validation

// RuleSet is an ordered collection of rule containers.
type RuleSet struct {
	rules []RuleContainer
}

// NewRuleSet returns a set holding containers in the given order.
func NewRuleSet(containers ...RuleContainer) *RuleSet {
	rs := &RuleSet{}
	rs.Append(containers...)
	return rs
}

// Append adds containers to the end of the set.
func (s *RuleSet) Append(containers ...RuleContainer) {
	s.rules = append(s.rules, containers...)
}

// Concat appends every container of other.
func (s *RuleSet) Concat(other *RuleSet) {
	if other == nil {
		return
	}
	s.rules = append(s.rules, other.rules...)
}

// Rules returns the containers in insertion order.
func (s *RuleSet) Rules() []RuleContainer {
	out := make([]RuleContainer, len(s.rules))
	copy(out, s.rules)
	return out
}

// Len returns the number of containers.
func (s *RuleSet) Len() int { return len(s.rules) }

// Validate evaluates every rule once, in order, and reports all failures.
// No rule is skipped because an earlier one failed.
func (s *RuleSet) Validate() *Result {
	var failed []RuleContainer
	for _, c := range s.rules {
		if !c.Rule().IsValid() {
			failed = append(failed, c)
		}
	}
	if len(failed) == 0 {
		return Success()
	}
	return &Result{invalidRules: failed}
}
