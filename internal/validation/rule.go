// Package validation is the charge validation engine: rules, rule sets,
// results and the two-phase validator that runs them.
package validation

// Rule is a named predicate over already-fetched data.
//
// IsValid is pure: it performs no I/O and returns the same answer on every call.
// TriggeredBy optionally locates the element of a repeated structure that made
// the rule fail, e.g. the position of a price point.
type Rule interface {
	IsValid() bool
	Identifier() RuleIdentifier
	TriggeredBy() (string, bool)
}
