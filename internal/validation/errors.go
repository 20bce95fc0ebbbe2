package validation

import "errors"

var (
	// ErrValidRuleInFailure is returned when a failure result is built from a passing rule.
	ErrValidRuleInFailure = errors.New("validation: failure result contains a valid rule")
	// ErrEmptyFailure is returned when a failure result is built without any failed rule.
	ErrEmptyFailure = errors.New("validation: failure result without failed rules")
	// ErrUnsupportedOperationKind is returned by factories for operation kinds they cannot build rules for.
	ErrUnsupportedOperationKind = errors.New("validation: unsupported operation kind")
	// ErrUnknownResolution is returned when a rule depends on a resolution outside the known set.
	ErrUnknownResolution = errors.New("validation: unknown resolution")
)
