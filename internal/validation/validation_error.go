package validation

// ValidationError is one rejection reason: which rule failed, in which
// operation, and optionally which element of the operation triggered it.
type ValidationError struct {
	RuleID      RuleIdentifier `json:"rule_id"`
	OperationID *string        `json:"operation_id,omitempty"`
	TriggeredBy *string        `json:"triggered_by,omitempty"`
}

// NewValidationError maps a failed container to its ValidationError.
func NewValidationError(c RuleContainer) ValidationError {
	ve := ValidationError{RuleID: c.Rule().Identifier()}
	opID, scoped := c.OperationID()
	if !scoped {
		return ve
	}
	ve.OperationID = &opID
	if locator, ok := c.Rule().TriggeredBy(); ok {
		ve.TriggeredBy = &locator
	}
	return ve
}

// ValidationErrors maps every failed container of r, preserving order.
func ValidationErrors(r *Result) []ValidationError {
	if r == nil || !r.IsFailed() {
		return nil
	}
	out := make([]ValidationError, 0, len(r.invalidRules))
	for _, c := range r.invalidRules {
		out = append(out, NewValidationError(c))
	}
	return out
}
