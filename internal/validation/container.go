package validation

// RuleContainer binds a rule to the scope it was evaluated in: either the
// whole document or a single operation of it.
type RuleContainer struct {
	rule        Rule
	operationID string
	scoped      bool
}

// NewDocumentRuleContainer wraps a rule that applies to the whole document.
func NewDocumentRuleContainer(rule Rule) RuleContainer {
	if rule == nil {
		panic("validation: nil rule in document container")
	}
	return RuleContainer{rule: rule}
}

// NewOperationRuleContainer wraps a rule evaluated against one operation.
func NewOperationRuleContainer(rule Rule, operationID string) RuleContainer {
	if rule == nil {
		panic("validation: nil rule in operation container")
	}
	return RuleContainer{rule: rule, operationID: operationID, scoped: true}
}

// Rule returns the wrapped rule.
func (c RuleContainer) Rule() Rule { return c.rule }

// OperationID returns the operation id and whether the container is operation-scoped.
func (c RuleContainer) OperationID() (string, bool) {
	return c.operationID, c.scoped
}
