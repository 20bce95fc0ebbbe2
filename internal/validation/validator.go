package validation

import "context"

// InputRulesFactory builds the I/O-free rules for a command.
type InputRulesFactory[T any] interface {
	CreateRules(item T) (*RuleSet, error)
}

// BusinessRulesFactory builds the rules that need repository lookups.
type BusinessRulesFactory[T any] interface {
	CreateRules(ctx context.Context, item T) (*RuleSet, error)
}

// Validator runs the two validation phases for commands of type T.
//
// The phases are independent. Callers that want to skip business validation
// after an input failure must check the input result themselves.
type Validator[T any] struct {
	input    InputRulesFactory[T]
	business BusinessRulesFactory[T]
}

// NewValidator creates a Validator from its two rule factories.
func NewValidator[T any](input InputRulesFactory[T], business BusinessRulesFactory[T]) *Validator[T] {
	return &Validator[T]{input: input, business: business}
}

// InputValidate runs the cheap, static validation phase.
func (v *Validator[T]) InputValidate(item T) (*Result, error) {
	rules, err := v.input.CreateRules(item)
	if err != nil {
		return nil, err
	}
	return rules.Validate(), nil
}

// BusinessValidate runs the validation phase that depends on stored data.
func (v *Validator[T]) BusinessValidate(ctx context.Context, item T) (*Result, error) {
	rules, err := v.business.CreateRules(ctx, item)
	if err != nil {
		return nil, err
	}
	return rules.Validate(), nil
}
