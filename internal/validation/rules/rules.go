// Package rules holds the concrete charge validation rules. Each constructor
// captures the inputs its rule needs; evaluation never performs I/O.
package rules

import (
	"unicode/utf8"

	"charges/internal/validation"
)

// Length limits of free-text and id fields.
const (
	ChargeIDMaxLength          = 10
	ChargeOperationIDMaxLength = 36
	ChargeNameMaxLength        = 132
	ChargeDescriptionMaxLength = 2048
)

// plain provides the TriggeredBy method of rules without a locator.
type plain struct{}

func (plain) TriggeredBy() (string, bool) { return "", false }

// fieldRule checks a single captured value.
type fieldRule struct {
	plain
	id    validation.RuleIdentifier
	valid bool
}

func (r fieldRule) IsValid() bool                         { return r.valid }
func (r fieldRule) Identifier() validation.RuleIdentifier { return r.id }

func required(id validation.RuleIdentifier, value string) validation.Rule {
	return fieldRule{id: id, valid: value != ""}
}

func maxLength(id validation.RuleIdentifier, value string, limit int) validation.Rule {
	return fieldRule{id: id, valid: utf8.RuneCountInString(value) <= limit}
}
