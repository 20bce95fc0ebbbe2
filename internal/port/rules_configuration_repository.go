package port

import (
	"context"

	"charges/internal/domain"
)

// RulesConfigurationRepository serves the tunable parameters of the validation rules.
type RulesConfigurationRepository interface {
	Get(ctx context.Context) (domain.RulesConfiguration, error)
}
