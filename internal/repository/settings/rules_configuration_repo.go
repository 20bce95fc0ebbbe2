// Package settings serves rule parameters from the loaded configuration.
package settings

import (
	"context"

	"charges/internal/config"
	"charges/internal/domain"
	"charges/internal/port"
)

type rulesConfigurationRepo struct {
	cfg domain.RulesConfiguration
}

// NewRulesConfigurationRepo creates a RulesConfigurationRepository backed by cfg.
func NewRulesConfigurationRepo(cfg config.RulesConfig) port.RulesConfigurationRepository {
	return &rulesConfigurationRepo{cfg: domain.RulesConfiguration{
		StartDateValidationRuleConfiguration: domain.StartDateValidationRuleConfiguration{
			ValidIntervalFromNowInDays: domain.Interval{Start: cfg.StartDateFirst, End: cfg.StartDateLast},
		},
	}}
}

func (r *rulesConfigurationRepo) Get(ctx context.Context) (domain.RulesConfiguration, error) {
	if err := ctx.Err(); err != nil {
		return domain.RulesConfiguration{}, err
	}
	return r.cfg, nil
}
