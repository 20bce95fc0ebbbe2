// Package noop provides an event publisher that only logs.
package noop

import (
	"context"

	"go.uber.org/zap"

	"charges/internal/events"
	"charges/internal/port"
)

type publisher struct {
	logger *zap.Logger
}

// NewPublisher creates an EventPublisher that logs events instead of sending them.
func NewPublisher(logger *zap.Logger) port.EventPublisher {
	return &publisher{logger: logger}
}

func (p *publisher) Publish(_ context.Context, event events.Event) error {
	p.logger.Info("event not published, messaging disabled",
		zap.String("event_type", string(event.Type)),
		zap.String("event_id", event.ID.String()),
		zap.String("key", event.Key),
	)
	return nil
}
