package port

import (
	"context"

	"charges/internal/events"
)

// EventPublisher hands charge events to the downstream message hub.
type EventPublisher interface {
	Publish(ctx context.Context, event events.Event) error
}
