package noop_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"charges/internal/events"
	"charges/internal/messaging/noop"
)

func TestPublisher_LogsEvent(t *testing.T) {
	core, logs := observer.New(zapcore.InfoLevel)
	p := noop.NewPublisher(zap.New(core))

	err := p.Publish(context.Background(), events.Event{
		ID:   uuid.New(),
		Type: events.TypeChargePriceAccepted,
		Key:  "5790000000001",
	})

	require.NoError(t, err)
	require.Equal(t, 1, logs.Len())
	assert.Equal(t, "charge_price.accepted", logs.All()[0].ContextMap()["event_type"])
}
