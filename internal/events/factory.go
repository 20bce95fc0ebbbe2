package events

import (
	"errors"
	"time"

	"github.com/google/uuid"

	"charges/internal/domain"
	"charges/internal/validation"
)

// ErrResultNotFailed is returned when a rejection is built from a successful result.
var ErrResultNotFailed = errors.New("events: rejection requires a failed validation result")

// Factory builds events stamped with the clock's time.
type Factory struct {
	now func() time.Time
}

// NewFactory returns a Factory using now for event timestamps.
func NewFactory(now func() time.Time) *Factory {
	return &Factory{now: now}
}

func (f *Factory) envelope(t Type, key string, payload any) Event {
	return Event{
		ID:         uuid.New(),
		Type:       t,
		Key:        key,
		OccurredAt: f.now().UTC(),
		Payload:    payload,
	}
}

// ChargeInformationAccepted confirms an accepted charge information command.
func (f *Factory) ChargeInformationAccepted(cmd *domain.ChargeInformationCommand) Event {
	return f.envelope(TypeChargeInformationAccepted, cmd.Document.Sender.MarketParticipantID, Accepted{
		Document:     cmd.Document,
		OperationIDs: informationOperationIDs(cmd),
	})
}

// ChargeInformationRejected lists every violation of a rejected charge information command.
func (f *Factory) ChargeInformationRejected(cmd *domain.ChargeInformationCommand, result *validation.Result) (Event, error) {
	if result == nil || !result.IsFailed() {
		return Event{}, ErrResultNotFailed
	}
	return f.envelope(TypeChargeInformationRejected, cmd.Document.Sender.MarketParticipantID, Rejected{
		Document:     cmd.Document,
		OperationIDs: informationOperationIDs(cmd),
		Errors:       validation.ValidationErrors(result),
	}), nil
}

// ChargePriceAccepted confirms an accepted price command.
func (f *Factory) ChargePriceAccepted(cmd *domain.ChargePriceCommand) Event {
	return f.envelope(TypeChargePriceAccepted, cmd.Document.Sender.MarketParticipantID, Accepted{
		Document:     cmd.Document,
		OperationIDs: priceOperationIDs(cmd),
	})
}

// ChargePriceRejected lists every violation of a rejected price command.
func (f *Factory) ChargePriceRejected(cmd *domain.ChargePriceCommand, result *validation.Result) (Event, error) {
	if result == nil || !result.IsFailed() {
		return Event{}, ErrResultNotFailed
	}
	return f.envelope(TypeChargePriceRejected, cmd.Document.Sender.MarketParticipantID, Rejected{
		Document:     cmd.Document,
		OperationIDs: priceOperationIDs(cmd),
		Errors:       validation.ValidationErrors(result),
	}), nil
}

// ChargePricesUpdated announces the new prices of one operation.
func (f *Factory) ChargePricesUpdated(op domain.ChargePriceOperation) Event {
	return f.envelope(TypeChargePricesUpdated, op.ChargeOwner+"/"+op.ChargeID, PricesUpdated{
		ChargeID:            op.ChargeID,
		ChargeOwner:         op.ChargeOwner,
		ChargeType:          op.Type,
		Resolution:          op.Resolution,
		PointsStartInterval: op.PointsStartInterval,
		PointsEndInterval:   op.PointsEndInterval,
		Points:              op.Points,
	})
}

func informationOperationIDs(cmd *domain.ChargeInformationCommand) []string {
	ids := make([]string, 0, len(cmd.Operations))
	for i := range cmd.Operations {
		ids = append(ids, cmd.Operations[i].OperationID)
	}
	return ids
}

func priceOperationIDs(cmd *domain.ChargePriceCommand) []string {
	ids := make([]string, 0, len(cmd.Operations))
	for i := range cmd.Operations {
		ids = append(ids, cmd.Operations[i].OperationID)
	}
	return ids
}
