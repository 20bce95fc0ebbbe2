// Package events builds the notifications sent to the message hub when charge
// commands are accepted or rejected, and when prices change.
package events

import (
	"time"

	"github.com/google/uuid"

	"charges/internal/domain"
	"charges/internal/validation"
)

// Type identifies the kind of a charge event.
type Type string

const (
	TypeChargeInformationAccepted Type = "charge_information.accepted"
	TypeChargeInformationRejected Type = "charge_information.rejected"
	TypeChargePriceAccepted       Type = "charge_price.accepted"
	TypeChargePriceRejected       Type = "charge_price.rejected"
	TypeChargePricesUpdated       Type = "charge_prices.updated"
)

// Event is the envelope published to the message hub.
type Event struct {
	ID         uuid.UUID `json:"id"`
	Type       Type      `json:"type"`
	Key        string    `json:"key"`
	OccurredAt time.Time `json:"occurred_at"`
	Payload    any       `json:"payload"`
}

// Accepted confirms the operations of a document to its sender.
type Accepted struct {
	Document     domain.Document `json:"document"`
	OperationIDs []string        `json:"operation_ids"`
}

// Rejected tells the sender every rule its document violated.
type Rejected struct {
	Document     domain.Document              `json:"document"`
	OperationIDs []string                     `json:"operation_ids"`
	Errors       []validation.ValidationError `json:"errors"`
}

// PricesUpdated notifies recipients of a charge's new price series.
type PricesUpdated struct {
	ChargeID            string            `json:"charge_id"`
	ChargeOwner         string            `json:"charge_owner"`
	ChargeType          domain.ChargeType `json:"charge_type"`
	Resolution          domain.Resolution `json:"resolution"`
	PointsStartInterval time.Time         `json:"points_start_interval"`
	PointsEndInterval   time.Time         `json:"points_end_interval"`
	Points              []domain.Point    `json:"points"`
}
