package domain

import "time"

// DocumentType is the type code of a submitted document.
type DocumentType string

const (
	DocumentTypeRequestUpdateChargeInformation DocumentType = "D10"
	DocumentTypeRequestChangeOfPriceList       DocumentType = "D18"
)

// BusinessReasonCode is the business process a document belongs to.
type BusinessReasonCode string

const (
	BusinessReasonCodeUpdateChargeInformation BusinessReasonCode = "D18"
	BusinessReasonCodeUpdateChargePrices      BusinessReasonCode = "D08"
)

// OperationKind tells what a charge information operation asks for.
type OperationKind string

const (
	OperationKindCreate OperationKind = "create"
	OperationKindUpdate OperationKind = "update"
	OperationKindStop   OperationKind = "stop"
)

// MarketParticipantRef identifies the sender or recipient of a document.
type MarketParticipantRef struct {
	MarketParticipantID string                `json:"market_participant_id"`
	BusinessProcessRole MarketParticipantRole `json:"business_process_role"`
}

// Document is the envelope shared by all operations of a command.
type Document struct {
	ID                 string               `json:"id"`
	Type               DocumentType         `json:"type"`
	BusinessReasonCode BusinessReasonCode   `json:"business_reason_code"`
	RequestDate        time.Time            `json:"request_date"`
	CreatedDateTime    time.Time            `json:"created_date_time"`
	Sender             MarketParticipantRef `json:"sender"`
	Recipient          MarketParticipantRef `json:"recipient"`
}

// ChargeInformationOperation creates, updates or stops one charge.
type ChargeInformationOperation struct {
	OperationID          string            `json:"operation_id"`
	Kind                 OperationKind     `json:"kind"`
	ChargeID             string            `json:"charge_id"`
	ChargeOwner          string            `json:"charge_owner"`
	Type                 ChargeType        `json:"type"`
	Name                 string            `json:"name"`
	Description          string            `json:"description"`
	Resolution           Resolution        `json:"resolution"`
	TaxIndicator         bool              `json:"tax_indicator"`
	TransparentInvoicing bool              `json:"transparent_invoicing"`
	VatClassification    VatClassification `json:"vat_classification"`
	StartDateTime        time.Time         `json:"start_date_time"`
	EndDateTime          *time.Time        `json:"end_date_time,omitempty"`
}

// Period returns the charge period described by the operation.
func (o *ChargeInformationOperation) Period() ChargePeriod {
	end := EndOfTime
	if o.EndDateTime != nil {
		end = *o.EndDateTime
	}
	return ChargePeriod{
		Name:                 o.Name,
		Description:          o.Description,
		VatClassification:    o.VatClassification,
		TransparentInvoicing: o.TransparentInvoicing,
		StartDateTime:        o.StartDateTime,
		EndDateTime:          end,
	}
}

// ChargePriceOperation submits a price series for one charge.
type ChargePriceOperation struct {
	OperationID         string     `json:"operation_id"`
	ChargeID            string     `json:"charge_id"`
	ChargeOwner         string     `json:"charge_owner"`
	Type                ChargeType `json:"type"`
	Resolution          Resolution `json:"resolution"`
	StartDateTime       time.Time  `json:"start_date_time"`
	PointsStartInterval time.Time  `json:"points_start_interval"`
	PointsEndInterval   time.Time  `json:"points_end_interval"`
	Points              []Point    `json:"points"`
}

// ChargeInformationCommand is a document with charge information operations.
type ChargeInformationCommand struct {
	Document   Document                     `json:"document"`
	Operations []ChargeInformationOperation `json:"operations"`
}

// ChargePriceCommand is a document with price operations.
type ChargePriceCommand struct {
	Document   Document               `json:"document"`
	Operations []ChargePriceOperation `json:"operations"`
}
