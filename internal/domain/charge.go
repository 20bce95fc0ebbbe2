package domain

import (
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// EndOfTime is the end date of open-ended charge periods.
var EndOfTime = time.Date(9999, time.December, 31, 23, 59, 59, 0, time.UTC)

// ChargeType classifies a charge.
type ChargeType int

const (
	ChargeTypeUnknown      ChargeType = 0
	ChargeTypeSubscription ChargeType = 1
	ChargeTypeFee          ChargeType = 2
	ChargeTypeTariff       ChargeType = 3
)

var chargeTypeNames = map[ChargeType]string{
	ChargeTypeUnknown:      "Unknown",
	ChargeTypeSubscription: "D01",
	ChargeTypeFee:          "D02",
	ChargeTypeTariff:       "D03",
}

func (t ChargeType) String() string {
	if s, ok := chargeTypeNames[t]; ok {
		return s
	}
	return "Unknown"
}

// IsKnown reports whether t is one of the defined charge types.
func (t ChargeType) IsKnown() bool {
	return t == ChargeTypeSubscription || t == ChargeTypeFee || t == ChargeTypeTariff
}

// Resolution is the time span covered by a single price point.
type Resolution int

const (
	ResolutionUnknown Resolution = 0
	ResolutionPT15M   Resolution = 1
	ResolutionPT1H    Resolution = 2
	ResolutionP1D     Resolution = 3
	ResolutionP1M     Resolution = 4
)

var resolutionNames = map[Resolution]string{
	ResolutionUnknown: "Unknown",
	ResolutionPT15M:   "PT15M",
	ResolutionPT1H:    "PT1H",
	ResolutionP1D:     "P1D",
	ResolutionP1M:     "P1M",
}

func (r Resolution) String() string {
	if s, ok := resolutionNames[r]; ok {
		return s
	}
	return "Unknown"
}

// VatClassification is the VAT class of a charge period.
type VatClassification int

const (
	VatClassificationUnknown VatClassification = 0
	VatClassificationNoVat   VatClassification = 1
	VatClassificationVat25   VatClassification = 2
)

// IsKnown reports whether v is one of the defined VAT classes.
func (v VatClassification) IsKnown() bool {
	return v == VatClassificationNoVat || v == VatClassificationVat25
}

// ChargeIdentifier is the natural key of a charge.
type ChargeIdentifier struct {
	SenderProvidedChargeID string
	OwnerID                uuid.UUID
	Type                   ChargeType
}

// ChargePeriod is one time-bounded validity period of a charge.
type ChargePeriod struct {
	Name                 string            `db:"name" json:"name"`
	Description          string            `db:"description" json:"description"`
	VatClassification    VatClassification `db:"vat_classification" json:"vat_classification"`
	TransparentInvoicing bool              `db:"transparent_invoicing" json:"transparent_invoicing"`
	StartDateTime        time.Time         `db:"start_date_time" json:"start_date_time"`
	EndDateTime          time.Time         `db:"end_date_time" json:"end_date_time"`
}

// Point is a single price point of a price series.
type Point struct {
	Position int             `db:"position" json:"position"`
	Price    decimal.Decimal `db:"price" json:"price"`
	Time     time.Time       `db:"time" json:"time"`
}

// Charge is a tariff, fee or subscription owned by a market participant.
type Charge struct {
	ID                     uuid.UUID      `db:"id" json:"id"`
	SenderProvidedChargeID string         `db:"sender_provided_charge_id" json:"charge_id"`
	OwnerID                uuid.UUID      `db:"owner_id" json:"owner_id"`
	Type                   ChargeType     `db:"type" json:"type"`
	Resolution             Resolution     `db:"resolution" json:"resolution"`
	TaxIndicator           bool           `db:"tax_indicator" json:"tax_indicator"`
	Version                int            `db:"version" json:"-"`
	Periods                []ChargePeriod `db:"-" json:"periods"`
	Points                 []Point        `db:"-" json:"points"`
}

// NewCharge creates a charge with a single initial period.
func NewCharge(id ChargeIdentifier, resolution Resolution, taxIndicator bool, period ChargePeriod) *Charge {
	return &Charge{
		ID:                     uuid.New(),
		SenderProvidedChargeID: id.SenderProvidedChargeID,
		OwnerID:                id.OwnerID,
		Type:                   id.Type,
		Resolution:             resolution,
		TaxIndicator:           taxIndicator,
		Periods:                []ChargePeriod{period},
	}
}

// Identifier returns the natural key of the charge.
func (c *Charge) Identifier() ChargeIdentifier {
	return ChargeIdentifier{
		SenderProvidedChargeID: c.SenderProvidedChargeID,
		OwnerID:                c.OwnerID,
		Type:                   c.Type,
	}
}

// Clone returns a copy of c that shares no history with it.
func (c *Charge) Clone() *Charge {
	out := *c
	out.Periods = append([]ChargePeriod(nil), c.Periods...)
	out.Points = append([]Point(nil), c.Points...)
	return &out
}

// LastPeriod returns the period with the latest end date.
func (c *Charge) LastPeriod() (ChargePeriod, bool) {
	if len(c.Periods) == 0 {
		return ChargePeriod{}, false
	}
	last := c.Periods[0]
	for _, p := range c.Periods[1:] {
		if p.EndDateTime.After(last.EndDateTime) {
			last = p
		}
	}
	return last, true
}

// Update replaces the charge's history from period.StartDateTime onwards with period.
// An update taking effect before the stop date of a stopped charge keeps the
// stop. One taking effect on the stop date continues the charge from there.
func (c *Charge) Update(period ChargePeriod) {
	if last, ok := c.LastPeriod(); ok && last.EndDateTime.Before(EndOfTime) &&
		period.StartDateTime.Before(last.EndDateTime) && last.EndDateTime.Before(period.EndDateTime) {
		period.EndDateTime = last.EndDateTime
	}
	kept := make([]ChargePeriod, 0, len(c.Periods)+1)
	for _, p := range c.Periods {
		if !p.StartDateTime.Before(period.StartDateTime) {
			continue
		}
		if p.EndDateTime.After(period.StartDateTime) {
			p.EndDateTime = period.StartDateTime
		}
		kept = append(kept, p)
	}
	c.Periods = append(kept, period)
	c.sortPeriods()
}

// Stop ends the charge at stopDate. Periods starting on or after stopDate are removed.
func (c *Charge) Stop(stopDate time.Time) {
	kept := make([]ChargePeriod, 0, len(c.Periods))
	for _, p := range c.Periods {
		if !p.StartDateTime.Before(stopDate) {
			continue
		}
		if p.EndDateTime.After(stopDate) {
			p.EndDateTime = stopDate
		}
		kept = append(kept, p)
	}
	c.Periods = kept
	c.sortPeriods()

	points := c.Points[:0]
	for _, p := range c.Points {
		if p.Time.Before(stopDate) {
			points = append(points, p)
		}
	}
	c.Points = points
}

// UpdatePrices replaces all points in [start, end) with points.
func (c *Charge) UpdatePrices(start, end time.Time, points []Point) {
	kept := make([]Point, 0, len(c.Points)+len(points))
	for _, p := range c.Points {
		if !p.Time.Before(start) && p.Time.Before(end) {
			continue
		}
		kept = append(kept, p)
	}
	kept = append(kept, points...)
	sort.SliceStable(kept, func(i, j int) bool { return kept[i].Time.Before(kept[j].Time) })
	c.Points = kept
}

func (c *Charge) sortPeriods() {
	sort.SliceStable(c.Periods, func(i, j int) bool {
		return c.Periods[i].StartDateTime.Before(c.Periods[j].StartDateTime)
	})
}
