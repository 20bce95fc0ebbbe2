package domain_test

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"charges/internal/domain"
)

func day(d int) time.Time {
	return time.Date(2020, 1, d, 0, 0, 0, 0, time.UTC)
}

func newTariff() *domain.Charge {
	return domain.NewCharge(domain.ChargeIdentifier{
		SenderProvidedChargeID: "T-1",
		OwnerID:                uuid.New(),
		Type:                   domain.ChargeTypeTariff,
	}, domain.ResolutionPT1H, true, domain.ChargePeriod{
		Name:          "first",
		StartDateTime: day(1),
		EndDateTime:   domain.EndOfTime,
	})
}

func TestNewCharge(t *testing.T) {
	c := newTariff()

	assert.NotEqual(t, uuid.Nil, c.ID)
	assert.Equal(t, "T-1", c.Identifier().SenderProvidedChargeID)
	require.Len(t, c.Periods, 1)
}

func TestCharge_Update_TruncatesHistory(t *testing.T) {
	c := newTariff()
	c.Update(domain.ChargePeriod{Name: "second", StartDateTime: day(10), EndDateTime: domain.EndOfTime})
	c.Update(domain.ChargePeriod{Name: "third", StartDateTime: day(20), EndDateTime: domain.EndOfTime})
	c.Update(domain.ChargePeriod{Name: "replacement", StartDateTime: day(15), EndDateTime: domain.EndOfTime})

	require.Len(t, c.Periods, 3)
	assert.Equal(t, "first", c.Periods[0].Name)
	assert.Equal(t, day(10), c.Periods[0].EndDateTime)
	assert.Equal(t, "second", c.Periods[1].Name)
	assert.Equal(t, day(15), c.Periods[1].EndDateTime)
	assert.Equal(t, "replacement", c.Periods[2].Name)

	last, ok := c.LastPeriod()
	require.True(t, ok)
	assert.Equal(t, "replacement", last.Name)
}

func TestCharge_Update_KeepsStopDate(t *testing.T) {
	c := newTariff()
	c.Stop(day(20))
	c.Update(domain.ChargePeriod{Name: "renamed", StartDateTime: day(10), EndDateTime: domain.EndOfTime})

	require.Len(t, c.Periods, 2)
	assert.Equal(t, day(10), c.Periods[0].EndDateTime)
	last, ok := c.LastPeriod()
	require.True(t, ok)
	assert.Equal(t, "renamed", last.Name)
	assert.Equal(t, day(20), last.EndDateTime)
}

func TestCharge_Update_OnStopDateContinuesCharge(t *testing.T) {
	c := newTariff()
	c.Stop(day(20))
	c.Update(domain.ChargePeriod{Name: "continued", StartDateTime: day(20), EndDateTime: domain.EndOfTime})

	require.Len(t, c.Periods, 2)
	last, ok := c.LastPeriod()
	require.True(t, ok)
	assert.Equal(t, "continued", last.Name)
	assert.Equal(t, domain.EndOfTime, last.EndDateTime)
}

func TestCharge_Stop(t *testing.T) {
	c := newTariff()
	c.Update(domain.ChargePeriod{Name: "second", StartDateTime: day(10), EndDateTime: domain.EndOfTime})
	c.Points = []domain.Point{
		{Position: 1, Time: day(5), Price: decimal.NewFromInt(1)},
		{Position: 1, Time: day(8), Price: decimal.NewFromInt(2)},
	}

	c.Stop(day(8))

	require.Len(t, c.Periods, 1)
	assert.Equal(t, day(8), c.Periods[0].EndDateTime)
	require.Len(t, c.Points, 1)
	assert.Equal(t, day(5), c.Points[0].Time)
}

func TestCharge_UpdatePrices(t *testing.T) {
	c := newTariff()
	c.Points = []domain.Point{
		{Position: 1, Time: day(1), Price: decimal.NewFromInt(1)},
		{Position: 1, Time: day(2), Price: decimal.NewFromInt(2)},
		{Position: 1, Time: day(3), Price: decimal.NewFromInt(3)},
	}

	c.UpdatePrices(day(2), day(3), []domain.Point{{Position: 1, Time: day(2), Price: decimal.NewFromInt(20)}})

	require.Len(t, c.Points, 3)
	assert.True(t, decimal.NewFromInt(1).Equal(c.Points[0].Price))
	assert.True(t, decimal.NewFromInt(20).Equal(c.Points[1].Price))
	assert.True(t, decimal.NewFromInt(3).Equal(c.Points[2].Price))
}

func TestLastPeriod_Empty(t *testing.T) {
	_, ok := (&domain.Charge{}).LastPeriod()
	assert.False(t, ok)
}

func TestChargeInformationOperation_Period(t *testing.T) {
	op := domain.ChargeInformationOperation{Name: "n", StartDateTime: day(1)}
	assert.Equal(t, domain.EndOfTime, op.Period().EndDateTime)

	end := day(2)
	op.EndDateTime = &end
	assert.Equal(t, end, op.Period().EndDateTime)
}

func TestCodes_JSON(t *testing.T) {
	var op domain.ChargeInformationOperation
	err := json.Unmarshal([]byte(`{"type":"D02","resolution":"P1M","vat_classification":"D02"}`), &op)
	require.NoError(t, err)

	assert.Equal(t, domain.ChargeTypeFee, op.Type)
	assert.Equal(t, domain.ResolutionP1M, op.Resolution)
	assert.Equal(t, domain.VatClassificationVat25, op.VatClassification)

	err = json.Unmarshal([]byte(`{"type":"D99","resolution":"PT5M"}`), &op)
	require.NoError(t, err)
	assert.Equal(t, domain.ChargeTypeUnknown, op.Type)
	assert.Equal(t, domain.ResolutionUnknown, op.Resolution)

	raw, err := json.Marshal(domain.ChargePriceOperation{Type: domain.ChargeTypeTariff, Resolution: domain.ResolutionPT15M})
	require.NoError(t, err)
	assert.Contains(t, string(raw), `"type":"D03"`)
	assert.Contains(t, string(raw), `"resolution":"PT15M"`)
}
