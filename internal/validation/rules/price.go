package rules

import (
	"fmt"
	"math"
	"strconv"

	"github.com/shopspring/decimal"

	"charges/internal/calendar"
	"charges/internal/domain"
	"charges/internal/validation"
)

const (
	priceMaxIntegerDigits = 8
	priceMaxDecimals      = 6
)

var priceIntegerLimit = decimal.New(1, priceMaxIntegerDigits)

// tariffMinimumPointCount is the smallest number of points a tariff price
// series of one day can have for each resolution (DST days are shorter).
var tariffMinimumPointCount = map[domain.Resolution]int{
	domain.ResolutionPT15M: 92,
	domain.ResolutionPT1H:  23,
	domain.ResolutionP1D:   1,
	domain.ResolutionP1M:   1,
}

// priceDigitsRule checks every price point and locates the first offender by position.
type priceDigitsRule struct {
	points []domain.Point
}

// NewChargePriceMaximumDigitsAndDecimalsRule allows at most 8 integer digits and 6 decimals per price.
func NewChargePriceMaximumDigitsAndDecimalsRule(points []domain.Point) validation.Rule {
	return &priceDigitsRule{points: points}
}

func (r *priceDigitsRule) Identifier() validation.RuleIdentifier {
	return validation.ChargePriceMaximumDigitsAndDecimals
}

func (r *priceDigitsRule) IsValid() bool {
	_, found := r.firstInvalid()
	return !found
}

func (r *priceDigitsRule) TriggeredBy() (string, bool) {
	p, found := r.firstInvalid()
	if !found {
		return "", false
	}
	return strconv.Itoa(p.Position), true
}

func (r *priceDigitsRule) firstInvalid() (domain.Point, bool) {
	for _, p := range r.points {
		if !priceHasValidDigits(p.Price) {
			return p, true
		}
	}
	return domain.Point{}, false
}

func priceHasValidDigits(price decimal.Decimal) bool {
	if price.Abs().Truncate(0).GreaterThanOrEqual(priceIntegerLimit) {
		return false
	}
	return hasAtMostDecimals(price, priceMaxDecimals)
}

// hasAtMostDecimals shifts the value one decimal at a time until it is whole.
func hasAtMostDecimals(value decimal.Decimal, maxDecimals int) bool {
	for i := 0; i <= maxDecimals; i++ {
		if value.Equal(value.Round(0)) {
			return true
		}
		value = value.Shift(1)
	}
	return false
}

// NewChargeTypeTariffPriceCountRule requires tariff price series to hold at least
// the minimum number of points for their resolution. Empty series carry master
// data only and pass.
func NewChargeTypeTariffPriceCountRule(op domain.ChargePriceOperation) (validation.Rule, error) {
	valid := true
	if op.Type == domain.ChargeTypeTariff && len(op.Points) > 0 {
		minimum, ok := tariffMinimumPointCount[op.Resolution]
		if !ok {
			return nil, fmt.Errorf("%w: %s", validation.ErrUnknownResolution, op.Resolution)
		}
		valid = len(op.Points) >= minimum
	}
	return fieldRule{id: validation.ChargeTypeTariffPriceCount, valid: valid}, nil
}

// NewNumberOfPointsMatchTimeIntervalAndResolutionRule compares the point count
// with the number of resolution steps in the points interval.
func NewNumberOfPointsMatchTimeIntervalAndResolutionRule(
	op domain.ChargePriceOperation,
	zone *calendar.ZonedDateTimeService,
) (validation.Rule, error) {
	expected, err := expectedPointCount(op, zone)
	if err != nil {
		return nil, err
	}
	return fieldRule{
		id:    validation.NumberOfPointsMatchTimeIntervalAndResolution,
		valid: len(op.Points) == expected,
	}, nil
}

func expectedPointCount(op domain.ChargePriceOperation, zone *calendar.ZonedDateTimeService) (int, error) {
	span := op.PointsEndInterval.Sub(op.PointsStartInterval)
	switch op.Resolution {
	case domain.ResolutionPT15M:
		return int(math.Round(span.Minutes() / 15)), nil
	case domain.ResolutionPT1H:
		return int(math.Round(span.Hours())), nil
	case domain.ResolutionP1D:
		return int(math.Round(span.Hours() / 24)), nil
	case domain.ResolutionP1M:
		return max(zone.MonthsBetween(op.PointsStartInterval, op.PointsEndInterval), 1), nil
	default:
		return 0, fmt.Errorf("%w: %s", validation.ErrUnknownResolution, op.Resolution)
	}
}

// NewPriceListMustStartAndStopAtMidnightRule requires the points interval to be whole market days.
func NewPriceListMustStartAndStopAtMidnightRule(
	op domain.ChargePriceOperation,
	zone *calendar.ZonedDateTimeService,
) validation.Rule {
	return fieldRule{
		id: validation.PriceListMustStartAndStopAtMidnightValidationRule,
		valid: zone.IsMidnight(op.PointsStartInterval) &&
			zone.IsMidnight(op.PointsEndInterval),
	}
}

// NewFeeMustHaveSinglePriceRule allows at most one point on a fee.
func NewFeeMustHaveSinglePriceRule(op domain.ChargePriceOperation) validation.Rule {
	return fieldRule{
		id:    validation.FeeMustHaveSinglePrice,
		valid: op.Type != domain.ChargeTypeFee || len(op.Points) <= 1,
	}
}

// NewSubscriptionMustHaveSinglePriceRule allows at most one point on a subscription.
func NewSubscriptionMustHaveSinglePriceRule(op domain.ChargePriceOperation) validation.Rule {
	return fieldRule{
		id:    validation.SubscriptionMustHaveSinglePrice,
		valid: op.Type != domain.ChargeTypeSubscription || len(op.Points) <= 1,
	}
}

// NewPriceListResolutionMustBeSpecifiedRule requires a resolution on the price series.
func NewPriceListResolutionMustBeSpecifiedRule(resolution domain.Resolution) validation.Rule {
	return fieldRule{
		id:    validation.PriceListResolutionMustBeSpecified,
		valid: resolution != domain.ResolutionUnknown,
	}
}
