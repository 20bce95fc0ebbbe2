package rules_test

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	"charges/internal/calendar"
	"charges/internal/domain"
)

// now is 15:00 on 10 May 2020 in Copenhagen.
var now = time.Date(2020, time.May, 10, 13, 0, 0, 0, time.UTC)

func copenhagen(t *testing.T) *calendar.ZonedDateTimeService {
	t.Helper()
	zone, err := calendar.NewZonedDateTimeService(calendar.FixedClock(now), calendar.DefaultTimeZone)
	require.NoError(t, err)
	return zone
}

func points(n int) []domain.Point {
	out := make([]domain.Point, n)
	for i := range out {
		out[i] = domain.Point{Position: i + 1, Price: decimal.RequireFromString("1.5")}
	}
	return out
}

func pricePoints(prices ...string) []domain.Point {
	out := make([]domain.Point, len(prices))
	for i, p := range prices {
		out[i] = domain.Point{Position: i + 1, Price: decimal.RequireFromString(p)}
	}
	return out
}
