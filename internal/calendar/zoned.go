package calendar

import (
	"fmt"
	"time"

	// Embedded zone database so market time zones resolve in minimal containers.
	_ "time/tzdata"
)

// DefaultTimeZone is the time zone of the Danish energy market.
const DefaultTimeZone = "Europe/Copenhagen"

// ZonedDateTimeService converts between instants and calendar dates in the market time zone.
type ZonedDateTimeService struct {
	clock    Clock
	location *time.Location
}

// NewZonedDateTimeService loads timeZone and returns a service bound to clock.
func NewZonedDateTimeService(clock Clock, timeZone string) (*ZonedDateTimeService, error) {
	loc, err := time.LoadLocation(timeZone)
	if err != nil {
		return nil, fmt.Errorf("loading time zone %q: %w", timeZone, err)
	}
	return &ZonedDateTimeService{clock: clock, location: loc}, nil
}

// Now returns the current instant in the market time zone.
func (s *ZonedDateTimeService) Now() time.Time {
	return s.clock.Now().In(s.location)
}

// Today returns local midnight of the current market date.
func (s *ZonedDateTimeService) Today() time.Time {
	now := s.Now()
	return s.Midnight(now.Year(), now.Month(), now.Day())
}

// Midnight returns the instant of local midnight on the given date.
//
// Resolution is lenient: a midnight inside a DST transition resolves to one of
// the offsets in effect around it instead of failing. Out-of-range days and
// months are normalized, so Midnight(2020, 5, 32) is June 1.
func (s *ZonedDateTimeService) Midnight(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, s.location)
}

// AddDays returns local midnight days after the local date of t.
func (s *ZonedDateTimeService) AddDays(t time.Time, days int) time.Time {
	local := t.In(s.location)
	return s.Midnight(local.Year(), local.Month(), local.Day()+days)
}

// IsMidnight reports whether t falls on local midnight in the market time zone.
func (s *ZonedDateTimeService) IsMidnight(t time.Time) bool {
	local := t.In(s.location)
	return local.Hour() == 0 && local.Minute() == 0 && local.Second() == 0 && local.Nanosecond() == 0
}

// MonthsBetween returns the number of whole calendar months from start to end in the market time zone.
func (s *ZonedDateTimeService) MonthsBetween(start, end time.Time) int {
	a := start.In(s.location)
	b := end.In(s.location)
	months := (b.Year()-a.Year())*12 + int(b.Month()) - int(a.Month())
	if b.Day() < a.Day() {
		months--
	}
	return months
}
