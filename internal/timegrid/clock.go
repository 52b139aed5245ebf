package timegrid

import (
	"errors"
	"fmt"
	"time"
)

const minutesPerDay = 24 * 60

var ErrInvalidClock = errors.New("invalid clock time")

// Clock is a time of day with minute precision.
type Clock struct {
	Hour   int
	Minute int
}

func NewClock(hour, minute int) (Clock, error) {
	if hour < 0 || hour > 23 || minute < 0 || minute > 59 {
		return Clock{}, fmt.Errorf("%w: %02d:%02d", ErrInvalidClock, hour, minute)
	}
	return Clock{Hour: hour, Minute: minute}, nil
}

// FromMinutes converts minutes since midnight. 1440 is accepted as the
// end-of-day boundary.
func FromMinutes(m int) Clock {
	return Clock{Hour: m / 60, Minute: m % 60}
}

// ParseClock accepts "HH:MM" (also "H:MM").
func ParseClock(s string) (Clock, error) {
	t, err := time.Parse("15:04", s)
	if err != nil {
		return Clock{}, fmt.Errorf("%w: %q", ErrInvalidClock, s)
	}
	return Clock{Hour: t.Hour(), Minute: t.Minute()}, nil
}

// ClockOf extracts the wall-clock time of t in loc.
func ClockOf(t time.Time, loc *time.Location) Clock {
	t = t.In(loc)
	return Clock{Hour: t.Hour(), Minute: t.Minute()}
}

func (c Clock) Minutes() int {
	return c.Hour*60 + c.Minute
}

func (c Clock) Before(o Clock) bool {
	return c.Minutes() < o.Minutes()
}

func (c Clock) Add(d time.Duration) Clock {
	return FromMinutes(c.Minutes() + int(d/time.Minute))
}

// Aligned reports whether c falls on a step boundary counted from midnight.
func (c Clock) Aligned(step time.Duration) bool {
	s := int(step / time.Minute)
	return s > 0 && c.Minutes()%s == 0
}

// On places c as wall-clock time on the calendar day of date in loc. The day
// is read from date's own year, month and day, not from date converted to
// loc. 24:00 lands on the following midnight.
func (c Clock) On(date time.Time, loc *time.Location) time.Time {
	y, m, d := date.Date()
	return time.Date(y, m, d, c.Hour, c.Minute, 0, 0, loc)
}

// ClockOnDay reads the wall clock of t on the calendar day of date in loc.
// Instants from the following midnight on read as 24:00.
func ClockOnDay(date, t time.Time, loc *time.Location) Clock {
	if !t.Before(StartOfDay(date, loc).AddDate(0, 0, 1)) {
		return FromMinutes(minutesPerDay)
	}
	return ClockOf(t, loc)
}

func (c Clock) String() string {
	return fmt.Sprintf("%02d:%02d", c.Hour, c.Minute)
}

// StartOfDay returns midnight in loc of the calendar day written in date.
func StartOfDay(date time.Time, loc *time.Location) time.Time {
	y, m, d := date.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, loc)
}
