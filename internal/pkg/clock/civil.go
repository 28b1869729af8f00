package clock

import (
	"errors"
	"time"
)

var ErrInvalidLocalDateTime = errors.New("invalid local date time")

// Layout accepted for caller-supplied wall-clock values ("2025-08-15T10:30").
const LocalDateTimeLayout = "2006-01-02T15:04"

// Civil evaluates all business-hour and day-of-week rules in one fixed
// clinic-wide timezone, independent of where the process runs.
type Civil struct {
	clock Clock
	loc   *time.Location
}

func NewCivil(clock Clock, loc *time.Location) *Civil {
	return &Civil{clock: clock, loc: loc}
}

func (c *Civil) Location() *time.Location {
	return c.loc
}

// Now returns the current instant expressed in the civil zone.
func (c *Civil) Now() time.Time {
	return c.clock.Now().In(c.loc)
}

// ParseLocal interprets a wall-clock string as an instant in the civil zone.
func (c *Civil) ParseLocal(value string) (time.Time, error) {
	t, err := time.ParseInLocation(LocalDateTimeLayout, value, c.loc)
	if err != nil {
		return time.Time{}, ErrInvalidLocalDateTime
	}
	return t, nil
}

// In re-expresses an instant in the civil zone so its weekday/hour/minute
// components are meaningful for rule evaluation.
func (c *Civil) In(t time.Time) time.Time {
	return t.In(c.loc)
}

func ShiftMinutes(t time.Time, n int) time.Time {
	return t.Add(time.Duration(n) * time.Minute)
}
