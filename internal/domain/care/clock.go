package care

import "time"

// Clock supplies the current instant. It is the only source of "now" used by the engine.
type Clock interface {
	Now() time.Time
}

// SystemClock reads the wall clock in a fixed location
type SystemClock struct {
	Location *time.Location
}

// NewSystemClock creates a wall clock reporting time in loc (time.Local when nil)
func NewSystemClock(loc *time.Location) SystemClock {
	if loc == nil {
		loc = time.Local
	}
	return SystemClock{Location: loc}
}

func (c SystemClock) Now() time.Time {
	loc := c.Location
	if loc == nil {
		loc = time.Local
	}
	return time.Now().In(loc)
}

// FixedClock always reports the same instant
type FixedClock struct {
	At time.Time
}

func (c FixedClock) Now() time.Time {
	return c.At
}

// Today returns the clock's current calendar day
func Today(c Clock) time.Time {
	return StartOfDay(c.Now())
}
