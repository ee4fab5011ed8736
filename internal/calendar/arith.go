package calendar

import (
	"errors"
	"fmt"
	"math"
)

var (
	// ErrInvalidDuration indicates duration text that yields no positive
	// number of seconds where one is required.
	ErrInvalidDuration = errors.New("invalid duration")

	// ErrNegativeResult indicates arithmetic that would land before the
	// time origin.
	ErrNegativeResult = errors.New("result precedes time origin")
)

// Difference returns the absolute distance between two dates, both as
// Earth seconds and as a Date measured from the origin. Reusing Date
// for the span keeps it printable in arc notation; it is not a separate
// duration type.
func Difference(a, b Date) (float64, Date) {
	seconds := math.Abs(a.Seconds() - b.Seconds())
	return seconds, FromSeconds(seconds)
}

// Add shifts the date forward by a duration phrase (see ParseDuration).
// The phrase must describe a positive duration.
func Add(d Date, duration string) (Date, error) {
	seconds := ParseDuration(duration)
	if seconds <= 0 {
		return Date{}, fmt.Errorf("%w: %q", ErrInvalidDuration, duration)
	}
	return FromSeconds(d.Seconds() + seconds), nil
}

// Subtract shifts the date backward by a duration phrase. The phrase
// must describe a positive duration, and the result may not cross the
// time origin.
func Subtract(d Date, duration string) (Date, error) {
	seconds := ParseDuration(duration)
	if seconds <= 0 {
		return Date{}, fmt.Errorf("%w: %q", ErrInvalidDuration, duration)
	}
	remaining := d.Seconds() - seconds
	if remaining < 0 {
		return Date{}, fmt.Errorf("%w: %s before %s", ErrNegativeResult, duration, d)
	}
	return FromSeconds(remaining), nil
}
