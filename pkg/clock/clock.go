// Package clock abstracts the wall clock so services can be tested with a
// controlled notion of "now". All rental timestamps (rental date, return
// date, due-date validation) flow through a Clock.
package clock

import "time"

// Clock supplies the current instant.
type Clock interface {
	Now() time.Time
}

// System returns a Clock backed by time.Now in UTC.
func System() Clock {
	return systemClock{}
}

type systemClock struct{}

func (systemClock) Now() time.Time {
	return time.Now().UTC()
}

// Fixed returns a Clock that always reports t. Test helper.
func Fixed(t time.Time) Clock {
	return fixedClock{t: t}
}

type fixedClock struct{ t time.Time }

func (c fixedClock) Now() time.Time {
	return c.t
}
