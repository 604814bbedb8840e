package utils

import "time"

// Clock supplies the current time. Auction expiry is derived lazily from wall-clock
// time on every read and write, so the time source is injected rather than taken
// from ambient system time, letting tests pin it deterministically.
type Clock interface {
	Now() time.Time
}

// RealClock reads the system clock in UTC.
type RealClock struct{}

func (RealClock) Now() time.Time {
	return time.Now().UTC()
}
