package application

import "time"

// Clock returns the current instant. Services take one so eligibility can be
// evaluated at a fixed time in tests.
type Clock func() time.Time

// SystemClock is the wall clock in UTC.
func SystemClock() time.Time { return time.Now().UTC() }
