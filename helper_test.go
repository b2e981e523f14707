package bankaccount

import "time"

// USD is a helper for test to create money from const.
func USD(v float64) Money { return M(v) }

// epoch is the pinned time of test clocks.
var epoch = time.Date(2025, time.October, 7, 9, 30, 0, 0, time.UTC)

// fixedClock returns a clock always reading at.
func fixedClock(at time.Time) func() time.Time {
	return func() time.Time { return at }
}

// tickingClock returns a clock starting at start and moving by step on every reading.
func tickingClock(start time.Time, step time.Duration) func() time.Time {
	next := start
	return func() time.Time {
		now := next
		next = next.Add(step)
		return now
	}
}
