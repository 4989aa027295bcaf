package timeutils

import "time"

const (
	// ThirtyMins is the length of a GB settlement period.
	ThirtyMins = time.Minute * 30
)

// FloorHH returns the given `t` rounded down to the nearest half-hour boundary
func FloorHH(t time.Time) time.Time {
	minute := t.Minute()
	if minute >= 30 {
		minute = 30
	} else {
		minute = 0
	}
	return time.Date(t.Year(), t.Month(), t.Day(), t.Hour(), minute, 0, 0, t.Location())
}

// CeilHH returns the given `t` rounded up to the nearest half-hour boundary. A `t` that
// is already on a boundary is returned unchanged.
func CeilHH(t time.Time) time.Time {
	floored := FloorHH(t)
	if floored.Equal(t) {
		return t
	}
	return floored.Add(ThirtyMins)
}

// DurationLeftOfSP returns the amount of time remaining in the settlement period, given the current time `t`.
func DurationLeftOfSP(t time.Time) time.Duration {
	spStart := FloorHH(t)
	durationLeft := ThirtyMins - t.Sub(spStart)
	return durationLeft
}
