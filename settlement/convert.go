// Package settlement converts between the settlement periods used by the GB electricity
// industry, Unix timestamps and time.Time instants.
//
// Settlement periods are 30 minute accounting intervals numbered from 1 per civil day.
// Most days have 48 of them, but the day GB moves its clocks forward has 46 and the day
// it moves them back has 50. The conversions are driven by a static table of clock change
// days, so they need no timezone database at runtime.
package settlement

import (
	"fmt"
	"strings"
	"time"
)

// Boundary selects which instant of a settlement period a conversion reports.
type Boundary string

const (
	// BoundaryRight marks the end of the period. Settlement periods are closed on the
	// right, so this is the canonical representation: SP 1 covers 00:00:00 < t <= 00:30:00
	// local time.
	BoundaryRight Boundary = "right"

	// BoundaryLeft marks the start of the period.
	BoundaryLeft Boundary = "left"

	// BoundaryMiddle marks the midpoint of the period.
	BoundaryMiddle Boundary = "middle"
)

const (
	secondsPerDay    = 86400
	secondsPerHour   = 3600
	secondsPerPeriod = 1800
)

// normalised returns the lower-cased boundary, or ErrInvalidBoundary if it is not one of
// the recognised values.
func (b Boundary) normalised() (Boundary, error) {
	switch normalised := Boundary(strings.ToLower(string(b))); normalised {
	case BoundaryRight, BoundaryLeft, BoundaryMiddle:
		return normalised, nil
	default:
		return "", fmt.Errorf("%w, got %q", ErrInvalidBoundary, string(b))
	}
}

// DateAndPeriodToTimestamp converts a date and settlement period into the Unix timestamp
// at the end of the period, or at its start or midpoint if requested via `boundary`.
//
// The left and middle variants are derived by shifting the right-closed timestamp and are
// not re-checked against the supported range, so the left edge of the very first
// supported period sits just before it.
func DateAndPeriodToTimestamp(date Date, period int, boundary Boundary) (int64, error) {
	if !date.IsValid() {
		return 0, fmt.Errorf("%w: %s", ErrInvalidDate, date)
	}
	boundary, err := boundary.normalised()
	if err != nil {
		return 0, err
	}
	minTS, maxTS := supportedRange()
	midnight := date.UTCMidnight()
	if midnight < minTS || midnight > maxTS {
		minDate := DateFromTime(time.Unix(minTS, 0).UTC())
		maxDate := DateFromTime(time.Unix(maxTS, 0).UTC())
		return 0, fmt.Errorf("%w: date %s (supported range is %s <= date <= %s)", ErrOutOfRange, date, minDate, maxDate)
	}
	if maxPeriods := MaxPeriods(date); period < 1 || period > maxPeriods {
		return 0, fmt.Errorf("%w: period must be in the interval 1 <= period <= %d on date %s, got %d", ErrInvalidPeriod, maxPeriods, date, period)
	}

	timestamp := midnight + secondsPerPeriod*int64(period)
	if inBST(midnight) {
		// Local clocks run an hour ahead of UTC on this date
		timestamp -= secondsPerHour
	}

	switch boundary {
	case BoundaryLeft:
		timestamp -= secondsPerPeriod
	case BoundaryMiddle:
		timestamp -= secondsPerPeriod / 2
	}
	return timestamp, nil
}

// TimestampToDateAndPeriod converts a Unix timestamp into the date and settlement period
// whose right edge it marks. The timestamp must fall exactly on a settlement period
// boundary, i.e. on a multiple of 30 minutes.
func TimestampToDateAndPeriod(timestamp int64) (Date, int, error) {
	minTS, maxTS := supportedRange()
	if timestamp < minTS || timestamp > maxTS {
		return Date{}, 0, fmt.Errorf("%w: timestamp %d (supported range is %d <= timestamp <= %d)", ErrOutOfRange, timestamp, minTS, maxTS)
	}
	if timestamp%secondsPerPeriod != 0 {
		return Date{}, 0, fmt.Errorf("%w: %d", ErrMisalignedTimestamp, timestamp)
	}

	dayStart := (timestamp / secondsPerDay) * secondsPerDay
	date := DateFromTime(time.Unix(timestamp, 0).UTC())
	period := int((timestamp % secondsPerDay) / secondsPerPeriod)
	if inBST(dayStart) {
		// Undo the hour that local clocks run ahead of UTC during BST, in half-hour units
		period += 2
	}

	// Exactly midnight UTC makes the arithmetic above yield period 0: the instant is the
	// right edge of the previous civil day's last period, so rebase onto that day.
	if period == 0 {
		date = date.AddDays(-1)
		period = MaxPeriods(date)
	}

	// The BST adjustment can carry the period past the end of its day, in which case it
	// belongs to the start of the next one.
	if maxPeriods := MaxPeriods(date); period > maxPeriods {
		date = date.AddDays(1)
		period -= maxPeriods
	}

	return date, period, nil
}

// DateAndPeriodToDatetime converts a date and settlement period into the UTC instant at
// the end of the period, or at its start or midpoint if requested via `boundary`.
func DateAndPeriodToDatetime(date Date, period int, boundary Boundary) (time.Time, error) {
	timestamp, err := DateAndPeriodToTimestamp(date, period, boundary)
	if err != nil {
		return time.Time{}, err
	}
	return time.Unix(timestamp, 0).UTC(), nil
}

// DatetimeToDateAndPeriod converts an instant into the date and settlement period whose
// right edge it marks. The instant must fall exactly on a settlement period boundary.
func DatetimeToDateAndPeriod(t time.Time) (Date, int, error) {
	return TimestampToDateAndPeriod(t.Unix())
}
