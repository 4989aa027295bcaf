package settlement

import "errors"

var (
	// ErrInvalidDate means a Date's fields do not name a real calendar date.
	ErrInvalidDate = errors.New("invalid calendar date")

	// ErrInvalidBoundary means a Boundary is not one of "right", "left" or "middle".
	ErrInvalidBoundary = errors.New("boundary must be 'right', 'left' or 'middle'")

	// ErrOutOfRange means a date or timestamp falls outside the years covered by the
	// transition table.
	ErrOutOfRange = errors.New("outside supported range")

	// ErrInvalidPeriod means a settlement period is outside the valid range for its date.
	ErrInvalidPeriod = errors.New("invalid settlement period")

	// ErrMisalignedTimestamp means a timestamp does not fall on a settlement period
	// boundary, i.e. it is not a multiple of 30 minutes.
	ErrMisalignedTimestamp = errors.New("timestamp does not fall on a settlement period boundary")
)
