package timeutils

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

// ErrMissingTimezone means a datetime string carried no zone information and no timezone
// was supplied alongside it.
var ErrMissingTimezone = errors.New("EITHER the datetime must carry zone information OR a timezone must be passed")

// zonedLayouts carry their own UTC offset, nakedLayouts do not.
var (
	zonedLayouts = []string{
		time.RFC3339,
	}
	nakedLayouts = []string{
		"2006-01-02T15:04:05",
		"2006-01-02 15:04:05",
		"2006-01-02T15:04",
		"2006-01-02 15:04",
	}
)

// ParseDatetime parses a datetime string. Strings that carry their own zone information,
// like "2021-03-28T12:00:00Z", are used as-is. Zone-less strings like
// "2021-03-28T12:00:00" are interpreted in the given IANA `timezone` and are rejected
// with ErrMissingTimezone if no timezone is supplied.
func ParseDatetime(str string, timezone string) (time.Time, error) {
	str = strings.TrimSpace(str)

	for _, layout := range zonedLayouts {
		if t, err := time.Parse(layout, str); err == nil {
			return t, nil
		}
	}

	for _, layout := range nakedLayouts {
		t, err := time.Parse(layout, str)
		if err != nil {
			continue
		}
		if timezone == "" {
			return time.Time{}, ErrMissingTimezone
		}
		location, err := time.LoadLocation(timezone)
		if err != nil {
			return time.Time{}, fmt.Errorf("load timezone: %w", err)
		}
		return time.Date(t.Year(), t.Month(), t.Day(), t.Hour(), t.Minute(), t.Second(), 0, location), nil
	}

	return time.Time{}, fmt.Errorf("unrecognised datetime '%s': use the format <yyyy-mm-ddTHH:MM:SS>", str)
}
