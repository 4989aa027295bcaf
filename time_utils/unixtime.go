package timeutils

import (
	"fmt"
	"time"
)

// ToUnixtime converts `t` to a Unix timestamp, i.e. seconds since epoch. If `timezone` is
// a non-empty IANA timezone name then `t`'s wall clock fields are reinterpreted in that
// timezone first, which matters when `t` was parsed from a string that carried no zone
// information.
func ToUnixtime(t time.Time, timezone string) (int64, error) {
	if timezone != "" {
		location, err := time.LoadLocation(timezone)
		if err != nil {
			return 0, fmt.Errorf("load timezone: %w", err)
		}
		t = time.Date(t.Year(), t.Month(), t.Day(), t.Hour(), t.Minute(), t.Second(), t.Nanosecond(), location)
	}
	return t.Unix(), nil
}

// FromUnixtime converts a Unix timestamp into a time.Time in the given IANA timezone, or
// in UTC if `timezone` is empty.
func FromUnixtime(timestamp int64, timezone string) (time.Time, error) {
	if timestamp < 0 {
		return time.Time{}, fmt.Errorf("invalid timestamp %d: Unix timestamps cannot be negative", timestamp)
	}
	location := time.UTC
	if timezone != "" {
		var err error
		location, err = time.LoadLocation(timezone)
		if err != nil {
			return time.Time{}, fmt.Errorf("load timezone: %w", err)
		}
	}
	return time.Unix(timestamp, 0).In(location), nil
}
