package settlement

import (
	"fmt"
	"time"
)

// Date represents a civil calendar date, without a time of day or a timezone.
type Date struct {
	Year  int
	Month time.Month
	Day   int
}

// NewDate returns the date with the given year, month and day.
func NewDate(year int, month time.Month, day int) Date {
	return Date{Year: year, Month: month, Day: day}
}

// DateFromTime returns the calendar date of the given instant, in the instant's own location.
func DateFromTime(t time.Time) Date {
	year, month, day := t.Date()
	return Date{Year: year, Month: month, Day: day}
}

// ParseDate returns the date represented by the given "yyyy-mm-dd" string.
func ParseDate(str string) (Date, error) {
	t, err := time.Parse("2006-01-02", str)
	if err != nil {
		return Date{}, fmt.Errorf("parse date: %w", err)
	}
	return DateFromTime(t), nil
}

// UTCMidnight returns the Unix timestamp of midnight at the start of the date, with the
// date interpreted as UTC rather than local time.
func (d Date) UTCMidnight() int64 {
	return time.Date(d.Year, d.Month, d.Day, 0, 0, 0, 0, time.UTC).Unix()
}

// AddDays returns the date shifted by the given number of days, which may be negative.
func (d Date) AddDays(days int) Date {
	t := time.Date(d.Year, d.Month, d.Day, 0, 0, 0, 0, time.UTC).AddDate(0, 0, days)
	return DateFromTime(t)
}

// IsValid reports whether the date exists in the calendar, e.g. February 30th does not.
func (d Date) IsValid() bool {
	return DateFromTime(time.Date(d.Year, d.Month, d.Day, 0, 0, 0, 0, time.UTC)) == d
}

func (d Date) String() string {
	return fmt.Sprintf("%04d-%02d-%02d", d.Year, int(d.Month), d.Day)
}
