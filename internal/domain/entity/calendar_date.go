package entity

import (
	"fmt"
	"time"
)

const (
	isoDateLayout   = "2006-01-02"
	humanDateLayout = "January 02, 2006"
)

// CalendarDate is a timezone-naive calendar day
type CalendarDate struct {
	Year  int
	Month time.Month
	Day   int
}

// NewCalendarDate builds a CalendarDate, rejecting days that do not exist
// (month 13, February 30) and years outside 1..9999.
func NewCalendarDate(year, month, day int) (CalendarDate, error) {
	if year < 1 || year > 9999 {
		return CalendarDate{}, fmt.Errorf("year %d out of range", year)
	}
	if month < 1 || month > 12 {
		return CalendarDate{}, fmt.Errorf("month %d out of range", month)
	}
	t := time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)
	if t.Day() != day || int(t.Month()) != month {
		return CalendarDate{}, fmt.Errorf("day %d out of range for %04d-%02d", day, year, month)
	}
	return CalendarDate{Year: year, Month: time.Month(month), Day: day}, nil
}

// CalendarDateOf returns the calendar day of t in t's own location
func CalendarDateOf(t time.Time) CalendarDate {
	y, m, d := t.Date()
	return CalendarDate{Year: y, Month: m, Day: d}
}

func (d CalendarDate) midnight() time.Time {
	return time.Date(d.Year, d.Month, d.Day, 0, 0, 0, 0, time.UTC)
}

// String renders the ISO form used as availability key
func (d CalendarDate) String() string {
	return d.midnight().Format(isoDateLayout)
}

// Human renders the date as "Month DD, YYYY"
func (d CalendarDate) Human() string {
	return d.midnight().Format(humanDateLayout)
}

// Before reports whether d is strictly earlier than other
func (d CalendarDate) Before(other CalendarDate) bool {
	return d.midnight().Before(other.midnight())
}
