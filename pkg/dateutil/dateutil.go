package dateutil

import (
	"fmt"
	"time"
)

// Layout is the textual date pattern used for birthdays (DD.MM.YYYY)
const Layout = "02.01.2006"

// Date returns the naive calendar date y-m-d at midnight UTC
func Date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

// StartOfDay returns the start of the day (00:00:00) for the given date
func StartOfDay(date time.Time) time.Time {
	return time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, date.Location())
}

// Truncate drops the time of day and the location, keeping the calendar date
func Truncate(date time.Time) time.Time {
	return Date(date.Year(), date.Month(), date.Day())
}

// AddDays returns the calendar date n days after date
func AddDays(date time.Time, n int) time.Time {
	return Truncate(date).AddDate(0, 0, n)
}

// DaysBetween returns the signed number of calendar days from a to b
func DaysBetween(a, b time.Time) int {
	return int(Truncate(b).Sub(Truncate(a)).Hours() / 24)
}

// IsWeekend returns true if the date is Saturday or Sunday
func IsWeekend(date time.Time) bool {
	weekday := date.Weekday()
	return weekday == time.Saturday || weekday == time.Sunday
}

// IsLeapYear reports whether year has a February 29
func IsLeapYear(year int) bool {
	return year%4 == 0 && (year%100 != 0 || year%400 == 0)
}

// ParseDate parses a DD.MM.YYYY string into a naive calendar date.
// Day and month must be two digits, the year four, and the date must exist.
func ParseDate(dateStr string) (time.Time, error) {
	t, err := time.Parse(Layout, dateStr)
	if err != nil {
		return time.Time{}, fmt.Errorf("%s does not match DD.MM.YYYY format", dateStr)
	}
	return t, nil
}

// FormatDate renders date as DD.MM.YYYY
func FormatDate(date time.Time) string {
	return date.Format(Layout)
}

// Today returns today's date (start of day) in the local calendar
func Today() time.Time {
	return Truncate(time.Now())
}
