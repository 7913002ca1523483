package dateutil

import (
	"fmt"
	"time"
)

// DateLayout is the DD.MM.YYYY layout used for birthdays
const DateLayout = "02.01.2006"

// StartOfDay returns the start of the day (00:00:00) for the given date
func StartOfDay(date time.Time) time.Time {
	return time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, date.Location())
}

// IsWeekend returns true if the date is Saturday or Sunday
func IsWeekend(date time.Time) bool {
	weekday := date.Weekday()
	return weekday == time.Saturday || weekday == time.Sunday
}

// IsSameDay returns true if two dates are on the same day
func IsSameDay(date1, date2 time.Time) bool {
	return date1.Year() == date2.Year() &&
		date1.Month() == date2.Month() &&
		date1.Day() == date2.Day()
}

// NextWeekday returns the first date strictly after start that falls on weekday.
// A start date already on weekday moves a full week forward.
func NextWeekday(start time.Time, weekday time.Weekday) time.Time {
	daysAhead := int(weekday) - int(start.Weekday())
	if daysAhead <= 0 {
		daysAhead += 7
	}
	return start.AddDate(0, 0, daysAhead)
}

// AdjustForWeekend moves Saturday and Sunday to the following Monday.
// Weekdays are returned unchanged.
func AdjustForWeekend(date time.Time) time.Time {
	if IsWeekend(date) {
		return NextWeekday(date, time.Monday)
	}
	return date
}

// DaysBetween returns the number of calendar days from 'from' to 'to'.
// Clock time and DST transitions are ignored.
func DaysBetween(from, to time.Time) int {
	a := time.Date(from.Year(), from.Month(), from.Day(), 0, 0, 0, 0, time.UTC)
	b := time.Date(to.Year(), to.Month(), to.Day(), 0, 0, 0, 0, time.UTC)
	return int(b.Sub(a).Hours() / 24)
}

// IsLeapYear reports whether year has a February 29
func IsLeapYear(year int) bool {
	return year%4 == 0 && (year%100 != 0 || year%400 == 0)
}

// Anniversary returns the month/day of date in the given year (start of day, loc).
// February 29 falls back to February 28 when year is not a leap year.
func Anniversary(date time.Time, year int, loc *time.Location) time.Time {
	month, day := date.Month(), date.Day()
	if month == time.February && day == 29 && !IsLeapYear(year) {
		day = 28
	}
	return time.Date(year, month, day, 0, 0, 0, 0, loc)
}

// ParseDate parses a DD.MM.YYYY string in the local timezone.
// Unlike time.Parse alone it rejects single-digit fields and trailing input.
func ParseDate(dateStr string) (time.Time, error) {
	if len(dateStr) != len(DateLayout) {
		return time.Time{}, fmt.Errorf("date %q does not match DD.MM.YYYY", dateStr)
	}
	t, err := time.ParseInLocation(DateLayout, dateStr, time.Local)
	if err != nil {
		return time.Time{}, fmt.Errorf("failed to parse date %q: %w", dateStr, err)
	}
	return t, nil
}

// FormatDate formats date as DD.MM.YYYY
func FormatDate(date time.Time) string {
	return date.Format(DateLayout)
}

// Today returns today's date (start of day)
func Today() time.Time {
	return StartOfDay(time.Now())
}
