package dateutil

import (
	"fmt"
	"strings"
	"time"
)

// DayCount names a day count convention used to turn dates into year fractions.
type DayCount string

const (
	Act365Fixed DayCount = "ACT/365F"
	Act36525    DayCount = "ACT/365.25"
	Act360      DayCount = "ACT/360"
	ActAct      DayCount = "ACT/ACT"
)

// ParseDayCount accepts the canonical names case-insensitively.
// An empty string selects ACT/365F.
func ParseDayCount(s string) (DayCount, error) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "", "ACT/365F", "ACT/365":
		return Act365Fixed, nil
	case "ACT/365.25":
		return Act36525, nil
	case "ACT/360":
		return Act360, nil
	case "ACT/ACT":
		return ActAct, nil
	default:
		return "", fmt.Errorf("unknown day count convention %q", s)
	}
}

// DaysBetween returns the number of calendar days from fromDate to toDate,
// ignoring the time of day.
func DaysBetween(fromDate, toDate time.Time) int {
	from := time.Date(fromDate.Year(), fromDate.Month(), fromDate.Day(), 0, 0, 0, 0, time.UTC)
	to := time.Date(toDate.Year(), toDate.Month(), toDate.Day(), 0, 0, 0, 0, time.UTC)
	return int(to.Sub(from).Hours() / 24)
}

// YearFraction returns the length of [fromDate, toDate] in years under dc.
// The result is negative when toDate precedes fromDate.
func YearFraction(fromDate, toDate time.Time, dc DayCount) float64 {
	switch dc {
	case Act36525:
		return float64(DaysBetween(fromDate, toDate)) / 365.25
	case Act360:
		return float64(DaysBetween(fromDate, toDate)) / 360
	case ActAct:
		return actActFraction(fromDate, toDate)
	default:
		return float64(DaysBetween(fromDate, toDate)) / 365
	}
}

// actActFraction splits the interval at year boundaries and divides the
// days falling in each year by that year's length.
func actActFraction(fromDate, toDate time.Time) float64 {
	if toDate.Before(fromDate) {
		return -actActFraction(toDate, fromDate)
	}
	var years float64
	cur := fromDate
	for cur.Year() < toDate.Year() {
		next := BeginningOfYear(AddYears(cur, 1))
		years += float64(DaysBetween(cur, next)) / float64(DaysInYear(cur.Year()))
		cur = next
	}
	years += float64(DaysBetween(cur, toDate)) / float64(DaysInYear(cur.Year()))
	return years
}

// IsLeapYear checks if a year is a leap year
func IsLeapYear(year int) bool {
	return year%4 == 0 && (year%100 != 0 || year%400 == 0)
}

// DaysInYear returns the number of days in a given year
func DaysInYear(year int) int {
	if IsLeapYear(year) {
		return 366
	}
	return 365
}

// AddYears adds a specified number of years to a date
func AddYears(date time.Time, years int) time.Time {
	return date.AddDate(years, 0, 0)
}

// BeginningOfYear returns the first day of the year for a given date
func BeginningOfYear(date time.Time) time.Time {
	return time.Date(date.Year(), 1, 1, 0, 0, 0, 0, date.Location())
}
