// Package period provides calendar period arithmetic for budget windows.
//
// All dates are ISO "YYYY-MM-DD" strings. The fixed-width, zero-padded
// format makes lexicographic comparison equivalent to chronological
// comparison, so range checks never need to parse.
package period

import (
	"errors"
	"fmt"
	"time"
)

// Type identifies the calendar shape of a period.
type Type string

const (
	Week    Type = "week"
	Month   Type = "month"
	Quarter Type = "quarter"
	Year    Type = "year"
	Custom  Type = "custom"
)

// Period is an inclusive date range. StartDate <= EndDate always holds for
// periods produced by this package.
type Period struct {
	Type      Type
	StartDate string
	EndDate   string
}

// ErrCustomPeriod is returned by Current for the custom type: a custom
// period has no canonical "current" instance, the caller must supply
// explicit bounds.
var ErrCustomPeriod = errors.New("custom periods have no canonical current instance")

const dateLayout = "2006-01-02"

func parseDate(s string) time.Time {
	t, _ := time.Parse(dateLayout, s)
	return t
}

// FormatDate renders t as an ISO YYYY-MM-DD string.
func FormatDate(t time.Time) string {
	return t.Format(dateLayout)
}

// AddDays returns date shifted by n calendar days.
func AddDays(date string, n int) string {
	return FormatDate(parseDate(date).AddDate(0, 0, n))
}

// DaysBetween returns the number of whole days from a to b (negative when
// b precedes a).
func DaysBetween(a, b string) int {
	return int(parseDate(b).Sub(parseDate(a)).Hours() / 24)
}

// MonthOf returns the YYYY-MM prefix of a date.
func MonthOf(date string) string {
	return date[:7]
}

// AddMonths shifts a YYYY-MM month key by n months.
func AddMonths(month string, n int) string {
	t := parseDate(month + "-01")
	return t.AddDate(0, n, 0).Format("2006-01")
}

// CurrentWeek returns the Monday-start week containing today.
func CurrentWeek(today string) Period {
	t := parseDate(today)
	offset := (int(t.Weekday()) + 6) % 7 // Monday = 0
	start := t.AddDate(0, 0, -offset)
	return Period{
		Type:      Week,
		StartDate: FormatDate(start),
		EndDate:   FormatDate(start.AddDate(0, 0, 6)),
	}
}

// CurrentMonth returns the calendar month containing today.
func CurrentMonth(today string) Period {
	t := parseDate(today)
	start := time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, time.UTC)
	// Day 0 of the next month is the last day of this one.
	end := time.Date(t.Year(), t.Month()+1, 0, 0, 0, 0, 0, time.UTC)
	return Period{Type: Month, StartDate: FormatDate(start), EndDate: FormatDate(end)}
}

// CurrentQuarter returns the calendar quarter containing today
// (Jan-Mar, Apr-Jun, Jul-Sep, Oct-Dec).
func CurrentQuarter(today string) Period {
	t := parseDate(today)
	startMonth := time.Month((int(t.Month())-1)/3*3 + 1)
	start := time.Date(t.Year(), startMonth, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(t.Year(), startMonth+3, 0, 0, 0, 0, 0, time.UTC)
	return Period{Type: Quarter, StartDate: FormatDate(start), EndDate: FormatDate(end)}
}

// CurrentYear returns the calendar year containing today.
func CurrentYear(today string) Period {
	t := parseDate(today)
	return Period{
		Type:      Year,
		StartDate: fmt.Sprintf("%04d-01-01", t.Year()),
		EndDate:   fmt.Sprintf("%04d-12-31", t.Year()),
	}
}

// Current returns the canonical period of the given type containing today.
// It fails with ErrCustomPeriod for the custom type.
func Current(t Type, today string) (Period, error) {
	switch t {
	case Week:
		return CurrentWeek(today), nil
	case Month:
		return CurrentMonth(today), nil
	case Quarter:
		return CurrentQuarter(today), nil
	case Year:
		return CurrentYear(today), nil
	case Custom:
		return Period{}, ErrCustomPeriod
	default:
		return Period{}, fmt.Errorf("unknown period type %q", t)
	}
}

// Next returns the immediately following period of the same type. Named
// types advance by their calendar unit; custom periods keep their inclusive
// day count and start the day after the old end date.
func Next(p Period) Period {
	switch p.Type {
	case Week:
		return Period{
			Type:      Week,
			StartDate: AddDays(p.StartDate, 7),
			EndDate:   AddDays(p.EndDate, 7),
		}
	case Month, Quarter:
		months := 1
		if p.Type == Quarter {
			months = 3
		}
		start := parseDate(p.StartDate).AddDate(0, months, 0)
		end := time.Date(start.Year(), start.Month()+time.Month(months), 0, 0, 0, 0, 0, time.UTC)
		return Period{Type: p.Type, StartDate: FormatDate(start), EndDate: FormatDate(end)}
	case Year:
		return Period{
			Type:      Year,
			StartDate: FormatDate(parseDate(p.StartDate).AddDate(1, 0, 0)),
			EndDate:   FormatDate(parseDate(p.EndDate).AddDate(1, 0, 0)),
		}
	default:
		// Custom: a same-length window abutting the original.
		days := DurationDays(p)
		start := AddDays(p.EndDate, 1)
		return Period{Type: Custom, StartDate: start, EndDate: AddDays(start, days-1)}
	}
}

// Contains reports whether date falls within the period, bounds inclusive.
func Contains(p Period, date string) bool {
	return p.StartDate <= date && date <= p.EndDate
}

// Expired reports whether the period ended before today.
func Expired(p Period, today string) bool {
	return p.EndDate < today
}

// Active reports whether today falls within the period.
func Active(p Period, today string) bool {
	return Contains(p, today)
}

// Overlap reports whether two periods intersect. Touching endpoints count
// as overlap; adjacent budgets sharing a boundary day are ambiguous.
func Overlap(a, b Period) bool {
	return a.StartDate <= b.EndDate && b.StartDate <= a.EndDate
}

// DurationDays returns the inclusive day count of the period.
func DurationDays(p Period) int {
	return DaysBetween(p.StartDate, p.EndDate) + 1
}
