// Package schedule materializes occurrences of recurring transaction
// templates. Generation is deterministic: the same snapshot and fromDate
// always produce the same occurrences, so callers may invoke it repeatedly
// and filter the window down further.
package schedule

import (
	"fmt"
	"time"

	"fburn/internal/model"
	"fburn/internal/period"
)

// windowDays bounds how far ahead occurrences are materialized in one call.
const windowDays = 365

// maxOccurrences caps runaway schedules (interval typos and the like).
const maxOccurrences = 400

// GenerateVirtual expands every enabled template in the snapshot into
// occurrences dated on/after fromDate, within a one-year window. Occurrence
// ids are derived from the template id and date, so regeneration is stable.
func GenerateVirtual(txs []model.Transaction, fromDate string) []model.Transaction {
	until := period.AddDays(fromDate, windowDays)
	var out []model.Transaction
	for _, tx := range txs {
		if !tx.IsTemplate() {
			continue
		}
		for _, date := range occurrenceDates(*tx.Schedule, fromDate, until) {
			out = append(out, model.Transaction{
				ID:               fmt.Sprintf("%s:%s", tx.ID, date),
				Type:             tx.Type,
				Name:             tx.Name,
				Category:         tx.Category,
				Amount:           tx.Amount,
				Date:             date,
				CreatedAt:        tx.CreatedAt,
				SourceTemplateID: tx.ID,
			})
		}
	}
	return out
}

// occurrenceDates lists the schedule's dates in [fromDate, until]. Steps
// are always computed from the schedule's start date, not cumulatively, so
// a monthly schedule anchored on the 31st clamps to short months without
// drifting (Jan 31 -> Feb 28 -> Mar 31).
func occurrenceDates(s model.Schedule, fromDate, until string) []string {
	interval := s.Interval
	if interval < 1 {
		interval = 1
	}
	start, err := time.Parse("2006-01-02", s.StartDate)
	if err != nil {
		return nil
	}

	var dates []string
	for k := firstStep(s, start, fromDate, interval); len(dates) < maxOccurrences; k++ {
		var occ time.Time
		switch s.Frequency {
		case model.Daily:
			occ = start.AddDate(0, 0, k*interval)
		case model.Weekly:
			occ = start.AddDate(0, 0, k*7*interval)
		case model.Monthly:
			occ = addMonthsClamped(start, k*interval)
		case model.Yearly:
			occ = addMonthsClamped(start, k*12*interval)
		default:
			return nil
		}

		date := period.FormatDate(occ)
		if date > until {
			break
		}
		if date >= fromDate {
			dates = append(dates, date)
		}
	}
	return dates
}

// firstStep fast-forwards the step index to just before the first
// occurrence that can land on/after fromDate. Old templates would
// otherwise walk every historical occurrence and exhaust the emission
// cap before reaching the window. The estimate is a deliberate
// underestimate; the caller's window check skips the last few steps.
func firstStep(s model.Schedule, start time.Time, fromDate string, interval int) int {
	from, err := time.Parse("2006-01-02", fromDate)
	if err != nil || !start.Before(from) {
		return 0
	}

	var k int
	switch s.Frequency {
	case model.Daily:
		k = period.DaysBetween(s.StartDate, fromDate) / interval
	case model.Weekly:
		k = period.DaysBetween(s.StartDate, fromDate) / (7 * interval)
	case model.Monthly:
		months := (from.Year()-start.Year())*12 + int(from.Month()-start.Month())
		k = months / interval
	case model.Yearly:
		k = (from.Year() - start.Year()) / interval
	default:
		return 0
	}
	k--
	if k < 0 {
		k = 0
	}
	return k
}

// addMonthsClamped shifts t by whole months, clamping the day of month to
// the target month's length instead of letting it spill over.
func addMonthsClamped(t time.Time, months int) time.Time {
	first := time.Date(t.Year(), t.Month()+time.Month(months), 1, 0, 0, 0, 0, time.UTC)
	lastDay := first.AddDate(0, 1, -1).Day()
	day := t.Day()
	if day > lastDay {
		day = lastDay
	}
	return time.Date(first.Year(), first.Month(), day, 0, 0, 0, 0, time.UTC)
}
