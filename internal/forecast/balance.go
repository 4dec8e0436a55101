package forecast

import (
	"math"

	"fburn/internal/model"
	"fburn/internal/period"
)

// VirtualGenerator materializes occurrences of recurring templates from a
// snapshot, dated on/after fromDate. The production implementation lives in
// internal/schedule; forecast only assumes it is pure and may return a
// wider window than needed, so results are always re-filtered here.
type VirtualGenerator func(txs []model.Transaction, fromDate string) []model.Transaction

// WeightedAverage computes a linearly weighted monthly average of the given
// transaction type over the trailing months strictly before refMonth
// (YYYY-MM). The most recent trailing month carries the highest weight.
// Returns 0 when months <= 0.
func WeightedAverage(txs []model.Transaction, txType model.TransactionType, months int, refMonth string) float64 {
	var weightedSum, totalWeight float64
	for i := 1; i <= months; i++ {
		m := period.AddMonths(refMonth, -i)
		weight := float64(months - i + 1)

		var sum float64
		for _, tx := range txs {
			if tx.Type == txType && period.MonthOf(tx.Date) == m {
				sum += tx.Amount
			}
		}
		weightedSum += sum * weight
		totalWeight += weight
	}
	if totalWeight <= 0 {
		return 0
	}
	return weightedSum / totalWeight
}

// CurrentBalance sums all transactions dated on/before today, income
// additive and expense subtractive. Future-dated transactions are excluded
// regardless of when they were recorded.
func CurrentBalance(txs []model.Transaction, today string) float64 {
	var balance float64
	for _, tx := range txs {
		if tx.Date > today {
			continue
		}
		switch tx.Type {
		case model.Income:
			balance += tx.Amount
		case model.Expense:
			balance -= tx.Amount
		}
	}
	return balance
}

// scheduledImpact totals the scheduled income and expense expected in
// (startDate, endDate]. Concrete occurrences from the generator are summed
// first; each template then contributes an estimated occurrence count for
// the range, minus the occurrences already counted, so nothing is billed
// twice. The monthly and yearly estimates use fixed 30- and 365-day
// divisors, matching how the projections are quoted elsewhere.
func scheduledImpact(txs []model.Transaction, gen VirtualGenerator, startDate, endDate string) (income, expense float64) {
	counted := make(map[string]int)
	if gen != nil {
		for _, v := range gen(txs, startDate) {
			if v.Date <= startDate || v.Date > endDate {
				continue
			}
			switch v.Type {
			case model.Income:
				income += v.Amount
			case model.Expense:
				expense += v.Amount
			}
			counted[v.SourceTemplateID]++
		}
	}

	days := period.DaysBetween(startDate, endDate)
	for _, tx := range txs {
		if !tx.IsTemplate() {
			continue
		}
		interval := tx.Schedule.Interval
		if interval < 1 {
			interval = 1
		}

		var estimated int
		switch tx.Schedule.Frequency {
		case model.Daily:
			estimated = days / interval
		case model.Weekly:
			estimated = days / (7 * interval)
		case model.Monthly:
			estimated = days / (30 * interval)
		case model.Yearly:
			estimated = days / (365 * interval)
		}

		extra := estimated - counted[tx.ID]
		if extra <= 0 {
			continue
		}
		amount := float64(extra) * tx.Amount
		switch tx.Type {
		case model.Income:
			income += amount
		case model.Expense:
			expense += amount
		}
	}
	return income, expense
}

// ProjectFutureBalance projects the balance curve at 30-day checkpoints
// from today through days, blending the trailing weighted averages with
// scheduled transactions over each checkpoint's range. Offset 0 is the
// current balance itself.
func ProjectFutureBalance(txs []model.Transaction, days, trailingMonths int, today string, gen VirtualGenerator) []model.BalanceProjection {
	balance := CurrentBalance(txs, today)
	refMonth := period.MonthOf(today)
	avgIncome := WeightedAverage(txs, model.Income, trailingMonths, refMonth)
	avgExpense := WeightedAverage(txs, model.Expense, trailingMonths, refMonth)

	var out []model.BalanceProjection
	for d := 0; d <= days; d += 30 {
		date := period.AddDays(today, d)
		projected := balance
		if d > 0 {
			months := float64(d) / 30
			schedIncome, schedExpense := scheduledImpact(txs, gen, today, date)
			projected = balance + avgIncome*months - avgExpense*months + schedIncome - schedExpense
		}
		out = append(out, model.BalanceProjection{
			Date:      date,
			Balance:   math.Round(projected),
			DayOffset: d,
		})
	}
	return out
}

// BalanceZone classifies a projected balance against average monthly
// income: green at or above 20% of a month's income, red at or below zero,
// yellow in between. Without meaningful income the sign alone decides.
func BalanceZone(balance, avgMonthlyIncome float64) model.Zone {
	if avgMonthlyIncome <= 0 {
		if balance > 0 {
			return model.ZoneGreen
		}
		return model.ZoneRed
	}
	switch {
	case balance >= 0.2*avgMonthlyIncome:
		return model.ZoneGreen
	case balance <= 0:
		return model.ZoneRed
	default:
		return model.ZoneYellow
	}
}

// HistoryMonths counts the distinct calendar months present in the
// snapshot. Callers gate forecast display on at least one month of history.
func HistoryMonths(txs []model.Transaction) int {
	months := make(map[string]struct{})
	for _, tx := range txs {
		if len(tx.Date) >= 7 {
			months[period.MonthOf(tx.Date)] = struct{}{}
		}
	}
	return len(months)
}
