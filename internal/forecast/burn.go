// Package forecast derives burn-rate predictions, balance projections, and
// the safe-to-spend figure from transaction and budget snapshots. Every
// function is pure and takes an explicit today date; the recurrence
// expander is injected as a VirtualGenerator so tests can stub it.
package forecast

import (
	"math"
	"sort"

	"fburn/internal/model"
	"fburn/internal/period"
)

// alertHorizonDays is the risk window beyond which PredictBudgetExceeded
// suppresses its result; farther-out overruns are analysis-only.
const alertHorizonDays = 14

// burnRate holds the intermediate linear burn computation for one budget.
type burnRate struct {
	spent         float64
	rate          float64 // spend per elapsed day
	projected     float64 // spent + rate * daysRemaining
	daysRemaining int
}

// computeBurnRate derives the linear daily burn from spend elapsed so far.
// Day counts are inclusive: the period start day and today both count as
// elapsed, so a budget checked on its first day has one elapsed day, never
// zero, which keeps the rate divisor positive.
func computeBurnRate(b model.Budget, txs []model.Transaction, today string) burnRate {
	var spent float64
	for _, tx := range txs {
		if tx.Type != model.Expense || tx.Category != b.CategoryID {
			continue
		}
		if tx.Date > today || !period.Contains(b.Period, tx.Date) {
			continue
		}
		spent += tx.Amount
	}

	elapsed := period.DaysBetween(b.Period.StartDate, today) + 1
	if elapsed < 1 {
		elapsed = 1
	}
	remaining := period.DurationDays(b.Period) - elapsed
	if remaining < 0 {
		remaining = 0
	}

	rate := spent / float64(elapsed)
	return burnRate{
		spent:         spent,
		rate:          rate,
		projected:     spent + rate*float64(remaining),
		daysRemaining: remaining,
	}
}

func predictable(b model.Budget, today string) bool {
	return b.Status == model.Active && b.Type == model.Limit && period.Active(b.Period, today)
}

func prediction(b model.Budget, br burnRate, daysUntil int, urgency model.Urgency) *model.BudgetPrediction {
	return &model.BudgetPrediction{
		BudgetID:          b.ID,
		CategoryID:        b.CategoryID,
		DaysUntilExceeded: daysUntil,
		DailyBurnRate:     math.Round(br.rate),
		ProjectedTotal:    math.Round(br.projected),
		BudgetLimit:       b.Amount,
		CurrentSpent:      math.Round(br.spent),
		Urgency:           urgency,
	}
}

func urgencyFor(daysUntil int) model.Urgency {
	switch {
	case daysUntil <= 3:
		return model.UrgencyHigh
	case daysUntil <= 7:
		return model.UrgencyMedium
	default:
		return model.UrgencyLow
	}
}

// PredictBudgetExceeded returns an alert-worthy prediction for an active
// limit budget, or nil. Already-exceeded budgets report immediately with
// daysUntilExceeded=0; otherwise the projection must cross the limit within
// the 14-day alert horizon to surface at all.
func PredictBudgetExceeded(b model.Budget, txs []model.Transaction, today string) *model.BudgetPrediction {
	if !predictable(b, today) {
		return nil
	}

	br := computeBurnRate(b, txs, today)
	if br.spent >= b.Amount {
		return prediction(b, br, 0, model.UrgencyHigh)
	}
	if br.rate <= 0 || br.projected <= b.Amount {
		return nil
	}

	daysUntil := int(math.Ceil((b.Amount - br.spent) / br.rate))
	if daysUntil > alertHorizonDays {
		return nil
	}
	return prediction(b, br, daysUntil, urgencyFor(daysUntil))
}

// BudgetAnalysis is the full-visibility variant of PredictBudgetExceeded:
// it never filters on the alert horizon and reports safe budgets too, with
// urgency safe and daysUntilExceeded=-1.
func BudgetAnalysis(b model.Budget, txs []model.Transaction, today string) *model.BudgetPrediction {
	if !predictable(b, today) {
		return nil
	}

	br := computeBurnRate(b, txs, today)
	if br.spent >= b.Amount {
		return prediction(b, br, 0, model.UrgencyHigh)
	}
	if br.rate <= 0 || br.projected <= b.Amount {
		return prediction(b, br, -1, model.UrgencySafe)
	}

	daysUntil := int(math.Ceil((b.Amount - br.spent) / br.rate))
	return prediction(b, br, daysUntil, urgencyFor(daysUntil))
}

// AllPredictions maps every budget through PredictBudgetExceeded and sorts
// the survivors soonest-first; already-exceeded budgets, at 0, lead.
func AllPredictions(budgets []model.Budget, txs []model.Transaction, today string) []model.BudgetPrediction {
	var out []model.BudgetPrediction
	for _, b := range budgets {
		if p := PredictBudgetExceeded(b, txs, today); p != nil {
			out = append(out, *p)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].DaysUntilExceeded < out[j].DaysUntilExceeded
	})
	return out
}
