// Package budget computes budget progress, renewal, and overlap validation
// over immutable transaction and budget snapshots. All functions are pure
// and O(n) over their inputs.
package budget

import (
	"fburn/internal/model"
	"fburn/internal/period"
)

// Progress computes the spend position of a budget from a transaction
// snapshot. Only expense transactions in the budget's category and period
// count. An empty or non-matching snapshot yields spent=0, not an error;
// a freshly created budget has no history yet.
func Progress(b model.Budget, txs []model.Transaction) model.BudgetProgress {
	var spent float64
	count := 0
	for _, tx := range txs {
		if tx.Type != model.Expense || tx.Category != b.CategoryID {
			continue
		}
		if !period.Contains(b.Period, tx.Date) {
			continue
		}
		spent += tx.Amount
		count++
	}

	pct := 0.0
	if b.Amount != 0 {
		pct = spent / b.Amount * 100
	}

	return model.BudgetProgress{
		BudgetID:         b.ID,
		CategoryID:       b.CategoryID,
		Budgeted:         b.Amount,
		Spent:            spent,
		Remaining:        b.Amount - spent,
		Percentage:       pct,
		IsOverBudget:     spent > b.Amount,
		TransactionCount: count,
	}
}

// ForPeriod returns the active budgets whose period overlaps the query
// window [startDate, endDate].
func ForPeriod(budgets []model.Budget, startDate, endDate string) []model.Budget {
	window := period.Period{Type: period.Custom, StartDate: startDate, EndDate: endDate}
	var out []model.Budget
	for _, b := range budgets {
		if b.Status != model.Active {
			continue
		}
		if period.Overlap(b.Period, window) {
			out = append(out, b)
		}
	}
	return out
}

// AllProgress computes progress for every active budget overlapping the
// query window.
func AllProgress(budgets []model.Budget, txs []model.Transaction, startDate, endDate string) []model.BudgetProgress {
	selected := ForPeriod(budgets, startDate, endDate)
	out := make([]model.BudgetProgress, 0, len(selected))
	for _, b := range selected {
		out = append(out, Progress(b, txs))
	}
	return out
}

// HasOverlap reports whether the candidate budget's period overlaps any
// other active budget in the same category. excludeID skips one budget by
// id, used when editing an existing record. Completed budgets never count.
func HasOverlap(candidate model.Budget, existing []model.Budget, excludeID string) bool {
	for _, b := range existing {
		if b.ID == candidate.ID || b.ID == excludeID {
			continue
		}
		if b.Status != model.Active || b.CategoryID != candidate.CategoryID {
			continue
		}
		if period.Overlap(b.Period, candidate.Period) {
			return true
		}
	}
	return false
}

// ActiveForCategory returns the active budget of the category whose period
// contains date, or nil. When overlap validation was bypassed and several
// match, the most recently created one wins.
func ActiveForCategory(budgets []model.Budget, categoryID, date string) *model.Budget {
	var best *model.Budget
	for i := range budgets {
		b := &budgets[i]
		if b.Status != model.Active || b.CategoryID != categoryID {
			continue
		}
		if !period.Contains(b.Period, date) {
			continue
		}
		if best == nil || b.CreatedAt.After(best.CreatedAt) {
			best = b
		}
	}
	if best == nil {
		return nil
	}
	out := *best
	return &out
}
