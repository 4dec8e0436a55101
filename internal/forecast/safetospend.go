package forecast

import (
	"math"
	"sort"

	"fburn/internal/budget"
	"fburn/internal/model"
	"fburn/internal/period"
)

// SafeToSpend nets the selected month's balance against upcoming scheduled
// bills and reserved budget headroom. Bills and reserves only exist for the
// rest of the current month; for any other selectedMonth (YYYY-MM) they are
// zero and the figure is just that month's income minus expense. The result
// may be negative; a deficit is reported, never clamped.
func SafeToSpend(txs []model.Transaction, budgets []model.Budget, selectedMonth, today string, gen VirtualGenerator) model.SafeToSpendBreakdown {
	monthPeriod := period.CurrentMonth(selectedMonth + "-01")

	var balance float64
	for _, tx := range txs {
		if !period.Contains(monthPeriod, tx.Date) {
			continue
		}
		switch tx.Type {
		case model.Income:
			balance += tx.Amount
		case model.Expense:
			balance -= tx.Amount
		}
	}

	var bills []model.UpcomingBill
	var billsTotal, reserves float64

	if selectedMonth == period.MonthOf(today) {
		if gen != nil {
			for _, v := range gen(txs, today) {
				if v.Type != model.Expense || v.Date <= today || v.Date > monthPeriod.EndDate {
					continue
				}
				bills = append(bills, model.UpcomingBill{
					Name:     v.Name,
					Amount:   v.Amount,
					Date:     v.Date,
					Category: v.Category,
				})
				billsTotal += v.Amount
			}
			sort.SliceStable(bills, func(i, j int) bool { return bills[i].Date < bills[j].Date })
		}

		// Headroom still reserved by active limit budgets. Overspent
		// budgets contribute zero, not a negative reserve.
		for _, b := range budgets {
			if b.Status != model.Active || b.Type != model.Limit || !period.Active(b.Period, today) {
				continue
			}
			if remaining := budget.Progress(b, txs).Remaining; remaining > 0 {
				reserves += remaining
			}
		}
	}

	return model.SafeToSpendBreakdown{
		SafeToSpend:        math.Round(balance - billsTotal - reserves),
		CurrentBalance:     balance,
		UpcomingBills:      bills,
		UpcomingBillsTotal: billsTotal,
		BudgetReserves:     reserves,
	}
}
