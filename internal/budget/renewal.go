package budget

import (
	"time"

	"github.com/google/uuid"

	"fburn/internal/model"
	"fburn/internal/period"
)

// ShouldRenew reports whether a budget is eligible for renewal: recurring,
// still active, and its period has fully elapsed.
func ShouldRenew(b model.Budget, today string) bool {
	return b.IsRecurring && b.Status == model.Active && period.Expired(b.Period, today)
}

// DueForRenewal returns the budgets eligible for renewal today.
func DueForRenewal(budgets []model.Budget, today string) []model.Budget {
	var due []model.Budget
	for _, b := range budgets {
		if ShouldRenew(b, today) {
			due = append(due, b)
		}
	}
	return due
}

// Renew produces the next-period clone of a recurring budget: fresh id and
// CreatedAt, next period, everything else carried over, status active. The
// original is left untouched; whatever bookkeeping it needs (marking it
// completed, persisting the clone) is the caller's.
func Renew(b model.Budget, now time.Time) model.Budget {
	next := b
	next.ID = uuid.NewString()
	next.Period = period.Next(b.Period)
	next.Status = model.Active
	next.CreatedAt = now
	return next
}
