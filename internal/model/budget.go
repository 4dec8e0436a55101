package model

import (
	"time"

	"fburn/internal/period"
)

// BudgetType distinguishes spending ceilings from saving targets. Goal
// budgets are excluded from burn-rate and reserve logic.
type BudgetType string

const (
	Limit BudgetType = "limit"
	Goal  BudgetType = "goal"
)

// BudgetStatus is the budget lifecycle state.
type BudgetStatus string

const (
	Active    BudgetStatus = "active"
	Completed BudgetStatus = "completed"
)

// Budget is a spending or saving target over a period. At most one active
// budget per category should cover any given date; the overlap validator
// enforces this at creation time rather than auto-correcting.
type Budget struct {
	ID          string
	CategoryID  string
	Amount      float64 // ceiling for limit, floor for goal
	Type        BudgetType
	Period      period.Period
	IsRecurring bool
	Status      BudgetStatus
	AccountID   string
	CreatedAt   time.Time
}
