// Package model defines domain types for the fburn ledger and its derived
// results. Dates are ISO YYYY-MM-DD strings throughout; the fixed-width
// format keeps string comparison chronologically correct.
package model

import "time"

// TransactionType distinguishes money in from money out.
type TransactionType string

const (
	Income  TransactionType = "income"
	Expense TransactionType = "expense"
)

// Frequency is the recurrence step unit of a schedule.
type Frequency string

const (
	Daily   Frequency = "daily"
	Weekly  Frequency = "weekly"
	Monthly Frequency = "monthly"
	Yearly  Frequency = "yearly"
)

// Schedule marks a transaction as a recurring template.
type Schedule struct {
	Enabled   bool
	Frequency Frequency
	Interval  int // every N frequency units, >= 1
	StartDate string
}

// Transaction is an immutable record of money movement. A transaction with
// a non-nil enabled Schedule is a template; occurrences materialized from
// it carry SourceTemplateID linking back.
type Transaction struct {
	ID               string
	Type             TransactionType
	Name             string
	Category         string
	Amount           float64 // non-negative, unit-agnostic
	Date             string
	CreatedAt        time.Time
	Schedule         *Schedule
	SourceTemplateID string
}

// IsTemplate reports whether the transaction is an enabled recurring
// template.
func (t Transaction) IsTemplate() bool {
	return t.Schedule != nil && t.Schedule.Enabled
}
