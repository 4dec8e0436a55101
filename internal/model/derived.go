package model

// Derived results are recomputed on demand from a Budget plus a transaction
// snapshot; nothing here is persisted or cached, so a stale classification
// cannot outlive the data that produced it.

// BudgetProgress is the spend position of one budget within its period.
type BudgetProgress struct {
	BudgetID         string
	CategoryID       string
	Budgeted         float64
	Spent            float64
	Remaining        float64 // Budgeted - Spent, may be negative
	Percentage       float64
	IsOverBudget     bool
	TransactionCount int
}

// Urgency buckets how soon a limit budget will be exceeded.
type Urgency string

const (
	UrgencyHigh   Urgency = "high"
	UrgencyMedium Urgency = "medium"
	UrgencyLow    Urgency = "low"
	UrgencySafe   Urgency = "safe"
)

// BudgetPrediction is the burn-rate outlook for one active limit budget.
// DaysUntilExceeded is 0 when the limit is already exceeded, positive for
// days remaining, and -1 (analysis variant only) when the budget is safe
// for the rest of its period.
type BudgetPrediction struct {
	BudgetID          string
	CategoryID        string
	DaysUntilExceeded int
	DailyBurnRate     float64
	ProjectedTotal    float64
	BudgetLimit       float64
	CurrentSpent      float64
	Urgency           Urgency
}

// BalanceProjection is one checkpoint on a projected balance curve.
type BalanceProjection struct {
	Date      string
	Balance   float64
	DayOffset int
}

// Zone classifies a projected balance against average monthly income.
type Zone string

const (
	ZoneGreen  Zone = "green"
	ZoneYellow Zone = "yellow"
	ZoneRed    Zone = "red"
)

// UpcomingBill is a scheduled expense due later in the current month.
type UpcomingBill struct {
	Name     string
	Amount   float64
	Date     string
	Category string
}

// SafeToSpendBreakdown nets the selected month's balance against upcoming
// bills and reserved budget headroom. SafeToSpend may be negative; callers
// should surface a deficit rather than clamp it.
type SafeToSpendBreakdown struct {
	SafeToSpend        float64
	CurrentBalance     float64
	UpcomingBills      []UpcomingBill
	UpcomingBillsTotal float64
	BudgetReserves     float64
}
