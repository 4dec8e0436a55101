package cmd

import (
	"fmt"
	"time"

	"fburn/internal/budget"
	"fburn/internal/cli"
	"fburn/internal/model"
	"fburn/internal/period"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
)

var (
	flagBudgetCategory  string
	flagBudgetAmount    float64
	flagBudgetType      string
	flagBudgetPeriod    string
	flagBudgetStart     string
	flagBudgetEnd       string
	flagBudgetRecurring bool
)

var budgetCmd = &cobra.Command{
	Use:   "budget",
	Short: "Create a budget",
	Long:  "Create a limit or goal budget for a category. Named periods anchor to the current calendar unit; custom periods need --from and --to.",
	RunE:  runBudget,
}

func init() {
	budgetCmd.Flags().StringVarP(&flagBudgetCategory, "category", "c", "", "Category id")
	budgetCmd.Flags().Float64VarP(&flagBudgetAmount, "amount", "a", 0, "Target amount")
	budgetCmd.Flags().StringVarP(&flagBudgetType, "type", "t", "limit", "Budget type: limit or goal")
	budgetCmd.Flags().StringVarP(&flagBudgetPeriod, "period", "p", "month", "Period: week, month, quarter, year, or custom")
	budgetCmd.Flags().StringVar(&flagBudgetStart, "from", "", "Custom period start (YYYY-MM-DD)")
	budgetCmd.Flags().StringVar(&flagBudgetEnd, "to", "", "Custom period end (YYYY-MM-DD)")
	budgetCmd.Flags().BoolVarP(&flagBudgetRecurring, "recurring", "r", false, "Renew automatically when the period elapses")
	_ = budgetCmd.MarkFlagRequired("category")
	_ = budgetCmd.MarkFlagRequired("amount")
	rootCmd.AddCommand(budgetCmd)
}

func runBudget(_ *cobra.Command, _ []string) error {
	now, err := today()
	if err != nil {
		return err
	}

	bType := model.BudgetType(flagBudgetType)
	if bType != model.Limit && bType != model.Goal {
		return fmt.Errorf("invalid type %q (want limit or goal)", flagBudgetType)
	}
	if flagBudgetAmount <= 0 {
		return fmt.Errorf("amount must be positive")
	}

	var p period.Period
	pType := period.Type(flagBudgetPeriod)
	if pType == period.Custom {
		if flagBudgetStart == "" || flagBudgetEnd == "" {
			return fmt.Errorf("custom periods need --from and --to")
		}
		for _, d := range []string{flagBudgetStart, flagBudgetEnd} {
			if _, err := time.Parse("2006-01-02", d); err != nil {
				return fmt.Errorf("invalid date %q (want YYYY-MM-DD)", d)
			}
		}
		if flagBudgetEnd < flagBudgetStart {
			return fmt.Errorf("--to must not precede --from")
		}
		p = period.Period{Type: period.Custom, StartDate: flagBudgetStart, EndDate: flagBudgetEnd}
	} else {
		p, err = period.Current(pType, now)
		if err != nil {
			return err
		}
	}

	b := model.Budget{
		ID:          uuid.NewString(),
		CategoryID:  flagBudgetCategory,
		Amount:      flagBudgetAmount,
		Type:        bType,
		Period:      p,
		IsRecurring: flagBudgetRecurring,
		Status:      model.Active,
		CreatedAt:   time.Now(),
	}

	ledger, err := openLedger()
	if err != nil {
		return err
	}
	defer func() { _ = ledger.Close() }()

	existing, err := ledger.ListBudgets()
	if err != nil {
		return fmt.Errorf("loading budgets: %w", err)
	}
	if budget.HasOverlap(b, existing, "") {
		return fmt.Errorf("an active %s budget already covers part of %s..%s",
			b.CategoryID, p.StartDate, p.EndDate)
	}

	if err := ledger.SaveBudget(b); err != nil {
		return fmt.Errorf("saving budget: %w", err)
	}

	fmt.Printf("  Created %s budget for %s: %s over %s..%s\n",
		b.Type, b.CategoryID, cli.FormatMoney(b.Amount, currency()), p.StartDate, p.EndDate)
	return nil
}
