package cmd

import (
	"fmt"

	"fburn/internal/budget"
	"fburn/internal/cli"
	"fburn/internal/period"

	"github.com/spf13/cobra"
)

var budgetsCmd = &cobra.Command{
	Use:   "budgets",
	Short: "Budget progress for the current month",
	RunE:  runBudgets,
}

func init() {
	rootCmd.AddCommand(budgetsCmd)
}

func runBudgets(_ *cobra.Command, _ []string) error {
	now, err := today()
	if err != nil {
		return err
	}

	txs, budgets, err := loadLedger()
	if err != nil {
		return err
	}

	month := period.CurrentMonth(now)
	progress := budget.AllProgress(budgets, txs, month.StartDate, month.EndDate)
	if len(progress) == 0 {
		fmt.Println("\n  No active budgets in this period.")
		fmt.Println("  Create one with `fburn budget --category groceries --amount 500 --period month`.")
		return nil
	}

	cur := currency()

	fmt.Println()
	fmt.Println(cli.RenderTitle(fmt.Sprintf("BUDGETS  %s", period.MonthOf(now))))
	fmt.Println()

	rows := make([][]string, 0, len(progress))
	for _, p := range progress {
		status := "ok"
		if p.IsOverBudget {
			status = "over"
		}
		rows = append(rows, []string{
			p.CategoryID,
			cli.FormatMoney(p.Budgeted, cur),
			cli.FormatMoney(p.Spent, cur),
			cli.FormatMoney(p.Remaining, cur),
			cli.FormatPercent(p.Percentage),
			cli.RenderProgressBar(p.Percentage, 16),
			status,
		})
	}

	fmt.Print(cli.RenderTable(cli.Table{
		Headers: []string{"Category", "Budgeted", "Spent", "Remaining", "Used", "Bar", "Status"},
		Rows:    rows,
	}))
	return nil
}
