package cmd

import (
	"fmt"
	"time"

	"fburn/internal/budget"
	"fburn/internal/cli"
	"fburn/internal/model"

	"github.com/spf13/cobra"
)

var renewCmd = &cobra.Command{
	Use:   "renew",
	Short: "Renew elapsed recurring budgets",
	RunE:  runRenew,
}

func init() {
	rootCmd.AddCommand(renewCmd)
}

func runRenew(_ *cobra.Command, _ []string) error {
	now, err := today()
	if err != nil {
		return err
	}

	ledger, err := openLedger()
	if err != nil {
		return err
	}
	defer func() { _ = ledger.Close() }()

	budgets, err := ledger.ListBudgets()
	if err != nil {
		return fmt.Errorf("loading budgets: %w", err)
	}

	due := budget.DueForRenewal(budgets, now)
	if len(due) == 0 {
		fmt.Println("\n  Nothing to renew.")
		return nil
	}

	cur := currency()
	rows := make([][]string, 0, len(due))
	for _, b := range due {
		next := budget.Renew(b, time.Now())
		if err := ledger.SaveBudget(next); err != nil {
			return fmt.Errorf("saving renewed budget: %w", err)
		}
		// The renewal itself never touches the old record; closing it
		// out is this command's bookkeeping.
		if err := ledger.SetBudgetStatus(b.ID, model.Completed); err != nil {
			return fmt.Errorf("completing elapsed budget: %w", err)
		}
		rows = append(rows, []string{
			next.CategoryID,
			cli.FormatMoney(next.Amount, cur),
			next.Period.StartDate + ".." + next.Period.EndDate,
		})
	}

	fmt.Println()
	fmt.Print(cli.RenderTable(cli.Table{
		Title:   fmt.Sprintf("Renewed %d budget(s)", len(rows)),
		Headers: []string{"Category", "Amount", "New period"},
		Rows:    rows,
	}))
	return nil
}
