package cmd

import (
	"fmt"

	"fburn/internal/cli"
	"fburn/internal/forecast"
	"fburn/internal/model"
	"fburn/internal/period"
	"fburn/internal/schedule"

	"github.com/spf13/cobra"
)

var overviewCmd = &cobra.Command{
	Use:   "overview",
	Short: "Current month at a glance",
	RunE:  runOverview,
}

func init() {
	rootCmd.AddCommand(overviewCmd)
}

func runOverview(_ *cobra.Command, _ []string) error {
	now, err := today()
	if err != nil {
		return err
	}

	txs, budgets, err := loadLedger()
	if err != nil {
		return err
	}
	if len(txs) == 0 && len(budgets) == 0 {
		fmt.Println("\n  Empty ledger.")
		fmt.Println("  Add a transaction with `fburn add`, a budget with `fburn budget`.")
		return nil
	}

	cur := currency()
	month := period.CurrentMonth(now)

	var income, expense float64
	for _, tx := range txs {
		if !period.Contains(month, tx.Date) {
			continue
		}
		switch tx.Type {
		case model.Income:
			income += tx.Amount
		case model.Expense:
			expense += tx.Amount
		}
	}

	sts := forecast.SafeToSpend(txs, budgets, period.MonthOf(now), now, schedule.GenerateVirtual)
	predictions := forecast.AllPredictions(budgets, txs, now)

	active := 0
	for _, b := range budgets {
		if b.Status == model.Active && period.Active(b.Period, now) {
			active++
		}
	}

	fmt.Println()
	fmt.Println(cli.RenderTitle(fmt.Sprintf("FBURN  %s", period.MonthOf(now))))
	fmt.Println()

	rows := [][]string{
		{"Income", cli.FormatMoney(income, cur)},
		{"Expense", cli.FormatMoney(expense, cur)},
		{"Balance", cli.FormatMoney(income-expense, cur)},
		{"---"},
		{"Upcoming bills", cli.FormatMoney(sts.UpcomingBillsTotal, cur)},
		{"Budget reserves", cli.FormatMoney(sts.BudgetReserves, cur)},
		{"Safe to spend", cli.FormatMoney(sts.SafeToSpend, cur)},
		{"---"},
		{"Active budgets", cli.FormatNumber(int64(active))},
	}

	if len(predictions) > 0 {
		p := predictions[0]
		rows = append(rows, []string{
			"Next overrun",
			fmt.Sprintf("%s in %s (%s)", p.CategoryID, cli.FormatDays(p.DaysUntilExceeded), cli.RenderUrgency(p.Urgency)),
		})
	}

	fmt.Print(cli.RenderTable(cli.Table{
		Headers: []string{"Metric", "Value"},
		Rows:    rows,
	}))

	if sts.SafeToSpend < 0 {
		fmt.Println("\n  You are past safe spending for this month.")
	}
	return nil
}
