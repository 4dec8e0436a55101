package cmd

import (
	"fmt"
	"time"

	"fburn/internal/cli"
	"fburn/internal/forecast"
	"fburn/internal/period"
	"fburn/internal/schedule"

	"github.com/spf13/cobra"
)

var safeCmd = &cobra.Command{
	Use:   "safe [YYYY-MM]",
	Short: "Safe-to-spend breakdown for a month",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runSafe,
}

func init() {
	rootCmd.AddCommand(safeCmd)
}

func runSafe(_ *cobra.Command, args []string) error {
	now, err := today()
	if err != nil {
		return err
	}

	month := period.MonthOf(now)
	if len(args) == 1 {
		if _, err := time.Parse("2006-01", args[0]); err != nil {
			return fmt.Errorf("invalid month %q (want YYYY-MM)", args[0])
		}
		month = args[0]
	}

	txs, budgets, err := loadLedger()
	if err != nil {
		return err
	}

	sts := forecast.SafeToSpend(txs, budgets, month, now, schedule.GenerateVirtual)
	cur := currency()

	fmt.Println()
	fmt.Println(cli.RenderTitle(fmt.Sprintf("SAFE TO SPEND  %s", month)))
	fmt.Println()

	rows := [][]string{
		{"Month balance", cli.FormatMoney(sts.CurrentBalance, cur)},
		{"Upcoming bills", "-" + cli.FormatMoney(sts.UpcomingBillsTotal, cur)},
		{"Budget reserves", "-" + cli.FormatMoney(sts.BudgetReserves, cur)},
		{"---"},
		{"Safe to spend", cli.FormatMoney(sts.SafeToSpend, cur)},
	}
	fmt.Print(cli.RenderTable(cli.Table{
		Headers: []string{"Component", "Amount"},
		Rows:    rows,
	}))

	if len(sts.UpcomingBills) > 0 {
		billRows := make([][]string, 0, len(sts.UpcomingBills))
		for _, b := range sts.UpcomingBills {
			billRows = append(billRows, []string{b.Date, b.Name, b.Category, cli.FormatMoney(b.Amount, cur)})
		}
		fmt.Println()
		fmt.Print(cli.RenderTable(cli.Table{
			Title:   "Upcoming Bills",
			Headers: []string{"Due", "Name", "Category", "Amount"},
			Rows:    billRows,
		}))
	}

	if sts.SafeToSpend < 0 {
		fmt.Println("\n  Deficit: spending this month already exceeds what is safe.")
	} else if month != period.MonthOf(now) {
		fmt.Println("\n  Bills and reserves apply to the current month only.")
	}
	return nil
}
