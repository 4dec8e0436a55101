package cmd

import (
	"fmt"

	"fburn/internal/cli"
	"fburn/internal/forecast"
	"fburn/internal/model"

	"github.com/spf13/cobra"
)

var flagBurnAll bool

var burnCmd = &cobra.Command{
	Use:   "burn",
	Short: "Burn-rate predictions for active limit budgets",
	RunE:  runBurn,
}

func init() {
	burnCmd.Flags().BoolVarP(&flagBurnAll, "all", "a", false, "Include safe budgets (full analysis)")
	rootCmd.AddCommand(burnCmd)
}

func runBurn(_ *cobra.Command, _ []string) error {
	now, err := today()
	if err != nil {
		return err
	}

	txs, budgets, err := loadLedger()
	if err != nil {
		return err
	}

	var predictions []model.BudgetPrediction
	if flagBurnAll {
		for _, b := range budgets {
			if p := forecast.BudgetAnalysis(b, txs, now); p != nil {
				predictions = append(predictions, *p)
			}
		}
	} else {
		predictions = forecast.AllPredictions(budgets, txs, now)
	}

	if len(predictions) == 0 {
		if flagBurnAll {
			fmt.Println("\n  No active limit budgets to analyze.")
		} else {
			fmt.Println("\n  Nothing at risk within the next two weeks.")
		}
		return nil
	}

	cur := currency()

	fmt.Println()
	fmt.Println(cli.RenderTitle("BURN RATE"))
	fmt.Println()

	rows := make([][]string, 0, len(predictions))
	for _, p := range predictions {
		exceeds := cli.FormatDays(p.DaysUntilExceeded)
		if p.DaysUntilExceeded < 0 {
			exceeds = "-"
		}
		rows = append(rows, []string{
			p.CategoryID,
			cli.FormatMoney(p.CurrentSpent, cur),
			cli.FormatMoney(p.BudgetLimit, cur),
			cli.FormatMoney(p.DailyBurnRate, cur) + "/day",
			cli.FormatMoney(p.ProjectedTotal, cur),
			exceeds,
			cli.RenderUrgency(p.Urgency),
		})
	}

	fmt.Print(cli.RenderTable(cli.Table{
		Headers: []string{"Category", "Spent", "Limit", "Burn", "Projected", "Exceeds in", "Urgency"},
		Rows:    rows,
	}))
	return nil
}
