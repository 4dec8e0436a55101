package cmd

import (
	"fmt"

	"fburn/internal/cli"
	"fburn/internal/config"
	"fburn/internal/forecast"
	"fburn/internal/model"
	"fburn/internal/period"
	"fburn/internal/schedule"

	"github.com/spf13/cobra"
)

var flagForecastDays int

var forecastCmd = &cobra.Command{
	Use:   "forecast",
	Short: "Project the balance curve at 30-day checkpoints",
	RunE:  runForecast,
}

func init() {
	forecastCmd.Flags().IntVarP(&flagForecastDays, "days", "n", 0, "Projection horizon in days (default from config)")
	rootCmd.AddCommand(forecastCmd)
}

func runForecast(_ *cobra.Command, _ []string) error {
	now, err := today()
	if err != nil {
		return err
	}

	txs, _, err := loadLedger()
	if err != nil {
		return err
	}

	if forecast.HistoryMonths(txs) < 1 {
		fmt.Println("\n  Not enough history to forecast yet.")
		fmt.Println("  Record at least a month of transactions first.")
		return nil
	}

	cfg, _ := config.Load()
	days := flagForecastDays
	if days <= 0 {
		days = cfg.Forecast.HorizonDays
	}

	projections := forecast.ProjectFutureBalance(txs, days, cfg.Forecast.TrailingMonths, now, schedule.GenerateVirtual)
	avgIncome := forecast.WeightedAverage(txs, model.Income, cfg.Forecast.TrailingMonths, period.MonthOf(now))

	cur := currency()

	fmt.Println()
	fmt.Println(cli.RenderTitle(fmt.Sprintf("FORECAST  Next %dd", days)))
	fmt.Println()

	rows := make([][]string, 0, len(projections))
	for _, p := range projections {
		offset := "today"
		if p.DayOffset > 0 {
			offset = fmt.Sprintf("+%dd", p.DayOffset)
		}
		rows = append(rows, []string{
			p.Date,
			offset,
			cli.FormatMoney(p.Balance, cur),
			cli.RenderZone(forecast.BalanceZone(p.Balance, avgIncome)),
		})
	}

	fmt.Print(cli.RenderTable(cli.Table{
		Headers: []string{"Date", "Offset", "Balance", "Zone"},
		Rows:    rows,
	}))
	return nil
}
