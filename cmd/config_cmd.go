package cmd

import (
	"fmt"

	"fburn/internal/config"

	"github.com/spf13/cobra"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Show current configuration",
	RunE:  runConfig,
}

func init() {
	rootCmd.AddCommand(configCmd)
}

func runConfig(_ *cobra.Command, _ []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	fmt.Printf("  Config file: %s\n", config.ConfigPath())
	if config.Exists() {
		fmt.Println("  Status: loaded")
	} else {
		fmt.Println("  Status: using defaults (no config file)")
	}
	fmt.Println()

	fmt.Println("  [General]")
	fmt.Printf("    Currency:  %s\n", cfg.General.Currency)
	if cfg.General.DataDir != "" {
		fmt.Printf("    Data dir:  %s\n", cfg.General.DataDir)
	}
	fmt.Printf("    Ledger:    %s\n", dbPath())
	fmt.Println()

	fmt.Println("  [Forecast]")
	fmt.Printf("    Horizon:         %d days\n", cfg.Forecast.HorizonDays)
	fmt.Printf("    Trailing months: %d\n", cfg.Forecast.TrailingMonths)
	fmt.Println()

	fmt.Println("  [Alerts]")
	fmt.Printf("    Burn horizon: %d days\n", cfg.Alerts.BurnHorizonDays)
	fmt.Println()

	fmt.Println("  Run `fburn setup` to reconfigure.")
	return nil
}
