package cmd

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"fburn/internal/config"

	"github.com/spf13/cobra"
)

var setupCmd = &cobra.Command{
	Use:   "setup",
	Short: "First-time setup wizard",
	RunE:  runSetup,
}

func init() {
	rootCmd.AddCommand(setupCmd)
}

func runSetup(_ *cobra.Command, _ []string) error {
	reader := bufio.NewReader(os.Stdin)

	// Load existing config or defaults
	cfg, _ := config.Load()

	fmt.Println()
	fmt.Println("  Welcome to fburn!")
	fmt.Println()

	// 1. Currency symbol
	fmt.Println("  1. Currency symbol")
	fmt.Printf("     Current: %s\n", cfg.General.Currency)
	fmt.Print("     > ")
	cur, _ := reader.ReadString('\n')
	cur = strings.TrimSpace(cur)
	if cur != "" {
		cfg.General.Currency = cur
	}
	fmt.Println()

	// 2. Forecast horizon
	fmt.Println("  2. Forecast horizon")
	fmt.Println("     (1) 30 days")
	fmt.Println("     (2) 90 days [default]")
	fmt.Println("     (3) 180 days")
	fmt.Print("     > ")
	choice, _ := reader.ReadString('\n')
	switch strings.TrimSpace(choice) {
	case "1":
		cfg.Forecast.HorizonDays = 30
	case "3":
		cfg.Forecast.HorizonDays = 180
	default:
		cfg.Forecast.HorizonDays = 90
	}
	fmt.Println()

	// 3. Ledger location
	fmt.Println("  3. Ledger location")
	fmt.Printf("     Default: %s\n", dbPath())
	fmt.Println("     Leave empty to keep, or enter a directory.")
	fmt.Print("     > ")
	dir, _ := reader.ReadString('\n')
	dir = strings.TrimSpace(dir)
	if dir != "" {
		cfg.General.DataDir = dir
	}

	// Save
	if err := config.Save(cfg); err != nil {
		return fmt.Errorf("saving config: %w", err)
	}

	fmt.Println()
	fmt.Printf("  Saved to %s\n", config.ConfigPath())
	fmt.Println("  Run `fburn setup` anytime to reconfigure.")
	fmt.Println()

	return nil
}
