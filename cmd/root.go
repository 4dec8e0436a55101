// Package cmd implements the fburn CLI commands.
package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"fburn/internal/config"
	"fburn/internal/model"
	"fburn/internal/store"

	"github.com/spf13/cobra"
)

var (
	flagDBPath string
	flagDate   string
	flagQuiet  bool
)

var rootCmd = &cobra.Command{
	Use:   "fburn",
	Short: "Personal finance burn-rate and forecast CLI",
	Long:  "Track transactions and budgets, watch your burn rate, and see what is actually safe to spend.",
	RunE:  runOverview,
}

// Execute is the main entry point called from main.go.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "", "Ledger database path (default from config/XDG)")
	rootCmd.PersistentFlags().StringVar(&flagDate, "date", "", "Override today's date (YYYY-MM-DD)")
	rootCmd.PersistentFlags().BoolVarP(&flagQuiet, "quiet", "q", false, "Suppress progress output")
}

// today resolves the reference date once per command run, honoring --date.
func today() (string, error) {
	if flagDate == "" {
		return time.Now().Format("2006-01-02"), nil
	}
	if _, err := time.Parse("2006-01-02", flagDate); err != nil {
		return "", fmt.Errorf("invalid --date %q (want YYYY-MM-DD)", flagDate)
	}
	return flagDate, nil
}

// dbPath resolves the ledger path: flag, then env/config override, then the
// XDG default.
func dbPath() string {
	if flagDBPath != "" {
		return flagDBPath
	}
	cfg, _ := config.Load()
	if dir := config.DataDirOverride(cfg); dir != "" {
		return filepath.Join(dir, "ledger.db")
	}
	return store.DefaultPath()
}

func openLedger() (*store.Ledger, error) {
	return store.Open(dbPath())
}

// loadLedger is the shared read path used by the reporting commands.
func loadLedger() ([]model.Transaction, []model.Budget, error) {
	ledger, err := openLedger()
	if err != nil {
		return nil, nil, err
	}
	defer func() { _ = ledger.Close() }()

	txs, err := ledger.ListTransactions()
	if err != nil {
		return nil, nil, fmt.Errorf("loading transactions: %w", err)
	}
	budgets, err := ledger.ListBudgets()
	if err != nil {
		return nil, nil, fmt.Errorf("loading budgets: %w", err)
	}

	if !flagQuiet {
		fmt.Fprintf(os.Stderr, "  Loaded %d transactions, %d budgets\n", len(txs), len(budgets))
	}
	return txs, budgets, nil
}

func currency() string {
	cfg, _ := config.Load()
	return cfg.General.Currency
}
