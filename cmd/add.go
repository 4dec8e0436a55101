package cmd

import (
	"fmt"
	"time"

	"fburn/internal/cli"
	"fburn/internal/model"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
)

var (
	flagAddType     string
	flagAddName     string
	flagAddCategory string
	flagAddAmount   float64
	flagAddDate     string
	flagAddEvery    string
	flagAddInterval int
)

var addCmd = &cobra.Command{
	Use:   "add",
	Short: "Record a transaction",
	Long:  "Record a one-off transaction, or a recurring template with --every.",
	RunE:  runAdd,
}

func init() {
	addCmd.Flags().StringVarP(&flagAddType, "type", "t", "expense", "Transaction type: income or expense")
	addCmd.Flags().StringVar(&flagAddName, "name", "", "Transaction name")
	addCmd.Flags().StringVarP(&flagAddCategory, "category", "c", "", "Category id")
	addCmd.Flags().Float64VarP(&flagAddAmount, "amount", "a", 0, "Amount (non-negative)")
	addCmd.Flags().StringVar(&flagAddDate, "on", "", "Transaction date (default today)")
	addCmd.Flags().StringVar(&flagAddEvery, "every", "", "Make recurring: daily, weekly, monthly, or yearly")
	addCmd.Flags().IntVar(&flagAddInterval, "interval", 1, "Recurrence interval (with --every)")
	_ = addCmd.MarkFlagRequired("name")
	_ = addCmd.MarkFlagRequired("category")
	_ = addCmd.MarkFlagRequired("amount")
	rootCmd.AddCommand(addCmd)
}

func runAdd(_ *cobra.Command, _ []string) error {
	now, err := today()
	if err != nil {
		return err
	}

	txType := model.TransactionType(flagAddType)
	if txType != model.Income && txType != model.Expense {
		return fmt.Errorf("invalid type %q (want income or expense)", flagAddType)
	}
	if flagAddAmount < 0 {
		return fmt.Errorf("amount must be non-negative")
	}

	date := flagAddDate
	if date == "" {
		date = now
	} else if _, err := time.Parse("2006-01-02", date); err != nil {
		return fmt.Errorf("invalid date %q (want YYYY-MM-DD)", date)
	}

	tx := model.Transaction{
		ID:        uuid.NewString(),
		Type:      txType,
		Name:      flagAddName,
		Category:  flagAddCategory,
		Amount:    flagAddAmount,
		Date:      date,
		CreatedAt: time.Now(),
	}

	if flagAddEvery != "" {
		freq := model.Frequency(flagAddEvery)
		switch freq {
		case model.Daily, model.Weekly, model.Monthly, model.Yearly:
		default:
			return fmt.Errorf("invalid frequency %q (want daily, weekly, monthly, or yearly)", flagAddEvery)
		}
		if flagAddInterval < 1 {
			return fmt.Errorf("interval must be >= 1")
		}
		tx.Schedule = &model.Schedule{
			Enabled:   true,
			Frequency: freq,
			Interval:  flagAddInterval,
			StartDate: date,
		}
	}

	ledger, err := openLedger()
	if err != nil {
		return err
	}
	defer func() { _ = ledger.Close() }()

	if err := ledger.SaveTransaction(tx); err != nil {
		return fmt.Errorf("saving transaction: %w", err)
	}

	kind := string(txType)
	if tx.Schedule != nil {
		kind = fmt.Sprintf("recurring %s (%s x%d)", txType, tx.Schedule.Frequency, tx.Schedule.Interval)
	}
	fmt.Printf("  Recorded %s %q: %s on %s\n", kind, tx.Name, cli.FormatMoney(tx.Amount, currency()), tx.Date)
	return nil
}
