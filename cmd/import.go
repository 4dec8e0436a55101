package cmd

import (
	"fmt"
	"time"

	"fburn/internal/cli"
	"fburn/internal/ingest"
	"fburn/internal/model"

	"github.com/spf13/cobra"
)

var flagImportDryRun bool

var importCmd = &cobra.Command{
	Use:   "import <file>",
	Short: "Import transactions from a CSV or JSON Lines export",
	Long: `Import transactions from an exported file. CSV columns are
date,type,name,category,amount; JSON Lines rows use the same field names.
Rows with an id are replaced on re-import instead of duplicated.`,
	Args: cobra.ExactArgs(1),
	RunE: runImport,
}

func init() {
	importCmd.Flags().BoolVar(&flagImportDryRun, "dry-run", false, "Parse and report without writing to the ledger")
	rootCmd.AddCommand(importCmd)
}

func runImport(_ *cobra.Command, args []string) error {
	res := ingest.ImportFile(args[0], time.Now())
	if res.Err != nil {
		return res.Err
	}

	if !flagImportDryRun && len(res.Transactions) > 0 {
		ledger, err := openLedger()
		if err != nil {
			return err
		}
		defer func() { _ = ledger.Close() }()

		if err := ledger.SaveTransactions(res.Transactions); err != nil {
			return fmt.Errorf("saving imported transactions: %w", err)
		}
	}

	var incomeTotal, expenseTotal float64
	income, expense := 0, 0
	for _, tx := range res.Transactions {
		switch tx.Type {
		case model.Income:
			income++
			incomeTotal += tx.Amount
		case model.Expense:
			expense++
			expenseTotal += tx.Amount
		}
	}

	cur := currency()
	table := cli.Table{
		Rows: [][]string{
			{"Imported", fmt.Sprintf("%d transactions", len(res.Transactions))},
			{"Income", fmt.Sprintf("%d (%s)", income, cli.FormatMoney(incomeTotal, cur))},
			{"Expense", fmt.Sprintf("%d (%s)", expense, cli.FormatMoney(expenseTotal, cur))},
			{"Skipped lines", fmt.Sprintf("%d", res.SkippedLines)},
		},
	}
	fmt.Println(cli.RenderTitle("Import"))
	fmt.Println(cli.RenderTable(table))

	if flagImportDryRun {
		fmt.Println("  Dry run: nothing written.")
	}
	return nil
}
