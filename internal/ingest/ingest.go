// Package ingest parses exported transaction files (CSV and JSON Lines)
// into ledger transactions. Malformed lines are skipped and counted, never
// fatal; a bank export with a few odd rows should still mostly import.
package ingest

import (
	"bufio"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"

	"fburn/internal/model"
)

// Result holds the outcome of importing one file.
type Result struct {
	Transactions []model.Transaction
	SkippedLines int
	Err          error
}

// ImportFile parses a transaction export, dispatching on file extension:
// .csv for comma-separated exports, .jsonl/.ndjson for JSON Lines. Rows are
// deduplicated by id, last occurrence winning, so re-importing a corrected
// export converges instead of doubling up.
func ImportFile(path string, now time.Time) Result {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".csv":
		return importCSV(path, now)
	case ".jsonl", ".ndjson":
		return importJSONL(path, now)
	default:
		return Result{Err: fmt.Errorf("unsupported import format %q (want .csv, .jsonl, or .ndjson)", filepath.Ext(path))}
	}
}

// csv columns, in order. A header row repeating these names is tolerated
// and skipped.
var csvColumns = []string{"date", "type", "name", "category", "amount"}

func importCSV(path string, now time.Time) Result {
	f, err := os.Open(path) //nolint:gosec // import path is user-supplied by design
	if err != nil {
		return Result{Err: err}
	}
	defer func() { _ = f.Close() }()

	byID := make(map[string]model.Transaction)
	var order []string
	skipped := 0

	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	first := true
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		if first {
			first = false
			if isCSVHeader(line) {
				continue
			}
		}

		tx, ok := parseCSVLine(line, now)
		if !ok {
			skipped++
			continue
		}
		if _, seen := byID[tx.ID]; !seen {
			order = append(order, tx.ID)
		}
		byID[tx.ID] = tx
	}
	if err := scanner.Err(); err != nil {
		return Result{Err: err}
	}

	return Result{Transactions: collect(byID, order), SkippedLines: skipped}
}

func isCSVHeader(line string) bool {
	fields := strings.Split(line, ",")
	if len(fields) != len(csvColumns) {
		return false
	}
	for i, col := range csvColumns {
		if !strings.EqualFold(strings.TrimSpace(fields[i]), col) {
			return false
		}
	}
	return true
}

func parseCSVLine(line string, now time.Time) (model.Transaction, bool) {
	fields := strings.Split(line, ",")
	if len(fields) != len(csvColumns) {
		return model.Transaction{}, false
	}
	for i := range fields {
		fields[i] = strings.TrimSpace(fields[i])
	}

	date, txType, name, category := fields[0], fields[1], fields[2], fields[3]
	amount, err := strconv.ParseFloat(fields[4], 64)
	if err != nil {
		return model.Transaction{}, false
	}

	return buildTransaction("", txType, name, category, amount, date, now)
}

// jsonlRecord is the accepted JSON Lines row shape. Unknown fields are
// ignored so richer exports still import.
type jsonlRecord struct {
	ID       string  `json:"id"`
	Type     string  `json:"type"`
	Name     string  `json:"name"`
	Category string  `json:"category"`
	Amount   float64 `json:"amount"`
	Date     string  `json:"date"`
}

func importJSONL(path string, now time.Time) Result {
	f, err := os.Open(path) //nolint:gosec // import path is user-supplied by design
	if err != nil {
		return Result{Err: err}
	}
	defer func() { _ = f.Close() }()

	byID := make(map[string]model.Transaction)
	var order []string
	skipped := 0

	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	for scanner.Scan() {
		line := scanner.Bytes()
		if len(line) == 0 {
			continue
		}

		var rec jsonlRecord
		if err := json.Unmarshal(line, &rec); err != nil {
			skipped++
			continue
		}

		tx, ok := buildTransaction(rec.ID, rec.Type, rec.Name, rec.Category, rec.Amount, rec.Date, now)
		if !ok {
			skipped++
			continue
		}
		if _, seen := byID[tx.ID]; !seen {
			order = append(order, tx.ID)
		}
		byID[tx.ID] = tx
	}
	if err := scanner.Err(); err != nil {
		return Result{Err: err}
	}

	return Result{Transactions: collect(byID, order), SkippedLines: skipped}
}

// buildTransaction validates one row and fills in what the export omits: a
// fresh uuid when there is no id, and CreatedAt from the import instant.
func buildTransaction(id, txType, name, category string, amount float64, date string, now time.Time) (model.Transaction, bool) {
	var t model.TransactionType
	switch strings.ToLower(txType) {
	case "income":
		t = model.Income
	case "expense":
		t = model.Expense
	default:
		return model.Transaction{}, false
	}

	if _, err := time.Parse("2006-01-02", date); err != nil {
		return model.Transaction{}, false
	}
	if amount < 0 {
		return model.Transaction{}, false
	}

	if id == "" {
		id = uuid.NewString()
	}
	return model.Transaction{
		ID:        id,
		Type:      t,
		Name:      name,
		Category:  category,
		Amount:    amount,
		Date:      date,
		CreatedAt: now,
	}, true
}

func collect(byID map[string]model.Transaction, order []string) []model.Transaction {
	out := make([]model.Transaction, 0, len(order))
	for _, id := range order {
		out = append(out, byID[id])
	}
	return out
}
