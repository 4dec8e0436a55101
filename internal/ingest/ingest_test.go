package ingest

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"fburn/internal/model"
)

var importedAt = time.Date(2026, 2, 15, 12, 0, 0, 0, time.UTC)

// writeExport creates a temp export file with the given name and lines.
func writeExport(t *testing.T, name string, lines ...string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(strings.Join(lines, "\n")+"\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestImportCSV(t *testing.T) {
	path := writeExport(t, "export.csv",
		"date,type,name,category,amount",
		"2026-02-01,income,Salary,salary,3000000",
		"2026-02-05,expense,Groceries,groceries,45000",
	)

	res := ImportFile(path, importedAt)
	if res.Err != nil {
		t.Fatalf("unexpected error: %v", res.Err)
	}
	if len(res.Transactions) != 2 {
		t.Fatalf("got %d transactions, want 2", len(res.Transactions))
	}
	if res.SkippedLines != 0 {
		t.Errorf("SkippedLines = %d, want 0", res.SkippedLines)
	}

	tx := res.Transactions[0]
	if tx.Type != model.Income || tx.Name != "Salary" || tx.Amount != 3000000 || tx.Date != "2026-02-01" {
		t.Errorf("first transaction = %+v", tx)
	}
	if tx.ID == "" {
		t.Error("csv rows must get a generated id")
	}
	if !tx.CreatedAt.Equal(importedAt) {
		t.Errorf("CreatedAt = %v, want import instant", tx.CreatedAt)
	}
}

func TestImportCSV_NoHeader(t *testing.T) {
	path := writeExport(t, "export.csv",
		"2026-02-05,expense,Groceries,groceries,45000",
	)

	res := ImportFile(path, importedAt)
	if res.Err != nil {
		t.Fatal(res.Err)
	}
	if len(res.Transactions) != 1 {
		t.Fatalf("headerless export: got %d transactions, want 1", len(res.Transactions))
	}
}

func TestImportCSV_MalformedLines(t *testing.T) {
	path := writeExport(t, "export.csv",
		"date,type,name,category,amount",
		"not,enough,fields",
		"2026-02-05,expense,Groceries,groceries,45000",
		"2026-02-06,expense,Fuel,transport,not-a-number",
		"2026-02-07,transfer,Move,misc,100",     // unknown type
		"02/08/2026,expense,Coffee,dining,5000", // wrong date format
		"2026-02-09,expense,Coffee,dining,-50",  // negative amount
	)

	res := ImportFile(path, importedAt)
	if res.Err != nil {
		t.Fatal(res.Err)
	}
	if len(res.Transactions) != 1 {
		t.Fatalf("got %d transactions, want 1 (rest malformed)", len(res.Transactions))
	}
	if res.SkippedLines != 5 {
		t.Errorf("SkippedLines = %d, want 5", res.SkippedLines)
	}
}

func TestImportJSONL(t *testing.T) {
	path := writeExport(t, "export.jsonl",
		`{"id":"t1","type":"income","name":"Salary","category":"salary","amount":3000000,"date":"2026-02-01"}`,
		`{"type":"expense","name":"Groceries","category":"groceries","amount":45000,"date":"2026-02-05","extra":"ignored"}`,
		`not json at all`,
	)

	res := ImportFile(path, importedAt)
	if res.Err != nil {
		t.Fatal(res.Err)
	}
	if len(res.Transactions) != 2 {
		t.Fatalf("got %d transactions, want 2", len(res.Transactions))
	}
	if res.SkippedLines != 1 {
		t.Errorf("SkippedLines = %d, want 1", res.SkippedLines)
	}
	if res.Transactions[0].ID != "t1" {
		t.Errorf("explicit id not preserved: %s", res.Transactions[0].ID)
	}
	if res.Transactions[1].ID == "" {
		t.Error("missing id not generated")
	}
}

func TestImportJSONL_DedupLastWins(t *testing.T) {
	path := writeExport(t, "export.jsonl",
		`{"id":"t1","type":"expense","name":"Groceries","category":"groceries","amount":45000,"date":"2026-02-05"}`,
		`{"id":"t1","type":"expense","name":"Groceries","category":"groceries","amount":47000,"date":"2026-02-05"}`,
	)

	res := ImportFile(path, importedAt)
	if res.Err != nil {
		t.Fatal(res.Err)
	}
	if len(res.Transactions) != 1 {
		t.Fatalf("got %d transactions, want 1 (dedup by id)", len(res.Transactions))
	}
	if res.Transactions[0].Amount != 47000 {
		t.Errorf("Amount = %v, want 47000 (last wins)", res.Transactions[0].Amount)
	}
}

func TestImportFile_UnsupportedExtension(t *testing.T) {
	path := writeExport(t, "export.xlsx", "whatever")

	res := ImportFile(path, importedAt)
	if res.Err == nil {
		t.Error("expected error for unsupported format")
	}
}

func TestImportFile_MissingFile(t *testing.T) {
	res := ImportFile(filepath.Join(t.TempDir(), "nope.csv"), importedAt)
	if res.Err == nil {
		t.Error("expected error for missing file")
	}
}

func TestImportCSV_EmptyFile(t *testing.T) {
	path := writeExport(t, "empty.csv")

	res := ImportFile(path, importedAt)
	if res.Err != nil {
		t.Fatalf("unexpected error on empty file: %v", res.Err)
	}
	if len(res.Transactions) != 0 || res.SkippedLines != 0 {
		t.Errorf("empty file: %d transactions, %d skipped", len(res.Transactions), res.SkippedLines)
	}
}
