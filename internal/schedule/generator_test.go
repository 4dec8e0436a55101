package schedule

import (
	"testing"

	"fburn/internal/model"
)

func template(t *testing.T, id string, freq model.Frequency, interval int, start string) model.Transaction {
	t.Helper()
	return model.Transaction{
		ID:       id,
		Type:     model.Expense,
		Name:     "Bill " + id,
		Category: "bills",
		Amount:   10000,
		Date:     start,
		Schedule: &model.Schedule{Enabled: true, Frequency: freq, Interval: interval, StartDate: start},
	}
}

func dates(occurrences []model.Transaction) []string {
	out := make([]string, len(occurrences))
	for i, o := range occurrences {
		out[i] = o.Date
	}
	return out
}

func TestGenerateVirtual_Monthly(t *testing.T) {
	txs := []model.Transaction{template(t, "rent", model.Monthly, 1, "2026-01-10")}

	got := GenerateVirtual(txs, "2026-02-15")
	if len(got) == 0 {
		t.Fatal("no occurrences generated")
	}

	ds := dates(got)
	if ds[0] != "2026-03-10" {
		t.Errorf("first occurrence = %s, want 2026-03-10 (first on/after fromDate)", ds[0])
	}
	if ds[1] != "2026-04-10" {
		t.Errorf("second occurrence = %s, want 2026-04-10", ds[1])
	}

	first := got[0]
	if first.SourceTemplateID != "rent" {
		t.Errorf("SourceTemplateID = %s, want rent", first.SourceTemplateID)
	}
	if first.ID != "rent:2026-03-10" {
		t.Errorf("occurrence ID = %s, want rent:2026-03-10 (stable derivation)", first.ID)
	}
	if first.Amount != 10000 || first.Type != model.Expense || first.Category != "bills" {
		t.Errorf("occurrence fields not carried over: %+v", first)
	}
	if first.IsTemplate() {
		t.Error("occurrences must not themselves be templates")
	}
}

func TestGenerateVirtual_MonthEndClamp(t *testing.T) {
	// Anchored on the 31st: short months clamp, later long months return
	// to the 31st instead of drifting.
	txs := []model.Transaction{template(t, "sub", model.Monthly, 1, "2026-01-31")}

	ds := dates(GenerateVirtual(txs, "2026-01-31"))
	want := []string{"2026-01-31", "2026-02-28", "2026-03-31", "2026-04-30", "2026-05-31"}
	for i, w := range want {
		if ds[i] != w {
			t.Errorf("occurrence %d = %s, want %s", i, ds[i], w)
		}
	}
}

func TestGenerateVirtual_LeapFebruary(t *testing.T) {
	txs := []model.Transaction{template(t, "sub", model.Monthly, 1, "2024-01-31")}

	ds := dates(GenerateVirtual(txs, "2024-02-01"))
	if ds[0] != "2024-02-29" {
		t.Errorf("leap February clamp = %s, want 2024-02-29", ds[0])
	}
}

func TestGenerateVirtual_WeeklyAndInterval(t *testing.T) {
	txs := []model.Transaction{template(t, "gym", model.Weekly, 2, "2026-02-02")}

	ds := dates(GenerateVirtual(txs, "2026-02-02"))
	want := []string{"2026-02-02", "2026-02-16", "2026-03-02"}
	for i, w := range want {
		if ds[i] != w {
			t.Errorf("occurrence %d = %s, want %s", i, ds[i], w)
		}
	}
}

func TestGenerateVirtual_YearlyKeepsAnchor(t *testing.T) {
	txs := []model.Transaction{template(t, "insurance", model.Yearly, 1, "2025-06-15")}

	ds := dates(GenerateVirtual(txs, "2026-01-01"))
	if len(ds) != 1 || ds[0] != "2026-06-15" {
		t.Errorf("yearly occurrences = %v, want just 2026-06-15 in the window", ds)
	}
}

func TestGenerateVirtual_WindowBound(t *testing.T) {
	txs := []model.Transaction{template(t, "d", model.Daily, 1, "2026-01-01")}

	got := GenerateVirtual(txs, "2026-01-01")
	for _, o := range got {
		if o.Date > "2027-01-01" {
			t.Fatalf("occurrence %s beyond one-year window", o.Date)
		}
	}
	if len(got) > maxOccurrences {
		t.Errorf("generated %d occurrences, cap is %d", len(got), maxOccurrences)
	}
}

func TestGenerateVirtual_OldTemplatesStillGenerate(t *testing.T) {
	// Templates whose start date is far in the past must still produce
	// occurrences in the window; the step index fast-forwards instead of
	// walking every historical occurrence into the emission cap.
	daily := template(t, "coffee", model.Daily, 1, "2025-01-01")
	ds := dates(GenerateVirtual([]model.Transaction{daily}, "2026-08-29"))
	if len(ds) == 0 {
		t.Fatal("old daily template produced zero occurrences")
	}
	if ds[0] != "2026-08-29" {
		t.Errorf("first occurrence = %s, want 2026-08-29", ds[0])
	}

	monthly := template(t, "rent", model.Monthly, 1, "2015-03-31")
	ds = dates(GenerateVirtual([]model.Transaction{monthly}, "2026-02-15"))
	if len(ds) == 0 {
		t.Fatal("old monthly template produced zero occurrences")
	}
	if ds[0] != "2026-02-28" {
		t.Errorf("first occurrence = %s, want 2026-02-28 (clamped anchor day 31)", ds[0])
	}
}

func TestGenerateVirtual_SkipsNonTemplates(t *testing.T) {
	disabled := template(t, "off", model.Monthly, 1, "2026-01-10")
	disabled.Schedule.Enabled = false
	plain := model.Transaction{ID: "plain", Type: model.Expense, Amount: 100, Date: "2026-01-10"}

	if got := GenerateVirtual([]model.Transaction{disabled, plain}, "2026-01-01"); len(got) != 0 {
		t.Errorf("got %d occurrences from non-templates, want 0", len(got))
	}
}

func TestGenerateVirtual_ZeroIntervalTreatedAsOne(t *testing.T) {
	tx := template(t, "z", model.Monthly, 0, "2026-01-10")

	ds := dates(GenerateVirtual([]model.Transaction{tx}, "2026-01-10"))
	if len(ds) < 2 || ds[0] != "2026-01-10" || ds[1] != "2026-02-10" {
		t.Errorf("zero interval should step monthly: %v", ds[:min(len(ds), 2)])
	}
}

func TestGenerateVirtual_Deterministic(t *testing.T) {
	txs := []model.Transaction{template(t, "rent", model.Monthly, 1, "2026-01-10")}

	a := GenerateVirtual(txs, "2026-02-15")
	b := GenerateVirtual(txs, "2026-02-15")
	if len(a) != len(b) {
		t.Fatalf("lengths differ: %d vs %d", len(a), len(b))
	}
	for i := range a {
		if a[i] != b[i] {
			t.Errorf("occurrence %d differs between runs", i)
		}
	}
}
