package period

import (
	"errors"
	"testing"
)

func TestCurrentWeek_MondayStart(t *testing.T) {
	tests := []struct {
		name      string
		today     string
		wantStart string
		wantEnd   string
	}{
		{"wednesday", "2026-02-18", "2026-02-16", "2026-02-22"},
		{"monday is its own start", "2026-02-16", "2026-02-16", "2026-02-22"},
		{"sunday belongs to prior monday", "2026-02-22", "2026-02-16", "2026-02-22"},
		{"week spanning month boundary", "2026-03-01", "2026-02-23", "2026-03-01"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := CurrentWeek(tt.today)
			if p.StartDate != tt.wantStart || p.EndDate != tt.wantEnd {
				t.Errorf("CurrentWeek(%s) = [%s, %s], want [%s, %s]",
					tt.today, p.StartDate, p.EndDate, tt.wantStart, tt.wantEnd)
			}
			if !Contains(p, tt.today) {
				t.Errorf("CurrentWeek(%s) does not contain today", tt.today)
			}
		})
	}
}

func TestCurrentMonth(t *testing.T) {
	tests := []struct {
		today     string
		wantStart string
		wantEnd   string
	}{
		{"2026-02-15", "2026-02-01", "2026-02-28"},
		{"2024-02-15", "2024-02-01", "2024-02-29"}, // leap year
		{"2026-12-31", "2026-12-01", "2026-12-31"},
		{"2026-01-01", "2026-01-01", "2026-01-31"},
	}

	for _, tt := range tests {
		p := CurrentMonth(tt.today)
		if p.StartDate != tt.wantStart || p.EndDate != tt.wantEnd {
			t.Errorf("CurrentMonth(%s) = [%s, %s], want [%s, %s]",
				tt.today, p.StartDate, p.EndDate, tt.wantStart, tt.wantEnd)
		}
	}
}

func TestCurrentQuarter(t *testing.T) {
	tests := []struct {
		today     string
		wantStart string
		wantEnd   string
	}{
		{"2026-01-01", "2026-01-01", "2026-03-31"},
		{"2026-03-31", "2026-01-01", "2026-03-31"},
		{"2026-05-10", "2026-04-01", "2026-06-30"},
		{"2026-08-29", "2026-07-01", "2026-09-30"},
		{"2026-11-02", "2026-10-01", "2026-12-31"},
	}

	for _, tt := range tests {
		p := CurrentQuarter(tt.today)
		if p.StartDate != tt.wantStart || p.EndDate != tt.wantEnd {
			t.Errorf("CurrentQuarter(%s) = [%s, %s], want [%s, %s]",
				tt.today, p.StartDate, p.EndDate, tt.wantStart, tt.wantEnd)
		}
	}
}

func TestCurrentYear(t *testing.T) {
	p := CurrentYear("2026-08-29")
	if p.StartDate != "2026-01-01" || p.EndDate != "2026-12-31" {
		t.Errorf("CurrentYear = [%s, %s]", p.StartDate, p.EndDate)
	}
}

func TestCurrent_CustomFails(t *testing.T) {
	_, err := Current(Custom, "2026-02-15")
	if !errors.Is(err, ErrCustomPeriod) {
		t.Errorf("Current(Custom) error = %v, want ErrCustomPeriod", err)
	}
}

func TestCurrent_UnknownType(t *testing.T) {
	_, err := Current(Type("fortnight"), "2026-02-15")
	if err == nil {
		t.Error("expected error for unknown period type")
	}
}

func TestNext_Adjacency(t *testing.T) {
	// For every type, the next period must start the day after the old end.
	periods := []Period{
		CurrentWeek("2026-02-18"),
		CurrentMonth("2026-02-18"),
		CurrentQuarter("2026-02-18"),
		CurrentYear("2026-02-18"),
		{Type: Custom, StartDate: "2026-02-05", EndDate: "2026-02-14"},
	}

	for _, p := range periods {
		n := Next(p)
		if n.StartDate != AddDays(p.EndDate, 1) {
			t.Errorf("Next(%s %s..%s) starts %s, want day after %s",
				p.Type, p.StartDate, p.EndDate, n.StartDate, p.EndDate)
		}
		if n.Type != p.Type {
			t.Errorf("Next changed type from %s to %s", p.Type, n.Type)
		}
	}
}

func TestNext_MonthLengthVaries(t *testing.T) {
	jan := Period{Type: Month, StartDate: "2026-01-01", EndDate: "2026-01-31"}
	feb := Next(jan)
	if feb.StartDate != "2026-02-01" || feb.EndDate != "2026-02-28" {
		t.Errorf("Next(Jan 2026) = [%s, %s], want [2026-02-01, 2026-02-28]", feb.StartDate, feb.EndDate)
	}

	// Leap February.
	jan24 := Period{Type: Month, StartDate: "2024-01-01", EndDate: "2024-01-31"}
	feb24 := Next(jan24)
	if feb24.EndDate != "2024-02-29" {
		t.Errorf("Next(Jan 2024) ends %s, want 2024-02-29", feb24.EndDate)
	}
}

func TestNext_QuarterAcrossYear(t *testing.T) {
	q4 := Period{Type: Quarter, StartDate: "2026-10-01", EndDate: "2026-12-31"}
	q1 := Next(q4)
	if q1.StartDate != "2027-01-01" || q1.EndDate != "2027-03-31" {
		t.Errorf("Next(Q4 2026) = [%s, %s]", q1.StartDate, q1.EndDate)
	}
}

func TestNext_CustomKeepsLength(t *testing.T) {
	p := Period{Type: Custom, StartDate: "2026-02-01", EndDate: "2026-02-10"}
	n := Next(p)
	if DurationDays(n) != DurationDays(p) {
		t.Errorf("Next(custom) has %d days, want %d", DurationDays(n), DurationDays(p))
	}
	if n.StartDate != "2026-02-11" || n.EndDate != "2026-02-20" {
		t.Errorf("Next(custom) = [%s, %s], want [2026-02-11, 2026-02-20]", n.StartDate, n.EndDate)
	}
}

func TestContainsBounds(t *testing.T) {
	p := Period{Type: Month, StartDate: "2026-02-01", EndDate: "2026-02-28"}

	tests := []struct {
		date string
		want bool
	}{
		{"2026-02-01", true},  // start inclusive
		{"2026-02-28", true},  // end inclusive
		{"2026-01-31", false}, // day before
		{"2026-03-01", false}, // day after
		{"2026-02-15", true},
	}

	for _, tt := range tests {
		if got := Contains(p, tt.date); got != tt.want {
			t.Errorf("Contains(%s) = %v, want %v", tt.date, got, tt.want)
		}
	}
}

func TestExpiredAndActive(t *testing.T) {
	p := Period{Type: Month, StartDate: "2026-02-01", EndDate: "2026-02-28"}

	if Expired(p, "2026-02-28") {
		t.Error("period should not be expired on its last day")
	}
	if !Expired(p, "2026-03-01") {
		t.Error("period should be expired the day after its end")
	}
	if !Active(p, "2026-02-01") || !Active(p, "2026-02-28") {
		t.Error("period should be active on both bounds")
	}
	if Active(p, "2026-03-01") {
		t.Error("period should not be active after its end")
	}
}

func TestOverlap(t *testing.T) {
	feb := Period{Type: Month, StartDate: "2026-02-01", EndDate: "2026-02-28"}
	mar := Period{Type: Month, StartDate: "2026-03-01", EndDate: "2026-03-31"}
	touching := Period{Type: Custom, StartDate: "2026-02-28", EndDate: "2026-03-05"}

	if Overlap(feb, mar) {
		t.Error("adjacent months must not overlap")
	}
	if !Overlap(feb, touching) {
		t.Error("shared boundary day must count as overlap")
	}
	// Symmetry.
	if Overlap(feb, touching) != Overlap(touching, feb) {
		t.Error("Overlap is not symmetric")
	}
	if !Overlap(feb, feb) {
		t.Error("a period overlaps itself")
	}
}

func TestDurationDays(t *testing.T) {
	tests := []struct {
		p    Period
		want int
	}{
		{Period{StartDate: "2026-02-01", EndDate: "2026-02-28"}, 28},
		{Period{StartDate: "2024-02-01", EndDate: "2024-02-29"}, 29},
		{Period{StartDate: "2026-02-15", EndDate: "2026-02-15"}, 1},
		{Period{StartDate: "2026-01-01", EndDate: "2026-12-31"}, 365},
		{Period{StartDate: "2024-01-01", EndDate: "2024-12-31"}, 366},
	}

	for _, tt := range tests {
		if got := DurationDays(tt.p); got != tt.want {
			t.Errorf("DurationDays(%s..%s) = %d, want %d", tt.p.StartDate, tt.p.EndDate, got, tt.want)
		}
	}
}

func TestDaysBetween(t *testing.T) {
	if got := DaysBetween("2026-02-01", "2026-02-15"); got != 14 {
		t.Errorf("DaysBetween = %d, want 14", got)
	}
	if got := DaysBetween("2026-02-15", "2026-02-01"); got != -14 {
		t.Errorf("reverse DaysBetween = %d, want -14", got)
	}
	if got := DaysBetween("2024-02-28", "2024-03-01"); got != 2 {
		t.Errorf("leap span DaysBetween = %d, want 2", got)
	}
}

func TestMonthHelpers(t *testing.T) {
	if got := MonthOf("2026-02-15"); got != "2026-02" {
		t.Errorf("MonthOf = %s", got)
	}
	if got := AddMonths("2026-01", -1); got != "2025-12" {
		t.Errorf("AddMonths(-1) = %s, want 2025-12", got)
	}
	if got := AddMonths("2025-11", 3); got != "2026-02" {
		t.Errorf("AddMonths(3) = %s, want 2026-02", got)
	}
}
