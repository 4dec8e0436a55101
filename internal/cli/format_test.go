package cli

import "testing"

func TestFormatMoney(t *testing.T) {
	tests := []struct {
		amount   float64
		currency string
		want     string
	}{
		{0, "$", "$0"},
		{1234567, "$", "$1,234,567"},
		{12.5, "$", "$12.50"},
		{999.99, "€", "€999.99"},
		{-45000, "$", "-$45,000"},
		{2300000, "kr", "kr2,300,000"},
	}

	for _, tt := range tests {
		if got := FormatMoney(tt.amount, tt.currency); got != tt.want {
			t.Errorf("FormatMoney(%v, %q) = %q, want %q", tt.amount, tt.currency, got, tt.want)
		}
	}
}

func TestFormatNumber(t *testing.T) {
	tests := []struct {
		n    int64
		want string
	}{
		{0, "0"},
		{999, "999"},
		{1000, "1,000"},
		{1234567, "1,234,567"},
		{-1234, "-1,234"},
	}

	for _, tt := range tests {
		if got := FormatNumber(tt.n); got != tt.want {
			t.Errorf("FormatNumber(%d) = %q, want %q", tt.n, got, tt.want)
		}
	}
}

func TestFormatPercent(t *testing.T) {
	if got := FormatPercent(70); got != "70%" {
		t.Errorf("FormatPercent(70) = %q", got)
	}
	if got := FormatPercent(66.6); got != "67%" {
		t.Errorf("FormatPercent(66.6) = %q, want rounded 67%%", got)
	}
}

func TestFormatDays(t *testing.T) {
	tests := []struct {
		days int
		want string
	}{
		{0, "exceeded"},
		{1, "1 day"},
		{14, "14 days"},
	}
	for _, tt := range tests {
		if got := FormatDays(tt.days); got != tt.want {
			t.Errorf("FormatDays(%d) = %q, want %q", tt.days, got, tt.want)
		}
	}
}
