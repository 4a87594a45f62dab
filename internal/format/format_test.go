package format_test

import (
	"math"
	"testing"
	"time"

	"github.com/XavierBriggs/Janus/internal/format"
)

func ptr(v float64) *float64 { return &v }

func TestStrength(t *testing.T) {
	tests := []struct {
		in          float64
		wantLabel   string
		wantPercent string
	}{
		{0.755, "0.76", "76%"},
		{0.745, "0.75", "75%"},
		{0, "0.00", "0%"},
		{1, "1.00", "100%"},
		{0.5, "0.50", "50%"},
		{0.123, "0.12", "12%"},
		{0.005, "0.01", "1%"},
	}

	for _, tt := range tests {
		t.Run(tt.wantLabel, func(t *testing.T) {
			if got := format.Strength(tt.in); got != tt.wantLabel {
				t.Errorf("Strength(%v) = %q, want %q", tt.in, got, tt.wantLabel)
			}
			if got := format.StrengthPercent(tt.in); got != tt.wantPercent {
				t.Errorf("StrengthPercent(%v) = %q, want %q", tt.in, got, tt.wantPercent)
			}
		})
	}
}

func TestFormat_NonFiniteShowsZero(t *testing.T) {
	for _, v := range []float64{math.NaN(), math.Inf(1), math.Inf(-1)} {
		if got := format.Strength(v); got != "0.00" {
			t.Errorf("Strength(%v) = %q, want 0.00", v, got)
		}
		if got := format.StrengthPercent(v); got != "0%" {
			t.Errorf("StrengthPercent(%v) = %q, want 0%%", v, got)
		}
		if got := format.Percent(v); got != "0" {
			t.Errorf("Percent(%v) = %q, want 0", v, got)
		}
		if got := format.DecimalOdds(ptr(v)); got != "(0.00)" {
			t.Errorf("DecimalOdds(%v) = %q, want (0.00)", v, got)
		}
	}
}

func TestWinLossLine(t *testing.T) {
	tests := []struct {
		name                 string
		wins, losses, pushes int
		pct                  float64
		want                 string
	}{
		{"no pushes", 10, 5, 0, 66.7, "10-5 (66.7%)"},
		{"with pushes", 10, 5, 2, 62.5, "10-5-2 (62.5%)"},
		{"whole percent", 4, 4, 0, 50, "4-4 (50%)"},
		{"empty", 0, 0, 0, 0, "0-0 (0%)"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := format.WinLossLine(tt.wins, tt.losses, tt.pushes, tt.pct)
			if got != tt.want {
				t.Errorf("WinLossLine = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestDecimalOdds(t *testing.T) {
	tests := []struct {
		name string
		in   *float64
		want string
	}{
		{"absent", nil, "(N/A)"},
		{"zero", ptr(0), "(N/A)"},
		{"padded", ptr(2.1), "(2.10)"},
		{"rounded", ptr(1.645), "(1.65)"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := format.DecimalOdds(tt.in); got != tt.want {
				t.Errorf("DecimalOdds = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestDates(t *testing.T) {
	d := time.Date(2024, time.April, 5, 0, 0, 0, 0, time.UTC)

	if got := format.ISODate(d); got != "2024-04-05" {
		t.Errorf("ISODate = %q", got)
	}
	if got := format.DisplayDate(d); got != "April 5, 2024" {
		t.Errorf("DisplayDate = %q", got)
	}

	parsed, err := format.ParseDisplayDate("April 5, 2024", time.UTC)
	if err != nil {
		t.Fatalf("ParseDisplayDate: %v", err)
	}
	if !parsed.Equal(d) {
		t.Errorf("ParseDisplayDate = %v, want %v", parsed, d)
	}

	if _, err := format.ParseISODate("2024-4-5", time.UTC); err == nil {
		t.Error("expected error for unpadded date")
	}
}

func TestSmallLines(t *testing.T) {
	away, home := 3, 5
	if got := format.Score("Yankees", &away, "Red Sox", &home); got != "Final: Yankees 3, Red Sox 5" {
		t.Errorf("Score = %q", got)
	}
	if got := format.Score("Yankees", &away, "Red Sox", nil); got != "" {
		t.Errorf("Score with missing side = %q", got)
	}
	if got := format.TeamRecord("Yankees", ""); got != "" {
		t.Errorf("TeamRecord without record = %q", got)
	}
	if got := format.OverUnder(ptr(8.5)); got != "O/U: 8.5" {
		t.Errorf("OverUnder = %q", got)
	}
}
