// Package format turns analysis numbers and dates into display text.
// Rounding is half-up on the decimal value the service sent, so 0.755 shows
// as 0.76 rather than the binary-float 0.75.
package format

import (
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

const (
	isoLayout     = "2006-01-02"
	displayLayout = "January 2, 2006"
)

var hundred = decimal.NewFromInt(100)

// dec converts v for display; NaN and infinities show as zero
func dec(v float64) decimal.Decimal {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return decimal.Zero
	}
	return decimal.NewFromFloat(v)
}

// Strength formats a 0..1 strength with two decimals ("0.76")
func Strength(v float64) string {
	return dec(v).StringFixed(2)
}

// StrengthPercent formats a 0..1 strength as a meter width ("76%")
func StrengthPercent(v float64) string {
	return dec(v).Mul(hundred).Round(0).String() + "%"
}

// Percent formats a percentage in its shortest form (66.7 -> "66.7", 50 -> "50")
func Percent(v float64) string {
	return dec(v).String()
}

// WinLossLine formats a criterion record as "W-L (P%)" or "W-L-P (P%)"
func WinLossLine(wins, losses, pushes int, winPct float64) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%d-%d", wins, losses)
	if pushes > 0 {
		fmt.Fprintf(&b, "-%d", pushes)
	}
	fmt.Fprintf(&b, " (%s%%)", Percent(winPct))
	return b.String()
}

// DecimalOdds formats decimal odds in parentheses, "(N/A)" when absent or zero
func DecimalOdds(v *float64) string {
	if v == nil || *v == 0 {
		return "(N/A)"
	}
	return "(" + dec(*v).StringFixed(2) + ")"
}

// OverUnder formats a total line, empty when absent
func OverUnder(v *float64) string {
	if v == nil {
		return ""
	}
	return "O/U: " + dec(*v).String()
}

// TeamRecord formats "Team: 10-5", empty when the record is absent
func TeamRecord(team, record string) string {
	if record == "" {
		return ""
	}
	return team + ": " + record
}

// Score formats a final score line, empty unless both scores are known
func Score(awayTeam string, awayScore *int, homeTeam string, homeScore *int) string {
	if awayScore == nil || homeScore == nil {
		return ""
	}
	return fmt.Sprintf("Final: %s %d, %s %d", awayTeam, *awayScore, homeTeam, *homeScore)
}

// ISODate formats a date as zero-padded YYYY-MM-DD
func ISODate(t time.Time) string {
	return t.Format(isoLayout)
}

// DisplayDate formats a date as "April 5, 2024"
func DisplayDate(t time.Time) string {
	return t.Format(displayLayout)
}

// ParseISODate parses YYYY-MM-DD in loc
func ParseISODate(s string, loc *time.Location) (time.Time, error) {
	t, err := time.ParseInLocation(isoLayout, strings.TrimSpace(s), loc)
	if err != nil {
		return time.Time{}, fmt.Errorf("parse date %q: %w", s, err)
	}
	return t, nil
}

// ParseDisplayDate parses "April 5, 2024" in loc
func ParseDisplayDate(s string, loc *time.Location) (time.Time, error) {
	t, err := time.ParseInLocation(displayLayout, strings.TrimSpace(s), loc)
	if err != nil {
		return time.Time{}, fmt.Errorf("parse display date %q: %w", s, err)
	}
	return t, nil
}
