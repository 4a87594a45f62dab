package models

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// Game is one analyzed matchup as sent by /api/games/{date}
type Game struct {
	ID               FlexString       `json:"id"`
	Date             string           `json:"date"`
	Time             string           `json:"time"`
	AwayTeam         string           `json:"awayTeam"`
	HomeTeam         string           `json:"homeTeam"`
	AwayLogo         string           `json:"awayLogo,omitempty"`
	HomeLogo         string           `json:"homeLogo,omitempty"`
	AwayRecord       string           `json:"awayRecord,omitempty"`
	HomeRecord       string           `json:"homeRecord,omitempty"`
	AwayOddsAmerican FlexString       `json:"awayOddsAmerican"`
	AwayOddsDecimal  *float64         `json:"awayOddsDecimal,omitempty"`
	HomeOddsAmerican FlexString       `json:"homeOddsAmerican"`
	HomeOddsDecimal  *float64         `json:"homeOddsDecimal,omitempty"`
	OverUnder        *float64         `json:"overUnder,omitempty"`
	BetOnHome        bool             `json:"betOnHome"`
	BetOnAway        bool             `json:"betOnAway"`
	AnyMatch         bool             `json:"anyMatch"`
	Strength         *float64         `json:"strength,omitempty"`
	CriteriaMatched  []string         `json:"criteriaMatched"`
	Criteria1        *Criteria1Result `json:"criteria1,omitempty"`
	Criteria2        *Criteria2Result `json:"criteria2,omitempty"`
	Criteria3        *Criteria3Result `json:"criteria3,omitempty"`
	AwayScore        *int             `json:"awayScore,omitempty"`
	HomeScore        *int             `json:"homeScore,omitempty"`
}

// Criteria1Result is the road underdog check set
type Criteria1Result struct {
	Matches      bool    `json:"matches"`
	Strength     float64 `json:"strength"`
	UnderdogOdds bool    `json:"underdogOdds"`
	RecordsMet   bool    `json:"recordsMet"`
	LostLast     bool    `json:"lostLast"`
	AwayRecord   string  `json:"awayRecord,omitempty"`
	HomeRecord   string  `json:"homeRecord,omitempty"`
}

// Criteria2Result is the April underdog check set
type Criteria2Result struct {
	Matches           bool    `json:"matches"`
	Strength          float64 `json:"strength"`
	IsApril           bool    `json:"isApril"`
	IsUnderdog        bool    `json:"isUnderdog"`
	ConsecutiveLosses int     `json:"consecutiveLosses"`
	WasUnderdog       bool    `json:"wasUnderdog"`
}

// Criteria3Result is the home underdog after a high scoring game check set
type Criteria3Result struct {
	Matches        bool    `json:"matches"`
	Strength       float64 `json:"strength"`
	IsHomeUnderdog bool    `json:"isHomeUnderdog"`
	PreviousRuns   int     `json:"previousRuns"`
}

// StatsSummary is the per-date summary attached to a games response
type StatsSummary struct {
	TotalGames    *int     `json:"totalGames,omitempty"`
	MatchingGames *int     `json:"matchingGames,omitempty"`
	BestStrength  *float64 `json:"bestStrength,omitempty"`
	Record        string   `json:"record,omitempty"`
}

// GamesResponse is the body of /api/games/{date}
type GamesResponse struct {
	Games   []Game        `json:"games"`
	Summary *StatsSummary `json:"summary,omitempty"`
}

// CriterionStats is the historical record of one criterion
type CriterionStats struct {
	Wins    int      `json:"wins"`
	Losses  int      `json:"losses"`
	Pushes  int      `json:"pushes"`
	WinPct  float64  `json:"win_pct"`
	AvgOdds *float64 `json:"avg_odds,omitempty"`
}

// MonthlyStat is one point of the ROI trend
type MonthlyStat struct {
	Month string  `json:"month"`
	ROI   float64 `json:"roi"`
}

// StatsResponse is the body of /api/stats
type StatsResponse struct {
	CriteriaStats map[string]*CriterionStats `json:"criteria_stats,omitempty"`
	MonthlyStats  []MonthlyStat              `json:"monthly_stats,omitempty"`
	OverallRecord *OverallRecord             `json:"overall_record,omitempty"`
}

// OverallRecord is sent either as a preformatted string or as an object
type OverallRecord struct {
	Text   string
	Wins   int
	Losses int
	ROI    *float64
}

// UnmarshalJSON implements json.Unmarshaler
func (o *OverallRecord) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		*o = OverallRecord{}
		return nil
	}

	if data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*o = OverallRecord{Text: s}
		return nil
	}

	var obj struct {
		Wins   int      `json:"wins"`
		Losses int      `json:"losses"`
		ROI    *float64 `json:"roi"`
	}
	if err := json.Unmarshal(data, &obj); err != nil {
		return fmt.Errorf("overall_record: %w", err)
	}
	*o = OverallRecord{Wins: obj.Wins, Losses: obj.Losses, ROI: obj.ROI}
	return nil
}

// Display returns the text shown in the record counter
func (o OverallRecord) Display() string {
	if o.Text != "" {
		return o.Text
	}
	return fmt.Sprintf("%d-%d", o.Wins, o.Losses)
}

// BestBet is one ranked recommendation from /api/best-bets/{date}.
// AwayTeam, HomeTeam, Team and Odds are optional; older backends only send
// the matchup and bet strings.
type BestBet struct {
	Rank     int        `json:"rank"`
	Matchup  string     `json:"matchup"`
	Bet      string     `json:"bet"`
	Criteria string     `json:"criteria"`
	Strength FlexFloat  `json:"strength"`
	GameID   FlexString `json:"game_id,omitempty"`
	AwayTeam string     `json:"awayTeam,omitempty"`
	HomeTeam string     `json:"homeTeam,omitempty"`
	Team     string     `json:"team,omitempty"`
	Odds     FlexString `json:"odds,omitempty"`
}
