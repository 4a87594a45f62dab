package models

// Normalized view models. Every field is populated by internal/normalize so
// renderers never need to check for absent values.

// TeamView is one side of a game card
type TeamView struct {
	Name         string
	Logo         string
	Record       string
	OddsAmerican string
	OddsDecimal  *float64
	Highlight    bool
	Score        *int
}

// CheckView is one sub-check line of a criterion
type CheckView struct {
	Label  string
	Value  string
	Passed bool
}

// CriterionDetail is one criterion block in the detailed analysis
type CriterionDetail struct {
	Title    string
	Checks   []CheckView
	Matches  bool
	Strength float64
}

// GameView is a normalized game ready for the card renderer
type GameView struct {
	ID              string
	Date            string
	Time            string
	Away            TeamView
	Home            TeamView
	OverUnder       *float64
	Recommended     bool
	Strength        float64
	CriteriaSummary string
	CriteriaMatched bool
	Criteria        []CriterionDetail
}

// SummaryView feeds the summary counters
type SummaryView struct {
	TotalGames    int
	MatchingGames int
	BestStrength  float64
	Record        string
	HasRecord     bool
}

// GamesView is a normalized games payload
type GamesView struct {
	Games   []GameView
	Summary SummaryView
}

// TrendView is the record of one criterion for the trend counters
type TrendView struct {
	Index   int
	Wins    int
	Losses  int
	Pushes  int
	WinPct  float64
	Present bool
}

// StatsView is a normalized stats payload
type StatsView struct {
	Trends    []TrendView
	Monthly   []MonthlyStat
	HasCharts bool
	Record    string
	HasRecord bool
}

// BestBetView is a normalized recommendation with its teams resolved
type BestBetView struct {
	Rank     int
	GameID   string
	Bet      string
	Team     string
	Opponent string
	AwayTeam string
	HomeTeam string
	Odds     string
	Matchup  string
	Criteria string
	Strength float64
}
