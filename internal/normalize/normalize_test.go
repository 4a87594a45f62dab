package normalize_test

import (
	"testing"

	"github.com/XavierBriggs/Janus/internal/normalize"
	"github.com/XavierBriggs/Janus/pkg/models"
	"github.com/XavierBriggs/Janus/sports/baseball_mlb"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func f(v float64) *float64 { return &v }
func i(v int) *int         { return &v }

func TestGames_Defaults(t *testing.T) {
	sport := baseball_mlb.NewModule(nil)
	resp := &models.GamesResponse{
		Games: []models.Game{
			{AwayTeam: "Yankees", HomeTeam: "Expos"},
		},
	}

	view, notes := normalize.Games(resp, sport)
	require.Len(t, view.Games, 1)
	assert.Empty(t, notes)

	g := view.Games[0]
	assert.Equal(t, "game-1", g.ID)
	assert.Equal(t, "TBD", g.Time)
	assert.Equal(t, "N/A", g.Away.OddsAmerican)
	assert.Equal(t, "https://a.espncdn.com/i/teamlogos/mlb/500/nyy.png", g.Away.Logo)
	assert.Equal(t, "https://a.espncdn.com/i/teamlogos/mlb/500/exp.png", g.Home.Logo)
	assert.Equal(t, normalize.NoCriteriaText, g.CriteriaSummary)
	assert.False(t, g.CriteriaMatched)
	assert.Zero(t, g.Strength)
	assert.Len(t, g.Criteria, 3)

	assert.Equal(t, models.SummaryView{}, view.Summary)
}

func TestGames_Highlight(t *testing.T) {
	tests := []struct {
		name               string
		betHome, betAway   bool
		wantHome, wantAway bool
		wantNote           bool
	}{
		{"home", true, false, true, false, false},
		{"away", false, true, false, true, false},
		{"neither", false, false, false, false, false},
		{"both is inconsistent", true, true, false, false, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp := &models.GamesResponse{Games: []models.Game{{
				ID: "g1", AwayTeam: "Mets", HomeTeam: "Braves",
				BetOnHome: tt.betHome, BetOnAway: tt.betAway,
			}}}

			view, notes := normalize.Games(resp, baseball_mlb.NewModule(nil))
			g := view.Games[0]
			assert.Equal(t, tt.wantHome, g.Home.Highlight)
			assert.Equal(t, tt.wantAway, g.Away.Highlight)
			assert.Equal(t, tt.wantNote, len(notes) == 1)
		})
	}
}

func TestGames_PayloadValuesWin(t *testing.T) {
	resp := &models.GamesResponse{
		Games: []models.Game{
			{
				ID: "9", Time: "1:10 PM", AwayTeam: "Cubs", HomeTeam: "Reds",
				AwayLogo: "https://img/cubs.png", Strength: f(0.755), AnyMatch: true,
				CriteriaMatched: []string{"", "Road underdog coming off loss"},
				AwayScore:       i(4), HomeScore: i(2),
			},
			{ID: "9", AwayTeam: "Cubs", HomeTeam: "Reds"},
		},
		Summary: &models.StatsSummary{TotalGames: i(2), MatchingGames: i(1), BestStrength: f(0.755), Record: "10-5-2"},
	}

	view, _ := normalize.Games(resp, baseball_mlb.NewModule(nil))
	g := view.Games[0]
	assert.Equal(t, "9", g.ID)
	assert.Equal(t, "1:10 PM", g.Time)
	assert.Equal(t, "https://img/cubs.png", g.Away.Logo)
	assert.InDelta(t, 0.755, g.Strength, 1e-9)
	assert.Equal(t, "Road underdog coming off loss", g.CriteriaSummary)
	assert.True(t, g.CriteriaMatched)
	assert.True(t, g.Recommended)

	// Duplicate ids are made unique so detail toggles stay per card
	assert.Equal(t, "9-2", view.Games[1].ID)

	assert.Equal(t, models.SummaryView{
		TotalGames: 2, MatchingGames: 1, BestStrength: 0.755, Record: "10-5-2", HasRecord: true,
	}, view.Summary)
}

func TestStats(t *testing.T) {
	resp := &models.StatsResponse{
		CriteriaStats: map[string]*models.CriterionStats{
			"criteria_1": {Wins: 10, Losses: 5, WinPct: 66.7},
			"criteria_3": {Wins: 10, Losses: 5, Pushes: 2, WinPct: 62.5},
		},
		MonthlyStats:  []models.MonthlyStat{{Month: "April", ROI: 12.5}, {Month: "May", ROI: -3}},
		OverallRecord: &models.OverallRecord{Wins: 20, Losses: 10},
	}

	view := normalize.Stats(resp)
	require.Len(t, view.Trends, 3)
	assert.True(t, view.Trends[0].Present)
	assert.False(t, view.Trends[1].Present)
	assert.Equal(t, 2, view.Trends[2].Pushes)
	assert.True(t, view.HasCharts)
	assert.Equal(t, "April", view.Monthly[0].Month)
	assert.Equal(t, "20-10", view.Record)
	assert.True(t, view.HasRecord)
}

func TestStats_MissingChartData(t *testing.T) {
	view := normalize.Stats(&models.StatsResponse{
		CriteriaStats: map[string]*models.CriterionStats{"criteria_1": {Wins: 1}},
	})
	assert.False(t, view.HasCharts)
	assert.True(t, view.Trends[0].Present)
	assert.False(t, view.HasRecord)
}

func TestBestBets_OpponentResolution(t *testing.T) {
	tests := []struct {
		name         string
		bet          models.BestBet
		wantTeam     string
		wantOpponent string
		wantOdds     string
	}{
		{
			name:         "away bet",
			bet:          models.BestBet{Matchup: "Yankees @ Red Sox", Bet: "Yankees +120"},
			wantTeam:     "Yankees",
			wantOpponent: "Red Sox",
			wantOdds:     "+120",
		},
		{
			name:         "home bet with multi-word name",
			bet:          models.BestBet{Matchup: "Yankees @ Red Sox", Bet: "Red Sox +105"},
			wantTeam:     "Red Sox",
			wantOpponent: "Yankees",
			wantOdds:     "+105",
		},
		{
			name:         "one team name contains the other",
			bet:          models.BestBet{Matchup: "Sox @ White Sox", Bet: "White Sox +150"},
			wantTeam:     "White Sox",
			wantOpponent: "Sox",
			wantOdds:     "+150",
		},
		{
			name:         "shorter name is a prefix of the longer",
			bet:          models.BestBet{Matchup: "Red @ Red Sox", Bet: "Red Sox +110"},
			wantTeam:     "Red Sox",
			wantOpponent: "Red",
			wantOdds:     "+110",
		},
		{
			name: "structured fields win",
			bet: models.BestBet{
				Matchup: "garbled", Bet: "Mets +130",
				AwayTeam: "Mets", HomeTeam: "Braves", Team: "Mets", Odds: "+130",
			},
			wantTeam:     "Mets",
			wantOpponent: "Braves",
			wantOdds:     "+130",
		},
		{
			name:         "unresolvable",
			bet:          models.BestBet{Matchup: "Yankees @ Red Sox", Bet: "Orioles +200"},
			wantTeam:     "",
			wantOpponent: "",
			wantOdds:     "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			views := normalize.BestBets([]models.BestBet{tt.bet})
			require.Len(t, views, 1)
			assert.Equal(t, tt.wantTeam, views[0].Team)
			assert.Equal(t, tt.wantOpponent, views[0].Opponent)
			assert.Equal(t, tt.wantOdds, views[0].Odds)
			assert.Equal(t, 1, views[0].Rank)
		})
	}
}

func TestSplitMatchup(t *testing.T) {
	away, home, ok := normalize.SplitMatchup("Blue Jays @ Rays")
	assert.True(t, ok)
	assert.Equal(t, "Blue Jays", away)
	assert.Equal(t, "Rays", home)

	_, _, ok = normalize.SplitMatchup("Blue Jays vs Rays")
	assert.False(t, ok)
}
