package testutil

import (
	"context"

	"github.com/XavierBriggs/Janus/pkg/models"
)

// NewTestGame creates a test game with American odds on both sides and no
// recommendation
func NewTestGame(gameID, awayTeam, homeTeam string, strength float64) models.Game {
	return models.Game{
		ID:               models.FlexString(gameID),
		Time:             "7:05 PM",
		AwayTeam:         awayTeam,
		HomeTeam:         homeTeam,
		AwayOddsAmerican: "+120",
		HomeOddsAmerican: "-140",
		Strength:         ptrFloat64(strength),
	}
}

// NewTestBestBet creates a recommendation in the free-text form the
// analysis service sends: "Away @ Home" and "Team Odds"
func NewTestBestBet(rank int, awayTeam, homeTeam, betTeam, odds string, strength float64) models.BestBet {
	return models.BestBet{
		Rank:     rank,
		Matchup:  awayTeam + " @ " + homeTeam,
		Bet:      betTeam + " " + odds,
		Criteria: "Road underdog coming off loss",
		Strength: models.FlexFloat(strength),
	}
}

// GoldenFixture pairs a raw game with the card state it must normalize to
type GoldenFixture struct {
	Name          string
	Game          models.Game
	AwayHighlight bool
	HomeHighlight bool
	Recommended   bool
	StrengthText  string // Strength as shown on the card
}

// GetGoldenFixtures returns games with expected normalized outputs
func GetGoldenFixtures() []GoldenFixture {
	awayBet := NewTestGame("g1", "Yankees", "Red Sox", 0.755)
	awayBet.BetOnAway = true
	awayBet.AnyMatch = true

	homeBet := NewTestGame("g2", "Mets", "Braves", 0.5)
	homeBet.BetOnHome = true
	homeBet.AnyMatch = true

	conflicting := NewTestGame("g3", "Cubs", "Cardinals", 0.6)
	conflicting.BetOnAway = true
	conflicting.BetOnHome = true
	conflicting.AnyMatch = true

	noBet := NewTestGame("g4", "Padres", "Giants", 0)

	return []GoldenFixture{
		{
			Name:          "Away Recommendation",
			Game:          awayBet,
			AwayHighlight: true,
			Recommended:   true,
			StrengthText:  "0.76",
		},
		{
			Name:          "Home Recommendation",
			Game:          homeBet,
			HomeHighlight: true,
			Recommended:   true,
			StrengthText:  "0.50",
		},
		{
			// Both flags set is ambiguous; neither side is marked
			Name:         "Conflicting Flags",
			Game:         conflicting,
			Recommended:  true,
			StrengthText: "0.60",
		},
		{
			Name:         "No Recommendation",
			Game:         noBet,
			StrengthText: "0.00",
		},
	}
}

// ptrFloat64 creates a pointer to float64
func ptrFloat64(val float64) *float64 {
	return &val
}

// MockAnalysisSource is a test source that returns predetermined payloads
type MockAnalysisSource struct {
	FetchGamesFunc    func(date string) (*models.GamesResponse, error)
	FetchStatsFunc    func() (*models.StatsResponse, error)
	FetchBestBetsFunc func(date string) ([]models.BestBet, error)
}

func (m *MockAnalysisSource) FetchGames(ctx context.Context, date string) (*models.GamesResponse, error) {
	if m.FetchGamesFunc != nil {
		return m.FetchGamesFunc(date)
	}
	return &models.GamesResponse{}, nil
}

func (m *MockAnalysisSource) FetchStats(ctx context.Context) (*models.StatsResponse, error) {
	if m.FetchStatsFunc != nil {
		return m.FetchStatsFunc()
	}
	return &models.StatsResponse{}, nil
}

func (m *MockAnalysisSource) FetchBestBets(ctx context.Context, date string) ([]models.BestBet, error) {
	if m.FetchBestBetsFunc != nil {
		return m.FetchBestBetsFunc(date)
	}
	return []models.BestBet{}, nil
}
