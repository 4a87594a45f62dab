// Package normalize converts analysis payloads into fully populated view
// models. It runs once per response, before any renderer sees the data.
package normalize

import (
	"fmt"
	"strings"

	"github.com/XavierBriggs/Janus/pkg/contracts"
	"github.com/XavierBriggs/Janus/pkg/models"
)

const (
	// NoCriteriaText is shown when a game matched nothing
	NoCriteriaText = "No matching criteria"

	defaultTime = "TBD"
	missingOdds = "N/A"
	matchupSep  = " @ "
)

// Games normalizes a games payload. The returned notes describe payload
// inconsistencies that were corrected, for the caller to log.
func Games(resp *models.GamesResponse, sport contracts.SportModule) (models.GamesView, []string) {
	var view models.GamesView
	var notes []string
	if resp == nil {
		return view, notes
	}

	seen := make(map[string]bool, len(resp.Games))
	view.Games = make([]models.GameView, 0, len(resp.Games))
	for i, g := range resp.Games {
		gv, note := game(g, sport)
		if gv.ID == "" {
			gv.ID = fmt.Sprintf("game-%d", i+1)
		}
		if seen[gv.ID] {
			gv.ID = fmt.Sprintf("%s-%d", gv.ID, i+1)
		}
		seen[gv.ID] = true
		if note != "" {
			notes = append(notes, note)
		}
		view.Games = append(view.Games, gv)
	}

	view.Summary = Summary(resp.Summary)
	return view, notes
}

// Summary normalizes the day summary; absent counters become zero
func Summary(s *models.StatsSummary) models.SummaryView {
	var view models.SummaryView
	if s == nil {
		return view
	}
	if s.TotalGames != nil {
		view.TotalGames = *s.TotalGames
	}
	if s.MatchingGames != nil {
		view.MatchingGames = *s.MatchingGames
	}
	if s.BestStrength != nil {
		view.BestStrength = *s.BestStrength
	}
	view.Record = s.Record
	view.HasRecord = s.Record != ""
	return view
}

func game(g models.Game, sport contracts.SportModule) (models.GameView, string) {
	var note string
	betHome, betAway := g.BetOnHome, g.BetOnAway
	if betHome && betAway {
		note = fmt.Sprintf("game %s: both betOnHome and betOnAway set, highlighting neither", g.ID)
		betHome, betAway = false, false
	}

	gv := models.GameView{
		ID:          strings.TrimSpace(g.ID.String()),
		Date:        g.Date,
		Time:        orDefault(g.Time, defaultTime),
		OverUnder:   g.OverUnder,
		Recommended: g.AnyMatch,
		Away: models.TeamView{
			Name:         g.AwayTeam,
			Logo:         logo(g.AwayLogo, g.AwayTeam, sport),
			Record:       g.AwayRecord,
			OddsAmerican: orDefault(g.AwayOddsAmerican.String(), missingOdds),
			OddsDecimal:  g.AwayOddsDecimal,
			Highlight:    betAway,
			Score:        g.AwayScore,
		},
		Home: models.TeamView{
			Name:         g.HomeTeam,
			Logo:         logo(g.HomeLogo, g.HomeTeam, sport),
			Record:       g.HomeRecord,
			OddsAmerican: orDefault(g.HomeOddsAmerican.String(), missingOdds),
			OddsDecimal:  g.HomeOddsDecimal,
			Highlight:    betHome,
			Score:        g.HomeScore,
		},
		CriteriaSummary: NoCriteriaText,
	}

	if g.Strength != nil {
		gv.Strength = *g.Strength
	}

	for _, c := range g.CriteriaMatched {
		if c = strings.TrimSpace(c); c != "" {
			gv.CriteriaSummary = c
			gv.CriteriaMatched = true
			break
		}
	}

	if sport != nil {
		gv.Criteria = sport.DescribeCriteria(g)
	}

	return gv, note
}

// Stats normalizes the aggregate stats payload
func Stats(resp *models.StatsResponse) models.StatsView {
	var view models.StatsView
	if resp == nil {
		return view
	}

	view.Trends = make([]models.TrendView, 0, 3)
	for i := 1; i <= 3; i++ {
		tv := models.TrendView{Index: i}
		if s, ok := resp.CriteriaStats[fmt.Sprintf("criteria_%d", i)]; ok && s != nil {
			tv.Wins = s.Wins
			tv.Losses = s.Losses
			tv.Pushes = s.Pushes
			tv.WinPct = s.WinPct
			tv.Present = true
		}
		view.Trends = append(view.Trends, tv)
	}

	view.HasCharts = resp.CriteriaStats != nil && resp.MonthlyStats != nil
	if view.HasCharts {
		view.Monthly = make([]models.MonthlyStat, len(resp.MonthlyStats))
		copy(view.Monthly, resp.MonthlyStats)
	}

	if resp.OverallRecord != nil {
		view.Record = resp.OverallRecord.Display()
		view.HasRecord = view.Record != ""
	}

	return view
}

// BestBets normalizes recommendations and resolves each bet's teams
func BestBets(bets []models.BestBet) []models.BestBetView {
	views := make([]models.BestBetView, 0, len(bets))
	for i, b := range bets {
		bv := models.BestBetView{
			Rank:     b.Rank,
			GameID:   b.GameID.String(),
			Bet:      strings.TrimSpace(b.Bet),
			Matchup:  strings.TrimSpace(b.Matchup),
			Criteria: b.Criteria,
			Strength: b.Strength.Float64(),
			AwayTeam: strings.TrimSpace(b.AwayTeam),
			HomeTeam: strings.TrimSpace(b.HomeTeam),
			Team:     strings.TrimSpace(b.Team),
			Odds:     strings.TrimSpace(b.Odds.String()),
		}
		if bv.Rank == 0 {
			bv.Rank = i + 1
		}

		if bv.AwayTeam == "" || bv.HomeTeam == "" {
			if away, home, ok := SplitMatchup(bv.Matchup); ok {
				bv.AwayTeam, bv.HomeTeam = away, home
			}
		}
		if bv.Team == "" {
			bv.Team = BetTeam(bv.Bet, bv.AwayTeam, bv.HomeTeam)
		}
		if bv.Odds == "" && bv.Team != "" {
			bv.Odds = strings.TrimSpace(strings.TrimPrefix(bv.Bet, bv.Team))
		}

		switch bv.Team {
		case "":
		case bv.AwayTeam:
			bv.Opponent = bv.HomeTeam
		case bv.HomeTeam:
			bv.Opponent = bv.AwayTeam
		}

		views = append(views, bv)
	}
	return views
}

// SplitMatchup splits "Away @ Home" into its two teams
func SplitMatchup(matchup string) (away, home string, ok bool) {
	parts := strings.SplitN(matchup, matchupSep, 2)
	if len(parts) != 2 {
		return "", "", false
	}
	away, home = strings.TrimSpace(parts[0]), strings.TrimSpace(parts[1])
	if away == "" || home == "" {
		return "", "", false
	}
	return away, home, true
}

// BetTeam returns whichever team the bet string names. When both names
// prefix the bet (one team name contains the other) the longer one wins.
func BetTeam(bet, away, home string) string {
	best := ""
	for _, team := range []string{away, home} {
		if team == "" {
			continue
		}
		if bet == team || strings.HasPrefix(bet, team+" ") {
			if len(team) > len(best) {
				best = team
			}
		}
	}
	return best
}

func logo(payloadLogo, team string, sport contracts.SportModule) string {
	if payloadLogo != "" {
		return payloadLogo
	}
	if sport == nil {
		return ""
	}
	if team == "" {
		return sport.PlaceholderLogo()
	}
	return sport.TeamLogo(team)
}

func orDefault(s, def string) string {
	if strings.TrimSpace(s) == "" {
		return def
	}
	return s
}
