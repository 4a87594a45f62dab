package render

import (
	"strconv"
	"strings"

	"golang.org/x/net/html"

	"github.com/XavierBriggs/Janus/internal/dom"
	"github.com/XavierBriggs/Janus/internal/format"
	"github.com/XavierBriggs/Janus/pkg/models"
)

// NoBestBetsText is shown when no game matched for the date
const NoBestBetsText = "No recommended bets for this date."

// BestBets renders the best-bets container content
func BestBets(bets []models.BestBetView) []*html.Node {
	if len(bets) == 0 {
		return []*html.Node{NoData(NoBestBetsText)}
	}

	nodes := make([]*html.Node, 0, len(bets))
	for _, b := range bets {
		nodes = append(nodes, dom.El("div",
			dom.Class("best-bet"),
			dom.If(b.GameID != "", dom.Attr("data-game-id", b.GameID)),
			dom.Children(
				dom.El("div", dom.Class("bet-rank"), dom.Text(strconv.Itoa(b.Rank))),
				dom.El("div", dom.Class("bet-details"), dom.Children(
					dom.El("div", dom.Class("matchup"), dom.Text(BestBetLine(b))),
					dom.El("div", dom.Class("criteria"), dom.Text(b.Criteria)),
					dom.El("div", dom.Class("strength"), dom.Text("Strength: "+format.Strength(b.Strength))),
				)),
			),
		))
	}
	return nodes
}

// BestBetLine returns "{bet} vs {opponent}". When the opponent could not be
// resolved the matchup is shown instead.
func BestBetLine(b models.BestBetView) string {
	if b.Opponent != "" {
		return b.Bet + " vs " + b.Opponent
	}
	if b.Matchup == "" {
		return b.Bet
	}
	return b.Bet + " (" + strings.Replace(b.Matchup, " @ ", " vs ", 1) + ")"
}
