package render

import (
	"golang.org/x/net/html"

	"github.com/XavierBriggs/Janus/internal/dom"
	"github.com/XavierBriggs/Janus/internal/format"
	"github.com/XavierBriggs/Janus/pkg/models"
)

const (
	RecommendedBadge = "RECOMMENDED BET"
	ViewDetailsLabel = "View Detailed Analysis"
	HideDetailsLabel = "Hide Detailed Analysis"
	NoGamesText      = "No games available for this date."

	detailsHidden  = "display: none;"
	detailsVisible = "display: block;"
)

// CardID returns the element id of a game card
func CardID(gameID string) string {
	return "card-" + gameID
}

// GameCards renders the games container content.
// expanded reports whether a card's detailed analysis is open.
func GameCards(games []models.GameView, expanded func(id string) bool) []*html.Node {
	if len(games) == 0 {
		return []*html.Node{NoData(NoGamesText)}
	}
	cards := make([]*html.Node, 0, len(games))
	for _, g := range games {
		open := expanded != nil && expanded(g.ID)
		cards = append(cards, GameCard(g, open))
	}
	return cards
}

// GameCard renders one game
func GameCard(g models.GameView, expanded bool) *html.Node {
	card := dom.El("div",
		dom.ID(CardID(g.ID)),
		dom.Class("game-card", classIf(g.Recommended, "recommendation")),
		dom.Attr("data-game-id", g.ID),
	)

	if g.Recommended {
		dom.Append(card, dom.El("div", dom.Class("recommendation-badge"), dom.Text(RecommendedBadge)))
	}

	dom.Append(card,
		gameHeader(g),
		dom.El("div", dom.Class("game-odds"), dom.Children(
			oddsBlock("away", g.Away),
			oddsBlock("home", g.Home),
		)),
		analysisDetails(g, expanded),
		detailedAnalysis(g, expanded),
	)
	return card
}

func gameHeader(g models.GameView) *html.Node {
	header := dom.El("div", dom.Class("game-header"), dom.Children(
		dom.El("div", dom.Class("game-time"), dom.Text(g.Time)),
		dom.El("div", dom.Class("matchup"), dom.Children(
			teamBlock("away", g.Away),
			dom.El("div", dom.Class("at"), dom.Text("@")),
			teamBlock("home", g.Home),
		)),
	))

	if ou := format.OverUnder(g.OverUnder); ou != "" {
		dom.Append(header, dom.El("div", dom.Class("over-under"), dom.Text(ou)))
	}
	if score := format.Score(g.Away.Name, g.Away.Score, g.Home.Name, g.Home.Score); score != "" {
		dom.Append(header, dom.El("div", dom.Class("final-score"), dom.Text(score)))
	}
	return header
}

func teamBlock(side string, t models.TeamView) *html.Node {
	return dom.El("div", dom.Class("team", side), dom.Children(
		dom.El("img", dom.Attr("src", t.Logo), dom.Attr("alt", t.Name)),
		dom.El("span", dom.Text(t.Name)),
	))
}

func oddsBlock(side string, t models.TeamView) *html.Node {
	return dom.El("div", dom.Class("odds", side, classIf(t.Highlight, "highlight")), dom.Children(
		dom.El("div", dom.Class("american"), dom.Text(t.OddsAmerican)),
		dom.El("div", dom.Class("decimal"), dom.Text(format.DecimalOdds(t.OddsDecimal))),
	))
}

func analysisDetails(g models.GameView, expanded bool) *html.Node {
	icon := "fa-times"
	if g.Recommended {
		icon = "fa-check"
	}

	list := dom.El("div", dom.Class("criteria-list"), dom.Children(
		dom.El("div", dom.Class("criteria", classIf(g.CriteriaMatched, "matched")), dom.Children(
			dom.El("i", dom.Class("fas", icon)),
			dom.TextNode(" "+g.CriteriaSummary),
		)),
	))

	awayRecord := format.TeamRecord(g.Away.Name, g.Away.Record)
	homeRecord := format.TeamRecord(g.Home.Name, g.Home.Record)
	if awayRecord != "" || homeRecord != "" {
		records := dom.El("div", dom.Class("records"))
		if awayRecord != "" {
			dom.Append(records, dom.El("div", dom.Class("away"), dom.Text(awayRecord)))
		}
		if homeRecord != "" {
			dom.Append(records, dom.El("div", dom.Class("home"), dom.Text(homeRecord)))
		}
		dom.Append(list, records)
	}

	return dom.El("div", dom.Class("analysis-details"), dom.Children(
		StrengthMeter(g.Strength),
		list,
		ToggleButton(g.ID, expanded),
	))
}

// StrengthMeter renders the bar and two-decimal label for a strength
func StrengthMeter(strength float64) *html.Node {
	return dom.El("div", dom.Class("strength-meter"), dom.Children(
		dom.El("div", dom.Class("label"), dom.Text("Bet Strength:")),
		dom.El("div", dom.Class("meter"), dom.Children(
			dom.El("div", dom.Class("fill"), dom.Attr("style", "width: "+format.StrengthPercent(strength))),
		)),
		dom.El("div", dom.Class("value"), dom.Text(format.Strength(strength))),
	))
}

// ToggleButton renders the detail toggle with the label matching visibility
func ToggleButton(gameID string, expanded bool) *html.Node {
	label := ViewDetailsLabel
	if expanded {
		label = HideDetailsLabel
	}
	return dom.El("button",
		dom.Class("toggle-detailed-analysis"),
		dom.Attr("type", "button"),
		dom.Attr("data-action", "toggle"),
		dom.Attr("data-game-id", gameID),
		dom.Attr("aria-expanded", boolAttr(expanded)),
		dom.Text(label),
	)
}

func detailedAnalysis(g models.GameView, expanded bool) *html.Node {
	style := detailsHidden
	if expanded {
		style = detailsVisible
	}

	section := dom.El("div",
		dom.Class("detailed-analysis"),
		dom.Attr("style", style),
		dom.Children(dom.El("h4", dom.Text("Complete Criteria Analysis"))),
	)

	for _, c := range g.Criteria {
		checks := dom.El("div", dom.Class("criteria-checks"))
		for _, chk := range c.Checks {
			dom.Append(checks, dom.El("div", dom.Class("check", passFail(chk.Passed)), dom.Children(
				dom.El("i", dom.Class("fas", checkIcon(chk.Passed))),
				dom.TextNode(" "+chk.Label+": "+chk.Value),
			)))
		}

		result := "❌"
		if c.Matches {
			result = "✅"
		}
		dom.Append(section, dom.El("div", dom.Class("criteria-detail"), dom.Children(
			dom.El("h5", dom.Text(c.Title)),
			checks,
			dom.El("div", dom.Class("criteria-result", matchClass(c.Matches)), dom.Children(
				dom.El("span", dom.Class("result-label"), dom.Text("MATCH:")),
				dom.El("span", dom.Class("result-value"), dom.Text(result)),
				dom.El("span", dom.Class("strength"), dom.Text("Strength: "+format.Strength(c.Strength))),
			)),
		)))
	}
	return section
}

func classIf(cond bool, class string) string {
	if cond {
		return class
	}
	return ""
}

func passFail(passed bool) string {
	if passed {
		return "passed"
	}
	return "failed"
}

func checkIcon(passed bool) string {
	if passed {
		return "fa-check"
	}
	return "fa-times"
}

func matchClass(matches bool) string {
	if matches {
		return "match"
	}
	return "no-match"
}

func boolAttr(b bool) string {
	if b {
		return "true"
	}
	return "false"
}
