package render

import (
	"fmt"
	"strconv"

	"golang.org/x/net/html"

	"github.com/XavierBriggs/Janus/internal/dom"
	"github.com/XavierBriggs/Janus/internal/format"
	"github.com/XavierBriggs/Janus/pkg/models"
)

// SummaryCards renders the per-date counters
func SummaryCards(s models.SummaryView) []*html.Node {
	return []*html.Node{
		summaryCard("games-analyzed", "Games Analyzed", strconv.Itoa(s.TotalGames)),
		summaryCard("games-matching", "Matching Criteria", strconv.Itoa(s.MatchingGames)),
		summaryCard("best-strength", "Best Strength", format.Strength(s.BestStrength)),
	}
}

func summaryCard(id, title, value string) *html.Node {
	return dom.El("div", dom.Class("summary-card"), dom.Children(
		dom.El("h3", dom.Text(title)),
		dom.El("p", dom.ID(id), dom.Class("summary-value"), dom.Text(value)),
	))
}

// RecordValue renders the record counter content
func RecordValue(record string) []*html.Node {
	return []*html.Node{dom.TextNode(record)}
}

// TrendText formats one criterion's record. Absent criteria read as zero.
func TrendText(t models.TrendView) string {
	return format.WinLossLine(t.Wins, t.Losses, t.Pushes, t.WinPct)
}

// Trends renders the per-criterion record counters
func Trends(trends []models.TrendView, names []string) []*html.Node {
	nodes := make([]*html.Node, 0, len(trends))
	for _, t := range trends {
		title := fmt.Sprintf("Criteria %d", t.Index)
		if t.Index >= 1 && t.Index <= len(names) {
			title = fmt.Sprintf("Criteria %d: %s", t.Index, names[t.Index-1])
		}
		nodes = append(nodes, dom.El("div", dom.Class("trend-stat", classIf(!t.Present, "no-data")), dom.Children(
			dom.El("h4", dom.Text(title)),
			dom.El("p", dom.ID(fmt.Sprintf("criteria-%d-stat", t.Index)), dom.Class("stat"), dom.Text(TrendText(t))),
		)))
	}
	return nodes
}
