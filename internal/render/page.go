package render

import (
	"golang.org/x/net/html"

	"github.com/XavierBriggs/Janus/internal/dom"
)

// Element ids of the patchable containers on the page
const (
	DateElement     = "current-date"
	TabsElement     = "tab-nav"
	SummaryElement  = "summary-cards"
	RecordElement   = "ytd-record"
	GamesElement    = "games-container"
	BestBetsElement = "best-bets-container"
	TrendsElement   = "trend-stats"
	ChartsElement   = "charts-container"
)

const chartJSURL = "https://cdn.jsdelivr.net/npm/chart.js"
const fontAwesomeURL = "https://cdnjs.cloudflare.com/ajax/libs/font-awesome/6.5.1/css/all.min.css"

// Tab is one navigation entry
type Tab struct {
	ID     string
	Label  string
	Active bool
}

// Page is everything needed to render the full dashboard document
type Page struct {
	Title      string
	SportName  string
	Tabs       []Tab
	Containers map[string]string // element id -> inner HTML
}

// TabNav renders the navigation list items
func TabNav(tabs []Tab) []*html.Node {
	items := make([]*html.Node, 0, len(tabs))
	for _, t := range tabs {
		items = append(items, dom.El("li", dom.Class(classIf(t.Active, "active")), dom.Children(
			dom.El("a",
				dom.Attr("href", "#"+t.ID),
				dom.Attr("data-action", "tab"),
				dom.Attr("data-tab", t.ID),
				dom.Text(t.Label),
			),
		)))
	}
	return items
}

// DatePage renders the full dashboard document
func DatePage(p Page) (*html.Node, error) {
	fill := func(tag, id string, opts ...dom.Option) (*html.Node, error) {
		n := dom.El(tag, append([]dom.Option{dom.ID(id)}, opts...)...)
		if inner := p.Containers[id]; inner != "" {
			nodes, err := dom.Parse(inner)
			if err != nil {
				return nil, err
			}
			dom.Append(n, nodes...)
		}
		return n, nil
	}

	ids := []struct {
		tag, id, class string
	}{
		{"span", DateElement, ""},
		{"ul", TabsElement, "tabs"},
		{"div", SummaryElement, "summary-cards"},
		{"p", RecordElement, "summary-value"},
		{"div", GamesElement, "games-container"},
		{"div", BestBetsElement, "best-bets-container"},
		{"div", TrendsElement, "trend-stats"},
		{"div", ChartsElement, "charts-container"},
	}
	el := make(map[string]*html.Node, len(ids))
	for _, c := range ids {
		n, err := fill(c.tag, c.id, dom.Class(c.class))
		if err != nil {
			return nil, err
		}
		el[c.id] = n
	}
	if p.Containers[TabsElement] == "" {
		dom.Append(el[TabsElement], TabNav(p.Tabs)...)
	}

	head := dom.El("head", dom.Children(
		dom.El("meta", dom.Attr("charset", "utf-8")),
		dom.El("meta", dom.Attr("name", "viewport"), dom.Attr("content", "width=device-width, initial-scale=1")),
		dom.El("title", dom.Text(p.Title)),
		dom.El("link", dom.Attr("rel", "stylesheet"), dom.Attr("href", fontAwesomeURL)),
		dom.El("style", dom.Text(pageStyle)),
		dom.El("script", dom.Attr("src", chartJSURL)),
	))

	header := dom.El("header", dom.Children(
		dom.El("h1", dom.Text(p.Title)),
		dom.El("p", dom.Class("sport"), dom.Text(p.SportName)),
		dom.El("div", dom.Class("date-nav"), dom.Children(
			dom.El("button", dom.ID("prev-date"), dom.Attr("type", "button"), dom.Attr("data-action", "prev"),
				dom.Children(dom.El("i", dom.Class("fas", "fa-chevron-left")))),
			el[DateElement],
			dom.El("button", dom.ID("next-date"), dom.Attr("type", "button"), dom.Attr("data-action", "next"),
				dom.Children(dom.El("i", dom.Class("fas", "fa-chevron-right")))),
		)),
		dom.El("nav", dom.Children(el[TabsElement])),
	))

	content := dom.El("main", dom.Children(
		dom.El("section", dom.Class("summary"), dom.Children(
			el[SummaryElement],
			dom.El("div", dom.Class("summary-card"), dom.Children(
				dom.El("h3", dom.Text("YTD Record")),
				el[RecordElement],
			)),
		)),
		dom.El("section", dom.ID("games"), dom.Children(
			dom.El("h2", dom.Text("Games")),
			el[GamesElement],
		)),
		dom.El("section", dom.ID("best-bets"), dom.Children(
			dom.El("h2", dom.Text("Best Bets")),
			el[BestBetsElement],
		)),
		dom.El("section", dom.ID("trends"), dom.Children(
			dom.El("h2", dom.Text("Trends & Stats")),
			el[TrendsElement],
			el[ChartsElement],
		)),
	))

	doc := &html.Node{Type: html.DocumentNode}
	doc.AppendChild(&html.Node{Type: html.DoctypeNode, Data: "html"})
	doc.AppendChild(dom.El("html", dom.Attr("lang", "en"), dom.Children(
		head,
		dom.El("body", dom.Children(
			header,
			content,
			dom.El("script", dom.Text(pageScript)),
		)),
	)))
	return doc, nil
}
