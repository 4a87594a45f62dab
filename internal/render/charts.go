package render

import (
	"golang.org/x/net/html"

	"github.com/XavierBriggs/Janus/internal/charts"
	"github.com/XavierBriggs/Janus/internal/dom"
	"github.com/XavierBriggs/Janus/pkg/models"
)

// NoChartDataText is shown when the stats lack criteria or monthly data
const NoChartDataText = "No chart data available."

// Charts renders the two chart canvases with their Chart.js configs attached
func Charts(s models.StatsView) ([]*html.Node, error) {
	if !s.HasCharts {
		return []*html.Node{NoData(NoChartDataText)}, nil
	}

	criteria, err := charts.WinPercentage(s.Trends).JSON()
	if err != nil {
		return nil, err
	}
	monthly, err := charts.MonthlyROI(s.Monthly).JSON()
	if err != nil {
		return nil, err
	}

	return []*html.Node{
		chartBox("Criteria Performance", "criteria-chart", criteria),
		chartBox("Monthly ROI", "monthly-chart", monthly),
	}, nil
}

func chartBox(title, id, config string) *html.Node {
	return dom.El("div", dom.Class("chart-box"), dom.Children(
		dom.El("h3", dom.Text(title)),
		dom.El("canvas", dom.ID(id), dom.Attr("data-chart", config)),
	))
}
