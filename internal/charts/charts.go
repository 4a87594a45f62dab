// Package charts shapes Chart.js configurations for the trends section.
// The browser hands the serialized config to Chart.js unchanged.
package charts

import (
	"encoding/json"
	"fmt"

	"github.com/XavierBriggs/Janus/pkg/models"
)

// Config is a Chart.js chart configuration
type Config struct {
	Type    string  `json:"type"`
	Data    Data    `json:"data"`
	Options Options `json:"options"`
}

// Data holds labels and datasets
type Data struct {
	Labels   []string  `json:"labels"`
	Datasets []Dataset `json:"datasets"`
}

// Dataset is one series. Colors are either one string or one per point.
type Dataset struct {
	Label           string      `json:"label"`
	Data            []float64   `json:"data"`
	BackgroundColor interface{} `json:"backgroundColor"`
	BorderColor     interface{} `json:"borderColor"`
	BorderWidth     int         `json:"borderWidth"`
	Fill            *bool       `json:"fill,omitempty"`
}

// Options holds chart options
type Options struct {
	Responsive bool     `json:"responsive"`
	Scales     Scales   `json:"scales"`
	Plugins    *Plugins `json:"plugins,omitempty"`
}

// Scales holds axis configuration
type Scales struct {
	Y Axis `json:"y"`
}

// Axis is a value axis
type Axis struct {
	BeginAtZero bool      `json:"beginAtZero,omitempty"`
	Max         *float64  `json:"max,omitempty"`
	Title       AxisTitle `json:"title"`
}

// AxisTitle is an axis caption
type AxisTitle struct {
	Display bool   `json:"display"`
	Text    string `json:"text"`
}

// Plugins holds plugin options
type Plugins struct {
	Legend Legend `json:"legend"`
}

// Legend toggles the legend
type Legend struct {
	Display bool `json:"display"`
}

var criteriaColors = []string{"75, 192, 192", "54, 162, 235", "153, 102, 255"}

const roiColor = "255, 159, 64"

func rgba(rgb string, alpha string) string {
	return fmt.Sprintf("rgba(%s, %s)", rgb, alpha)
}

// WinPercentage builds the per-criterion win percentage bar chart.
// A criterion absent from the stats plots as zero.
func WinPercentage(trends []models.TrendView) Config {
	labels := make([]string, len(criteriaColors))
	data := make([]float64, len(criteriaColors))
	bg := make([]string, len(criteriaColors))
	border := make([]string, len(criteriaColors))

	for i, rgb := range criteriaColors {
		labels[i] = fmt.Sprintf("Criteria %d", i+1)
		bg[i] = rgba(rgb, "0.6")
		border[i] = rgba(rgb, "1")
	}
	for _, t := range trends {
		if t.Index >= 1 && t.Index <= len(data) && t.Present {
			data[t.Index-1] = t.WinPct
		}
	}

	maxPct := 100.0
	return Config{
		Type: "bar",
		Data: Data{
			Labels: labels,
			Datasets: []Dataset{{
				Label:           "Win %",
				Data:            data,
				BackgroundColor: bg,
				BorderColor:     border,
				BorderWidth:     1,
			}},
		},
		Options: Options{
			Responsive: true,
			Scales: Scales{Y: Axis{
				BeginAtZero: true,
				Max:         &maxPct,
				Title:       AxisTitle{Display: true, Text: "Win Percentage"},
			}},
			Plugins: &Plugins{Legend: Legend{Display: false}},
		},
	}
}

// MonthlyROI builds the ROI line chart with one point per month, in order
func MonthlyROI(months []models.MonthlyStat) Config {
	labels := make([]string, len(months))
	data := make([]float64, len(months))
	for i, m := range months {
		labels[i] = m.Month
		data[i] = m.ROI
	}

	fill := false
	return Config{
		Type: "line",
		Data: Data{
			Labels: labels,
			Datasets: []Dataset{{
				Label:           "ROI %",
				Data:            data,
				BackgroundColor: rgba(roiColor, "0.6"),
				BorderColor:     rgba(roiColor, "1"),
				BorderWidth:     1,
				Fill:            &fill,
			}},
		},
		Options: Options{
			Responsive: true,
			Scales: Scales{Y: Axis{
				Title: AxisTitle{Display: true, Text: "ROI %"},
			}},
		},
	}
}

// JSON serializes the config for a data attribute
func (c Config) JSON() (string, error) {
	b, err := json.Marshal(c)
	if err != nil {
		return "", fmt.Errorf("marshal %s chart: %w", c.Type, err)
	}
	return string(b), nil
}
