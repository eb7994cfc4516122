package report

import (
	"bytes"
	"fmt"

	"github.com/wcharczuk/go-chart/v2"

	"github.com/MKhiriev/go-expense-tracker/models"
)

const (
	ChartTitle  = "Monthly Expense by Date"
	ChartYLabel = "Amount (₹)"
	ChartXLabel = "Date"

	chartHeight     = 512
	chartBarWidth   = 50
	chartBarSpacing = 30
	chartMinWidth   = 640
)

// RenderChart draws totals as a PNG bar chart, one bar per date in the given
// order. Returns [ErrNothingToChart] for an empty slice.
func RenderChart(totals []models.DailyTotal) ([]byte, error) {
	if len(totals) == 0 {
		return nil, ErrNothingToChart
	}

	var maxTotal float64
	bars := make([]chart.Value, 0, len(totals))
	for _, t := range totals {
		value := float64(t.Total)
		if value > maxTotal {
			maxTotal = value
		}
		bars = append(bars, chart.Value{Label: t.Date, Value: value})
	}
	if maxTotal <= 0 {
		maxTotal = 1
	}

	width := 200 + len(totals)*(chartBarWidth+chartBarSpacing)
	if width < chartMinWidth {
		width = chartMinWidth
	}

	graph := chart.BarChart{
		Title:  ChartTitle,
		Width:  width,
		Height: chartHeight,
		Background: chart.Style{
			Padding: chart.Box{Top: 50, Left: 40, Right: 20, Bottom: 40},
		},
		BarWidth:   chartBarWidth,
		BarSpacing: chartBarSpacing,
		YAxis: chart.YAxis{
			Name:  ChartYLabel,
			Range: &chart.ContinuousRange{Min: 0, Max: maxTotal},
			ValueFormatter: func(v any) string {
				if f, ok := v.(float64); ok {
					return fmt.Sprintf("%.0f", f)
				}
				return ""
			},
		},
		Bars: bars,
		Elements: []chart.Renderable{
			axisLabels(width, chartHeight),
		},
	}

	var buf bytes.Buffer
	if err := graph.Render(chart.PNG, &buf); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrRenderingChart, err)
	}

	return buf.Bytes(), nil
}

// axisLabels writes the axis captions into the padding around the canvas.
func axisLabels(width, height int) chart.Renderable {
	return func(r chart.Renderer, canvasBox chart.Box, defaults chart.Style) {
		style := chart.Style{FontSize: 10, FontColor: chart.ColorBlack}.InheritFrom(defaults)
		style.WriteTextOptionsToRenderer(r)

		xBox := r.MeasureText(ChartXLabel)
		r.Text(ChartXLabel, (width-xBox.Width())/2, height-10)

		yBox := r.MeasureText(ChartYLabel)
		r.SetTextRotation(chart.DegreesToRadians(270))
		r.Text(ChartYLabel, 15, canvasBox.Top+(canvasBox.Height()+yBox.Width())/2)
		r.ClearTextRotation()
	}
}
