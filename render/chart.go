// Package render draws a layout result for people: an interactive HTML chart
// and a raster floor plan.
package render

import (
	"fmt"
	"io"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"

	"roomplanner/models"
)

// outline returns the closed polyline around a box.
func outline(x, y, w, h float64) []opts.LineData {
	corners := [][2]float64{{x, y}, {x + w, y}, {x + w, y + h}, {x, y + h}, {x, y}}
	data := make([]opts.LineData, len(corners))
	for i, c := range corners {
		data[i] = opts.LineData{Value: []interface{}{c[0], c[1]}}
	}
	return data
}

// NewChart builds a line chart with one closed outline per placed item plus
// the room walls. Axes are in metres.
func NewChart(result models.LayoutResult) *charts.Line {
	room := result.Room
	line := charts.NewLine()
	line.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{
			PageTitle: "Room layout",
			Width:     "900px",
			Height:    "640px",
		}),
		charts.WithTitleOpts(opts.Title{
			Title: fmt.Sprintf("%gm x %gm room", room.Length, room.Width),
			Subtitle: fmt.Sprintf("Total cost $%d, remaining budget $%d, %d warning(s)",
				result.TotalCost, result.RemainingBudget, len(result.Warnings)),
		}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true)}),
		charts.WithLegendOpts(opts.Legend{Show: opts.Bool(true)}),
		charts.WithXAxisOpts(opts.XAxis{Name: "length (m)", Type: "value", Min: 0, Max: room.Length}),
		charts.WithYAxisOpts(opts.YAxis{Name: "width (m)", Type: "value", Min: 0, Max: room.Width}),
	)

	line.AddSeries("Room", outline(0, 0, room.Length, room.Width))
	for _, p := range result.Placed {
		line.AddSeries(p.Name, outline(p.X, p.Y, p.Width, p.Depth))
	}
	return line
}

// Chart writes the layout as a standalone HTML page.
func Chart(w io.Writer, result models.LayoutResult) error {
	if err := NewChart(result).Render(w); err != nil {
		return fmt.Errorf("render layout chart: %w", err)
	}
	return nil
}
