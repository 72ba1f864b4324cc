package plotting

import (
	"fmt"
	"io"
	"time"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"

	"github.com/banshee-data/sirta/internal/series"
	"github.com/banshee-data/sirta/internal/units"
)

// DayChartHTML writes an interactive line chart of days against the hours
// elapsed since ref. A zero ref measures each day from its own midnight.
func DayChartHTML(w io.Writer, title, unit string, ref time.Time, days []series.Series) error {
	line := charts.NewLine()
	line.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{PageTitle: title, Width: "1200px", Height: "520px"}),
		charts.WithTitleOpts(opts.Title{Title: title}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true), Trigger: "axis"}),
		charts.WithLegendOpts(opts.Legend{Show: opts.Bool(true)}),
		charts.WithDataZoomOpts(opts.DataZoom{Type: "inside"}),
		charts.WithXAxisOpts(opts.XAxis{Type: "value", Name: hoursLabel(ref), NameLocation: "middle", NameGap: 25}),
		charts.WithYAxisOpts(opts.YAxis{Type: "value", Name: fmt.Sprintf("Wind speed (%s)", units.Label(unit))}),
	)

	colors := Palette(len(days))
	for i, s := range days {
		if s.Len() == 0 {
			continue
		}
		hours := dayHours(s, ref)
		data := make([]opts.LineData, len(hours))
		for j, h := range hours {
			data[j] = opts.LineData{Value: []interface{}{h, s.Values[j]}}
		}
		line.AddSeries(s.Times[0].Format("2006-01-02"), data,
			charts.WithLineStyleOpts(opts.LineStyle{Color: Hex(colors[i]), Width: 1}),
			charts.WithLineChartOpts(opts.LineChart{ShowSymbol: opts.Bool(false)}),
		)
	}

	if err := line.Render(w); err != nil {
		return fmt.Errorf("failed to render chart: %w", err)
	}
	return nil
}
