package plotting

import (
	"fmt"
	"image/color"
	"time"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"github.com/banshee-data/sirta/internal/series"
	"github.com/banshee-data/sirta/internal/units"
)

// NewDayPlot returns an empty plot of wind speed in unit against hours since
// ref, or since midnight when ref is zero.
func NewDayPlot(title, unit string, ref time.Time) *plot.Plot {
	p := plot.New()
	p.Title.Text = title
	p.X.Label.Text = hoursLabel(ref)
	p.Y.Label.Text = fmt.Sprintf("Wind speed (%s)", units.Label(unit))
	p.Add(plotter.NewGrid())

	p.Legend.Top = true
	p.Legend.Left = false
	p.Legend.XOffs = -10
	p.Legend.YOffs = -10
	return p
}

// AddDay draws s against the hours elapsed since ref. A zero ref measures s
// from the midnight of its first sample so that days superpose. The legend
// entry is the date of the first sample.
func AddDay(p *plot.Plot, s series.Series, ref time.Time, c color.Color) error {
	if s.Len() == 0 {
		return fmt.Errorf("%s: %w", s.Name, ErrNoData)
	}

	hours := dayHours(s, ref)
	pts := make(plotter.XYs, len(hours))
	for i, h := range hours {
		pts[i] = plotter.XY{X: h, Y: s.Values[i]}
	}

	line, err := plotter.NewLine(pts)
	if err != nil {
		return fmt.Errorf("failed to build day line: %w", err)
	}
	if c == nil {
		c = color.Black
	}
	line.Color = c
	line.Width = vg.Points(1)
	p.Add(line)
	p.Legend.Add(s.Times[0].Format("2006-01-02"), line)

	if p.Y.Min > 0 {
		p.Y.Min = 0
	}
	return nil
}

func hoursLabel(ref time.Time) string {
	if ref.IsZero() {
		return "Hours since midnight"
	}
	return fmt.Sprintf("Hours since %s", ref.UTC().Format("2006-01-02 15:04"))
}

// dayHours returns the elapsed hours of s since ref, or since its own
// midnight (UTC) when ref is zero.
func dayHours(s series.Series, ref time.Time) []float64 {
	if ref.IsZero() {
		ref = s.Times[0].UTC().Truncate(24 * time.Hour)
	}
	return series.ElapsedHours(s.Times, ref)
}
