// Package plotting draws lidar wind profiles and single-day wind series as
// static images (gonum/plot) or interactive HTML (go-echarts).
package plotting

import (
	"errors"
	"fmt"
	"image/color"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"

	"github.com/banshee-data/sirta/internal/lidar"
)

// Axis limits of a linear profile plot.
const (
	ProfileMaxSpeed  = 20.0
	ProfileMaxHeight = 265.0
)

// ErrNoData is returned when there is nothing left to draw after cleaning.
var ErrNoData = errors.New("no valid samples to plot")

// ProfileStyle controls how one profile is drawn.
type ProfileStyle struct {
	Color    color.Color
	Emphasis bool // thick line with markers
	Label    string
}

// NewProfilePlot returns an empty plot with speed on X and height on Y.
// logScale switches the height axis to a logarithmic scale.
func NewProfilePlot(title string, logScale bool) *plot.Plot {
	p := plot.New()
	p.Title.Text = title
	p.X.Label.Text = "Wind speed (m/s)"
	p.Y.Label.Text = "Height (m)"
	if logScale {
		p.Y.Scale = plot.LogScale{}
		p.Y.Tick.Marker = plot.LogTicks{Prec: -1}
	}
	p.Add(plotter.NewGrid())

	p.Legend.Top = true
	p.Legend.Left = false
	p.Legend.XOffs = -10
	p.Legend.YOffs = -10
	return p
}

// AddProfile superposes prof on p. Missing samples are dropped with their
// heights. Linear plots are clamped to the fixed speed and height range.
func AddProfile(p *plot.Plot, prof lidar.Profile, style ProfileStyle) error {
	clean := prof.Clean()
	if len(clean.Speeds) == 0 {
		return fmt.Errorf("profile %s: %w", prof.Time.Format("2006-01-02 15:04"), ErrNoData)
	}

	pts := make(plotter.XYs, len(clean.Speeds))
	for i := range clean.Speeds {
		pts[i] = plotter.XY{X: clean.Speeds[i], Y: clean.Heights[i]}
	}

	c := style.Color
	if c == nil {
		c = color.Black
	}
	label := style.Label
	if label == "" {
		label = prof.Time.Format("2006-01-02 15:04")
	}

	if style.Emphasis {
		line, points, err := plotter.NewLinePoints(pts)
		if err != nil {
			return fmt.Errorf("failed to build profile line: %w", err)
		}
		line.Color = c
		line.Width = vg.Points(2)
		points.GlyphStyle.Color = c
		points.GlyphStyle.Shape = draw.CircleGlyph{}
		points.GlyphStyle.Radius = vg.Points(2.5)
		p.Add(line, points)
		p.Legend.Add(label, line, points)
	} else {
		line, err := plotter.NewLine(pts)
		if err != nil {
			return fmt.Errorf("failed to build profile line: %w", err)
		}
		line.Color = c
		line.Width = vg.Points(1)
		p.Add(line)
		p.Legend.Add(label, line)
	}

	if _, ok := p.Y.Scale.(plot.LogScale); !ok {
		p.X.Min, p.X.Max = 0, ProfileMaxSpeed
		p.Y.Min, p.Y.Max = 0, ProfileMaxHeight
	}
	return nil
}
