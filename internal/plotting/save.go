package plotting

import (
	"fmt"
	"path/filepath"
	"strings"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/vg"

	"github.com/banshee-data/sirta/internal/fsutil"
)

// Plot sizes.
var (
	ProfileWidth  = 6 * vg.Inch
	ProfileHeight = 8 * vg.Inch
	DayWidth      = 14 * vg.Inch
	DayHeight     = 6 * vg.Inch
)

// Save renders p to path on fsys. The format follows the extension: png,
// svg, pdf, eps, jpg or tiff.
func Save(fsys fsutil.FileSystem, p *plot.Plot, path string, w, h vg.Length) error {
	format := strings.ToLower(strings.TrimPrefix(filepath.Ext(path), "."))
	if format == "" {
		return fmt.Errorf("failed to save %s: no file extension", path)
	}

	wt, err := p.WriterTo(w, h, format)
	if err != nil {
		return fmt.Errorf("failed to render %s: %w", path, err)
	}

	if err := fsys.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create output dir: %w", err)
	}
	out, err := fsys.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}
	if _, err := wt.WriteTo(out); err != nil {
		out.Close()
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return out.Close()
}
