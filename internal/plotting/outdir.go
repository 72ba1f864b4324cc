package plotting

import (
	"path/filepath"
	"strings"
	"time"

	"github.com/banshee-data/sirta/internal/timeutil"
)

// FormatTimestamp generates a timestamp string for directory naming.
func FormatTimestamp(t time.Time) string {
	return t.Format("20060102_150405")
}

// OutputDir returns a timestamped directory for one run's plots.
// For an input file: <base>/<file basename>/<timestamp>
// Without one: <base>/run_<timestamp>
func OutputDir(base, input string, clock timeutil.Clock) string {
	ts := FormatTimestamp(clock.Now().UTC())
	if input == "" {
		return filepath.Join(base, "run_"+ts)
	}
	name := filepath.Base(input)
	name = strings.TrimSuffix(name, filepath.Ext(name))
	return filepath.Join(base, name, ts)
}
