package plotting

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/banshee-data/sirta/internal/timeutil"
)

func TestFormatTimestamp(t *testing.T) {
	ts := time.Date(2026, 1, 30, 14, 35, 22, 0, time.UTC)
	if got := FormatTimestamp(ts); got != "20260130_143522" {
		t.Errorf("expected '20260130_143522', got '%s'", got)
	}
}

func TestOutputDir(t *testing.T) {
	clock := timeutil.NewMockClock(time.Date(2014, 12, 1, 12, 0, 0, 0, time.UTC))

	got := OutputDir("plots", "/data/Doppler-lidar_Wind-profile_SIRTA_2014-2015.txt", clock)
	want := filepath.Join("plots", "Doppler-lidar_Wind-profile_SIRTA_2014-2015", "20141201_120000")
	if got != want {
		t.Errorf("expected '%s', got '%s'", want, got)
	}

	got = OutputDir("plots", "", timeutil.NewMockClock(time.Date(2014, 12, 1, 12, 1, 30, 0, time.UTC)))
	if want := filepath.Join("plots", "run_20141201_120130"); got != want {
		t.Errorf("expected '%s', got '%s'", want, got)
	}
}
