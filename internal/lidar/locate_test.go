package lidar

import (
	"fmt"
	"log"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/banshee-data/sirta/internal/monitoring"
	"github.com/banshee-data/sirta/internal/testutil"
)

// captureLogs routes monitoring.Logf into a slice for the duration of the test.
func captureLogs(t *testing.T) *[]string {
	t.Helper()
	var lines []string
	monitoring.SetLogger(func(format string, v ...interface{}) {
		lines = append(lines, fmt.Sprintf(format, v...))
	})
	t.Cleanup(func() { monitoring.SetLogger(log.Printf) })
	return &lines
}

func mustRead(t *testing.T, body string) *File {
	t.Helper()
	f, err := Read(strings.NewReader(body))
	require.NoError(t, err)
	return f
}

func TestLocate(t *testing.T) {
	f := mustRead(t, testutil.LidarFixture(dec1, 2*RecordsPerDay, constant(1)))

	tests := []struct {
		name   string
		target time.Time
		want   int
	}{
		{"first record", dec1, 0},
		{"second record", dec1.Add(Step), 1},
		{"end of first day", dec1.Add(24*time.Hour - Step), RecordsPerDay - 1},
		{"start of second day", dec1.Add(24 * time.Hour), RecordsPerDay},
		{"last record", dec1.Add(time.Duration(2*RecordsPerDay-1) * Step), 2*RecordsPerDay - 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := f.Locate(tt.target)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.target, f.Records[got].Time)
		})
	}
}

func TestLocate_NotFound(t *testing.T) {
	f := mustRead(t, testutil.LidarFixture(dec1, 2*RecordsPerDay, constant(1)))

	tests := []struct {
		name   string
		target time.Time
		logged string
	}{
		{"before file", dec1.Add(-24 * time.Hour), "outside indices"},
		{"after file", dec1.Add(48 * time.Hour), "outside indices"},
		{"off grid", dec1.Add(5 * time.Minute), "not on the 10-minute grid"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			logs := captureLogs(t)
			idx, err := f.Locate(tt.target)
			assert.ErrorIs(t, err, ErrRecordNotFound)
			assert.Equal(t, -1, idx)
			require.NotEmpty(t, *logs)
			assert.Contains(t, (*logs)[len(*logs)-1], tt.logged)
		})
	}
}

func TestLocate_Gap(t *testing.T) {
	// Records 10 to 19 are missing from the export.
	body := testutil.LidarFixture(dec1, 10, constant(1)) +
		testutil.LidarFixture(dec1.Add(20*Step), 10, constant(1))
	f := mustRead(t, body)
	require.Equal(t, 20, f.Len())

	captureLogs(t)

	_, err := f.Locate(dec1.Add(10 * Step))
	assert.ErrorIs(t, err, ErrRecordNotFound)

	idx, err := f.Locate(dec1.Add(25 * Step))
	require.NoError(t, err)
	assert.Equal(t, 15, idx)

	idx, err = f.Locate(dec1.Add(3 * Step))
	require.NoError(t, err)
	assert.Equal(t, 3, idx)
}

func TestLocate_SmallFiles(t *testing.T) {
	captureLogs(t)

	empty := &File{}
	_, err := empty.Locate(dec1)
	assert.ErrorIs(t, err, ErrRecordNotFound)

	single := mustRead(t, testutil.LidarFixture(dec1, 1, constant(1)))
	idx, err := single.Locate(dec1)
	require.NoError(t, err)
	assert.Equal(t, 0, idx)

	_, err = single.Locate(dec1.Add(Step))
	assert.ErrorIs(t, err, ErrRecordNotFound)
}

func TestAt(t *testing.T) {
	f := mustRead(t, testutil.LidarFixture(dec1, 12, func(i, h int) float64 { return float64(i) }))

	rec, err := f.At(dec1.Add(7 * Step))
	require.NoError(t, err)
	v, err := rec.Speed(40)
	require.NoError(t, err)
	assert.Equal(t, 7.0, v)
}
