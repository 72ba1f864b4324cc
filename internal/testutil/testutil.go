// Package testutil provides shared test utilities and fixtures.
//
// The lidar fixtures mirror the SIRTA Doppler lidar export: year, month, day
// and fractional hour in the first four columns, filler columns up to 15, and
// the eleven wind speed samples in columns 16 to 26.
package testutil

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

// LidarHeights is the number of wind speed samples per lidar record.
const LidarHeights = 11

// AssertNoError fails the test if err is not nil.
func AssertNoError(t *testing.T, err error) {
	t.Helper()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

// AssertError fails the test if err is nil.
func AssertError(t *testing.T, err error) {
	t.Helper()
	if err == nil {
		t.Fatal("expected error, got nil")
	}
}

// WriteFile writes content to name inside dir and returns the full path.
func WriteFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("failed to write fixture %s: %v", path, err)
	}
	return path
}

// LidarLine formats one lidar record for ts. Missing speeds are padded with
// the value of the last supplied speed, or zero when none are given.
func LidarLine(ts time.Time, speeds ...float64) string {
	hour := float64(ts.Hour()) + float64(ts.Minute())/60
	fields := []string{
		fmt.Sprintf("%d", ts.Year()),
		fmt.Sprintf("%d", int(ts.Month())),
		fmt.Sprintf("%d", ts.Day()),
		fmt.Sprintf("%.4f", hour),
	}
	for i := 4; i < 16; i++ {
		fields = append(fields, "0")
	}
	last := 0.0
	for i := 0; i < LidarHeights; i++ {
		if i < len(speeds) {
			last = speeds[i]
		}
		fields = append(fields, fmt.Sprintf("%g", last))
	}
	return strings.Join(fields, ",")
}

// LidarFixture returns n consecutive 10-minute records starting at start.
// speed is called with the record index and the height index.
func LidarFixture(start time.Time, n int, speed func(i, h int) float64) string {
	var b strings.Builder
	for i := 0; i < n; i++ {
		speeds := make([]float64, LidarHeights)
		for h := range speeds {
			speeds[h] = speed(i, h)
		}
		b.WriteString(LidarLine(start.Add(time.Duration(i)*10*time.Minute), speeds...))
		b.WriteByte('\n')
	}
	return b.String()
}

// AnemometerFile builds an anemometer log with a header line.
func AnemometerFile(rows ...string) string {
	return "time,u10,v10\n" + strings.Join(rows, "\n") + "\n"
}
