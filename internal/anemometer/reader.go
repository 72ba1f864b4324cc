// Package anemometer reads the SIRTA anemometer wind logs: a header line
// followed by timestamp,u,v rows.
package anemometer

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/gocarina/gocsv"

	"github.com/banshee-data/sirta/internal/fsutil"
	"github.com/banshee-data/sirta/internal/monitoring"
)

// TimeLayout is the timestamp format of the first column, in UTC.
const TimeLayout = "2006-01-02 15:04:05"

// missingToken marks a failed reading in the u or v column.
const missingToken = "nan"

// Record is one anemometer observation. U and V are the wind components in m/s.
type Record struct {
	Time time.Time
	U    float64
	V    float64
}

// row is the raw column layout decoded by position.
type row struct {
	Time string `csv:"time"`
	U    string `csv:"u"`
	V    string `csv:"v"`
}

// Read parses an anemometer log. The first line is a header and is ignored.
// Rows whose u component is nan are skipped; a nan v component is kept as NaN.
func Read(r io.Reader) ([]Record, error) {
	br := bufio.NewReader(r)
	if _, err := br.ReadString('\n'); err != nil && err != io.EOF {
		return nil, fmt.Errorf("failed to read anemometer header: %w", err)
	}

	body, err := io.ReadAll(br)
	if err != nil {
		return nil, fmt.Errorf("failed to read anemometer rows: %w", err)
	}
	if len(bytes.TrimSpace(body)) == 0 {
		return nil, nil
	}

	var rows []row
	if err := gocsv.UnmarshalWithoutHeaders(bytes.NewReader(body), &rows); err != nil {
		return nil, fmt.Errorf("failed to decode anemometer rows: %w", err)
	}

	records := make([]Record, 0, len(rows))
	skipped := 0
	for i, raw := range rows {
		if strings.EqualFold(strings.TrimSpace(raw.U), missingToken) {
			skipped++
			continue
		}
		rec, err := parseRow(raw)
		if err != nil {
			return nil, fmt.Errorf("data row %d: %w", i+1, err)
		}
		records = append(records, rec)
	}
	if skipped > 0 {
		monitoring.Debugf("anemometer: skipped %d rows with missing u", skipped)
	}
	return records, nil
}

// ReadFile opens path on fsys and parses it.
func ReadFile(fsys fsutil.FileSystem, path string) ([]Record, error) {
	in, err := fsys.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open anemometer file: %w", err)
	}
	defer in.Close()

	records, err := Read(in)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	monitoring.Debugf("anemometer: read %d records from %s", len(records), path)
	return records, nil
}

func parseRow(raw row) (Record, error) {
	t, err := time.ParseInLocation(TimeLayout, strings.TrimSpace(raw.Time), time.UTC)
	if err != nil {
		return Record{}, fmt.Errorf("failed to parse timestamp %q: %w", raw.Time, err)
	}
	u, err := parseComponent(raw.U)
	if err != nil {
		return Record{}, fmt.Errorf("failed to parse u: %w", err)
	}
	v, err := parseComponent(raw.V)
	if err != nil {
		return Record{}, fmt.Errorf("failed to parse v: %w", err)
	}
	return Record{Time: t, U: u, V: v}, nil
}

func parseComponent(s string) (float64, error) {
	s = strings.TrimSpace(s)
	if strings.EqualFold(s, missingToken) {
		return math.NaN(), nil
	}
	return strconv.ParseFloat(s, 64)
}

// Split returns the records as parallel time, u and v slices.
func Split(records []Record) (times []time.Time, u, v []float64) {
	times = make([]time.Time, len(records))
	u = make([]float64, len(records))
	v = make([]float64, len(records))
	for i, r := range records {
		times[i] = r.Time
		u[i] = r.U
		v[i] = r.V
	}
	return times, u, v
}

// Speed returns the horizontal wind speed of r in m/s.
func (r Record) Speed() float64 {
	return math.Hypot(r.U, r.V)
}
