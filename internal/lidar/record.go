package lidar

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

const (
	// FirstSpeedField is the column of the 40 m sample.
	FirstSpeedField = 16

	// MinFields is the number of fields a record needs to carry every height.
	MinFields = FirstSpeedField + 11
)

// Heights lists the sample heights in metres, in column order.
var Heights = []int{40, 60, 80, 120, 140, 150, 160, 180, 200, 225, 250}

// HeightField returns the column holding samples for height h.
func HeightField(h int) (int, error) {
	for i, v := range Heights {
		if v == h {
			return FirstSpeedField + i, nil
		}
	}
	return 0, fmt.Errorf("%w: %d m", ErrUnknownHeight, h)
}

// Record is one parsed line of a lidar export.
type Record struct {
	Line   int // 1-based line number in the source file
	Fields []string
	Time   time.Time
}

// ParseLine parses line n of a lidar export.
func ParseLine(line string, n int) (Record, error) {
	fields := strings.Split(strings.TrimSpace(line), ",")
	if len(fields) < MinFields {
		return Record{}, fmt.Errorf("line %d: %w: %d fields, need %d", n, ErrShortRecord, len(fields), MinFields)
	}
	t, err := RecordTime(fields)
	if err != nil {
		return Record{}, fmt.Errorf("line %d: %w", n, err)
	}
	return Record{Line: n, Fields: fields, Time: t}, nil
}

// Value parses field i as a float.
func (r Record) Value(i int) (float64, error) {
	if i < 0 || i >= len(r.Fields) {
		return 0, fmt.Errorf("line %d: field %d out of range", r.Line, i)
	}
	v, err := strconv.ParseFloat(strings.TrimSpace(r.Fields[i]), 64)
	if err != nil {
		return 0, fmt.Errorf("line %d: failed to parse field %d %q: %w", r.Line, i, r.Fields[i], err)
	}
	return v, nil
}

// Speed returns the sample at height h.
func (r Record) Speed(h int) (float64, error) {
	field, err := HeightField(h)
	if err != nil {
		return 0, err
	}
	return r.Value(field)
}

// Speeds returns the samples at every height, in Heights order.
func (r Record) Speeds() ([]float64, error) {
	speeds := make([]float64, len(Heights))
	for i := range Heights {
		v, err := r.Value(FirstSpeedField + i)
		if err != nil {
			return nil, err
		}
		speeds[i] = v
	}
	return speeds, nil
}
