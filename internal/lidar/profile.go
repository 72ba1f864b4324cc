package lidar

import (
	"fmt"
	"time"

	"github.com/banshee-data/sirta/internal/monitoring"
	"github.com/banshee-data/sirta/internal/series"
)

// Profile is the vertical wind profile of one record.
type Profile struct {
	Time    time.Time
	Line    int
	Speeds  []float64
	Heights []float64
}

// Profile returns the wind profile recorded at target.
func (f *File) Profile(target time.Time) (Profile, error) {
	rec, err := f.At(target)
	if err != nil {
		return Profile{}, err
	}
	speeds, err := rec.Speeds()
	if err != nil {
		return Profile{}, err
	}

	heights := make([]float64, len(Heights))
	for i, h := range Heights {
		heights[i] = float64(h)
	}
	return Profile{Time: rec.Time, Line: rec.Line, Speeds: speeds, Heights: heights}, nil
}

// Clean returns the profile without missing samples. Each dropped speed takes
// its height with it.
func (p Profile) Clean() Profile {
	out := Profile{Time: p.Time, Line: p.Line}
	for i, v := range p.Speeds {
		if i >= len(p.Heights) || series.IsMissing(v) {
			continue
		}
		out.Speeds = append(out.Speeds, v)
		out.Heights = append(out.Heights, p.Heights[i])
	}
	return out
}

// Series extracts the samples at height h across the whole file, with missing
// samples removed together with their timestamps.
func (f *File) Series(h int) (series.Series, error) {
	raw, err := extract(f.Records, h)
	if err != nil {
		return series.Series{}, err
	}
	return raw.Clean(), nil
}

// Day extracts one complete day of samples at height h. day is truncated to
// midnight UTC. A day is complete when its first record is followed by
// RecordsPerDay-1 consecutive records ending at 23:50.
func (f *File) Day(day time.Time, h int) (series.Series, error) {
	if _, err := HeightField(h); err != nil {
		return series.Series{}, err
	}

	start := day.UTC().Truncate(24 * time.Hour)
	from, err := f.Locate(start)
	if err != nil {
		return series.Series{}, fmt.Errorf("%w: %s: %w", ErrIncompleteDay, start.Format(time.DateOnly), err)
	}

	to := from + RecordsPerDay
	last := start.Add(24*time.Hour - Step)
	if to > len(f.Records) || !f.Records[to-1].Time.Equal(last) {
		monitoring.Logf("lidar: not all observations are available for %s", start.Format(time.DateOnly))
		return series.Series{}, fmt.Errorf("%w: %s", ErrIncompleteDay, start.Format(time.DateOnly))
	}

	raw, err := extract(f.Records[from:to], h)
	if err != nil {
		return series.Series{}, err
	}
	return raw.Clean(), nil
}

func extract(records []Record, h int) (series.Series, error) {
	field, err := HeightField(h)
	if err != nil {
		return series.Series{}, err
	}

	s := series.Series{
		Name:   fmt.Sprintf("wind_%dm", h),
		Unit:   "mps",
		Times:  make([]time.Time, 0, len(records)),
		Values: make([]float64, 0, len(records)),
	}
	for _, rec := range records {
		v, err := rec.Value(field)
		if err != nil {
			return series.Series{}, err
		}
		s.Times = append(s.Times, rec.Time)
		s.Values = append(s.Values, v)
	}
	return s, nil
}
