// Package series holds time-indexed sensor series and the helpers that clean,
// summarise and export them.
package series

import (
	"math"
	"time"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"

	"github.com/banshee-data/sirta/internal/units"
)

// MissingThreshold is the sentinel bound below which a sensor sample is
// treated as missing. Loggers write -999 or similar for failed readings.
const MissingThreshold = -990.0

// Series is a named sequence of samples with one timestamp per value.
type Series struct {
	Name   string
	Unit   string
	Times  []time.Time
	Values []float64
}

// IsMissing reports whether v is a sentinel or NaN sample.
func IsMissing(v float64) bool {
	return math.IsNaN(v) || v <= MissingThreshold
}

// Clean drops every missing sample together with its paired timestamp.
// Only the common prefix of the two slices is considered.
func Clean(values []float64, times []time.Time) ([]float64, []time.Time) {
	n := min(len(values), len(times))
	vs := make([]float64, 0, n)
	ts := make([]time.Time, 0, n)
	for i := 0; i < n; i++ {
		if IsMissing(values[i]) {
			continue
		}
		vs = append(vs, values[i])
		ts = append(ts, times[i])
	}
	return vs, ts
}

// Clean returns a copy of s without missing samples.
func (s Series) Clean() Series {
	out := s
	out.Values, out.Times = Clean(s.Values, s.Times)
	return out
}

// Len returns the number of samples.
func (s Series) Len() int {
	return len(s.Values)
}

// Between returns the samples with from <= t < to.
func (s Series) Between(from, to time.Time) Series {
	idx := FindIndices(s.Times, func(t time.Time) bool {
		return !t.Before(from) && t.Before(to)
	})
	out := s
	out.Times = make([]time.Time, len(idx))
	out.Values = make([]float64, len(idx))
	for k, i := range idx {
		out.Times[k] = s.Times[i]
		out.Values[k] = s.Values[i]
	}
	return out
}

// Convert returns s expressed in unit. Values are assumed to be m/s.
func (s Series) Convert(unit string) Series {
	out := s
	out.Unit = unit
	out.Values = make([]float64, len(s.Values))
	for i, v := range s.Values {
		out.Values[i] = units.ConvertSpeed(v, unit)
	}
	return out
}

// FindIndices returns the positions of the elements of s that satisfy pred.
func FindIndices[T any](s []T, pred func(T) bool) []int {
	var idx []int
	for i, v := range s {
		if pred(v) {
			idx = append(idx, i)
		}
	}
	return idx
}

// ElapsedHours converts each timestamp into hours elapsed since ref.
func ElapsedHours(times []time.Time, ref time.Time) []float64 {
	hours := make([]float64, len(times))
	for i, t := range times {
		hours[i] = t.Sub(ref).Hours()
	}
	return hours
}

// Stats summarises a series.
type Stats struct {
	Count  int
	Min    float64
	Max    float64
	Mean   float64
	StdDev float64
	First  time.Time
	Last   time.Time
}

// Summarize computes Stats over the non-missing samples of s.
func Summarize(s Series) Stats {
	c := s.Clean()
	if c.Len() == 0 {
		return Stats{}
	}
	st := Stats{
		Count: c.Len(),
		Min:   floats.Min(c.Values),
		Max:   floats.Max(c.Values),
		First: c.Times[0],
		Last:  c.Times[len(c.Times)-1],
	}
	if st.Count < 2 {
		st.Mean = c.Values[0]
		return st
	}
	st.Mean, st.StdDev = stat.MeanStdDev(c.Values, nil)
	return st
}
