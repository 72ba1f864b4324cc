package lidar

import (
	"fmt"
	"time"

	"github.com/banshee-data/sirta/internal/monitoring"
)

// Locate returns the index of the record whose time equals target.
//
// The first guess interpolates linearly between the first and last record
// times. Each correction moves the index by the signed number of whole
// 10-minute steps between target and the guessed record. The search fails
// with ErrRecordNotFound when the index leaves the file, when the remaining
// difference is shorter than one step, or when an index repeats, which
// happens when the target falls in a gap of the export.
func (f *File) Locate(target time.Time) (int, error) {
	n := len(f.Records)
	if n == 0 {
		return -1, fmt.Errorf("%w: %s: file has no records", ErrRecordNotFound, target.Format(time.DateTime))
	}

	idx := f.estimate(target)
	visited := make(map[int]bool)
	for {
		if idx < 0 || idx >= n {
			monitoring.Logf("lidar: %s outside indices (stopped at %d of %d)", target.Format(time.DateTime), idx, n)
			return -1, fmt.Errorf("%w: %s: outside indices", ErrRecordNotFound, target.Format(time.DateTime))
		}

		diff := target.Sub(f.Records[idx].Time)
		if diff == 0 {
			return idx, nil
		}
		if visited[idx] {
			monitoring.Logf("lidar: %s not in file, search cycled at index %d", target.Format(time.DateTime), idx)
			return -1, fmt.Errorf("%w: %s: gap in records", ErrRecordNotFound, target.Format(time.DateTime))
		}
		visited[idx] = true

		step := int(diff / Step)
		if step == 0 {
			monitoring.Logf("lidar: %s is not on the %d-minute grid", target.Format(time.DateTime), StepMinutes)
			return -1, fmt.Errorf("%w: %s: off the %d-minute grid", ErrRecordNotFound, target.Format(time.DateTime), StepMinutes)
		}
		monitoring.Debugf("lidar: locate %s: index %d is %s away, stepping %d", target.Format(time.DateTime), idx, diff, step)
		idx += step
	}
}

// estimate interpolates the position of target from the first and last record
// times, clamped to the file.
func (f *File) estimate(target time.Time) int {
	n := len(f.Records)
	first, last := f.Records[0].Time, f.Records[n-1].Time
	span := last.Sub(first)
	if span <= 0 {
		return 0
	}

	guess := int(float64(n) * target.Sub(first).Seconds() / span.Seconds())
	switch {
	case guess < 0:
		return 0
	case guess >= n:
		return n - 1
	}
	return guess
}

// At returns the record at target.
func (f *File) At(target time.Time) (Record, error) {
	idx, err := f.Locate(target)
	if err != nil {
		return Record{}, err
	}
	return f.Records[idx], nil
}
