package lidar

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"
)

const (
	// StepMinutes is the sampling interval of the lidar export.
	StepMinutes = 10

	// Step is StepMinutes as a duration.
	Step = StepMinutes * time.Minute

	// RecordsPerDay is the number of records in a complete day.
	RecordsPerDay = 24 * 60 / StepMinutes

	// HourTolerance absorbs float rounding in the exported hour field.
	HourTolerance = 1e-2

	bucketsPerHour = 60 / StepMinutes
)

// QuantizeHour splits a fractional hour into hour and minute. The minute is
// the first 10-minute bucket k whose boundary k/6 + HourTolerance exceeds the
// fractional part.
func QuantizeHour(h float64) (hour, minute int, err error) {
	if math.IsNaN(h) || math.IsInf(h, 0) {
		return 0, 0, fmt.Errorf("%w: %v", ErrHourOutOfRange, h)
	}
	whole := math.Floor(h)
	if whole < 0 || whole > 23 {
		return 0, 0, fmt.Errorf("%w: %v", ErrHourOutOfRange, h)
	}

	frac := h - whole
	for k := 0; k < bucketsPerHour; k++ {
		if frac < float64(k)/bucketsPerHour+HourTolerance {
			return int(whole), k * StepMinutes, nil
		}
	}
	return 0, 0, fmt.Errorf("%w: %.4f", ErrMinuteOverflow, h)
}

// RecordTime builds the UTC timestamp of a record from its first four fields.
func RecordTime(fields []string) (time.Time, error) {
	if len(fields) < 4 {
		return time.Time{}, fmt.Errorf("%w: need 4 date fields, got %d", ErrShortRecord, len(fields))
	}

	var ymd [3]int
	for i, name := range []string{"year", "month", "day"} {
		v, err := strconv.Atoi(strings.TrimSpace(fields[i]))
		if err != nil {
			return time.Time{}, fmt.Errorf("failed to parse %s %q: %w", name, fields[i], err)
		}
		ymd[i] = v
	}

	h, err := strconv.ParseFloat(strings.TrimSpace(fields[3]), 64)
	if err != nil {
		return time.Time{}, fmt.Errorf("failed to parse hour %q: %w", fields[3], err)
	}
	hour, minute, err := QuantizeHour(h)
	if err != nil {
		return time.Time{}, err
	}

	t := time.Date(ymd[0], time.Month(ymd[1]), ymd[2], hour, minute, 0, 0, time.UTC)
	if t.Year() != ymd[0] || int(t.Month()) != ymd[1] || t.Day() != ymd[2] {
		return time.Time{}, fmt.Errorf("invalid date %d-%02d-%02d", ymd[0], ymd[1], ymd[2])
	}
	return t, nil
}
