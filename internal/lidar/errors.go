package lidar

import "errors"

var (
	// ErrRecordNotFound is returned when no record carries the requested time.
	ErrRecordNotFound = errors.New("lidar record not found")

	// ErrIncompleteDay is returned when a day has fewer than RecordsPerDay records.
	ErrIncompleteDay = errors.New("not all observations are available for that day")

	// ErrMinuteOverflow is returned when the fractional hour is past the 50-minute bucket.
	ErrMinuteOverflow = errors.New("fractional hour beyond 50 minutes")

	// ErrHourOutOfRange is returned for an hour field outside [0, 24).
	ErrHourOutOfRange = errors.New("hour out of range")

	// ErrUnknownHeight is returned for a height that has no sample column.
	ErrUnknownHeight = errors.New("no lidar samples at height")

	// ErrShortRecord is returned for a line with fewer than MinFields fields.
	ErrShortRecord = errors.New("lidar record too short")
)
