// Package units provides shared constants and conversion for wind speed units
package units

// Unit constants
const (
	MPS   = "mps"
	KMPH  = "kmph"
	KPH   = "kph"
	MPH   = "mph"
	Knots = "kn"
)

// ValidUnits contains all valid unit values
var ValidUnits = []string{MPS, KMPH, KPH, MPH, Knots}

// IsValid checks if the given unit is in the list of valid units
func IsValid(unit string) bool {
	for _, validUnit := range ValidUnits {
		if unit == validUnit {
			return true
		}
	}
	return false
}

// GetValidUnitsString returns a comma-separated string of valid units for error messages
func GetValidUnitsString() string {
	return "mps, kmph, kph, mph, kn"
}

// ConvertSpeed converts a wind speed from meters per second to the target units.
// Sensor files record speeds in m/s.
func ConvertSpeed(speedMPS float64, targetUnits string) float64 {
	switch targetUnits {
	case MPH:
		return speedMPS * 2.23694
	case KMPH, KPH:
		return speedMPS * 3.6
	case Knots:
		return speedMPS * 1.94384
	default:
		return speedMPS
	}
}

// Label returns the axis label for a unit, falling back to m/s.
func Label(unit string) string {
	switch unit {
	case MPH:
		return "mph"
	case KMPH, KPH:
		return "km/h"
	case Knots:
		return "kn"
	default:
		return "m/s"
	}
}
