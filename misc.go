package carousel

import (
	"errors"
	"math"
)

// --- errors ---

var (
	// Returned when a carousel is configured with too few items
	// to build a phase table. Projection needs at least four items.
	ErrTooFewItems = errors.New("carousel: at least 4 items are required")

	// Returned by the scroll operations when a translation or
	// viewport dimension is NaN or infinite. The scroll state is
	// left untouched.
	ErrNonFinite = errors.New("carousel: non-finite input")

	ErrInvalidConfig   = errors.New("carousel: invalid config")
	ErrInvalidViewport = errors.New("carousel: invalid viewport")
)

// internal usage
const minItemCount = 4
const phasePeriod = 5.0

// --- helpers ---

func isFinite(values ...float64) bool {
	for _, value := range values {
		if math.IsNaN(value) || math.IsInf(value, 0) {
			return false
		}
	}
	return true
}

// Like math.Mod, but the result is always in [0, divisor).
// Results that round up to the divisor itself wrap to zero.
func wrap(value, divisor float64) float64 {
	value = math.Mod(value, divisor)
	if value < 0 {
		value += divisor
	}
	if value >= divisor {
		return 0
	}
	return value
}
