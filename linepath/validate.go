package linepath

import (
	"fmt"
	"math"
)

// validatePoints rejects empty point sets and non-finite members.
// The first offending index is reported.
//
// Complexity: O(n).
func validatePoints(method string, points []float64) error {
	if len(points) == 0 {
		return fmt.Errorf("%s: empty point set: %w", method, ErrInvalidInput)
	}

	var (
		i int     // index of the current point
		v float64 // value under inspection
	)
	for i, v = range points {
		if !isFinite(v) {
			return fmt.Errorf("%s: points[%d]=%v: %w", method, i, v, ErrNonFiniteValue)
		}
	}

	return nil
}

// ValidateFinite returns ErrNonFiniteValue (wrapped with method and name) when
// v is NaN or ±Inf. Exported so sibling packages share one wording.
func ValidateFinite(method, name string, v float64) error {
	if !isFinite(v) {
		return fmt.Errorf("%s: %s=%v: %w", method, name, v, ErrNonFiniteValue)
	}

	return nil
}

// isFinite reports whether v is neither NaN nor ±Inf.
func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
