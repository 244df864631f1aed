package linepath

import (
	"math"

	"gonum.org/v1/gonum/floats"
)

// Method names used as error prefixes.
const (
	methodFindBestPath = "FindBestPath"
	methodSolve        = "Solve"
	methodExtremes     = "Extremes"
)

// FindBestPath returns the minimum distance a walker starting at start must
// travel along the line to visit every point.
//
// Algorithm:
//  1. lo, hi = min(points), max(points)
//  2. left  = |start − lo|, right = |hi − start|
//  3. distance = min(left, right) + (hi − lo)
//
// Errors:
//   - ErrInvalidInput   if points is empty.
//   - ErrNonFiniteValue if any point or start is NaN/±Inf.
//
// Example:
//
//	d, _ := FindBestPath([]float64{2, 5, 8}, 0) // d == 8
//
// Complexity: O(n) time, O(1) extra space.
func FindBestPath(points []float64, start float64) (float64, error) {
	t, err := solve(methodFindBestPath, points, start)
	if err != nil {
		return 0, err
	}

	return t.Distance, nil
}

// Solve computes the same optimal walk as FindBestPath and returns it in full.
// When both extremes are equally far from start, the minimum is visited first.
//
// Complexity: O(n) time, O(1) extra space.
func Solve(points []float64, start float64) (Tour, error) {
	return solve(methodSolve, points, start)
}

// Extremes returns the minimum and maximum of a non-empty, finite point set.
//
// Complexity: O(n).
func Extremes(points []float64) (lo, hi float64, err error) {
	if err = validatePoints(methodExtremes, points); err != nil {
		return 0, 0, err
	}
	lo, hi = floats.Min(points), floats.Max(points)

	return lo, hi, nil
}

// solve validates inputs under the caller's method name and evaluates the
// closed form. All public entry points funnel through here.
func solve(method string, points []float64, start float64) (Tour, error) {
	if err := validatePoints(method, points); err != nil {
		return Tour{}, err
	}
	if err := ValidateFinite(method, "start", start); err != nil {
		return Tour{}, err
	}

	var (
		lo    = floats.Min(points)   // leftmost extreme
		hi    = floats.Max(points)   // rightmost extreme
		left  = math.Abs(start - lo) // distance to the left extreme
		right = math.Abs(hi - start) // distance to the right extreme
	)
	t := Tour{Start: start, Min: lo, Max: hi, Sweep: hi - lo}

	if left <= right {
		t.FirstSide, t.First, t.Last, t.Approach = Left, lo, hi, left
	} else {
		t.FirstSide, t.First, t.Last, t.Approach = Right, hi, lo, right
	}
	t.Distance = t.Approach + t.Sweep

	// Finite inputs can still overflow, e.g. points at ±MaxFloat64.
	if math.IsInf(t.Distance, 0) {
		return Tour{}, ValidateFinite(method, "distance", t.Distance)
	}

	return t, nil
}
