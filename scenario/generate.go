package scenario

import (
	"fmt"
	"math"
	"slices"

	"github.com/katalvlaran/linetsp/linepath"
)

// Scenario is one sampled instance and its solution.
//
// Invariant: Distance == Tour.Distance == linepath.FindBestPath(Points, StartingPosition).
// The caller owns Points.
type Scenario struct {
	RangeStart       float64       // inclusive lower bound of the sampling range
	RangeEnd         float64       // exclusive upper bound of the sampling range
	StartingPosition float64       // where the walker starts
	Points           []float64     // sampled points, in draw order
	Tour             linepath.Tour // optimal walk over Points
	Distance         float64       // total traversal distance
}

// String describes the scenario in three lines: the segment, the sorted
// points and the optimal traversal.
func (s Scenario) String() string {
	sorted := slices.Clone(s.Points)
	slices.Sort(sorted)

	return fmt.Sprintf("Number line segment: [%g, %g]\n"+
		"Points on the line segment: %v\n"+
		"Optimal path from starting position %g requires a traversal of %g to contact all points.",
		s.RangeStart, s.RangeEnd, sorted, s.StartingPosition, s.Distance)
}

// GenerateData draws count points uniformly from [rangeStart, rangeEnd) and
// solves them from start.
//
// Contract:
//   - count ≥ 1 (else ErrInvalidInput).
//   - rangeStart < rangeEnd (else ErrInvalidInput).
//   - rangeStart, rangeEnd, start finite and rangeEnd−rangeStart finite
//     (else ErrNonFiniteValue).
//
// Randomness comes from opts (WithSeed, WithRand, WithGenerator); without
// them a clock-seeded source is used.
//
// Complexity: O(count) time and space.
func GenerateData(rangeStart, rangeEnd float64, count int, start float64, opts ...Option) (Scenario, error) {
	cfg := newConfig(opts...)

	return generate(methodGenerateData, cfg.gen, rangeStart, rangeEnd, count, start)
}

// generate is the single sampling path behind GenerateData and NumberLine.
func generate(method string, gen PointGenerator, lo, hi float64, count int, start float64) (Scenario, error) {
	if err := validateConfig(method, lo, hi, count, start); err != nil {
		return Scenario{}, err
	}

	points := gen.Generate(lo, hi, count)
	if err := validateSample(method, points, lo, hi, count); err != nil {
		return Scenario{}, err
	}

	tour, err := linepath.Solve(points, start)
	if err != nil {
		return Scenario{}, fmt.Errorf("%s: %w", method, err)
	}

	return Scenario{
		RangeStart:       lo,
		RangeEnd:         hi,
		StartingPosition: start,
		Points:           points,
		Tour:             tour,
		Distance:         tour.Distance,
	}, nil
}

// validateConfig checks the sampling parameters.
// Priority: count, finiteness, range order, span overflow, start.
func validateConfig(method string, lo, hi float64, count int, start float64) error {
	if count < 1 {
		return fmt.Errorf("%s: count=%d < min=1: %w", method, count, ErrInvalidInput)
	}
	if err := linepath.ValidateFinite(method, "rangeStart", lo); err != nil {
		return err
	}
	if err := linepath.ValidateFinite(method, "rangeEnd", hi); err != nil {
		return err
	}
	if lo >= hi {
		return fmt.Errorf("%s: range [%g, %g) is empty: %w", method, lo, hi, ErrInvalidInput)
	}
	if math.IsInf(hi-lo, 0) {
		return fmt.Errorf("%s: span of [%g, %g) overflows: %w", method, lo, hi, ErrNonFiniteValue)
	}

	return linepath.ValidateFinite(method, "start", start)
}

// validateSample enforces the PointGenerator contract on custom generators.
func validateSample(method string, points []float64, lo, hi float64, count int) error {
	if len(points) != count {
		return fmt.Errorf("%s: generator returned %d points, want %d: %w",
			method, len(points), count, ErrInvalidInput)
	}

	var (
		i int
		p float64
	)
	for i, p = range points {
		if !(p >= lo && p < hi) {
			return fmt.Errorf("%s: generator returned points[%d]=%v outside [%g, %g): %w",
				method, i, p, lo, hi, ErrInvalidInput)
		}
	}

	return nil
}
