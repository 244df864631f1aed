package simulation

import (
	"math"

	"github.com/sirupsen/logrus"
)

// Option customizes a Simulation, a sweep or a survey.
// Option constructors panic on meaningless values.
type Option func(*config)

// WithIterations sets how many regenerations are averaged per candidate
// starting position. Panics if n < 1.
func WithIterations(n int) Option {
	if n < 1 {
		panic("simulation: WithIterations(n<1)")
	}
	return func(c *config) {
		c.iterations = n
	}
}

// WithRepetitions sets how many independent funnel searches Run performs.
// Panics if n < 1.
func WithRepetitions(n int) Option {
	if n < 1 {
		panic("simulation: WithRepetitions(n<1)")
	}
	return func(c *config) {
		c.repetitions = n
	}
}

// WithSignificantFigures sets the number of refinement rounds; round k scans
// with a step of 10^-k. Panics if n < 1.
func WithSignificantFigures(n int) Option {
	if n < 1 {
		panic("simulation: WithSignificantFigures(n<1)")
	}
	return func(c *config) {
		c.sigFigs = n
	}
}

// WithProgress registers a callback invoked after every finished repetition
// with the number of repetitions done and the total expected. Panics on nil.
func WithProgress(fn func(done, total int)) Option {
	if fn == nil {
		panic("simulation: WithProgress(nil)")
	}
	return func(c *config) {
		c.progress = fn
	}
}

// WithLogger routes run and step reports to l. Panics on nil.
func WithLogger(l *logrus.Logger) Option {
	if l == nil {
		panic("simulation: WithLogger(nil)")
	}
	return func(c *config) {
		c.log = l
	}
}

// WithSeed fixes the base seed SweepPointCounts derives per-count streams from.
func WithSeed(seed int64) Option {
	return func(c *config) {
		c.seed = seed
		c.hasSeed = true
	}
}

// WithRange sets the segment SweepPointCounts samples from; the search starts
// at its centre. Panics unless lo < hi with a finite span.
func WithRange(lo, hi float64) Option {
	if !(lo < hi) || math.IsInf(hi-lo, 0) {
		panic("simulation: WithRange(lo>=hi or non-finite)")
	}
	return func(c *config) {
		c.rangeStart, c.rangeEnd = lo, hi
	}
}
