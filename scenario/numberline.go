package scenario

// NumberLine holds a sampling configuration that callers re-run on demand.
// It owns only configuration; generated points are never cached.
//
// Mutations do not trigger recomputation: call Regenerate (or Generate) to
// see results for the current configuration.
//
// A NumberLine is not safe for concurrent use.
type NumberLine struct {
	rangeStart       float64
	rangeEnd         float64
	startingPosition float64
	count            int
	gen              PointGenerator
}

// NewNumberLine validates the configuration up-front so that Regenerate only
// fails if the starting position is later set to a non-finite value.
//
// Errors: as GenerateData.
func NewNumberLine(rangeStart, rangeEnd, start float64, count int, opts ...Option) (*NumberLine, error) {
	if err := validateConfig(methodNewNumberLine, rangeStart, rangeEnd, count, start); err != nil {
		return nil, err
	}
	cfg := newConfig(opts...)

	return &NumberLine{
		rangeStart:       rangeStart,
		rangeEnd:         rangeEnd,
		startingPosition: start,
		count:            count,
		gen:              cfg.gen,
	}, nil
}

// Regenerate samples a fresh point set with the current configuration and
// returns only its traversal distance. The points are discarded; use Generate
// or GenerateData when they are needed.
func (nl *NumberLine) Regenerate() (float64, error) {
	s, err := generate(methodRegenerate, nl.gen, nl.rangeStart, nl.rangeEnd, nl.count, nl.startingPosition)
	if err != nil {
		return 0, err
	}

	return s.Distance, nil
}

// Generate samples a fresh point set and returns the full Scenario.
func (nl *NumberLine) Generate() (Scenario, error) {
	return generate(methodGenerate, nl.gen, nl.rangeStart, nl.rangeEnd, nl.count, nl.startingPosition)
}

// SetStartingPosition moves the walker. No validation happens here.
func (nl *NumberLine) SetStartingPosition(v float64) { nl.startingPosition = v }

// StartingPosition returns the current starting position.
func (nl *NumberLine) StartingPosition() float64 { return nl.startingPosition }

// RangeStart returns the inclusive lower bound of the sampling range.
func (nl *NumberLine) RangeStart() float64 { return nl.rangeStart }

// RangeEnd returns the exclusive upper bound of the sampling range.
func (nl *NumberLine) RangeEnd() float64 { return nl.rangeEnd }

// Count returns the number of points sampled per run.
func (nl *NumberLine) Count() int { return nl.count }
