package scenario

import (
	"math"
	"math/rand"
)

// PointGenerator produces n points on the half-open segment [lo, hi).
// Callers guarantee n ≥ 1 and lo < hi with a finite span.
type PointGenerator interface {
	Generate(lo, hi float64, n int) []float64
}

// Uniform draws independent, uniformly distributed points.
type Uniform struct {
	rng *rand.Rand
}

// NewUniform returns a Uniform sampler over rng.
// A nil rng falls back to the deterministic default stream (seed==0 policy).
func NewUniform(rng *rand.Rand) *Uniform {
	if rng == nil {
		rng = NewRand(0)
	}

	return &Uniform{rng: rng}
}

// Generate implements PointGenerator.
//
// Complexity: O(n) time, O(n) space.
func (u *Uniform) Generate(lo, hi float64, n int) []float64 {
	var (
		out  = make([]float64, n)
		span = hi - lo
		i    int
		x    float64
	)
	for i = range out {
		x = lo + u.rng.Float64()*span
		// lo + u*span can round up to hi even though u < 1.
		if x >= hi {
			x = math.Nextafter(hi, lo)
		}
		out[i] = x
	}

	return out
}
