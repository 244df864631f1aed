package scenario

import "math/rand"

// Option customizes sampling for GenerateData and NewNumberLine.
// Option constructors panic on meaningless values; sampling itself never panics.
type Option func(*config)

// WithRand samples from r. The caller owns r and must not share it across
// goroutines. Panics on nil.
func WithRand(r *rand.Rand) Option {
	if r == nil {
		panic("scenario: WithRand(nil)")
	}
	return func(c *config) {
		c.rng = r
	}
}

// WithSeed samples from a fresh source seeded with seed (0 ⇒ default seed).
// Use it in tests and examples to lock outcomes.
func WithSeed(seed int64) Option {
	return func(c *config) {
		c.rng = NewRand(seed)
	}
}

// WithGenerator replaces the uniform sampler. The generator must return
// exactly n points in [lo, hi); violations surface as ErrInvalidInput.
// Panics on nil.
func WithGenerator(g PointGenerator) Option {
	if g == nil {
		panic("scenario: WithGenerator(nil)")
	}
	return func(c *config) {
		c.gen = g
	}
}
