// SPDX-License-Identifier: MIT
// Package: linetsp/scenario
//
// config.go — internal configuration resolved from functional options.
//
// Defaults:
//   • gen = Uniform over a clock-seeded *rand.Rand
//   • rng = nil until WithRand/WithSeed, or until the default is resolved
//
// Options apply in order; later options override earlier ones. WithGenerator
// takes precedence over WithRand/WithSeed regardless of order.

package scenario

import "math/rand"

// config aggregates the knobs used by GenerateData and NumberLine.
type config struct {
	rng *rand.Rand     // source for the default Uniform generator
	gen PointGenerator // explicit generator; nil means Uniform(rng)
}

// newConfig applies opts in order and resolves the generator.
// Complexity: O(len(opts)).
func newConfig(opts ...Option) config {
	var cfg config
	for _, opt := range opts {
		opt(&cfg)
	}

	if cfg.gen == nil {
		if cfg.rng == nil {
			cfg.rng = NewRand(clockSeed())
		}
		cfg.gen = NewUniform(cfg.rng)
	}

	return cfg
}
