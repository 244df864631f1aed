// SPDX-License-Identifier: MIT
// Package: linetsp/simulation
//
// config.go — internal configuration and deterministic defaults.
//
// Defaults:
//   • iterations  = 1   (regenerations averaged per candidate position)
//   • repetitions = 1   (independent funnel searches per run)
//   • sigFigs     = 1   (refinement rounds; step 0.1, 0.01, …)
//   • range       = [0, 2) for SweepPointCounts, start at the centre
//   • seed        = clock-based unless WithSeed is given
//   • log         = logrus.StandardLogger()
//   • progress    = no-op

package simulation

import (
	"time"

	"github.com/sirupsen/logrus"
)

// Named defaults.
const (
	defaultIterations  = 1
	defaultRepetitions = 1
	defaultSigFigs     = 1
	defaultRangeStart  = 0.0
	defaultRangeEnd    = 2.0
)

// config aggregates all simulation knobs.
type config struct {
	iterations  int
	repetitions int
	sigFigs     int

	rangeStart float64
	rangeEnd   float64

	seed    int64
	hasSeed bool

	log      *logrus.Logger
	progress func(done, total int)
}

// newConfig builds a config with defaults and applies opts in order.
func newConfig(opts ...Option) config {
	cfg := config{
		iterations:  defaultIterations,
		repetitions: defaultRepetitions,
		sigFigs:     defaultSigFigs,
		rangeStart:  defaultRangeStart,
		rangeEnd:    defaultRangeEnd,
		log:         logrus.StandardLogger(),
		progress:    func(int, int) {},
	}
	for _, opt := range opts {
		opt(&cfg)
	}
	if !cfg.hasSeed {
		cfg.seed = time.Now().UnixNano()
	}

	return cfg
}
