package simulation

import (
	"fmt"
	"math"
	"time"

	"github.com/google/uuid"
	"github.com/samber/lo"
	"github.com/sirupsen/logrus"

	"github.com/katalvlaran/linetsp/scenario"
)

// Sweep holds the distances of funnel optima from the segment centre for a
// range of point counts, plus the parameters that produced them.
type Sweep struct {
	RunID uuid.UUID

	RangeStart float64
	RangeEnd   float64
	Centre     float64

	From int // first point count, inclusive
	To   int // last point count, inclusive

	Iterations         int
	Repetitions        int
	SignificantFigures int
	Seed               int64

	// Distances[i] lists |optimum − Centre| per repetition for n = From+i.
	Distances [][]float64

	Started  time.Time
	Finished time.Time
}

// PointCountStats summarises the distances for one point count.
type PointCountStats struct {
	N int
	Summary
}

// SweepPointCounts runs a Simulation for every point count n in [from, to]
// on the configured range (default [0, 2)), starting each search at the
// centre. Each n draws from its own stream derived from the base seed, so
// results for a given n do not depend on from.
//
// Errors: ErrInvalidInput if from < 1 or from > to.
func SweepPointCounts(from, to int, opts ...Option) (Sweep, error) {
	if from < 1 {
		return Sweep{}, fmt.Errorf("%s: from=%d < min=1: %w", methodSweepPointCounts, from, ErrInvalidInput)
	}
	if from > to {
		return Sweep{}, fmt.Errorf("%s: from=%d > to=%d: %w", methodSweepPointCounts, from, to, ErrInvalidInput)
	}

	cfg := newConfig(opts...)
	centre := cfg.rangeStart + (cfg.rangeEnd-cfg.rangeStart)/2
	total := (to - from + 1) * cfg.repetitions

	sw := Sweep{
		RunID:              uuid.New(),
		RangeStart:         cfg.rangeStart,
		RangeEnd:           cfg.rangeEnd,
		Centre:             centre,
		From:               from,
		To:                 to,
		Iterations:         cfg.iterations,
		Repetitions:        cfg.repetitions,
		SignificantFigures: cfg.sigFigs,
		Seed:               cfg.seed,
		Distances:          make([][]float64, 0, to-from+1),
		Started:            time.Now(),
	}
	log := cfg.log.WithField("sweep_id", sw.RunID.String())
	log.WithFields(logrus.Fields{"from": from, "to": to}).Info("sweep started")

	for n := from; n <= to; n++ {
		rng := scenario.DeriveRand(scenario.NewRand(cfg.seed), uint64(n))
		line, err := scenario.NewNumberLine(cfg.rangeStart, cfg.rangeEnd, centre, n, scenario.WithRand(rng))
		if err != nil {
			return Sweep{}, fmt.Errorf("%s: n=%d: %w", methodSweepPointCounts, n, err)
		}

		res, err := newSimulation(line, cfg).run((n-from)*cfg.repetitions, total)
		if err != nil {
			return Sweep{}, fmt.Errorf("%s: n=%d: %w", methodSweepPointCounts, n, err)
		}
		sw.Distances = append(sw.Distances, lo.Map(res.OptimalPositions, func(p float64, _ int) float64 {
			return math.Abs(p - centre)
		}))
	}

	sw.Finished = time.Now()
	log.WithField("elapsed", sw.Finished.Sub(sw.Started)).Info("sweep finished")

	return sw, nil
}

// Stats returns one rounded summary per point count, in ascending n.
// Rounding is half away from zero.
func (s Sweep) Stats(meanPlaces, stdevPlaces int32) []PointCountStats {
	return lo.Map(s.Distances, func(ds []float64, i int) PointCountStats {
		return PointCountStats{N: s.From + i, Summary: summarize(ds, meanPlaces, stdevPlaces)}
	})
}
