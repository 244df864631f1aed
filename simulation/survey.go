package simulation

import (
	"fmt"

	"github.com/samber/lo"
	"github.com/sirupsen/logrus"
	"gonum.org/v1/gonum/stat"

	"github.com/katalvlaran/linetsp/linepath"
	"github.com/katalvlaran/linetsp/scenario"
)

// PositionStats are the averages observed from one starting position.
type PositionStats struct {
	StartingPosition float64
	MeanPath         float64 // mean traversal distance
	MeanMin          float64 // mean leftmost sampled point
	MeanMax          float64 // mean rightmost sampled point
}

// Survey collects PositionStats over a grid of starting positions.
type Survey struct {
	RangeStart float64
	RangeEnd   float64
	PointCount int
	Iterations int
	Positions  []PositionStats
}

// Best returns the position with the lowest mean path; ties go to the
// earliest. ok is false for an empty survey.
func (s Survey) Best() (best PositionStats, ok bool) {
	if len(s.Positions) == 0 {
		return PositionStats{}, false
	}

	return lo.MinBy(s.Positions, func(a, b PositionStats) bool {
		return a.MeanPath < b.MeanPath
	}), true
}

// SurveyPositions evaluates starting positions from, from+step, … ≤ to on
// line, averaging WithIterations regenerations per position. The line's
// starting position is restored afterwards.
//
// Errors:
//   - ErrInvalidInput   — nil line, step ≤ 0 or from > to.
//   - ErrNonFiniteValue — non-finite from, to or step.
func SurveyPositions(line *scenario.NumberLine, from, to, step float64, opts ...Option) (Survey, error) {
	if line == nil {
		return Survey{}, fmt.Errorf("%s: nil number line: %w", methodSurveyPositions, ErrInvalidInput)
	}
	for _, v := range []struct {
		name string
		val  float64
	}{{"from", from}, {"to", to}, {"step", step}} {
		if err := linepath.ValidateFinite(methodSurveyPositions, v.name, v.val); err != nil {
			return Survey{}, err
		}
	}
	if step <= 0 {
		return Survey{}, fmt.Errorf("%s: step=%g <= 0: %w", methodSurveyPositions, step, ErrInvalidInput)
	}
	if from > to {
		return Survey{}, fmt.Errorf("%s: from=%g > to=%g: %w", methodSurveyPositions, from, to, ErrInvalidInput)
	}

	cfg := newConfig(opts...)
	origin := line.StartingPosition()
	defer line.SetStartingPosition(origin)

	var (
		paths = make([]float64, cfg.iterations)
		mins  = make([]float64, cfg.iterations)
		maxs  = make([]float64, cfg.iterations)
		sv    = Survey{
			RangeStart: line.RangeStart(),
			RangeEnd:   line.RangeEnd(),
			PointCount: line.Count(),
			Iterations: cfg.iterations,
		}
	)

	err := scanWindow(from, to, step, func(p float64) error {
		line.SetStartingPosition(p)
		for i := 0; i < cfg.iterations; i++ {
			s, err := line.Generate()
			if err != nil {
				return err
			}
			paths[i], mins[i], maxs[i] = s.Distance, s.Tour.Min, s.Tour.Max
		}

		ps := PositionStats{
			StartingPosition: p,
			MeanPath:         stat.Mean(paths, nil),
			MeanMin:          stat.Mean(mins, nil),
			MeanMax:          stat.Mean(maxs, nil),
		}
		sv.Positions = append(sv.Positions, ps)
		cfg.log.WithFields(logrus.Fields{
			"position":  p,
			"mean_path": ps.MeanPath,
		}).Debug("position surveyed")

		return nil
	})
	if err != nil {
		return Survey{}, fmt.Errorf("%s: %w", methodSurveyPositions, err)
	}

	return sv, nil
}
