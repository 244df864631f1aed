package simulation

import (
	"fmt"
	"math"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gonum.org/v1/gonum/stat"

	"github.com/katalvlaran/linetsp/linepath"
	"github.com/katalvlaran/linetsp/scenario"
)

// windowTol is the fraction of a step by which the last candidate may
// overshoot the window's right edge and still be scanned. It absorbs
// representation error in left + k*step.
const windowTol = 1e-9

// Result is the outcome of one Simulation.Run.
type Result struct {
	RunID            uuid.UUID // unique per run, used in log fields
	PointCount       int       // points sampled per regeneration
	Origin           float64   // starting position the searches began from
	OptimalPositions []float64 // one optimum per repetition
	Started          time.Time
	Finished         time.Time
}

// Simulation runs repeated funnel searches over a NumberLine.
type Simulation struct {
	line *scenario.NumberLine
	cfg  config
	buf  []float64 // per-position distances, reused across gathers
}

// New binds a Simulation to line. The search window spans from the line's
// current starting position to its range end, so the start must be finite
// and must not exceed the range end.
func New(line *scenario.NumberLine, opts ...Option) (*Simulation, error) {
	if line == nil {
		return nil, fmt.Errorf("%s: nil number line: %w", methodNew, ErrInvalidInput)
	}
	if err := validateOrigin(methodNew, line); err != nil {
		return nil, err
	}

	return newSimulation(line, newConfig(opts...)), nil
}

func newSimulation(line *scenario.NumberLine, cfg config) *Simulation {
	return &Simulation{line: line, cfg: cfg, buf: make([]float64, cfg.iterations)}
}

// Run performs the configured number of repetitions. The line's starting
// position is restored afterwards, so every repetition searches the same
// window and the caller's configuration is left untouched.
//
// Complexity: O(repetitions · sigFigs · 21 · iterations · n).
func (s *Simulation) Run() (Result, error) {
	return s.run(0, s.cfg.repetitions)
}

// run executes all repetitions; offset and total feed the progress callback
// so sweeps can report one continuous count.
func (s *Simulation) run(offset, total int) (Result, error) {
	if err := validateOrigin(methodRun, s.line); err != nil {
		return Result{}, err
	}

	origin := s.line.StartingPosition()
	defer s.line.SetStartingPosition(origin)

	res := Result{
		RunID:            uuid.New(),
		PointCount:       s.line.Count(),
		Origin:           origin,
		OptimalPositions: make([]float64, 0, s.cfg.repetitions),
		Started:          time.Now(),
	}
	log := s.cfg.log.WithFields(logrus.Fields{
		"run_id": res.RunID.String(),
		"n":      res.PointCount,
	})
	log.WithFields(logrus.Fields{
		"iterations":  s.cfg.iterations,
		"repetitions": s.cfg.repetitions,
		"sig_figs":    s.cfg.sigFigs,
		"origin":      origin,
	}).Info("simulation started")

	timer := newStepTimer(log)
	for rep := 0; rep < s.cfg.repetitions; rep++ {
		timer.reset()
		p, err := s.funnel(origin)
		if err != nil {
			return Result{}, fmt.Errorf("%s: repetition %d: %w", methodRun, rep, err)
		}
		res.OptimalPositions = append(res.OptimalPositions, p)
		timer.report(fmt.Sprintf("repetition %d", rep))
		s.cfg.progress(offset+rep+1, total)
	}

	res.Finished = time.Now()
	log.WithField("elapsed", res.Finished.Sub(res.Started)).Info("simulation finished")

	return res, nil
}

// funnel narrows in on the starting position with the lowest mean distance.
// Round k scans [left, right] with step 10^-k; the winner p of a round sets
// the next window to [min(p−step, end), min(p+step, end)].
// Ties go to the leftmost candidate.
func (s *Simulation) funnel(origin float64) (float64, error) {
	var (
		end   = s.line.RangeEnd()
		left  = origin
		right = end
		step  = 1.0
	)
	var positions, means []float64 // candidates of the current round and their scores

	for fig := 0; fig < s.cfg.sigFigs; fig++ {
		step /= 10
		positions, means = positions[:0], means[:0]

		err := scanWindow(left, right, step, func(p float64) error {
			m, err := s.gather(p)
			if err != nil {
				return err
			}
			positions = append(positions, p)
			means = append(means, m)

			return nil
		})
		if err != nil {
			return 0, err
		}

		best := positions[argmin(means)]
		left = math.Min(best-step, end)
		right = math.Min(best+step, end)
	}

	return positions[argmin(means)], nil
}

// gather returns the mean distance of cfg.iterations regenerations from p.
func (s *Simulation) gather(p float64) (float64, error) {
	s.line.SetStartingPosition(p)
	for i := range s.buf {
		d, err := s.line.Regenerate()
		if err != nil {
			return 0, err
		}
		s.buf[i] = d
	}

	return stat.Mean(s.buf, nil), nil
}

// scanWindow calls visit for left, left+step, … while the candidate does not
// pass right (within windowTol·step). Candidates are clamped to right.
// left ≤ right and step > 0 are required; at least one candidate is visited.
func scanWindow(left, right, step float64, visit func(p float64) error) error {
	limit := right + step*windowTol
	for k := 0; ; k++ {
		p := left + float64(k)*step
		if p > limit {
			return nil
		}
		if err := visit(math.Min(p, right)); err != nil {
			return err
		}
	}
}

// validateOrigin checks that the line's start can open a search window.
func validateOrigin(method string, line *scenario.NumberLine) error {
	start := line.StartingPosition()
	if err := linepath.ValidateFinite(method, "start", start); err != nil {
		return err
	}
	if start > line.RangeEnd() {
		return fmt.Errorf("%s: start=%g beyond range end %g: %w",
			method, start, line.RangeEnd(), ErrInvalidInput)
	}

	return nil
}
