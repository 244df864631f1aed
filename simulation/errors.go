package simulation

import "github.com/katalvlaran/linetsp/linepath"

// Sentinels are shared with linepath so errors.Is works across packages.
var (
	// ErrInvalidInput reports invalid simulation parameters.
	ErrInvalidInput = linepath.ErrInvalidInput

	// ErrNonFiniteValue reports NaN/±Inf survey bounds or steps.
	ErrNonFiniteValue = linepath.ErrNonFiniteValue
)

// Method names used as error prefixes.
const (
	methodNew              = "New"
	methodRun              = "Simulation.Run"
	methodSweepPointCounts = "SweepPointCounts"
	methodSurveyPositions  = "SurveyPositions"
)
