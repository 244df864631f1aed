package scenario

import "github.com/katalvlaran/linetsp/linepath"

// Sentinels are shared with linepath so errors.Is works across packages.
var (
	// ErrInvalidInput reports a non-positive count, an empty or inverted range,
	// or a generator that broke its contract.
	ErrInvalidInput = linepath.ErrInvalidInput

	// ErrNonFiniteValue reports NaN/±Inf bounds or starting positions, or a
	// range whose span overflows.
	ErrNonFiniteValue = linepath.ErrNonFiniteValue
)

// Method names used as error prefixes.
const (
	methodGenerateData  = "GenerateData"
	methodNewNumberLine = "NewNumberLine"
	methodRegenerate    = "NumberLine.Regenerate"
	methodGenerate      = "NumberLine.Generate"
)
