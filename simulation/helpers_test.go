package simulation_test

import (
	"slices"

	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
)

// fixedGenerator is a scenario.PointGenerator double that always returns the
// same points, making distances deterministic.
type fixedGenerator struct{ points []float64 }

func (f fixedGenerator) Generate(lo, hi float64, n int) []float64 {
	return slices.Clone(f.points)
}

// quietLogger returns a logger that discards output and records entries.
func quietLogger() (*logrus.Logger, *test.Hook) {
	l, hook := test.NewNullLogger()
	l.SetLevel(logrus.DebugLevel)

	return l, hook
}
