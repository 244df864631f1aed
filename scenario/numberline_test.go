package scenario_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/linetsp/linepath"
	"github.com/katalvlaran/linetsp/scenario"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestNumberLine_Accessors checks the stored configuration.
func TestNumberLine_Accessors(t *testing.T) {
	nl, err := scenario.NewNumberLine(0, 2, 1, 4, scenario.WithSeed(1))
	require.NoError(t, err)

	assert.Equal(t, 0.0, nl.RangeStart())
	assert.Equal(t, 2.0, nl.RangeEnd())
	assert.Equal(t, 1.0, nl.StartingPosition())
	assert.Equal(t, 4, nl.Count())

	nl.SetStartingPosition(7)
	assert.Equal(t, 7.0, nl.StartingPosition())
}

// TestNumberLine_RegenerateUsesUpdatedStart verifies the call-when-needed model.
func TestNumberLine_RegenerateUsesUpdatedStart(t *testing.T) {
	nl, err := scenario.NewNumberLine(0, 10, 0, 3, scenario.WithGenerator(fixedGenerator{[]float64{2, 5, 8}}))
	require.NoError(t, err)

	d, err := nl.Regenerate()
	require.NoError(t, err)
	assert.Equal(t, 8.0, d)

	nl.SetStartingPosition(7)
	d, err = nl.Regenerate()
	require.NoError(t, err)
	assert.Equal(t, 7.0, d, "|8-7| approach + 6 sweep")
}

// TestNumberLine_RegenerateMatchesGenerateData compares a seeded NumberLine
// with GenerateData drawing from an identically seeded source.
func TestNumberLine_RegenerateMatchesGenerateData(t *testing.T) {
	nl, err := scenario.NewNumberLine(0, 2, 1, 6, scenario.WithSeed(21))
	require.NoError(t, err)
	nl.SetStartingPosition(7)

	rng := scenario.NewRand(21)
	for i := 0; i < 5; i++ {
		got, err := nl.Regenerate()
		require.NoError(t, err)

		ref, err := scenario.GenerateData(0, 2, 6, 7, scenario.WithRand(rng))
		require.NoError(t, err)
		require.Equal(t, ref.Distance, got, "draw %d", i)

		// Starting right of every point collapses to a single leftward walk.
		assert.InDelta(t, 7-ref.Tour.Min, got, 1e-12)
		assert.Equal(t, linepath.Right, ref.Tour.FirstSide)
	}
}

// TestNumberLine_GenerateReturnsPoints checks the pair-returning method.
func TestNumberLine_GenerateReturnsPoints(t *testing.T) {
	nl, err := scenario.NewNumberLine(-1, 1, 0, 9, scenario.WithSeed(4))
	require.NoError(t, err)

	s, err := nl.Generate()
	require.NoError(t, err)
	require.Len(t, s.Points, 9)

	want, err := linepath.FindBestPath(s.Points, 0)
	require.NoError(t, err)
	assert.Equal(t, want, s.Distance)
}

// TestNumberLine_Errors covers constructor validation and a late NaN start.
func TestNumberLine_Errors(t *testing.T) {
	_, err := scenario.NewNumberLine(0, 2, 1, 0)
	assert.ErrorIs(t, err, scenario.ErrInvalidInput)
	assert.Contains(t, err.Error(), "NewNumberLine:")

	_, err = scenario.NewNumberLine(2, 0, 1, 3)
	assert.ErrorIs(t, err, scenario.ErrInvalidInput)

	_, err = scenario.NewNumberLine(0, 2, math.Inf(-1), 3)
	assert.ErrorIs(t, err, scenario.ErrNonFiniteValue)

	nl, err := scenario.NewNumberLine(0, 2, 1, 3, scenario.WithSeed(1))
	require.NoError(t, err)
	nl.SetStartingPosition(math.NaN())

	_, err = nl.Regenerate()
	assert.ErrorIs(t, err, scenario.ErrNonFiniteValue)
	assert.Contains(t, err.Error(), "NumberLine.Regenerate:")
}
