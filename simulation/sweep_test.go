package simulation_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/linetsp/simulation"
)

// TestSweepPointCounts_Shape checks one row per n and one distance per repetition.
func TestSweepPointCounts_Shape(t *testing.T) {
	log, _ := quietLogger()
	sw, err := simulation.SweepPointCounts(1, 3,
		simulation.WithSeed(5),
		simulation.WithIterations(50),
		simulation.WithRepetitions(2),
		simulation.WithLogger(log))
	require.NoError(t, err)

	assert.Equal(t, 1.0, sw.Centre)
	assert.Equal(t, int64(5), sw.Seed)
	require.Len(t, sw.Distances, 3)
	for i, ds := range sw.Distances {
		require.Len(t, ds, 2, "n=%d", i+1)
		for _, d := range ds {
			// Optima lie in [centre, end] of [0, 2).
			assert.GreaterOrEqual(t, d, 0.0)
			assert.LessOrEqual(t, d, 1.0)
		}
	}

	stats := sw.Stats(3, 2)
	require.Len(t, stats, 3)
	for i, st := range stats {
		assert.Equal(t, i+1, st.N)
		assert.Equal(t, 2, st.Count)
	}
}

// TestSweepPointCounts_StreamPerCount verifies that results for n depend only
// on the seed and n, not on where the sweep begins.
func TestSweepPointCounts_StreamPerCount(t *testing.T) {
	log, _ := quietLogger()
	opts := []simulation.Option{
		simulation.WithSeed(11),
		simulation.WithIterations(20),
		simulation.WithRepetitions(3),
		simulation.WithLogger(log),
	}

	full, err := simulation.SweepPointCounts(1, 3, opts...)
	require.NoError(t, err)
	tail, err := simulation.SweepPointCounts(2, 3, opts...)
	require.NoError(t, err)

	assert.Equal(t, full.Distances[1:], tail.Distances)
	assert.NotEqual(t, full.RunID, tail.RunID)
}

// TestSweepPointCounts_CustomRange starts at the centre of the given range.
func TestSweepPointCounts_CustomRange(t *testing.T) {
	log, _ := quietLogger()
	var last [2]int
	sw, err := simulation.SweepPointCounts(2, 2,
		simulation.WithSeed(1),
		simulation.WithRange(-4, 4),
		simulation.WithRepetitions(2),
		simulation.WithLogger(log),
		simulation.WithProgress(func(done, total int) { last = [2]int{done, total} }))
	require.NoError(t, err)

	assert.Equal(t, 0.0, sw.Centre)
	assert.Equal(t, [2]int{2, 2}, last)
	for _, d := range sw.Distances[0] {
		assert.LessOrEqual(t, d, 4.0)
	}
}

// TestSweepPointCounts_Errors covers invalid bounds.
func TestSweepPointCounts_Errors(t *testing.T) {
	_, err := simulation.SweepPointCounts(0, 3)
	assert.ErrorIs(t, err, simulation.ErrInvalidInput)
	assert.Contains(t, err.Error(), "SweepPointCounts:")

	_, err = simulation.SweepPointCounts(4, 3)
	assert.ErrorIs(t, err, simulation.ErrInvalidInput)
}

// TestSweep_StatsRounding uses hand-built distances to pin the rounding mode.
func TestSweep_StatsRounding(t *testing.T) {
	sw := simulation.Sweep{From: 4, Distances: [][]float64{{0.25, 0.25}, {0.1}}}

	stats := sw.Stats(1, 1)
	require.Len(t, stats, 2)
	assert.Equal(t, 4, stats[0].N)
	assert.Equal(t, "0.3", stats[0].Mean.String(), "half away from zero")
	assert.True(t, stats[0].StdDev.IsZero())
	assert.Equal(t, 5, stats[1].N)
	assert.Equal(t, "0.1", stats[1].Mean.String())
	assert.True(t, stats[1].StdDev.IsZero(), "single sample")
}
