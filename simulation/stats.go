package simulation

import (
	"math"

	"github.com/shopspring/decimal"
	"gonum.org/v1/gonum/stat"
)

// Summary is the rounded mean and sample standard deviation of a data set.
type Summary struct {
	Count  int
	Mean   decimal.Decimal
	StdDev decimal.Decimal
}

// summarize computes mean and sample stdev and rounds them half away from
// zero. Fewer than two samples report a stdev of 0.
func summarize(xs []float64, meanPlaces, stdevPlaces int32) Summary {
	if len(xs) == 0 {
		return Summary{}
	}

	mean, std := stat.MeanStdDev(xs, nil)
	if len(xs) < 2 || math.IsNaN(std) {
		std = 0
	}

	return Summary{
		Count:  len(xs),
		Mean:   decimal.NewFromFloat(mean).Round(meanPlaces),
		StdDev: decimal.NewFromFloat(std).Round(stdevPlaces),
	}
}

// argmin returns the index of the first smallest element. xs must be non-empty.
func argmin(xs []float64) int {
	best := 0
	for i := 1; i < len(xs); i++ {
		if xs[i] < xs[best] {
			best = i
		}
	}

	return best
}
