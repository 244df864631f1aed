package simulation_test

import (
	"fmt"

	"github.com/katalvlaran/linetsp/scenario"
	"github.com/katalvlaran/linetsp/simulation"
)

// ExampleSurveyPositions scores every integer start on [0, 10] against the
// points {2, 5, 8} and reports the cheapest.
func ExampleSurveyPositions() {
	line, _ := scenario.NewNumberLine(0, 10, 5, 3,
		scenario.WithGenerator(fixedGenerator{[]float64{2, 5, 8}}))
	log, _ := quietLogger()

	sv, _ := simulation.SurveyPositions(line, 0, 10, 1, simulation.WithLogger(log))
	best, _ := sv.Best()
	fmt.Println(len(sv.Positions), best.StartingPosition, best.MeanPath)
	// Output: 11 2 6
}

// ExampleSimulation_Run funnels towards the start with the lowest distance.
func ExampleSimulation_Run() {
	line, _ := scenario.NewNumberLine(0, 2, 1, 2,
		scenario.WithGenerator(fixedGenerator{[]float64{0.5, 1.5}}))
	log, _ := quietLogger()

	sim, _ := simulation.New(line, simulation.WithSignificantFigures(2), simulation.WithLogger(log))
	res, _ := sim.Run()
	fmt.Printf("%.2f %g\n", res.OptimalPositions[0], line.StartingPosition())
	// Output: 1.50 1
}
