package scenario_test

import (
	"fmt"

	"github.com/katalvlaran/linetsp/linepath"
	"github.com/katalvlaran/linetsp/scenario"
)

// ExampleGenerateData draws a reproducible scenario and re-checks its distance.
func ExampleGenerateData() {
	s, err := scenario.GenerateData(0, 10, 5, 3, scenario.WithSeed(42))
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	d, _ := linepath.FindBestPath(s.Points, s.StartingPosition)
	fmt.Println(len(s.Points), d == s.Distance)
	// Output:
	// 5 true
}

// ExampleNumberLine moves the start and re-runs without re-specifying the range.
func ExampleNumberLine() {
	line, err := scenario.NewNumberLine(0, 2, 1, 1, scenario.WithSeed(1))
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	line.SetStartingPosition(2)
	d, err := line.Regenerate()
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	// One point in [0, 2) seen from 2 is at most 2 away.
	fmt.Println(line.StartingPosition(), d > 0 && d <= 2)
	// Output:
	// 2 true
}
