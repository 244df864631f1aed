// Package scenario samples random point sets on a line segment and solves
// them with linepath.
//
// Two entry points share one sampling path:
//
//   - GenerateData — stateless; returns the sampled points together with the
//     solved tour and distance (the pair contract).
//   - NumberLine   — remembers range, point count and starting position so a
//     caller can move the start and re-run; Regenerate returns only the distance.
//
// The distance in a Scenario is always exactly what linepath.FindBestPath
// computes on Scenario.Points; both come from the same linepath.Solve call.
//
// Randomness is injected, never hidden:
//
//	s, err := scenario.GenerateData(0, 10, 5, 3, scenario.WithSeed(7))
//
//	line, err := scenario.NewNumberLine(0, 2, 1, 4, scenario.WithRand(rng))
//	line.SetStartingPosition(1.5)
//	d, err := line.Regenerate()
//
// Without WithSeed/WithRand/WithGenerator a fresh clock-seeded source is used.
//
// Concurrency: a *rand.Rand is not goroutine-safe, so neither is a NumberLine
// or a Uniform generator. Derive independent streams with DeriveRand.
package scenario
