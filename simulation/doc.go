// Package simulation searches for the starting position that minimises the
// expected traversal distance on a randomly populated line segment.
//
// Monte Carlo over scenario.NumberLine:
//
//   - Simulation.Run — "funnel" search. Candidate starts are scanned with a
//     step of 0.1, the best mean (over Iterations regenerations) becomes the
//     centre of a window scanned at 0.01, and so on for SignificantFigures
//     rounds. Each repetition yields one optimal position.
//   - SweepPointCounts — runs the funnel search for every point count in a
//     range and reports how far the optima land from the segment centre,
//     with mean/stdev statistics rounded via shopspring/decimal.
//   - SurveyPositions — scans fixed starting positions and reports mean path,
//     mean minimum and mean maximum per position.
//
// Configuration uses functional options (WithIterations, WithRepetitions,
// WithSignificantFigures, WithProgress, WithLogger, WithSeed, WithRange).
// Progress and step timings are logged through an injected *logrus.Logger.
//
// Everything runs synchronously on the caller's goroutine. A Simulation
// drives its NumberLine's random source and is not safe for concurrent use.
package simulation
