// Package linetsp solves the one-dimensional traveling salesman problem from
// an interior start: given points on a line and a starting position, find the
// shortest walk that visits every point.
//
// 🚀 What is linetsp?
//
//	A small library in three layers:
//		• linepath   – closed-form solver: nearer extreme first, then sweep
//		• scenario   – seeded random point sets and the NumberLine wrapper
//		• simulation – Monte Carlo search for the best starting position
//
// ✨ Why closed form?
//
//   - Any optimal walk must touch both extremes, and everything in between
//     is covered on the way.
//   - O(n) time, O(1) extra space, no allocation in the solver.
//
// Quick ASCII example (points 2, 5, 8; start 0):
//
//	0 ──▶ 2 ─── 5 ───▶ 8     approach 2 + sweep 6 = 8
//
// Layout:
//
//	linepath/   — FindBestPath, Solve, Extremes, sentinel errors
//	scenario/   — GenerateData, NumberLine, PointGenerator, RNG helpers
//	simulation/ — Simulation.Run, SweepPointCounts, SurveyPositions
//
//	go get github.com/katalvlaran/linetsp
package linetsp
