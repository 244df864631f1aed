// Package linepath computes the shortest walk that visits every point of a
// one-dimensional point set, starting from an arbitrary position on the line.
//
// 🚀 What is a linear tour?
//
//	Points are scattered along a line and a walker stands at position s.
//	Every point lies in [min, max], so any walk that touches both extremes
//	touches everything in between. The only decision is which extreme to
//	reach first:
//
//	      s            min ─────────────── max
//	      •──approach──►•═══════sweep═══════►•
//
//	distance = min(|s−min|, |max−s|) + (max−min)
//
//	The span max−min is paid exactly once whatever the order; the approach to
//	the nearer extreme is the smallest possible detour. When s lies outside
//	[min, max] the formula degenerates to a one-directional walk to the far end.
//
// ✨ Key features:
//   - closed form, single pass: O(n) time, O(1) extra memory
//   - Solve returns the full Tour (extremes, visiting order, cost split)
//   - FindBestPath returns just the distance
//   - strict validation: empty input and NaN/±Inf never leak into results
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/linetsp/linepath"
//
//	d, err := linepath.FindBestPath([]float64{2, 5, 8}, 0)
//	// d == 8: walk 0→2 (approach 2), then 2→8 (sweep 6)
//
//	tour, err := linepath.Solve([]float64{1, 10}, 5)
//	// tour.First == 1, tour.Last == 10, tour.Distance == 13
//
// Errors:
//   - ErrInvalidInput   — the point set is empty.
//   - ErrNonFiniteValue — a point or the starting position is NaN or ±Inf.
//
// All functions are pure and safe for concurrent use.
package linepath
