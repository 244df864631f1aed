package linepath

// Side names the extreme of the point set a tour reaches first.
type Side int

const (
	// Left means the tour heads for the minimum first, then sweeps right.
	Left Side = iota

	// Right means the tour heads for the maximum first, then sweeps left.
	Right
)

// String implements fmt.Stringer.
func (s Side) String() string {
	if s == Right {
		return "right"
	}

	return "left"
}

// Tour is the optimal walk over a point set from a starting position.
//
// Invariants:
//   - Min ≤ Max, and {First, Last} == {Min, Max}.
//   - Approach == |Start − First|, Sweep == Max − Min.
//   - Distance == Approach + Sweep.
type Tour struct {
	Start float64 // starting position of the walker
	Min   float64 // leftmost point
	Max   float64 // rightmost point

	FirstSide Side    // which extreme is reached first
	First     float64 // extreme visited first
	Last      float64 // extreme where the walk ends

	Approach float64 // cost of reaching the nearer extreme
	Sweep    float64 // cost of crossing the whole span
	Distance float64 // total traversal distance
}

// Waypoints returns the turning points of the walk: [Start, First, Last].
// Every input point lies on the segment First→Last.
func (t Tour) Waypoints() []float64 {
	return []float64{t.Start, t.First, t.Last}
}
