package ping

import "github.com/mkorrel/libraryrecon/pkg/roomgraph"

// Charcoal records one label-overwrite marker placed opportunistically
// on a bound room along a ping's walk — the "opportunistic multi-charcoal"
// robustness enhancement that squeezes an extra free elimination or
// confirmation out of a walk already paying for the main ping.
type Charcoal struct {
	Room       roomgraph.Handle
	PrevLabel  int
	NextLabel  int
	ObservedAt int // index into the plan's move-observation sequence
}

// Query is the planner's side-table for one ping plan, consulted by the
// exploration loop's observation handler once the oracle's reply comes
// back.
type Query struct {
	// Charcoaled maps the overwrite label used at each marker to the
	// room it was applied to, so the handler can recognize a revisit to
	// any of them, not only the primary target.
	Charcoaled map[int]*Charcoal

	Bound     roomgraph.Handle // B
	Candidate roomgraph.Handle // R
	Identity  int              // i(B), the identity under test

	// DestinationIndex is the position in the observation sequence where
	// σB→R ends and the outcome is read.
	DestinationIndex int
}
