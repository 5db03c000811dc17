package compact

import "github.com/mkorrel/libraryrecon/pkg/roomgraph"

// IsDifferent implements the structural inequality test: a and b are proven
// different if their labels disagree, or if some door is opened on both
// sides and their destinations are proven different at depth-1. It
// returns false — "not proven different" is not the same as "proven
// equal" — whenever depth has run out or the two sides only disagree on
// doors neither has opened yet.
func IsDifferent(g *roomgraph.Graph, a, b roomgraph.Handle, depth int) bool {
	a, b = g.Resolve(a), g.Resolve(b)
	if a == b {
		return false
	}

	ra, rb := g.Get(a), g.Get(b)
	if ra.Label != rb.Label {
		return true
	}
	if depth <= 0 {
		return false
	}

	for d := 0; d < 6; d++ {
		da, db := ra.Doors[d], rb.Doors[d]
		if !da.Opened() || !db.Opened() {
			continue
		}
		if IsDifferent(g, da.Dest, db.Dest, depth-1) {
			return true
		}
	}
	return false
}
