package ping

import "github.com/mkorrel/libraryrecon/pkg/roomgraph"

// Candidate is one (bound room, unbound candidate) pair the planner
// could build a ping for, together with the door sequence σB→R already
// resolved against the current tentative graph.
type Candidate struct {
	Bound     roomgraph.Handle
	Candidate roomgraph.Handle
	Identity  int
	Walk      []int // σB→R, doors from Bound to Candidate
}

// FindCandidates enumerates up to max (bound, candidate) pairs: an unbound
// room R and a bound room B with B.label == R.label and i(B) in R's
// potential, such that B can reach (the tentative graph's current belief
// about) R via opened doors — the ping plan is built by physically
// retracing that walk from B.
func FindCandidates(g *roomgraph.Graph, maxCandidates int) []Candidate {
	var out []Candidate

	for _, r := range g.UnboundedRooms() {
		rRoom := g.Get(r)
		rRoom.Potential.Each(func(i int) {
			if len(out) >= maxCandidates {
				return
			}
			b, ok := g.DefinedRoom(i)
			if !ok {
				return
			}
			if g.Get(b).Label != rRoom.Label {
				return
			}
			walkDoors, dest, ok := g.PathFrom(b, func(h roomgraph.Handle) bool { return h == g.Resolve(r) })
			if !ok || dest != g.Resolve(r) {
				return
			}
			out = append(out, Candidate{Bound: b, Candidate: r, Identity: i, Walk: walkDoors})
		})
		if len(out) >= maxCandidates {
			break
		}
	}

	return out
}
