package invariants

import (
	"fmt"

	"github.com/mkorrel/libraryrecon/pkg/roomgraph"
)

// CheckAll runs every invariant check against g and returns the combined
// report. Intended for use in tests and as an optional post-run audit,
// never on the hot path of the exploration loop.
func CheckAll(g *roomgraph.Graph) *Report {
	report := NewReport()
	report.Add(checkReachableDoorsNonEmpty(g))
	report.Add(checkDefinedRoomsConsistent(g))
	report.Add(checkPairReciprocity(g))
	report.Add(checkNoSharedSingletons(g))
	return report
}

// checkReachableDoorsNonEmpty verifies that every opened door of every
// room reachable from the root leads to a room whose potential set is
// still non-empty — an empty potential is a contradiction the compactor
// should have already resolved into a merge or a hard failure.
func checkReachableDoorsNonEmpty(g *roomgraph.Graph) CheckResult {
	root := g.Root()
	if root == roomgraph.NoHandle {
		return CheckResult{Name: "reachable-doors-non-empty", Satisfied: true, Details: "no root yet, vacuously true"}
	}

	visited := map[roomgraph.Handle]bool{root: true}
	queue := []roomgraph.Handle{root}
	for len(queue) > 0 {
		h := queue[0]
		queue = queue[1:]
		for d := 0; d < 6; d++ {
			door := g.Door(h, d)
			if !door.Opened() {
				continue
			}
			dest := g.Resolve(door.Dest)
			if g.Get(dest).Potential.IsEmpty() {
				return CheckResult{
					Name:      "reachable-doors-non-empty",
					Satisfied: false,
					Details:   fmt.Sprintf("room %d door %d leads to room %d with an empty potential set", h, d, dest),
				}
			}
			if !visited[dest] {
				visited[dest] = true
				queue = append(queue, dest)
			}
		}
	}
	return CheckResult{Name: "reachable-doors-non-empty", Satisfied: true, Details: fmt.Sprintf("%d rooms checked", len(visited))}
}

// checkDefinedRoomsConsistent verifies definedRooms[i] == B for every
// bound room B with singleton potential {i}.
func checkDefinedRoomsConsistent(g *roomgraph.Graph) CheckResult {
	for _, h := range g.AllRooms() {
		i, ok := g.Bound(h)
		if !ok {
			continue
		}
		defined, ok := g.DefinedRoom(i)
		if !ok || defined != g.Resolve(h) {
			return CheckResult{
				Name:      "defined-rooms-consistent",
				Satisfied: false,
				Details:   fmt.Sprintf("room %d is bound to identity %d but definedRooms[%d] does not point back at it", h, i, i),
			}
		}
	}
	return CheckResult{Name: "defined-rooms-consistent", Satisfied: true, Details: "every bound room matches its definedRooms slot"}
}

// checkPairReciprocity verifies that every paired door's partner points
// exactly back at it.
func checkPairReciprocity(g *roomgraph.Graph) CheckResult {
	for _, h := range g.AllRooms() {
		for d := 0; d < 6; d++ {
			door := g.Door(h, d)
			if !door.Paired() {
				continue
			}
			partner := g.Door(door.PairRoom, door.PairDoor)
			if !partner.Paired() || g.Resolve(partner.PairRoom) != g.Resolve(h) || partner.PairDoor != d {
				return CheckResult{
					Name:      "pair-reciprocity",
					Satisfied: false,
					Details:   fmt.Sprintf("room %d door %d pairs to (%d,%d) but that door does not pair back", h, d, door.PairRoom, door.PairDoor),
				}
			}
		}
	}
	return CheckResult{Name: "pair-reciprocity", Satisfied: true, Details: "every paired door's partner references it back"}
}

// checkNoSharedSingletons verifies that no two distinct live rooms have
// collapsed to the same singleton potential — the condition
// collapseUntilDeath's fixpoint sweep is supposed to have already
// resolved via merge.
func checkNoSharedSingletons(g *roomgraph.Graph) CheckResult {
	owner := make(map[int]roomgraph.Handle)
	for _, h := range g.AllRooms() {
		i, ok := g.Bound(h)
		if !ok {
			continue
		}
		if prev, exists := owner[i]; exists && prev != h {
			return CheckResult{
				Name:      "no-shared-singletons",
				Satisfied: false,
				Details:   fmt.Sprintf("rooms %d and %d both collapsed to singleton identity %d", prev, h, i),
			}
		}
		owner[i] = h
	}
	return CheckResult{Name: "no-shared-singletons", Satisfied: true, Details: fmt.Sprintf("%d singleton identities, all distinct", len(owner))}
}
