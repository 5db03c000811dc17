package compact

import "github.com/mkorrel/libraryrecon/pkg/roomgraph"

// CollapseUntilDeath runs the compaction sweep to fixpoint: narrow every
// unbounded room's potential against every bound room using the label
// filter and isDifferent, apply cardinality collapse, then merge any two
// tentative rooms reachable from root that share a singleton potential.
// Repeats until a sweep changes nothing.
func CollapseUntilDeath(g *roomgraph.Graph) error {
	for {
		changed := false

		for _, h := range g.UnboundedRooms() {
			g.LabelFilter(h)

			r := g.Get(h)
			for i := 0; i < g.N; i++ {
				if !r.Potential.Contains(i) {
					continue
				}
				bound, ok := g.DefinedRoom(i)
				if !ok || g.Resolve(h) == bound {
					continue
				}
				if IsDifferent(g, h, bound, g.Depth) {
					if r.Potential.Remove(i) {
						changed = true
					}
				}
			}

			if g.CardinalityCollapse(h) {
				changed = true
			}
		}

		merges := scheduledMerges(g)
		for _, p := range merges {
			if err := Merge(g, p.a, p.b); err != nil {
				return err
			}
			changed = true
		}

		if !changed {
			return nil
		}
	}
}

// scheduledMerges walks every room reachable from root via opened doors
// and groups the bound ones by identity; any identity claimed by more
// than one surviving handle is a pair scheduled for merge.
func scheduledMerges(g *roomgraph.Graph) []pending {
	root := g.Root()
	if root == roomgraph.NoHandle {
		return nil
	}

	seen := map[roomgraph.Handle]bool{root: true}
	queue := []roomgraph.Handle{root}
	byIdentity := map[int][]roomgraph.Handle{}

	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]

		r := g.Get(cur)
		if i, ok := r.Potential.Singleton(); ok {
			byIdentity[i] = append(byIdentity[i], cur)
		}
		for d := 0; d < 6; d++ {
			door := r.Doors[d]
			if !door.Opened() {
				continue
			}
			next := g.Resolve(door.Dest)
			if seen[next] {
				continue
			}
			seen[next] = true
			queue = append(queue, next)
		}
	}

	var merges []pending
	for _, handles := range byIdentity {
		for i := 1; i < len(handles); i++ {
			if g.Resolve(handles[0]) != g.Resolve(handles[i]) {
				merges = append(merges, pending{handles[0], handles[i]})
			}
		}
	}
	return merges
}
