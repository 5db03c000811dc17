package guess

import (
	"sort"

	"github.com/mkorrel/libraryrecon/pkg/oracle"
	"github.com/mkorrel/libraryrecon/pkg/roomgraph"
)

// Build runs pair closure and assembles the wire-ready MapDescription:
// canonical indices 0..N-1 assigned to bound rooms in ascending order of
// identity (index 0 is always the identity bound to root, which is
// identity 0 by construction — EnsureRoot binds the root to identity 0
// when it creates it), each door emitted exactly once as an
// unordered connection.
func Build(g *roomgraph.Graph) (oracle.MapDescription, error) {
	bound := make([]roomgraph.Handle, g.N)
	boundCount := 0
	for i := 0; i < g.N; i++ {
		h, ok := g.DefinedRoom(i)
		if !ok {
			continue
		}
		bound[i] = h
		boundCount++
	}
	if boundCount != g.N {
		return oracle.MapDescription{}, &IncompleteError{BoundCount: boundCount, N: g.N}
	}

	if err := ClosePairs(g, bound); err != nil {
		return oracle.MapDescription{}, err
	}

	labels := make([]int, g.N)
	for i, h := range bound {
		labels[i] = g.Get(h).Label
	}

	indexOf := make(map[roomgraph.Handle]int, g.N)
	for i, h := range bound {
		indexOf[g.Resolve(h)] = i
	}

	seen := make(map[[2]int]bool)
	var connections []oracle.Connection
	for i, h := range bound {
		for d := 0; d < 6; d++ {
			door := g.Door(h, d)
			key := [2]int{i, d}
			if seen[key] {
				continue
			}
			partnerIdx := indexOf[g.Resolve(door.PairRoom)]
			partnerKey := [2]int{partnerIdx, door.PairDoor}
			seen[key] = true
			seen[partnerKey] = true
			connections = append(connections, oracle.Connection{
				Room: i, Door: d,
				Room2: partnerIdx, Door2: door.PairDoor,
			})
		}
	}

	sort.Slice(connections, func(a, b int) bool {
		ca, cb := connections[a], connections[b]
		if ca.Room != cb.Room {
			return ca.Room < cb.Room
		}
		return ca.Door < cb.Door
	})

	startIdx := 0 // identity 0 is always bound to root

	return oracle.MapDescription{
		Labels:       labels,
		StartingRoom: startIdx,
		Connections:  connections,
	}, nil
}
