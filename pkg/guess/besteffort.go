package guess

import (
	"sort"

	"github.com/mkorrel/libraryrecon/pkg/oracle"
	"github.com/mkorrel/libraryrecon/pkg/roomgraph"
)

// BuildReport accompanies a best-effort guess, flagging whether Budget
// exhaustion forced any shortcuts.
type BuildReport struct {
	BestEffort    bool
	UnboundCount  int // identities with no bound room at all
	SelfLoopCount int // doors left unresolved and self-looped as a placeholder
}

// BuildBestEffort relaxes GuessBuilder's pair-closure step for use when the
// hard iteration limit is reached before every identity is bound: any
// identity still unbound is emitted as an isolated placeholder room
// (label 0, every door self-looped), and any bound room's door that can't
// find a unique reciprocal is self-looped rather than raising
// InfeasibleError. The returned BuildReport always has BestEffort true so
// callers can log that the guess is a fallback, not a confirmed solution.
func BuildBestEffort(g *roomgraph.Graph) (oracle.MapDescription, BuildReport, error) {
	bound := make([]roomgraph.Handle, g.N)
	report := BuildReport{BestEffort: true}
	for i := 0; i < g.N; i++ {
		h, ok := g.DefinedRoom(i)
		if !ok {
			report.UnboundCount++
			bound[i] = roomgraph.NoHandle
			continue
		}
		bound[i] = h
	}

	report.SelfLoopCount = closePairsBestEffort(g, bound)

	labels := make([]int, g.N)
	for i, h := range bound {
		if h == roomgraph.NoHandle {
			labels[i] = 0
			continue
		}
		labels[i] = g.Get(h).Label
	}

	indexOf := make(map[roomgraph.Handle]int, g.N)
	for i, h := range bound {
		if h != roomgraph.NoHandle {
			indexOf[g.Resolve(h)] = i
		}
	}

	seen := make(map[[2]int]bool)
	var connections []oracle.Connection
	for i, h := range bound {
		if h == roomgraph.NoHandle {
			for d := 0; d < 6; d++ {
				connections = append(connections, oracle.Connection{Room: i, Door: d, Room2: i, Door2: d})
			}
			continue
		}
		for d := 0; d < 6; d++ {
			key := [2]int{i, d}
			if seen[key] {
				continue
			}
			door := g.Door(h, d)
			partnerIdx := i
			partnerDoor := d
			if door.Paired() {
				partnerIdx = indexOf[g.Resolve(door.PairRoom)]
				partnerDoor = door.PairDoor
			}
			partnerKey := [2]int{partnerIdx, partnerDoor}
			seen[key] = true
			seen[partnerKey] = true
			connections = append(connections, oracle.Connection{
				Room: i, Door: d,
				Room2: partnerIdx, Door2: partnerDoor,
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

	return oracle.MapDescription{Labels: labels, StartingRoom: 0, Connections: connections}, report, nil
}

// closePairsBestEffort behaves like ClosePairs but self-loops any door that
// can't find a unique, unambiguous reciprocal instead of failing, returning
// how many doors it had to patch this way.
func closePairsBestEffort(g *roomgraph.Graph, bound []roomgraph.Handle) int {
	patched := 0
	for _, r := range bound {
		if r == roomgraph.NoHandle {
			continue
		}
		for d := 0; d < 6; d++ {
			door := g.Door(r, d)
			if door.Paired() {
				continue
			}
			if !door.Opened() {
				g.SetPairUnchecked(r, d, r, d)
				patched++
				continue
			}
			dest := g.Resolve(door.Dest)
			candidate, ok := findReciprocal(g, dest, r, d)
			if !ok {
				g.SetPairUnchecked(r, d, r, d)
				patched++
				continue
			}
			if err := g.Pair(r, d, dest, candidate); err != nil {
				g.SetPairUnchecked(r, d, r, d)
				patched++
			}
		}
	}
	return patched
}
