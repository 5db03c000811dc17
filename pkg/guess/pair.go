package guess

import (
	"fmt"

	"github.com/mkorrel/libraryrecon/pkg/roomgraph"
)

// InfeasibleError reports that pair closure failed: a bound room's unset
// door has no unset reciprocal candidate at all on its destination. This is
// a bug signal — every door of a fully-explored, fully-bound room is
// supposed to have one — not a recoverable condition.
type InfeasibleError struct {
	Room roomgraph.Handle
	Door int
}

func (e *InfeasibleError) Error() string {
	return fmt.Sprintf("guess: no unique reciprocal door found closing room %d door %d", e.Room, e.Door)
}

// IncompleteError reports that fewer than N identities are bound yet, so
// Build cannot assemble a complete MapDescription. Distinct from
// InfeasibleError: this isn't a bug, just a caller invoking Build before the
// exploration loop's termination check passed (a caller error;
// BuildBestEffort does not call Build).
type IncompleteError struct {
	BoundCount, N int
}

func (e *IncompleteError) Error() string {
	return fmt.Sprintf("guess: only %d of %d identities are bound", e.BoundCount, e.N)
}

// ClosePairs assigns a pair to every unset door of every bound room. For
// door d of bound room R pointing at destination D, the reciprocal is an
// unset door d' on D whose own destination resolves back to R (see
// findReciprocal for the tie-break policy when more than one candidate is
// structurally indistinguishable).
func ClosePairs(g *roomgraph.Graph, bound []roomgraph.Handle) error {
	for _, r := range bound {
		for d := 0; d < 6; d++ {
			door := g.Door(r, d)
			if door.Paired() {
				continue
			}
			if !door.Opened() {
				return &InfeasibleError{Room: r, Door: d}
			}

			dest := g.Resolve(door.Dest)
			candidate, ok := findReciprocal(g, dest, r, d)
			if !ok {
				return &InfeasibleError{Room: r, Door: d}
			}
			if err := g.Pair(r, d, dest, candidate); err != nil {
				return &InfeasibleError{Room: r, Door: d}
			}
		}
	}
	return nil
}

// findReciprocal returns an unset door on dest whose own destination
// resolves to back, for closing door fromDoor of room back. A distinct
// candidate door is always preferred over fromDoor pairing with itself;
// among distinct candidates (genuinely ambiguous only when dest's doors are
// structurally indistinguishable, e.g. the N=1 six-self-loop boundary case)
// the lowest door id wins, consistent with this engine's ascending-door-id
// tie-break convention everywhere else. fromDoor only pairs with itself
// (dest == back — a door is allowed to bond back to its own room) when no
// distinct candidate exists at all.
func findReciprocal(g *roomgraph.Graph, dest, back roomgraph.Handle, fromDoor int) (int, bool) {
	selfQualifies := false
	for d := 0; d < 6; d++ {
		if dest == back && d == fromDoor {
			selfQualifies = g.Door(dest, d).Opened() && g.Resolve(g.Door(dest, d).Dest) == g.Resolve(back)
			continue
		}
		door := g.Door(dest, d)
		if door.Paired() || !door.Opened() {
			continue
		}
		if g.Resolve(door.Dest) != g.Resolve(back) {
			continue
		}
		return d, true
	}
	if selfQualifies {
		return fromDoor, true
	}
	return -1, false
}
