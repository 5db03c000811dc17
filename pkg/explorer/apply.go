package explorer

import (
	"fmt"

	"github.com/mkorrel/libraryrecon/pkg/engineerr"
	"github.com/mkorrel/libraryrecon/pkg/planwire"
	"github.com/mkorrel/libraryrecon/pkg/roomgraph"
)

// applyRegularObservation walks plan token-by-token against the observed
// label sequence: an opened door whose destination has since been merged
// gets redirected to the survivor before moving; an unopened door gets a
// brand-new tentative room created at the observed label, opened, and given
// its canonical path, before moving. Charcoal tokens never appear in a plan
// this function is asked to handle (every cascade stage but ping emits
// move-only plans), so any found here is a caller bug, not a legitimate
// case of the label-rewrite semantics ping plans use.
func applyRegularObservation(g *roomgraph.Graph, plan planwire.Plan, observed []int) error {
	if len(plan.Moves()) != len(plan) {
		return fmt.Errorf("explorer: charcoal token in a non-ping plan")
	}
	if len(observed) != plan.MoveCount()+1 {
		return &engineerr.DecodeError{Detail: fmt.Sprintf("observation length %d does not match plan move count %d", len(observed), plan.MoveCount())}
	}

	cur := g.EnsureRoot(observed[0])
	path := append([]int(nil), g.Get(cur).Path...)

	for pos, tok := range plan {
		d := tok.Value
		door := g.Door(cur, d)

		if door.Opened() {
			dest := g.Resolve(door.Dest)
			if dest != door.Dest {
				g.SetDoorDest(cur, d, dest)
			}
			cur = dest
		} else {
			label := observed[pos+1]
			newPath := append(append([]int(nil), path...), d)
			newRoom := g.CreateRoom(label, newPath)
			if err := g.OpenDoor(cur, d, newRoom); err != nil {
				return err
			}
			cur = newRoom
		}
		path = append(path, d)
	}
	return nil
}
