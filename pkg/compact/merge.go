package compact

import "github.com/mkorrel/libraryrecon/pkg/roomgraph"

type pending struct {
	a, b roomgraph.Handle
}

// Merge merges tentative rooms a and b, and transitively merges any
// further room pairs that propagating opened destinations reveals must
// also be the same room. Pairs are processed FIFO, matching the sweep
// ordering collapseUntilDeath uses.
func Merge(g *roomgraph.Graph, a, b roomgraph.Handle) error {
	queue := []pending{{a, b}}
	for len(queue) > 0 {
		p := queue[0]
		queue = queue[1:]

		more, err := mergeOne(g, p.a, p.b)
		if err != nil {
			return err
		}
		queue = append(queue, more...)
	}
	return nil
}

func mergeOne(g *roomgraph.Graph, a, b roomgraph.Handle) ([]pending, error) {
	a, b = g.Resolve(a), g.Resolve(b)
	if a == b {
		return nil, nil
	}

	// Deterministic, arbitrary choice of which side survives: the lower
	// handle. Handles are assigned in creation order, so this has no
	// bearing on correctness, only on which arena slot is reused.
	survivor, retired := a, b
	if b < a {
		survivor, retired = b, a
	}

	sroom, rroom := g.Get(survivor), g.Get(retired)

	// Step 1: potential' = A ∩ B.
	sroom.Potential.IntersectWith(rroom.Potential)
	if sroom.Potential.IsEmpty() {
		return nil, &MergeContradictionError{A: survivor, B: retired}
	}

	var more []pending

	// Step 2: propagate opened destinations, or schedule a recursive
	// merge when both sides opened the same door to different rooms.
	for d := 0; d < 6; d++ {
		sd, rd := sroom.Doors[d], rroom.Doors[d]
		switch {
		case !sd.Opened() && rd.Opened():
			g.SetDoorDest(survivor, d, rd.Dest)
		case sd.Opened() && rd.Opened():
			sDest, rDest := g.Resolve(sd.Dest), g.Resolve(rd.Dest)
			if sDest != rDest {
				more = append(more, pending{sDest, rDest})
			}
		}
	}

	// Step 3: reconcile pair references.
	for d := 0; d < 6; d++ {
		sd, rd := sroom.Doors[d], rroom.Doors[d]
		switch {
		case !sd.Paired() && rd.Paired():
			adoptPair(g, survivor, d, rd)
		case sd.Paired() && rd.Paired():
			if g.Resolve(sd.PairRoom) == g.Resolve(rd.PairRoom) && sd.PairDoor == rd.PairDoor {
				continue
			}
			sConsistent := backreferenceConsistent(g, sd, retired, survivor, d)
			rConsistent := backreferenceConsistent(g, rd, retired, survivor, d)
			switch {
			case rConsistent && !sConsistent:
				adoptPair(g, survivor, d, rd)
			case sConsistent && !rConsistent:
				// keep the survivor's existing reference; nothing to do.
			default:
				return nil, &PairConflictError{Room: survivor, Door: d}
			}
		}
	}

	// Step 4: rewrite every reference to the retired room. Handle
	// resolution is lazy (Graph.Resolve chases tombstones), so the only
	// bookkeeping table that needs an eager fix-up is definedRooms.
	for _, i := range identitiesBoundTo(g, retired) {
		g.RebindDefined(i, survivor)
	}
	g.Tombstone(retired, survivor)
	g.RebindIfSingleton(survivor)

	// Step 5: canonical path becomes the lexicographically smaller of
	// the two (both already shortest-known at the time of the merge).
	if lexLess(rroom.Path, sroom.Path) {
		g.SetPath(survivor, rroom.Path)
	}

	return more, nil
}

// adoptPair copies rd's pair reference onto the survivor's door d and
// repoints the partner's back-reference at the survivor.
func adoptPair(g *roomgraph.Graph, survivor roomgraph.Handle, d int, rd roomgraph.Door) {
	g.SetPairUnchecked(survivor, d, rd.PairRoom, rd.PairDoor)
	g.SetPairUnchecked(rd.PairRoom, rd.PairDoor, survivor, d)
}

// backreferenceConsistent reports whether pair reference d, pointing at
// (pr, pd), is itself confirmed by (pr, pd)'s own pair reference pointing
// back at the room being merged (either its retired or surviving handle).
func backreferenceConsistent(g *roomgraph.Graph, d roomgraph.Door, retired, survivor roomgraph.Handle, doorID int) bool {
	if !d.Paired() {
		return false
	}
	partner := g.Door(d.PairRoom, d.PairDoor)
	target := g.Resolve(partner.PairRoom)
	return (target == retired || target == survivor) && partner.PairDoor == doorID
}

func identitiesBoundTo(g *roomgraph.Graph, h roomgraph.Handle) []int {
	var out []int
	for i := 0; i < g.N; i++ {
		if dh, ok := g.DefinedRoom(i); ok && dh == h {
			out = append(out, i)
		}
	}
	return out
}

func lexLess(a, b []int) bool {
	if len(a) != len(b) {
		return len(a) < len(b)
	}
	for i := range a {
		if a[i] != b[i] {
			return a[i] < b[i]
		}
	}
	return false
}
