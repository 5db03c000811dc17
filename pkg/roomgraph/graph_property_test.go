package roomgraph

import (
	"testing"

	"pgregory.net/rapid"
)

// TestGraphProperty_ReachableRoomsHaveNonEmptyPotential checks that for
// all tentative rooms reachable from root via opened doors, the potential
// set is never empty.
func TestGraphProperty_ReachableRoomsHaveNonEmptyPotential(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		n := rapid.IntRange(1, 12).Draw(t, "n")
		g := New(n, 2)
		root := g.EnsureRoot(rapid.IntRange(0, 3).Draw(t, "rootLabel"))

		steps := rapid.IntRange(0, 30).Draw(t, "steps")
		cur := root
		for s := 0; s < steps; s++ {
			d := rapid.IntRange(0, 5).Draw(t, "door")
			door := g.Door(cur, d)
			if door.Opened() {
				cur = g.Resolve(door.Dest)
				continue
			}
			label := rapid.IntRange(0, 3).Draw(t, "label")
			next := g.CreateRoom(label, append(append([]int(nil), g.Get(cur).Path...), d))
			if err := g.OpenDoor(cur, d, next); err != nil {
				t.Fatalf("OpenDoor: %v", err)
			}
			cur = next
		}

		for _, h := range g.AllRooms() {
			if g.Get(h).Potential.IsEmpty() {
				t.Fatalf("room %d has an empty potential set", h)
			}
		}
	})
}

// TestGraphProperty_DefinedRoomsAgreeWithBinding checks that for every
// bound room B with identity i, definedRooms[i] == B.
func TestGraphProperty_DefinedRoomsAgreeWithBinding(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		n := rapid.IntRange(1, 8).Draw(t, "n")
		g := New(n, 2)

		roomCount := rapid.IntRange(1, 10).Draw(t, "roomCount")
		for i := 0; i < roomCount; i++ {
			label := rapid.IntRange(0, 3).Draw(t, "label")
			h := g.CreateRoom(label, nil)
			if identity, bound := g.Bound(h); bound {
				got, ok := g.DefinedRoom(identity)
				if !ok || got != h {
					t.Fatalf("room bound to identity %d but definedRooms[%d] = (%d, %v)", identity, identity, got, ok)
				}
			}
		}
	})
}

// TestGraphProperty_PairIsAlwaysSymmetric checks that for all bound rooms
// with a paired door, the partner's pair reference points exactly back.
func TestGraphProperty_PairIsAlwaysSymmetric(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		g := New(4, 2)
		rooms := make([]Handle, 6)
		for i := range rooms {
			rooms[i] = g.CreateRoom(i%4, nil)
		}

		pairs := rapid.IntRange(0, 8).Draw(t, "pairCount")
		for p := 0; p < pairs; p++ {
			r1 := rooms[rapid.IntRange(0, len(rooms)-1).Draw(t, "r1")]
			d1 := rapid.IntRange(0, 5).Draw(t, "d1")
			r2 := rooms[rapid.IntRange(0, len(rooms)-1).Draw(t, "r2")]
			d2 := rapid.IntRange(0, 5).Draw(t, "d2")
			_ = g.Pair(r1, d1, r2, d2) // conflicts are expected and ignored
		}

		for _, h := range rooms {
			for d := 0; d < 6; d++ {
				door := g.Door(h, d)
				if !door.Paired() {
					continue
				}
				partner := g.Door(door.PairRoom, door.PairDoor)
				if partner.PairRoom != h || partner.PairDoor != d {
					t.Fatalf("pair not symmetric: room %d door %d -> (%d,%d) but back-reference is (%d,%d)",
						h, d, door.PairRoom, door.PairDoor, partner.PairRoom, partner.PairDoor)
				}
			}
		}
	})
}
