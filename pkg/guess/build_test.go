package guess

import (
	"testing"

	"github.com/mkorrel/libraryrecon/pkg/roomgraph"
)

func TestBuild_RejectsIncompleteBinding(t *testing.T) {
	g := roomgraph.New(2, 2)
	g.EnsureRoot(0)
	// Only identity 0 is bound; identity 1 never got a room.
	_, err := Build(g)
	if err == nil {
		t.Fatal("expected IncompleteError")
	}
	ie, ok := err.(*IncompleteError)
	if !ok {
		t.Fatalf("expected *IncompleteError, got %T", err)
	}
	if ie.BoundCount != 1 || ie.N != 2 {
		t.Fatalf("unexpected counts: %+v", ie)
	}
}

func TestBuild_TwoRoomMap(t *testing.T) {
	g, r0, r1 := buildTwoRoomGraph(t)

	desc, err := Build(g)
	if err != nil {
		t.Fatalf("Build failed: %v", err)
	}

	if desc.StartingRoom != 0 {
		t.Fatalf("expected starting room 0, got %d", desc.StartingRoom)
	}
	if len(desc.Labels) != 2 || desc.Labels[0] != 0 || desc.Labels[1] != 1 {
		t.Fatalf("unexpected labels: %+v", desc.Labels)
	}

	i0, _ := g.Bound(r0)
	i1, _ := g.Bound(r1)
	if i0 != 0 || i1 != 1 {
		t.Fatalf("expected r0/r1 bound to identities 0/1, got %d/%d", i0, i1)
	}

	// Every door of both rooms must appear exactly once across the
	// connection list, whichever endpoint it got emitted from (a door
	// paired with itself is one connection with both endpoints equal).
	count := make(map[[2]int]int)
	for _, c := range desc.Connections {
		count[[2]int{c.Room, c.Door}]++
		if c.Room != c.Room2 || c.Door != c.Door2 {
			count[[2]int{c.Room2, c.Door2}]++
		}
	}
	for room := 0; room < 2; room++ {
		for door := 0; door < 6; door++ {
			if n := count[[2]int{room, door}]; n != 1 {
				t.Fatalf("door (%d,%d) covered %d times, want 1", room, door, n)
			}
		}
	}

	// The cross-room bond (0,0)<->(1,3) must show up somewhere.
	found := false
	for _, c := range desc.Connections {
		if (c.Room == 0 && c.Door == 0 && c.Room2 == 1 && c.Door2 == 3) ||
			(c.Room == 1 && c.Door == 3 && c.Room2 == 0 && c.Door2 == 0) {
			found = true
		}
	}
	if !found {
		t.Fatal("expected the cross-room bond (0,0)<->(1,3) in the connection list")
	}
}

func TestBuild_ConnectionsSortedByRoomThenDoor(t *testing.T) {
	g, _, _ := buildTwoRoomGraph(t)

	desc, err := Build(g)
	if err != nil {
		t.Fatalf("Build failed: %v", err)
	}
	for i := 1; i < len(desc.Connections); i++ {
		a, b := desc.Connections[i-1], desc.Connections[i]
		if a.Room > b.Room || (a.Room == b.Room && a.Door > b.Door) {
			t.Fatalf("connections not sorted: %+v then %+v", a, b)
		}
	}
}
