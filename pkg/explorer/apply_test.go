package explorer

import (
	"testing"

	"github.com/mkorrel/libraryrecon/pkg/planwire"
	"github.com/mkorrel/libraryrecon/pkg/roomgraph"
)

func TestApplyRegularObservation_CreatesRoomsAlongAnUnexploredWalk(t *testing.T) {
	g := roomgraph.New(2, 2)
	plan := planwire.FromMoves([]int{0, 1})
	observed := []int{0, 1, 1} // room label 0 at start, then a new room labeled 1 twice

	if err := applyRegularObservation(g, plan, observed); err != nil {
		t.Fatalf("applyRegularObservation failed: %v", err)
	}

	root := g.Root()
	if root == roomgraph.NoHandle {
		t.Fatal("expected root to be created")
	}
	if !g.Door(root, 0).Opened() {
		t.Fatal("expected door 0 of root to be opened")
	}
	mid := g.Resolve(g.Door(root, 0).Dest)
	if g.Get(mid).Label != 1 {
		t.Fatalf("expected intermediate room labeled 1, got %d", g.Get(mid).Label)
	}
	if !g.Door(mid, 1).Opened() {
		t.Fatal("expected door 1 of the intermediate room to be opened")
	}
	final := g.Resolve(g.Door(mid, 1).Dest)
	if g.Get(final).Label != 1 {
		t.Fatalf("expected final room labeled 1, got %d", g.Get(final).Label)
	}
}

func TestApplyRegularObservation_RetracesAnAlreadyOpenedDoor(t *testing.T) {
	g := roomgraph.New(2, 2)
	root := g.EnsureRoot(0)
	r1 := g.CreateRoom(1, []int{0})
	if err := g.OpenDoor(root, 0, r1); err != nil {
		t.Fatal(err)
	}

	plan := planwire.FromMoves([]int{0})
	observed := []int{0, 1}
	if err := applyRegularObservation(g, plan, observed); err != nil {
		t.Fatalf("applyRegularObservation failed: %v", err)
	}
	if g.Resolve(g.Door(root, 0).Dest) != g.Resolve(r1) {
		t.Fatal("expected the walk to retrace the already-opened door rather than create a new room")
	}
}

func TestApplyRegularObservation_RejectsLengthMismatch(t *testing.T) {
	g := roomgraph.New(2, 2)
	plan := planwire.FromMoves([]int{0, 1})
	observed := []int{0, 1} // too short for a 2-move plan
	if err := applyRegularObservation(g, plan, observed); err == nil {
		t.Fatal("expected an error on observation/plan length mismatch")
	}
}
