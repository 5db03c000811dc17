package guess

import (
	"testing"

	"github.com/mkorrel/libraryrecon/pkg/roomgraph"
)

func TestBuildBestEffort_PatchesUnboundIdentitiesAndUnopenedDoors(t *testing.T) {
	g := roomgraph.New(3, 2)
	r0 := g.EnsureRoot(0)
	// r0 is bound to identity 0 but never got any of its doors opened —
	// simulates a run cut off by Budget exhaustion mid-exploration.
	// Identities 1 and 2 never get a room at all.
	g.Get(r0).Potential.Keep(0)
	g.RebindIfSingleton(r0)

	desc, report, err := BuildBestEffort(g)
	if err != nil {
		t.Fatalf("BuildBestEffort failed: %v", err)
	}
	if !report.BestEffort {
		t.Fatal("expected BestEffort to be true")
	}
	if report.UnboundCount != 2 {
		t.Fatalf("expected 2 unbound identities, got %d", report.UnboundCount)
	}
	if report.SelfLoopCount != 6 {
		t.Fatalf("expected 6 self-loop patches on room 0's doors, got %d", report.SelfLoopCount)
	}
	if len(desc.Labels) != 3 {
		t.Fatalf("expected 3 labels, got %d", len(desc.Labels))
	}
	if desc.Labels[1] != 0 || desc.Labels[2] != 0 {
		t.Fatalf("expected placeholder rooms labeled 0, got %+v", desc.Labels)
	}

	// A door paired with itself is one connection with both endpoints equal.
	count := make(map[[2]int]int)
	for _, c := range desc.Connections {
		count[[2]int{c.Room, c.Door}]++
		if c.Room != c.Room2 || c.Door != c.Door2 {
			count[[2]int{c.Room2, c.Door2}]++
		}
	}
	for room := 0; room < 3; room++ {
		for door := 0; door < 6; door++ {
			if n := count[[2]int{room, door}]; n != 1 {
				t.Fatalf("door (%d,%d) covered %d times, want 1", room, door, n)
			}
		}
	}
	// Placeholder rooms are entirely self-looped.
	for _, c := range desc.Connections {
		if c.Room == 1 || c.Room == 2 {
			if c.Room != c.Room2 || c.Door != c.Door2 {
				t.Fatalf("expected placeholder room connection to self-loop, got %+v", c)
			}
		}
	}
}

func TestBuildBestEffort_FullyBoundGraphMatchesBuild(t *testing.T) {
	g, _, _ := buildTwoRoomGraph(t)

	strict, err := Build(g)
	if err != nil {
		t.Fatalf("Build failed: %v", err)
	}

	g2, _, _ := buildTwoRoomGraph(t)
	lenient, report, err := BuildBestEffort(g2)
	if err != nil {
		t.Fatalf("BuildBestEffort failed: %v", err)
	}
	if report.UnboundCount != 0 || report.SelfLoopCount != 0 {
		t.Fatalf("expected no shortcuts on a fully-bound graph, got %+v", report)
	}
	if len(strict.Connections) != len(lenient.Connections) {
		t.Fatalf("expected matching connection counts, got %d vs %d",
			len(strict.Connections), len(lenient.Connections))
	}
}
