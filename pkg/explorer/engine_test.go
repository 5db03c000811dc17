package explorer

import (
	"context"
	"errors"
	"testing"

	"github.com/mkorrel/libraryrecon/pkg/engineerr"
	"github.com/mkorrel/libraryrecon/pkg/invariants"
	"github.com/mkorrel/libraryrecon/pkg/oracle"
	"github.com/mkorrel/libraryrecon/pkg/runconfig"
	"github.com/mkorrel/libraryrecon/pkg/walk"
)

func testParams() runconfig.RunParams {
	p := runconfig.DefaultRunParams()
	p.MasterSeed = 42
	return p
}

func runAndGuess(t *testing.T, n int, fx *oracle.Fixture) (oracle.MapDescription, Stats) {
	t.Helper()
	e := NewEngine(n, fx, testParams())
	desc, stats, err := e.Run(context.Background())
	if err != nil {
		t.Fatalf("Run failed: %v", err)
	}
	report := invariants.CheckAll(e.Graph())
	if !report.Passed {
		t.Fatalf("invariants failed after termination:\n%s", report.Summary())
	}
	result, err := fx.Guess(context.Background(), desc)
	if err != nil {
		t.Fatalf("Guess failed: %v", err)
	}
	if !result.Correct {
		t.Fatalf("guess rejected for %s", t.Name())
	}
	return desc, stats
}

func TestExplorer_TwoRoomsSingle(t *testing.T) {
	labels := []int{0, 1}
	b := make([][6][2]int, 2)
	b[0][0] = [2]int{1, 3}
	for d := 1; d <= 5; d++ {
		b[0][d] = [2]int{0, d}
	}
	b[1][3] = [2]int{0, 0}
	for _, d := range []int{0, 1, 2, 4, 5} {
		b[1][d] = [2]int{1, d}
	}
	fx, err := oracle.NewFixtureFromBonds(labels, b, 0)
	if err != nil {
		t.Fatalf("building fixture: %v", err)
	}
	_, stats := runAndGuess(t, 2, fx)
	if stats.Iterations > 3 {
		t.Fatalf("expected termination within 3 iterations, took %d", stats.Iterations)
	}
}

func TestExplorer_TwoRoomsFull(t *testing.T) {
	labels := []int{0, 1}
	b := make([][6][2]int, 2)
	for d := 0; d < 6; d++ {
		b[0][d] = [2]int{1, d}
		b[1][d] = [2]int{0, d}
	}
	fx, err := oracle.NewFixtureFromBonds(labels, b, 0)
	if err != nil {
		t.Fatalf("building fixture: %v", err)
	}
	_, stats := runAndGuess(t, 2, fx)
	if stats.Iterations > 2 {
		t.Fatalf("expected termination within 2 iterations, took %d", stats.Iterations)
	}
}

func TestExplorer_ThreeRoomsFiveLoops(t *testing.T) {
	labels := []int{0, 1, 2}
	b := make([][6][2]int, 3)
	for d := 0; d <= 3; d++ {
		b[0][d] = [2]int{0, d}
	}
	b[0][4] = [2]int{1, 4}
	b[0][5] = [2]int{2, 5}
	for _, d := range []int{0, 1, 2, 3, 5} {
		b[1][d] = [2]int{1, d}
	}
	b[1][4] = [2]int{0, 4}
	for d := 0; d <= 4; d++ {
		b[2][d] = [2]int{2, d}
	}
	b[2][5] = [2]int{0, 5}
	fx, err := oracle.NewFixtureFromBonds(labels, b, 0)
	if err != nil {
		t.Fatalf("building fixture: %v", err)
	}
	runAndGuess(t, 3, fx)
}

func TestExplorer_SixRoomsCircular(t *testing.T) {
	labels := []int{0, 1, 2, 3, 0, 1}
	b := make([][6][2]int, 6)
	for i := 0; i < 6; i++ {
		b[i][0] = [2]int{(i + 1) % 6, 1}
		b[i][1] = [2]int{(i + 5) % 6, 0}
		for d := 2; d <= 5; d++ {
			b[i][d] = [2]int{i, d}
		}
	}
	fx, err := oracle.NewFixtureFromBonds(labels, b, 0)
	if err != nil {
		t.Fatalf("building fixture: %v", err)
	}
	runAndGuess(t, 6, fx)
}

func TestExplorer_BudgetExhaustionStillProducesAGuess(t *testing.T) {
	labels := []int{0, 1}
	b := make([][6][2]int, 2)
	for d := 0; d < 6; d++ {
		b[0][d] = [2]int{1, d}
		b[1][d] = [2]int{0, d}
	}
	fx, err := oracle.NewFixtureFromBonds(labels, b, 0)
	if err != nil {
		t.Fatalf("building fixture: %v", err)
	}

	params := testParams()
	params.HardIterationLimit = 1
	e := NewEngine(2, fx, params)
	desc, _, err := e.Run(context.Background())
	if err == nil {
		// A single iteration happens to be enough for this tiny graph; that's
		// fine, just confirm the guess itself is still sound.
		return
	}
	var budgetErr *engineerr.BudgetError
	if !errors.As(err, &budgetErr) {
		t.Fatalf("expected *engineerr.BudgetError, got %T: %v", err, err)
	}
	if len(desc.Labels) != 2 {
		t.Fatalf("expected a 2-room best-effort guess, got %d labels", len(desc.Labels))
	}
}

func TestExplorer_SixtyRoomsFullyInterconnectedStress(t *testing.T) {
	const n = 60
	rng := walk.NewRNG(99, "stress-fixture", nil)
	fx, err := oracle.FromRandomGraph(n, rng)
	if err != nil {
		t.Fatalf("building random fixture: %v", err)
	}

	e := NewEngine(n, fx, testParams())
	desc, stats, err := e.Run(context.Background())

	var budgetErr *engineerr.BudgetError
	switch {
	case err == nil:
		report := invariants.CheckAll(e.Graph())
		if !report.Passed {
			t.Fatalf("invariants failed after termination:\n%s", report.Summary())
		}
		result, guessErr := fx.Guess(context.Background(), desc)
		if guessErr != nil {
			t.Fatalf("Guess failed: %v", guessErr)
		}
		if !result.Correct {
			t.Fatal("expected a correct guess on normal termination")
		}
	case errors.As(err, &budgetErr):
		if !budgetErr.BestEffort {
			t.Fatalf("budget exhausted with no best-effort guess available at all (%d iterations)", budgetErr.Iterations)
		}
		if len(desc.Labels) != n {
			t.Fatalf("expected a complete %d-room best-effort guess, got %d labels", n, len(desc.Labels))
		}
	default:
		t.Fatalf("unexpected error: %v", err)
	}

	t.Logf("stress run: %d iterations, %d queries, %d ping queries", stats.Iterations, stats.QueriesSent, stats.PingQueries)
}
