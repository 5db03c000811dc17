package oracle

import "context"

// Oracle is the three-operation interface the exploration engine drives:
// select an instance, explore it in batches, and submit one final guess.
// Implementations are request/response and must not assume idempotency — a
// caller that retries a failed call may cause it to be executed more than
// once server-side.
type Oracle interface {
	// Select binds the run to a named problem instance.
	Select(ctx context.Context, name string) (SelectResult, error)

	// Explore submits a batch of plans (already wire-encoded) and returns
	// one observation per plan, in the same order.
	Explore(ctx context.Context, plans []string) (ExploreResult, error)

	// Guess submits a completed MapDescription. Exactly one successful
	// guess per instance is expected; callers should not rely on the
	// outcome of any guess after the first.
	Guess(ctx context.Context, guess MapDescription) (GuessResult, error)
}

// SelectResult confirms which instance the run is now bound to.
type SelectResult struct {
	Name string
}

// ExploreResult carries one label sequence per submitted plan, plus the
// oracle's running count of queries issued this instance (diagnostic only;
// not used for budget enforcement, which is purely iteration-count based).
type ExploreResult struct {
	PerPlanLabels [][]int
	QueryCount    int
}

// GuessResult reports whether the submitted MapDescription matched the
// hidden graph.
type GuessResult struct {
	Correct bool
}

// MapDescription is the wire form of a completed guess.
type MapDescription struct {
	Labels       []int
	StartingRoom int
	Connections  []Connection
}

// Connection is one unordered door-to-door bond. Self-loops are legal (Room
// == Room2, possibly with Door == Door2).
type Connection struct {
	Room  int
	Door  int
	Room2 int
	Door2 int
}
