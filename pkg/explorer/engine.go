package explorer

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/mkorrel/libraryrecon/pkg/compact"
	"github.com/mkorrel/libraryrecon/pkg/enginelog"
	"github.com/mkorrel/libraryrecon/pkg/engineerr"
	"github.com/mkorrel/libraryrecon/pkg/guess"
	"github.com/mkorrel/libraryrecon/pkg/oracle"
	"github.com/mkorrel/libraryrecon/pkg/ping"
	"github.com/mkorrel/libraryrecon/pkg/planwire"
	"github.com/mkorrel/libraryrecon/pkg/roomgraph"
	"github.com/mkorrel/libraryrecon/pkg/runconfig"
	"github.com/mkorrel/libraryrecon/pkg/walk"
)

// Stats tallies per-run bookkeeping, surfaced alongside the final guess for
// logging and for the seed and stress tests to assert on.
type Stats struct {
	Iterations  int
	QueriesSent int
	PingQueries int
}

// Engine drives the exploration loop against one hidden library instance.
// It owns the tentative graph exclusively for the lifetime of a run under a
// single-threaded cooperative scheduling model — the only suspension point
// is the oracle round trip.
type Engine struct {
	g      *roomgraph.Graph
	oracle oracle.Oracle
	rng    *walk.RNG
	params runconfig.RunParams

	recentCharcoalRooms []roomgraph.Handle
	stats               Stats
}

// NewEngine constructs an engine for a hidden library of n rooms.
func NewEngine(n int, oc oracle.Oracle, params runconfig.RunParams) *Engine {
	return &Engine{
		g:      roomgraph.New(n, params.DistinguishingDepth),
		oracle: oc,
		rng:    walk.NewRNG(params.MasterSeed, "explorer", nil),
		params: params,
	}
}

// budget is the move-token ceiling every plan is held to: 18 tokens per
// room in the hidden library.
func (e *Engine) budget() int {
	return 18 * e.g.N
}

// Graph exposes the tentative graph, mainly for tests and invariant audits.
func (e *Engine) Graph() *roomgraph.Graph {
	return e.g
}

// Run drives the exploration loop to termination or Budget exhaustion and
// returns the assembled guess. A non-nil *engineerr.BudgetError return still
// carries a usable MapDescription (best-effort, per guess.BuildBestEffort)
// unless assembling even that failed. A non-nil *engineerr.InconsistencyError
// return carries a Report snapshot of the graph at the moment the defect was
// detected, for a caller to print before aborting.
func (e *Engine) Run(ctx context.Context) (oracle.MapDescription, Stats, error) {
	for {
		select {
		case <-ctx.Done():
			return oracle.MapDescription{}, e.stats, ctx.Err()
		default:
		}

		e.stats.Iterations++
		ctx = enginelog.WithRunFields(ctx, enginelog.RunFields{
			Component: "explorer",
			Iteration: enginelog.Ptr(e.stats.Iterations),
		})

		done, err := e.iterate(ctx)
		if err != nil {
			var inconsistent *engineerr.InconsistencyError
			if errors.As(err, &inconsistent) {
				slog.ErrorContext(ctx, "iteration aborted on an internal inconsistency",
					"kind", inconsistent.Kind, "error", err, "snapshot", inconsistent.Report.Summary())
			} else {
				slog.ErrorContext(ctx, "iteration failed", "error", err)
			}
			return oracle.MapDescription{}, e.stats, err
		}
		if done {
			slog.InfoContext(ctx, "termination check passed", "queries_sent", e.stats.QueriesSent)
			desc, buildErr := guess.Build(e.g)
			if buildErr != nil {
				wrapped := fmt.Errorf("explorer: termination check passed but guess assembly failed: %w", buildErr)
				return oracle.MapDescription{}, e.stats, e.classifyInconsistency(wrapped)
			}
			return desc, e.stats, nil
		}

		if e.stats.Iterations >= e.params.HardIterationLimit {
			slog.WarnContext(ctx, "hard iteration limit reached, falling back to best-effort guess")
			desc, _, buildErr := guess.BuildBestEffort(e.g)
			if buildErr != nil {
				return oracle.MapDescription{}, e.stats, &engineerr.BudgetError{Iterations: e.stats.Iterations, BestEffort: false}
			}
			return desc, e.stats, &engineerr.BudgetError{Iterations: e.stats.Iterations, BestEffort: true}
		}
	}
}

// iterate runs one pass of the query-generation, observation, and
// compaction cycle, reporting whether the termination check passed.
func (e *Engine) iterate(ctx context.Context) (bool, error) {
	e.g.UpdateAllPaths()

	b := e.nextBatch()
	if b.empty() {
		// The random stage always produces a plan, so an empty batch here
		// means every stage returned nothing unexpectedly; treat it as
		// non-progress rather than spinning forever.
		return false, fmt.Errorf("explorer: query-source cascade produced no plans")
	}
	slog.DebugContext(ctx, "submitting batch", "source", b.source, "plan_count", len(b.plans))

	wire := make([]string, len(b.plans))
	for i, p := range b.plans {
		encoded, err := planwire.Encode(p)
		if err != nil {
			return false, &engineerr.DecodeError{Detail: fmt.Sprintf("encoding plan %d before submission", i), Err: err}
		}
		wire[i] = encoded
	}

	result, err := e.oracle.Explore(ctx, wire)
	if err != nil {
		return false, fmt.Errorf("explorer: explore call: %w", err)
	}
	e.stats.QueriesSent += len(wire)
	if len(result.PerPlanLabels) != len(b.plans) {
		return false, &engineerr.DecodeError{Detail: fmt.Sprintf("oracle returned %d observations for %d plans", len(result.PerPlanLabels), len(b.plans))}
	}

	if err := e.applyBatch(b, result.PerPlanLabels); err != nil {
		return false, e.classifyInconsistency(err)
	}

	if err := compact.CollapseUntilDeath(e.g); err != nil {
		return false, e.classifyInconsistency(fmt.Errorf("explorer: compaction: %w", err))
	}

	return e.terminated(), nil
}

// nextBatch runs the query-source cascade, returning the first stage that
// produced at least one plan.
func (e *Engine) nextBatch() batch {
	stages := []func() batch{e.pingBatch, e.pingFollowupBatch, e.regularBatch, e.fancyBatch, e.randomBatch}
	for _, stage := range stages {
		if b := stage(); !b.empty() {
			return b
		}
	}
	return batch{source: "none"}
}

// applyBatch routes each plan in the batch to the ping or regular
// observation handler, and refreshes recentCharcoalRooms from any ping
// queries this iteration charcoaled.
func (e *Engine) applyBatch(b batch, observed [][]int) error {
	var touched []roomgraph.Handle
	for i, plan := range b.plans {
		if b.queries != nil && b.queries[i] != nil {
			q := b.queries[i]
			if err := ping.ApplyOutcome(e.g, q, observed[i]); err != nil {
				return fmt.Errorf("explorer: applying ping outcome: %w", err)
			}
			e.stats.PingQueries++
			for _, c := range q.Charcoaled {
				touched = append(touched, e.g.Resolve(c.Room))
			}
			continue
		}
		if err := applyRegularObservation(e.g, plan, observed[i]); err != nil {
			return fmt.Errorf("explorer: applying observation: %w", err)
		}
	}
	if touched != nil {
		e.recentCharcoalRooms = dedupeHandles(touched)
	} else {
		e.recentCharcoalRooms = nil
	}
	return nil
}

// terminated implements the loop's exit condition: every identity is bound,
// and every door of every bound room either points to another bound room or
// is itself unpaired-but-that's-fine as long as it's not merely tentative —
// i.e. no bound room has a door whose destination is still an unbound
// tentative room.
func (e *Engine) terminated() bool {
	for i := 0; i < e.g.N; i++ {
		if _, ok := e.g.DefinedRoom(i); !ok {
			return false
		}
	}
	for _, h := range e.g.AllRooms() {
		if _, bound := e.g.Bound(h); !bound {
			continue
		}
		for d := 0; d < 6; d++ {
			door := e.g.Door(h, d)
			if !door.Opened() {
				return false
			}
			if _, bound := e.g.Bound(e.g.Resolve(door.Dest)); !bound {
				return false
			}
		}
	}
	return true
}

func dedupeHandles(in []roomgraph.Handle) []roomgraph.Handle {
	seen := make(map[roomgraph.Handle]bool, len(in))
	var out []roomgraph.Handle
	for _, h := range in {
		if seen[h] {
			continue
		}
		seen[h] = true
		out = append(out, h)
	}
	return out
}
