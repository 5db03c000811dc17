package explorer

import (
	"sort"

	"github.com/mkorrel/libraryrecon/pkg/ping"
	"github.com/mkorrel/libraryrecon/pkg/planwire"
	"github.com/mkorrel/libraryrecon/pkg/roomgraph"
	"github.com/mkorrel/libraryrecon/pkg/walk"
)

// batch is one iteration's query source output: the plans to submit, and,
// for ping plans only, the side-table ApplyOutcome needs once the oracle
// replies.
type batch struct {
	source  string
	plans   []planwire.Plan
	queries []*ping.Query // nil entries for non-ping plans; len == len(plans) when non-nil
}

func (b batch) empty() bool { return len(b.plans) == 0 }

// pingBatch is query-source cascade step (a): enumerate (bound, candidate)
// pairs and build a ping plan for each.
func (e *Engine) pingBatch() batch {
	candidates := ping.FindCandidates(e.g, e.params.PingBatchSize)
	if len(candidates) == 0 {
		return batch{source: "ping"}
	}

	var plans []planwire.Plan
	var queries []*ping.Query
	for _, c := range candidates {
		plan, q, err := ping.BuildPlan(e.g, e.rng, c, e.budget())
		if err != nil {
			continue
		}
		plans = append(plans, plan)
		queries = append(queries, q)
	}
	return batch{source: "ping", plans: plans, queries: queries}
}

// pingFollowupBatch is cascade step (b): each room charcoaled (primary or
// opportunistic marker) in the last ping batch gets its lowest-numbered
// unopened door probed by a templated plan, up to RegularTemplateCount
// plans, same as the regular stage but sourced from the ping side-tables
// rather than a blanket sweep of every known room.
func (e *Engine) pingFollowupBatch() batch {
	if len(e.recentCharcoalRooms) == 0 {
		return batch{source: "ping-followup"}
	}

	var plans []planwire.Plan
	for _, h := range e.recentCharcoalRooms {
		if len(plans) >= e.params.RegularTemplateCount {
			break
		}
		h = e.g.Resolve(h)
		door, ok := firstUnopenedDoor(e.g, h)
		if !ok {
			continue
		}
		prefix, err := e.g.PathTo(h)
		if err != nil {
			continue
		}
		plans = append(plans, planwire.FromMoves(walk.Templated(e.rng, prefix, door, e.budget())))
	}
	return batch{source: "ping-followup", plans: plans}
}

// regularBatch is cascade step (c): for each known room with an unopened
// door, walk to it and probe one such door, up to RegularTemplateCount
// plans this iteration.
func (e *Engine) regularBatch() batch {
	rooms := roomsByCanonicalOrder(e.g, e.g.AllRooms())

	var plans []planwire.Plan
	for _, h := range rooms {
		if len(plans) >= e.params.RegularTemplateCount {
			break
		}
		door, ok := firstUnopenedDoor(e.g, h)
		if !ok {
			continue
		}
		prefix, err := e.g.PathTo(h)
		if err != nil {
			continue
		}
		plans = append(plans, planwire.FromMoves(walk.Templated(e.rng, prefix, door, e.budget())))
	}
	return batch{source: "regular", plans: plans}
}

// fancyBatch is cascade step (d): the FancyTake rooms with the smallest
// potential (ties broken by shortest canonical path) each get one random
// unopened door probed.
func (e *Engine) fancyBatch() batch {
	if e.params.FancyTake == 0 {
		return batch{source: "fancy"}
	}

	candidates := roomsByCanonicalOrder(e.g, e.g.UnboundedRooms())
	sort.SliceStable(candidates, func(i, j int) bool {
		return e.g.Get(candidates[i]).Potential.Count() < e.g.Get(candidates[j]).Potential.Count()
	})
	if len(candidates) > e.params.FancyTake {
		candidates = candidates[:e.params.FancyTake]
	}

	var plans []planwire.Plan
	for _, h := range candidates {
		var unopened []int
		for d := 0; d < 6; d++ {
			if !e.g.Door(h, d).Opened() {
				unopened = append(unopened, d)
			}
		}
		if len(unopened) == 0 {
			continue
		}
		door := unopened[e.rng.Intn(len(unopened))]
		prefix, err := e.g.PathTo(h)
		if err != nil {
			continue
		}
		plans = append(plans, planwire.FromMoves(walk.Templated(e.rng, prefix, door, e.budget())))
	}
	return batch{source: "fancy", plans: plans}
}

// randomBatch is cascade step (e), the fallback that always produces a
// plan so the loop never stalls: one plan of pure uniform random moves.
func (e *Engine) randomBatch() batch {
	plan := planwire.FromMoves(walk.RandomFill(e.rng, e.budget()))
	return batch{source: "random", plans: []planwire.Plan{plan}}
}

// firstUnopenedDoor returns the lowest-id unopened door of h, if any.
func firstUnopenedDoor(g *roomgraph.Graph, h roomgraph.Handle) (int, bool) {
	for d := 0; d < 6; d++ {
		if !g.Door(h, d).Opened() {
			return d, true
		}
	}
	return 0, false
}

// roomsByCanonicalOrder sorts handles by (path length, path lexicographic),
// the deterministic tie-break used everywhere canonical room ordering
// matters; refreshing canonical paths first is the caller's responsibility
// (the loop always calls updateAllPaths before building a batch).
func roomsByCanonicalOrder(g *roomgraph.Graph, handles []roomgraph.Handle) []roomgraph.Handle {
	out := append([]roomgraph.Handle(nil), handles...)
	sort.SliceStable(out, func(i, j int) bool {
		pi, pj := g.Get(out[i]).Path, g.Get(out[j]).Path
		if len(pi) != len(pj) {
			return len(pi) < len(pj)
		}
		for k := range pi {
			if pi[k] != pj[k] {
				return pi[k] < pj[k]
			}
		}
		return false
	})
	return out
}
