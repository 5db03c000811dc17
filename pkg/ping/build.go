package ping

import (
	"github.com/mkorrel/libraryrecon/pkg/planwire"
	"github.com/mkorrel/libraryrecon/pkg/roomgraph"
	"github.com/mkorrel/libraryrecon/pkg/walk"
)

// BuildPlan renders candidate c into a plan of shape πB · [L'] · σB→R,
// opportunistically charcoaling any other bound room the walk happens
// to pass through, then pads with random moves (biased toward opened
// doors) out to budget move tokens. It returns the wire-ready plan and
// the side-table the observation handler needs to read the outcome.
func BuildPlan(g *roomgraph.Graph, rng *walk.RNG, c Candidate, budget int) (planwire.Plan, *Query, error) {
	prefix, err := g.PathTo(c.Bound)
	if err != nil {
		return nil, nil, err
	}

	overwrite := (g.Get(c.Bound).Label + 1) % 4
	q := &Query{
		Charcoaled: map[int]*Charcoal{},
		Bound:      c.Bound,
		Candidate:  c.Candidate,
		Identity:   c.Identity,
	}

	var plan planwire.Plan
	for _, d := range prefix {
		plan = append(plan, planwire.Move(d))
	}

	cursor := g.NewCursor(c.Bound)
	markCharcoal(g, q, cursor.At(), overwrite, len(plan))
	plan = append(plan, planwire.Charcoal(overwrite))

	for _, d := range c.Walk {
		if err := cursor.Move(d); err != nil {
			return nil, nil, err
		}
		plan = append(plan, planwire.Move(d))
		if label, ok := opportunisticCharcoal(g, q, cursor.At(), plan.MoveCount()); ok {
			plan = append(plan, planwire.Charcoal(label))
		}
	}
	q.DestinationIndex = plan.MoveCount()

	for plan.MoveCount() < budget {
		d := nextRandomDoor(g, rng, cursor.At())
		if err := cursor.Move(d); err != nil {
			// The door wasn't open yet; the random-walk extension is
			// only meant to probe existing structure, so stop padding
			// rather than wandering into unexplored territory here.
			break
		}
		plan = append(plan, planwire.Move(d))
		if label, ok := opportunisticCharcoal(g, q, cursor.At(), plan.MoveCount()); ok {
			plan = append(plan, planwire.Charcoal(label))
		}
	}

	return plan, q, nil
}

// markCharcoal records a charcoal application at room h, keyed by the
// overwrite label, provided that label isn't already in use by another
// marker in this same plan and h hasn't already been charcoaled once.
func markCharcoal(g *roomgraph.Graph, q *Query, h roomgraph.Handle, label int, pos int) bool {
	if _, taken := q.Charcoaled[label]; taken {
		return false
	}
	for _, c := range q.Charcoaled {
		if c.Room == h {
			return false
		}
	}
	q.Charcoaled[label] = &Charcoal{Room: h, PrevLabel: g.Get(h).Label, NextLabel: label, ObservedAt: pos}
	return true
}

// opportunisticCharcoal marks a bound room passed en route for a free
// overwrite label, squeezing an extra elimination or confirmation out of
// a walk already paying for the main ping. Unbound rooms and the ping's
// own target/bound rooms (already marked, or not useful to mark twice)
// are skipped. It returns the overwrite label and true when it marked h,
// so the caller can emit the matching charcoal token.
func opportunisticCharcoal(g *roomgraph.Graph, q *Query, h roomgraph.Handle, pos int) (int, bool) {
	if _, bound := g.Bound(h); !bound {
		return 0, false
	}
	for label := 0; label < 4; label++ {
		if label == g.Get(h).Label {
			continue
		}
		if markCharcoal(g, q, h, label, pos) {
			return label, true
		}
	}
	return 0, false
}

// nextRandomDoor draws a door from h, preferring an already-opened one
// when any exist over risking a fresh unopened door.
func nextRandomDoor(g *roomgraph.Graph, rng *walk.RNG, h roomgraph.Handle) int {
	var opened []int
	for d := 0; d < 6; d++ {
		if g.Door(h, d).Opened() {
			opened = append(opened, d)
		}
	}
	if len(opened) > 0 {
		return opened[rng.Intn(len(opened))]
	}
	return rng.Intn(6)
}
