package ping

import (
	"fmt"

	"github.com/mkorrel/libraryrecon/pkg/roomgraph"
)

// ApplyOutcome interprets the oracle's observation for a ping plan: if the
// label reported at q.DestinationIndex matches the overwrite this plan
// applied to q.Bound, the walk never left B, so R and B are the same room
// and R's potential is intersected with B's (binding it). Otherwise the
// label matches R's own, proving R is not B, and i(B) is removed from R's
// potential.
func ApplyOutcome(g *roomgraph.Graph, q *Query, observed []int) error {
	if q.DestinationIndex >= len(observed) {
		return fmt.Errorf("ping: observation too short: destination index %d, length %d", q.DestinationIndex, len(observed))
	}

	primary := q.Charcoaled[overwriteLabelFor(g, q)]
	if primary == nil {
		return fmt.Errorf("ping: no charcoal recorded for bound room %d", q.Bound)
	}

	if observed[q.DestinationIndex] == primary.NextLabel {
		g.Get(q.Candidate).Potential.IntersectWith(g.Get(q.Bound).Potential)
		g.RebindIfSingleton(q.Candidate)
		return nil
	}

	g.Get(q.Candidate).Potential.Remove(q.Identity)
	g.RebindIfSingleton(q.Candidate)
	return nil
}

func overwriteLabelFor(g *roomgraph.Graph, q *Query) int {
	return (g.Get(q.Bound).Label + 1) % 4
}
