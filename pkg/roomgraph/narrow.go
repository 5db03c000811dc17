package roomgraph

// LabelFilter applies the label filter to R's potential set: remove
// candidate i if the room already bound to i has a different label than
// R. Structural and ping-based narrowing are owned by packages compact and
// ping respectively, since they need knowledge (isDifferent, ping
// outcomes) this package doesn't have; this method only ever needs the
// label already recorded on each Room.
func (g *Graph) LabelFilter(h Handle) {
	h = g.Resolve(h)
	r := g.arena[h]
	if _, bound := r.Potential.Singleton(); bound {
		return
	}
	var toRemove []int
	r.Potential.Each(func(i int) {
		if dh, ok := g.DefinedRoom(i); ok && g.arena[dh].Label != r.Label {
			toRemove = append(toRemove, i)
		}
	})
	for _, i := range toRemove {
		r.Potential.Remove(i)
	}
	g.tryBind(h)
}

// CardinalityCollapse implements the cardinality-collapse narrowing rule:
// if exactly one identity in R's potential is not yet
// bound to any room at all, R must be that remaining free identity —
// every other identity in its potential is already the proven identity
// of some other room, and the library has none left to spare. Returns
// true if this bound the room.
//
// An identity already bound to some *other* room is not by itself
// excluded from R's potential here: until isDifferent (owned by package
// compact) disproves it, or the two rooms are merged, R could still turn
// out to be that same room. Cardinality collapse only fires once the
// library's supply of untouched identities has narrowed to a single
// candidate — treating "claimed elsewhere" as exclusion on its own would
// make two rooms that are both legitimate candidates for the same
// identity race to bind onto different things prematurely.
func (g *Graph) CardinalityCollapse(h Handle) bool {
	h = g.Resolve(h)
	r := g.arena[h]
	if r.Potential.Count() == 1 {
		return false
	}

	var free []int
	r.Potential.Each(func(i int) {
		if g.definedRooms[i] == NoHandle {
			free = append(free, i)
		}
	})
	if len(free) != 1 {
		return false
	}

	r.Potential.Keep(free[0])
	g.tryBind(h)
	return true
}
