package roomgraph

// Graph is the arena-addressed exploration graph. Rooms are never removed
// from the arena; a merge tombstones the retired handle and points it at
// the surviving one, so every Handle a caller is still holding remains
// valid through Resolve.
type Graph struct {
	N     int // total rooms in the hidden graph
	Depth int // k, the distinguishing depth used by isDifferent

	arena []*Room
	root  Handle

	definedRooms []Handle // length N; NoHandle until identity i is bound
}

// New creates an empty graph for a hidden library of n rooms, with
// distinguishing depth k for the compactor's inequality test.
func New(n, k int) *Graph {
	dr := make([]Handle, n)
	for i := range dr {
		dr[i] = NoHandle
	}
	return &Graph{N: n, Depth: k, root: NoHandle, definedRooms: dr}
}

// Resolve follows tombstone rewrites to the surviving handle. Safe to
// call on any handle ever returned by the graph, including ones from
// before a merge.
func (g *Graph) Resolve(h Handle) Handle {
	for {
		if h == NoHandle {
			return NoHandle
		}
		r := g.arena[h]
		if !r.tombstoned {
			return h
		}
		h = r.survivor
	}
}

// Get returns the room a handle resolves to.
func (g *Graph) Get(h Handle) *Room {
	return g.arena[g.Resolve(h)]
}

// CreateRoom allocates a new tentative room with the given observed
// label and canonical path, initializes its potential to {0..N-1} minus
// identities already excluded by the label filter, and attempts
// to bind it immediately if that leaves a singleton.
func (g *Graph) CreateRoom(label int, path []int) Handle {
	r := newRoom(label, path, g.N)
	h := Handle(len(g.arena))
	g.arena = append(g.arena, r)

	for i, dh := range g.definedRooms {
		if dh == NoHandle {
			continue
		}
		if g.Get(dh).Label != label {
			r.Potential.Remove(i)
		}
	}
	g.tryBind(h)
	return h
}

// EnsureRoot creates the root room on first call (using the label
// observed at plan position 0), binding it to identity 0, and is a no-op
// afterward.
func (g *Graph) EnsureRoot(label int) Handle {
	if g.root == NoHandle {
		g.root = g.CreateRoom(label, nil)
		g.arena[g.root].Potential.Keep(0)
		g.tryBind(g.root)
	}
	return g.root
}

// Root returns the root handle, or NoHandle if no observation has been
// applied yet.
func (g *Graph) Root() Handle {
	return g.Resolve(g.root)
}

// Door returns a copy of room h's door slot d.
func (g *Graph) Door(h Handle, d int) Door {
	return g.Get(h).Doors[d]
}

// OpenDoor sets the destination of door d on room h to dest. Idempotent
// if already set to (a tombstone-equivalent of) dest. Returns
// InconsistentOpenError if already set to a structurally incompatible
// room — callers in the regular exploration loop only ever call this on
// doors observed to be unopened, so in practice this guards against
// engine bugs rather than arising from legitimate ambiguity, which is
// resolved by the compactor's own privileged mutators instead.
func (g *Graph) OpenDoor(h Handle, d int, dest Handle) error {
	h = g.Resolve(h)
	dest = g.Resolve(dest)
	room := g.arena[h]
	door := &room.Doors[d]

	if !door.Opened() {
		door.Dest = dest
		return nil
	}
	if g.Resolve(door.Dest) == dest {
		return nil
	}
	return &InconsistentOpenError{Room: h, Door: d, Want: dest, Have: g.Resolve(door.Dest)}
}

// Pair closes the bond between (h, d) and (h2, d2). Fails with
// PairConflictError if either endpoint is already paired to something
// else.
func (g *Graph) Pair(h Handle, d int, h2 Handle, d2 int) error {
	h = g.Resolve(h)
	h2 = g.Resolve(h2)
	a := &g.arena[h].Doors[d]
	b := &g.arena[h2].Doors[d2]

	if a.Paired() && !(g.Resolve(a.PairRoom) == h2 && a.PairDoor == d2) {
		return &PairConflictError{Room: h, Door: d}
	}
	if b.Paired() && !(g.Resolve(b.PairRoom) == h && b.PairDoor == d) {
		return &PairConflictError{Room: h2, Door: d2}
	}
	a.PairRoom, a.PairDoor = h2, d2
	b.PairRoom, b.PairDoor = h, d
	return nil
}

// DefinedRoom returns the room bound to identity i, if any.
func (g *Graph) DefinedRoom(i int) (Handle, bool) {
	h := g.definedRooms[i]
	if h == NoHandle {
		return NoHandle, false
	}
	return g.Resolve(h), true
}

// Bound returns the identity room h is bound to, if its potential has
// collapsed to a singleton.
func (g *Graph) Bound(h Handle) (int, bool) {
	return g.Get(h).Potential.Singleton()
}

// UnboundedRooms returns the handles of every room (in arena order, which
// is creation order) whose potential has more than one candidate.
func (g *Graph) UnboundedRooms() []Handle {
	var out []Handle
	for h, r := range g.arena {
		if r.tombstoned {
			continue
		}
		if r.Potential.Count() > 1 {
			out = append(out, Handle(h))
		}
	}
	return out
}

// AllRooms returns the handles of every live (non-tombstoned) room in
// arena order.
func (g *Graph) AllRooms() []Handle {
	var out []Handle
	for h, r := range g.arena {
		if !r.tombstoned {
			out = append(out, Handle(h))
		}
	}
	return out
}

// tryBind registers h in definedRooms if its potential has just become a
// singleton and that identity slot is still free. If the slot is already
// taken by a different room, the compactor's collapseUntilDeath sweep is
// responsible for noticing the two singleton potentials agree and
// scheduling a merge; tryBind itself never overwrites an existing
// binding.
func (g *Graph) tryBind(h Handle) {
	r := g.arena[h]
	i, ok := r.Potential.Singleton()
	if !ok {
		return
	}
	if g.definedRooms[i] == NoHandle {
		g.definedRooms[i] = h
	}
}

// RebindIfSingleton re-runs tryBind for h; exported for callers (the
// potential-set narrowing operations, and the compactor) that have just
// shrunk h's potential and need the binding table refreshed.
func (g *Graph) RebindIfSingleton(h Handle) {
	g.tryBind(g.Resolve(h))
}

// --- privileged mutators, for use by package compact and package guess ---

// SetDoorDest force-sets a door's destination, bypassing the consistency
// guard in OpenDoor. Used by the merge protocol to propagate an opened
// destination from one side of a merge to the other.
func (g *Graph) SetDoorDest(h Handle, d int, dest Handle) {
	g.arena[g.Resolve(h)].Doors[d].Dest = g.Resolve(dest)
}

// SetPairUnchecked force-sets a pair reference without the conflict
// guard in Pair. Used by the merge protocol once it has already decided
// which side's pair reference survives, and by
// guess.BuildBestEffort to patch an unresolved door with a self-loop
// placeholder when Budget exhaustion forces a partial guess.
func (g *Graph) SetPairUnchecked(h Handle, d int, pairRoom Handle, pairDoor int) {
	door := &g.arena[g.Resolve(h)].Doors[d]
	door.PairRoom, door.PairDoor = g.Resolve(pairRoom), pairDoor
}

// Tombstone marks dead as merged into survivor. Every subsequent
// Resolve(dead) returns Resolve(survivor). Used by the merge protocol once
// it has decided which room absorbs the other.
func (g *Graph) Tombstone(dead, survivor Handle) {
	r := g.arena[dead]
	r.tombstoned = true
	r.survivor = survivor
}

// RebindDefined force-rewrites definedRooms[i] to h. Used by the merge
// protocol when the surviving room's identity changes which handle
// definedRooms should point at.
func (g *Graph) RebindDefined(i int, h Handle) {
	g.definedRooms[i] = g.Resolve(h)
}

// SetPath overwrites a room's canonical path. Used by the merge protocol
// and by UpdateAllPaths.
func (g *Graph) SetPath(h Handle, path []int) {
	g.arena[g.Resolve(h)].Path = append([]int(nil), path...)
}
