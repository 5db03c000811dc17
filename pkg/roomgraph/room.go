package roomgraph

// Door is one of a room's six slots. It is opened once Dest != NoHandle
// and paired once PairRoom/PairDoor are both set.
type Door struct {
	Dest Handle

	PairRoom Handle
	PairDoor int // -1 when unpaired
}

// Opened reports whether the slot's destination has been observed.
func (d Door) Opened() bool {
	return d.Dest != NoHandle
}

// Paired reports whether the slot's bond has been closed.
func (d Door) Paired() bool {
	return d.PairRoom != NoHandle && d.PairDoor >= 0
}

// Room is a tentative room: an immutable label, a mutable canonical path
// from the root, six door slots, and a potential set. Once merged into
// another room it is tombstoned and Survivor names the replacement.
type Room struct {
	Label int
	Path  []int // canonical door sequence from root; nil only for the root
	Doors [6]Door

	Potential *Potential

	tombstoned bool
	survivor   Handle
}

func newRoom(label int, path []int, n int) *Room {
	r := &Room{
		Label:     label,
		Path:      append([]int(nil), path...),
		Potential: newPotential(n),
	}
	for d := range r.Doors {
		r.Doors[d] = Door{Dest: NoHandle, PairRoom: NoHandle, PairDoor: -1}
	}
	return r
}
