package roomgraph

// Potential is the per-room candidate set: the subset of {0..N-1} a
// tentative room could still denote. A room is bound once its potential
// collapses to a single identity.
type Potential struct {
	present []bool
	count   int
}

// newPotential returns the full potential set {0..n-1}.
func newPotential(n int) *Potential {
	p := &Potential{present: make([]bool, n), count: n}
	for i := range p.present {
		p.present[i] = true
	}
	return p
}

// Contains reports whether identity i is still a candidate.
func (p *Potential) Contains(i int) bool {
	return i >= 0 && i < len(p.present) && p.present[i]
}

// Remove excludes i from the set. Returns true if i was present.
func (p *Potential) Remove(i int) bool {
	if !p.Contains(i) {
		return false
	}
	p.present[i] = false
	p.count--
	return true
}

// Count returns the number of remaining candidate identities.
func (p *Potential) Count() int {
	return p.count
}

// IsEmpty reports whether the set has been narrowed to nothing, which
// signals a contradiction in the caller.
func (p *Potential) IsEmpty() bool {
	return p.count == 0
}

// Singleton returns the sole remaining identity and true iff the room is
// bound (|potential| == 1).
func (p *Potential) Singleton() (int, bool) {
	if p.count != 1 {
		return 0, false
	}
	for i, ok := range p.present {
		if ok {
			return i, true
		}
	}
	return 0, false
}

// IntersectWith narrows the receiver to the intersection with other,
// implementing ping confirmation and the potential' = A ∩ B step of the
// merge protocol.
func (p *Potential) IntersectWith(other *Potential) {
	for i, ok := range p.present {
		if ok && (i >= len(other.present) || !other.present[i]) {
			p.present[i] = false
			p.count--
		}
	}
}

// Each calls fn once for every identity still in the set, in ascending
// order.
func (p *Potential) Each(fn func(i int)) {
	for i, ok := range p.present {
		if ok {
			fn(i)
		}
	}
}

// Keep narrows the set to exactly {i}, used by cardinality collapse once
// the single remaining free identity has been identified.
func (p *Potential) Keep(i int) {
	for j, ok := range p.present {
		if ok && j != i {
			p.present[j] = false
			p.count--
		}
	}
}

// Clone returns an independent copy.
func (p *Potential) Clone() *Potential {
	present := make([]bool, len(p.present))
	copy(present, p.present)
	return &Potential{present: present, count: p.count}
}

// Equal reports whether two potential sets contain exactly the same
// identities.
func (p *Potential) Equal(other *Potential) bool {
	if p.count != other.count || len(p.present) != len(other.present) {
		return false
	}
	for i, ok := range p.present {
		if ok != other.present[i] {
			return false
		}
	}
	return true
}
