package compact

import (
	"fmt"

	"github.com/mkorrel/libraryrecon/pkg/roomgraph"
)

// MergeContradictionError is raised when two tentative rooms scheduled
// for merge have no identity in common: their potential sets, proven
// equal by compaction evidence, intersect to empty.
type MergeContradictionError struct {
	A, B roomgraph.Handle
}

func (e *MergeContradictionError) Error() string {
	return fmt.Sprintf("compact: merge contradiction between rooms %d and %d: potential sets do not intersect", e.A, e.B)
}

// PairConflictError is raised during the merge protocol's bond
// reconciliation step when both sides of a merge hold a pair reference
// on the same door that disagrees, and neither is consistent with its
// partner's own back-reference.
type PairConflictError struct {
	Room roomgraph.Handle
	Door int
}

func (e *PairConflictError) Error() string {
	return fmt.Sprintf("compact: pair conflict merging room %d door %d: neither side's bond is consistent with its partner", e.Room, e.Door)
}
