// Package invariants checks a Graph against its core structural
// invariants: non-empty potential sets on reachable rooms, definedRooms
// consistency, pair-bond reciprocity, and singleton-potential uniqueness.
// It is a post-hoc auditor: the exploration loop consults it only to
// snapshot diagnostics when it has already detected a defect some other
// way, never to drive its own control flow.
package invariants
