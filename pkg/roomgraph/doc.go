// Package roomgraph implements the exploration graph: an arena-allocated,
// handle-addressed store of TentativeRoom records and their six door
// slots, plus the per-room potential set used to track which hidden-graph
// identities a tentative room could still denote.
//
// The tentative graph is not a cyclic pointer graph of rooms owning doors
// and doors referring back to rooms; it is an arena (Graph.arena) addressed
// by integer Handles. "Merge" — the one place rooms disappear — is
// therefore a handle rewrite plus a tombstone, performed exclusively by
// package compact; this package exposes a small set of privileged mutators
// for that purpose (also used by package guess to patch an unresolved door
// when a run is forced to submit a best-effort guess) and keeps its own
// public mutators (OpenDoor, Pair) conservative.
package roomgraph
