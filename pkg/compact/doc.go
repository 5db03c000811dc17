// Package compact implements the Compactor: the structural inequality
// test isDifferent, the merge(A, B) protocol, and the collapseUntilDeath
// fixpoint sweep. Compaction is the only place tentative rooms disappear
// or identities harden — it is the only caller of package roomgraph's
// Tombstone and RebindDefined, and the main caller of its other
// privileged, unchecked mutators (SetDoorDest, also used by the
// exploration loop to redirect a door to a merge survivor, and
// SetPairUnchecked, also used by guess.BuildBestEffort).
package compact
