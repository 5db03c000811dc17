package roomgraph

// Handle addresses a TentativeRoom inside a Graph's arena. Handles are
// stable for the lifetime of a run even across merges: a tombstoned
// handle still resolves (via Graph.Resolve) to its surviving room.
type Handle int

// NoHandle is the zero value meaning "no room" (an unopened door, an
// unpaired door slot, a not-yet-created root).
const NoHandle Handle = -1
