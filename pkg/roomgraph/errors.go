package roomgraph

import "fmt"

// InconsistentOpenError is raised by OpenDoor when a door already points
// to a different tentative room than the one being opened. OpenDoor never
// merges on the caller's behalf — only the compactor's privileged
// mutators (SetDoorDest) may redirect an already-opened door — so any
// second, differing open is a contradiction.
type InconsistentOpenError struct {
	Room Handle
	Door int
	Want Handle
	Have Handle
}

func (e *InconsistentOpenError) Error() string {
	return fmt.Sprintf("roomgraph: door %d of room %d already opens to room %d, cannot also open to room %d", e.Door, e.Room, e.Have, e.Want)
}

// PairConflictError is raised by Pair when either endpoint already has a
// closed bond to a different door.
type PairConflictError struct {
	Room Handle
	Door int
}

func (e *PairConflictError) Error() string {
	return fmt.Sprintf("roomgraph: door %d of room %d is already paired to a different door", e.Door, e.Room)
}

// DeadEndError is raised by Cursor.Move when the door at the cursor's
// current position has not been opened yet.
type DeadEndError struct {
	Room Handle
	Door int
}

func (e *DeadEndError) Error() string {
	return fmt.Sprintf("roomgraph: door %d of room %d is not open, cursor cannot move", e.Door, e.Room)
}

// UnreachableError is raised by PathTo when no sequence of opened doors
// from the root reaches the requested room.
type UnreachableError struct {
	Room Handle
}

func (e *UnreachableError) Error() string {
	return fmt.Sprintf("roomgraph: room %d is not reachable from root via opened doors", e.Room)
}
