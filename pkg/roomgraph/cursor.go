package roomgraph

// Cursor is the mutable walker over a Graph: a current room, advanced one
// door at a time. Handles surviving a merge transparently: Move always
// resolves through tombstones before reading or writing At.
type Cursor struct {
	g  *Graph
	at Handle
}

// NewCursor returns a cursor positioned at start.
func (g *Graph) NewCursor(start Handle) *Cursor {
	return &Cursor{g: g, at: g.Resolve(start)}
}

// At returns the cursor's current room.
func (c *Cursor) At() Handle {
	c.at = c.g.Resolve(c.at)
	return c.at
}

// Move follows door d from the current room. Fails with DeadEndError if
// the door has not been opened.
func (c *Cursor) Move(d int) error {
	c.at = c.g.Resolve(c.at)
	door := c.g.Door(c.at, d)
	if !door.Opened() {
		return &DeadEndError{Room: c.at, Door: d}
	}
	c.at = c.g.Resolve(door.Dest)
	return nil
}
