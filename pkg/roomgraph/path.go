package roomgraph

// PathTo returns the shortest door sequence from root to h using only
// opened doors, ties broken by ascending door id at each step (so the
// result is also lexicographically smallest among shortest paths).
// Fails with UnreachableError if h is not reached from root.
func (g *Graph) PathTo(h Handle) ([]int, error) {
	h = g.Resolve(h)
	root := g.Root()
	if root == NoHandle {
		return nil, &UnreachableError{Room: h}
	}
	if root == h {
		return nil, nil
	}

	type step struct {
		room Handle
		path []int
	}
	queue := []step{{room: root}}
	visited := map[Handle]bool{root: true}

	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]

		room := g.arena[cur.room]
		for d := 0; d < 6; d++ {
			door := room.Doors[d]
			if !door.Opened() {
				continue
			}
			next := g.Resolve(door.Dest)
			if visited[next] {
				continue
			}
			visited[next] = true
			path := append(append([]int(nil), cur.path...), d)
			if next == h {
				return path, nil
			}
			queue = append(queue, step{room: next, path: path})
		}
	}
	return nil, &UnreachableError{Room: h}
}

// PathFrom returns the shortest door sequence starting at h that reaches
// a room satisfying predicate, along with that room's handle. The search
// only follows opened doors, ties broken by ascending door id.
func (g *Graph) PathFrom(h Handle, predicate func(Handle) bool) ([]int, Handle, bool) {
	h = g.Resolve(h)
	if predicate(h) {
		return nil, h, true
	}

	type step struct {
		room Handle
		path []int
	}
	queue := []step{{room: h}}
	visited := map[Handle]bool{h: true}

	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]

		room := g.arena[cur.room]
		for d := 0; d < 6; d++ {
			door := room.Doors[d]
			if !door.Opened() {
				continue
			}
			next := g.Resolve(door.Dest)
			if visited[next] {
				continue
			}
			visited[next] = true
			path := append(append([]int(nil), cur.path...), d)
			if predicate(next) {
				return path, next, true
			}
			queue = append(queue, step{room: next, path: path})
		}
	}
	return nil, NoHandle, false
}

// UpdateAllPaths refreshes the canonical path of every room reachable
// from root with a single BFS. Unreachable rooms keep their last-known
// path.
func (g *Graph) UpdateAllPaths() {
	root := g.Root()
	if root == NoHandle {
		return
	}
	g.SetPath(root, nil)

	type step struct {
		room Handle
		path []int
	}
	queue := []step{{room: root}}
	visited := map[Handle]bool{root: true}

	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]

		room := g.arena[cur.room]
		for d := 0; d < 6; d++ {
			door := room.Doors[d]
			if !door.Opened() {
				continue
			}
			next := g.Resolve(door.Dest)
			if visited[next] {
				continue
			}
			visited[next] = true
			path := append(append([]int(nil), cur.path...), d)
			g.SetPath(next, path)
			queue = append(queue, step{room: next, path: path})
		}
	}
}
