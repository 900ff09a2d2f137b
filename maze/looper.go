package maze

// RemoveDeadEnds mutates the grid until no Path cell has exactly one Path
// neighbor. Each dead end is reconnected into a cycle by carving the wall
// toward the most topologically distant reachable Path cell, so the fix adds
// a loop instead of a short stub. Running it on a grid without dead ends is a
// no-op.
func RemoveDeadEnds(g *Grid) {
	for {
		deadEnds := findDeadEnds(g)
		if len(deadEnds) == 0 {
			return
		}

		carved := 0
		for _, deadEnd := range deadEnds {
			dir, ok := longestCycleDirection(g, deadEnd)
			if ok {
				wall := dir.Apply(deadEnd)
				g.Set(wall.X, wall.Y, Path)
				carved++
			}
		}

		// A dead end with no carvable direction (every beyond-cell is a wall
		// or out of bounds) can never be fixed; stop instead of rescanning
		// forever.
		if carved == 0 {
			return
		}
	}
}

// findDeadEnds returns every Path cell with exactly one orthogonal Path
// neighbor, in row-major scan order.
func findDeadEnds(g *Grid) []Position {
	var deadEnds []Position
	for y := 0; y < g.Size(); y++ {
		for x := 0; x < g.Size(); x++ {
			if g.IsWall(x, y) {
				continue
			}
			pos := Position{X: x, Y: y}
			if g.PathDegree(pos) == 1 {
				deadEnds = append(deadEnds, pos)
			}
		}
	}
	return deadEnds
}

// longestCycleDirection picks the direction whose wall neighbor, once carved,
// reconnects the dead end to the farthest reachable Path cell. Distances are
// BFS hop counts through the current grid; ties go to the first direction in
// N,E,S,W order.
func longestCycleDirection(g *Grid, pos Position) (Direction, bool) {
	var best Direction
	found := false
	maxDistance := -1

	for _, dir := range Directions {
		wall := dir.Apply(pos)
		beyond := dir.Apply(wall)

		if !g.InBound(wall.X, wall.Y) || !g.IsWall(wall.X, wall.Y) {
			continue
		}
		if !g.InBound(beyond.X, beyond.Y) || g.IsWall(beyond.X, beyond.Y) {
			continue
		}

		distance := pathDistance(g, pos, beyond)
		if distance > maxDistance {
			maxDistance = distance
			best = dir
			found = true
		}
	}

	return best, found
}

// pathDistance returns the BFS hop count between two Path cells, or -1 if end
// is unreachable from start.
func pathDistance(g *Grid, start, end Position) int {
	type entry struct {
		pos  Position
		dist int
	}

	visited := newVisited(g.Size())
	if g.InBound(start.X, start.Y) {
		visited[start.Y][start.X] = true
	}
	queue := []entry{{pos: start, dist: 0}}

	for len(queue) > 0 {
		current := queue[0]
		queue = queue[1:]

		if current.pos == end {
			return current.dist
		}

		for _, dir := range Directions {
			next := dir.Apply(current.pos)
			if g.InBound(next.X, next.Y) && !g.IsWall(next.X, next.Y) && !visited[next.Y][next.X] {
				visited[next.Y][next.X] = true
				queue = append(queue, entry{pos: next, dist: current.dist + 1})
			}
		}
	}

	return -1
}
