package maze

// Grid acceptance checks. Both functions are pure reads over the grid and
// never fail hard; a false result simply means the orchestrator rejects the
// attempt.

// IsConnected reports whether end is reachable from start by a 4-directional
// walk over Path cells. Identical start and end are trivially connected.
func IsConnected(g *Grid, start, end Position) bool {
	if start == end {
		return true
	}

	visited := newVisited(g.Size())
	if g.InBound(start.X, start.Y) {
		visited[start.Y][start.X] = true
	}
	queue := []Position{start}

	for len(queue) > 0 {
		current := queue[0]
		queue = queue[1:]

		for _, dir := range Directions {
			next := dir.Apply(current)
			if next == end {
				return true
			}
			if g.InBound(next.X, next.Y) && !g.IsWall(next.X, next.Y) && !visited[next.Y][next.X] {
				visited[next.Y][next.X] = true
				queue = append(queue, next)
			}
		}
	}

	return false
}

// IsFullyTraversable reports whether every Path cell of the grid is reachable
// from start, detecting isolated pockets that a connectivity check between
// two corners would miss.
func IsFullyTraversable(g *Grid, start Position) bool {
	if !g.InBound(start.X, start.Y) {
		return false
	}

	totalPaths := g.CountPath()

	visited := newVisited(g.Size())
	visited[start.Y][start.X] = true
	reached := 1
	queue := []Position{start}

	for len(queue) > 0 {
		current := queue[0]
		queue = queue[1:]

		for _, dir := range Directions {
			next := dir.Apply(current)
			if g.InBound(next.X, next.Y) && !g.IsWall(next.X, next.Y) && !visited[next.Y][next.X] {
				visited[next.Y][next.X] = true
				reached++
				queue = append(queue, next)
			}
		}
	}

	return reached == totalPaths
}
