package maze

import "math/rand"

// The hunt-and-kill and backtracking generators carve over a lattice of
// odd-coordinate cells spaced two apart; the even coordinates between them
// hold the walls that get opened into passages.

var latticeSteps = [4]Position{
	{X: 0, Y: -2}, // N
	{X: 2, Y: 0},  // E
	{X: 0, Y: 2},  // S
	{X: -2, Y: 0}, // W
}

// latticeCell reports whether the coordinates name a lattice cell inside the
// carving half-region.
func latticeCell(x, y, size int, orientation Orientation) bool {
	if x < 0 || x >= size || y < 0 || y >= size {
		return false
	}
	if x%2 == 0 || y%2 == 0 {
		return false
	}
	return inHalf(x, y, size, orientation)
}

// latticeNeighbors returns the lattice neighbors of (x, y) whose visited
// state matches wantVisited, in the fixed N,E,S,W order.
func latticeNeighbors(x, y, size int, orientation Orientation, visited [][]bool, wantVisited bool) []Position {
	var neighbors []Position
	for _, step := range latticeSteps {
		nx, ny := x+step.X, y+step.Y
		if !latticeCell(nx, ny, size, orientation) {
			continue
		}
		if visited[ny][nx] == wantVisited {
			neighbors = append(neighbors, Position{X: nx, Y: ny})
		}
	}
	return neighbors
}

// randomLatticeStart picks a random odd-coordinate cell inside the
// half-region.
func randomLatticeStart(rng *rand.Rand, size int, orientation Orientation) Position {
	oddBelow := func(limit int) int {
		// Count of odd values in [1, limit).
		count := limit / 2
		return 1 + 2*rng.Intn(count)
	}

	if orientation == Vertical {
		return Position{X: oddBelow(halfSize(size)), Y: oddBelow(size)}
	}
	return Position{X: oddBelow(size), Y: oddBelow(halfSize(size))}
}

// openBetween carves the wall cell between two lattice cells and the
// destination cell itself.
func openBetween(g *Grid, from, to Position) {
	g.Set((from.X+to.X)/2, (from.Y+to.Y)/2, Path)
	g.Set(to.X, to.Y, Path)
}

// newVisited allocates a visited-tracking matrix for the grid.
func newVisited(size int) [][]bool {
	visited := make([][]bool, size)
	for i := range visited {
		visited[i] = make([]bool, size)
	}
	return visited
}
