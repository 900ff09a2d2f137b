package maze

import "math/rand"

// HuntAndKill carves a perfect maze over the half-region lattice: a random
// walk opens passages until it strands itself, then a row-major hunt finds an
// unvisited cell touching the carved region and reseeds the walk there. The
// half is then mirrored and the seam connected.
type HuntAndKill struct {
	orientation Orientation
	rng         *rand.Rand
}

// NewHuntAndKill creates a hunt-and-kill generator.
func NewHuntAndKill(rng *rand.Rand, orientation Orientation) *HuntAndKill {
	return &HuntAndKill{orientation: orientation, rng: rng}
}

// Generate produces a mirrored hunt-and-kill grid with a connected seam.
func (h *HuntAndKill) Generate(size int) *Grid {
	g := NewGrid(size, Wall)
	h.carveHalf(g)
	mirror(g, h.orientation)
	ConnectSeam(g, h.orientation, h.rng, seamOpenProbability)
	return g
}

func (h *HuntAndKill) carveHalf(g *Grid) {
	size := g.Size()
	visited := newVisited(size)

	current := randomLatticeStart(h.rng, size, h.orientation)
	visited[current.Y][current.X] = true
	g.Set(current.X, current.Y, Path)

	for {
		current = h.randomWalk(g, current, visited)

		next, found := h.hunt(g, visited)
		if !found {
			return
		}
		current = next
	}
}

// randomWalk carves from the current cell until it has no unvisited lattice
// neighbors, returning the cell it got stuck at.
func (h *HuntAndKill) randomWalk(g *Grid, current Position, visited [][]bool) Position {
	for {
		neighbors := latticeNeighbors(current.X, current.Y, g.Size(), h.orientation, visited, false)
		if len(neighbors) == 0 {
			return current
		}

		next := neighbors[h.rng.Intn(len(neighbors))]
		openBetween(g, current, next)
		visited[next.Y][next.X] = true
		current = next
	}
}

// hunt scans the lattice row-major for an unvisited cell with a visited
// neighbor, connects it to a random such neighbor, and returns it as the new
// walk seed.
func (h *HuntAndKill) hunt(g *Grid, visited [][]bool) (Position, bool) {
	size := g.Size()
	for y := 1; y < size; y += 2 {
		for x := 1; x < size; x += 2 {
			if !latticeCell(x, y, size, h.orientation) || visited[y][x] {
				continue
			}

			carved := latticeNeighbors(x, y, size, h.orientation, visited, true)
			if len(carved) == 0 {
				continue
			}

			cell := Position{X: x, Y: y}
			openBetween(g, carved[h.rng.Intn(len(carved))], cell)
			visited[y][x] = true
			return cell, true
		}
	}
	return Position{}, false
}
