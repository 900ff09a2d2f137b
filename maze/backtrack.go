package maze

import "math/rand"

// RecursiveBacktrack carves a perfect maze over the half-region lattice with
// randomized depth-first carving. The frontier lives on an explicit stack
// instead of the call stack: naive recursion depth reaches O(size²) on large
// grids.
type RecursiveBacktrack struct {
	orientation Orientation
	rng         *rand.Rand
}

// NewRecursiveBacktrack creates a depth-first carving generator.
func NewRecursiveBacktrack(rng *rand.Rand, orientation Orientation) *RecursiveBacktrack {
	return &RecursiveBacktrack{orientation: orientation, rng: rng}
}

// Generate produces a mirrored depth-first-carved grid with a connected seam.
func (r *RecursiveBacktrack) Generate(size int) *Grid {
	g := NewGrid(size, Wall)
	r.carveHalf(g)
	mirror(g, r.orientation)
	ConnectSeam(g, r.orientation, r.rng, seamOpenProbability)
	return g
}

func (r *RecursiveBacktrack) carveHalf(g *Grid) {
	size := g.Size()
	visited := newVisited(size)

	start := randomLatticeStart(r.rng, size, r.orientation)
	visited[start.Y][start.X] = true
	g.Set(start.X, start.Y, Path)

	stack := []Position{start}
	for len(stack) > 0 {
		current := stack[len(stack)-1]

		neighbors := latticeNeighbors(current.X, current.Y, size, r.orientation, visited, false)
		if len(neighbors) == 0 {
			stack = stack[:len(stack)-1]
			continue
		}

		next := neighbors[r.rng.Intn(len(neighbors))]
		openBetween(g, current, next)
		visited[next.Y][next.X] = true
		stack = append(stack, next)
	}
}
