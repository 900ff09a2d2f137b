package maze

import "math/rand"

// Sidewinder carves the half-region line by line: each line accumulates a run
// of lattice cells, and each cell either extends the run within the line or
// closes it by carving a single perpendicular passage toward the previous
// line from a random run member. The first line only ever extends. The half
// is then mirrored and the seam connected.
type Sidewinder struct {
	orientation Orientation
	rng         *rand.Rand
}

// NewSidewinder creates a sidewinder generator.
func NewSidewinder(rng *rand.Rand, orientation Orientation) *Sidewinder {
	return &Sidewinder{orientation: orientation, rng: rng}
}

// Generate produces a mirrored sidewinder grid with a connected seam.
func (s *Sidewinder) Generate(size int) *Grid {
	g := NewGrid(size, Wall)
	s.initializeCells(g)
	if s.orientation == Vertical {
		s.carveVertical(g)
	} else {
		s.carveHorizontal(g)
	}
	mirror(g, s.orientation)
	ConnectSeam(g, s.orientation, s.rng, seamOpenProbability)
	return g
}

// initializeCells opens every even-coordinate lattice cell in the
// half-region.
func (s *Sidewinder) initializeCells(g *Grid) {
	size := g.Size()
	for y := 0; y < size; y += 2 {
		for x := 0; x < size; x += 2 {
			if inHalf(x, y, size, s.orientation) {
				g.Set(x, y, Path)
			}
		}
	}
}

// carveVertical runs sidewinder column by column, left to right; runs extend
// southwards and close westwards.
func (s *Sidewinder) carveVertical(g *Grid) {
	size := g.Size()

	// First column: only extend.
	for y := 0; y < size-2; y += 2 {
		g.Set(0, y+1, Path)
	}

	for x := 2; x < halfSize(size); x += 2 {
		var run []int
		for y := 0; y < size; y += 2 {
			run = append(run, y)

			atEdge := y >= size-2
			if atEdge || s.rng.Intn(2) == 0 {
				member := run[s.rng.Intn(len(run))]
				g.Set(x-1, member, Path)
				run = run[:0]
			} else {
				g.Set(x, y+1, Path)
			}
		}
	}
}

// carveHorizontal runs sidewinder row by row, top to bottom; runs extend
// eastwards and close northwards.
func (s *Sidewinder) carveHorizontal(g *Grid) {
	size := g.Size()

	// First row: only extend.
	for x := 0; x < size-2; x += 2 {
		g.Set(x+1, 0, Path)
	}

	for y := 2; y < halfSize(size); y += 2 {
		var run []int
		for x := 0; x < size; x += 2 {
			run = append(run, x)

			atEdge := x >= size-2
			if atEdge || s.rng.Intn(2) == 0 {
				member := run[s.rng.Intn(len(run))]
				g.Set(member, y-1, Path)
				run = run[:0]
			} else {
				g.Set(x+1, y, Path)
			}
		}
	}
}
