package maze

import "math/rand"

// ScatteredWall carves an open-field, Pac-Man-style layout: the grid starts
// fully walkable and every other line of the half-region is filled with an
// alternation of single-cell path gaps and randomized wall runs, then
// mirrored.
type ScatteredWall struct {
	minWallLength int
	maxWallLength int
	orientation   Orientation
	rng           *rand.Rand
}

// NewScatteredWall creates a scattered-wall generator. Wall run lengths are
// sampled uniformly from [minWallLength, maxWallLength].
func NewScatteredWall(rng *rand.Rand, minWallLength, maxWallLength int, orientation Orientation) *ScatteredWall {
	if minWallLength < 1 {
		minWallLength = 1
	}
	if maxWallLength < minWallLength {
		maxWallLength = minWallLength
	}
	return &ScatteredWall{
		minWallLength: minWallLength,
		maxWallLength: maxWallLength,
		orientation:   orientation,
		rng:           rng,
	}
}

// Generate produces a mirrored scattered-wall grid.
func (s *ScatteredWall) Generate(size int) *Grid {
	g := NewGrid(size, Path)
	s.scatterWalls(g)
	mirror(g, s.orientation)
	return g
}

func (s *ScatteredWall) scatterWalls(g *Grid) {
	for line := 1; line < halfSize(g.Size()); line += 2 {
		s.fillLine(g, line)
	}
}

// fillLine alternates path gaps of length 1 with wall runs of random length
// until the line is full. The starting species is a coin flip so walls do not
// always hug the same edge.
func (s *ScatteredWall) fillLine(g *Grid, line int) {
	position := 0
	startWithPath := s.rng.Intn(2) == 0

	for position < g.Size() {
		if startWithPath {
			position = s.placeSegment(g, line, position, Path, 1)
			position = s.placeSegment(g, line, position, Wall, s.randomWallLength())
		} else {
			position = s.placeSegment(g, line, position, Wall, s.randomWallLength())
			position = s.placeSegment(g, line, position, Path, 1)
		}
	}
}

func (s *ScatteredWall) placeSegment(g *Grid, line, start int, state CellState, length int) int {
	for i := 0; i < length; i++ {
		if start+i >= g.Size() {
			break
		}
		if s.orientation == Vertical {
			g.Set(line, start+i, state)
		} else {
			g.Set(start+i, line, state)
		}
	}
	return start + length
}

func (s *ScatteredWall) randomWallLength() int {
	return s.minWallLength + s.rng.Intn(s.maxWallLength-s.minWallLength+1)
}
