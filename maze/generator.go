package maze

import "math/rand"

// Orientation selects the mirror axis of a generated maze.
type Orientation string

const (
	// Vertical mirrors the left half onto the right (left-right symmetry).
	Vertical Orientation = "vertical"
	// Horizontal mirrors the top half onto the bottom (top-bottom symmetry).
	Horizontal Orientation = "horizontal"
)

// Generator produces a raw maze grid of the requested side length. Output is
// allowed to be disconnected or contain isolated pockets; acceptance is the
// orchestrator's job.
type Generator interface {
	Generate(size int) *Grid
}

// halfSize returns the extent of the carving half-region, including the
// center line.
func halfSize(size int) int {
	return size/2 + 1
}

// inHalf reports whether the coordinates fall inside the carving half-region
// for the given orientation.
func inHalf(x, y, size int, orientation Orientation) bool {
	if orientation == Vertical {
		return x < halfSize(size)
	}
	return y < halfSize(size)
}

// mirror copies the carved half onto the other half. Only size/2 lines are
// copied: the center line is generated directly and never duplicated, which
// keeps the axis from doubling.
func mirror(g *Grid, orientation Orientation) {
	size := g.Size()
	for i := 0; i < size/2; i++ {
		mirrorI := size - 1 - i
		for j := 0; j < size; j++ {
			if orientation == Vertical {
				g.Set(mirrorI, j, g.At(i, j))
			} else {
				g.Set(j, mirrorI, g.At(j, i))
			}
		}
	}
}

// ConnectSeam opens passages across the mirror seam. Mirroring a tree-shaped
// half produces two halves that touch only at walls, so the maze would split
// in two; this pass opens each center-line wall whose facing neighbors are
// both paths with probability p, and force-opens the first candidate if the
// coin never landed open. Opening center-line cells cannot break symmetry
// because the center line is its own mirror image.
//
// It returns the number of cells opened.
func ConnectSeam(g *Grid, orientation Orientation, rng *rand.Rand, p float64) int {
	size := g.Size()
	mid := size / 2

	var candidates []Position
	for j := 0; j < size; j++ {
		var seam, before, after Position
		if orientation == Vertical {
			seam = Position{X: mid, Y: j}
			before = Position{X: mid - 1, Y: j}
			after = Position{X: mid + 1, Y: j}
		} else {
			seam = Position{X: j, Y: mid}
			before = Position{X: j, Y: mid - 1}
			after = Position{X: j, Y: mid + 1}
		}
		if g.At(seam.X, seam.Y) == Wall &&
			g.At(before.X, before.Y) == Path &&
			g.At(after.X, after.Y) == Path {
			candidates = append(candidates, seam)
		}
	}

	opened := 0
	for _, pos := range candidates {
		if rng.Float64() < p {
			g.Set(pos.X, pos.Y, Path)
			opened++
		}
	}

	// A fully closed seam recreates the disconnection this pass exists to fix.
	if opened == 0 && len(candidates) > 0 {
		first := candidates[0]
		g.Set(first.X, first.Y, Path)
		opened = 1
	}

	return opened
}

// seamOpenProbability is the per-candidate chance used by generators that
// need the seam connector.
const seamOpenProbability = 0.5
