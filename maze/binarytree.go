package maze

import "math/rand"

// BinaryTree carves a maze over the even-coordinate lattice of the
// half-region: every lattice cell opens a passage toward its north neighbor
// with the configured probability, otherwise toward its west neighbor. The
// result is a tree within the half, so after mirroring a seam connector pass
// is required to join the two halves.
type BinaryTree struct {
	northBias   float64
	orientation Orientation
	rng         *rand.Rand
}

// NewBinaryTree creates a binary-tree generator. northBias is the probability
// of carving north when both north and west are available.
func NewBinaryTree(rng *rand.Rand, northBias float64, orientation Orientation) *BinaryTree {
	if northBias < 0 {
		northBias = 0
	}
	if northBias > 1 {
		northBias = 1
	}
	return &BinaryTree{northBias: northBias, orientation: orientation, rng: rng}
}

// Generate produces a mirrored binary-tree grid with a connected seam.
func (b *BinaryTree) Generate(size int) *Grid {
	g := NewGrid(size, Wall)
	b.carveHalf(g)
	mirror(g, b.orientation)
	ConnectSeam(g, b.orientation, b.rng, seamOpenProbability)
	return g
}

// carveHalf visits every even-coordinate cell of the half-region in scan
// order and opens it plus one passage.
func (b *BinaryTree) carveHalf(g *Grid) {
	size := g.Size()
	for y := 0; y < size; y += 2 {
		for x := 0; x < size; x += 2 {
			if !inHalf(x, y, size, b.orientation) {
				continue
			}
			g.Set(x, y, Path)
			b.carvePassage(g, x, y)
		}
	}
}

// carvePassage opens the wall toward north or west of a lattice cell. A cell
// with neither neighbor stays isolated until a later cell grows toward it.
func (b *BinaryTree) carvePassage(g *Grid, x, y int) {
	canGoNorth := y >= 2
	canGoWest := x >= 2

	if !canGoNorth && !canGoWest {
		return
	}

	goNorth := canGoNorth
	if canGoNorth && canGoWest {
		goNorth = b.rng.Float64() < b.northBias
	}

	if goNorth {
		g.Set(x, y-1, Path)
	} else {
		g.Set(x-1, y, Path)
	}
}
