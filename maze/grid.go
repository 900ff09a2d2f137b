/*
Package maze provides tools for generating and querying symmetric tile mazes.

It defines a binary wall/path `Grid` and a family of carving generators that
work on one half of the grid and mirror the result, a connectivity validator,
a dead-end remover, and an orchestrator that retries generation until the
validator accepts the output.
*/
package maze

import "strings"

// CellState is the binary state of a single grid cell.
type CellState uint8

const (
	Path CellState = iota // Path is a walkable cell.
	Wall                  // Wall blocks movement.
)

// Position represents a cell coordinate in the grid. X grows east, Y grows
// south, matching screen/tile coordinates.
type Position struct {
	X int // Column index of the cell
	Y int // Row index of the cell
}

// Direction is one of the four orthogonal movement directions.
type Direction string

const (
	North Direction = "North"
	East  Direction = "East"
	South Direction = "South"
	West  Direction = "West"
)

// Directions lists all directions in the fixed scan order used by every
// search in this package. Keeping the order fixed keeps BFS results and
// tie-breaks deterministic.
var Directions = [4]Direction{North, East, South, West}

var directionDeltas = map[Direction]Position{
	North: {X: 0, Y: -1},
	East:  {X: 1, Y: 0},
	South: {X: 0, Y: 1},
	West:  {X: -1, Y: 0},
}

var opposites = map[Direction]Direction{
	North: South,
	South: North,
	East:  West,
	West:  East,
}

// Delta returns the coordinate offset of one step in the direction.
func (d Direction) Delta() Position {
	return directionDeltas[d]
}

// Opposite returns the reverse direction.
func (d Direction) Opposite() Direction {
	return opposites[d]
}

// Apply returns the position one step away from pos in the direction.
func (d Direction) Apply(pos Position) Position {
	delta := directionDeltas[d]
	return Position{X: pos.X + delta.X, Y: pos.Y + delta.Y}
}

const minGridSize = 3

// Grid is a square matrix of wall/path cells. After the orchestrator hands a
// grid to its consumers it must be treated as read-only.
type Grid struct {
	size  int
	cells [][]CellState
}

// NewGrid creates a size×size grid with every cell set to fill. Even sizes
// are raised to the next odd value so the grid has a true center axis for
// mirroring; sizes below the minimum are clamped.
func NewGrid(size int, fill CellState) *Grid {
	size = normalizeSize(size)

	cells := make([][]CellState, size)
	for y := range cells {
		cells[y] = make([]CellState, size)
		for x := range cells[y] {
			cells[y][x] = fill
		}
	}

	return &Grid{size: size, cells: cells}
}

// normalizeSize clamps a requested grid size to a usable odd value.
func normalizeSize(size int) int {
	if size < minGridSize {
		size = minGridSize
	}
	if size%2 == 0 {
		size++
	}
	return size
}

// Size returns the side length of the grid.
func (g *Grid) Size() int {
	return g.size
}

// InBound reports whether the coordinates are inside the grid.
func (g *Grid) InBound(x, y int) bool {
	return x >= 0 && x < g.size && y >= 0 && y < g.size
}

// At returns the state of the cell. Out-of-bounds coordinates read as Wall,
// keeping every grid predicate total.
func (g *Grid) At(x, y int) CellState {
	if !g.InBound(x, y) {
		return Wall
	}
	return g.cells[y][x]
}

// Set writes the state of an in-bounds cell. Out-of-bounds writes are
// ignored.
func (g *Grid) Set(x, y int, state CellState) {
	if g.InBound(x, y) {
		g.cells[y][x] = state
	}
}

// IsWall reports whether the cell is a wall. Out-of-bounds cells are walls.
func (g *Grid) IsWall(x, y int) bool {
	return g.At(x, y) == Wall
}

// CanMoveTo reports whether a move onto the target cell is allowed. It does
// not check adjacency; callers must only query adjacent cells.
func (g *Grid) CanMoveTo(from, to Position) bool {
	return !g.IsWall(to.X, to.Y)
}

// CountPath returns the number of Path cells in the grid.
func (g *Grid) CountPath() int {
	count := 0
	for y := 0; y < g.size; y++ {
		for x := 0; x < g.size; x++ {
			if g.cells[y][x] == Path {
				count++
			}
		}
	}
	return count
}

// PathDegree returns how many of the four orthogonal neighbors of pos are
// Path cells.
func (g *Grid) PathDegree(pos Position) int {
	degree := 0
	for _, dir := range Directions {
		n := dir.Apply(pos)
		if g.InBound(n.X, n.Y) && !g.IsWall(n.X, n.Y) {
			degree++
		}
	}
	return degree
}

// Clone returns a deep copy of the grid.
func (g *Grid) Clone() *Grid {
	cells := make([][]CellState, g.size)
	for y := range cells {
		cells[y] = make([]CellState, g.size)
		copy(cells[y], g.cells[y])
	}
	return &Grid{size: g.size, cells: cells}
}

// String provides a textual representation of the grid.
func (g *Grid) String() string {
	var output strings.Builder
	for y := 0; y < g.size; y++ {
		for x := 0; x < g.size; x++ {
			if g.cells[y][x] == Wall {
				output.WriteByte('#')
			} else {
				output.WriteByte('.')
			}
		}
		output.WriteByte('\n')
	}
	return output.String()
}
