package maze

import (
	"errors"
	"fmt"
	"math/rand"
	"sync"
)

// Orchestrator errors.
var (
	ErrNilGenerator = errors.New("generator is required")
	ErrNilRand      = errors.New("random source is required")
	ErrNilLogger    = errors.New("logger is required")
)

// Logger is the minimal logging surface the orchestrator reports through.
type Logger interface {
	Info(msg string)
	Warning(msg string)
	Error(msg string)
}

// Maze is a finalized grid with its chosen start and end positions. It is
// produced once by the orchestrator and read-only afterwards.
type Maze struct {
	grid  *Grid
	start Position
	end   Position
}

// Grid returns the underlying grid.
func (m *Maze) Grid() *Grid {
	return m.grid
}

// StartPosition returns the spawn-side endpoint of the maze.
func (m *Maze) StartPosition() Position {
	return m.start
}

// EndPosition returns the goal-side endpoint of the maze.
func (m *Maze) EndPosition() Position {
	return m.end
}

// IsWall reports whether the cell is a wall. Out-of-bounds cells are walls.
func (m *Maze) IsWall(x, y int) bool {
	return m.grid.IsWall(x, y)
}

// CanMoveTo reports whether a move onto the target cell is allowed.
func (m *Maze) CanMoveTo(from, to Position) bool {
	return m.grid.CanMoveTo(from, to)
}

// String renders the maze with its endpoints marked.
func (m *Maze) String() string {
	out := []byte(m.grid.String())
	width := m.grid.Size() + 1 // one newline per row
	out[m.start.Y*width+m.start.X] = 'S'
	out[m.end.Y*width+m.end.X] = 'E'
	return string(out)
}

// Orchestrator drives generation to an accepted maze: it retries the
// configured generator until the validator passes, then removes dead ends.
// It never fails hard; exhausting the attempt budget falls back to a fully
// open grid so callers always receive a usable maze.
type Orchestrator struct {
	generator   Generator
	maxAttempts int
	rng         *rand.Rand
	logger      Logger
	mu          sync.Mutex
}

// NewOrchestrator creates an orchestrator around the given generator.
func NewOrchestrator(generator Generator, maxAttempts int, rng *rand.Rand, logger Logger) (*Orchestrator, error) {
	if generator == nil {
		return nil, ErrNilGenerator
	}
	if rng == nil {
		return nil, ErrNilRand
	}
	if logger == nil {
		return nil, ErrNilLogger
	}
	if maxAttempts < 1 {
		maxAttempts = 1
	}
	return &Orchestrator{
		generator:   generator,
		maxAttempts: maxAttempts,
		rng:         rng,
		logger:      logger,
	}, nil
}

// Build generates, validates and post-processes a maze of the requested side
// length. Even sizes are raised to the next odd value. Build is safe for
// concurrent use; each call works on its own grid.
func (o *Orchestrator) Build(size int) *Maze {
	o.mu.Lock()
	defer o.mu.Unlock()

	size = normalizeSize(size)

	for attempt := 1; attempt <= o.maxAttempts; attempt++ {
		grid := o.generator.Generate(size)
		start, end := o.selectEndpoints(grid)

		if !IsConnected(grid, start, end) || !IsFullyTraversable(grid, start) {
			continue
		}

		RemoveDeadEnds(grid)
		return &Maze{grid: grid, start: start, end: end}
	}

	o.logger.Warning(fmt.Sprintf("no valid %dx%d maze within %d attempts, falling back to open grid", size, size, o.maxAttempts))
	return openFallback(size)
}

// openFallback is the guaranteed-valid degenerate maze: every cell walkable,
// endpoints one cell in from opposite corners.
func openFallback(size int) *Maze {
	return &Maze{
		grid:  NewGrid(size, Path),
		start: Position{X: 1, Y: 1},
		end:   Position{X: size - 2, Y: size - 2},
	}
}

// selectEndpoints picks a random diagonal corner pair and resolves each
// corner to the first Path cell in its 3x3 neighborhood, scanning row-major
// toward the grid interior. When the neighborhood holds no Path cell the raw
// corner is used even if it is a wall; a warning surfaces that case so the
// validator's rejection of the attempt can be traced in the logs.
func (o *Orchestrator) selectEndpoints(g *Grid) (Position, Position) {
	last := g.Size() - 1
	pairs := [2][2]Position{
		{{X: 0, Y: 0}, {X: last, Y: last}},
		{{X: last, Y: 0}, {X: 0, Y: last}},
	}
	pair := pairs[o.rng.Intn(2)]

	start := o.resolveCorner(g, pair[0])
	end := o.resolveCorner(g, pair[1])
	return start, end
}

func (o *Orchestrator) resolveCorner(g *Grid, corner Position) Position {
	stepX, stepY := 1, 1
	if corner.X > 0 {
		stepX = -1
	}
	if corner.Y > 0 {
		stepY = -1
	}

	for dy := 0; dy < 3; dy++ {
		for dx := 0; dx < 3; dx++ {
			x := corner.X + stepX*dx
			y := corner.Y + stepY*dy
			if g.InBound(x, y) && !g.IsWall(x, y) {
				return Position{X: x, Y: y}
			}
		}
	}

	if g.IsWall(corner.X, corner.Y) {
		o.logger.Warning(fmt.Sprintf("no walkable cell near corner (%d,%d), using the corner itself", corner.X, corner.Y))
	}
	return corner
}
