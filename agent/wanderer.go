package agent

import (
	"math/rand"

	"github.com/google/uuid"
	"github.com/tselot-games/mirrormaze/maze"
	"github.com/tselot-games/mirrormaze/pathfind"
)

// maxWaypointAttempts bounds how many random tiles a replan tries before the
// wanderer gives up for the tick.
const maxWaypointAttempts = 8

// Wanderer roams the maze: it picks a random walkable waypoint, follows a
// cached BFS path to it, and re-plans whenever the path is exhausted, the
// waypoint is reached, or a cached step turns out to be blocked.
type Wanderer struct {
	id       uuid.UUID
	grid     *maze.Grid
	rng      *rand.Rand
	canMove  pathfind.CanMoveFunc
	phase    Phase
	waypoint maze.Position
	path     []maze.Direction
	cursor   int
}

// NewWanderer creates a wanderer over the given grid. canMove is the owning
// agent's live movement predicate.
func NewWanderer(grid *maze.Grid, rng *rand.Rand, canMove pathfind.CanMoveFunc) *Wanderer {
	return &Wanderer{
		id:      uuid.New(),
		grid:    grid,
		rng:     rng,
		canMove: canMove,
		phase:   PhasePlanning,
	}
}

// ID returns the behavior's agent identity.
func (w *Wanderer) ID() uuid.UUID {
	return w.id
}

// Phase returns the current plan-and-follow state.
func (w *Wanderer) Phase() Phase {
	return w.phase
}

// Update returns the direction to move this tick, or false to hold position.
func (w *Wanderer) Update(pos maze.Position) (maze.Direction, bool) {
	if w.phase == PhaseFollowing && w.cursor >= len(w.path) {
		// Waypoint reached; plan a fresh one below.
		w.clearPath(PhasePlanning)
	}

	if w.phase != PhaseFollowing {
		if !w.plan(pos) {
			return "", false
		}
	}

	next := w.path[w.cursor]
	if !w.canMove(next) {
		// The cached plan no longer matches the agent's capabilities.
		w.clearPath(PhaseReplanning)
		return "", false
	}

	w.cursor++
	return next, true
}

// plan picks a random walkable waypoint and caches a BFS path to it, trying a
// bounded number of tiles before giving up for this tick.
func (w *Wanderer) plan(pos maze.Position) bool {
	size := w.grid.Size()
	for attempt := 0; attempt < maxWaypointAttempts; attempt++ {
		candidate := maze.Position{X: w.rng.Intn(size), Y: w.rng.Intn(size)}
		if candidate == pos || w.grid.IsWall(candidate.X, candidate.Y) {
			continue
		}

		path := pathfind.BFSShortestPath(w.grid, pos, candidate)
		if len(path) == 0 {
			continue
		}

		w.waypoint = candidate
		w.path = path
		w.cursor = 0
		w.phase = PhaseFollowing
		return true
	}
	return false
}

func (w *Wanderer) clearPath(phase Phase) {
	w.path = nil
	w.cursor = 0
	w.phase = phase
}
