package agent

import (
	"errors"

	"github.com/google/uuid"
	"github.com/tselot-games/mirrormaze/maze"
	"github.com/tselot-games/mirrormaze/pathfind"
)

// ErrNoPatrolRoute means a quadrant of the grid holds no walkable tile, so no
// patrol circuit exists. Accepted mazes are fully traversable and cannot
// trigger this.
var ErrNoPatrolRoute = errors.New("no walkable waypoint in a grid quadrant")

// Patrol cycles through four fixed waypoints, one per grid quadrant, each
// resolved to the walkable tile nearest that quadrant's center. Paths between
// waypoints are cached BFS paths with the same stale-cache defenses as the
// wanderer.
type Patrol struct {
	id        uuid.UUID
	grid      *maze.Grid
	canMove   pathfind.CanMoveFunc
	waypoints [4]maze.Position
	current   int
	phase     Phase
	path      []maze.Direction
	cursor    int
}

// NewPatrol creates a patrol over the given grid, computing its waypoints
// once up front.
func NewPatrol(grid *maze.Grid, canMove pathfind.CanMoveFunc) (*Patrol, error) {
	p := &Patrol{
		id:      uuid.New(),
		grid:    grid,
		canMove: canMove,
		phase:   PhasePlanning,
	}

	size := grid.Size()
	quarter := size / 4
	centers := [4]maze.Position{
		{X: quarter, Y: quarter},
		{X: size - 1 - quarter, Y: quarter},
		{X: size - 1 - quarter, Y: size - 1 - quarter},
		{X: quarter, Y: size - 1 - quarter},
	}

	for i, center := range centers {
		waypoint, ok := pathfind.NearestWalkableTile(grid, center, size/2)
		if !ok {
			return nil, ErrNoPatrolRoute
		}
		p.waypoints[i] = waypoint
	}

	return p, nil
}

// ID returns the behavior's agent identity.
func (p *Patrol) ID() uuid.UUID {
	return p.id
}

// Phase returns the current plan-and-follow state.
func (p *Patrol) Phase() Phase {
	return p.phase
}

// Waypoints returns the patrol circuit in visiting order.
func (p *Patrol) Waypoints() [4]maze.Position {
	return p.waypoints
}

// CurrentWaypointIndex returns the index of the waypoint being approached.
func (p *Patrol) CurrentWaypointIndex() int {
	return p.current
}

// Update returns the direction to move this tick, or false to hold position.
func (p *Patrol) Update(pos maze.Position) (maze.Direction, bool) {
	if pos == p.waypoints[p.current] {
		p.current = (p.current + 1) % len(p.waypoints)
		p.clearPath(PhasePlanning)
	}

	if p.phase != PhaseFollowing || p.cursor >= len(p.path) {
		path := pathfind.BFSShortestPath(p.grid, pos, p.waypoints[p.current])
		if len(path) == 0 {
			p.clearPath(PhasePlanning)
			return "", false
		}
		p.path = path
		p.cursor = 0
		p.phase = PhaseFollowing
	}

	next := p.path[p.cursor]
	if !p.canMove(next) {
		// The cached plan no longer matches the agent's capabilities.
		p.clearPath(PhaseReplanning)
		return "", false
	}

	p.cursor++
	return next, true
}

func (p *Patrol) clearPath(phase Phase) {
	p.path = nil
	p.cursor = 0
	p.phase = phase
}
