/*
Package agent implements the per-tick navigation behaviors NPC agents run
against a finalized maze: a Wanderer that roams between random waypoints and
a Patrol that cycles the quadrant centers of the grid.

Behaviors own their navigation state exclusively; the surrounding entity
system supplies the agent's current tile each tick and a live
movement-capability predicate that every cached step is re-checked against
before it is committed.
*/
package agent

import "github.com/tselot-games/mirrormaze/maze"

// Phase is the explicit state of a behavior's plan-and-follow loop. Modeling
// it as an enum instead of sentinel nil checks keeps the stale-cache
// invariant testable.
type Phase uint8

const (
	// PhasePlanning means no usable path is cached; the next update plans one.
	PhasePlanning Phase = iota
	// PhaseFollowing means a cached path is being consumed step by step.
	PhaseFollowing
	// PhaseReplanning means the cached path went stale (a planned step was
	// blocked) and was discarded; the next update plans again.
	PhaseReplanning
)

func (p Phase) String() string {
	switch p {
	case PhasePlanning:
		return "planning"
	case PhaseFollowing:
		return "following"
	case PhaseReplanning:
		return "replanning"
	default:
		return "unknown"
	}
}

// Behavior decides one discrete movement direction per tick for the agent at
// the given tile. The second result is false when the agent should hold
// position this tick.
type Behavior interface {
	Update(pos maze.Position) (maze.Direction, bool)
}
