package pathfind

import (
	"math/rand"

	"github.com/tselot-games/mirrormaze/maze"
)

// GreedyStepTowards picks one direction that moves current closer to target:
// the axis with the larger absolute delta first (equal deltas pick a uniform
// random axis), the other axis second, then the remaining directions in
// randomized order. It returns false only when current is already at target
// or every direction is blocked by the predicate.
func GreedyStepTowards(rng *rand.Rand, current, target maze.Position, canMove CanMoveFunc) (maze.Direction, bool) {
	dx := target.X - current.X
	dy := target.Y - current.Y
	if dx == 0 && dy == 0 {
		return "", false
	}

	for _, dir := range candidateOrder(rng, dx, dy) {
		if canMove(dir) {
			return dir, true
		}
	}
	return "", false
}

// GreedyStepAwayFrom is GreedyStepTowards applied to the target reflected
// through the current position, producing fleeing behavior.
func GreedyStepAwayFrom(rng *rand.Rand, current, target maze.Position, canMove CanMoveFunc) (maze.Direction, bool) {
	reflected := maze.Position{
		X: 2*current.X - target.X,
		Y: 2*current.Y - target.Y,
	}
	return GreedyStepTowards(rng, current, reflected, canMove)
}

// candidateOrder builds the direction preference list for a desired delta.
// At least one of dx, dy is non-zero.
func candidateOrder(rng *rand.Rand, dx, dy int) []maze.Direction {
	horizontal := maze.East
	if dx < 0 {
		horizontal = maze.West
	}
	vertical := maze.South
	if dy < 0 {
		vertical = maze.North
	}

	var order []maze.Direction
	switch {
	case dy == 0:
		order = []maze.Direction{horizontal}
	case dx == 0:
		order = []maze.Direction{vertical}
	case abs(dx) > abs(dy):
		order = []maze.Direction{horizontal, vertical}
	case abs(dy) > abs(dx):
		order = []maze.Direction{vertical, horizontal}
	default:
		if rng.Intn(2) == 0 {
			order = []maze.Direction{horizontal, vertical}
		} else {
			order = []maze.Direction{vertical, horizontal}
		}
	}

	var rest []maze.Direction
	for _, dir := range maze.Directions {
		preferred := false
		for _, p := range order {
			if dir == p {
				preferred = true
				break
			}
		}
		if !preferred {
			rest = append(rest, dir)
		}
	}
	shuffleDirections(rng, rest)

	return append(order, rest...)
}
