/*
Package pathfind provides the path queries agents run against a finalized
maze grid: breadth-first and A* shortest paths, greedy single-step direction
selection, and nearest-walkable-tile search.

Every function is a pure read over the grid; results are produced per query
and never cached here.
*/
package pathfind

import (
	"math/rand"

	"github.com/tselot-games/mirrormaze/maze"
)

// CanMoveFunc is the live movement-capability predicate an agent supplies;
// behaviors consult it before committing to a planned step.
type CanMoveFunc func(dir maze.Direction) bool

// BFSShortestPath returns the direction sequence of a shortest 4-directional
// path from start to goal, nil if no path exists, and an empty slice when
// start equals goal. The fixed N,E,S,W expansion order makes the result
// deterministic for a given grid.
func BFSShortestPath(g *maze.Grid, start, goal maze.Position) []maze.Direction {
	if g.IsWall(start.X, start.Y) || g.IsWall(goal.X, goal.Y) {
		return nil
	}
	if start == goal {
		return []maze.Direction{}
	}

	// cameBy records the direction taken to first reach each cell.
	cameBy := make(map[maze.Position]maze.Direction)
	visited := map[maze.Position]bool{start: true}
	queue := []maze.Position{start}

	for len(queue) > 0 {
		current := queue[0]
		queue = queue[1:]

		for _, dir := range maze.Directions {
			next := dir.Apply(current)
			if visited[next] || g.IsWall(next.X, next.Y) {
				continue
			}
			visited[next] = true
			cameBy[next] = dir

			if next == goal {
				return reconstructDirections(cameBy, start, goal)
			}
			queue = append(queue, next)
		}
	}

	return nil
}

// reconstructDirections walks the cameBy links from goal back to start and
// reverses them into the forward direction sequence.
func reconstructDirections(cameBy map[maze.Position]maze.Direction, start, goal maze.Position) []maze.Direction {
	var reversed []maze.Direction
	current := goal
	for current != start {
		dir := cameBy[current]
		reversed = append(reversed, dir)
		current = dir.Opposite().Apply(current)
	}

	path := make([]maze.Direction, len(reversed))
	for i, dir := range reversed {
		path[len(reversed)-1-i] = dir
	}
	return path
}

// NearestWalkableTile returns the walkable cell closest to target by hop
// count, searching outward with BFS up to maxRadius hops. A walkable target
// is returned unchanged; the second result is false when no walkable cell
// exists within the radius.
func NearestWalkableTile(g *maze.Grid, target maze.Position, maxRadius int) (maze.Position, bool) {
	if !g.IsWall(target.X, target.Y) {
		return target, true
	}

	type entry struct {
		pos  maze.Position
		dist int
	}

	visited := map[maze.Position]bool{target: true}
	queue := []entry{{pos: target, dist: 0}}

	for len(queue) > 0 {
		current := queue[0]
		queue = queue[1:]

		for _, dir := range maze.Directions {
			next := dir.Apply(current.pos)
			if current.dist+1 > maxRadius {
				continue
			}
			if !g.InBound(next.X, next.Y) || visited[next] {
				continue
			}
			visited[next] = true

			if !g.IsWall(next.X, next.Y) {
				return next, true
			}
			queue = append(queue, entry{pos: next, dist: current.dist + 1})
		}
	}

	return maze.Position{}, false
}

// shuffleDirections permutes a direction slice in place.
func shuffleDirections(rng *rand.Rand, dirs []maze.Direction) {
	rng.Shuffle(len(dirs), func(i, j int) {
		dirs[i], dirs[j] = dirs[j], dirs[i]
	})
}
