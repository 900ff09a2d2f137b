package pathfind

import (
	"container/heap"

	"github.com/tselot-games/mirrormaze/maze"
)

// AStarShortestPath returns the coordinate sequence of a shortest
// 4-directional path from start to goal, both endpoints included, or nil if
// either endpoint is unwalkable or no path exists. The Manhattan heuristic is
// admissible and consistent on a unit-cost 4-directional grid, so the first
// settled goal is optimal; equal f-scores are broken by a monotonic insertion
// counter to keep results stable.
func AStarShortestPath(g *maze.Grid, start, goal maze.Position) []maze.Position {
	if g.IsWall(start.X, start.Y) || g.IsWall(goal.X, goal.Y) {
		return nil
	}
	if start == goal {
		return []maze.Position{start}
	}

	counter := 0
	open := &openSet{{pos: start, f: manhattan(start, goal), order: counter}}
	heap.Init(open)
	inOpen := map[maze.Position]bool{start: true}

	cameFrom := make(map[maze.Position]maze.Position)
	gScore := map[maze.Position]int{start: 0}

	for open.Len() > 0 {
		current := heap.Pop(open).(*openNode).pos
		delete(inOpen, current)

		if current == goal {
			return reconstructPositions(cameFrom, current)
		}

		for _, dir := range maze.Directions {
			neighbor := dir.Apply(current)
			if g.IsWall(neighbor.X, neighbor.Y) {
				continue
			}

			tentative := gScore[current] + 1
			if known, ok := gScore[neighbor]; ok && tentative >= known {
				continue
			}

			cameFrom[neighbor] = current
			gScore[neighbor] = tentative
			if !inOpen[neighbor] {
				counter++
				heap.Push(open, &openNode{
					pos:   neighbor,
					f:     tentative + manhattan(neighbor, goal),
					order: counter,
				})
				inOpen[neighbor] = true
			}
		}
	}

	return nil
}

func reconstructPositions(cameFrom map[maze.Position]maze.Position, current maze.Position) []maze.Position {
	reversed := []maze.Position{current}
	for {
		prev, ok := cameFrom[current]
		if !ok {
			break
		}
		reversed = append(reversed, prev)
		current = prev
	}

	path := make([]maze.Position, len(reversed))
	for i, pos := range reversed {
		path[len(reversed)-1-i] = pos
	}
	return path
}

// manhattan is the heuristic distance between two cells.
func manhattan(a, b maze.Position) int {
	return abs(a.X-b.X) + abs(a.Y-b.Y)
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

// openNode is an A* frontier entry; order is the insertion counter used as a
// deterministic tie-break between equal f-scores.
type openNode struct {
	pos   maze.Position
	f     int
	order int
}

type openSet []*openNode

func (s openSet) Len() int { return len(s) }

func (s openSet) Less(i, j int) bool {
	if s[i].f != s[j].f {
		return s[i].f < s[j].f
	}
	return s[i].order < s[j].order
}

func (s openSet) Swap(i, j int) { s[i], s[j] = s[j], s[i] }

func (s *openSet) Push(x any) { *s = append(*s, x.(*openNode)) }

func (s *openSet) Pop() any {
	old := *s
	n := len(old)
	node := old[n-1]
	old[n-1] = nil
	*s = old[:n-1]
	return node
}
