package pathfind

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/tselot-games/mirrormaze/maze"
)

func manhattanBetween(a, b maze.Position) int {
	return manhattan(a, b)
}

func TestBFSShortestPath(t *testing.T) {
	t.Run("open 5x5 grid corner to corner", func(t *testing.T) {
		g := maze.NewGrid(5, maze.Path)

		path := BFSShortestPath(g, maze.Position{X: 0, Y: 0}, maze.Position{X: 4, Y: 4})
		assert.Len(t, path, 8, "diagonal corners on an open grid are Manhattan distance apart")

		// Replaying the directions must land on the goal.
		pos := maze.Position{X: 0, Y: 0}
		for _, dir := range path {
			pos = dir.Apply(pos)
			assert.False(t, g.IsWall(pos.X, pos.Y))
		}
		assert.Equal(t, maze.Position{X: 4, Y: 4}, pos)
	})

	t.Run("start equals goal yields empty path", func(t *testing.T) {
		g := maze.NewGrid(5, maze.Path)
		path := BFSShortestPath(g, maze.Position{X: 2, Y: 2}, maze.Position{X: 2, Y: 2})
		assert.NotNil(t, path)
		assert.Empty(t, path)
	})

	t.Run("unreachable goal yields nil", func(t *testing.T) {
		g := maze.NewGrid(5, maze.Path)
		for i := 0; i < 5; i++ {
			g.Set(2, i, maze.Wall)
		}
		path := BFSShortestPath(g, maze.Position{X: 0, Y: 0}, maze.Position{X: 4, Y: 4})
		assert.Nil(t, path)
	})

	t.Run("wall endpoints yield nil", func(t *testing.T) {
		g := maze.NewGrid(5, maze.Path)
		g.Set(0, 0, maze.Wall)
		assert.Nil(t, BFSShortestPath(g, maze.Position{X: 0, Y: 0}, maze.Position{X: 4, Y: 4}))
		assert.Nil(t, BFSShortestPath(g, maze.Position{X: 4, Y: 4}, maze.Position{X: 0, Y: 0}))
	})
}

func TestAStarShortestPath(t *testing.T) {
	t.Run("open 5x5 grid corner to corner", func(t *testing.T) {
		g := maze.NewGrid(5, maze.Path)

		path := AStarShortestPath(g, maze.Position{X: 0, Y: 0}, maze.Position{X: 4, Y: 4})
		assert.Len(t, path, 9, "path includes both endpoints")
		assert.Equal(t, maze.Position{X: 0, Y: 0}, path[0])
		assert.Equal(t, maze.Position{X: 4, Y: 4}, path[len(path)-1])

		// Consecutive positions must be adjacent walkable cells.
		for i := 1; i < len(path); i++ {
			assert.Equal(t, 1, manhattanBetween(path[i-1], path[i]))
			assert.False(t, g.IsWall(path[i].X, path[i].Y))
		}
	})

	t.Run("start equals goal", func(t *testing.T) {
		g := maze.NewGrid(5, maze.Path)
		pos := maze.Position{X: 1, Y: 3}
		assert.Equal(t, []maze.Position{pos}, AStarShortestPath(g, pos, pos))
	})

	t.Run("unreachable goal yields nil", func(t *testing.T) {
		g := maze.NewGrid(5, maze.Path)
		for i := 0; i < 5; i++ {
			g.Set(2, i, maze.Wall)
		}
		assert.Nil(t, AStarShortestPath(g, maze.Position{X: 0, Y: 0}, maze.Position{X: 4, Y: 4}))
	})

	t.Run("matches BFS length on generated mazes", func(t *testing.T) {
		rng := rand.New(rand.NewSource(17))
		gen := maze.NewHuntAndKill(rng, maze.Vertical)

		for trial := 0; trial < 5; trial++ {
			g := gen.Generate(21)
			start := maze.Position{X: 1, Y: 1}
			goal := maze.Position{X: 19, Y: 19}

			bfs := BFSShortestPath(g, start, goal)
			astar := AStarShortestPath(g, start, goal)
			if bfs == nil {
				assert.Nil(t, astar)
				continue
			}
			assert.Equal(t, len(bfs), len(astar)-1, "A* must be as short as BFS ground truth")
		}
	})
}

func TestGreedyStepTowards(t *testing.T) {
	rng := rand.New(rand.NewSource(8))
	alwaysOpen := func(maze.Direction) bool { return true }

	t.Run("prefers the larger-delta axis", func(t *testing.T) {
		dir, ok := GreedyStepTowards(rng, maze.Position{X: 5, Y: 5}, maze.Position{X: 10, Y: 6}, alwaysOpen)
		assert.True(t, ok)
		assert.Equal(t, maze.East, dir)

		dir, ok = GreedyStepTowards(rng, maze.Position{X: 5, Y: 10}, maze.Position{X: 6, Y: 5}, alwaysOpen)
		assert.True(t, ok)
		assert.Equal(t, maze.North, dir)
	})

	t.Run("falls back to the secondary axis when blocked", func(t *testing.T) {
		blockEast := func(d maze.Direction) bool { return d != maze.East }
		dir, ok := GreedyStepTowards(rng, maze.Position{X: 5, Y: 5}, maze.Position{X: 10, Y: 6}, blockEast)
		assert.True(t, ok)
		assert.Equal(t, maze.South, dir, "secondary axis points toward the target")
	})

	t.Run("at target returns no direction", func(t *testing.T) {
		_, ok := GreedyStepTowards(rng, maze.Position{X: 5, Y: 5}, maze.Position{X: 5, Y: 5}, alwaysOpen)
		assert.False(t, ok)
	})

	t.Run("fully blocked returns no direction", func(t *testing.T) {
		blocked := func(maze.Direction) bool { return false }
		_, ok := GreedyStepTowards(rng, maze.Position{X: 5, Y: 5}, maze.Position{X: 10, Y: 6}, blocked)
		assert.False(t, ok)
	})

	t.Run("unblocked step strictly decreases Manhattan distance", func(t *testing.T) {
		for trial := 0; trial < 100; trial++ {
			current := maze.Position{X: rng.Intn(20), Y: rng.Intn(20)}
			target := maze.Position{X: rng.Intn(20), Y: rng.Intn(20)}
			if current == target {
				continue
			}

			dir, ok := GreedyStepTowards(rng, current, target, alwaysOpen)
			assert.True(t, ok)
			next := dir.Apply(current)
			assert.Less(t, manhattanBetween(next, target), manhattanBetween(current, target))
		}
	})

	t.Run("equal deltas pick one of the two closing axes", func(t *testing.T) {
		for trial := 0; trial < 20; trial++ {
			dir, ok := GreedyStepTowards(rng, maze.Position{X: 0, Y: 0}, maze.Position{X: 3, Y: 3}, alwaysOpen)
			assert.True(t, ok)
			assert.Contains(t, []maze.Direction{maze.East, maze.South}, dir)
		}
	})
}

func TestGreedyStepAwayFrom(t *testing.T) {
	rng := rand.New(rand.NewSource(8))
	alwaysOpen := func(maze.Direction) bool { return true }

	t.Run("flees in the opposite direction", func(t *testing.T) {
		dir, ok := GreedyStepAwayFrom(rng, maze.Position{X: 5, Y: 5}, maze.Position{X: 2, Y: 5}, alwaysOpen)
		assert.True(t, ok)
		assert.Equal(t, maze.East, dir)
	})

	t.Run("unblocked step strictly increases Manhattan distance", func(t *testing.T) {
		for trial := 0; trial < 100; trial++ {
			current := maze.Position{X: rng.Intn(20), Y: rng.Intn(20)}
			target := maze.Position{X: rng.Intn(20), Y: rng.Intn(20)}
			if current == target {
				continue
			}

			dir, ok := GreedyStepAwayFrom(rng, current, target, alwaysOpen)
			assert.True(t, ok)
			next := dir.Apply(current)
			assert.Greater(t, manhattanBetween(next, target), manhattanBetween(current, target))
		}
	})

	t.Run("standing on the target gives no preferred direction", func(t *testing.T) {
		pos := maze.Position{X: 5, Y: 5}
		_, ok := GreedyStepAwayFrom(rng, pos, pos, alwaysOpen)
		assert.False(t, ok)
	})
}

func TestNearestWalkableTile(t *testing.T) {
	t.Run("walkable target is returned unchanged", func(t *testing.T) {
		g := maze.NewGrid(9, maze.Path)
		target := maze.Position{X: 4, Y: 4}

		found, ok := NearestWalkableTile(g, target, 3)
		assert.True(t, ok)
		assert.Equal(t, target, found)
	})

	t.Run("finds the closest walkable cell by hop count", func(t *testing.T) {
		g := maze.NewGrid(9, maze.Wall)
		g.Set(4, 6, maze.Path) // 2 hops south of the target
		g.Set(0, 4, maze.Path) // 4 hops west of the target

		found, ok := NearestWalkableTile(g, maze.Position{X: 4, Y: 4}, 5)
		assert.True(t, ok)
		assert.Equal(t, maze.Position{X: 4, Y: 6}, found)
	})

	t.Run("radius excludes distant cells", func(t *testing.T) {
		// Walls out to radius 3, a walkable cell at hop distance 4.
		g := maze.NewGrid(9, maze.Wall)
		g.Set(0, 4, maze.Path)
		target := maze.Position{X: 4, Y: 4}

		_, ok := NearestWalkableTile(g, target, 3)
		assert.False(t, ok, "cell at radius 4 must not be returned with radius 3")

		found, ok := NearestWalkableTile(g, target, 4)
		assert.True(t, ok)
		assert.Equal(t, maze.Position{X: 0, Y: 4}, found)
	})

	t.Run("solid grid yields nothing", func(t *testing.T) {
		g := maze.NewGrid(5, maze.Wall)
		_, ok := NearestWalkableTile(g, maze.Position{X: 2, Y: 2}, 10)
		assert.False(t, ok)
	})
}
