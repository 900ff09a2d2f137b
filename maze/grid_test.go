package maze

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewGrid(t *testing.T) {
	t.Run("even size is raised to next odd", func(t *testing.T) {
		g := NewGrid(20, Path)
		assert.Equal(t, 21, g.Size())
	})

	t.Run("tiny size is clamped", func(t *testing.T) {
		g := NewGrid(0, Path)
		assert.Equal(t, 3, g.Size())
	})

	t.Run("fill state applies everywhere", func(t *testing.T) {
		g := NewGrid(5, Wall)
		assert.Equal(t, 0, g.CountPath())

		g = NewGrid(5, Path)
		assert.Equal(t, 25, g.CountPath())
	})
}

func TestGridQueries(t *testing.T) {
	g := NewGrid(5, Path)
	g.Set(2, 2, Wall)

	t.Run("out of bounds reads as wall", func(t *testing.T) {
		assert.True(t, g.IsWall(-1, 0))
		assert.True(t, g.IsWall(0, -1))
		assert.True(t, g.IsWall(5, 0))
		assert.True(t, g.IsWall(0, 5))
	})

	t.Run("can move to path but not wall", func(t *testing.T) {
		from := Position{X: 1, Y: 2}
		assert.True(t, g.CanMoveTo(from, Position{X: 1, Y: 1}))
		assert.False(t, g.CanMoveTo(from, Position{X: 2, Y: 2}))
		assert.False(t, g.CanMoveTo(from, Position{X: -1, Y: 2}))
	})

	t.Run("path degree counts open orthogonal neighbors", func(t *testing.T) {
		assert.Equal(t, 4, g.PathDegree(Position{X: 1, Y: 1}))
		assert.Equal(t, 3, g.PathDegree(Position{X: 1, Y: 2}))
		assert.Equal(t, 2, g.PathDegree(Position{X: 0, Y: 0}))
	})

	t.Run("out of bounds writes are ignored", func(t *testing.T) {
		g.Set(-1, 0, Wall)
		g.Set(0, 9, Wall)
		assert.False(t, g.IsWall(0, 0))
	})
}

func TestDirections(t *testing.T) {
	t.Run("apply moves one step", func(t *testing.T) {
		pos := Position{X: 3, Y: 3}
		assert.Equal(t, Position{X: 3, Y: 2}, North.Apply(pos))
		assert.Equal(t, Position{X: 4, Y: 3}, East.Apply(pos))
		assert.Equal(t, Position{X: 3, Y: 4}, South.Apply(pos))
		assert.Equal(t, Position{X: 2, Y: 3}, West.Apply(pos))
	})

	t.Run("opposites round-trip", func(t *testing.T) {
		pos := Position{X: 3, Y: 3}
		for _, dir := range Directions {
			assert.Equal(t, dir, dir.Opposite().Opposite())
			assert.Equal(t, pos, dir.Opposite().Apply(dir.Apply(pos)))
		}
	})
}

func TestGridClone(t *testing.T) {
	g := NewGrid(5, Path)
	g.Set(1, 1, Wall)

	clone := g.Clone()
	clone.Set(3, 3, Wall)

	assert.True(t, clone.IsWall(1, 1))
	assert.False(t, g.IsWall(3, 3), "mutating the clone must not touch the original")
}
