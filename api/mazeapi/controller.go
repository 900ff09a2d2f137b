// Package mazeapi exposes maze generation and path queries over HTTP.
package mazeapi

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/tselot-games/mirrormaze/maze"
	"github.com/tselot-games/mirrormaze/pathfind"
)

// MazeBuilder produces finalized mazes; satisfied by maze.Orchestrator.
type MazeBuilder interface {
	Build(size int) *maze.Maze
}

// Controller errors.
var ErrNilBuilder = errors.New("maze builder is required")

// Controller serves maze generation and shortest-path queries.
type Controller struct {
	builder     MazeBuilder
	defaultSize int
}

// NewController initializes a maze controller. defaultSize is used when a
// request does not carry a size parameter.
func NewController(builder MazeBuilder, defaultSize int) (*Controller, error) {
	if builder == nil {
		return nil, ErrNilBuilder
	}
	return &Controller{builder: builder, defaultSize: defaultSize}, nil
}

// RegisterRoutes registers the maze routes.
func (c *Controller) RegisterRoutes(route *gin.RouterGroup) {
	mazes := route.Group("/maze")
	{
		mazes.GET("", c.generate)
		mazes.GET("/path", c.path)
	}
}

// generate handles maze generation requests.
func (c *Controller) generate(ctx *gin.Context) {
	size, err := c.sizeParam(ctx)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	m := c.builder.Build(size)
	ctx.JSON(http.StatusOK, newMazeResponse(m))
}

// path generates a maze and answers a shortest-path query over it. from/to
// default to the maze's own endpoints.
func (c *Controller) path(ctx *gin.Context) {
	size, err := c.sizeParam(ctx)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	m := c.builder.Build(size)

	from, err := positionParam(ctx, "from", m.StartPosition())
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	to, err := positionParam(ctx, "to", m.EndPosition())
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	path := pathfind.AStarShortestPath(m.Grid(), from, to)
	ctx.JSON(http.StatusOK, newPathResponse(path))
}

func (c *Controller) sizeParam(ctx *gin.Context) (int, error) {
	raw := ctx.DefaultQuery("size", strconv.Itoa(c.defaultSize))
	size, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("size must be an integer: %q", raw)
	}
	return size, nil
}

// positionParam parses an "x,y" query parameter, returning fallback when the
// parameter is absent.
func positionParam(ctx *gin.Context, name string, fallback maze.Position) (maze.Position, error) {
	raw, exists := ctx.GetQuery(name)
	if !exists {
		return fallback, nil
	}

	var pos maze.Position
	if _, err := fmt.Sscanf(raw, "%d,%d", &pos.X, &pos.Y); err != nil {
		return maze.Position{}, fmt.Errorf("%s must be of the form x,y: %q", name, raw)
	}
	return pos, nil
}
