package mazeapi

import "github.com/tselot-games/mirrormaze/maze"

// PositionResponse is a grid coordinate in transport form.
type PositionResponse struct {
	X int `json:"x"`
	Y int `json:"y"`
}

// MazeResponse is a generated maze in transport form: rows of 0 (path) and
// 1 (wall) plus the chosen endpoints.
type MazeResponse struct {
	Size  int              `json:"size"`
	Grid  [][]int          `json:"grid"`
	Start PositionResponse `json:"start"`
	End   PositionResponse `json:"end"`
}

// PathResponse is a shortest-path query result. Positions is empty when no
// path exists.
type PathResponse struct {
	Found     bool               `json:"found"`
	Length    int                `json:"length"`
	Positions []PositionResponse `json:"positions"`
}

func newMazeResponse(m *maze.Maze) MazeResponse {
	g := m.Grid()
	size := g.Size()

	grid := make([][]int, size)
	for y := 0; y < size; y++ {
		grid[y] = make([]int, size)
		for x := 0; x < size; x++ {
			if g.IsWall(x, y) {
				grid[y][x] = 1
			}
		}
	}

	return MazeResponse{
		Size:  size,
		Grid:  grid,
		Start: newPositionResponse(m.StartPosition()),
		End:   newPositionResponse(m.EndPosition()),
	}
}

func newPositionResponse(pos maze.Position) PositionResponse {
	return PositionResponse{X: pos.X, Y: pos.Y}
}

func newPathResponse(path []maze.Position) PathResponse {
	response := PathResponse{
		Found:     path != nil,
		Positions: []PositionResponse{},
	}
	for _, pos := range path {
		response.Positions = append(response.Positions, newPositionResponse(pos))
	}
	response.Length = len(response.Positions)
	return response
}
