/*
Package render draws finished mazes as fixed-width character grids.

The drawing is a pure projection of the maze's wall and traversal state:
nothing in the maze changes while rendering.
*/
package render

import (
	"strings"

	"github.com/beka-birhanu/backtracker-maze/maze"
)

const (
	wallChar   = '#'
	walkerChar = 'X'
	endChar    = 'E'
)

// Text projects the maze onto a (2*width+1) x (2*height+1) character
// canvas. Walls are '#', passages are spaces, the walker is 'X' and the
// end cell is 'E'; unset walker or end locations are simply not drawn.
// Rows print north to south, since the maze's y axis grows upward.
func Text(m *maze.Maze) string {
	width, height := m.Width(), m.Height()
	canvas := make([][]byte, 2*height+1)
	for i := range canvas {
		canvas[i] = []byte(strings.Repeat(" ", 2*width+1))
	}

	current := m.CurrentLocation()
	end := m.EndLocation()

	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			ox, oy := 2*x, 2*y
			if hasWall(m, x, y, maze.Up) {
				canvas[oy+2][ox] = wallChar
				canvas[oy+2][ox+1] = wallChar
				canvas[oy+2][ox+2] = wallChar
			}
			if hasWall(m, x, y, maze.Right) {
				canvas[oy][ox+2] = wallChar
				canvas[oy+1][ox+2] = wallChar
				canvas[oy+2][ox+2] = wallChar
			}
			if hasWall(m, x, y, maze.Down) {
				canvas[oy][ox] = wallChar
				canvas[oy][ox+1] = wallChar
				canvas[oy][ox+2] = wallChar
			}
			if hasWall(m, x, y, maze.Left) {
				canvas[oy][ox] = wallChar
				canvas[oy+1][ox] = wallChar
				canvas[oy+2][ox] = wallChar
			}

			at := maze.Location{X: x, Y: y}
			switch {
			case current != nil && current.Equal(at):
				canvas[oy+1][ox+1] = walkerChar
			case end != nil && end.Equal(at):
				canvas[oy+1][ox+1] = endChar
			}
		}
	}

	var b strings.Builder
	b.Grow((2*width + 2) * (2*height + 1))
	for y := 2 * height; y >= 0; y-- {
		b.Write(canvas[y])
		b.WriteByte('\n')
	}
	return b.String()
}

// hasWall reads a wall flag for a known in-grid cell.
func hasWall(m *maze.Maze, x, y int, d maze.Direction) bool {
	wall, err := m.HasWall(x, y, d)
	if err != nil {
		panic(err)
	}
	return wall
}
