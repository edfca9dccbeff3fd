package maze

import "fmt"

// grid owns the maze cells in a row-major arena (x + y*width). Its shape
// never changes after construction; border and visited state mutate only
// while the generator carves.
type grid struct {
	width  int
	height int
	cells  []cell
}

// newGrid builds a fully walled grid. Both dimensions must be at least 1
// and describe at least two cells; a single-cell maze has no start/end
// traversal worth speaking of.
func newGrid(width, height int) (*grid, error) {
	if width < 1 || height < 1 || width*height < 2 {
		return nil, fmt.Errorf("%w: %dx%d", ErrInvalidDimensions, width, height)
	}

	g := &grid{
		width:  width,
		height: height,
		cells:  make([]cell, width*height),
	}
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			g.cells[x+y*width] = newCell(Location{X: x, Y: y})
		}
	}
	return g, nil
}

// inBounds reports whether loc lies inside the grid.
func (g *grid) inBounds(loc Location) bool {
	return loc.X >= 0 && loc.X < g.width && loc.Y >= 0 && loc.Y < g.height
}

// at returns the cell at loc. Callers bounds-check first.
func (g *grid) at(loc Location) *cell {
	return &g.cells[loc.X+loc.Y*g.width]
}

// neighbor returns the adjacent cell in direction d, or nil at the grid
// edge.
func (g *grid) neighbor(loc Location, d Direction) *cell {
	dest := loc.Add(d.Delta())
	if !g.inBounds(dest) {
		return nil
	}
	return g.at(dest)
}
