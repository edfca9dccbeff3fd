/*
Package maze generates perfect rectangular mazes and exposes a small
movement interface for walking them.

Generation uses a randomized recursive backtracker: the carved passages
form a spanning tree of the cell grid, so every pair of cells is connected
by exactly one path. On top of the carved grid a Maze keeps traversal
state, which is the walker's location, its facing direction and the finish
cell, driven through Move, TurnLeft, TurnRight and the query methods.
*/
package maze

import (
	"fmt"
	"math/rand"
	"time"
)

// Maze is a carved grid plus traversal state. Borders are immutable once
// New returns. A Maze is not safe for concurrent use; callers wanting
// parallel exploration hold one Maze per walker.
type Maze struct {
	grid    *grid
	rng     *rand.Rand
	current *Location
	end     *Location
	facing  Direction
}

// New generates a maze of the given dimensions. Width and height must
// both be at least 1 and describe at least two cells, otherwise
// ErrInvalidDimensions is returned. The walker faces Up and has no start
// or end location until one of the start/end methods is called.
func New(width, height int) (*Maze, error) {
	return NewWithRand(width, height, rand.New(rand.NewSource(time.Now().UnixNano())))
}

// NewWithRand is New with a caller-supplied randomness source, for
// reproducible generation.
func NewWithRand(width, height int, rng *rand.Rand) (*Maze, error) {
	g, err := newGrid(width, height)
	if err != nil {
		return nil, err
	}
	carve(g, rng)

	return &Maze{grid: g, rng: rng, facing: Up}, nil
}

// Width returns the number of columns.
func (m *Maze) Width() int { return m.grid.width }

// Height returns the number of rows.
func (m *Maze) Height() int { return m.grid.height }

// HasWall reports whether the cell at (x, y) still has its wall in
// direction d. Out-of-grid coordinates are rejected with
// ErrInvalidLocation.
func (m *Maze) HasWall(x, y int, d Direction) (bool, error) {
	loc := Location{X: x, Y: y}
	if !m.grid.inBounds(loc) {
		return false, fmt.Errorf("%w: %s", ErrInvalidLocation, loc)
	}
	return m.grid.at(loc).borders[d], nil
}

// StartAt places the walker on (x, y). On an out-of-grid location it
// returns ErrInvalidLocation and leaves the walker where it was.
func (m *Maze) StartAt(x, y int) error {
	loc := Location{X: x, Y: y}
	if !m.grid.inBounds(loc) {
		return fmt.Errorf("%w: cannot start at %s", ErrInvalidLocation, loc)
	}
	m.current = &loc
	return nil
}

// StartAtOrigin places the walker on (0, 0).
func (m *Maze) StartAtOrigin() {
	m.current = &Location{}
}

// StartAtRandom places the walker on a uniformly random cell, avoiding
// the previous start location when one was set. Non-repetition is best
// effort, not a contract.
func (m *Maze) StartAtRandom() {
	m.current = m.randomLocation(m.current)
}

// EndAt sets the finish cell to (x, y). On an out-of-grid location it
// returns ErrInvalidLocation and leaves the finish cell unchanged.
func (m *Maze) EndAt(x, y int) error {
	loc := Location{X: x, Y: y}
	if !m.grid.inBounds(loc) {
		return fmt.Errorf("%w: cannot end at %s", ErrInvalidLocation, loc)
	}
	m.end = &loc
	return nil
}

// EndAtTopRight sets the finish cell to (width-1, height-1).
func (m *Maze) EndAtTopRight() {
	m.end = &Location{X: m.grid.width - 1, Y: m.grid.height - 1}
}

// EndAtRandom sets the finish cell to a uniformly random cell, avoiding
// the previous finish when one was set. Non-repetition is best effort,
// not a contract.
func (m *Maze) EndAtRandom() {
	m.end = m.randomLocation(m.end)
}

// randomLocation draws in-bounds locations until one differs from prev by
// value. The grid holds at least two cells, so the loop terminates with
// probability one.
func (m *Maze) randomLocation(prev *Location) *Location {
	for {
		loc := Location{X: m.rng.Intn(m.grid.width), Y: m.rng.Intn(m.grid.height)}
		if prev == nil || !loc.Equal(*prev) {
			return &loc
		}
	}
}

// CurrentLocation returns a copy of the walker's location, or nil before
// any start method has been called.
func (m *Maze) CurrentLocation() *Location {
	if m.current == nil {
		return nil
	}
	loc := *m.current
	return &loc
}

// EndLocation returns a copy of the finish cell, or nil before any end
// method has been called.
func (m *Maze) EndLocation() *Location {
	if m.end == nil {
		return nil
	}
	loc := *m.end
	return &loc
}

// Facing returns the walker's facing direction.
func (m *Maze) Facing() Direction { return m.facing }

// mustCurrent returns the walker's cell. Using movement before a start
// location is set is a programming error, not a recoverable one.
func (m *Maze) mustCurrent() *cell {
	if m.current == nil {
		panic("maze: movement before a start location was set")
	}
	return m.grid.at(*m.current)
}

// CanMove reports whether the wall ahead of the walker is open.
func (m *Maze) CanMove() bool {
	return !m.mustCurrent().borders[m.facing]
}

// Move advances one cell in the facing direction and reports true. With a
// wall in the way it moves nothing and reports false. An open wall always
// leads to an in-grid cell, so Move can never leave the maze.
func (m *Maze) Move() bool {
	if !m.CanMove() {
		return false
	}
	next := m.current.Add(m.facing.Delta())
	m.current = &next
	return true
}

// TurnLeft rotates the facing direction 90 degrees counterclockwise.
func (m *Maze) TurnLeft() {
	m.facing = m.facing.Left()
}

// TurnRight rotates the facing direction 90 degrees clockwise.
func (m *Maze) TurnRight() {
	m.facing = m.facing.Right()
}

// IsFinished reports whether the walker stands on the finish cell. Both
// the start and end locations must have been set; asking earlier is a
// programming error.
func (m *Maze) IsFinished() bool {
	if m.current == nil || m.end == nil {
		panic("maze: finish check before start and end locations were set")
	}
	return m.current.Equal(*m.end)
}
