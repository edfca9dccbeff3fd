package maze

import "fmt"

// Location is a 2D integer coordinate on the maze grid. The origin is the
// bottom-left cell and Y grows upward.
type Location struct {
	X int
	Y int
}

// Add returns a new location translated by other's coordinates.
func (l Location) Add(other Location) Location {
	return Location{X: l.X + other.X, Y: l.Y + other.Y}
}

// Equal reports whether both coordinates match.
func (l Location) Equal(other Location) bool {
	return l.X == other.X && l.Y == other.Y
}

// String formats the location as "(x, y)".
func (l Location) String() string {
	return fmt.Sprintf("(%d, %d)", l.X, l.Y)
}
