package maze

import "fmt"

// Direction is one of the four movement directions, in clockwise order
// starting from Up.
type Direction int

// Movement directions.
const (
	Up Direction = iota
	Right
	Down
	Left

	directionCount = 4
)

// Directions lists every direction in clockwise order, for iteration.
var Directions = [directionCount]Direction{Up, Right, Down, Left}

// Delta returns the unit translation for the direction.
func (d Direction) Delta() Location {
	switch d {
	case Up:
		return Location{X: 0, Y: 1}
	case Right:
		return Location{X: 1, Y: 0}
	case Down:
		return Location{X: 0, Y: -1}
	case Left:
		return Location{X: -1, Y: 0}
	}
	panic(fmt.Sprintf("maze: delta of invalid direction %d", int(d)))
}

// Opposite returns the reverse direction.
func (d Direction) Opposite() Direction {
	return (d + 2) % directionCount
}

// Left returns the direction after a 90 degree counterclockwise turn.
func (d Direction) Left() Direction {
	return (d + 3) % directionCount
}

// Right returns the direction after a 90 degree clockwise turn.
func (d Direction) Right() Direction {
	return (d + 1) % directionCount
}

// String returns the direction token accepted by ParseDirection.
func (d Direction) String() string {
	switch d {
	case Up:
		return "up"
	case Right:
		return "right"
	case Down:
		return "down"
	case Left:
		return "left"
	}
	return fmt.Sprintf("direction(%d)", int(d))
}

// ParseDirection converts a direction token to a Direction. Tokens outside
// "up", "right", "down" and "left" are rejected with ErrInvalidDirection.
func ParseDirection(token string) (Direction, error) {
	switch token {
	case "up":
		return Up, nil
	case "right":
		return Right, nil
	case "down":
		return Down, nil
	case "left":
		return Left, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrInvalidDirection, token)
}
