/*
Package solver demonstrates walking a maze purely through its public
movement interface.
*/
package solver

import (
	"errors"
	"fmt"

	"github.com/beka-birhanu/backtracker-maze/maze"
)

// ErrOutOfSteps reports that the follower exhausted its step budget
// before reaching the end cell.
var ErrOutOfSteps = errors.New("wall follower ran out of steps")

// WallFollow drives the walker with the right-hand rule: turn right, then
// rotate left until the way ahead is open, then step. The maze's passages
// form a tree, so the follower always reaches the end cell in a bounded
// number of steps. It returns the number of moves made, or ErrOutOfSteps
// once maxSteps moves were spent without finishing. Start and end
// locations must be set before calling.
func WallFollow(m *maze.Maze, maxSteps int) (int, error) {
	steps := 0
	for !m.IsFinished() {
		if steps >= maxSteps {
			return steps, fmt.Errorf("%w: budget of %d spent", ErrOutOfSteps, maxSteps)
		}
		m.TurnRight()
		for !m.CanMove() {
			m.TurnLeft()
		}
		m.Move()
		steps++
	}
	return steps, nil
}
