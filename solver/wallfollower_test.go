package solver

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/beka-birhanu/backtracker-maze/maze"
)

func newTestMaze(t *testing.T, width, height int, seed int64) *maze.Maze {
	t.Helper()
	m, err := maze.NewWithRand(width, height, rand.New(rand.NewSource(seed)))
	require.NoError(t, err)
	return m
}

func TestWallFollowSolvesPerfectMazes(t *testing.T) {
	// A full right-hand tour of a tree maze crosses every passage at most
	// twice, so 2*width*height moves is always enough.
	for seed := int64(0); seed < 20; seed++ {
		m := newTestMaze(t, 10, 10, seed)
		m.StartAtOrigin()
		m.EndAtTopRight()

		steps, err := WallFollow(m, 2*10*10)
		require.NoError(t, err, "seed %d", seed)
		assert.True(t, m.IsFinished())
		assert.Greater(t, steps, 0)
		assert.Equal(t, *m.EndLocation(), *m.CurrentLocation())
	}
}

func TestWallFollowFromRandomEndpoints(t *testing.T) {
	m := newTestMaze(t, 8, 5, 77)
	m.StartAtRandom()
	m.EndAtRandom()

	_, err := WallFollow(m, 2*8*5)
	require.NoError(t, err)
	assert.True(t, m.IsFinished())
}

func TestWallFollowAlreadyFinished(t *testing.T) {
	m := newTestMaze(t, 3, 3, 4)
	require.NoError(t, m.StartAt(1, 1))
	require.NoError(t, m.EndAt(1, 1))

	steps, err := WallFollow(m, 10)
	require.NoError(t, err)
	assert.Zero(t, steps)
}

func TestWallFollowOutOfSteps(t *testing.T) {
	m := newTestMaze(t, 10, 10, 13)
	m.StartAtOrigin()
	m.EndAtTopRight()

	steps, err := WallFollow(m, 1)
	assert.ErrorIs(t, err, ErrOutOfSteps)
	assert.Equal(t, 1, steps)
}
