package render

import (
	"math/rand"
	"strings"
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

func TestTextTwoByOne(t *testing.T) {
	// A 2x1 maze has exactly one layout, so the drawing is deterministic.
	m := newTestMaze(t, 2, 1, 1)

	t.Run("without walker and end", func(t *testing.T) {
		assert.Equal(t, "#####\n#   #\n#####\n", Text(m))
	})

	t.Run("with walker and end", func(t *testing.T) {
		m.StartAtOrigin()
		require.NoError(t, m.EndAt(1, 0))
		assert.Equal(t, "#####\n#X E#\n#####\n", Text(m))
	})

	t.Run("walker hides the end marker", func(t *testing.T) {
		require.NoError(t, m.StartAt(1, 0))
		assert.Equal(t, "#####\n#  X#\n#####\n", Text(m))
	})
}

func TestTextCanvasShape(t *testing.T) {
	m := newTestMaze(t, 7, 4, 99)
	lines := strings.Split(strings.TrimRight(Text(m), "\n"), "\n")

	require.Len(t, lines, 2*4+1)
	for _, line := range lines {
		assert.Len(t, line, 2*7+1)
	}

	t.Run("outer boundary is solid", func(t *testing.T) {
		assert.Equal(t, strings.Repeat("#", 15), lines[0])
		assert.Equal(t, strings.Repeat("#", 15), lines[len(lines)-1])
		for _, line := range lines {
			assert.Equal(t, byte('#'), line[0])
			assert.Equal(t, byte('#'), line[len(line)-1])
		}
	})
}

func TestTextMarksWalkerPosition(t *testing.T) {
	m := newTestMaze(t, 3, 3, 5)
	require.NoError(t, m.StartAt(1, 2))

	lines := strings.Split(Text(m), "\n")
	// Cell (x, y) renders its interior at column 2x+1 and, counting from
	// the top of the drawing, at line 2*(height-1-y)+1.
	assert.Equal(t, byte('X'), lines[1][3])
}
