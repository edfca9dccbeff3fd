package maze

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDirection(t *testing.T) {
	t.Run("deltas are unit translations", func(t *testing.T) {
		assert.Equal(t, Location{X: 0, Y: 1}, Up.Delta())
		assert.Equal(t, Location{X: 1, Y: 0}, Right.Delta())
		assert.Equal(t, Location{X: 0, Y: -1}, Down.Delta())
		assert.Equal(t, Location{X: -1, Y: 0}, Left.Delta())
	})

	t.Run("opposites pair up", func(t *testing.T) {
		assert.Equal(t, Down, Up.Opposite())
		assert.Equal(t, Up, Down.Opposite())
		assert.Equal(t, Left, Right.Opposite())
		assert.Equal(t, Right, Left.Opposite())
	})

	t.Run("turns cycle clockwise and back", func(t *testing.T) {
		for _, d := range Directions {
			assert.Equal(t, d, d.Right().Left())
			assert.Equal(t, d, d.Left().Right())
			assert.Equal(t, d, d.Right().Right().Right().Right())
			assert.Equal(t, d.Opposite(), d.Right().Right())
		}
	})

	t.Run("parse accepts the four tokens", func(t *testing.T) {
		for _, d := range Directions {
			parsed, err := ParseDirection(d.String())
			assert.NoError(t, err)
			assert.Equal(t, d, parsed)
		}
	})

	t.Run("parse rejects unknown tokens", func(t *testing.T) {
		for _, token := range []string{"", "north", "UP", "upward", "diagonal"} {
			_, err := ParseDirection(token)
			assert.ErrorIs(t, err, ErrInvalidDirection)
		}
	})
}

func TestLocation(t *testing.T) {
	t.Run("add translates", func(t *testing.T) {
		assert.Equal(t, Location{X: 3, Y: 1}, Location{X: 2, Y: 2}.Add(Location{X: 1, Y: -1}))
	})

	t.Run("equal compares by value", func(t *testing.T) {
		assert.True(t, Location{X: 4, Y: 7}.Equal(Location{X: 4, Y: 7}))
		assert.False(t, Location{X: 4, Y: 7}.Equal(Location{X: 7, Y: 4}))
	})

	t.Run("string format", func(t *testing.T) {
		assert.Equal(t, "(2, 5)", Location{X: 2, Y: 5}.String())
	})
}
