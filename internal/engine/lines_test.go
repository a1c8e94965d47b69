package engine

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLines(t *testing.T) {
	t.Run("Enumerates 2N+2 distinct valid lines for any size", func(t *testing.T) {
		for _, size := range []int{3, 4, 5, 7} {
			t.Run(fmt.Sprintf("size %d", size), func(t *testing.T) {
				// When: enumerating the winning lines
				lines := Lines(size)

				// Then: there are exactly 2N+2 of them
				require.Len(t, lines, 2*size+2)

				// Then: every line holds N distinct indices inside the board
				for _, line := range lines {
					require.Len(t, line, size)

					seen := make(map[int]bool, size)
					for _, cell := range line {
						assert.GreaterOrEqual(t, cell, 0)
						assert.Less(t, cell, size*size)
						assert.False(t, seen[cell], "line %v repeats cell %d", line, cell)
						seen[cell] = true
					}
				}
			})
		}
	})

	t.Run("3x3 lines come out in row, column, diagonal order", func(t *testing.T) {
		// When: enumerating the winning lines for the classic board
		lines := Lines(3)

		// Then: rows first, then columns, then both diagonals
		expected := []Line{
			{0, 1, 2},
			{3, 4, 5},
			{6, 7, 8},
			{0, 3, 6},
			{1, 4, 7},
			{2, 5, 8},
			{0, 4, 8},
			{2, 4, 6},
		}
		require.Equal(t, expected, lines)
	})

	t.Run("4x4 diagonals land on the expected cells", func(t *testing.T) {
		// When: enumerating the winning lines for a 4x4 board
		lines := Lines(4)

		// Then: the last two lines are the main and anti diagonals
		require.Len(t, lines, 10)
		assert.Equal(t, Line{0, 5, 10, 15}, lines[8])
		assert.Equal(t, Line{3, 6, 9, 12}, lines[9])
	})

	t.Run("Panics below the minimum size", func(t *testing.T) {
		// When/Then: a 2x2 board is a programmer error
		require.Panics(t, func() { Lines(2) })
	})
}
