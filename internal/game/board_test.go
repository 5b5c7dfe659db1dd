package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rocketscienceinc/stones/internal/apperror"
	"github.com/rocketscienceinc/stones/internal/entity"
)

func TestNewBoard(t *testing.T) {
	t.Run("Accepts sizes from 8 to 19", func(t *testing.T) {
		for _, size := range []int{MinBoardSize, 15, MaxBoardSize} {
			// When: a board is created with a supported size
			board, err := NewBoard(size)

			// Then: it is empty and has the requested size
			require.NoError(t, err)
			assert.Equal(t, size, board.Size())
			assert.Equal(t, 0, board.Count(entity.Black)+board.Count(entity.White))
		}
	})

	t.Run("Rejects sizes outside the range", func(t *testing.T) {
		for _, size := range []int{0, 7, 20} {
			// When: a board is created with an unsupported size
			_, err := NewBoard(size)

			// Then: ErrInvalidBoardSize is returned
			require.ErrorIs(t, err, apperror.ErrInvalidBoardSize)
			assert.ErrorIs(t, err, apperror.ErrUserInput)
		}
	})
}

func TestBoard_Get(t *testing.T) {
	board, err := NewBoard(9)
	require.NoError(t, err)

	board.set(at(4, 5), entity.White)

	t.Run("Returns stone or None", func(t *testing.T) {
		color, err := board.Get(at(4, 5))
		require.NoError(t, err)
		assert.Equal(t, entity.White, color)

		color, err = board.Get(at(5, 4))
		require.NoError(t, err)
		assert.Equal(t, entity.None, color)
	})

	t.Run("Rejects positions off the board", func(t *testing.T) {
		for _, pos := range []entity.Position{at(-1, 0), at(0, -1), at(9, 0), at(0, 9)} {
			_, err := board.Get(pos)
			assert.ErrorIs(t, err, apperror.ErrOutOfBounds, "position %s", pos)
		}
	})
}

func TestBoard_IsFull(t *testing.T) {
	// Given: an empty 8x8 board
	board, err := NewBoard(8)
	require.NoError(t, err)
	require.False(t, board.IsFull())

	// When: every cell but one is filled
	for i := range board.cells[1:] {
		board.cells[i+1] = entity.Black
	}

	// Then: the board is not full until the last cell is taken
	assert.False(t, board.IsFull())
	board.set(at(0, 0), entity.White)
	assert.True(t, board.IsFull())
	assert.Equal(t, 63, board.Count(entity.Black))
	assert.Equal(t, 1, board.Count(entity.White))
}

func TestBoard_group(t *testing.T) {
	// Given: a black L-shaped group in the corner touching one white stone
	board, err := NewBoard(9)
	require.NoError(t, err)
	board.set(at(0, 0), entity.Black)
	board.set(at(0, 1), entity.Black)
	board.set(at(1, 0), entity.Black)
	board.set(at(0, 2), entity.White)

	// When: collecting the group from one of its stones
	stones, liberties := board.group(at(1, 0))

	// Then: all three stones and exactly their empty neighbors are returned
	assert.ElementsMatch(t, []entity.Position{at(0, 0), at(0, 1), at(1, 0)}, stones)
	assert.ElementsMatch(t, []entity.Position{at(1, 1), at(2, 0)}, liberties)
}
