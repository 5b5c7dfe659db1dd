package game

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/rocketscienceinc/stones/internal/entity"
)

func newTestGame(t *testing.T, gameType entity.GameType, size int) *Game {
	t.Helper()

	game, err := New(gameType, size, DefaultOptions())
	require.NoError(t, err)

	return game
}

func at(row, col int) entity.Position {
	return entity.NewPosition(row, col)
}

// play places the given stones in order, each for whoever is to move.
func play(t *testing.T, game *Game, moves ...entity.Position) {
	t.Helper()

	for _, move := range moves {
		require.NoError(t, game.PlayMove(move), "move %s", move)
	}
}

// setupKo builds the classic ko shape and lets Black take the white stone at (1,1):
//
//	. B W .
//	B . B W
//	. B W .
func setupKo(t *testing.T, game *Game) {
	t.Helper()

	play(t, game,
		at(0, 1), at(0, 2),
		at(1, 0), at(1, 1),
		at(2, 1), at(2, 2),
		at(8, 8), at(1, 3),
		at(1, 2),
	)
}
