package usecase

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/rocketscienceinc/stones/internal/apperror"
	"github.com/rocketscienceinc/stones/internal/entity"
	"github.com/rocketscienceinc/stones/internal/game"
	mockedUseCase "github.com/rocketscienceinc/stones/mocks/usecase"
)

var errDiskFull = errors.New("disk full")

func newTestManager(t *testing.T) (*GameManager, *mockedUseCase.MocksaveRepoDep) {
	t.Helper()

	repo := mockedUseCase.NewMocksaveRepoDep(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	return NewGameManager(logger, repo, game.DefaultOptions()), repo
}

func TestGameManager_NoActiveGame(t *testing.T) {
	manager, _ := newTestManager(t)
	ctx := context.Background()

	// Given: a manager that never started a game
	// When: any game operation is called
	// Then: every one of them fails with ErrNoActiveGame
	assert.ErrorIs(t, manager.PlaceStone(0, 0), apperror.ErrNoActiveGame)
	assert.ErrorIs(t, manager.PassTurn(), apperror.ErrNoActiveGame)
	assert.ErrorIs(t, manager.Undo(), apperror.ErrNoActiveGame)
	assert.ErrorIs(t, manager.Resign(entity.None), apperror.ErrNoActiveGame)
	assert.ErrorIs(t, manager.Restart(), apperror.ErrNoActiveGame)
	assert.ErrorIs(t, manager.Save(ctx, "slot"), apperror.ErrNoActiveGame)

	_, err := manager.Board()
	assert.ErrorIs(t, err, apperror.ErrNoActiveGame)

	_, err = manager.Snapshot()
	assert.ErrorIs(t, err, apperror.ErrNoActiveGame)
	assert.False(t, manager.HasGame())
}

func TestGameManager_StartGame(t *testing.T) {
	t.Run("Starts a fresh game", func(t *testing.T) {
		manager, _ := newTestManager(t)

		// When: a go game is started
		require.NoError(t, manager.StartGame(entity.Go, 9))

		// Then: the snapshot describes an empty board with black to move
		snapshot, err := manager.Snapshot()
		require.NoError(t, err)
		assert.Equal(t, entity.Go, snapshot.GameType)
		assert.Equal(t, 9, snapshot.BoardSize)
		assert.Equal(t, entity.Black, snapshot.CurrentPlayer)
		assert.Equal(t, 81, snapshot.Black.StonesRemaining)
		assert.Equal(t, 3, snapshot.White.UndosRemaining)
		assert.False(t, snapshot.Finished)
		assert.Nil(t, snapshot.Result)
	})

	t.Run("Invalid size keeps the running game", func(t *testing.T) {
		manager, _ := newTestManager(t)
		require.NoError(t, manager.StartGame(entity.Gomoku, 15))
		require.NoError(t, manager.PlaceStone(7, 7))

		// When: a new game with an invalid size is requested
		err := manager.StartGame(entity.Go, 25)

		// Then: the error is a user input error and the old game is intact
		require.ErrorIs(t, err, apperror.ErrInvalidBoardSize)
		assert.ErrorIs(t, err, apperror.ErrUserInput)

		snapshot, err := manager.Snapshot()
		require.NoError(t, err)
		assert.Equal(t, entity.Gomoku, snapshot.GameType)
		assert.Equal(t, 1, snapshot.Black.StonesOnBoard)
	})
}

func TestGameManager_PlaceStone(t *testing.T) {
	manager, _ := newTestManager(t)
	require.NoError(t, manager.StartGame(entity.Gomoku, 15))

	// When: black plays a stone
	require.NoError(t, manager.PlaceStone(3, 4))

	// Then: the board shows it and white is to move
	board, err := manager.Board()
	require.NoError(t, err)

	color, err := board.Get(entity.NewPosition(3, 4))
	require.NoError(t, err)
	assert.Equal(t, entity.Black, color)

	snapshot, err := manager.Snapshot()
	require.NoError(t, err)
	assert.Equal(t, entity.White, snapshot.CurrentPlayer)
	assert.Equal(t, 1, snapshot.Moves)

	// And: playing on the same cell is a rule violation
	err = manager.PlaceStone(3, 4)
	assert.ErrorIs(t, err, apperror.ErrCellOccupied)
	assert.ErrorIs(t, err, apperror.ErrRuleViolation)
}

func TestGameManager_PassTurn(t *testing.T) {
	t.Run("Gomoku cannot pass", func(t *testing.T) {
		manager, _ := newTestManager(t)
		require.NoError(t, manager.StartGame(entity.Gomoku, 15))

		err := manager.PassTurn()

		assert.ErrorIs(t, err, apperror.ErrUnsupportedOperation)
	})

	t.Run("Two passes finish a go game", func(t *testing.T) {
		manager, _ := newTestManager(t)
		require.NoError(t, manager.StartGame(entity.Go, 9))
		require.NoError(t, manager.PlaceStone(4, 4))

		// When: both players pass
		require.NoError(t, manager.PassTurn())
		require.NoError(t, manager.PassTurn())

		// Then: black wins on area
		snapshot, err := manager.Snapshot()
		require.NoError(t, err)
		require.True(t, snapshot.Finished)
		require.NotNil(t, snapshot.Result)
		assert.Equal(t, entity.Black, snapshot.Result.Winner)
		assert.Equal(t, entity.ReasonPassesScored, snapshot.Result.Reason)
		assert.Equal(t, &entity.Score{Black: 81, White: 0}, snapshot.Result.Score)
	})
}

func TestGameManager_Undo(t *testing.T) {
	manager, _ := newTestManager(t)
	require.NoError(t, manager.StartGame(entity.Go, 9))
	require.NoError(t, manager.PlaceStone(2, 2))

	// When: the move is undone
	require.NoError(t, manager.Undo())

	// Then: the board is empty again and black spent an undo
	snapshot, err := manager.Snapshot()
	require.NoError(t, err)
	assert.Equal(t, entity.Black, snapshot.CurrentPlayer)
	assert.Equal(t, 0, snapshot.Black.StonesOnBoard)
	assert.Equal(t, 2, snapshot.Black.UndosRemaining)

	// And: undoing with no history fails
	assert.ErrorIs(t, manager.Undo(), apperror.ErrNoMovesToUndo)
}

func TestGameManager_Resign(t *testing.T) {
	t.Run("None resigns for the player to move", func(t *testing.T) {
		manager, _ := newTestManager(t)
		require.NoError(t, manager.StartGame(entity.Gomoku, 15))
		require.NoError(t, manager.PlaceStone(0, 0))

		// When: resign is called without a color while white is to move
		require.NoError(t, manager.Resign(entity.None))

		// Then: black wins by resignation
		snapshot, err := manager.Snapshot()
		require.NoError(t, err)
		require.NotNil(t, snapshot.Result)
		assert.Equal(t, entity.Black, snapshot.Result.Winner)
		assert.Equal(t, entity.ReasonResignation, snapshot.Result.Reason)
	})

	t.Run("Explicit color resigns out of turn", func(t *testing.T) {
		manager, _ := newTestManager(t)
		require.NoError(t, manager.StartGame(entity.Go, 9))

		require.NoError(t, manager.Resign(entity.White))

		snapshot, err := manager.Snapshot()
		require.NoError(t, err)
		assert.Equal(t, entity.Black, snapshot.Result.Winner)

		// And: a finished game cannot be resigned again
		assert.ErrorIs(t, manager.Resign(entity.None), apperror.ErrGameFinished)
	})
}

func TestGameManager_Restart(t *testing.T) {
	manager, _ := newTestManager(t)
	require.NoError(t, manager.StartGame(entity.Go, 13))
	require.NoError(t, manager.PlaceStone(1, 1))
	require.NoError(t, manager.Resign(entity.Black))

	// When: the finished game is restarted
	require.NoError(t, manager.Restart())

	// Then: the same variant and size start over
	snapshot, err := manager.Snapshot()
	require.NoError(t, err)
	assert.Equal(t, entity.Go, snapshot.GameType)
	assert.Equal(t, 13, snapshot.BoardSize)
	assert.False(t, snapshot.Finished)
	assert.Equal(t, 0, snapshot.Moves)
	assert.Equal(t, entity.Black, snapshot.CurrentPlayer)
}

func TestGameManager_SaveAndLoad(t *testing.T) {
	ctx := context.Background()

	t.Run("Saved game is restored", func(t *testing.T) {
		manager, repo := newTestManager(t)
		require.NoError(t, manager.StartGame(entity.Go, 9))
		require.NoError(t, manager.PlaceStone(4, 4))
		require.NoError(t, manager.PassTurn())

		var stored []byte
		repo.EXPECT().
			Save(mock.Anything, "slot", mock.AnythingOfType("[]uint8")).
			RunAndReturn(func(_ context.Context, _ string, data []byte) error {
				stored = data
				return nil
			}).
			Once()

		// Given: the game is saved
		require.NoError(t, manager.Save(ctx, "slot"))
		before, err := manager.Snapshot()
		require.NoError(t, err)

		// And: a different game is started
		require.NoError(t, manager.StartGame(entity.Gomoku, 15))

		repo.EXPECT().
			Load(mock.Anything, "slot").
			Return(stored, nil).
			Once()

		// When: the save is loaded
		require.NoError(t, manager.Load(ctx, "slot"))

		// Then: the snapshot matches the saved one
		after, err := manager.Snapshot()
		require.NoError(t, err)
		assert.Equal(t, before, after)

		// And: a second pass ends the restored game
		require.NoError(t, manager.PassTurn())
		after, err = manager.Snapshot()
		require.NoError(t, err)
		assert.True(t, after.Finished)
	})

	t.Run("Load works without an active game", func(t *testing.T) {
		source, sourceRepo := newTestManager(t)
		require.NoError(t, source.StartGame(entity.Gomoku, 8))
		require.NoError(t, source.PlaceStone(0, 0))

		var stored []byte
		sourceRepo.EXPECT().
			Save(mock.Anything, "g", mock.Anything).
			RunAndReturn(func(_ context.Context, _ string, data []byte) error {
				stored = data
				return nil
			}).
			Once()
		require.NoError(t, source.Save(ctx, "g"))

		manager, repo := newTestManager(t)
		repo.EXPECT().Load(mock.Anything, "g").Return(stored, nil).Once()

		require.NoError(t, manager.Load(ctx, "g"))
		assert.True(t, manager.HasGame())
	})

	t.Run("Save failure is a persistence error", func(t *testing.T) {
		manager, repo := newTestManager(t)
		require.NoError(t, manager.StartGame(entity.Go, 9))

		repo.EXPECT().
			Save(mock.Anything, "slot", mock.Anything).
			Return(errors.Join(apperror.ErrPersistence, errDiskFull)).
			Once()

		err := manager.Save(ctx, "slot")

		require.ErrorIs(t, err, apperror.ErrPersistence)
		assert.ErrorIs(t, err, errDiskFull)
	})

	t.Run("Corrupt save keeps the current game", func(t *testing.T) {
		manager, repo := newTestManager(t)
		require.NoError(t, manager.StartGame(entity.Gomoku, 15))
		require.NoError(t, manager.PlaceStone(7, 7))

		repo.EXPECT().
			Load(mock.Anything, "broken").
			Return([]byte(`{"version": 1, "game_type": "go"}`), nil).
			Once()

		// When: a save without state is loaded
		err := manager.Load(ctx, "broken")

		// Then: it is reported as corrupt and the running game is untouched
		require.ErrorIs(t, err, apperror.ErrCorruptSave)
		assert.ErrorIs(t, err, apperror.ErrPersistence)

		snapshot, err := manager.Snapshot()
		require.NoError(t, err)
		assert.Equal(t, entity.Gomoku, snapshot.GameType)
		assert.Equal(t, 1, snapshot.Black.StonesOnBoard)
	})

	t.Run("Unknown game type in save", func(t *testing.T) {
		manager, repo := newTestManager(t)

		repo.EXPECT().
			Load(mock.Anything, "chess").
			Return([]byte(`{"version": 1, "game_type": "chess", "state": {}}`), nil).
			Once()

		err := manager.Load(ctx, "chess")

		assert.ErrorIs(t, err, apperror.ErrUnknownGameType)
		assert.False(t, manager.HasGame())
	})

	t.Run("Missing save", func(t *testing.T) {
		manager, repo := newTestManager(t)

		repo.EXPECT().
			Load(mock.Anything, "nothing").
			Return(nil, apperror.ErrSaveNotFound).
			Once()

		err := manager.Load(ctx, "nothing")

		assert.ErrorIs(t, err, apperror.ErrSaveNotFound)
	})
}
