package usecase

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/rocketscienceinc/stones/internal/apperror"
	"github.com/rocketscienceinc/stones/internal/entity"
	"github.com/rocketscienceinc/stones/internal/game"
	"github.com/rocketscienceinc/stones/internal/savegame"
)

type saveRepoDep interface {
	Save(ctx context.Context, name string, data []byte) error
	Load(ctx context.Context, name string) ([]byte, error)
}

// PlayerStatus is the per-color part of a Snapshot.
type PlayerStatus struct {
	StonesOnBoard   int
	StonesRemaining int
	UndosRemaining  int
	Captured        int
}

// Snapshot is a read-only copy of everything a status display needs.
type Snapshot struct {
	GameType      entity.GameType
	BoardSize     int
	CurrentPlayer entity.Color
	Black         PlayerStatus
	White         PlayerStatus
	Passes        int
	Ko            *entity.Position
	Moves         int
	Finished      bool
	Result        *entity.GameResult
}

func (that Snapshot) Player(color entity.Color) PlayerStatus {
	if color == entity.White {
		return that.White
	}

	return that.Black
}

// GameManager owns the single live game and forwards player intents to it.
type GameManager struct {
	logger   *slog.Logger
	saveRepo saveRepoDep
	options  game.Options

	game *game.Game
}

func NewGameManager(logger *slog.Logger, saveRepo saveRepoDep, options game.Options) *GameManager {
	return &GameManager{
		logger:   logger.With("component", "game_manager"),
		saveRepo: saveRepo,
		options:  options,
	}
}

// StartGame - replaces the current game with a fresh one. The current game survives a failed start.
func (that *GameManager) StartGame(gameType entity.GameType, size int) error {
	log := that.logger.With("method", "StartGame")

	newGame, err := game.New(gameType, size, that.options)
	if err != nil {
		return fmt.Errorf("failed to start game: %w", err)
	}

	that.game = newGame
	log.Info("game started", "type", gameType, "size", size)

	return nil
}

// PlaceStone - plays the current player's stone at a 0-indexed position.
func (that *GameManager) PlaceStone(row, col int) error {
	current, err := that.active()
	if err != nil {
		return err
	}

	color := current.CurrentPlayer()
	if err = current.PlayMove(entity.NewPosition(row, col)); err != nil {
		that.logger.Debug("move rejected", "method", "PlaceStone", "color", color, "row", row, "col", col, "error", err)
		return err
	}

	that.logger.Debug("stone placed", "method", "PlaceStone", "color", color, "row", row, "col", col)
	that.logFinished(current)

	return nil
}

func (that *GameManager) PassTurn() error {
	current, err := that.active()
	if err != nil {
		return err
	}

	if !current.Type().SupportsPass() {
		return fmt.Errorf("%w: only go supports passing", apperror.ErrUnsupportedOperation)
	}

	color := current.CurrentPlayer()
	if err = current.PassTurn(); err != nil {
		return err
	}

	that.logger.Debug("turn passed", "method", "PassTurn", "color", color)
	that.logFinished(current)

	return nil
}

func (that *GameManager) Undo() error {
	current, err := that.active()
	if err != nil {
		return err
	}

	if err = current.Undo(); err != nil {
		return err
	}

	that.logger.Debug("move undone", "method", "Undo", "current_player", current.CurrentPlayer())

	return nil
}

// Resign - resigns the game for color, or for the player to move when color is None.
func (that *GameManager) Resign(color entity.Color) error {
	current, err := that.active()
	if err != nil {
		return err
	}

	if color == entity.None {
		color = current.CurrentPlayer()
	}

	if err = current.Resign(color); err != nil {
		return err
	}

	that.logFinished(current)

	return nil
}

func (that *GameManager) Restart() error {
	current, err := that.active()
	if err != nil {
		return err
	}

	current.Restart()
	that.logger.Info("game restarted", "method", "Restart", "type", current.Type(), "size", current.Size())

	return nil
}

// Save - encodes the current game and stores it under name.
func (that *GameManager) Save(ctx context.Context, name string) error {
	log := that.logger.With("method", "Save")

	current, err := that.active()
	if err != nil {
		return err
	}

	data, err := savegame.Encode(current.Serialize())
	if err != nil {
		return fmt.Errorf("failed to encode game: %w", err)
	}

	if err = that.saveRepo.Save(ctx, name, data); err != nil {
		log.Error("failed to save game", "name", name, "error", err)
		return fmt.Errorf("failed to save game: %w", err)
	}

	log.Info("game saved", "name", name, "bytes", len(data))

	return nil
}

// Load - replaces the current game with a saved one. Nothing changes when any step fails.
func (that *GameManager) Load(ctx context.Context, name string) error {
	log := that.logger.With("method", "Load")

	data, err := that.saveRepo.Load(ctx, name)
	if err != nil {
		return fmt.Errorf("failed to load game: %w", err)
	}

	state, err := savegame.Decode(data)
	if err != nil {
		log.Warn("save rejected", "name", name, "error", err)
		return fmt.Errorf("failed to decode save %q: %w", name, err)
	}

	loaded, err := game.New(state.GameType, state.BoardSize, that.options)
	if err != nil {
		return fmt.Errorf("%w: %w", apperror.ErrCorruptSave, err)
	}

	if err = loaded.Deserialize(state); err != nil {
		log.Warn("save rejected", "name", name, "error", err)
		return fmt.Errorf("failed to restore save %q: %w", name, err)
	}

	that.game = loaded
	log.Info("game loaded", "name", name, "type", loaded.Type(), "size", loaded.Size())

	return nil
}

func (that *GameManager) HasGame() bool {
	return that.game != nil
}

func (that *GameManager) Board() (game.BoardView, error) {
	current, err := that.active()
	if err != nil {
		return nil, err
	}

	return current.Board(), nil
}

func (that *GameManager) Snapshot() (Snapshot, error) {
	current, err := that.active()
	if err != nil {
		return Snapshot{}, err
	}

	snapshot := Snapshot{
		GameType:      current.Type(),
		BoardSize:     current.Size(),
		CurrentPlayer: current.CurrentPlayer(),
		Black:         playerStatus(current, entity.Black),
		White:         playerStatus(current, entity.White),
		Passes:        current.ConsecutivePasses(),
		Ko:            current.KoPoint(),
		Moves:         len(current.History()),
		Finished:      current.IsFinished(),
	}

	if result, err := current.Result(); err == nil {
		snapshot.Result = &result
	}

	return snapshot, nil
}

func (that *GameManager) active() (*game.Game, error) {
	if that.game == nil {
		return nil, apperror.ErrNoActiveGame
	}

	return that.game, nil
}

func (that *GameManager) logFinished(current *game.Game) {
	if !current.IsFinished() {
		return
	}

	result, err := current.Result()
	if err != nil {
		return
	}

	that.logger.Info("game finished", "winner", result.Winner, "reason", result.Reason)
}

func playerStatus(current *game.Game, color entity.Color) PlayerStatus {
	return PlayerStatus{
		StonesOnBoard:   current.StonesOnBoard(color),
		StonesRemaining: current.StonesRemaining(color),
		UndosRemaining:  current.UndoRemaining(color),
		Captured:        current.Captured(color),
	}
}
