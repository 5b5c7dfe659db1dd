package game

import (
	"fmt"

	"github.com/rocketscienceinc/stones/internal/apperror"
	"github.com/rocketscienceinc/stones/internal/entity"
)

const defaultUndoLimit = 3

// Options configure the per-variant allotments. Zero stone counts select the variant default.
type Options struct {
	UndoLimit    int
	GomokuStones int
	GoStones     int

	// KeepHistory keeps the move log in serialized state so undo and ko survive a save/load.
	// Without it a loaded game starts with an empty history and cannot be undone past the load.
	KeepHistory bool
}

func DefaultOptions() Options {
	return Options{
		UndoLimit:   defaultUndoLimit,
		KeepHistory: true,
	}
}

// rules is the closed set of variant behaviors: gomokuRules and goRules.
type rules interface {
	gameType() entity.GameType
	defaultAllotment(size int) int

	// place applies a stone for color at an empty, in-bounds pos. On error the board is unchanged.
	place(board *Board, pos entity.Position, color entity.Color, ko *entity.Position) (placement, error)

	// outcome reports the result the placement at last ends the game with, nil while it goes on.
	outcome(board *Board, last entity.Position) *entity.GameResult
}

// passRules is implemented by variants that know passing.
type passRules interface {
	score(board *Board) *entity.GameResult
}

type placement struct {
	captured []Stone
	ko       *entity.Position
}

// Game is a single engine instance. It exclusively owns its board, ledger and history.
type Game struct {
	rules   rules
	options Options

	board   *Board
	ledger  Ledger
	history History

	current entity.Color
	result  *entity.GameResult

	// Go only: point forbidden for the next placement and the run of consecutive passes.
	ko     *entity.Position
	passes int
}

// New - creates an engine for the given variant on an empty size×size board, Black to move.
func New(gameType entity.GameType, size int, options Options) (*Game, error) {
	var variant rules

	switch gameType {
	case entity.Gomoku:
		variant = gomokuRules{}
	case entity.Go:
		variant = goRules{}
	default:
		return nil, fmt.Errorf("%w: %q", apperror.ErrInvalidGameType, gameType)
	}

	board, err := NewBoard(size)
	if err != nil {
		return nil, err
	}

	that := &Game{rules: variant, options: options, board: board}
	that.Restart()

	return that, nil
}

// Restart - discards the board, ledger and history and starts over with Black to move.
func (that *Game) Restart() {
	that.board = &Board{size: that.board.size, cells: make([]entity.Color, len(that.board.cells))}
	that.ledger = newLedger(that.allotment(), that.options.UndoLimit)
	that.history = History{}
	that.current = entity.Black
	that.result = nil
	that.ko = nil
	that.passes = 0
}

func (that *Game) allotment() int {
	var configured int

	switch that.rules.gameType() {
	case entity.Gomoku:
		configured = that.options.GomokuStones
	case entity.Go:
		configured = that.options.GoStones
	}

	if configured > 0 {
		return configured
	}

	return that.rules.defaultAllotment(that.board.size)
}

// PlayMove - places a stone for the player to move.
func (that *Game) PlayMove(pos entity.Position) error {
	return that.PlayMoveAs(that.current, pos)
}

// PlayMoveAs - places a stone for color, which must be the player to move.
func (that *Game) PlayMoveAs(color entity.Color, pos entity.Position) error {
	if err := that.validateMove(color, pos); err != nil {
		return err
	}

	placed, err := that.rules.place(that.board, pos, color, that.ko)
	if err != nil {
		return fmt.Errorf("invalid move at %s: %w", pos, err)
	}

	that.history.push(Action{
		Kind:       ActionPlace,
		Color:      color,
		Position:   pos,
		Captured:   placed.captured,
		PrevPlayer: that.current,
		PrevKo:     that.ko,
		PrevPasses: that.passes,
	})

	that.ledger.takeStone(color)
	for _, stone := range placed.captured {
		that.ledger.addCaptured(stone.Color, 1)
	}

	that.ko = placed.ko
	that.passes = 0
	that.current = color.Opponent()
	that.result = that.rules.outcome(that.board, pos)

	return nil
}

// validateMove - checks everything a placement needs except variant legality.
func (that *Game) validateMove(color entity.Color, pos entity.Position) error {
	if that.IsFinished() {
		return apperror.ErrGameFinished
	}

	if !color.IsPlayer() {
		return fmt.Errorf("%w: %d", apperror.ErrInvalidColor, color)
	}

	if color != that.current {
		return apperror.ErrNotYourTurn
	}

	cell, err := that.board.Get(pos)
	if err != nil {
		return err
	}

	if cell != entity.None {
		return fmt.Errorf("%w: %s", apperror.ErrCellOccupied, pos)
	}

	if !that.ledger.hasStone(color) {
		return apperror.ErrNoStonesLeft
	}

	return nil
}

// PassTurn - records a pass for the player to move. Two passes in a row end and score the game.
func (that *Game) PassTurn() error {
	if that.IsFinished() {
		return apperror.ErrGameFinished
	}

	scorer, ok := that.rules.(passRules)
	if !ok {
		return fmt.Errorf("%w: pass in %s", apperror.ErrUnsupportedOperation, that.rules.gameType())
	}

	that.history.push(Action{
		Kind:       ActionPass,
		Color:      that.current,
		PrevPlayer: that.current,
		PrevKo:     that.ko,
		PrevPasses: that.passes,
	})

	that.ko = nil
	that.passes++
	that.current = that.current.Opponent()

	if that.passes >= 2 {
		that.result = scorer.score(that.board)
	}

	return nil
}

// Undo - reverts the most recent action and charges the player who gets the turn back.
func (that *Game) Undo() error {
	if that.IsFinished() {
		return apperror.ErrGameFinished
	}

	action, ok := that.history.last()
	if !ok {
		return apperror.ErrNoMovesToUndo
	}

	if !that.ledger.hasUndo(action.PrevPlayer) {
		return fmt.Errorf("%w: %s", apperror.ErrUndoExhausted, action.PrevPlayer)
	}

	if action.Kind == ActionPlace {
		that.board.set(action.Position, entity.None)
		that.ledger.returnStone(action.Color)

		for _, stone := range action.Captured {
			that.board.set(stone.Position, stone.Color)
			that.ledger.addCaptured(stone.Color, -1)
		}
	}

	that.current = action.PrevPlayer
	that.ko = clonePosition(action.PrevKo)
	that.passes = action.PrevPasses

	that.history.pop()
	that.ledger.spendUndo(action.PrevPlayer)

	return nil
}

// Resign - ends the game in favor of the opponent of color, whoever is to move.
func (that *Game) Resign(color entity.Color) error {
	if that.IsFinished() {
		return apperror.ErrGameFinished
	}

	if !color.IsPlayer() {
		return fmt.Errorf("%w: %d", apperror.ErrInvalidColor, color)
	}

	that.history.push(Action{
		Kind:       ActionResign,
		Color:      color,
		PrevPlayer: that.current,
		PrevKo:     that.ko,
		PrevPasses: that.passes,
	})

	that.result = &entity.GameResult{
		Winner: color.Opponent(),
		Reason: entity.ReasonResignation,
	}

	return nil
}

func (that *Game) Type() entity.GameType {
	return that.rules.gameType()
}

func (that *Game) Size() int {
	return that.board.size
}

func (that *Game) Board() BoardView {
	return that.board
}

func (that *Game) CurrentPlayer() entity.Color {
	return that.current
}

func (that *Game) IsFinished() bool {
	return that.result != nil
}

// Result - returns the final result, ErrGameNotFinished while the game is in progress.
func (that *Game) Result() (entity.GameResult, error) {
	if that.result == nil {
		return entity.GameResult{}, apperror.ErrGameNotFinished
	}

	return *that.result, nil
}

func (that *Game) StonesOnBoard(color entity.Color) int {
	return that.board.Count(color)
}

func (that *Game) StonesRemaining(color entity.Color) int {
	return that.ledger.Resources(color).StonesRemaining
}

func (that *Game) UndoRemaining(color entity.Color) int {
	return that.ledger.Resources(color).UndosRemaining
}

// Captured - returns how many stones of color have been captured and removed.
func (that *Game) Captured(color entity.Color) int {
	return that.ledger.Resources(color).Captured
}

func (that *Game) History() []Action {
	return that.history.Actions()
}

func (that *Game) KoPoint() *entity.Position {
	return clonePosition(that.ko)
}

func (that *Game) ConsecutivePasses() int {
	return that.passes
}
