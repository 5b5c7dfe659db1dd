package apperror

import (
	"errors"
	"fmt"
)

// Error categories. Every specific error below wraps exactly one of them.
var (
	ErrUserInput         = errors.New("invalid input")
	ErrRuleViolation     = errors.New("rule violation")
	ErrResourceExhausted = errors.New("resource exhausted")
	ErrPersistence       = errors.New("persistence error")
)

var (
	ErrInvalidBoardSize = fmt.Errorf("%w: board size must be between 8 and 19", ErrUserInput)
	ErrInvalidColor     = fmt.Errorf("%w: unknown color", ErrUserInput)
	ErrInvalidCommand   = fmt.Errorf("%w: invalid command arguments", ErrUserInput)
	ErrInvalidGameType  = fmt.Errorf("%w: game type must be gomoku or go", ErrUserInput)
	ErrNoActiveGame     = fmt.Errorf("%w: no game in progress, start one first", ErrUserInput)
)

var (
	ErrOutOfBounds          = fmt.Errorf("%w: position is outside the board", ErrRuleViolation)
	ErrCellOccupied         = fmt.Errorf("%w: cell is already occupied", ErrRuleViolation)
	ErrNotYourTurn          = fmt.Errorf("%w: it's not your turn", ErrRuleViolation)
	ErrGameFinished         = fmt.Errorf("%w: game is already finished", ErrRuleViolation)
	ErrGameNotFinished      = fmt.Errorf("%w: game is not finished", ErrRuleViolation)
	ErrUnsupportedOperation = fmt.Errorf("%w: operation is not supported by this game", ErrRuleViolation)
	ErrNoMovesToUndo        = fmt.Errorf("%w: no moves to undo", ErrRuleViolation)
	ErrIllegalMove          = fmt.Errorf("%w: illegal move", ErrRuleViolation)
	ErrSuicide              = fmt.Errorf("%w: suicide", ErrIllegalMove)
	ErrKo                   = fmt.Errorf("%w: ko", ErrIllegalMove)
)

var (
	ErrUndoExhausted = fmt.Errorf("%w: no undos left", ErrResourceExhausted)
	ErrNoStonesLeft  = fmt.Errorf("%w: no stones left (%w)", ErrIllegalMove, ErrResourceExhausted)
)

var (
	ErrUnknownGameType = fmt.Errorf("%w: unknown game type", ErrPersistence)
	ErrCorruptSave     = fmt.Errorf("%w: save is corrupt", ErrPersistence)
	ErrSaveNotFound    = fmt.Errorf("%w: save not found", ErrPersistence)
)
