package console

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"

	"github.com/rocketscienceinc/stones/internal/apperror"
	"github.com/rocketscienceinc/stones/internal/entity"
)

func (that *Console) handleStart(_ context.Context, args []string, out io.Writer) error {
	if len(args) != 2 {
		return usage("start <gomoku|go> <size>")
	}

	gameType, err := entity.ParseGameType(args[0])
	if err != nil {
		return err
	}

	size, err := strconv.Atoi(args[1])
	if err != nil {
		return fmt.Errorf("%w: board size must be an integer", apperror.ErrInvalidBoardSize)
	}

	if err = that.uGame.StartGame(gameType, size); err != nil {
		return err
	}

	fmt.Fprintf(out, "Started %s on a %dx%d board.\n", gameType, size, size)

	return that.printBoard(out)
}

func (that *Console) handleMove(_ context.Context, args []string, out io.Writer) error {
	if len(args) != 2 {
		return usage("move <row> <col>")
	}

	row, err := parseCoordinate(args[0])
	if err != nil {
		return err
	}

	col, err := parseCoordinate(args[1])
	if err != nil {
		return err
	}

	if err = that.uGame.PlaceStone(row-1, col-1); err != nil {
		return err
	}

	if err = that.printBoard(out); err != nil {
		return err
	}

	return that.printResult(out)
}

func (that *Console) handlePass(_ context.Context, _ []string, out io.Writer) error {
	if err := that.uGame.PassTurn(); err != nil {
		return err
	}

	fmt.Fprintln(out, "Turn passed.")

	return that.printResult(out)
}

func (that *Console) handleUndo(_ context.Context, _ []string, out io.Writer) error {
	if err := that.uGame.Undo(); err != nil {
		return err
	}

	fmt.Fprintln(out, "Reverted the last move.")

	return that.printBoard(out)
}

func (that *Console) handleResign(_ context.Context, args []string, out io.Writer) error {
	if len(args) > 1 {
		return usage("resign [black|white]")
	}

	color := entity.None
	if len(args) == 1 {
		var err error
		if color, err = entity.ParseColor(args[0]); err != nil {
			return err
		}
	}

	if err := that.uGame.Resign(color); err != nil {
		return err
	}

	return that.printResult(out)
}

func (that *Console) handleRestart(_ context.Context, _ []string, out io.Writer) error {
	if err := that.uGame.Restart(); err != nil {
		return err
	}

	fmt.Fprintln(out, "Game restarted.")

	return that.printBoard(out)
}

func (that *Console) handleSave(ctx context.Context, args []string, out io.Writer) error {
	if len(args) != 1 {
		return usage("save <name>")
	}

	if err := that.uGame.Save(ctx, args[0]); err != nil {
		return err
	}

	fmt.Fprintf(out, "Saved game to %s\n", args[0])

	return nil
}

func (that *Console) handleLoad(ctx context.Context, args []string, out io.Writer) error {
	if len(args) != 1 {
		return usage("load <name>")
	}

	if err := that.uGame.Load(ctx, args[0]); err != nil {
		return err
	}

	fmt.Fprintf(out, "Loaded game from %s\n", args[0])

	return that.printBoard(out)
}

func (that *Console) handleBoard(_ context.Context, _ []string, out io.Writer) error {
	return that.printBoard(out)
}

func (that *Console) handleStatus(_ context.Context, _ []string, out io.Writer) error {
	snapshot, err := that.uGame.Snapshot()
	if err != nil {
		return err
	}

	fmt.Fprintln(out, RenderStatus(snapshot))

	return nil
}

func (that *Console) handleHint(_ context.Context, _ []string, out io.Writer) error {
	that.showPrompts = !that.showPrompts

	if that.showPrompts {
		fmt.Fprintln(out, "Prompts enabled.")
	} else {
		fmt.Fprintln(out, "Prompts hidden.")
	}

	return nil
}

func (that *Console) handleHelp(_ context.Context, _ []string, out io.Writer) error {
	fmt.Fprintln(out, "Available commands:")

	for _, cmd := range that.commands {
		fmt.Fprintf(out, "- %-25s %s\n", cmd.usage, cmd.description)
	}

	return nil
}

func (that *Console) handleExit(_ context.Context, _ []string, out io.Writer) error {
	fmt.Fprintln(out, "Goodbye!")

	return errExit
}

func (that *Console) printBoard(out io.Writer) error {
	board, err := that.uGame.Board()
	if err != nil {
		return err
	}

	fmt.Fprintln(out, RenderBoard(board))

	return nil
}

// printResult prints the outcome once the last action finished the game.
func (that *Console) printResult(out io.Writer) error {
	snapshot, err := that.uGame.Snapshot()
	if err != nil {
		return err
	}

	if snapshot.Result != nil {
		fmt.Fprintf(out, "Game ended: %s\n", snapshot.Result)
	}

	return nil
}

func parseCoordinate(value string) (int, error) {
	coordinate, err := strconv.Atoi(value)
	if err != nil {
		return 0, fmt.Errorf("%w: coordinates must be integers", apperror.ErrUserInput)
	}

	if coordinate <= 0 {
		return 0, fmt.Errorf("%w: coordinates must be positive", apperror.ErrUserInput)
	}

	return coordinate, nil
}

func usage(text string) error {
	return fmt.Errorf("%w: usage: %s", apperror.ErrInvalidCommand, text)
}

// describeError turns an error into the line shown to the player.
func describeError(err error) string {
	switch {
	case errors.Is(err, apperror.ErrCorruptSave), errors.Is(err, apperror.ErrUnknownGameType):
		return "error: the save is corrupt and could not be loaded: " + err.Error()
	case errors.Is(err, apperror.ErrPersistence):
		return "error: storage failure: " + err.Error()
	default:
		return "error: " + err.Error()
	}
}
