package console

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/rocketscienceinc/stones/internal/entity"
	"github.com/rocketscienceinc/stones/internal/game"
	"github.com/rocketscienceinc/stones/internal/usecase"
)

var errExit = errors.New("exit requested")

type uGame interface {
	StartGame(gameType entity.GameType, size int) error
	PlaceStone(row, col int) error
	PassTurn() error
	Undo() error
	Resign(color entity.Color) error
	Restart() error

	Save(ctx context.Context, name string) error
	Load(ctx context.Context, name string) error

	Board() (game.BoardView, error)
	Snapshot() (usecase.Snapshot, error)
}

type handler func(ctx context.Context, args []string, out io.Writer) error

type command struct {
	name        string
	usage       string
	description string
	handle      handler
}

// Console is a line-oriented command loop over one game manager.
type Console struct {
	logger *slog.Logger
	uGame  uGame

	commands    []command
	handlers    map[string]handler
	showPrompts bool
}

func New(logger *slog.Logger, uGame uGame) *Console {
	console := &Console{
		logger: logger.With("component", "console"),
		uGame:  uGame,

		handlers:    make(map[string]handler),
		showPrompts: true,
	}

	console.commands = []command{
		{"start", "start <gomoku|go> <size>", "Start a new game", console.handleStart},
		{"move", "move <row> <col>", "Place a stone", console.handleMove},
		{"pass", "pass", "Pass turn (Go only)", console.handlePass},
		{"undo", "undo", "Undo last move", console.handleUndo},
		{"resign", "resign [black|white]", "Resign current game", console.handleResign},
		{"restart", "restart", "Restart current game", console.handleRestart},
		{"save", "save <name>", "Save current game", console.handleSave},
		{"load", "load <name>", "Load saved game", console.handleLoad},
		{"board", "board", "Display board", console.handleBoard},
		{"status", "status", "Show game status", console.handleStatus},
		{"hint", "hint", "Toggle prompts", console.handleHint},
		{"help", "help", "List commands", console.handleHelp},
		{"exit", "exit", "Exit program", console.handleExit},
	}

	for _, cmd := range console.commands {
		console.handlers[cmd.name] = cmd.handle
	}

	return console
}

// Run - reads commands from in until EOF, exit or ctx cancellation and writes replies to out.
// Command errors are printed and never stop the loop.
func (that *Console) Run(ctx context.Context, in io.Reader, out io.Writer) error {
	log := that.logger.With("method", "Run")

	fmt.Fprintln(out, "Stones CLI - type 'help' for instructions")

	scanner := bufio.NewScanner(in)
	for {
		if ctx.Err() != nil {
			return nil
		}

		if that.showPrompts {
			fmt.Fprintln(out, "Available commands: "+that.commandNames())
		}
		fmt.Fprint(out, "> ")

		if !scanner.Scan() {
			fmt.Fprintln(out, "\nExiting...")

			if err := scanner.Err(); err != nil {
				return fmt.Errorf("failed to read command: %w", err)
			}

			return nil
		}

		err := that.execute(ctx, scanner.Text(), out)
		if errors.Is(err, errExit) {
			return nil
		}

		if err != nil {
			log.Debug("command failed", "line", scanner.Text(), "error", err)
			fmt.Fprintln(out, describeError(err))
		}
	}
}

func (that *Console) execute(ctx context.Context, line string, out io.Writer) error {
	tokens := strings.Fields(line)
	if len(tokens) == 0 {
		return nil
	}

	handle, ok := that.handlers[strings.ToLower(tokens[0])]
	if !ok {
		fmt.Fprintln(out, "Unknown command. Type 'help' for a list of commands.")
		return nil
	}

	return handle(ctx, tokens[1:], out)
}

func (that *Console) commandNames() string {
	names := make([]string, 0, len(that.commands))
	for _, cmd := range that.commands {
		names = append(names, cmd.name)
	}

	return strings.Join(names, ", ")
}
