package game

import (
	"errors"
	"fmt"

	"github.com/rocketscienceinc/stones/internal/apperror"
	"github.com/rocketscienceinc/stones/internal/entity"
)

// State is a detached snapshot of everything an engine needs to resume a game.
type State struct {
	GameType      entity.GameType
	BoardSize     int
	Cells         []entity.Color // row-major, BoardSize*BoardSize entries
	CurrentPlayer entity.Color
	Black         Resources
	White         Resources
	Result        *entity.GameResult
	Ko            *entity.Position
	Passes        int
	History       []Action
}

// Serialize - captures the engine state. The history is omitted unless Options.KeepHistory is set.
func (that *Game) Serialize() *State {
	state := &State{
		GameType:      that.rules.gameType(),
		BoardSize:     that.board.size,
		Cells:         append([]entity.Color(nil), that.board.cells...),
		CurrentPlayer: that.current,
		Black:         that.ledger.black,
		White:         that.ledger.white,
		Ko:            clonePosition(that.ko),
		Passes:        that.passes,
	}

	if that.result != nil {
		state.Result = cloneResult(that.result)
	}

	if that.options.KeepHistory {
		state.History = that.history.Actions()
	}

	return state
}

// Deserialize - replaces the engine state with the snapshot. The snapshot is validated as a
// whole first; a rejected snapshot leaves the engine untouched.
func (that *Game) Deserialize(state *State) error {
	if err := that.validateState(state); err != nil {
		return fmt.Errorf("%w: %w", apperror.ErrCorruptSave, err)
	}

	history := History{}
	for _, action := range state.History {
		history.push(action.clone())
	}

	that.board = &Board{size: state.BoardSize, cells: append([]entity.Color(nil), state.Cells...)}
	that.ledger = Ledger{black: state.Black, white: state.White}
	that.history = history
	that.current = state.CurrentPlayer
	that.result = nil
	if state.Result != nil {
		that.result = cloneResult(state.Result)
	}
	that.ko = clonePosition(state.Ko)
	that.passes = state.Passes

	return nil
}

//nolint:cyclop // one flat list of structural checks
func (that *Game) validateState(state *State) error {
	if state == nil {
		return errors.New("empty state")
	}

	if state.GameType != that.rules.gameType() {
		return fmt.Errorf("state is for %q, engine plays %q", state.GameType, that.rules.gameType())
	}

	if state.BoardSize < MinBoardSize || state.BoardSize > MaxBoardSize {
		return fmt.Errorf("board size %d out of range", state.BoardSize)
	}

	if len(state.Cells) != state.BoardSize*state.BoardSize {
		return fmt.Errorf("board has %d cells, want %d", len(state.Cells), state.BoardSize*state.BoardSize)
	}

	for i, cell := range state.Cells {
		if cell != entity.None && !cell.IsPlayer() {
			return fmt.Errorf("cell %d holds unknown color %d", i, cell)
		}
	}

	if !state.CurrentPlayer.IsPlayer() {
		return fmt.Errorf("unknown current player %d", state.CurrentPlayer)
	}

	for _, r := range []Resources{state.Black, state.White} {
		if r.StonesRemaining < 0 || r.UndosRemaining < 0 || r.Captured < 0 {
			return errors.New("negative resource counter")
		}
	}

	if state.Result != nil {
		if err := validateResult(state.Result); err != nil {
			return err
		}
	}

	_, canPass := that.rules.(passRules)
	if !canPass && (state.Ko != nil || state.Passes != 0) {
		return fmt.Errorf("%s has no ko or passes", state.GameType)
	}

	if state.Passes < 0 || (state.Passes >= 2 && state.Result == nil) {
		return fmt.Errorf("invalid pass count %d", state.Passes)
	}

	if state.Ko != nil {
		if !state.Ko.Within(state.BoardSize) {
			return fmt.Errorf("ko point %s off the board", state.Ko)
		}

		if state.Cells[state.Ko.Row*state.BoardSize+state.Ko.Col] != entity.None {
			return fmt.Errorf("ko point %s is occupied", state.Ko)
		}
	}

	for i, action := range state.History {
		if err := validateAction(action, state.BoardSize); err != nil {
			return fmt.Errorf("history entry %d: %w", i, err)
		}
	}

	return that.replayHistory(state)
}

// replayHistory - undoes the whole history on a scratch copy of the board and ledger, newest
// entry first. Every entry must be reversible against the state it left behind.
//
//nolint:cyclop // one check per inverse step
func (that *Game) replayHistory(state *State) error {
	board := &Board{size: state.BoardSize, cells: append([]entity.Color(nil), state.Cells...)}
	ledger := Ledger{black: state.Black, white: state.White}
	current := state.CurrentPlayer
	_, canPass := that.rules.(passRules)

	for i := len(state.History) - 1; i >= 0; i-- {
		action := state.History[i]

		if !canPass && (action.Kind == ActionPass || len(action.Captured) > 0 || action.PrevKo != nil || action.PrevPasses != 0) {
			return fmt.Errorf("history entry %d: %s has no passes or captures", i, state.GameType)
		}

		if action.PrevPasses < 0 {
			return fmt.Errorf("history entry %d: invalid pass count %d", i, action.PrevPasses)
		}

		switch action.Kind {
		case ActionPlace, ActionPass:
			if action.Color != action.PrevPlayer || current != action.Color.Opponent() {
				return fmt.Errorf("history entry %d: %s moved out of turn", i, action.Color)
			}
		case ActionResign:
			if i != len(state.History)-1 || state.Result == nil || state.Result.Reason != entity.ReasonResignation {
				return fmt.Errorf("history entry %d: resignation does not end the game", i)
			}

			if current != action.PrevPlayer {
				return fmt.Errorf("history entry %d: resignation changed the player to move", i)
			}
		}

		if action.Kind == ActionPlace {
			if board.at(action.Position) != action.Color {
				return fmt.Errorf("history entry %d: no %s stone at %s", i, action.Color, action.Position)
			}

			board.set(action.Position, entity.None)
			ledger.returnStone(action.Color)

			for _, stone := range action.Captured {
				if stone.Color != action.Color.Opponent() {
					return fmt.Errorf("history entry %d: %s captured its own stone", i, action.Color)
				}

				if board.at(stone.Position) != entity.None {
					return fmt.Errorf("history entry %d: captured point %s is occupied", i, stone.Position)
				}

				board.set(stone.Position, stone.Color)
				ledger.addCaptured(stone.Color, -1)

				if ledger.Resources(stone.Color).Captured < 0 {
					return fmt.Errorf("history entry %d: more captures than recorded", i)
				}
			}
		}

		if action.PrevKo != nil && board.at(*action.PrevKo) != entity.None {
			return fmt.Errorf("history entry %d: ko point %s is occupied", i, action.PrevKo)
		}

		current = action.PrevPlayer
	}

	return nil
}

func validateResult(result *entity.GameResult) error {
	if result.Winner != entity.None && !result.Winner.IsPlayer() {
		return fmt.Errorf("unknown winner %d", result.Winner)
	}

	switch result.Reason {
	case entity.ReasonFiveInARow, entity.ReasonResignation, entity.ReasonPassesScored, entity.ReasonBoardFull:
		return nil
	default:
		return fmt.Errorf("unknown result reason %q", result.Reason)
	}
}

func validateAction(action Action, size int) error {
	if !action.Color.IsPlayer() || !action.PrevPlayer.IsPlayer() {
		return errors.New("unknown color")
	}

	switch action.Kind {
	case ActionPlace:
		if !action.Position.Within(size) {
			return fmt.Errorf("position %s off the board", action.Position)
		}
	case ActionPass, ActionResign:
	default:
		return fmt.Errorf("unknown action %q", action.Kind)
	}

	for _, stone := range action.Captured {
		if !stone.Position.Within(size) || !stone.Color.IsPlayer() {
			return fmt.Errorf("invalid captured stone %s", stone.Position)
		}
	}

	if action.PrevKo != nil && !action.PrevKo.Within(size) {
		return fmt.Errorf("ko point %s off the board", action.PrevKo)
	}

	return nil
}

func cloneResult(result *entity.GameResult) *entity.GameResult {
	clone := *result
	if result.Score != nil {
		score := *result.Score
		clone.Score = &score
	}

	return &clone
}
