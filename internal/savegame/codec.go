// Package savegame maps engine snapshots to the versioned JSON record written to save files.
package savegame

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/rocketscienceinc/stones/internal/apperror"
	"github.com/rocketscienceinc/stones/internal/entity"
	"github.com/rocketscienceinc/stones/internal/game"
)

// Version is the record layout written by Encode.
const Version = 1

// Pointer fields mark what is required: a nil pointer after decoding means the field was absent.
type record struct {
	Version  *int         `json:"version"`
	GameType *string      `json:"game_type"`
	State    *stateRecord `json:"state"`
}

type stateRecord struct {
	BoardSize     *int               `json:"board_size"`
	Cells         []entity.Color     `json:"cells"`
	CurrentPlayer *entity.Color      `json:"current_player"`
	Black         *resourcesRecord   `json:"black"`
	White         *resourcesRecord   `json:"white"`
	Finished      bool               `json:"finished"`
	Result        *entity.GameResult `json:"result,omitempty"`
	Ko            *entity.Position   `json:"ko,omitempty"`
	Passes        int                `json:"passes"`
	History       []actionRecord     `json:"history,omitempty"`
}

type resourcesRecord struct {
	StonesRemaining *int `json:"stones_remaining"`
	UndosRemaining  *int `json:"undos_remaining"`
	Captured        int  `json:"captured"`
}

type actionRecord struct {
	Kind       game.ActionKind  `json:"kind"`
	Color      entity.Color     `json:"color"`
	Position   entity.Position  `json:"position"`
	Captured   []stoneRecord    `json:"captured,omitempty"`
	PrevPlayer entity.Color     `json:"prev_player"`
	PrevKo     *entity.Position `json:"prev_ko,omitempty"`
	PrevPasses int              `json:"prev_passes"`
}

type stoneRecord struct {
	Position entity.Position `json:"position"`
	Color    entity.Color    `json:"color"`
}

// Encode - renders a snapshot as a versioned save record.
func Encode(state *game.State) ([]byte, error) {
	if state == nil {
		return nil, errors.New("nothing to encode")
	}

	version := Version
	gameType := string(state.GameType)
	boardSize := state.BoardSize
	currentPlayer := state.CurrentPlayer

	rec := record{
		Version:  &version,
		GameType: &gameType,
		State: &stateRecord{
			BoardSize:     &boardSize,
			Cells:         state.Cells,
			CurrentPlayer: &currentPlayer,
			Black:         encodeResources(state.Black),
			White:         encodeResources(state.White),
			Finished:      state.Result != nil,
			Result:        state.Result,
			Ko:            state.Ko,
			Passes:        state.Passes,
			History:       encodeHistory(state.History),
		},
	}

	data, err := json.MarshalIndent(rec, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("could not marshal save: %w", err)
	}

	return data, nil
}

// Decode - parses a save record. Unknown game types fail with apperror.ErrUnknownGameType,
// everything else that is malformed or missing with apperror.ErrCorruptSave.
func Decode(data []byte) (*game.State, error) {
	var rec record
	if err := json.Unmarshal(data, &rec); err != nil {
		return nil, fmt.Errorf("%w: %w", apperror.ErrCorruptSave, err)
	}

	if rec.Version == nil || rec.GameType == nil || rec.State == nil {
		return nil, fmt.Errorf("%w: missing version, game type or state", apperror.ErrCorruptSave)
	}

	if *rec.Version != Version {
		return nil, fmt.Errorf("%w: unsupported version %d", apperror.ErrCorruptSave, *rec.Version)
	}

	gameType, err := entity.ParseGameType(*rec.GameType)
	if err != nil {
		return nil, fmt.Errorf("%w: %q", apperror.ErrUnknownGameType, *rec.GameType)
	}

	state, err := decodeState(rec.State)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", apperror.ErrCorruptSave, err)
	}

	state.GameType = gameType

	return state, nil
}

func decodeState(rec *stateRecord) (*game.State, error) {
	switch {
	case rec.BoardSize == nil:
		return nil, errors.New("missing board size")
	case rec.Cells == nil:
		return nil, errors.New("missing cells")
	case rec.CurrentPlayer == nil:
		return nil, errors.New("missing current player")
	case rec.Finished != (rec.Result != nil):
		return nil, errors.New("finished flag disagrees with result")
	}

	black, err := decodeResources(rec.Black)
	if err != nil {
		return nil, fmt.Errorf("black: %w", err)
	}

	white, err := decodeResources(rec.White)
	if err != nil {
		return nil, fmt.Errorf("white: %w", err)
	}

	return &game.State{
		BoardSize:     *rec.BoardSize,
		Cells:         rec.Cells,
		CurrentPlayer: *rec.CurrentPlayer,
		Black:         black,
		White:         white,
		Result:        rec.Result,
		Ko:            rec.Ko,
		Passes:        rec.Passes,
		History:       decodeHistory(rec.History),
	}, nil
}

func encodeResources(r game.Resources) *resourcesRecord {
	stones, undos := r.StonesRemaining, r.UndosRemaining

	return &resourcesRecord{StonesRemaining: &stones, UndosRemaining: &undos, Captured: r.Captured}
}

func decodeResources(rec *resourcesRecord) (game.Resources, error) {
	if rec == nil || rec.StonesRemaining == nil || rec.UndosRemaining == nil {
		return game.Resources{}, errors.New("missing resource counters")
	}

	return game.Resources{
		StonesRemaining: *rec.StonesRemaining,
		UndosRemaining:  *rec.UndosRemaining,
		Captured:        rec.Captured,
	}, nil
}

func encodeHistory(actions []game.Action) []actionRecord {
	if len(actions) == 0 {
		return nil
	}

	records := make([]actionRecord, len(actions))
	for i, action := range actions {
		records[i] = actionRecord{
			Kind:       action.Kind,
			Color:      action.Color,
			Position:   action.Position,
			PrevPlayer: action.PrevPlayer,
			PrevKo:     action.PrevKo,
			PrevPasses: action.PrevPasses,
		}

		for _, stone := range action.Captured {
			records[i].Captured = append(records[i].Captured, stoneRecord(stone))
		}
	}

	return records
}

func decodeHistory(records []actionRecord) []game.Action {
	actions := make([]game.Action, len(records))
	for i, rec := range records {
		actions[i] = game.Action{
			Kind:       rec.Kind,
			Color:      rec.Color,
			Position:   rec.Position,
			PrevPlayer: rec.PrevPlayer,
			PrevKo:     rec.PrevKo,
			PrevPasses: rec.PrevPasses,
		}

		for _, stone := range rec.Captured {
			actions[i].Captured = append(actions[i].Captured, game.Stone(stone))
		}
	}

	return actions
}
