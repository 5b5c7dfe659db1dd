package entity

import (
	"fmt"
	"strings"

	"github.com/rocketscienceinc/stones/internal/apperror"
)

type GameType string

const (
	Gomoku GameType = "gomoku"
	Go     GameType = "go"
)

// Reason is the cause that ended a game.
type Reason string

const (
	ReasonFiveInARow   Reason = "five-in-a-row"
	ReasonResignation  Reason = "resignation"
	ReasonPassesScored Reason = "two-consecutive-passes-scored"
	ReasonBoardFull    Reason = "board-full-draw"
)

// ParseGameType - parses user input into one of the supported game types.
func ParseGameType(s string) (GameType, error) {
	gameType := GameType(strings.ToLower(strings.TrimSpace(s)))
	if !gameType.Valid() {
		return "", fmt.Errorf("%w: %q", apperror.ErrInvalidGameType, s)
	}

	return gameType, nil
}

func (that GameType) Valid() bool {
	return that == Gomoku || that == Go
}

func (that GameType) SupportsPass() bool {
	return that == Go
}

// Score is the area score of both colors at the end of a Go game.
type Score struct {
	Black int `json:"black"`
	White int `json:"white"`
}

// GameResult is attached to a game once it is finished and never changes afterwards.
type GameResult struct {
	Winner Color  `json:"winner"`
	Reason Reason `json:"reason"`
	Score  *Score `json:"score,omitempty"`
}

func (that GameResult) IsDraw() bool {
	return that.Winner == None
}

func (that GameResult) String() string {
	if that.IsDraw() {
		return fmt.Sprintf("draw (%s)", that.Reason)
	}

	if that.Score != nil {
		return fmt.Sprintf("%s wins (%s, %d:%d)", that.Winner, that.Reason, that.Score.Black, that.Score.White)
	}

	return fmt.Sprintf("%s wins (%s)", that.Winner, that.Reason)
}
