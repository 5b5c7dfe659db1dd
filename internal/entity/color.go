package entity

import (
	"fmt"
	"strings"

	"github.com/rocketscienceinc/stones/internal/apperror"
)

// Color is the color of a stone. None marks an empty cell or a drawn game.
type Color int

const (
	None Color = iota
	Black
	White
)

// Colors lists both playing colors, Black first.
var Colors = [2]Color{Black, White}

func (that Color) Opponent() Color {
	switch that {
	case Black:
		return White
	case White:
		return Black
	default:
		return None
	}
}

// IsPlayer reports whether the color is Black or White.
func (that Color) IsPlayer() bool {
	return that == Black || that == White
}

func (that Color) String() string {
	switch that {
	case Black:
		return "black"
	case White:
		return "white"
	default:
		return "none"
	}
}

// ParseColor accepts the names produced by String and the board marks X and O.
func ParseColor(s string) (Color, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "black", "b", "x":
		return Black, nil
	case "white", "w", "o":
		return White, nil
	default:
		return None, fmt.Errorf("%w: %q", apperror.ErrInvalidColor, s)
	}
}
