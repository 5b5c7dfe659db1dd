package console

import (
	"fmt"
	"strings"

	"github.com/rocketscienceinc/stones/internal/entity"
	"github.com/rocketscienceinc/stones/internal/game"
	"github.com/rocketscienceinc/stones/internal/usecase"
)

// RenderBoard - draws the board with 1-indexed row and column numbers.
// Black stones are X, white stones are O and empty cells are dots.
func RenderBoard(board game.BoardView) string {
	var builder strings.Builder

	builder.WriteString("   ")
	for col := 1; col <= board.Size(); col++ {
		fmt.Fprintf(&builder, " %2d", col)
	}

	for row := 0; row < board.Size(); row++ {
		fmt.Fprintf(&builder, "\n%2d | ", row+1)

		for col := 0; col < board.Size(); col++ {
			if col > 0 {
				builder.WriteString("  ")
			}

			color, _ := board.Get(entity.NewPosition(row, col))
			builder.WriteByte(cellSymbol(color))
		}
	}

	return builder.String()
}

func cellSymbol(color entity.Color) byte {
	switch color {
	case entity.Black:
		return 'X'
	case entity.White:
		return 'O'
	default:
		return '.'
	}
}

// RenderStatus - one line with the game, the player to move and both players' resources.
func RenderStatus(snapshot usecase.Snapshot) string {
	parts := []string{
		fmt.Sprintf("Game: %s %dx%d", snapshot.GameType, snapshot.BoardSize, snapshot.BoardSize),
		fmt.Sprintf("To move: %s", snapshot.CurrentPlayer),
	}

	for _, color := range entity.Colors {
		player := snapshot.Player(color)
		line := fmt.Sprintf("%s: %d on board, %d in stock, %d undos left",
			color, player.StonesOnBoard, player.StonesRemaining, player.UndosRemaining)

		if snapshot.GameType.SupportsPass() {
			line += fmt.Sprintf(", %d captured", player.Captured)
		}

		parts = append(parts, line)
	}

	if snapshot.Ko != nil {
		parts = append(parts, fmt.Sprintf("Ko: %d,%d", snapshot.Ko.Row+1, snapshot.Ko.Col+1))
	}

	if snapshot.Result != nil {
		if snapshot.Result.IsDraw() {
			parts = append(parts, "Result: draw")
		} else {
			parts = append(parts, fmt.Sprintf("Winner: %s", snapshot.Result.Winner))
		}

		parts = append(parts, fmt.Sprintf("Reason: %s", snapshot.Result.Reason))

		if score := snapshot.Result.Score; score != nil {
			parts = append(parts, fmt.Sprintf("Score: %d:%d", score.Black, score.White))
		}
	}

	return strings.Join(parts, " | ")
}
