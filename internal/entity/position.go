package entity

import "fmt"

// Position is a 0-indexed board coordinate.
type Position struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

func NewPosition(row, col int) Position {
	return Position{Row: row, Col: col}
}

// Neighbors returns the orthogonally adjacent positions that lie on a board of the given size.
func (that Position) Neighbors(size int) []Position {
	candidates := [4]Position{
		{Row: that.Row - 1, Col: that.Col},
		{Row: that.Row + 1, Col: that.Col},
		{Row: that.Row, Col: that.Col - 1},
		{Row: that.Row, Col: that.Col + 1},
	}

	neighbors := make([]Position, 0, len(candidates))
	for _, candidate := range candidates {
		if candidate.Within(size) {
			neighbors = append(neighbors, candidate)
		}
	}

	return neighbors
}

// Within reports whether the position lies on a size×size board.
func (that Position) Within(size int) bool {
	return that.Row >= 0 && that.Row < size && that.Col >= 0 && that.Col < size
}

func (that Position) String() string {
	return fmt.Sprintf("(%d,%d)", that.Row, that.Col)
}
