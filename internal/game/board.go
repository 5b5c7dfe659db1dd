package game

import (
	"fmt"

	"github.com/rocketscienceinc/stones/internal/apperror"
	"github.com/rocketscienceinc/stones/internal/entity"
)

const (
	MinBoardSize = 8
	MaxBoardSize = 19
)

// BoardView is the read-only face of a board handed to collaborators outside the engine.
type BoardView interface {
	Size() int
	Get(pos entity.Position) (entity.Color, error)
	IsFull() bool
	Count(color entity.Color) int
}

// Board is a square grid of stones stored row-major. Only the engine writes to it.
type Board struct {
	size  int
	cells []entity.Color
}

func NewBoard(size int) (*Board, error) {
	if size < MinBoardSize || size > MaxBoardSize {
		return nil, fmt.Errorf("%w: got %d", apperror.ErrInvalidBoardSize, size)
	}

	return &Board{
		size:  size,
		cells: make([]entity.Color, size*size),
	}, nil
}

func (that *Board) Size() int {
	return that.size
}

func (that *Board) Contains(pos entity.Position) bool {
	return pos.Within(that.size)
}

// Get - returns the stone at pos, entity.None for an empty cell.
func (that *Board) Get(pos entity.Position) (entity.Color, error) {
	if !that.Contains(pos) {
		return entity.None, fmt.Errorf("%w: %s on %dx%d", apperror.ErrOutOfBounds, pos, that.size, that.size)
	}

	return that.cells[that.index(pos)], nil
}

func (that *Board) IsFull() bool {
	for _, cell := range that.cells {
		if cell == entity.None {
			return false
		}
	}

	return true
}

// Count - returns the number of stones of the given color on the board.
func (that *Board) Count(color entity.Color) int {
	count := 0
	for _, cell := range that.cells {
		if cell == color {
			count++
		}
	}

	return count
}

// at is Get for positions already known to be on the board.
func (that *Board) at(pos entity.Position) entity.Color {
	return that.cells[that.index(pos)]
}

func (that *Board) set(pos entity.Position, color entity.Color) {
	that.cells[that.index(pos)] = color
}

func (that *Board) index(pos entity.Position) int {
	return pos.Row*that.size + pos.Col
}

func (that *Board) position(index int) entity.Position {
	return entity.NewPosition(index/that.size, index%that.size)
}

// group - collects the maximal same-colored group containing start and its liberties.
func (that *Board) group(start entity.Position) (stones, liberties []entity.Position) {
	color := that.at(start)
	seen := map[entity.Position]bool{start: true}
	seenLiberty := make(map[entity.Position]bool)
	queue := []entity.Position{start}

	for len(queue) > 0 {
		current := queue[0]
		queue = queue[1:]
		stones = append(stones, current)

		for _, next := range current.Neighbors(that.size) {
			switch that.at(next) {
			case entity.None:
				if !seenLiberty[next] {
					seenLiberty[next] = true
					liberties = append(liberties, next)
				}
			case color:
				if !seen[next] {
					seen[next] = true
					queue = append(queue, next)
				}
			}
		}
	}

	return stones, liberties
}
