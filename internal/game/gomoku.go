package game

import "github.com/rocketscienceinc/stones/internal/entity"

const winLength = 5

// lineDirections are the four axes through a stone: horizontal, vertical and both diagonals.
var lineDirections = [4][2]int{{0, 1}, {1, 0}, {1, 1}, {1, -1}}

type gomokuRules struct{}

func (gomokuRules) gameType() entity.GameType {
	return entity.Gomoku
}

// defaultAllotment gives each color enough stones to cover its share of a full board.
func (gomokuRules) defaultAllotment(size int) int {
	return (size*size + 1) / 2
}

func (gomokuRules) place(board *Board, pos entity.Position, color entity.Color, _ *entity.Position) (placement, error) {
	board.set(pos, color)

	return placement{}, nil
}

func (gomokuRules) outcome(board *Board, last entity.Position) *entity.GameResult {
	mover := board.at(last)

	if lineLength(board, last) >= winLength {
		return &entity.GameResult{Winner: mover, Reason: entity.ReasonFiveInARow}
	}

	if board.IsFull() {
		return &entity.GameResult{Winner: entity.None, Reason: entity.ReasonBoardFull}
	}

	return nil
}

// lineLength - returns the longest contiguous same-colored run through pos over the four axes.
func lineLength(board *Board, pos entity.Position) int {
	color := board.at(pos)
	longest := 0

	for _, d := range lineDirections {
		count := 1

		// forward
		for next := entity.NewPosition(pos.Row+d[0], pos.Col+d[1]); board.Contains(next) && board.at(next) == color; next = entity.NewPosition(next.Row+d[0], next.Col+d[1]) {
			count++
		}

		// backward
		for next := entity.NewPosition(pos.Row-d[0], pos.Col-d[1]); board.Contains(next) && board.at(next) == color; next = entity.NewPosition(next.Row-d[0], next.Col-d[1]) {
			count++
		}

		longest = max(longest, count)
	}

	return longest
}
