package game

import (
	"github.com/rocketscienceinc/stones/internal/apperror"
	"github.com/rocketscienceinc/stones/internal/entity"
)

type goRules struct{}

func (goRules) gameType() entity.GameType {
	return entity.Go
}

func (goRules) defaultAllotment(size int) int {
	return size * size
}

// place resolves a Go placement: ko check, opposing captures, then the suicide check.
func (goRules) place(board *Board, pos entity.Position, color entity.Color, ko *entity.Position) (placement, error) {
	if ko != nil && *ko == pos {
		return placement{}, apperror.ErrKo
	}

	board.set(pos, color)

	opponent := color.Opponent()

	var captured []Stone
	for _, next := range pos.Neighbors(board.size) {
		if board.at(next) != opponent {
			continue
		}

		stones, liberties := board.group(next)
		if len(liberties) > 0 {
			continue
		}

		for _, stone := range stones {
			board.set(stone, entity.None)
			captured = append(captured, Stone{Position: stone, Color: opponent})
		}
	}

	own, liberties := board.group(pos)
	if len(liberties) == 0 {
		// a capture always frees a liberty next to pos, so captured is empty here
		for _, stone := range captured {
			board.set(stone.Position, stone.Color)
		}
		board.set(pos, entity.None)

		return placement{}, apperror.ErrSuicide
	}

	var nextKo *entity.Position
	if len(captured) == 1 && len(own) == 1 && len(liberties) == 1 && liberties[0] == captured[0].Position {
		point := captured[0].Position
		nextKo = &point
	}

	return placement{captured: captured, ko: nextKo}, nil
}

// outcome never ends a Go game: only passes and resignation do.
func (goRules) outcome(*Board, entity.Position) *entity.GameResult {
	return nil
}

func (goRules) score(board *Board) *entity.GameResult {
	score := areaScore(board)

	result := &entity.GameResult{
		Winner: entity.None,
		Reason: entity.ReasonPassesScored,
		Score:  &score,
	}

	switch {
	case score.Black > score.White:
		result.Winner = entity.Black
	case score.White > score.Black:
		result.Winner = entity.White
	}

	return result
}
