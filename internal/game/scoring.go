package game

import "github.com/rocketscienceinc/stones/internal/entity"

// areaScore - counts stones on the board plus empty regions bordered by a single color.
func areaScore(board *Board) entity.Score {
	score := entity.Score{
		Black: board.Count(entity.Black),
		White: board.Count(entity.White),
	}

	visited := make([]bool, len(board.cells))
	for i, cell := range board.cells {
		if cell != entity.None || visited[i] {
			continue
		}

		size, owner := emptyRegion(board, board.position(i), visited)
		switch owner {
		case entity.Black:
			score.Black += size
		case entity.White:
			score.White += size
		}
	}

	return score
}

// emptyRegion - flood fills the empty region around start. The owner is the only color the
// region touches, entity.None when it touches both or neither.
func emptyRegion(board *Board, start entity.Position, visited []bool) (int, entity.Color) {
	visited[board.index(start)] = true
	queue := []entity.Position{start}
	size := 0
	touchesBlack, touchesWhite := false, false

	for len(queue) > 0 {
		current := queue[0]
		queue = queue[1:]
		size++

		for _, next := range current.Neighbors(board.size) {
			switch board.at(next) {
			case entity.Black:
				touchesBlack = true
			case entity.White:
				touchesWhite = true
			default:
				if idx := board.index(next); !visited[idx] {
					visited[idx] = true
					queue = append(queue, next)
				}
			}
		}
	}

	switch {
	case touchesBlack && !touchesWhite:
		return size, entity.Black
	case touchesWhite && !touchesBlack:
		return size, entity.White
	default:
		return size, entity.None
	}
}
