package bot

import (
	"math/rand"

	"github.com/localplay/tictactoe/internal/apperror"
	"github.com/localplay/tictactoe/internal/engine"
)

// SelectMove - picks the bot's next cell on a strict three-tier priority:
// complete an own winning line, otherwise block the opponent's winning
// completion, otherwise take a random empty cell. The win and block scans
// walk cells in ascending index order, so those branches always return the
// lowest qualifying cell. One ply deep only; the bot is deliberately blind
// to forks and anything that needs look-ahead.
// Returns apperror.ErrNoAvailableMoves when the board has no empty cell.
func SelectMove(board engine.Board, botMark engine.Mark) (int, error) {
	availableCells := make([]int, 0, len(board.Cells))
	for i := range board.Cells {
		if board.IsEmptyCell(i) {
			availableCells = append(availableCells, i)
		}
	}

	if len(availableCells) == 0 {
		return 0, apperror.ErrNoAvailableMoves
	}

	if cell, ok := findWinningCell(board, availableCells, botMark); ok {
		return cell, nil
	}

	if cell, ok := findWinningCell(board, availableCells, engine.ToggleMark(botMark)); ok {
		return cell, nil
	}

	return availableCells[rand.Intn(len(availableCells))], nil //nolint: gosec // it's ok
}

// findWinningCell - finds the lowest empty cell that would complete a
// winning line for the given mark, by trying the mark in each empty cell
// and evaluating the resulting board.
func findWinningCell(board engine.Board, availableCells []int, mark engine.Mark) (int, bool) {
	for _, cell := range availableCells {
		outcome := engine.Evaluate(board.WithMark(cell, mark))
		if outcome.IsWon() && outcome.Winner == mark {
			return cell, true
		}
	}

	return 0, false
}
