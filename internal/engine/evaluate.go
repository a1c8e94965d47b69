package engine

const (
	StatusOngoing = "ongoing"
	StatusWon     = "won"
	StatusDraw    = "draw"
)

// Outcome is the result of evaluating a board: the round is ongoing, won by
// one mark along one line, or drawn on a full board.
type Outcome struct {
	Status string
	Winner Mark
	Line   Line
}

func (that Outcome) IsOngoing() bool {
	return that.Status == StatusOngoing
}

func (that Outcome) IsWon() bool {
	return that.Status == StatusWon
}

func (that Outcome) IsDraw() bool {
	return that.Status == StatusDraw
}

// Evaluate - determines the outcome of a board. Lines are scanned in the
// fixed Lines order and the first fully uniform non-empty one wins, which
// keeps the reported line deterministic. The win scan runs before the
// full-board check, so a full board with a completed line is a win, never a
// draw.
func Evaluate(board Board) Outcome {
	for _, line := range Lines(board.Size) {
		first := board.At(line[0])
		if first == MarkEmpty {
			continue
		}

		uniform := true
		for _, cell := range line[1:] {
			if board.At(cell) != first {
				uniform = false
				break
			}
		}

		if uniform {
			return Outcome{Status: StatusWon, Winner: first, Line: line}
		}
	}

	if board.IsFull() {
		return Outcome{Status: StatusDraw}
	}

	return Outcome{Status: StatusOngoing}
}
