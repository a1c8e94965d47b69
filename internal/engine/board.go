package engine

import "fmt"

const (
	MarkEmpty = ""
	MarkX     = "X"
	MarkO     = "O"

	// MinBoardSize - the smallest board the rules make sense for.
	MinBoardSize = 3
)

// Mark is the content of a single cell: MarkX, MarkO or MarkEmpty.
type Mark = string

// Board is a square grid of marks stored row-major: the cell at row r,
// column c lives at index r*Size + c.
type Board struct {
	Size  int
	Cells []Mark
}

// NewBoard - returns an all-empty board of the given size.
// Panics when size is below MinBoardSize; callers are expected to validate
// user input before reaching the engine.
func NewBoard(size int) Board {
	if size < MinBoardSize {
		panic(fmt.Sprintf("engine: board size %d is below minimum %d", size, MinBoardSize))
	}

	return Board{
		Size:  size,
		Cells: make([]Mark, size*size),
	}
}

// At - returns the mark at the given cell index.
func (that Board) At(cell int) Mark {
	that.mustBeValidCell(cell)
	return that.Cells[cell]
}

// IsEmptyCell - reports whether the given cell holds no mark.
func (that Board) IsEmptyCell(cell int) bool {
	return that.At(cell) == MarkEmpty
}

// IsFull - reports whether every cell holds a mark.
func (that Board) IsFull() bool {
	for _, cell := range that.Cells {
		if cell == MarkEmpty {
			return false
		}
	}

	return true
}

// Clone - returns a deep copy, so hypothetical moves never leak into the original.
func (that Board) Clone() Board {
	cells := make([]Mark, len(that.Cells))
	copy(cells, that.Cells)

	return Board{Size: that.Size, Cells: cells}
}

// WithMark - returns a copy of the board with the mark placed at the given cell.
func (that Board) WithMark(cell int, mark Mark) Board {
	that.mustBeValidCell(cell)

	next := that.Clone()
	next.Cells[cell] = mark

	return next
}

func (that Board) mustBeValidCell(cell int) {
	if cell < 0 || cell >= len(that.Cells) {
		panic(fmt.Sprintf("engine: cell %d out of range for %dx%d board", cell, that.Size, that.Size))
	}
}

// ToggleMark - returns the opposing player's mark.
func ToggleMark(currentMark Mark) Mark {
	if currentMark == MarkX {
		return MarkO
	}
	return MarkX
}
