package engine

// Line is an ordered set of cell indices that wins the game when one player
// occupies all of them.
type Line []int

// Lines - enumerates every winning line for a board of the given size:
// size rows, size columns, the main diagonal and the anti diagonal, in that
// order. The result depends only on the size, never on board content.
func Lines(size int) []Line {
	if size < MinBoardSize {
		panic("engine: board size below minimum")
	}

	lines := make([]Line, 0, 2*size+2)

	for row := 0; row < size; row++ {
		line := make(Line, size)
		for col := 0; col < size; col++ {
			line[col] = row*size + col
		}
		lines = append(lines, line)
	}

	for col := 0; col < size; col++ {
		line := make(Line, size)
		for row := 0; row < size; row++ {
			line[row] = row*size + col
		}
		lines = append(lines, line)
	}

	mainDiagonal := make(Line, size)
	for i := 0; i < size; i++ {
		mainDiagonal[i] = i * (size + 1)
	}
	lines = append(lines, mainDiagonal)

	antiDiagonal := make(Line, size)
	for i := 1; i <= size; i++ {
		antiDiagonal[i-1] = i * (size - 1)
	}
	lines = append(lines, antiDiagonal)

	return lines
}
