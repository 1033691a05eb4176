package game

// winningLines lists every row, every column and exactly the two main
// diagonals of a size×size board.
func winningLines(size int) [][]Move {
	lines := make([][]Move, 0, 2*size+2)

	for i := 0; i < size; i++ {
		row := make([]Move, size)
		col := make([]Move, size)
		for j := 0; j < size; j++ {
			row[j] = Move{Row: i, Col: j}
			col[j] = Move{Row: j, Col: i}
		}
		lines = append(lines, row, col)
	}

	diagonal := make([]Move, size)
	antiDiagonal := make([]Move, size)
	for i := 0; i < size; i++ {
		diagonal[i] = Move{Row: i, Col: i}
		antiDiagonal[i] = Move{Row: i, Col: size - 1 - i}
	}
	lines = append(lines, diagonal, antiDiagonal)

	return lines
}

// evaluateStatus checks the board after the current player has marked a cell
// and before the turn passes. Every line is scanned on every call.
func (gs *GameState) evaluateStatus() {
	for _, line := range gs.lines {
		owned := true
		for _, cell := range line {
			if gs.Cell(cell.Row, cell.Col) != gs.currentPlayer {
				owned = false
				break
			}
		}
		if owned {
			gs.status = WinFor(gs.currentPlayer)
		}
	}

	if gs.status == Ongoing && gs.isFull() {
		gs.status = Draw
	}
}

func (gs *GameState) isFull() bool {
	for _, cell := range gs.board {
		if cell == Empty {
			return false
		}
	}
	return true
}
