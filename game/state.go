package game

import "fmt"

// GameState is an N×N tic-tac-toe position. It is mutated in place by
// AttemptMove; use Clone for hypothetical play.
type GameState struct {
	size          int
	board         []Player // row-major
	currentPlayer Player
	status        Status
	lines         [][]Move // shared between clones, never mutated
}

// NewGameState returns an empty size×size board with X to move.
func NewGameState(size int) *GameState {
	if size < 1 {
		panic(fmt.Sprintf("invalid board size %d", size))
	}
	return &GameState{
		size:          size,
		board:         make([]Player, size*size),
		currentPlayer: PlayerX,
		status:        Ongoing,
		lines:         winningLines(size),
	}
}

func (gs *GameState) Size() int {
	return gs.size
}

func (gs *GameState) CurrentPlayer() Player {
	return gs.currentPlayer
}

func (gs *GameState) Status() Status {
	return gs.status
}

// Cell returns the mark at (row, col). Out of range coordinates panic.
func (gs *GameState) Cell(row, col int) Player {
	return gs.board[row*gs.size+col]
}

func (gs *GameState) inBounds(row, col int) bool {
	return row >= 0 && row < gs.size && col >= 0 && col < gs.size
}

// AttemptMove marks (row, col) for the current player. It reports false and
// leaves the state untouched when the cell is out of range, already taken,
// or the game is already decided.
func (gs *GameState) AttemptMove(row, col int) bool {
	if gs.status.IsOver() || !gs.inBounds(row, col) {
		return false
	}
	idx := row*gs.size + col
	if gs.board[idx] != Empty {
		return false
	}

	gs.board[idx] = gs.currentPlayer
	gs.evaluateStatus()
	gs.currentPlayer = gs.currentPlayer.Opponent()
	return true
}

// Play is AttemptMove for a Move value.
func (gs *GameState) Play(m Move) bool {
	return gs.AttemptMove(m.Row, m.Col)
}

// EmptyCells lists the free cells in row-major order.
func (gs *GameState) EmptyCells() []Move {
	moves := make([]Move, 0, len(gs.board))
	for i, cell := range gs.board {
		if cell == Empty {
			moves = append(moves, Move{Row: i / gs.size, Col: i % gs.size})
		}
	}
	return moves
}

// Board returns a copy of the grid, indexed [row][col].
func (gs *GameState) Board() [][]Player {
	rows := make([][]Player, gs.size)
	for r := range rows {
		rows[r] = make([]Player, gs.size)
		copy(rows[r], gs.board[r*gs.size:(r+1)*gs.size])
	}
	return rows
}

// Clone returns an independent copy for simulation.
func (gs *GameState) Clone() *GameState {
	boardCopy := make([]Player, len(gs.board))
	copy(boardCopy, gs.board)

	return &GameState{
		size:          gs.size,
		board:         boardCopy,
		currentPlayer: gs.currentPlayer,
		status:        gs.status,
		lines:         gs.lines, // immutable
	}
}

// FromBoard builds a position from a square grid and the player to move.
// The status is derived from the grid, so a grid holding complete lines for
// both players is rejected.
func FromBoard(rows [][]Player, toMove Player) (*GameState, error) {
	if toMove != PlayerX && toMove != PlayerO {
		return nil, fmt.Errorf("invalid player to move: %d", toMove)
	}
	gs := NewGameState(len(rows))
	for r, row := range rows {
		if len(row) != gs.size {
			return nil, fmt.Errorf("row %d has %d cells, want %d", r+1, len(row), gs.size)
		}
		copy(gs.board[r*gs.size:], row)
	}

	winners := map[Player]bool{}
	for _, p := range []Player{PlayerX, PlayerO} {
		gs.currentPlayer = p
		gs.evaluateStatus()
		if gs.status.Winner() == p {
			winners[p] = true
		}
		gs.status = Ongoing
	}
	switch {
	case len(winners) > 1:
		return nil, fmt.Errorf("both players own a winning line")
	case winners[PlayerX]:
		gs.status = XWins
	case winners[PlayerO]:
		gs.status = OWins
	case gs.isFull():
		gs.status = Draw
	}

	gs.currentPlayer = toMove
	return gs, nil
}
