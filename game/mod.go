package game

// Player is the mark held by a cell, or the side to move.
type Player int

const (
	Empty Player = iota
	PlayerX
	PlayerO
)

func (p Player) String() string {
	switch p {
	case PlayerX:
		return "X"
	case PlayerO:
		return "O"
	default:
		return " "
	}
}

// Opponent returns the other side. Empty has no opponent.
func (p Player) Opponent() Player {
	switch p {
	case PlayerX:
		return PlayerO
	case PlayerO:
		return PlayerX
	default:
		return Empty
	}
}

// Status is the outcome of a game at any point. It only ever moves from
// Ongoing to one of the terminal values.
type Status int

const (
	Ongoing Status = iota
	XWins
	OWins
	Draw
)

// WinFor returns the winning status for the given player.
func WinFor(p Player) Status {
	switch p {
	case PlayerX:
		return XWins
	case PlayerO:
		return OWins
	default:
		panic("no win status for an empty player")
	}
}

// Winner returns the winning player, or Empty for Ongoing and Draw.
func (s Status) Winner() Player {
	switch s {
	case XWins:
		return PlayerX
	case OWins:
		return PlayerO
	default:
		return Empty
	}
}

func (s Status) IsOver() bool {
	return s != Ongoing
}

func (s Status) String() string {
	switch s {
	case XWins:
		return "X wins"
	case OWins:
		return "O wins"
	case Draw:
		return "draw"
	default:
		return "ongoing"
	}
}
