package game

import (
	"testing"

	"github.com/stretchr/testify/require"
	"golang.org/x/exp/rand"
)

func playAll(t *testing.T, gs *GameState, moves ...Move) {
	t.Helper()
	for _, m := range moves {
		require.True(t, gs.Play(m), "move %s should be accepted", m)
	}
}

// ownsLine reports whether any winning line is fully held by one player.
func ownsLine(gs *GameState) bool {
	for _, line := range gs.lines {
		first := gs.Cell(line[0].Row, line[0].Col)
		if first == Empty {
			continue
		}
		owned := true
		for _, c := range line[1:] {
			if gs.Cell(c.Row, c.Col) != first {
				owned = false
				break
			}
		}
		if owned {
			return true
		}
	}
	return false
}

func TestNewGameState(t *testing.T) {
	gs := NewGameState(4)

	require.Equal(t, 4, gs.Size())
	require.Equal(t, PlayerX, gs.CurrentPlayer(), "X should move first")
	require.Equal(t, Ongoing, gs.Status())
	require.Len(t, gs.EmptyCells(), 16)
	require.Len(t, gs.lines, 10, "4 rows, 4 columns and 2 diagonals")
	require.Panics(t, func() { NewGameState(0) })
}

func TestWinningLines(t *testing.T) {
	t.Run("only the two main diagonals regardless of size", func(t *testing.T) {
		for _, size := range []int{1, 3, 5, 7} {
			require.Len(t, winningLines(size), 2*size+2)
		}
	})

	t.Run("diagonals run corner to corner", func(t *testing.T) {
		lines := winningLines(3)
		require.Equal(t, []Move{{0, 0}, {1, 1}, {2, 2}}, lines[len(lines)-2])
		require.Equal(t, []Move{{0, 2}, {1, 1}, {2, 0}}, lines[len(lines)-1])
	})
}

func TestAttemptMove(t *testing.T) {
	t.Run("occupied cell is rejected without side effects", func(t *testing.T) {
		gs := NewGameState(4)
		playAll(t, gs, Move{1, 1}, Move{2, 2})
		before := gs.Position()

		require.False(t, gs.AttemptMove(1, 1))
		require.False(t, gs.AttemptMove(2, 2))
		require.Equal(t, before, gs.Position(), "board should not change")
		require.Equal(t, PlayerX, gs.CurrentPlayer(), "turn should not pass")
		require.Equal(t, Ongoing, gs.Status())
	})

	t.Run("out of range cell is rejected", func(t *testing.T) {
		gs := NewGameState(3)
		for _, m := range []Move{{-1, 0}, {0, -1}, {3, 0}, {0, 3}, {7, 7}} {
			require.False(t, gs.Play(m), "move %+v is off the board", m)
		}
		require.Len(t, gs.EmptyCells(), 9)
	})

	t.Run("accepted move changes exactly one cell to the mover's mark", func(t *testing.T) {
		gs := NewGameState(4)
		rng := rand.New(rand.NewSource(7))
		for gs.Status() == Ongoing {
			before := gs.Board()
			mover := gs.CurrentPlayer()
			empty := gs.EmptyCells()
			m := empty[rng.Intn(len(empty))]

			require.True(t, gs.Play(m))

			after := gs.Board()
			changed := 0
			for r := range after {
				for c := range after[r] {
					if after[r][c] != before[r][c] {
						changed++
						require.Equal(t, Move{r, c}, m)
						require.Equal(t, mover, after[r][c])
					}
				}
			}
			require.Equal(t, 1, changed)
		}
	})

	t.Run("turn alternates", func(t *testing.T) {
		gs := NewGameState(3)
		require.True(t, gs.AttemptMove(0, 0))
		require.Equal(t, PlayerO, gs.CurrentPlayer())
		require.True(t, gs.AttemptMove(0, 1))
		require.Equal(t, PlayerX, gs.CurrentPlayer())
	})
}

func TestStatus(t *testing.T) {
	t.Run("completing a row wins", func(t *testing.T) {
		gs := NewGameState(3)
		playAll(t, gs, Move{0, 0}, Move{1, 0}, Move{0, 1}, Move{1, 1}, Move{0, 2})

		require.Equal(t, XWins, gs.Status())
		require.Equal(t, PlayerX, gs.Status().Winner())
	})

	t.Run("completing the anti-diagonal wins for O", func(t *testing.T) {
		gs := NewGameState(3)
		playAll(t, gs, Move{0, 0}, Move{0, 2}, Move{0, 1}, Move{1, 1}, Move{2, 2}, Move{2, 0})

		require.Equal(t, OWins, gs.Status())
	})

	t.Run("status is frozen once decided", func(t *testing.T) {
		gs := NewGameState(3)
		playAll(t, gs, Move{0, 0}, Move{1, 0}, Move{0, 1}, Move{1, 1}, Move{0, 2})

		require.False(t, gs.AttemptMove(2, 2), "no moves after a win")
		require.Equal(t, XWins, gs.Status())
	})

	t.Run("full board without a line is a draw and rejects every move", func(t *testing.T) {
		gs := NewGameState(3)
		playAll(t, gs,
			Move{0, 0}, Move{0, 1}, Move{0, 2}, Move{1, 1}, Move{1, 0},
			Move{1, 2}, Move{2, 1}, Move{2, 0}, Move{2, 2})

		require.Equal(t, Draw, gs.Status())
		for r := 0; r < 3; r++ {
			for c := 0; c < 3; c++ {
				require.False(t, gs.AttemptMove(r, c))
			}
		}
	})

	t.Run("a win on the last cell is not a draw", func(t *testing.T) {
		gs := NewGameState(3)
		playAll(t, gs,
			Move{0, 0}, Move{0, 1}, Move{0, 2}, Move{1, 0}, Move{1, 1},
			Move{1, 2}, Move{2, 1}, Move{2, 0}, Move{2, 2})

		require.Equal(t, XWins, gs.Status())
		require.Empty(t, gs.EmptyCells())
	})

	t.Run("draw only on a full board with no owned line", func(t *testing.T) {
		rng := rand.New(rand.NewSource(42))
		for game := 0; game < 200; game++ {
			gs := NewGameState(3 + game%3)
			for gs.Status() == Ongoing {
				empty := gs.EmptyCells()
				require.True(t, gs.Play(empty[rng.Intn(len(empty))]))

				switch gs.Status() {
				case Draw:
					require.Empty(t, gs.EmptyCells())
					require.False(t, ownsLine(gs))
				case Ongoing:
					require.NotEmpty(t, gs.EmptyCells())
					require.False(t, ownsLine(gs))
				default:
					require.True(t, ownsLine(gs))
				}
			}
		}
	})
}

func TestClone(t *testing.T) {
	t.Run("zero moves after clone yields an identical state", func(t *testing.T) {
		gs := NewGameState(4)
		playAll(t, gs, Move{0, 0}, Move{3, 3}, Move{1, 2})

		clone := gs.Clone()

		require.Equal(t, gs.Board(), clone.Board())
		require.Equal(t, gs.CurrentPlayer(), clone.CurrentPlayer())
		require.Equal(t, gs.Status(), clone.Status())
	})

	t.Run("moves on the clone leave the source untouched", func(t *testing.T) {
		gs := NewGameState(3)
		playAll(t, gs, Move{1, 1})
		before := gs.Position()

		clone := gs.Clone()
		playAll(t, clone, Move{0, 0}, Move{2, 2}, Move{0, 1})

		require.Equal(t, before, gs.Position())
		require.Equal(t, PlayerO, gs.CurrentPlayer())
		require.Equal(t, Ongoing, gs.Status())
	})
}
