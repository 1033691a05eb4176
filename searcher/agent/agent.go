package agent

import (
	"tictactoe/experiments/metrics"
	"tictactoe/game"
)

type Agent interface {
	// FindMove proposes a move for the player to move and returns search
	// metrics when a search was run
	FindMove(state *game.GameState) (game.Move, metrics.SearchMetric, error)
}

// Rejecter is implemented by agents that want to know when the game refused
// their move. FindMove is called again afterwards.
type Rejecter interface {
	Reject(state *game.GameState, move game.Move)
}
