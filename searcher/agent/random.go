package agent

import (
	"tictactoe/experiments/metrics"
	"tictactoe/game"

	"golang.org/x/exp/rand"
)

type randomAgent struct {
	rng *rand.Rand
}

// NewRandomAgent plays a uniformly random empty cell.
func NewRandomAgent(rng *rand.Rand) Agent {
	return randomAgent{rng: rng}
}

func (a randomAgent) FindMove(state *game.GameState) (game.Move, metrics.SearchMetric, error) {
	moves := state.EmptyCells()
	return moves[a.rng.Intn(len(moves))], metrics.SearchMetric{}, nil
}
