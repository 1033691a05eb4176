package agent

import (
	"tictactoe/experiments/metrics"
	"tictactoe/game"
	"tictactoe/searcher"
)

type evaluationAgent struct {
	iterations int
	options    []searcher.Option
	state      *game.GameState
	mcts       *searcher.MCTS
}

// NewEvaluationAgent returns an agent playing the most simulated move of a
// search with the given budget.
func NewEvaluationAgent(iterations int, options ...searcher.Option) Agent {
	return &evaluationAgent{iterations: iterations, options: options}
}

// searcherFor binds a search engine to the live state it will be asked about.
func (a *evaluationAgent) searcherFor(state *game.GameState) *searcher.MCTS {
	if a.mcts == nil || a.state != state {
		a.mcts = searcher.NewMCTS(state, a.options...)
		a.state = state
	}
	return a.mcts
}

func (a *evaluationAgent) FindMove(state *game.GameState) (game.Move, metrics.SearchMetric, error) {
	move, metric := a.searcherFor(state).Search(a.iterations)
	return move, metric, nil
}
