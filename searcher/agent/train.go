package agent

import (
	"math"

	"tictactoe/experiments/metrics"
	"tictactoe/game"
	"tictactoe/searcher"

	"golang.org/x/exp/rand"
)

type trainingAgent struct {
	evaluationAgent
	temperature float64
	rng         *rand.Rand
}

// NewTrainingAgent returns an agent sampling its move from the root visit
// counts, sharpened or flattened by temperature.
func NewTrainingAgent(iterations int, temperature float64, rng *rand.Rand, options ...searcher.Option) Agent {
	if temperature <= 0 {
		temperature = 1.0
	}
	return &trainingAgent{
		evaluationAgent: evaluationAgent{iterations: iterations, options: options},
		temperature:     temperature,
		rng:             rng,
	}
}

func (a *trainingAgent) FindMove(state *game.GameState) (game.Move, metrics.SearchMetric, error) {
	mcts := a.searcherFor(state)
	_, metric := mcts.Search(a.iterations)
	policy := mcts.Policy()
	probs := adjustTemperature(policy, a.temperature)
	return policy[sample(probs, a.rng.Float64())].Move, metric, nil
}

func adjustTemperature(policy []searcher.Visit, temperature float64) []float64 {
	// Compute temperature-adjusted move probabilities
	exponent := 1.0 / temperature
	sum := 0.0
	adjusted := make([]float64, len(policy))
	for i, visit := range policy {
		prob := math.Pow(float64(visit.Simulations), exponent)
		sum += prob
		adjusted[i] = prob
	}
	// Normalize
	for i := range adjusted {
		adjusted[i] /= sum
	}
	return adjusted
}

// sample returns the index whose cumulative probability first exceeds u.
func sample(probs []float64, u float64) int {
	cumulative := 0.0
	for i, prob := range probs {
		cumulative += prob
		if u < cumulative {
			return i
		}
	}
	return len(probs) - 1 // Fallback in case of rounding errors
}
