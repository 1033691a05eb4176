package searcher

import (
	"math"

	"tictactoe/game"
)

// Playout rewards from the perspective of a node's player
const (
	Win  = 1.0
	Draw = 0.5
	Loss = 0.0
)

func reward(status game.Status, player game.Player) float64 {
	switch {
	case status == game.Draw:
		return Draw
	case status.Winner() == player:
		return Win
	default:
		return Loss
	}
}

// ucb1 = wins/n + c*sqrt(ln(N)/n), where N is the parent's simulations.
// Unvisited nodes score +Inf so every child is tried once before any
// comparison of statistics.
func ucb1(wins float64, simulations, parentSimulations int, c float64) float64 {
	if simulations == 0 {
		return math.Inf(1)
	}
	if parentSimulations == 0 {
		panic("cannot compute UCB1: parent has no simulations")
	}

	exploitation := wins / float64(simulations)
	exploration := math.Sqrt(math.Log(float64(parentSimulations)) / float64(simulations))
	return exploitation + c*exploration
}
