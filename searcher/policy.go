package searcher

import "tictactoe/game"

// Visit summarises one root move of the most recent search.
type Visit struct {
	Move        game.Move
	Simulations int
	Wins        float64
}

// Policy returns the root moves of the last search in expansion order
// (row-major), or nil before the first search.
func (m *MCTS) Policy() []Visit {
	if m.tree == nil {
		return nil
	}
	t := m.tree
	children := t.nodes[t.root()].children
	visits := make([]Visit, len(children))
	for i, child := range children {
		n := t.nodes[child]
		visits[i] = Visit{Move: n.move, Simulations: n.simulations, Wins: n.wins}
	}
	return visits
}
