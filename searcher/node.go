package searcher

import (
	"math"

	"tictactoe/game"
)

const noParent = -1

// node holds the statistics of one position in the tree. Nodes live in the
// tree's arena and refer to each other by index.
type node struct {
	parent      int
	children    []int
	move        game.Move // zero value for the root
	player      game.Player
	wins        float64
	simulations int
}

type tree struct {
	nodes []node
}

// newTree returns a tree holding only a root with no move and no player.
func newTree() *tree {
	return &tree{
		nodes: []node{{parent: noParent, player: game.Empty}},
	}
}

func (t *tree) root() int {
	return 0
}

func (t *tree) size() int {
	return len(t.nodes)
}

// addChild appends a fresh child of parent and returns its index.
func (t *tree) addChild(parent int, move game.Move, player game.Player) int {
	idx := len(t.nodes)
	t.nodes = append(t.nodes, node{
		parent: parent,
		move:   move,
		player: player,
	})
	t.nodes[parent].children = append(t.nodes[parent].children, idx)
	return idx
}

func (t *tree) ucbScore(idx int, c float64) float64 {
	n := &t.nodes[idx]
	parentSimulations := 0
	if n.parent != noParent {
		parentSimulations = t.nodes[n.parent].simulations
	}
	return ucb1(n.wins, n.simulations, parentSimulations, c)
}

// selectChild returns the child with the highest UCB1 score. Ties go to the
// child added first.
func (t *tree) selectChild(idx int, c float64) int {
	children := t.nodes[idx].children
	if len(children) == 0 {
		panic("node has no children")
	}

	best := children[0]
	bestScore := math.Inf(-1)
	for _, child := range children {
		if score := t.ucbScore(child, c); score > bestScore {
			bestScore = score
			best = child
		}
	}
	return best
}

// mostVisited returns the child with the most simulations, first on ties.
func (t *tree) mostVisited(idx int) int {
	children := t.nodes[idx].children
	if len(children) == 0 {
		panic("node has no children")
	}

	best := children[0]
	for _, child := range children[1:] {
		if t.nodes[child].simulations > t.nodes[best].simulations {
			best = child
		}
	}
	return best
}

// backup credits a playout result to idx and every ancestor. Nodes tagged
// with mover receive the result, all others its complement.
func (t *tree) backup(idx int, result float64, mover game.Player) {
	for idx != noParent {
		n := &t.nodes[idx]
		n.simulations++
		if n.player == mover {
			n.wins += result
		} else {
			n.wins += 1 - result
		}
		idx = n.parent
	}
}
