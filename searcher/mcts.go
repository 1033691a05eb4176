package searcher

import (
	"fmt"
	"time"

	"tictactoe/experiments/metrics"
	"tictactoe/game"

	"github.com/rs/zerolog/log"
	"golang.org/x/exp/rand"
)

type Option func(m *MCTS)

// MCTS searches the live position it was created with. The position is only
// read; playouts run on clones.
type MCTS struct {
	state       *game.GameState
	exploration float64
	rng         *rand.Rand
	metrics     metrics.Collector
	// When set, re-simulations of visited leaves are not backed up.
	discardResimulations bool
	// When set, nodes are expanded and simulated from the position reached by
	// replaying their path instead of from the live position.
	replay bool
	tree   *tree
}

func WithExploration(c float64) Option {
	return func(m *MCTS) {
		if c >= 0 {
			m.exploration = c
		}
	}
}

// WithRand shares a random source with the caller, e.g. across searches of
// a whole game.
func WithRand(rng *rand.Rand) Option {
	return func(m *MCTS) {
		if rng != nil {
			m.rng = rng
		}
	}
}

func WithSeed(seed uint64) Option {
	return func(m *MCTS) {
		m.rng = rand.New(rand.NewSource(seed))
	}
}

func WithMetrics() Option {
	return func(m *MCTS) {
		m.metrics = metrics.NewCollector()
	}
}

// WithDiscardedResimulations runs a leaf's repeat playouts without crediting
// their results anywhere in the tree.
func WithDiscardedResimulations() Option {
	return func(m *MCTS) {
		m.discardResimulations = true
	}
}

// WithPathReplay expands and simulates every node from its own position,
// rebuilt by replaying the moves from the root. Without it every node is
// expanded from the live position and tagged with the live player to move.
func WithPathReplay() Option {
	return func(m *MCTS) {
		m.replay = true
	}
}

func NewMCTS(state *game.GameState, options ...Option) *MCTS {
	m := &MCTS{ // Default values
		state:       state,
		exploration: DefaultExploration,
		metrics:     metrics.NewDummyCollector(),
	}
	for _, option := range options {
		option(m)
	}
	if m.rng == nil {
		m.rng = rand.New(rand.NewSource(uint64(time.Now().UnixNano())))
	}
	return m
}

func (m *MCTS) Exploration() float64 {
	return m.exploration
}

// Search runs iterations playouts against a fresh tree rooted at the live
// position and returns the most simulated move. Searching a finished game
// is a programming error.
func (m *MCTS) Search(iterations int) (game.Move, metrics.SearchMetric) {
	if iterations <= 0 {
		panic(fmt.Sprintf("invalid iteration budget %d", iterations))
	}
	if m.state.Status().IsOver() {
		panic("cannot search a finished game")
	}

	m.tree = newTree()
	m.metrics.Start(iterations, m.exploration)
	for i := 0; i < iterations; i++ {
		m.iterate()
		m.metrics.AddEpisode()
	}
	m.metrics.SetTreeSize(m.tree.size())
	metric := m.metrics.Complete()

	best := &m.tree.nodes[m.tree.mostVisited(m.tree.root())]
	log.Debug().Msgf("searched %d iterations for %s: best move %s with %d/%d simulations",
		iterations, m.state.CurrentPlayer(), best.move, best.simulations, iterations)

	return best.move, metric
}

func (m *MCTS) iterate() {
	t := m.tree

	// Selection
	idx := t.root()
	for len(t.nodes[idx].children) > 0 {
		idx = t.selectChild(idx, m.exploration)
	}

	if t.nodes[idx].simulations == 0 {
		m.expand(idx)
		return
	}

	result := m.simulate(idx)
	m.metrics.AddResimulation()
	if !m.discardResimulations {
		t.backup(idx, result, m.perspective(idx))
	}
}

// expand adds one child per empty cell, then plays out one of them at random.
// Without path replay the cells and the mover tag come from the live position.
func (m *MCTS) expand(idx int) {
	t := m.tree
	position := m.state
	if m.replay {
		position = m.positionOf(idx)
		if position.Status().IsOver() { // Terminal node
			t.backup(idx, reward(position.Status(), t.nodes[idx].player), t.nodes[idx].player)
			return
		}
	}

	moves := position.EmptyCells()
	if len(moves) == 0 {
		panic("cannot expand node: no empty cells on the board")
	}

	mover := position.CurrentPlayer()
	for _, move := range moves {
		t.addChild(idx, move, mover)
	}
	m.metrics.AddExpansion()

	children := t.nodes[idx].children
	child := children[m.rng.Intn(len(children))]
	result := m.simulate(child)
	t.backup(child, result, m.perspective(child))
}

// simulate plays the node's position to the end, following tree statistics
// while the current node has children and random moves after. The result is
// scored for the starting node's player.
func (m *MCTS) simulate(idx int) float64 {
	t := m.tree
	var sim *game.GameState
	if m.replay {
		sim = m.positionOf(idx)
	} else {
		sim = m.state.Clone()
	}

	current := idx
	for sim.Status() == game.Ongoing {
		if len(t.nodes[current].children) > 0 {
			current = t.selectChild(current, m.exploration)
			sim.Play(t.nodes[current].move) // an occupied cell is skipped
			continue
		}
		moves := sim.EmptyCells()
		sim.Play(moves[m.rng.Intn(len(moves))])
	}

	return reward(sim.Status(), t.nodes[idx].player)
}

// perspective is the player a result computed at idx is scored for during
// backup. Without path replay this is always the live player to move.
func (m *MCTS) perspective(idx int) game.Player {
	if m.replay {
		return m.tree.nodes[idx].player
	}
	return m.state.CurrentPlayer()
}

// positionOf rebuilds the position of idx on a clone of the live state.
func (m *MCTS) positionOf(idx int) *game.GameState {
	t := m.tree
	var path []game.Move
	for n := idx; t.nodes[n].parent != noParent; n = t.nodes[n].parent {
		path = append(path, t.nodes[n].move)
	}

	position := m.state.Clone()
	for i := len(path) - 1; i >= 0; i-- {
		if !position.Play(path[i]) {
			panic(fmt.Sprintf("cannot replay move %s", path[i]))
		}
	}
	return position
}
