package agent

import (
	"bytes"
	"io"
	"strings"
	"testing"

	"tictactoe/game"
	"tictactoe/render"
	"tictactoe/searcher"

	"github.com/stretchr/testify/require"
	"golang.org/x/exp/rand"
)

func TestEvaluationAgent(t *testing.T) {
	t.Run("plays a legal move with search metrics", func(t *testing.T) {
		gs := game.NewGameState(4)
		a := NewEvaluationAgent(60, searcher.WithSeed(4), searcher.WithMetrics())

		move, metric, err := a.FindMove(gs)

		require.NoError(t, err)
		require.Equal(t, game.Empty, gs.Cell(move.Row, move.Col))
		require.Equal(t, 60, metric.Episodes)
	})

	t.Run("follows the live state across moves", func(t *testing.T) {
		gs := game.NewGameState(3)
		a := NewEvaluationAgent(40, searcher.WithSeed(4))

		for gs.Status() == game.Ongoing {
			move, _, err := a.FindMove(gs)
			require.NoError(t, err)
			require.True(t, gs.Play(move), "move %s should be legal", move)
		}
	})

	t.Run("rebinds to a new state", func(t *testing.T) {
		a := NewEvaluationAgent(20, searcher.WithSeed(4)).(*evaluationAgent)
		first := game.NewGameState(3)
		second := game.NewGameState(4)

		a.FindMove(first)
		m1 := a.mcts
		a.FindMove(second)

		require.NotSame(t, m1, a.mcts)
		require.Same(t, second, a.state)
	})
}

func TestTrainingAgent(t *testing.T) {
	t.Run("samples a legal move", func(t *testing.T) {
		gs := game.NewGameState(4)
		a := NewTrainingAgent(80, 1.0, rand.New(rand.NewSource(1)), searcher.WithSeed(2))

		for i := 0; i < 5; i++ {
			move, _, err := a.FindMove(gs)
			require.NoError(t, err)
			require.Equal(t, game.Empty, gs.Cell(move.Row, move.Col))
		}
	})

	t.Run("temperature adjusts visit counts into probabilities", func(t *testing.T) {
		policy := []searcher.Visit{{Simulations: 1}, {Simulations: 3}}

		require.InDeltaSlice(t, []float64{0.25, 0.75}, adjustTemperature(policy, 1.0), 1e-9)
		require.InDeltaSlice(t, []float64{0.1, 0.9}, adjustTemperature(policy, 0.5), 1e-9)
	})

	t.Run("sampling walks the cumulative distribution", func(t *testing.T) {
		probs := []float64{0.25, 0.75}

		require.Equal(t, 0, sample(probs, 0.1))
		require.Equal(t, 1, sample(probs, 0.25))
		require.Equal(t, 1, sample(probs, 0.9999))
		require.Equal(t, 1, sample([]float64{0.3, 0.3}, 0.99), "rounding fallback")
	})
}

func TestRandomAgent(t *testing.T) {
	gs, err := game.ParsePosition("XOX/OXO/.X.", game.PlayerO)
	require.NoError(t, err)
	a := NewRandomAgent(rand.New(rand.NewSource(3)))

	seen := map[game.Move]bool{}
	for i := 0; i < 50; i++ {
		move, _, err := a.FindMove(gs)
		require.NoError(t, err)
		seen[move] = true
	}
	require.Equal(t, map[game.Move]bool{{Row: 2, Col: 0}: true, {Row: 2, Col: 2}: true}, seen)
}

func TestHumanAgent(t *testing.T) {
	t.Run("re-prompts on malformed input", func(t *testing.T) {
		var out bytes.Buffer
		a := NewHumanAgent(strings.NewReader("hello\n2;2\n2,3\n"), &out, render.Plain(&out))

		move, _, err := a.FindMove(game.NewGameState(3))

		require.NoError(t, err)
		require.Equal(t, game.Move{Row: 1, Col: 2}, move)
		require.Equal(t, 2, strings.Count(out.String(), invalidFormat))
		require.Equal(t, 3, strings.Count(out.String(), movePrompt))
		require.True(t, strings.HasPrefix(out.String(), "  1 2 3\n"), "board comes first")
	})

	t.Run("reports rejected moves and skips the board on retry", func(t *testing.T) {
		var out bytes.Buffer
		gs := game.NewGameState(3)
		a := NewHumanAgent(strings.NewReader("1,1\n1,2\n"), &out, render.Plain(&out))

		_, _, err := a.FindMove(gs)
		require.NoError(t, err)
		a.(Rejecter).Reject(gs, game.Move{})
		out.Reset()

		move, _, err := a.FindMove(gs)

		require.NoError(t, err)
		require.Equal(t, game.Move{Row: 0, Col: 1}, move)
		require.NotContains(t, out.String(), "1 2 3")
	})

	t.Run("end of input is an error", func(t *testing.T) {
		var out bytes.Buffer
		a := NewHumanAgent(strings.NewReader("oops\n"), &out, render.Plain(&out))

		_, _, err := a.FindMove(game.NewGameState(3))

		require.ErrorIs(t, err, io.EOF)
	})
}
