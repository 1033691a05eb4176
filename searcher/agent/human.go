package agent

import (
	"bufio"
	"fmt"
	"io"

	"tictactoe/experiments/metrics"
	"tictactoe/game"
	"tictactoe/render"
)

const (
	movePrompt     = "Enter your move in the format row,column (e.g. 1,3): "
	invalidFormat  = "Invalid format. Please enter row,column (e.g. 1,3)."
	invalidMoveMsg = "Invalid move."
)

type humanAgent struct {
	in       *bufio.Scanner
	out      io.Writer
	renderer *render.Renderer
	retrying bool
}

// NewHumanAgent reads moves typed as "row,column" from in and writes the
// board and prompts to out.
func NewHumanAgent(in io.Reader, out io.Writer, renderer *render.Renderer) Agent {
	return &humanAgent{
		in:       bufio.NewScanner(in),
		out:      out,
		renderer: renderer,
	}
}

func (a *humanAgent) FindMove(state *game.GameState) (game.Move, metrics.SearchMetric, error) {
	if !a.retrying {
		fmt.Fprint(a.out, a.renderer.Board(state))
	}
	a.retrying = false

	for {
		fmt.Fprint(a.out, movePrompt)
		if !a.in.Scan() {
			err := a.in.Err()
			if err == nil {
				err = io.EOF
			}
			return game.Move{}, metrics.SearchMetric{}, fmt.Errorf("failed to read move: %w", err)
		}

		move, err := game.ParseMove(a.in.Text())
		if err != nil {
			fmt.Fprintln(a.out, invalidFormat)
			continue
		}
		return move, metrics.SearchMetric{}, nil
	}
}

func (a *humanAgent) Reject(state *game.GameState, move game.Move) {
	fmt.Fprintln(a.out, invalidMoveMsg)
	a.retrying = true
}
