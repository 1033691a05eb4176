package cli

import (
	"fmt"
	"strings"

	"tictactoe/engine"
	"tictactoe/game"
	"tictactoe/meta"
	"tictactoe/render"
	"tictactoe/searcher/agent"

	"github.com/MakeNowJust/heredoc/v2"
	"github.com/spf13/cobra"
)

func Play() *cobra.Command {
	var flags searchFlags
	var human string

	cmd := &cobra.Command{
		Use:   "play",
		Short: "Play a game against the engine",
		Args:  cobra.NoArgs,
		Long: heredoc.Doc(`play starts an interactive game against the search engine.
			The engine plays X and moves first unless --human x is given.

			Moves are typed as row,column counted from 1, so 1,3 is the
			top right cell of a 3x3 board. Malformed input and occupied
			cells are reported and asked for again.`),
		Example: heredoc.Doc(`
			tictactoe play
			tictactoe play --size 3 --preset classic --human x
			tictactoe play --position XX../OO../..../.... --replay`),
		RunE: func(cmd *cobra.Command, args []string) error {
			humanPlayer, err := parseSide(human)
			if err != nil {
				return err
			}
			iterations, exploration, err := flags.budget(cmd)
			if err != nil {
				return err
			}
			state, err := flags.state()
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			renderer := render.NewRenderer(out)
			engineAgent := agent.NewEvaluationAgent(iterations, flags.options(exploration, newRand(flags.seed))...)
			humanAgent := agent.NewHumanAgent(cmd.InOrStdin(), out, renderer)

			x, o := engineAgent, humanAgent
			if humanPlayer == game.PlayerX {
				x, o = humanAgent, engineAgent
			}

			e := engine.LocalEngine(state, x, o)
			e.Observe(func(state *game.GameState, player game.Player, move game.Move) {
				if player != humanPlayer {
					fmt.Fprintf(out, "AI plays: %s\n", move)
				}
				fmt.Fprintln(out)
			})

			_, _, err = e.Run()
			if err != nil {
				return err
			}

			renderer.PrintBoard(state)
			fmt.Fprintln(out, state.Status())
			return nil
		},
	}

	flags.register(cmd, meta.DEFAULT_SIZE)
	cmd.Flags().StringVar(&human, "human", "o", "Side the human plays (x or o)")

	return cmd
}

func parseSide(side string) (game.Player, error) {
	switch strings.ToLower(side) {
	case "x":
		return game.PlayerX, nil
	case "o":
		return game.PlayerO, nil
	default:
		return game.Empty, fmt.Errorf("unknown side %q, expected x or o", side)
	}
}
