package cli

import (
	"fmt"

	"tictactoe/engine"
	"tictactoe/game"
	"tictactoe/meta"
	"tictactoe/render"
	"tictactoe/searcher/agent"

	"github.com/MakeNowJust/heredoc/v2"
	"github.com/spf13/cobra"
)

func SelfPlay() *cobra.Command {
	var flags searchFlags

	cmd := &cobra.Command{
		Use:   "selfplay",
		Short: "Let the engine play a game against itself",
		Args:  cobra.NoArgs,
		Long: heredoc.Doc(`selfplay runs one game in which both sides are played by the
			search engine with the same settings, printing the board after
			every move.`),
		RunE: func(cmd *cobra.Command, args []string) error {
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
			rng := newRand(flags.seed)
			x := agent.NewEvaluationAgent(iterations, flags.options(exploration, rng)...)
			o := agent.NewEvaluationAgent(iterations, flags.options(exploration, rng)...)

			e := engine.LocalEngine(state, x, o)
			e.Observe(func(state *game.GameState, player game.Player, move game.Move) {
				fmt.Fprintf(out, "%s plays: %s\n", player, move)
				renderer.PrintBoard(state)
				fmt.Fprintln(out)
			})

			gameMetric, _, err := e.Run()
			if err != nil {
				return err
			}

			fmt.Fprintf(out, "%s after %d moves\n", state.Status(), gameMetric.TotalMoves)
			return nil
		},
	}

	flags.register(cmd, meta.DEFAULT_SIZE)

	return cmd
}
