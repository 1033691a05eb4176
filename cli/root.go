package cli

import (
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

func Root() *cobra.Command {
	root := &cobra.Command{
		Use:   "tictactoe",
		Short: "N×N tic-tac-toe against a Monte Carlo tree search",
		Args:  cobra.NoArgs,

		SilenceErrors: true,
		SilenceUsage:  true,

		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if cmd.Flag("debug").Changed {
				zerolog.SetGlobalLevel(zerolog.DebugLevel)
			}
		},
	}

	root.PersistentFlags().Bool("debug", false, "Show debug logs")

	root.AddCommand(Play())
	root.AddCommand(SelfPlay())
	root.AddCommand(Stats())

	return root
}
