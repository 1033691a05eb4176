package cli

import (
	"errors"
	"fmt"
	"io/fs"
	"path/filepath"

	"tictactoe/experiments"
	"tictactoe/experiments/metrics"
	"tictactoe/render"

	"github.com/MakeNowJust/heredoc/v2"
	"github.com/adrg/xdg"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

const configFile = "tictactoe/stats.yaml"

const (
	plotHeight = 10
	plotWidth  = 50
)

func Stats() *cobra.Command {
	var (
		configPath string
		games      int
		size       int
		window     int
		seed       uint64
		outDir     string
		noWrite    bool
	)

	cmd := &cobra.Command{
		Use:   "stats",
		Short: "Measure the engine's win rate over many games",
		Args:  cobra.NoArgs,
		Long: heredoc.Docf(`stats plays a series of games, by default the engine as X
			against a uniformly random O, and plots the running win rate.

			The experiment is read from --config, or from
			$XDG_CONFIG_HOME/%s when that file exists. Flags
			override the values from the file. Game, move and win-rate
			records are written as CSV under --out.`, configFile),
		RunE: func(cmd *cobra.Command, args []string) error {
			config, err := loadStatsConfig(configPath)
			if err != nil {
				return err
			}

			if cmd.Flags().Changed("games") {
				config.Games = games
			}
			if cmd.Flags().Changed("size") {
				config.Size = size
			}
			if cmd.Flags().Changed("window") {
				config.Window = window
			}
			if cmd.Flags().Changed("seed") {
				config.Seed = seed
			}
			err = config.Validate()
			if err != nil {
				return err
			}

			var writer *metrics.Writer
			if !noWrite {
				writer, err = metrics.NewWriter(outDir, config.Name)
				if err != nil {
					return fmt.Errorf("failed to create experiment writer: %w", err)
				}
			}

			summary, err := experiments.RunWinRate(config, newRand(config.Seed), writer)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			renderer := render.NewRenderer(out)
			title := fmt.Sprintf("Average Win Rate Over %d Games", summary.Games)
			fmt.Fprint(out, renderer.WinRatePlot(title, summary.Cumulative(), plotHeight, plotWidth))
			fmt.Fprintf(out, "wins: %d, losses: %d, draws: %d, win rate: %.2f\n", summary.Wins, summary.Losses, summary.Draws, summary.WinRate())
			if summary.Dir != "" {
				fmt.Fprintf(out, "records written to %s\n", summary.Dir)
			}
			return nil
		},
	}

	flags := cmd.Flags()
	flags.StringVar(&configPath, "config", "", "Experiment file (YAML)")
	flags.IntVar(&games, "games", 0, "Number of games")
	flags.IntVar(&size, "size", 0, "Board size")
	flags.IntVar(&window, "window", 0, "Games per rolling win-rate report")
	flags.Uint64Var(&seed, "seed", 0, "Random seed, 0 seeds from the clock")
	flags.StringVar(&outDir, "out", filepath.Join(xdg.DataHome, "tictactoe", "experiments"), "Directory for CSV records")
	flags.BoolVar(&noWrite, "no-write", false, "Do not write CSV records")

	return cmd
}

// loadStatsConfig reads the given file, falling back to the user's config
// directory and then to the built-in defaults.
func loadStatsConfig(path string) (experiments.Config, error) {
	if path != "" {
		return experiments.LoadConfig(path)
	}

	path, err := xdg.SearchConfigFile(configFile)
	if err != nil {
		log.Debug().Msgf("no %s found, using defaults", configFile)
		return experiments.DefaultConfig(), nil
	}

	log.Info().Msgf("using experiment config %s", path)
	config, err := experiments.LoadConfig(path)
	if err != nil && errors.Is(err, fs.ErrNotExist) {
		return experiments.DefaultConfig(), nil
	}
	return config, err
}
