package cli

import (
	"fmt"
	"strings"
	"time"

	"tictactoe/game"
	"tictactoe/searcher"

	"github.com/spf13/cobra"
	"golang.org/x/exp/rand"
)

// searchFlags are shared by the commands that let the engine play.
type searchFlags struct {
	size        int
	position    string
	preset      string
	iterations  int
	exploration float64
	seed        uint64
	replay      bool
	discard     bool
}

func (f *searchFlags) register(cmd *cobra.Command, defaultSize int) {
	flags := cmd.Flags()
	flags.IntVar(&f.size, "size", defaultSize, "Board size")
	flags.StringVar(&f.position, "position", "", "Start position, rows separated by '/' (e.g. XO./.X./...)")
	flags.StringVar(&f.preset, "preset", "original", "Search preset ("+strings.Join(searcher.PresetNames(), ", ")+")")
	flags.IntVar(&f.iterations, "iterations", 0, "Playouts per move, overrides the preset")
	flags.Float64Var(&f.exploration, "exploration", 0, "Exploration constant C, overrides the preset")
	flags.Uint64Var(&f.seed, "seed", 0, "Random seed, 0 seeds from the clock")
	flags.BoolVar(&f.replay, "replay", false, "Replay each node's moves during simulation")
	flags.BoolVar(&f.discard, "discard-resims", false, "Do not back up re-simulated leaves")
}

// budget resolves the preset and any explicit overrides.
func (f *searchFlags) budget(cmd *cobra.Command) (int, float64, error) {
	preset, err := searcher.LookupPreset(f.preset)
	if err != nil {
		return 0, 0, err
	}

	iterations, exploration := preset.Iterations, preset.Exploration
	if cmd.Flags().Changed("iterations") {
		if f.iterations < 1 {
			return 0, 0, fmt.Errorf("iterations must be positive, got %d", f.iterations)
		}
		iterations = f.iterations
	}
	if cmd.Flags().Changed("exploration") {
		if f.exploration < 0 {
			return 0, 0, fmt.Errorf("exploration must not be negative, got %g", f.exploration)
		}
		exploration = f.exploration
	}
	return iterations, exploration, nil
}

func (f *searchFlags) options(exploration float64, rng *rand.Rand) []searcher.Option {
	options := []searcher.Option{
		searcher.WithExploration(exploration),
		searcher.WithRand(rng),
		searcher.WithMetrics(),
	}
	if f.replay {
		options = append(options, searcher.WithPathReplay())
	}
	if f.discard {
		options = append(options, searcher.WithDiscardedResimulations())
	}
	return options
}

func (f *searchFlags) state() (*game.GameState, error) {
	if f.position == "" {
		if f.size < 1 {
			return nil, fmt.Errorf("size must be positive, got %d", f.size)
		}
		return game.NewGameState(f.size), nil
	}

	state, err := game.ParsePosition(f.position, toMove(f.position))
	if err != nil {
		return nil, fmt.Errorf("invalid position: %w", err)
	}
	if state.Status().IsOver() {
		return nil, fmt.Errorf("position is already decided: %s", state.Status())
	}
	return state, nil
}

// toMove infers the side to move from the mark counts, X moving first.
func toMove(position string) game.Player {
	x := strings.Count(strings.ToUpper(position), "X")
	o := strings.Count(strings.ToUpper(position), "O")
	if x > o {
		return game.PlayerO
	}
	return game.PlayerX
}

func newRand(seed uint64) *rand.Rand {
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	return rand.New(rand.NewSource(seed))
}
