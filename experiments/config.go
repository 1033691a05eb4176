package experiments

import (
	"errors"
	"fmt"
	"io"
	"os"

	"tictactoe/experiments/metrics"
	"tictactoe/meta"
	"tictactoe/searcher"

	"gopkg.in/yaml.v3"
)

var ErrInvalidConfig = errors.New("invalid experiment config")

// Config describes a win-rate experiment. The first agent plays X and is the
// one whose win rate is tracked.
type Config struct {
	Name   string                `yaml:"name"`
	Games  int                   `yaml:"games"`
	Size   int                   `yaml:"size"`
	Window int                   `yaml:"window"`
	Seed   uint64                `yaml:"seed"` // 0 seeds from the clock
	Agents []metrics.AgentConfig `yaml:"agents"`
}

// DefaultConfig pits the engine with the original preset against a random
// player on a 4x4 board.
func DefaultConfig() Config {
	return Config{
		Name:   "winrate",
		Games:  meta.DEFAULT_GAMES,
		Size:   meta.DEFAULT_SIZE,
		Window: meta.ROLLING_WINDOW,
		Agents: []metrics.AgentConfig{
			{ID: 1, Kind: KindMCTS, Preset: "original"},
			{ID: 2, Kind: KindRandom},
		},
	}
}

// LoadConfig reads a YAML experiment file. Fields missing from the file keep
// their DefaultConfig values; unknown fields are rejected.
func LoadConfig(path string) (Config, error) {
	f, err := os.Open(path)
	if err != nil {
		return Config{}, fmt.Errorf("failed to open config: %w", err)
	}
	defer f.Close()

	return DecodeConfig(f)
}

func DecodeConfig(r io.Reader) (Config, error) {
	config := DefaultConfig()

	decoder := yaml.NewDecoder(r)
	decoder.KnownFields(true)
	err := decoder.Decode(&config)
	if err != nil && !errors.Is(err, io.EOF) {
		return Config{}, fmt.Errorf("failed to decode config: %w", err)
	}

	err = config.Validate()
	if err != nil {
		return Config{}, err
	}
	return config, nil
}

func (c Config) Validate() error {
	if c.Name == "" {
		return fmt.Errorf("%w: name is empty", ErrInvalidConfig)
	}
	if c.Games < 1 {
		return fmt.Errorf("%w: games must be positive, got %d", ErrInvalidConfig, c.Games)
	}
	if c.Size < 1 {
		return fmt.Errorf("%w: size must be positive, got %d", ErrInvalidConfig, c.Size)
	}
	if c.Window < 1 {
		return fmt.Errorf("%w: window must be positive, got %d", ErrInvalidConfig, c.Window)
	}
	if len(c.Agents) != 2 {
		return fmt.Errorf("%w: need exactly 2 agents, got %d", ErrInvalidConfig, len(c.Agents))
	}
	if c.Agents[0].ID == c.Agents[1].ID {
		return fmt.Errorf("%w: agent ids must differ", ErrInvalidConfig)
	}
	for _, a := range c.Agents {
		err := validateAgent(a)
		if err != nil {
			return err
		}
	}
	return nil
}

func validateAgent(a metrics.AgentConfig) error {
	switch a.Kind {
	case KindMCTS, KindTraining, KindRandom:
	default:
		return fmt.Errorf("%w: agent %d has unknown kind %q", ErrInvalidConfig, a.ID, a.Kind)
	}
	if a.Preset != "" {
		_, err := searcher.LookupPreset(a.Preset)
		if err != nil {
			return fmt.Errorf("%w: agent %d: %v", ErrInvalidConfig, a.ID, err)
		}
	}
	if a.Iterations < 0 {
		return fmt.Errorf("%w: agent %d has negative iterations", ErrInvalidConfig, a.ID)
	}
	if a.Exploration < 0 {
		return fmt.Errorf("%w: agent %d has negative exploration", ErrInvalidConfig, a.ID)
	}
	if a.Temperature < 0 {
		return fmt.Errorf("%w: agent %d has negative temperature", ErrInvalidConfig, a.ID)
	}
	return nil
}
