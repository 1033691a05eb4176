package experiments

import (
	"fmt"

	"tictactoe/experiments/metrics"
	"tictactoe/searcher"
	"tictactoe/searcher/agent"

	"golang.org/x/exp/rand"
)

const (
	KindMCTS     = "mcts"
	KindTraining = "training"
	KindRandom   = "random"
)

const defaultTemperature = 1.0

// Resolve fills the search parameters of a config from its preset. Explicit
// iterations, exploration and temperature take precedence over the preset.
func Resolve(config metrics.AgentConfig) (metrics.AgentConfig, error) {
	if config.Kind == KindRandom {
		return config, nil
	}

	name := config.Preset
	if name == "" {
		name = "original"
	}
	preset, err := searcher.LookupPreset(name)
	if err != nil {
		return metrics.AgentConfig{}, err
	}

	config.Preset = preset.Name
	if config.Iterations == 0 {
		config.Iterations = preset.Iterations
	}
	if config.Exploration == 0 {
		config.Exploration = preset.Exploration
	}
	if config.Kind == KindTraining && config.Temperature == 0 {
		config.Temperature = defaultTemperature
	}
	return config, nil
}

// NewAgent builds the agent a resolved config describes.
func NewAgent(config metrics.AgentConfig, rng *rand.Rand) (agent.Agent, error) {
	options := []searcher.Option{
		searcher.WithExploration(config.Exploration),
		searcher.WithRand(rng),
		searcher.WithMetrics(),
	}
	if config.Replay {
		options = append(options, searcher.WithPathReplay())
	}

	switch config.Kind {
	case KindMCTS:
		return agent.NewEvaluationAgent(config.Iterations, options...), nil
	case KindTraining:
		return agent.NewTrainingAgent(config.Iterations, config.Temperature, rng, options...), nil
	case KindRandom:
		return agent.NewRandomAgent(rng), nil
	default:
		return nil, fmt.Errorf("%w: unknown agent kind %q", ErrInvalidConfig, config.Kind)
	}
}
