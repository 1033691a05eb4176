package metrics

// AgentConfig describes one side of a matchup.
type AgentConfig struct {
	ID          int     `yaml:"id"`
	Kind        string  `yaml:"kind"`   // mcts, training or random
	Preset      string  `yaml:"preset"` // searcher preset, overridden by the fields below
	Iterations  int     `yaml:"iterations"`
	Exploration float64 `yaml:"exploration"`
	Temperature float64 `yaml:"temperature"`
	Replay      bool    `yaml:"replay"` // replay each node's path during search
}

type GameRecord struct {
	ID     int
	Agent1 int // AgentConfig.ID playing X
	Agent2 int // AgentConfig.ID playing O
	GameMetric
}

type MoveRecord struct {
	Game int // GameRecord.ID
	MoveMetric
}

// WinRatePoint is one game of a win-rate series, seen from the tracked agent.
type WinRatePoint struct {
	Game       int
	Won        bool
	Cumulative float64 // wins so far / games so far
	Window     float64 // win rate over the trailing window
}
