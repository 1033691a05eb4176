package experiments

import (
	"fmt"

	"tictactoe/engine"
	"tictactoe/experiments/metrics"
	"tictactoe/game"

	"github.com/rs/zerolog/log"
	"golang.org/x/exp/rand"
)

// Summary is the outcome of a win-rate experiment, seen from the agent
// playing X.
type Summary struct {
	Name   string
	Games  int
	Wins   int
	Losses int
	Draws  int
	Rates  []metrics.WinRatePoint
	Dir    string // where the records were stored, empty if they were not
}

func (s Summary) WinRate() float64 {
	if s.Games == 0 {
		return 0
	}
	return float64(s.Wins) / float64(s.Games)
}

// Cumulative returns the running win rate after every game.
func (s Summary) Cumulative() []float64 {
	rates := make([]float64, len(s.Rates))
	for i, p := range s.Rates {
		rates[i] = p.Cumulative
	}
	return rates
}

// RunWinRate plays config.Games games between the two configured agents and
// tracks how often the first one wins. Records are stored through writer
// unless it is nil.
func RunWinRate(config Config, rng *rand.Rand, writer *metrics.Writer) (Summary, error) {
	err := config.Validate()
	if err != nil {
		return Summary{}, err
	}

	configs := make([]metrics.AgentConfig, len(config.Agents))
	for i, c := range config.Agents {
		configs[i], err = Resolve(c)
		if err != nil {
			return Summary{}, fmt.Errorf("failed to resolve agent %d: %w", c.ID, err)
		}
	}
	x, err := NewAgent(configs[0], rng)
	if err != nil {
		return Summary{}, err
	}
	o, err := NewAgent(configs[1], rng)
	if err != nil {
		return Summary{}, err
	}

	summary := Summary{Name: config.Name}
	gameRecords := []metrics.GameRecord{}
	moveRecords := []metrics.MoveRecord{}
	results := []bool{}

	log.Info().Msgf("starting %s experiment: agent1=%+v vs agent2=%+v on %dx%d", config.Name, configs[0], configs[1], config.Size, config.Size)

	for i := 1; i <= config.Games; i++ {
		log.Info().Msgf("playing game %d of %d...", i, config.Games)

		state := game.NewGameState(config.Size)
		gameMetric, moveMetrics, err := engine.LocalEngine(state, x, o).Run()
		if err != nil {
			return summary, fmt.Errorf("game %d failed: %w", i, err)
		}

		gameRecords = append(gameRecords, metrics.GameRecord{
			ID:         i,
			Agent1:     configs[0].ID,
			Agent2:     configs[1].ID,
			GameMetric: gameMetric,
		})
		for _, mm := range moveMetrics {
			moveRecords = append(moveRecords, metrics.MoveRecord{Game: i, MoveMetric: mm})
		}

		status := state.Status()
		won := status == game.XWins
		switch {
		case won:
			summary.Wins++
		case status == game.Draw:
			summary.Draws++
		default:
			summary.Losses++
		}
		summary.Games++
		results = append(results, won)

		summary.Rates = append(summary.Rates, metrics.WinRatePoint{
			Game:       i,
			Won:        won,
			Cumulative: summary.WinRate(),
			Window:     windowRate(results, config.Window),
		})

		log.Info().Msgf("completed game %d of %d: %s", i, config.Games, status)
		if i%config.Window == 0 {
			log.Info().Msgf("average win rate over last %d games: %.2f", config.Window, windowRate(results, config.Window))
		}
	}

	log.Info().Msgf("completed %s experiment: %d wins, %d losses, %d draws", config.Name, summary.Wins, summary.Losses, summary.Draws)

	if writer == nil {
		return summary, nil
	}
	err = store(writer, configs, gameRecords, moveRecords, summary.Rates)
	if err != nil {
		return summary, err
	}
	summary.Dir = writer.Dir()
	return summary, nil
}

// windowRate is the share of wins among the last window results, or among all
// of them while fewer have been played.
func windowRate(results []bool, window int) float64 {
	if len(results) == 0 {
		return 0
	}
	if len(results) > window {
		results = results[len(results)-window:]
	}
	wins := 0
	for _, won := range results {
		if won {
			wins++
		}
	}
	return float64(wins) / float64(len(results))
}

func store(writer *metrics.Writer, configs []metrics.AgentConfig, games []metrics.GameRecord, moves []metrics.MoveRecord, rates []metrics.WinRatePoint) error {
	err := writer.WriteAgentConfigs(configs)
	if err != nil {
		return fmt.Errorf("failed to store agent configs: %w", err)
	}
	log.Info().Msg("stored agent configs")

	err = writer.WriteGameRecords(games)
	if err != nil {
		return fmt.Errorf("failed to write game records: %w", err)
	}
	log.Info().Msg("stored game records")

	err = writer.WriteMoveRecords(moves)
	if err != nil {
		return fmt.Errorf("failed to write move records: %w", err)
	}
	log.Info().Msg("stored move records")

	err = writer.WriteWinRates(rates)
	if err != nil {
		return fmt.Errorf("failed to write win rates: %w", err)
	}
	log.Info().Msgf("stored win rates in %s", writer.Dir())
	return nil
}
