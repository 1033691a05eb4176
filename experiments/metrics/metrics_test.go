package metrics

import (
	"encoding/csv"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func readCSV(t *testing.T, path string) [][]string {
	t.Helper()
	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()

	records, err := csv.NewReader(f).ReadAll()
	require.NoError(t, err)
	return records
}

func TestCollector(t *testing.T) {
	t.Run("counts search events", func(t *testing.T) {
		c := NewCollector()
		c.Start(5, 0.07)
		for i := 0; i < 5; i++ {
			c.AddEpisode()
		}
		c.AddExpansion()
		c.AddExpansion()
		c.AddResimulation()
		c.SetTreeSize(33)

		got := c.Complete()

		require.Equal(t, 5, got.Iterations)
		require.Equal(t, 0.07, got.Exploration)
		require.Equal(t, 5, got.Episodes)
		require.Equal(t, 2, got.Expansions)
		require.Equal(t, 1, got.Resimulations)
		require.Equal(t, 33, got.TreeSize)
		require.GreaterOrEqual(t, got.Duration, time.Duration(0))
	})

	t.Run("start resets previous counts", func(t *testing.T) {
		c := NewCollector()
		c.Start(1, 1)
		c.AddEpisode()
		c.AddResimulation()

		c.Start(2, 1)
		got := c.Complete()

		require.Zero(t, got.Episodes)
		require.Zero(t, got.Resimulations)
		require.Equal(t, 2, got.Iterations)
	})

	t.Run("dummy collector reports nothing", func(t *testing.T) {
		c := NewDummyCollector()
		c.Start(10, 1)
		c.AddEpisode()
		require.Equal(t, SearchMetric{}, c.Complete())
	})
}

func TestWriter(t *testing.T) {
	root := t.TempDir()
	w, err := NewWriter(root, "winrate")
	require.NoError(t, err)
	require.DirExists(t, w.Dir())
	require.Equal(t, filepath.Join(root, "winrate"), filepath.Dir(w.Dir()))

	t.Run("agent configs", func(t *testing.T) {
		err := w.WriteAgentConfigs([]AgentConfig{
			{ID: 1, Kind: "mcts", Preset: "original", Iterations: 2000, Exploration: 0.07},
			{ID: 2, Kind: "random"},
		})
		require.NoError(t, err)

		records := readCSV(t, filepath.Join(w.Dir(), "agent_configs.csv"))
		require.Len(t, records, 3)
		require.Equal(t, []string{"1", "mcts", "original", "2000", "0.07", "0", "false"}, records[1])
		require.Equal(t, "random", records[2][1])
	})

	t.Run("game and move records", func(t *testing.T) {
		start := time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC)
		err := w.WriteGameRecords([]GameRecord{{
			ID: 1, Agent1: 1, Agent2: 2,
			GameMetric: GameMetric{StartingPlayer: "X", Winner: "X", Status: "X wins", StartTime: start, EndTime: start.Add(time.Second), Duration: time.Second, TotalMoves: 7},
		}})
		require.NoError(t, err)
		err = w.WriteMoveRecords([]MoveRecord{{
			Game:       1,
			MoveMetric: MoveMetric{Step: 1, Player: "X", Move: "2,2", SearchMetric: SearchMetric{Iterations: 50, TreeSize: 51}},
		}})
		require.NoError(t, err)

		games := readCSV(t, filepath.Join(w.Dir(), "game_records.csv"))
		require.Len(t, games, 2)
		require.Equal(t, "X wins", games[1][5])
		require.Equal(t, "2024-01-02T03:04:05Z", games[1][6])
		require.Equal(t, "7", games[1][9])

		moves := readCSV(t, filepath.Join(w.Dir(), "move_records.csv"))
		require.Len(t, moves, 2)
		require.Equal(t, "2,2", moves[1][3])
		require.Equal(t, "51", moves[1][9])
	})

	t.Run("win rates", func(t *testing.T) {
		err := w.WriteWinRates([]WinRatePoint{
			{Game: 1, Won: true, Cumulative: 1, Window: 1},
			{Game: 2, Won: false, Cumulative: 0.5, Window: 0.5},
		})
		require.NoError(t, err)

		records := readCSV(t, filepath.Join(w.Dir(), "win_rates.csv"))
		require.Equal(t, []string{"game", "won", "cumulative", "window"}, records[0])
		require.Equal(t, []string{"2", "false", "0.5000", "0.5000"}, records[2])
	})
}
