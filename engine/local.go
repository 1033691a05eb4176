package engine

import (
	"fmt"
	"time"

	"tictactoe/experiments/metrics"
	"tictactoe/game"
	"tictactoe/meta"
	"tictactoe/searcher/agent"

	"github.com/rs/zerolog/log"
)

type Engine struct {
	State     *game.GameState
	Agents    map[game.Player]agent.Agent
	observers []Observer
}

func LocalEngine(state *game.GameState, x, o agent.Agent) *Engine {
	if x == nil || o == nil {
		panic("need an agent for each player")
	}
	return &Engine{
		State: state,
		Agents: map[game.Player]agent.Agent{
			game.PlayerX: x,
			game.PlayerO: o,
		},
	}
}

func (e *Engine) Observe(observer Observer) {
	e.observers = append(e.observers, observer)
}

// Run asks the agents for moves until the game is decided.
func (e *Engine) Run() (metrics.GameMetric, []metrics.MoveMetric, error) {
	gameMetric := metrics.GameMetric{
		StartingPlayer: e.State.CurrentPlayer().String(),
		StartTime:      time.Now(),
	}
	var moveMetrics []metrics.MoveMetric

	log.Debug().Msgf("player %s is starting", e.State.CurrentPlayer())

	step := 1
	for e.State.Status() == game.Ongoing {
		player := e.State.CurrentPlayer()
		move, searchMetric, err := e.playTurn(player)
		if err != nil {
			return gameMetric, moveMetrics, err
		}

		moveMetrics = append(moveMetrics, metrics.MoveMetric{
			Step:         step,
			Player:       player.String(),
			Move:         move.String(),
			SearchMetric: searchMetric,
		})
		for _, observe := range e.observers {
			observe(e.State, player, move)
		}
		step++
	}

	gameMetric.EndTime = time.Now()
	gameMetric.Duration = gameMetric.EndTime.Sub(gameMetric.StartTime)
	gameMetric.TotalMoves = len(moveMetrics)
	gameMetric.Status = e.State.Status().String()
	if winner := e.State.Status().Winner(); winner != game.Empty {
		gameMetric.Winner = winner.String()
	}

	log.Debug().Msgf("game over after %d moves: %s", gameMetric.TotalMoves, e.State.Status())
	return gameMetric, moveMetrics, nil
}

// playTurn keeps asking the player's agent until it proposes a legal move.
func (e *Engine) playTurn(player game.Player) (game.Move, metrics.SearchMetric, error) {
	a := e.Agents[player]
	for rejections := 0; ; rejections++ {
		if rejections >= meta.MAX_REJECTIONS {
			return game.Move{}, metrics.SearchMetric{}, fmt.Errorf("agent for %s proposed %d illegal moves in a row", player, rejections)
		}

		move, searchMetric, err := a.FindMove(e.State)
		if err != nil {
			return game.Move{}, metrics.SearchMetric{}, fmt.Errorf("agent for %s failed to find a move: %w", player, err)
		}
		if e.State.Play(move) {
			return move, searchMetric, nil
		}

		log.Debug().Msgf("rejected move %s from player %s", move, player)
		if r, ok := a.(agent.Rejecter); ok {
			r.Reject(e.State, move)
		}
	}
}
