package engine

import (
	"checkers/experiments/metrics"
	"checkers/game"
	"checkers/meta"
	"checkers/searcher/agent"
	"time"

	"github.com/rs/zerolog/log"
)

// Local plays both sides in-process, each with its own agent.
type Local struct {
	State    game.GameState
	Agents   map[game.Player]agent.Agent
	MaxTurns int
}

func LocalEngine(agents map[game.Player]agent.Agent) *Local {
	if agents[game.Human] == nil || agents[game.Computer] == nil {
		panic("need an agent for each player")
	}

	return &Local{
		State:    game.NewGameState(),
		Agents:   agents,
		MaxTurns: meta.MAX_TURNS,
	}
}

// Run executes the entire game loop until the status leaves Running.
func (e *Local) Run() (game.Status, metrics.GameMetric, []metrics.MoveMetric) {
	gameMetric := metrics.GameMetric{
		StartingPlayer: e.State.CurrentPlayer,
		StartTime:      time.Now(),
	}
	var moveMetrics []metrics.MoveMetric

	log.Info().Msgf("%s is starting", e.State.CurrentPlayer)

	turnCount := 1
	for {
		e.State.Status = e.State.Outcome()
		if e.State.Status != game.Running {
			break
		}
		if turnCount > e.MaxTurns {
			log.Info().Msgf("stopped after %d turns, no winner", e.MaxTurns)
			e.State.Status = game.Draw
			break
		}

		player := e.State.CurrentPlayer
		choice, searchMetric, err := e.Agents[player].FindMove(e.State)
		if err != nil {
			// Outcome already caught positions without moves
			log.Error().Err(err).Str("player", player.String()).Msg("agent failed to move")
			e.State.Status = game.Draw
			break
		}

		moveMetrics = append(moveMetrics, metrics.MoveMetric{
			Step:         turnCount,
			Player:       player,
			Jumps:        choice.Jumps(),
			SearchMetric: searchMetric,
		})
		log.Debug().
			Int("turn", turnCount).
			Str("player", player.String()).
			Uint64("hash", choice.State.Hash()).
			Msgf("played %v", choice.Path)

		e.State = choice.State
		turnCount++
	}

	gameMetric.Result = e.State.Status
	gameMetric.EndTime = time.Now()
	gameMetric.Duration = gameMetric.EndTime.Sub(gameMetric.StartTime)
	gameMetric.TotalMoves = len(moveMetrics)
	gameMetric.HumanPieces = e.State.CountPieces(game.Human)
	gameMetric.ComputerPieces = e.State.CountPieces(game.Computer)

	log.Info().Msgf("game over after %d turns: %s", gameMetric.TotalMoves, gameMetric.Result)
	return e.State.Status, gameMetric, moveMetrics
}
