package engine

import (
	"time"

	"nogo/experiments/metrics"
	"nogo/game"
	"nogo/searcher/agent"

	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"
)

// Observer is called after every accepted move.
type Observer func(step int, move game.Action, state game.Board)

type LocalEngine struct {
	State   game.Board
	Black   agent.Agent
	White   agent.Agent
	Observe Observer
}

func NewLocalEngine(black, white agent.Agent) (*LocalEngine, error) {
	if black.Role() != game.Black {
		return nil, errors.Errorf("agent %s plays %s, not black", black.Name(), black.Role())
	}
	if white.Role() != game.White {
		return nil, errors.Errorf("agent %s plays %s, not white", white.Name(), white.Role())
	}
	return &LocalEngine{
		State: game.NewBoard(),
		Black: black,
		White: white,
	}, nil
}

// Run executes the entire game loop on a fresh board. The first agent whose
// action is rejected, a pass included, loses.
func (e *LocalEngine) Run() (game.Piece, metrics.GameMetric, []metrics.MoveMetric) {
	e.State = game.NewBoard()
	gameMetric := metrics.GameMetric{
		Black:     e.Black.Name(),
		White:     e.White.Name(),
		StartTime: time.Now(),
	}
	var moveMetrics []metrics.MoveMetric

	log.Debug().Msgf("%s (black) vs %s (white) is starting", e.Black.Name(), e.White.Name())

	winner := game.Empty
	for step := 1; step <= MaxMoves+1; step++ {
		who := e.State.Turn()
		current := e.agentFor(who)

		var move game.Action
		var search metrics.SearchMetric
		if s, ok := current.(agent.Searcher); ok {
			move, search = s.Search(e.State)
		} else {
			move = current.TakeAction(e.State)
		}

		if result := move.Apply(&e.State); result != game.Legal {
			log.Debug().Msgf("%s cannot play %s (%s) at step %d", who, move, result, step)
			winner = who.Opponent()
			break
		}

		moveMetrics = append(moveMetrics, metrics.MoveMetric{
			Step:         step,
			Player:       who.String(),
			Move:         move.String(),
			SearchMetric: search,
		})
		if e.Observe != nil {
			e.Observe(step, move, e.State)
		}
	}

	gameMetric.Winner = winner.String()
	gameMetric.EndTime = time.Now()
	gameMetric.Duration = gameMetric.EndTime.Sub(gameMetric.StartTime)
	gameMetric.TotalMoves = len(moveMetrics)

	log.Debug().Msgf("game over after %d moves, winner: %s", gameMetric.TotalMoves, winner)
	return winner, gameMetric, moveMetrics
}

func (e *LocalEngine) agentFor(who game.Piece) agent.Agent {
	if who == game.Black {
		return e.Black
	}
	return e.White
}
