package experiments

import (
	"context"
	"strconv"

	"nogo/engine"
	"nogo/experiments/metrics"
	"nogo/game"
	"nogo/searcher/agent"

	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"
)

// Summary counts the wins of each side in one matchup.
type Summary struct {
	Black     string
	White     string
	BlackWins int
	WhiteWins int
}

type Results struct {
	Agents    []metrics.AgentConfig
	Games     []metrics.GameRecord
	Moves     []metrics.MoveRecord
	Summaries []Summary
}

type gameResult struct {
	record metrics.GameRecord
	moves  []metrics.MoveMetric
}

// Run plays every game of the setup, at most setup.Concurrency at a time.
// Each game builds its own agents; seeded agents get the game index added to
// their seed so that games differ but stay reproducible.
func Run(ctx context.Context, setup Setup) (Results, error) {
	setup.applyDefaults()
	results := Results{}
	type config struct {
		black, white agent.Config
	}
	configs := make([]config, len(setup.Matchups))
	for mi, matchup := range setup.Matchups {
		black, white, err := matchup.configs()
		if err != nil {
			return results, errors.WithMessagef(err, "matchup %d", mi+1)
		}
		configs[mi] = config{black: black, white: white}
		results.Agents = append(results.Agents, agentConfig(2*mi+1, black), agentConfig(2*mi+2, white))
	}

	log.Info().Msgf("starting %s experiment: %d matchups, %d games each", setup.Name, len(configs), setup.Games)

	slots := make([]gameResult, len(configs)*setup.Games)
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(setup.Concurrency)
	for mi, cfg := range configs {
		for i := 0; i < setup.Games; i++ {
			id := mi*setup.Games + i + 1
			g.Go(func() error {
				if err := ctx.Err(); err != nil {
					return err
				}
				result, err := runGame(seeded(cfg.black, i), seeded(cfg.white, i))
				if err != nil {
					return errors.WithMessagef(err, "game %d", id)
				}
				result.record.ID = id
				result.record.Matchup = mi + 1
				result.record.BlackAgent = 2*mi + 1
				result.record.WhiteAgent = 2*mi + 2
				slots[id-1] = result

				log.Info().Msgf("completed matchup %d game %d of %d with winner: %s", mi+1, i+1, setup.Games, result.record.Winner)
				return nil
			})
		}
	}
	if err := g.Wait(); err != nil {
		return results, err
	}

	for mi, cfg := range configs {
		summary := Summary{Black: cfg.black.Name, White: cfg.white.Name}
		for _, slot := range slots[mi*setup.Games : (mi+1)*setup.Games] {
			results.Games = append(results.Games, slot.record)
			for _, move := range slot.moves {
				results.Moves = append(results.Moves, metrics.MoveRecord{Game: slot.record.ID, MoveMetric: move})
			}
			switch slot.record.Winner {
			case game.Black.String():
				summary.BlackWins++
			case game.White.String():
				summary.WhiteWins++
			}
		}
		results.Summaries = append(results.Summaries, summary)
		log.Info().Msgf("matchup %d: %s (black) %d - %d %s (white)", mi+1, summary.Black, summary.BlackWins, summary.WhiteWins, summary.White)
	}

	log.Info().Msgf("completed %s experiment", setup.Name)
	return results, nil
}

// Write stores the experiment records as CSV files.
func (r Results) Write(writer *metrics.Writer) error {
	if err := writer.WriteAgentConfigs(r.Agents); err != nil {
		return err
	}
	log.Info().Msg("stored agent configs")

	if err := writer.WriteGameRecords(r.Games); err != nil {
		return err
	}
	log.Info().Msg("stored game records")

	if err := writer.WriteMoveRecords(r.Moves); err != nil {
		return err
	}
	log.Info().Msg("stored move records")
	return nil
}

// runGame executes a single game between two fresh agents.
func runGame(blackConfig, whiteConfig agent.Config) (gameResult, error) {
	black, err := agent.NewFromConfig(blackConfig)
	if err != nil {
		return gameResult{}, err
	}
	white, err := agent.NewFromConfig(whiteConfig)
	if err != nil {
		return gameResult{}, err
	}

	var e engine.Engine
	e, err = engine.NewLocalEngine(black, white)
	if err != nil {
		return gameResult{}, err
	}

	_, gameMetric, moveMetrics := e.Run()
	return gameResult{record: metrics.GameRecord{GameMetric: gameMetric}, moves: moveMetrics}, nil
}

func seeded(cfg agent.Config, index int) agent.Config {
	if cfg.HasSeed {
		cfg.Seed += uint64(index)
	}
	return cfg
}

func agentConfig(id int, cfg agent.Config) metrics.AgentConfig {
	record := metrics.AgentConfig{
		ID:     id,
		Name:   cfg.Name,
		Role:   cfg.Role.String(),
		Search: string(cfg.Search),
	}
	if cfg.Search == agent.MCTSSearch {
		record.Simulations = cfg.Simulations
	}
	if cfg.HasSeed {
		record.Seed = strconv.FormatUint(cfg.Seed, 10)
	}
	return record
}
