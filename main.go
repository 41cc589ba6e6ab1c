package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"time"

	"nogo/engine"
	"nogo/experiments"
	"nogo/experiments/metrics"
	"nogo/game"
	"nogo/render"
	"nogo/searcher/agent"

	"github.com/muesli/termenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func main() {
	black := flag.String("black", "name=mcts role=black search=MCTS", "Black agent configuration")
	white := flag.String("white", "name=random role=white", "White agent configuration")
	setupPath := flag.String("setup", "", "YAML experiment setup, plays the experiment instead of a single game")
	outDir := flag.String("out", "experiments", "Directory for experiment records")
	serve := flag.String("serve", "", "Address to serve -agent on, e.g. :8080")
	agentArgs := flag.String("agent", "name=mcts role=black search=MCTS", "Agent configuration for -serve")
	show := flag.Bool("show", false, "Draw the board after every move")
	debug := flag.Bool("debug", false, "Log every search")
	flag.Parse()

	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.Kitchen})
	zerolog.SetGlobalLevel(zerolog.InfoLevel)
	if *debug {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	}

	var err error
	switch {
	case *serve != "":
		err = runServer(*serve, *agentArgs)
	case *setupPath != "":
		err = runExperiment(*setupPath, *outDir)
	default:
		err = runGame(*black, *white, *show)
	}
	if err != nil {
		log.Fatal().Err(err).Msg("nogo failed")
	}
}

func runServer(addr, args string) error {
	a, err := agent.New(args)
	if err != nil {
		return err
	}
	return agent.Serve(addr, a)
}

func runExperiment(path, outDir string) error {
	setup, err := experiments.LoadSetup(path)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	results, err := experiments.Run(ctx, setup)
	if err != nil {
		return err
	}

	writer, err := metrics.NewWriter(outDir, setup.Name)
	if err != nil {
		return err
	}
	if err := results.Write(writer); err != nil {
		return err
	}
	log.Info().Msgf("records stored in %s", writer.Dir())
	return nil
}

// runGame plays a single game between the black and white agents
func runGame(blackArgs, whiteArgs string, show bool) error {
	black, err := agent.New(blackArgs)
	if err != nil {
		return err
	}
	white, err := agent.New(whiteArgs)
	if err != nil {
		return err
	}
	e, err := engine.NewLocalEngine(black, white)
	if err != nil {
		return err
	}

	out := termenv.NewOutput(os.Stdout)
	if show {
		e.Observe = func(step int, move game.Action, state game.Board) {
			fmt.Fprintf(out, "%d. %s %s\n%s\n", step, move.Who, move, render.Board(out, state))
		}
	}

	winner, gameMetric, _ := e.Run()
	fmt.Fprint(out, render.Board(out, e.State))
	log.Info().Msgf("game over after %d moves in %s, winner: %s", gameMetric.TotalMoves, gameMetric.Duration, winner)
	return nil
}
