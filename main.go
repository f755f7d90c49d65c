package main

import (
	"checkers/config"
	"checkers/experiments"
	"checkers/game"
	"checkers/gamemaster"
	"checkers/searcher"
	"checkers/searcher/agent"
	"checkers/ui/line"
	"checkers/ui/tui"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/rs/zerolog/log"
)

func main() {
	configPath := flag.String("config", "", "Path to a YAML config file")
	mode := flag.String("mode", "play", "play against the computer, or run an experiment")
	ui := flag.String("ui", "", "Frontend: tui or line (overrides config)")
	search := flag.String("search", "", "Search mode: minimax or greedy (overrides config)")
	depth := flag.Int("depth", 0, "Minimax search depth (overrides config)")
	goroutines := flag.Int("goroutines", 0, "Goroutines building root subtrees (overrides config)")
	experiment := flag.String("experiment", "", "Experiment: depth or throughput (overrides config)")
	logLevel := flag.String("log", "", "Log level (overrides config)")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "ui":
			cfg.UI.Mode = *ui
		case "search":
			cfg.Search.Mode = *search
		case "depth":
			cfg.Search.Depth = *depth
		case "goroutines":
			cfg.Search.Goroutines = *goroutines
		case "experiment":
			cfg.Experiment.Name = *experiment
		case "log":
			cfg.Log.Level = *logLevel
		}
	})
	if err := cfg.Validate(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	switch *mode {
	case "play":
		err = play(cfg)
	case "experiment":
		err = runExperiment(cfg)
	default:
		err = fmt.Errorf("unknown mode %q", *mode)
	}
	if err != nil {
		log.Error().Err(err).Msg("checkers failed")
		os.Exit(1)
	}
}

func play(cfg config.Config) error {
	var logFile *os.File
	logOut := io.Writer(os.Stderr)
	if cfg.UI.Mode == "tui" {
		// The alternate screen owns the terminal: log to a file when debugging, else nowhere
		logOut = io.Discard
		if cfg.Log.Level == "debug" || cfg.Log.Level == "trace" {
			f, err := os.OpenFile("checkers.log", os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
			if err != nil {
				return fmt.Errorf("failed to open log file: %w", err)
			}
			logFile = f
			logOut = f
			cfg.Log.Pretty = false
		}
	}
	if logFile != nil {
		defer logFile.Close()
	}
	if err := config.SetupLogging(cfg.Log, logOut); err != nil {
		return err
	}

	session := gamemaster.NewSession(game.NewGameState(), computerAgent(cfg.Search))
	log.Info().Msgf("starting game: %s search at depth %d", cfg.Search.Mode, cfg.Search.Depth)

	var status game.Status
	if cfg.UI.Mode == "tui" {
		var err error
		status, err = tui.Run(session, cfg.UI.Theme)
		if err != nil {
			return err
		}
	} else {
		frontend, err := line.New(".checkers_history")
		if err != nil {
			return err
		}
		defer frontend.Close()
		status = gamemaster.NewGameMaster(session).Run(frontend)
	}

	fmt.Printf("Game over: %s\n", status)
	return nil
}

func computerAgent(cfg config.Search) agent.Agent {
	if cfg.Mode == searcher.ModeGreedy {
		return agent.NewGreedyAgent(searcher.NewGreedy())
	}
	return agent.NewMinimaxAgent(searcher.NewMinimax(cfg.Depth, searcher.WithGoroutines(cfg.Goroutines)))
}

func runExperiment(cfg config.Config) error {
	if err := config.SetupLogging(cfg.Log, os.Stderr); err != nil {
		return err
	}

	dir, err := experiments.Run(cfg.Experiment, cfg.Search)
	if err != nil {
		return err
	}
	fmt.Printf("Results written to %s\n", dir)
	return nil
}
