package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"

	"lifeboard/internal/config"
	"lifeboard/internal/headless"
	"lifeboard/internal/telemetry"

	"github.com/integrii/flaggy"
)

func main() {
	if err := run(); err != nil {
		slog.Error("lifeboard-headless failed", "error", err)
		os.Exit(1)
	}
}

func run() error {
	flags := config.NewFlags()
	var (
		generations = -1
		noColor     bool
	)
	parser := flaggy.NewParser("lifeboard-headless")
	parser.Description = "Run a Game of Life board in the terminal"
	flags.Bind(parser)
	parser.Int(&generations, "n", "generations", "Number of generations to run")
	parser.Bool(&noColor, "", "no-color", "Disable ANSI colors")
	if err := parser.Parse(); err != nil {
		return fmt.Errorf("parsing flags: %w", err)
	}

	cfg, err := config.LoadWithFlags(flags)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}
	if generations >= 0 {
		cfg.Headless.Generations = generations
	}
	if noColor {
		cfg.Headless.Color = false
	}

	logger, err := cfg.Logging.NewLogger(os.Stderr)
	if err != nil {
		return err
	}
	slog.SetDefault(logger)

	recorder, err := telemetry.Create(cfg.Telemetry.StatsCSV)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	_, runErr := headless.Run(ctx, headless.Options{
		Session:     cfg.SessionOptions(logger, recorder.Observe),
		Pattern:     cfg.Board.Pattern,
		Generations: cfg.Headless.Generations,
		Color:       cfg.Headless.Color,
		Out:         os.Stdout,
		Logger:      logger,
	})
	closeErr := recorder.Close()
	if runErr != nil {
		return runErr
	}
	if closeErr != nil {
		return closeErr
	}
	logger.Info("run summary", "summary", recorder.Summary())
	return nil
}
