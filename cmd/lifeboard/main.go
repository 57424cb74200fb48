//go:build ebiten

package main

import (
	"errors"
	"fmt"
	"log/slog"
	"os"

	"lifeboard/internal/app"
	"lifeboard/internal/config"
	"lifeboard/internal/session"
	"lifeboard/internal/telemetry"
	"lifeboard/internal/ui"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/integrii/flaggy"
)

const hudWidth = 220

func main() {
	if err := run(); err != nil {
		slog.Error("lifeboard failed", "error", err)
		os.Exit(1)
	}
}

func run() error {
	flags := config.NewFlags()
	parser := flaggy.NewParser("lifeboard")
	parser.Description = "Interactive Conway's Game of Life"
	flags.Bind(parser)
	if err := parser.Parse(); err != nil {
		return fmt.Errorf("parsing flags: %w", err)
	}

	cfg, err := config.LoadWithFlags(flags)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
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

	sess := session.New(cfg.SessionOptions(logger, recorder.Observe))
	if cfg.Board.Pattern != "" && !sess.Seed(cfg.Board.Pattern) {
		recorder.Close()
		return fmt.Errorf("unknown pattern %q", cfg.Board.Pattern)
	}

	game := app.New(sess, app.Options{
		HUDWidth: hudWidth,
		Title:    cfg.Window.Title,
		Layers:   ui.NewLayers(cfg.Colors.Ghost, cfg.Colors.Heat),
		Logger:   logger,
	})

	w, h := sess.PixelSize()
	ebiten.SetWindowTitle(cfg.Window.Title)
	ebiten.SetWindowSize(w+hudWidth, h)
	ebiten.SetWindowClosingHandled(true)
	// Update runs once per frame; the session's fixed-step clock decides
	// how many ticks each frame performs.
	ebiten.SetTPS(ebiten.SyncWithFPS)

	runErr := ebiten.RunGame(game)
	closeErr := recorder.Close()
	if runErr != nil && !errors.Is(runErr, ebiten.Termination) {
		return fmt.Errorf("running window: %w", runErr)
	}
	if closeErr != nil {
		return closeErr
	}
	logger.Info("run summary", "summary", recorder.Summary())
	return nil
}
