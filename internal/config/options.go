package config

import (
	"log/slog"

	"lifeboard/internal/control"
	"lifeboard/internal/session"
)

// SpeedBounds converts the speed section for the controller.
func (c *Config) SpeedBounds() control.Speed {
	return control.Speed{
		Initial: c.Speed.Initial,
		Min:     c.Speed.Min,
		Max:     c.Speed.Max,
		Step:    c.Speed.Step,
	}
}

// Palette converts the board colors for rendering.
func (c *Config) Palette() session.Palette {
	return session.Palette{
		Background: c.Colors.Background,
		Grid:       c.Colors.Grid,
		Cell:       c.Colors.Cell,
	}
}

// SessionOptions builds the session options. onGen may be nil.
func (c *Config) SessionOptions(logger *slog.Logger, onGen func(session.Generation)) session.Options {
	return session.Options{
		DisplayWidth:     c.Window.Width,
		DisplayHeight:    c.Window.Height,
		CellSize:         c.Board.CellSize,
		TPS:              c.Timing.TPS,
		MaxTicksPerFrame: c.Timing.MaxTicksPerFrame,
		Speed:            c.SpeedBounds(),
		Seed:             c.Board.Seed,
		Density:          c.Board.Density,
		Palette:          c.Palette(),
		OnGeneration:     onGen,
		Logger:           logger,
	}
}
