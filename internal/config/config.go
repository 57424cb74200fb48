// Package config loads the simulator configuration: embedded defaults with an
// optional user YAML file merged on top.
package config

import (
	_ "embed"
	"fmt"
	"image/color"
	"os"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

//go:embed defaults.yaml
var defaultsYAML []byte

// Config holds every tunable of the simulator.
type Config struct {
	Window    WindowConfig    `yaml:"window"`
	Board     BoardConfig     `yaml:"board"`
	Timing    TimingConfig    `yaml:"timing"`
	Speed     SpeedConfig     `yaml:"speed"`
	Colors    ColorsConfig    `yaml:"colors"`
	Logging   LoggingConfig   `yaml:"logging"`
	Telemetry TelemetryConfig `yaml:"telemetry"`
	Headless  HeadlessConfig  `yaml:"headless"`
}

// WindowConfig holds display settings. The board covers as many whole cells
// as fit in Width x Height.
type WindowConfig struct {
	Title  string `yaml:"title"`
	Width  int    `yaml:"width"`
	Height int    `yaml:"height"`
}

// BoardConfig holds board sizing and seeding.
type BoardConfig struct {
	CellSize int     `yaml:"cell_size"`
	Pattern  string  `yaml:"pattern"`
	Density  float64 `yaml:"density"`
	Seed     int64   `yaml:"seed"`
}

// TimingConfig holds the fixed-step clock settings.
type TimingConfig struct {
	TPS              int `yaml:"tps"`
	MaxTicksPerFrame int `yaml:"max_ticks_per_frame"`
}

// SpeedConfig bounds the evolve divisor.
type SpeedConfig struct {
	Initial int `yaml:"initial"`
	Min     int `yaml:"min"`
	Max     int `yaml:"max"`
	Step    int `yaml:"step"`
}

// ColorsConfig holds render colors as "#rrggbb" or "#rrggbbaa".
type ColorsConfig struct {
	Background Color `yaml:"background"`
	Grid       Color `yaml:"grid"`
	Cell       Color `yaml:"cell"`
	Ghost      Color `yaml:"ghost"`
	Heat       Color `yaml:"heat"`
}

// LoggingConfig selects the slog handler.
type LoggingConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

// TelemetryConfig holds statistics output.
type TelemetryConfig struct {
	StatsCSV string `yaml:"stats_csv"`
}

// HeadlessConfig holds terminal runner settings.
type HeadlessConfig struct {
	Generations int  `yaml:"generations"`
	Color       bool `yaml:"color"`
}

// Color is an RGBA color written in YAML as a hex string.
type Color color.RGBA

// RGBA implements color.Color.
func (c Color) RGBA() (r, g, b, a uint32) { return color.RGBA(c).RGBA() }

// String formats the color as "#rrggbb", adding the alpha byte when it is
// not opaque.
func (c Color) String() string {
	if c.A == 0xff {
		return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
	}
	return fmt.Sprintf("#%02x%02x%02x%02x", c.R, c.G, c.B, c.A)
}

// ParseColor parses "#rrggbb" or "#rrggbbaa" (the leading '#' is optional).
func ParseColor(s string) (Color, error) {
	hex := strings.TrimPrefix(strings.TrimSpace(s), "#")
	if len(hex) != 6 && len(hex) != 8 {
		return Color{}, fmt.Errorf("color %q: want 6 or 8 hex digits", s)
	}
	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return Color{}, fmt.Errorf("color %q: %w", s, err)
	}
	if len(hex) == 6 {
		v = v<<8 | 0xff
	}
	return Color{R: uint8(v >> 24), G: uint8(v >> 16), B: uint8(v >> 8), A: uint8(v)}, nil
}

// UnmarshalYAML implements yaml.Unmarshaler.
func (c *Color) UnmarshalYAML(value *yaml.Node) error {
	var s string
	if err := value.Decode(&s); err != nil {
		return err
	}
	parsed, err := ParseColor(s)
	if err != nil {
		return fmt.Errorf("line %d: %w", value.Line, err)
	}
	*c = parsed
	return nil
}

// MarshalYAML implements yaml.Marshaler.
func (c Color) MarshalYAML() (interface{}, error) {
	return c.String(), nil
}

// Load reads the embedded defaults and merges the file at path on top.
// An empty path returns the defaults.
func Load(path string) (*Config, error) {
	cfg := &Config{}
	if err := yaml.Unmarshal(defaultsYAML, cfg); err != nil {
		return nil, fmt.Errorf("parsing embedded defaults: %w", err)
	}

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
		// Fields absent from the file keep their defaults.
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parsing config file: %w", err)
		}
	}

	return cfg, nil
}

// Validate reports the first invalid setting.
func (c *Config) Validate() error {
	switch {
	case c.Window.Width <= 0 || c.Window.Height <= 0:
		return fmt.Errorf("window: size %dx%d must be positive", c.Window.Width, c.Window.Height)
	case c.Board.CellSize <= 0:
		return fmt.Errorf("board: cell_size %d must be positive", c.Board.CellSize)
	case c.Board.Density < 0 || c.Board.Density > 1:
		return fmt.Errorf("board: density %v outside [0, 1]", c.Board.Density)
	case c.Timing.TPS <= 0:
		return fmt.Errorf("timing: tps %d must be positive", c.Timing.TPS)
	case c.Timing.MaxTicksPerFrame < 0:
		return fmt.Errorf("timing: max_ticks_per_frame %d must not be negative", c.Timing.MaxTicksPerFrame)
	case c.Speed.Min < 0 || c.Speed.Max < c.Speed.Min:
		return fmt.Errorf("speed: bounds [%d, %d] invalid", c.Speed.Min, c.Speed.Max)
	case c.Speed.Step <= 0:
		return fmt.Errorf("speed: step %d must be positive", c.Speed.Step)
	case c.Speed.Initial < c.Speed.Min || c.Speed.Initial > c.Speed.Max:
		return fmt.Errorf("speed: initial %d outside [%d, %d]", c.Speed.Initial, c.Speed.Min, c.Speed.Max)
	case c.Headless.Generations < 0:
		return fmt.Errorf("headless: generations %d must not be negative", c.Headless.Generations)
	}
	if _, err := c.Logging.level(); err != nil {
		return err
	}
	if f := c.Logging.Format; f != "text" && f != "json" {
		return fmt.Errorf("logging: unknown format %q", f)
	}
	return nil
}

// WriteYAML writes the configuration to a YAML file.
func (c *Config) WriteYAML(path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}
	return nil
}
