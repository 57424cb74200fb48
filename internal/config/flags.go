package config

import "github.com/integrii/flaggy"

// Flags holds command-line overrides. Zero values (and a negative Speed)
// leave the loaded configuration untouched.
type Flags struct {
	ConfigPath string
	CellSize   int
	Width      int
	Height     int
	TPS        int
	Speed      int
	Pattern    string
	Seed       int64
	StatsCSV   string
	LogLevel   string
}

// NewFlags returns flags that override nothing.
func NewFlags() *Flags {
	return &Flags{Speed: -1}
}

// Bind attaches the flags to the provided parser.
func (f *Flags) Bind(p *flaggy.Parser) {
	p.String(&f.ConfigPath, "c", "config", "YAML configuration file merged over the defaults")
	p.Int(&f.CellSize, "", "cell-size", "Cell size in pixels")
	p.Int(&f.Width, "", "width", "Window width in pixels")
	p.Int(&f.Height, "", "height", "Window height in pixels")
	p.Int(&f.TPS, "", "tps", "Simulation ticks per second")
	p.Int(&f.Speed, "", "speed", "Ticks per generation (0 evolves every tick)")
	p.String(&f.Pattern, "p", "pattern", "Seed pattern placed at startup")
	p.Int64(&f.Seed, "", "seed", "Seed for the randomize command")
	p.String(&f.StatsCSV, "", "stats-csv", "Write per-generation statistics to this CSV file")
	p.String(&f.LogLevel, "", "log-level", "Log level (debug, info, warn, error)")
}

// Apply copies every set flag into c.
func (f *Flags) Apply(c *Config) {
	if f.CellSize != 0 {
		c.Board.CellSize = f.CellSize
	}
	if f.Width != 0 {
		c.Window.Width = f.Width
	}
	if f.Height != 0 {
		c.Window.Height = f.Height
	}
	if f.TPS != 0 {
		c.Timing.TPS = f.TPS
	}
	if f.Speed >= 0 {
		c.Speed.Initial = f.Speed
	}
	if f.Pattern != "" {
		c.Board.Pattern = f.Pattern
	}
	if f.Seed != 0 {
		c.Board.Seed = f.Seed
	}
	if f.StatsCSV != "" {
		c.Telemetry.StatsCSV = f.StatsCSV
	}
	if f.LogLevel != "" {
		c.Logging.Level = f.LogLevel
	}
}

// LoadWithFlags loads the file named by --config and applies the remaining
// overrides, then validates the result.
func LoadWithFlags(f *Flags) (*Config, error) {
	cfg, err := Load(f.ConfigPath)
	if err != nil {
		return nil, err
	}
	f.Apply(cfg)
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}
