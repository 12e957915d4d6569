package app

import (
	"flag"
	"fmt"
	"strings"
	"time"

	"chunk-life/internal/sims/life"
)

// Config represents the command-line parameters for the application.
type Config struct {
	Life      life.Config
	Scale     int
	TPS       int
	Interval  time.Duration
	Seed      int64
	InvertPan bool
	HUDWidth  int
}

// NewConfig returns a Config populated with sensible defaults.
func NewConfig() *Config {
	return &Config{
		Life:     life.DefaultConfig(),
		Scale:    4,
		TPS:      60,
		Interval: 36 * time.Millisecond,
		Seed:     42,
		HUDWidth: 220,
	}
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.IntVar(&c.Life.Width, "w", c.Life.Width, "world width in tiles")
	fs.IntVar(&c.Life.Height, "h", c.Life.Height, "world height in tiles")
	fs.IntVar(&c.Life.ChunkWidth, "chunk-w", c.Life.ChunkWidth, "viewport width in tiles; must divide -w")
	fs.IntVar(&c.Life.ChunkHeight, "chunk-h", c.Life.ChunkHeight, "viewport height in tiles; must divide -h")
	fs.StringVar(&c.Life.Pattern, "pattern", c.Life.Pattern, "seed pattern: "+strings.Join(life.PatternNames(), ", "))
	fs.Float64Var(&c.Life.SoupDensity, "density", c.Life.SoupDensity, "fill probability for the soup pattern")
	fs.IntVar(&c.Scale, "scale", c.Scale, "pixel scale multiplier")
	fs.IntVar(&c.TPS, "tps", c.TPS, "input ticks per second")
	fs.DurationVar(&c.Interval, "interval", c.Interval, "time between generations while playing")
	fs.Int64Var(&c.Seed, "seed", c.Seed, "seed for the soup pattern")
	fs.BoolVar(&c.InvertPan, "invert-pan", c.InvertPan, "swap up and down when panning the play view")
	fs.IntVar(&c.HUDWidth, "hud", c.HUDWidth, "HUD panel width in pixels, 0 hides it")
}

// Validate checks the configuration before anything is allocated.
func (c *Config) Validate() error {
	if err := c.Life.Validate(); err != nil {
		return err
	}
	if c.Scale <= 0 {
		return fmt.Errorf("app: scale must be positive, got %d", c.Scale)
	}
	if c.TPS <= 0 {
		return fmt.Errorf("app: tps must be positive, got %d", c.TPS)
	}
	if c.Interval < 0 {
		return fmt.Errorf("app: interval must not be negative, got %v", c.Interval)
	}
	return nil
}
