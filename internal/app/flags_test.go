package app

import (
	"flag"
	"testing"
	"time"
)

func TestBindParsesFlags(t *testing.T) {
	cfg := NewConfig()
	fs := flag.NewFlagSet("ca", flag.ContinueOnError)
	cfg.Bind(fs)
	err := fs.Parse([]string{
		"-w", "100", "-h", "60", "-chunk-w", "50", "-chunk-h", "20",
		"-pattern", "soup", "-interval", "80ms", "-invert-pan", "-seed", "9",
	})
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Life.Width != 100 || cfg.Life.Height != 60 || cfg.Life.ChunkWidth != 50 || cfg.Life.ChunkHeight != 20 {
		t.Fatalf("dimensions=%+v", cfg.Life)
	}
	if cfg.Life.Pattern != "soup" || cfg.Interval != 80*time.Millisecond || !cfg.InvertPan || cfg.Seed != 9 {
		t.Fatalf("cfg=%+v", cfg)
	}
	if err := cfg.Validate(); err != nil {
		t.Fatalf("Validate: %v", err)
	}
}

func TestValidateRejectsBadDisplay(t *testing.T) {
	for _, mutate := range []func(*Config){
		func(c *Config) { c.Scale = 0 },
		func(c *Config) { c.TPS = -1 },
		func(c *Config) { c.Interval = -time.Millisecond },
		func(c *Config) { c.Life.ChunkHeight = 60 },
	} {
		cfg := NewConfig()
		mutate(cfg)
		if cfg.Validate() == nil {
			t.Fatalf("accepted %+v", cfg)
		}
	}
}
