package life

import (
	"errors"
	"testing"
)

func TestFromMapOverrides(t *testing.T) {
	c := FromMap(map[string]string{
		"w":            "100",
		"h":            "60",
		"chunk_w":      "25",
		"chunk_h":      "20",
		"pattern":      "glider",
		"origin_x":     "4",
		"origin_y":     "5",
		"soup_density": "0.5",
	})
	if c.Width != 100 || c.Height != 60 || c.ChunkWidth != 25 || c.ChunkHeight != 20 {
		t.Fatalf("dimensions not applied: %+v", c)
	}
	if c.Pattern != "glider" || c.OriginX != 4 || c.OriginY != 5 || c.SoupDensity != 0.5 {
		t.Fatalf("seeding options not applied: %+v", c)
	}
	if err := c.Validate(); err != nil {
		t.Fatalf("Validate: %v", err)
	}
}

func TestFromMapIgnoresGarbage(t *testing.T) {
	c := FromMap(map[string]string{"w": "-3", "h": "abc", "soup_density": "2"})
	def := DefaultConfig()
	if c != def {
		t.Fatalf("garbage changed config: %+v", c)
	}
	if FromMap(nil) != def {
		t.Fatal("nil map did not yield defaults")
	}
}

func TestValidate(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*Config)
		ok     bool
	}{
		{"default", func(*Config) {}, true},
		{"zero width", func(c *Config) { c.Width = 0 }, false},
		{"negative chunk", func(c *Config) { c.ChunkHeight = -5 }, false},
		{"chunk larger than world", func(c *Config) { c.ChunkWidth = 500 }, false},
		{"chunk does not divide world", func(c *Config) { c.ChunkWidth = 75 }, false},
		{"unknown pattern", func(c *Config) { c.Pattern = "spaceship" }, false},
		{"soup", func(c *Config) { c.Pattern = SoupPattern }, true},
		{"single chunk", func(c *Config) { c.ChunkWidth, c.ChunkHeight = 250, 250 }, true},
	}
	for _, tc := range cases {
		c := DefaultConfig()
		tc.mutate(&c)
		err := c.Validate()
		if tc.ok && err != nil {
			t.Fatalf("%s: unexpected error %v", tc.name, err)
		}
		if !tc.ok && !errors.Is(err, ErrInvalidConfig) {
			t.Fatalf("%s: err=%v, want ErrInvalidConfig", tc.name, err)
		}
	}
}
