package life

import (
	"errors"
	"fmt"
	"strconv"
)

// ErrInvalidConfig is returned by Validate and New for unusable dimensions.
var ErrInvalidConfig = errors.New("life: invalid config")

// Config controls the world dimensions and the pattern Reset seeds.
type Config struct {
	Width  int
	Height int

	ChunkWidth  int
	ChunkHeight int

	// Pattern names an entry of Patterns() or "soup".
	Pattern string
	// OriginX and OriginY place the pattern's top-left corner. Negative
	// values center it in the first chunk.
	OriginX int
	OriginY int
	// SoupDensity is the fill probability of the random soup.
	SoupDensity float64
}

// DefaultConfig returns the standard configuration.
func DefaultConfig() Config {
	return Config{
		Width:       250,
		Height:      250,
		ChunkWidth:  125,
		ChunkHeight: 50,
		Pattern:     "cloverleaf",
		OriginX:     -1,
		OriginY:     -1,
		SoupDensity: 0.3,
	}
}

// FromMap populates a Config from a string map.
func FromMap(cfg map[string]string) Config {
	c := DefaultConfig()
	if cfg == nil {
		return c
	}
	if v, ok := cfg["w"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Width = parsed
		}
	}
	if v, ok := cfg["h"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Height = parsed
		}
	}
	if v, ok := cfg["chunk_w"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.ChunkWidth = parsed
		}
	}
	if v, ok := cfg["chunk_h"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.ChunkHeight = parsed
		}
	}
	if v, ok := cfg["pattern"]; ok && v != "" {
		c.Pattern = v
	}
	if v, ok := cfg["origin_x"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil {
			c.OriginX = parsed
		}
	}
	if v, ok := cfg["origin_y"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil {
			c.OriginY = parsed
		}
	}
	if v, ok := cfg["soup_density"]; ok {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil && parsed >= 0 && parsed <= 1 {
			c.SoupDensity = parsed
		}
	}
	return c
}

// Validate checks that the world is non-empty and that the chunk size tiles
// it exactly.
func (c Config) Validate() error {
	if c.Width <= 0 || c.Height <= 0 {
		return fmt.Errorf("%w: world %dx%d", ErrInvalidConfig, c.Width, c.Height)
	}
	if c.ChunkWidth <= 0 || c.ChunkHeight <= 0 {
		return fmt.Errorf("%w: chunk %dx%d", ErrInvalidConfig, c.ChunkWidth, c.ChunkHeight)
	}
	if c.ChunkWidth > c.Width || c.ChunkHeight > c.Height {
		return fmt.Errorf("%w: chunk %dx%d larger than world %dx%d", ErrInvalidConfig, c.ChunkWidth, c.ChunkHeight, c.Width, c.Height)
	}
	if c.Width%c.ChunkWidth != 0 || c.Height%c.ChunkHeight != 0 {
		return fmt.Errorf("%w: chunk %dx%d does not divide world %dx%d", ErrInvalidConfig, c.ChunkWidth, c.ChunkHeight, c.Width, c.Height)
	}
	if c.Pattern != SoupPattern {
		if _, ok := LookupPattern(c.Pattern); !ok {
			return fmt.Errorf("%w: unknown pattern %q", ErrInvalidConfig, c.Pattern)
		}
	}
	return nil
}
