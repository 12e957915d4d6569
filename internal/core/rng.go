package core

import "math/rand/v2"

// RNG is a thin convenience wrapper around math/rand/v2 for deterministic seeding.
type RNG struct {
	r *rand.Rand
}

// NewRNG creates a deterministic RNG using the provided seed.
func NewRNG(seed int64) *RNG {
	return &RNG{r: rand.New(rand.NewPCG(uint64(seed), 0))}
}

// Bool returns a random boolean value.
func (r *RNG) Bool() bool {
	return r.r.IntN(2) == 1
}

// Chance returns true with probability p.
func (r *RNG) Chance(p float64) bool {
	if p <= 0 {
		return false
	}
	if p >= 1 {
		return true
	}
	return r.r.Float64() < p
}

// Scatter returns the coordinates of an area-sized rectangle whose cells were
// each picked with the given density, in row-major order.
func (r *RNG) Scatter(area Size, density float64) []Coord {
	var out []Coord
	for y := 0; y < area.H; y++ {
		for x := 0; x < area.W; x++ {
			if r.Chance(density) {
				out = append(out, Coord{X: x, Y: y})
			}
		}
	}
	return out
}

// Source exposes the underlying rand.Rand for advanced use.
func (r *RNG) Source() *rand.Rand { return r.r }
