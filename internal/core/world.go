package core

import (
	"cmp"
	"errors"
	"fmt"
	"slices"
)

// ErrInvalidSize is returned when a world is requested with a non-positive
// dimension.
var ErrInvalidSize = errors.New("core: invalid world size")

// World couples the dense tile grid with a sparse index of live coordinates.
// Both are only mutated through SetAlive and Reset, which keep
// index == {c | grid[c] alive} at all times.
type World struct {
	grid  *ByteGrid
	alive map[Coord]struct{}
}

// NewWorld allocates an all-dead world of w*h tiles.
func NewWorld(w, h int) (*World, error) {
	if w <= 0 || h <= 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrInvalidSize, w, h)
	}
	return &World{grid: NewByteGrid(w, h), alive: make(map[Coord]struct{})}, nil
}

// Size returns the world dimensions.
func (w *World) Size() Size { return w.grid.Size() }

// Reset marks every tile dead and empties the alive index.
func (w *World) Reset() {
	w.grid.Clear()
	clear(w.alive)
}

// SetAlive updates the tile at c and the alive index together. It returns
// false without changing anything when c is outside the world.
func (w *World) SetAlive(c Coord, alive bool) bool {
	if !w.grid.InBounds(c.X, c.Y) {
		return false
	}
	if alive {
		w.grid.set(c, 1)
		w.alive[c] = struct{}{}
		return true
	}
	w.grid.set(c, 0)
	delete(w.alive, c)
	return true
}

// Tile reports whether c is alive. ok is false for coordinates outside the
// world, which callers treat as dead unless they document otherwise.
func (w *World) Tile(c Coord) (alive, ok bool) {
	v, ok := w.grid.At(c)
	return v != 0, ok
}

// IsAlive is Tile without the absence signal.
func (w *World) IsAlive(c Coord) bool {
	v, _ := w.grid.At(c)
	return v != 0
}

// AliveCount returns the number of live tiles.
func (w *World) AliveCount() int { return len(w.alive) }

// Alive returns the live coordinates in row-major order.
func (w *World) Alive() []Coord {
	out := w.AppendAlive(make([]Coord, 0, len(w.alive)))
	slices.SortFunc(out, CompareCoords)
	return out
}

// AppendAlive appends the live coordinates to buf in no particular order.
func (w *World) AppendAlive(buf []Coord) []Coord {
	for c := range w.alive {
		buf = append(buf, c)
	}
	return buf
}

// Neighbors appends the in-bounds Moore neighbors of c to buf.
func (w *World) Neighbors(c Coord, buf []Coord) []Coord {
	return w.grid.Neighbors(c, buf)
}

// CompareCoords orders coordinates row by row.
func CompareCoords(a, b Coord) int {
	if a.Y != b.Y {
		return cmp.Compare(a.Y, b.Y)
	}
	return cmp.Compare(a.X, b.X)
}
