// Package viewport maps a pannable chunk-sized window onto a world of tiles.
//
// A world of W x H tiles is split into chunks of chunkW x chunkH. The window
// shows exactly one chunk; its address is the chunk's column and row. A
// local offset (lx, ly) inside the window maps to world coordinate
// address*chunk + local.
package viewport

import (
	"errors"
	"fmt"

	"chunk-life/internal/core"
)

// ErrInvalidChunk is returned when the chunk size cannot tile the world.
var ErrInvalidChunk = errors.New("viewport: invalid chunk size")

// MissingTile decides what a tile the source cannot provide looks like.
type MissingTile uint8

const (
	// MissingDead shows absent tiles as empty. Used by the editor so that
	// unmarked or uncovered positions never look selected.
	MissingDead MissingTile = iota
	// MissingAlive shows absent tiles as live. Used by the play view so the
	// world edge reads as a wall.
	MissingAlive
)

func (m MissingTile) String() string {
	if m == MissingAlive {
		return "alive"
	}
	return "dead"
}

// Direction is a pan command.
type Direction uint8

const (
	Left Direction = iota
	Right
	Up
	Down
)

func (d Direction) String() string {
	switch d {
	case Left:
		return "left"
	case Right:
		return "right"
	case Up:
		return "up"
	case Down:
		return "down"
	}
	return fmt.Sprintf("Direction(%d)", uint8(d))
}

// Viewport tracks the chunk currently shown. The zero value is not usable;
// construct with New.
type Viewport struct {
	world   core.Size
	chunk   core.Size
	addr    core.Coord
	missing MissingTile
	invertY bool
}

// New validates the chunk against the world size. Both chunk dimensions must
// be positive and divide the matching world dimension.
func New(world, chunk core.Size, missing MissingTile) (*Viewport, error) {
	if world.W <= 0 || world.H <= 0 {
		return nil, fmt.Errorf("%w: world %dx%d", ErrInvalidChunk, world.W, world.H)
	}
	if chunk.W <= 0 || chunk.H <= 0 || chunk.W > world.W || chunk.H > world.H {
		return nil, fmt.Errorf("%w: chunk %dx%d for world %dx%d", ErrInvalidChunk, chunk.W, chunk.H, world.W, world.H)
	}
	if world.W%chunk.W != 0 || world.H%chunk.H != 0 {
		return nil, fmt.Errorf("%w: chunk %dx%d does not divide world %dx%d", ErrInvalidChunk, chunk.W, chunk.H, world.W, world.H)
	}
	return &Viewport{world: world, chunk: chunk, missing: missing}, nil
}

// Address returns the current chunk address.
func (v *Viewport) Address() core.Coord { return v.addr }

// ChunkSize returns the window dimensions in tiles.
func (v *Viewport) ChunkSize() core.Size { return v.chunk }

// WorldSize returns the dimensions of the world being viewed.
func (v *Viewport) WorldSize() core.Size { return v.world }

// Chunks returns how many chunks fit along each axis.
func (v *Viewport) Chunks() core.Size {
	return core.Size{W: v.world.W / v.chunk.W, H: v.world.H / v.chunk.H}
}

// Missing returns the convention used for absent tiles.
func (v *Viewport) Missing() MissingTile { return v.missing }

// SetInvertY swaps the meaning of Up and Down. By default Up moves toward
// row 0.
func (v *Viewport) SetInvertY(invert bool) { v.invertY = invert }

// InvertY reports whether Up and Down are swapped.
func (v *Viewport) InvertY() bool { return v.invertY }

// Move pans one chunk in the given direction. Moves past the edge of the
// world are clamped, never rejected.
func (v *Viewport) Move(d Direction) {
	dx, dy := 0, 0
	switch d {
	case Left:
		dx = -1
	case Right:
		dx = 1
	case Up:
		dy = -1
	case Down:
		dy = 1
	}
	if v.invertY {
		dy = -dy
	}
	v.SetAddress(core.Coord{X: v.addr.X + dx, Y: v.addr.Y + dy})
}

// SetAddress jumps to a chunk, clamping into range.
func (v *Viewport) SetAddress(addr core.Coord) {
	n := v.Chunks()
	v.addr = core.Coord{X: clamp(addr.X, 0, n.W-1), Y: clamp(addr.Y, 0, n.H-1)}
}

// Origin returns the world coordinate of the window's top-left tile.
func (v *Viewport) Origin() core.Coord {
	return core.Coord{X: v.addr.X * v.chunk.W, Y: v.addr.Y * v.chunk.H}
}

// WorldCoord maps a window-local offset to a world coordinate. The offset is
// not range checked; Tile handles offsets that land outside the world.
func (v *Viewport) WorldCoord(lx, ly int) core.Coord {
	o := v.Origin()
	return core.Coord{X: o.X + lx, Y: o.Y + ly}
}

// Tile resolves the tile at a window-local offset. Offsets outside the
// window, and tiles src does not have, follow the viewport's MissingTile
// convention.
func (v *Viewport) Tile(src core.TileSource, lx, ly int) bool {
	if lx < 0 || ly < 0 || lx >= v.chunk.W || ly >= v.chunk.H {
		return v.missing == MissingAlive
	}
	alive, ok := src.Tile(v.WorldCoord(lx, ly))
	if !ok {
		return v.missing == MissingAlive
	}
	return alive
}

// Fill writes the window into buf in row-major order, 1 for alive and 0 for
// dead, and returns the written prefix. buf is grown when too small.
func (v *Viewport) Fill(src core.TileSource, buf []uint8) []uint8 {
	total := v.chunk.W * v.chunk.H
	if cap(buf) < total {
		buf = make([]uint8, total)
	}
	buf = buf[:total]
	for ly := 0; ly < v.chunk.H; ly++ {
		row := buf[ly*v.chunk.W : (ly+1)*v.chunk.W]
		for lx := range row {
			row[lx] = 0
			if v.Tile(src, lx, ly) {
				row[lx] = 1
			}
		}
	}
	return buf
}

// Occupancy counts live coordinates per chunk. The result is indexed
// row-major by chunk address; coordinates outside the world are skipped.
func (v *Viewport) Occupancy(alive []core.Coord) []int {
	n := v.Chunks()
	counts := make([]int, n.W*n.H)
	for _, c := range alive {
		if !v.world.Contains(c) {
			continue
		}
		counts[(c.Y/v.chunk.H)*n.W+c.X/v.chunk.W]++
	}
	return counts
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
