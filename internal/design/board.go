// Package design holds the editor board used to draw a seed before play.
package design

import (
	"errors"
	"fmt"
	"slices"

	"chunk-life/internal/core"
	"chunk-life/internal/viewport"
)

// ErrBoardTooSmall is returned for boards without an interior to move in.
var ErrBoardTooSmall = errors.New("design: board too small")

// Board is a marking surface with a cursor. The outermost ring of tiles is a
// frame: the cursor never enters it, so marks always sit at least one tile
// away from the board edge.
type Board struct {
	size   core.Size
	cursor core.Coord
	marked map[core.Coord]struct{}
}

// NewBoard returns an empty board with the cursor at (1,1). Each side needs
// at least three tiles.
func NewBoard(size core.Size) (*Board, error) {
	if size.W < 3 || size.H < 3 {
		return nil, fmt.Errorf("%w: %dx%d", ErrBoardTooSmall, size.W, size.H)
	}
	return &Board{
		size:   size,
		cursor: core.Coord{X: 1, Y: 1},
		marked: make(map[core.Coord]struct{}),
	}, nil
}

// Size returns the board dimensions.
func (b *Board) Size() core.Size { return b.size }

// Cursor returns the cursor position.
func (b *Board) Cursor() core.Coord { return b.cursor }

// Move shifts the cursor one tile. A move onto the frame is ignored.
func (b *Board) Move(d viewport.Direction) {
	next := b.cursor
	switch d {
	case viewport.Left:
		next.X--
	case viewport.Right:
		next.X++
	case viewport.Up:
		next.Y--
	case viewport.Down:
		next.Y++
	}
	if !b.Interior(next) {
		return
	}
	b.cursor = next
}

// Interior reports whether c is inside the frame.
func (b *Board) Interior(c core.Coord) bool {
	return c.X > 0 && c.Y > 0 && c.X < b.size.W-1 && c.Y < b.size.H-1
}

// Frame reports whether c is on the board's outer ring.
func (b *Board) Frame(c core.Coord) bool {
	return b.size.Contains(c) && !b.Interior(c)
}

// Toggle flips the mark under the cursor and returns the new state.
func (b *Board) Toggle() bool {
	if _, ok := b.marked[b.cursor]; ok {
		delete(b.marked, b.cursor)
		return false
	}
	b.marked[b.cursor] = struct{}{}
	return true
}

// Mark sets or clears a mark directly. Positions outside the interior are
// rejected.
func (b *Board) Mark(c core.Coord, on bool) bool {
	if !b.Interior(c) {
		return false
	}
	if on {
		b.marked[c] = struct{}{}
	} else {
		delete(b.marked, c)
	}
	return true
}

// Clear removes every mark.
func (b *Board) Clear() { clear(b.marked) }

// MarkCount returns the number of marked tiles.
func (b *Board) MarkCount() int { return len(b.marked) }

// Marks returns the marked positions in row-major order.
func (b *Board) Marks() []core.Coord {
	out := make([]core.Coord, 0, len(b.marked))
	for c := range b.marked {
		out = append(out, c)
	}
	slices.SortFunc(out, core.CompareCoords)
	return out
}

// Tile implements core.TileSource: marked tiles are alive.
func (b *Board) Tile(c core.Coord) (alive, ok bool) {
	if !b.size.Contains(c) {
		return false, false
	}
	_, marked := b.marked[c]
	return marked, true
}
