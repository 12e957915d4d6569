package core

// ByteGrid stores a 2D grid of byte-sized cell values in row-major order.
// The backing slice stays private; World is the only writer.
type ByteGrid struct {
	W, H int
	data []uint8
}

// NewByteGrid allocates a grid with the given dimensions.
func NewByteGrid(w, h int) *ByteGrid {
	if w <= 0 {
		w = 1
	}
	if h <= 0 {
		h = 1
	}
	return &ByteGrid{W: w, H: h, data: make([]uint8, w*h)}
}

// Size returns the grid dimensions.
func (g *ByteGrid) Size() Size { return Size{W: g.W, H: g.H} }

// Index returns the linear slice index for coordinates (x, y).
func (g *ByteGrid) Index(x, y int) int { return y*g.W + x }

// InBounds reports whether (x, y) addresses a cell of the grid.
func (g *ByteGrid) InBounds(x, y int) bool {
	return x >= 0 && y >= 0 && x < g.W && y < g.H
}

// At returns the value stored at c. ok is false outside the grid.
func (g *ByteGrid) At(c Coord) (v uint8, ok bool) {
	if !g.InBounds(c.X, c.Y) {
		return 0, false
	}
	return g.data[g.Index(c.X, c.Y)], true
}

func (g *ByteGrid) set(c Coord, v uint8) {
	g.data[g.Index(c.X, c.Y)] = v
}

// Neighbors appends the in-bounds Moore neighbors of c to buf and returns it.
// The grid does not wrap: corner cells get 3 neighbors, edge cells 5.
func (g *ByteGrid) Neighbors(c Coord, buf []Coord) []Coord {
	x, y := c.X, c.Y
	west := x > 0
	east := x+1 < g.W
	if y > 0 {
		if west {
			buf = append(buf, Coord{x - 1, y - 1})
		}
		buf = append(buf, Coord{x, y - 1})
		if east {
			buf = append(buf, Coord{x + 1, y - 1})
		}
	}
	if west {
		buf = append(buf, Coord{x - 1, y})
	}
	if east {
		buf = append(buf, Coord{x + 1, y})
	}
	if y+1 < g.H {
		if west {
			buf = append(buf, Coord{x - 1, y + 1})
		}
		buf = append(buf, Coord{x, y + 1})
		if east {
			buf = append(buf, Coord{x + 1, y + 1})
		}
	}
	return buf
}

// Clear fills the grid with zeros.
func (g *ByteGrid) Clear() {
	for i := range g.data {
		g.data[i] = 0
	}
}
