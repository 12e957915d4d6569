package core

// Size describes the dimensions of a simulation grid.
type Size struct {
	W int
	H int
}

// Contains reports whether c lies inside [0,W)x[0,H).
func (s Size) Contains(c Coord) bool {
	return c.X >= 0 && c.Y >= 0 && c.X < s.W && c.Y < s.H
}

// Coord addresses a single tile.
type Coord struct {
	X int
	Y int
}

// TileSource answers alive/dead queries. ok is false when c does not address
// an existing tile; how that absence is interpreted is up to the caller.
type TileSource interface {
	Tile(c Coord) (alive, ok bool)
}

// Sim defines the minimal contract the GUI and headless runners drive.
type Sim interface {
	TileSource
	Name() string
	Size() Size
	Reset(seed int64)
	Step()
	Alive() []Coord
	AliveCount() int
}
