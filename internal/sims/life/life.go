package life

import (
	"fmt"

	"chunk-life/internal/core"
)

var _ core.Sim = (*Life)(nil)

// StepStats summarizes the most recent generation.
type StepStats struct {
	Births int
	Deaths int
	Alive  int
}

// Life implements Conway's Game of Life on a bounded world. Cells outside
// the world are permanently dead. Each step costs O(alive) rather than
// O(area): only live cells and their neighbors are visited.
type Life struct {
	cfg   Config
	world *core.World
	last  StepStats

	// Scratch buffers reused across steps.
	live       []core.Coord
	neighbors  []core.Coord
	candidates map[core.Coord]int
	births     []core.Coord
	deaths     []core.Coord
}

// New returns an all-dead Life world. The configured pattern is checked
// against the world here so that Reset cannot fail later.
func New(cfg Config) (*Life, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	world, err := core.NewWorld(cfg.Width, cfg.Height)
	if err != nil {
		return nil, fmt.Errorf("life: %w", err)
	}
	l := &Life{
		cfg:        cfg,
		world:      world,
		neighbors:  make([]core.Coord, 0, 8),
		candidates: make(map[core.Coord]int),
	}
	if _, err := l.seedCells(0); err != nil {
		return nil, err
	}
	return l, nil
}

// Name returns the simulation identifier.
func (l *Life) Name() string { return "life" }

// Size returns the world dimensions.
func (l *Life) Size() core.Size { return l.world.Size() }

// Config returns the configuration the world was built with.
func (l *Life) Config() Config { return l.cfg }

// Tile reports whether c is alive; ok is false outside the world.
func (l *Life) Tile(c core.Coord) (alive, ok bool) { return l.world.Tile(c) }

// Alive returns the live coordinates in row-major order.
func (l *Life) Alive() []core.Coord { return l.world.Alive() }

// AliveCount returns the number of live cells.
func (l *Life) AliveCount() int { return l.world.AliveCount() }

// LastStep reports what the most recent Step changed.
func (l *Life) LastStep() StepStats { return l.last }

// SetAlive sets a single cell. It returns false for coordinates outside the
// world.
func (l *Life) SetAlive(c core.Coord, alive bool) bool {
	return l.world.SetAlive(c, alive)
}

// Clear kills every cell.
func (l *Life) Clear() {
	l.world.Reset()
	l.last = StepStats{}
}

// Reset clears the world and inserts the configured pattern. The seed only
// matters for the random soup.
func (l *Life) Reset(seed int64) {
	cells, _ := l.seedCells(seed)
	l.Clear()
	for _, c := range cells {
		l.world.SetAlive(c, true)
	}
	l.last.Alive = l.world.AliveCount()
}

// Seed clears the world and marks cells alive. Every coordinate is checked
// first; on error the world is left untouched.
func (l *Life) Seed(cells []core.Coord) error {
	size := l.world.Size()
	for _, c := range cells {
		if !size.Contains(c) {
			return fmt.Errorf("%w: seed (%d,%d) outside %dx%d world", ErrPatternOutOfBounds, c.X, c.Y, size.W, size.H)
		}
	}
	l.Clear()
	for _, c := range cells {
		l.world.SetAlive(c, true)
	}
	l.last.Alive = l.world.AliveCount()
	return nil
}

// Step advances the simulation by one generation.
func (l *Life) Step() {
	l.census()
	for _, c := range l.births {
		l.world.SetAlive(c, true)
	}
	for _, c := range l.deaths {
		l.world.SetAlive(c, false)
	}
	l.last = StepStats{
		Births: len(l.births),
		Deaths: len(l.deaths),
		Alive:  l.world.AliveCount(),
	}
}

// census fills l.births and l.deaths from the current generation without
// mutating the world. Every live cell inspects each of its neighbors once:
// live neighbors feed its own count, dead neighbors get one tally in
// l.candidates. A dead cell is therefore tallied by every live neighbor it
// has, so its tally is exact after this single pass.
func (l *Life) census() {
	l.live = l.world.AppendAlive(l.live[:0])
	clear(l.candidates)
	l.births = l.births[:0]
	l.deaths = l.deaths[:0]

	for _, c := range l.live {
		n := 0
		l.neighbors = l.world.Neighbors(c, l.neighbors[:0])
		for _, nb := range l.neighbors {
			if l.world.IsAlive(nb) {
				n++
				continue
			}
			l.candidates[nb]++
		}
		if n < 2 || n > 3 {
			l.deaths = append(l.deaths, c)
		}
	}
	for c, n := range l.candidates {
		if n == 3 {
			l.births = append(l.births, c)
		}
	}
}

// seedCells resolves the configured pattern into world coordinates.
func (l *Life) seedCells(seed int64) ([]core.Coord, error) {
	chunk := core.Size{W: l.cfg.ChunkWidth, H: l.cfg.ChunkHeight}
	if l.cfg.Pattern == SoupPattern {
		origin := core.Coord{X: max(l.cfg.OriginX, 0), Y: max(l.cfg.OriginY, 0)}
		soup := Pattern{Name: SoupPattern, Size: chunk}
		soup.Cells = core.NewRNG(seed).Scatter(chunk, l.cfg.SoupDensity)
		return l.fit(soup, origin)
	}
	p, ok := LookupPattern(l.cfg.Pattern)
	if !ok {
		return nil, fmt.Errorf("%w: unknown pattern %q", ErrInvalidConfig, l.cfg.Pattern)
	}
	origin := core.Coord{X: l.cfg.OriginX, Y: l.cfg.OriginY}
	if origin.X < 0 {
		origin.X = max((chunk.W-p.Size.W)/2, 0)
	}
	if origin.Y < 0 {
		origin.Y = max((chunk.H-p.Size.H)/2, 0)
	}
	return l.fit(p, origin)
}

func (l *Life) fit(p Pattern, origin core.Coord) ([]core.Coord, error) {
	size := l.world.Size()
	far := core.Coord{X: origin.X + p.Size.W - 1, Y: origin.Y + p.Size.H - 1}
	if !size.Contains(origin) || !size.Contains(far) {
		return nil, fmt.Errorf("%w: %s (%dx%d) at (%d,%d) in %dx%d world", ErrPatternOutOfBounds, p.Name, p.Size.W, p.Size.H, origin.X, origin.Y, size.W, size.H)
	}
	return p.Translate(origin), nil
}
