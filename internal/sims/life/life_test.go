package life

import (
	"errors"
	"slices"
	"testing"

	"chunk-life/internal/core"
)

func newTestLife(t *testing.T, w, h int) *Life {
	t.Helper()
	cfg := DefaultConfig()
	cfg.Width, cfg.Height = w, h
	cfg.ChunkWidth, cfg.ChunkHeight = w, h
	cfg.Pattern = "block"
	cfg.OriginX, cfg.OriginY = 0, 0
	life, err := New(cfg)
	if err != nil {
		t.Fatalf("New(%dx%d): %v", w, h, err)
	}
	return life
}

func seed(t *testing.T, life *Life, cells ...core.Coord) {
	t.Helper()
	if err := life.Seed(cells); err != nil {
		t.Fatalf("Seed(%v): %v", cells, err)
	}
}

func expectAlive(t *testing.T, life *Life, want ...core.Coord) {
	t.Helper()
	want = slices.Clone(want)
	slices.SortFunc(want, core.CompareCoords)
	if got := life.Alive(); !slices.Equal(got, want) {
		t.Fatalf("alive=%v, expected %v", got, want)
	}
	size := life.Size()
	count := 0
	for y := 0; y < size.H; y++ {
		for x := 0; x < size.W; x++ {
			if alive, _ := life.Tile(core.Coord{X: x, Y: y}); alive {
				count++
			}
		}
	}
	if count != life.AliveCount() {
		t.Fatalf("grid holds %d live cells, index holds %d", count, life.AliveCount())
	}
}

func TestEmptyWorldStaysEmpty(t *testing.T) {
	life := newTestLife(t, 8, 8)
	life.Clear()
	for i := 0; i < 3; i++ {
		life.Step()
		if life.AliveCount() != 0 {
			t.Fatalf("step %d produced %d live cells from nothing", i, life.AliveCount())
		}
	}
}

func TestBlinkerOscillation(t *testing.T) {
	life := newTestLife(t, 5, 5)
	seed(t, life, core.Coord{2, 1}, core.Coord{2, 2}, core.Coord{2, 3})

	life.Step()
	expectAlive(t, life, core.Coord{1, 2}, core.Coord{2, 2}, core.Coord{3, 2})

	life.Step()
	expectAlive(t, life, core.Coord{2, 1}, core.Coord{2, 2}, core.Coord{2, 3})

	for i := 0; i < 10; i++ {
		life.Step()
		if life.AliveCount() != 3 {
			t.Fatalf("generation %d has %d live cells, want 3", i+3, life.AliveCount())
		}
	}
}

func TestBlockIsStill(t *testing.T) {
	life := newTestLife(t, 4, 4)
	block := []core.Coord{{1, 1}, {2, 1}, {1, 2}, {2, 2}}
	seed(t, life, block...)
	life.Step()
	expectAlive(t, life, block...)
	if stats := life.LastStep(); stats.Births != 0 || stats.Deaths != 0 || stats.Alive != 4 {
		t.Fatalf("block step stats %+v", stats)
	}
}

func TestGliderTranslates(t *testing.T) {
	life := newTestLife(t, 10, 10)
	glider, _ := LookupPattern("glider")
	seed(t, life, glider.Translate(core.Coord{1, 1})...)
	for i := 0; i < 4; i++ {
		life.Step()
	}
	expectAlive(t, life, glider.Translate(core.Coord{2, 2})...)
}

func TestCornerCellUsesInBoundsNeighbors(t *testing.T) {
	life := newTestLife(t, 2, 2)
	seed(t, life, core.Coord{0, 0})
	life.Step()
	if life.AliveCount() != 0 {
		t.Fatalf("lonely corner cell survived")
	}

	life = newTestLife(t, 4, 4)
	seed(t, life, core.Coord{0, 0}, core.Coord{1, 0}, core.Coord{0, 1})
	life.Step()
	expectAlive(t, life, core.Coord{0, 0}, core.Coord{1, 0}, core.Coord{0, 1}, core.Coord{1, 1})
}

func TestFarEdgesDoNotWrap(t *testing.T) {
	life := newTestLife(t, 5, 5)
	// A horizontal blinker on the bottom row would spill below the world.
	seed(t, life, core.Coord{1, 4}, core.Coord{2, 4}, core.Coord{3, 4})
	life.Step()
	expectAlive(t, life, core.Coord{2, 3}, core.Coord{2, 4})
	if alive, _ := life.Tile(core.Coord{2, 0}); alive {
		t.Fatal("birth wrapped to the opposite edge")
	}
}

func TestRuleThresholds(t *testing.T) {
	center := core.Coord{2, 2}
	cases := []struct {
		name   string
		cells  []core.Coord
		target core.Coord
		alive  bool
	}{
		{"dead with 3 is born", []core.Coord{{0, 0}, {1, 0}, {2, 0}}, core.Coord{1, 1}, true},
		{"dead with 2 stays dead", []core.Coord{{1, 0}, {3, 0}}, core.Coord{2, 1}, false},
		{"dead with 4 stays dead", []core.Coord{{1, 1}, {3, 1}, {1, 3}, {3, 3}}, center, false},
		{"live with 1 dies", []core.Coord{center, {2, 1}}, center, false},
		{"live with 4 dies", []core.Coord{center, {1, 1}, {3, 1}, {1, 3}, {3, 3}}, center, false},
		{"live with 2 survives", []core.Coord{center, {1, 1}, {3, 3}}, center, true},
		{"live with 3 survives", []core.Coord{center, {1, 1}, {3, 1}, {2, 3}}, center, true},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			life := newTestLife(t, 5, 5)
			seed(t, life, tc.cells...)
			life.Step()
			alive, ok := life.Tile(tc.target)
			if !ok {
				t.Fatalf("target %v outside the world", tc.target)
			}
			if alive != tc.alive {
				t.Fatalf("cell %v alive=%v, expected %v", tc.target, alive, tc.alive)
			}
		})
	}
}

func TestCensusDoesNotMutate(t *testing.T) {
	life := newTestLife(t, 5, 5)
	seed(t, life, core.Coord{2, 1}, core.Coord{2, 2}, core.Coord{2, 3})
	before := life.Alive()
	life.census()
	if !slices.Equal(before, life.Alive()) {
		t.Fatal("census changed the world")
	}
	if len(life.births) != 2 || len(life.deaths) != 2 {
		t.Fatalf("census births=%v deaths=%v", life.births, life.deaths)
	}
}

func TestReseedRoundTrip(t *testing.T) {
	life := newTestLife(t, 20, 20)
	clover, _ := LookupPattern("cloverleaf")
	seed(t, life, clover.Translate(core.Coord{3, 2})...)
	for i := 0; i < 5; i++ {
		life.Step()
	}
	captured := life.Alive()

	life.Clear()
	if life.AliveCount() != 0 {
		t.Fatal("Clear left live cells")
	}
	seed(t, life, captured...)
	expectAlive(t, life, captured...)
}

func TestSeedRejectsOutOfRangeWithoutMutating(t *testing.T) {
	life := newTestLife(t, 5, 5)
	seed(t, life, core.Coord{1, 1})
	err := life.Seed([]core.Coord{{0, 0}, {5, 0}})
	if !errors.Is(err, ErrPatternOutOfBounds) {
		t.Fatalf("Seed err=%v, want ErrPatternOutOfBounds", err)
	}
	expectAlive(t, life, core.Coord{1, 1})
}

func TestResetSeedsConfiguredPattern(t *testing.T) {
	cfg := DefaultConfig()
	life, err := New(cfg)
	if err != nil {
		t.Fatal(err)
	}
	life.Reset(0)
	clover, _ := LookupPattern("cloverleaf")
	if life.AliveCount() != len(clover.Cells) {
		t.Fatalf("Reset seeded %d cells, want %d", life.AliveCount(), len(clover.Cells))
	}
	origin := core.Coord{X: (cfg.ChunkWidth - clover.Size.W) / 2, Y: (cfg.ChunkHeight - clover.Size.H) / 2}
	expectAlive(t, life, clover.Translate(origin)...)
}

func TestResetSoupDeterministic(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Width, cfg.Height = 40, 40
	cfg.ChunkWidth, cfg.ChunkHeight = 20, 20
	cfg.Pattern = SoupPattern
	life, err := New(cfg)
	if err != nil {
		t.Fatal(err)
	}
	life.Reset(7)
	first := life.Alive()
	if len(first) == 0 {
		t.Fatal("soup seeded nothing")
	}
	for _, c := range first {
		if c.X >= cfg.ChunkWidth || c.Y >= cfg.ChunkHeight {
			t.Fatalf("soup cell %v outside the first chunk", c)
		}
	}
	life.Step()
	life.Reset(7)
	if !slices.Equal(first, life.Alive()) {
		t.Fatal("Reset with the same seed produced a different soup")
	}
}

func TestNewRejectsPatternThatDoesNotFit(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Width, cfg.Height = 8, 8
	cfg.ChunkWidth, cfg.ChunkHeight = 4, 4
	cfg.Pattern = "cloverleaf"
	if _, err := New(cfg); !errors.Is(err, ErrPatternOutOfBounds) {
		t.Fatalf("New err=%v, want ErrPatternOutOfBounds", err)
	}
}

func BenchmarkStepCloverleaf(b *testing.B) {
	cfg := DefaultConfig()
	cfg.Pattern = "chaos-cloverleaf"
	life, err := New(cfg)
	if err != nil {
		b.Fatal(err)
	}
	life.Reset(0)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		life.Step()
	}
}
