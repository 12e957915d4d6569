package life

import (
	"errors"
	"fmt"
	"slices"
	"strings"

	"chunk-life/internal/core"
)

// SoupPattern names the random fill used instead of a fixed pattern.
const SoupPattern = "soup"

// ErrPatternOutOfBounds is returned when a pattern does not fit the world at
// the requested origin.
var ErrPatternOutOfBounds = errors.New("life: pattern out of bounds")

// Pattern is a set of live cells relative to its top-left corner.
type Pattern struct {
	Name  string
	Cells []core.Coord
	Size  core.Size
}

// parsePattern reads rows where 'O' marks a live cell and anything else is
// dead.
func parsePattern(name string, rows ...string) Pattern {
	p := Pattern{Name: name, Size: core.Size{H: len(rows)}}
	for y, row := range rows {
		if len(row) > p.Size.W {
			p.Size.W = len(row)
		}
		for x, ch := range row {
			if ch == 'O' {
				p.Cells = append(p.Cells, core.Coord{X: x, Y: y})
			}
		}
	}
	return p
}

var patterns = []Pattern{
	parsePattern("blinker",
		"O",
		"O",
		"O",
	),
	parsePattern("blinker-horizontal",
		"OOO",
	),
	parsePattern("block",
		"OO",
		"OO",
	),
	parsePattern("glider",
		".O.",
		"..O",
		"OOO",
	),
	parsePattern("blinker-box",
		"OOOOO",
		"O...O",
		".OOO.",
	),
	parsePattern("cloverleaf",
		"...O.O...",
		"..O..OOO.",
		"..O.....O",
		".OO...O.O",
		".O....OO.",
		".O.......",
		"O...O....",
		"O........",
		"....O....",
		".........",
		".OO.O....",
		"O.O.....O",
		"O...O...O",
		".OOO.OOO.",
		"...O.O...",
	),
	parsePattern("chaos-cloverleaf",
		"...O.O....",
		"..O..OOO..",
		"..O.....O.",
		".OO...O.O.",
		".O....OO.O",
		".O........",
		"O...O.....",
		"O.....O...",
		"....O.OO..",
		"..........",
		".OO.O.....",
		"O.O.....O.",
		"O...O...O.",
		".OOO.OOO..",
		"...O.O....",
	),
}

// Patterns lists the built-in seed patterns.
func Patterns() []Pattern {
	return slices.Clone(patterns)
}

// PatternNames lists the names accepted by LookupPattern plus SoupPattern.
func PatternNames() []string {
	names := make([]string, 0, len(patterns)+1)
	for _, p := range patterns {
		names = append(names, p.Name)
	}
	return append(names, SoupPattern)
}

// LookupPattern finds a built-in pattern by name, ignoring case.
func LookupPattern(name string) (Pattern, bool) {
	for _, p := range patterns {
		if strings.EqualFold(p.Name, name) {
			return p, true
		}
	}
	return Pattern{}, false
}

// Translate returns the pattern's cells shifted to origin.
func (p Pattern) Translate(origin core.Coord) []core.Coord {
	out := make([]core.Coord, len(p.Cells))
	for i, c := range p.Cells {
		out[i] = core.Coord{X: origin.X + c.X, Y: origin.Y + c.Y}
	}
	return out
}

// InsertPattern marks the pattern alive with its top-left corner at origin.
// Nothing is written unless every cell fits inside the world.
func InsertPattern(w *core.World, origin core.Coord, p Pattern) error {
	cells := p.Translate(origin)
	size := w.Size()
	for _, c := range cells {
		if !size.Contains(c) {
			return fmt.Errorf("%w: %s at (%d,%d) in %dx%d world", ErrPatternOutOfBounds, p.Name, origin.X, origin.Y, size.W, size.H)
		}
	}
	for _, c := range cells {
		w.SetAlive(c, true)
	}
	return nil
}
