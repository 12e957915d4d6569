package render

import (
	"image/color"

	"chunk-life/internal/core"
	"chunk-life/internal/design"
	"chunk-life/internal/viewport"
)

// Palette indices produced by BoardIndices.
const (
	BoardEmpty uint8 = iota
	BoardMarked
	BoardFrame
	BoardCursor
)

// EditorPalette colors BoardIndices output.
var EditorPalette = []color.RGBA{
	BoardEmpty:  {R: 0, G: 0, B: 0, A: 255},
	BoardMarked: {R: 70, G: 120, B: 230, A: 255},
	BoardFrame:  {R: 90, G: 90, B: 100, A: 255},
	BoardCursor: {R: 240, G: 210, B: 60, A: 255},
}

// BoardIndices renders the editor board through v into palette indices. The
// cursor is drawn over marks, and marks over the frame.
func BoardIndices(b *design.Board, v *viewport.Viewport, buf []uint8) []uint8 {
	buf = v.Fill(b, buf)
	chunk := v.ChunkSize()
	cursor := b.Cursor()
	for ly := 0; ly < chunk.H; ly++ {
		for lx := 0; lx < chunk.W; lx++ {
			idx := ly*chunk.W + lx
			c := v.WorldCoord(lx, ly)
			switch {
			case c == cursor:
				buf[idx] = BoardCursor
			case buf[idx] != 0:
				buf[idx] = BoardMarked
			case b.Frame(c):
				buf[idx] = BoardFrame
			default:
				buf[idx] = BoardEmpty
			}
		}
	}
	return buf
}

// fillBinaryRGBA converts binary cell data (0/1) into RGBA pixels in buf.
func fillBinaryRGBA(buf []byte, cells []uint8, on, off color.Color) {
	rOn, gOn, bOn, aOn := on.RGBA()
	rOff, gOff, bOff, aOff := off.RGBA()
	for i, c := range cells {
		base := i * 4
		if c != 0 {
			buf[base+0] = uint8(rOn >> 8)
			buf[base+1] = uint8(gOn >> 8)
			buf[base+2] = uint8(bOn >> 8)
			buf[base+3] = uint8(aOn >> 8)
			continue
		}
		buf[base+0] = uint8(rOff >> 8)
		buf[base+1] = uint8(gOff >> 8)
		buf[base+2] = uint8(bOff >> 8)
		buf[base+3] = uint8(aOff >> 8)
	}
}

// fillPaletteRGBA converts cell values into RGBA pixels using a palette. When
// the palette is empty the buffer is cleared to transparent black.
func fillPaletteRGBA(buf []byte, cells []uint8, palette []color.RGBA) {
	if len(palette) == 0 {
		clear(buf[:4*len(cells)])
		return
	}

	last := len(palette) - 1
	for i, c := range cells {
		idx := int(c)
		if idx > last {
			idx = last
		}
		base := i * 4
		col := palette[idx]
		buf[base+0] = col.R
		buf[base+1] = col.G
		buf[base+2] = col.B
		buf[base+3] = col.A
	}
}

// occupancyRGBA shades one pixel per chunk by how full it is, highlighting
// the current address.
func occupancyRGBA(buf []byte, counts []int, chunks core.Size, current core.Coord, chunkArea int) {
	for i, n := range counts {
		base := i * 4
		level := 0.0
		if chunkArea > 0 {
			level = float64(n) / float64(chunkArea) * 8
			if level > 1 {
				level = 1
			}
		}
		g := uint8(40 + 200*level)
		buf[base+0] = 30
		buf[base+1] = g
		buf[base+2] = 50
		buf[base+3] = 200
		if i == current.Y*chunks.W+current.X {
			buf[base+0] = 240
			buf[base+2] = 60
			buf[base+3] = 255
		}
	}
}
