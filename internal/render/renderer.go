//go:build ebiten

package render

import (
	"image/color"

	"chunk-life/internal/core"

	"github.com/hajimehoshi/ebiten/v2"
)

// GridPainter updates a single RGBA image based on chunk cell data.
type GridPainter struct {
	w, h int
	img  *ebiten.Image
	buf  []byte
}

// NewGridPainter allocates a painter for a window of w*h tiles.
func NewGridPainter(w, h int) *GridPainter {
	gp := &GridPainter{w: w, h: h, buf: make([]byte, 4*w*h)}
	gp.img = ebiten.NewImage(w, h)
	return gp
}

// Blit uploads binary cells into the painter image and draws it.
func (gp *GridPainter) Blit(dst *ebiten.Image, cells []uint8, on, off color.Color, scale int) {
	if len(cells) != gp.w*gp.h {
		return
	}
	fillBinaryRGBA(gp.buf, cells, on, off)
	gp.draw(dst, scale)
}

// BlitPalette uploads palette-indexed cells into the painter image and draws it.
func (gp *GridPainter) BlitPalette(dst *ebiten.Image, cells []uint8, palette []color.RGBA, scale int) {
	if len(cells) != gp.w*gp.h {
		return
	}
	fillPaletteRGBA(gp.buf, cells, palette)
	gp.draw(dst, scale)
}

func (gp *GridPainter) draw(dst *ebiten.Image, scale int) {
	gp.img.ReplacePixels(gp.buf)
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(scale), float64(scale))
	dst.DrawImage(gp.img, op)
}

// Size returns the dimensions of the underlying image.
func (gp *GridPainter) Size() (int, int) { return gp.w, gp.h }

// MinimapPainter draws one pixel per chunk, shaded by occupancy.
type MinimapPainter struct {
	chunks core.Size
	img    *ebiten.Image
	buf    []byte
}

// NewMinimapPainter allocates a painter for a chunks.W x chunks.H map.
func NewMinimapPainter(chunks core.Size) *MinimapPainter {
	return &MinimapPainter{
		chunks: chunks,
		img:    ebiten.NewImage(chunks.W, chunks.H),
		buf:    make([]byte, 4*chunks.W*chunks.H),
	}
}

// Draw paints the map with its top-left corner at (x, y), scaled so that a
// chunk covers cell x cell screen pixels.
func (mp *MinimapPainter) Draw(dst *ebiten.Image, counts []int, current core.Coord, chunkArea int, x, y float64, cell int) {
	if len(counts) != mp.chunks.W*mp.chunks.H {
		return
	}
	occupancyRGBA(mp.buf, counts, mp.chunks, current, chunkArea)
	mp.img.ReplacePixels(mp.buf)
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(cell), float64(cell))
	op.GeoM.Translate(x, y)
	dst.DrawImage(mp.img, op)
}
