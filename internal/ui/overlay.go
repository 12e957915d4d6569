//go:build ebiten

package ui

import (
	"image/color"

	"chunk-life/internal/core"
	"chunk-life/internal/render"
	"chunk-life/internal/viewport"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"
)

type aliveProvider interface {
	Alive() []core.Coord
}

// Overlay draws the key help and a chunk locator on top of the chunk view.
type Overlay struct {
	view    *viewport.Viewport
	source  aliveProvider
	minimap *render.MinimapPainter

	showHelp    bool
	showMinimap bool
	pixel       *ebiten.Image
}

// NewOverlay constructs an overlay for the play viewport.
func NewOverlay(view *viewport.Viewport, source aliveProvider) *Overlay {
	o := &Overlay{
		view:        view,
		source:      source,
		minimap:     render.NewMinimapPainter(view.Chunks()),
		showHelp:    true,
		showMinimap: true,
	}
	o.pixel = ebiten.NewImage(1, 1)
	o.pixel.Fill(color.White)
	return o
}

// Update toggles overlay layers.
func (o *Overlay) Update() {
	if inpututil.IsKeyJustPressed(ebiten.KeyH) {
		o.showHelp = !o.showHelp
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyM) {
		o.showMinimap = !o.showMinimap
	}
}

// Draw renders the enabled layers onto a screen whose chunk view is width
// pixels wide.
func (o *Overlay) Draw(screen *ebiten.Image, play bool, width int) {
	if o.showHelp {
		o.drawHelp(screen, HelpLines(play))
	}
	if play && o.showMinimap {
		chunks := o.view.Chunks()
		if chunks.W*chunks.H <= 1 {
			return
		}
		const cell = 8
		chunk := o.view.ChunkSize()
		counts := o.view.Occupancy(o.source.Alive())
		x := float64(width - chunks.W*cell - 6)
		o.drawBox(screen, x-2, 4, float64(chunks.W*cell+4), float64(chunks.H*cell+4), color.RGBA{A: 180})
		o.minimap.Draw(screen, counts, o.view.Address(), chunk.W*chunk.H, x, 6, cell)
	}
}

func (o *Overlay) drawHelp(screen *ebiten.Image, lines []string) {
	face := basicfont.Face7x13
	height := float64(len(lines)*14 + 8)
	o.drawBox(screen, 4, 4, 170, height, color.RGBA{A: 170})
	for i, line := range lines {
		text.Draw(screen, line, face, 10, 18+i*14, color.RGBA{R: 220, G: 220, B: 230, A: 255})
	}
}

func (o *Overlay) drawBox(screen *ebiten.Image, x, y, w, h float64, col color.RGBA) {
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(w, h)
	op.GeoM.Translate(x, y)
	op.ColorM.Scale(float64(col.R)/255.0, float64(col.G)/255.0, float64(col.B)/255.0, float64(col.A)/255.0)
	screen.DrawImage(o.pixel, op)
}
