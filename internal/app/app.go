//go:build ebiten

package app

import (
	"image/color"

	"chunk-life/internal/render"
	"chunk-life/internal/ui"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

var (
	designKeys = map[ebiten.Key]Command{
		ebiten.KeyW:     CmdUp,
		ebiten.KeyA:     CmdLeft,
		ebiten.KeyS:     CmdDown,
		ebiten.KeyD:     CmdRight,
		ebiten.KeyEnter: CmdToggle,
		ebiten.KeyC:     CmdClear,
		ebiten.KeyP:     CmdPlay,
	}
	playKeys = map[ebiten.Key]Command{
		ebiten.KeyW:     CmdUp,
		ebiten.KeyA:     CmdLeft,
		ebiten.KeyS:     CmdDown,
		ebiten.KeyD:     CmdRight,
		ebiten.KeyE:     CmdEdit,
		ebiten.KeyR:     CmdReset,
		ebiten.KeySpace: CmdPause,
		ebiten.KeyN:     CmdStepOnce,
	}
)

// Game adapts a Session to the ebiten.Game interface.
type Game struct {
	session *Session
	painter *render.GridPainter
	hud     *ui.HUD
	overlay *ui.Overlay
	cells   []uint8

	onColor  color.Color
	offColor color.Color

	scale int
}

// New constructs a Game for the provided session.
func New(s *Session, scale, hudWidth int) *Game {
	chunk := s.PlayView().ChunkSize()
	return &Game{
		session:  s,
		painter:  render.NewGridPainter(chunk.W, chunk.H),
		hud:      ui.NewHUD(s, hudWidth),
		overlay:  ui.NewOverlay(s.PlayView(), s.Life()),
		onColor:  color.RGBA{R: 240, G: 200, B: 60, A: 255},
		offColor: color.Black,
		scale:    scale,
	}
}

// Update handles per-frame input and advances the simulation.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	keys := designKeys
	if g.session.Mode() == ModePlay {
		keys = playKeys
	}
	for key, cmd := range keys {
		if !inpututil.IsKeyJustPressed(key) {
			continue
		}
		if err := g.session.Handle(cmd); err != nil {
			return err
		}
		break
	}

	g.overlay.Update()
	g.hud.Update(g.viewWidth())
	g.session.Tick()
	return nil
}

// Draw renders the active surface, the overlay and the HUD.
func (g *Game) Draw(screen *ebiten.Image) {
	play := g.session.Mode() == ModePlay
	if play {
		g.cells = g.session.PlayView().Fill(g.session.Life(), g.cells)
		g.painter.Blit(screen, g.cells, g.onColor, g.offColor, g.scale)
	} else {
		g.cells = render.BoardIndices(g.session.Board(), g.session.EditView(), g.cells)
		g.painter.BlitPalette(screen, g.cells, render.EditorPalette, g.scale)
	}
	g.overlay.Draw(screen, play, g.viewWidth())
	g.hud.Draw(screen, g.viewWidth())
}

// Layout returns the logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	chunk := g.session.PlayView().ChunkSize()
	return g.viewWidth() + g.hud.Width(), chunk.H * g.scale
}

func (g *Game) viewWidth() int {
	return g.session.PlayView().ChunkSize().W * g.scale
}
