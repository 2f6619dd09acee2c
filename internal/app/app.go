//go:build ebiten

package app

import (
	"errors"
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"golife/internal/core"
	"golife/internal/render"
	"golife/pkg/life"
)

// Game adapts the simulation engine to the ebiten.Game interface. All
// animation timing and input handling lives here; the engine itself
// stays synchronous and is only stepped from Update.
type Game struct {
	engine  *life.Engine
	painter *render.GridPainter
	pace    *core.FixedStep

	onColor  color.Color
	offColor color.Color

	scale    int
	paused   bool
	tickOnce bool
}

// New constructs a Game for the provided engine. Rounds advance at the
// given rounds-per-second rate regardless of the render frame rate.
func New(e *life.Engine, scale, rps int) *Game {
	w := e.World()
	return &Game{
		engine:   e,
		painter:  render.NewGridPainter(w.Cols(), w.Rows()),
		pace:     core.NewFixedStep(rps),
		onColor:  color.White,
		offColor: color.Black,
		scale:    scale,
	}
}

// Update handles input and advances the simulation until the round
// budget is spent.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		g.paused = !g.paused
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyN) {
		g.tickOnce = true
	}

	if g.engine.Done() {
		return nil
	}

	switch {
	case g.tickOnce:
		g.engine.AdvanceRound()
		g.tickOnce = false
	case !g.paused && g.pace.ShouldStep():
		g.engine.AdvanceRound()
	default:
		return nil
	}

	ebiten.SetWindowTitle(fmt.Sprintf("golife — round %d/%d, %d live",
		g.engine.Round(), g.engine.TotalRounds(), g.engine.Live()))
	return nil
}

// Draw renders the current board.
func (g *Game) Draw(screen *ebiten.Image) {
	g.painter.Blit(screen, g.engine.World().Cells(), g.onColor, g.offColor, g.scale)
}

// Layout returns the logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	w := g.engine.World()
	return w.Cols() * g.scale, w.Rows() * g.scale
}

// Run opens the animation window and drives the engine until the round
// budget is exhausted and the user closes the window, or the user quits
// early. Space pauses, N single-steps, Q or Escape quits.
func Run(e *life.Engine, scale, rps int) error {
	w := e.World()
	ebiten.SetWindowTitle("golife")
	ebiten.SetWindowSize(w.Cols()*scale, w.Rows()*scale)

	if err := ebiten.RunGame(New(e, scale, rps)); err != nil && !errors.Is(err, ebiten.Termination) {
		return err
	}
	return nil
}
