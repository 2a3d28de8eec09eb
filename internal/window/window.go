package window

import (
	"errors"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text/v2"

	"github.com/iburimskiy/countdown/internal/config"
	"github.com/iburimskiy/countdown/internal/display"
	"github.com/iburimskiy/countdown/internal/game"
)

// Window adapts a game.Controller to ebiten's Update/Draw/Layout cycle.
// ebiten runs Update at a fixed TPS, so it paces the frames itself.
type Window struct {
	ctrl *game.Controller
	font *Font

	width, height int
	pending       []game.Event
}

func New(ctrl *game.Controller, font *Font) *Window {
	return &Window{ctrl: ctrl, font: font}
}

// Run opens the window and blocks until the user quits.
func Run(ctrl *game.Controller, font *Font) error {
	ebiten.SetWindowSize(config.WindowWidth, config.WindowHeight)
	ebiten.SetWindowTitle(config.WindowTitle)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetWindowClosingHandled(true)
	ebiten.SetTPS(config.FrameRate)

	if err := ebiten.RunGame(New(ctrl, font)); err != nil && !errors.Is(err, ebiten.Termination) {
		return err
	}
	return nil
}

// PollEvents returns the resize events seen by Layout plus this tick's input.
func (w *Window) PollEvents() []game.Event {
	events := w.pending
	w.pending = nil
	if ebiten.IsWindowBeingClosed() {
		events = append(events, game.Quit())
	}
	return append(events, keyEvents(inpututil.IsKeyJustPressed)...)
}

func (w *Window) Update() error {
	if err := w.ctrl.Update(w.PollEvents()); err != nil {
		if errors.Is(err, game.ErrQuit) {
			return ebiten.Termination
		}
		return err
	}
	return nil
}

func (w *Window) Draw(screen *ebiten.Image) {
	w.ctrl.Render(&canvas{screen: screen, font: w.font})
}

// Layout keeps the logical screen equal to the window so the text is drawn
// at native resolution, and reports size changes as resize events.
func (w *Window) Layout(outsideWidth, outsideHeight int) (int, int) {
	if outsideWidth != w.width || outsideHeight != w.height {
		w.width, w.height = outsideWidth, outsideHeight
		w.pending = append(w.pending, game.Resize(outsideWidth, outsideHeight))
	}
	return outsideWidth, outsideHeight
}

func keyEvents(justPressed func(ebiten.Key) bool) []game.Event {
	var events []game.Event
	if justPressed(ebiten.KeyEscape) {
		events = append(events, game.KeyPress(game.KeyEscape))
	}
	if justPressed(ebiten.KeySpace) {
		events = append(events, game.KeyPress(game.KeySpace))
	}
	return events
}

// Attention brings the window back to the user when the countdown ends.
type Attention struct{}

func (Attention) FlashWindow() {
	if ebiten.IsWindowMinimized() {
		ebiten.RestoreWindow()
	}
	ebiten.SetWindowTitle(config.FinishedTitle)
}

type canvas struct {
	screen *ebiten.Image
	font   *Font
}

func (c *canvas) Clear(bg color.Color) {
	c.screen.Fill(bg)
}

// DrawText stretches s to fill r.
func (c *canvas) DrawText(s string, r display.Rect, col color.Color) {
	w, h := c.font.Measure(s)
	sx, sy, ok := fit(r, w, h)
	if !ok {
		return
	}
	op := &text.DrawOptions{}
	op.GeoM.Scale(sx, sy)
	op.GeoM.Translate(float64(r.X), float64(r.Y))
	op.ColorScale.ScaleWithColor(col)
	text.Draw(c.screen, s, c.font.face, op)
}

// Present is a no-op: ebiten presents the screen after Draw returns.
func (c *canvas) Present() {}

func fit(r display.Rect, w, h float64) (sx, sy float64, ok bool) {
	if r.Width <= 0 || r.Height <= 0 || w <= 0 || h <= 0 {
		return 0, 0, false
	}
	return float64(r.Width) / w, float64(r.Height) / h, true
}
