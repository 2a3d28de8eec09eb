package terminal

import (
	"fmt"
	"image/color"
	"sync"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/iburimskiy/countdown/internal/display"
	"github.com/iburimskiy/countdown/internal/game"
)

// Terminal draws the timer with tcell. One cell is one layout unit, so the
// face has no padding above the ascent or below the baseline.
type Terminal struct {
	screen    tcell.Screen
	events    chan tcell.Event
	done      chan struct{}
	pollDone  chan struct{}
	closeOnce sync.Once
}

func New() (*Terminal, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, fmt.Errorf("creating screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return nil, fmt.Errorf("initializing screen: %w", err)
	}
	return newTerminal(screen), nil
}

func newTerminal(screen tcell.Screen) *Terminal {
	screen.HideCursor()
	t := &Terminal{
		screen:   screen,
		events:   make(chan tcell.Event, 16),
		done:     make(chan struct{}),
		pollDone: make(chan struct{}),
	}
	go t.pollEvents()
	return t
}

// Close restores the terminal and waits briefly for the poller to exit.
func (t *Terminal) Close() {
	t.closeOnce.Do(func() {
		close(t.done)
		t.screen.Fini()
	})
	select {
	case <-t.pollDone:
	case <-time.After(100 * time.Millisecond):
	}
}

func (t *Terminal) Size() display.Viewport {
	w, h := t.screen.Size()
	return display.Viewport{Width: w, Height: h}
}

// pollEvents runs until Fini makes PollEvent return nil or Close is called
// while the event buffer is full.
func (t *Terminal) pollEvents() {
	defer close(t.pollDone)
	for {
		ev := t.screen.PollEvent()
		if ev == nil {
			return
		}
		select {
		case t.events <- ev:
		case <-t.done:
			return
		}
	}
}

func (t *Terminal) PollEvents() []game.Event {
	var out []game.Event
	for {
		select {
		case ev := <-t.events:
			if e, ok := translate(ev); ok {
				out = append(out, e)
			}
		default:
			return out
		}
	}
}

func translate(ev tcell.Event) (game.Event, bool) {
	switch ev := ev.(type) {
	case *tcell.EventResize:
		w, h := ev.Size()
		return game.Resize(w, h), true
	case *tcell.EventKey:
		switch ev.Key() {
		case tcell.KeyEscape:
			return game.KeyPress(game.KeyEscape), true
		case tcell.KeyCtrlC:
			return game.Quit(), true
		case tcell.KeyRune:
			if ev.Rune() == ' ' {
				return game.KeyPress(game.KeySpace), true
			}
		}
	}
	return game.Event{}, false
}

func (t *Terminal) FontMetrics() display.FontMetrics {
	return display.FontMetrics{Height: 1, Ascent: 1, Descent: 0}
}

func (t *Terminal) Clear(bg color.Color) {
	t.screen.SetStyle(tcell.StyleDefault.Background(tcell.FromImageColor(bg)))
	t.screen.Clear()
}

// DrawText centres s inside r. Cells cannot be stretched, so only the
// position of r matters.
func (t *Terminal) DrawText(s string, r display.Rect, col color.Color) {
	style := tcell.StyleDefault.Foreground(tcell.FromImageColor(col)).Bold(true)
	x, y := anchor(s, r)
	w, h := t.screen.Size()
	if y < 0 || y >= h {
		return
	}
	for i, ch := range []rune(s) {
		if cx := x + i; cx >= 0 && cx < w {
			t.screen.SetContent(cx, y, ch, nil, style)
		}
	}
}

func (t *Terminal) Present() {
	t.screen.Show()
}

// FlashWindow rings the terminal bell.
func (t *Terminal) FlashWindow() {
	_ = t.screen.Beep()
}

func anchor(s string, r display.Rect) (int, int) {
	n := len([]rune(s))
	return r.X + (r.Width-n)/2, r.Y + r.Height/2
}
