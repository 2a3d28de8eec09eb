package game

import (
	"errors"
	"image/color"
	"log/slog"

	"github.com/iburimskiy/countdown/internal/alert"
	"github.com/iburimskiy/countdown/internal/config"
	"github.com/iburimskiy/countdown/internal/display"
	"github.com/iburimskiy/countdown/internal/timer"
)

// ErrQuit is returned by the controller when the user asks to leave.
var ErrQuit = errors.New("quit requested")

type Config struct {
	Seconds  float64
	Layout   display.Layout
	Fonts    FontMeasurer
	Viewport display.Viewport

	// Completion side effects; nil values are skipped.
	Flasher  Flasher
	Notifier alert.Notifier

	Logger *slog.Logger
}

// Frame is everything a backend needs to draw the current state.
type Frame struct {
	Text    string
	Rect    display.Rect
	Color   color.Color
	Visible bool
}

// Controller owns the countdown, its layout and completion state. All
// methods must be called from the frame loop goroutine.
type Controller struct {
	clock    *timer.Clock
	layout   display.Layout
	fonts    FontMeasurer
	signal   *Signaler
	flasher  Flasher
	notifier alert.Notifier
	logger   *slog.Logger

	viewport display.Viewport
	rect     display.Rect
	step     float64
	frames   int
}

func NewController(cfg Config) *Controller {
	c := &Controller{
		clock:    timer.NewClock(cfg.Seconds),
		layout:   cfg.Layout,
		fonts:    cfg.Fonts,
		flasher:  cfg.Flasher,
		notifier: cfg.Notifier,
		logger:   cfg.Logger,
		viewport: cfg.Viewport,
		step:     config.FrameStep(),
	}
	if c.layout == nil {
		c.layout = display.Static{}
	}
	if c.logger == nil {
		c.logger = slog.New(slog.DiscardHandler)
	}
	c.signal = NewSignaler(c.finish)
	return c
}

// HandleEvents applies input and returns ErrQuit on a quit request or Escape.
func (c *Controller) HandleEvents(events []Event) error {
	for _, ev := range events {
		switch ev.Kind {
		case EventQuit:
			return ErrQuit
		case EventKey:
			switch ev.Key {
			case KeyEscape:
				return ErrQuit
			case KeySpace:
				if c.clock.IsActive() {
					c.clock.TogglePause()
					c.logger.Debug("pause toggled", "state", c.clock.State(), "remaining", c.clock.Remaining())
				}
			}
		case EventResize:
			c.viewport = display.Viewport{Width: ev.Width, Height: ev.Height}
		}
	}
	return nil
}

// Advance moves the simulation forward by one fixed step.
func (c *Controller) Advance() {
	c.clock.Tick(c.step)
	c.signal.Evaluate(c.clock.IsActive(), c.step)

	var fm display.FontMetrics
	if c.fonts != nil {
		fm = c.fonts.FontMetrics()
	}
	c.rect = c.layout.Compute(c.viewport, fm)
	c.frames++
}

// Update is HandleEvents followed by Advance, for backends that pace frames themselves.
func (c *Controller) Update(events []Event) error {
	if err := c.HandleEvents(events); err != nil {
		return err
	}
	c.Advance()
	return nil
}

func (c *Controller) Frame() Frame {
	col := config.RunningColor
	if c.clock.IsPaused() {
		col = config.PausedColor
	}
	return Frame{
		Text:    timer.Format(c.clock.Remaining()),
		Rect:    c.rect,
		Color:   col,
		Visible: c.clock.IsActive() || c.signal.Visible(),
	}
}

func (c *Controller) Render(canvas Canvas) {
	f := c.Frame()
	canvas.Clear(config.BackgroundColor)
	if f.Visible {
		canvas.DrawText(f.Text, f.Rect, f.Color)
	}
	canvas.Present()
}

func (c *Controller) State() timer.State { return c.clock.State() }

func (c *Controller) Viewport() display.Viewport { return c.viewport }

func (c *Controller) Frames() int { return c.frames }

func (c *Controller) finish() {
	c.logger.Info("countdown finished", "frames", c.frames)
	if c.flasher != nil {
		c.flasher.FlashWindow()
	}
	if c.notifier == nil {
		return
	}
	notice := alert.Notice{Title: config.NotifyTitle, Body: config.NotifyBody}
	alert.Background(c.notifier, notice, config.NotifyTimeout, func(err error) {
		if err != nil {
			c.logger.Warn("completion notification failed", "error", err)
			return
		}
		c.logger.Debug("completion notification delivered")
	})
}
