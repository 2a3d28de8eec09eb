package cmd

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"runtime"
	"syscall"

	"github.com/iburimskiy/countdown/internal/alert"
	"github.com/iburimskiy/countdown/internal/config"
	"github.com/iburimskiy/countdown/internal/display"
	"github.com/iburimskiy/countdown/internal/game"
	"github.com/iburimskiy/countdown/internal/terminal"
	"github.com/iburimskiy/countdown/internal/window"
)

func defaultRun(ctx context.Context, opts Options, logger *slog.Logger) error {
	notifier := buildNotifier(opts, runtime.GOOS, newChime, logger)
	if opts.Terminal {
		return runTerminal(ctx, opts, notifier, logger)
	}
	return runWindow(opts, notifier, logger)
}

func runWindow(opts Options, notifier alert.Notifier, logger *slog.Logger) error {
	font, err := window.LoadFont()
	if err != nil {
		return err
	}
	ctrl := game.NewController(game.Config{
		Seconds:  opts.Seconds,
		Layout:   layoutFor(opts),
		Fonts:    font,
		Viewport: display.Viewport{Width: config.WindowWidth, Height: config.WindowHeight},
		Flasher:  window.Attention{},
		Notifier: notifier,
		Logger:   logger,
	})
	err = window.Run(ctrl, font)
	logger.Debug("window closed", "frames", ctrl.Frames())
	return err
}

func runTerminal(ctx context.Context, opts Options, notifier alert.Notifier, logger *slog.Logger) error {
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	term, err := terminal.New()
	if err != nil {
		return err
	}
	defer term.Close()

	ctrl := game.NewController(game.Config{
		Seconds:  opts.Seconds,
		Layout:   layoutFor(opts),
		Fonts:    term,
		Viewport: term.Size(),
		Flasher:  term,
		Notifier: notifier,
		Logger:   logger,
	})
	err = game.Run(ctx, ctrl, term, term, config.FrameRate)
	logger.Debug("terminal closed", "frames", ctrl.Frames())
	if ctx.Err() != nil {
		return nil
	}
	return err
}

func layoutFor(opts Options) display.Layout {
	if !opts.Bounce {
		return display.Static{}
	}
	if opts.Terminal {
		return display.NewBounce(config.TerminalBounceSpeed)
	}
	return display.NewBounce(config.VelocitySpeed)
}

// buildNotifier assembles the completion notifiers. Audio failures are
// reported and skipped; the timer still works silently.
func buildNotifier(opts Options, goos string, chime func(Options) (alert.Notifier, error), logger *slog.Logger) alert.Notifier {
	var ns alert.Multi
	if !opts.NoNotify {
		ns = append(ns, alert.ForPlatform(goos))
	}
	if !opts.Mute {
		c, err := chime(opts)
		if err != nil {
			logger.Warn("audio initialization failed, continuing without sound", "error", err)
		} else {
			ns = append(ns, c)
		}
	}
	return ns
}

func newChime(opts Options) (alert.Notifier, error) {
	if opts.Sound != "" {
		c, err := alert.LoadChime(opts.Sound, opts.Volume)
		if err != nil {
			return nil, err
		}
		return c, nil
	}
	c, err := alert.NewChime(opts.Volume)
	if err != nil {
		return nil, err
	}
	return c, nil
}
