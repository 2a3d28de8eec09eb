package cmd

import (
	"fmt"
	"io"
	"log/slog"
	"os"
)

// setupLogging picks the log destination. The terminal backend owns the
// tty, so without a log file its logs are discarded.
func setupLogging(opts Options, stderr io.Writer) (*slog.Logger, func(), error) {
	level := slog.LevelInfo
	if opts.Verbose {
		level = slog.LevelDebug
	}

	var (
		w       io.Writer = stderr
		closeFn           = func() {}
	)
	switch {
	case opts.LogFile != "":
		f, err := os.OpenFile(opts.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, nil, fmt.Errorf("opening log file: %w", err)
		}
		w = f
		closeFn = func() { _ = f.Close() }
	case opts.Terminal:
		w = io.Discard
	}

	logger := slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
	return logger, closeFn, nil
}
