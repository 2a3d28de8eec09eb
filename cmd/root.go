package cmd

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/iburimskiy/countdown/internal/timer"
)

var errMissingTimer = errors.New("Missing timer")

// Options are the parsed command line settings.
type Options struct {
	Seconds  float64
	Bounce   bool
	Terminal bool
	Mute     bool
	NoNotify bool
	Sound    string
	Volume   float64
	Verbose  bool
	LogFile  string
}

type Deps struct {
	Run    func(ctx context.Context, opts Options, logger *slog.Logger) error
	Stdout io.Writer
	Stderr io.Writer
}

func DefaultDeps() Deps {
	return Deps{
		Run:    defaultRun,
		Stdout: os.Stdout,
		Stderr: os.Stderr,
	}
}

func NewRootCmd(deps Deps) *cobra.Command {
	var opts Options

	c := &cobra.Command{
		Use:   "timer DURATION",
		Short: "Show a large countdown timer",
		Long: `Counts down DURATION and shows the remaining time in large text.

DURATION is seconds, mm:ss or hh:mm:ss ("90" is ninety seconds).
Space pauses and resumes, Escape quits.`,
		Args:         cobra.MaximumNArgs(1),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				return errMissingTimer
			}
			seconds, err := timer.Parse(args[0])
			if err != nil {
				return err
			}
			opts.Seconds = seconds

			logger, closeLog, err := setupLogging(opts, deps.Stderr)
			if err != nil {
				return err
			}
			defer closeLog()

			logger.Debug("starting", "seconds", opts.Seconds, "bounce", opts.Bounce, "terminal", opts.Terminal)
			return deps.Run(cmd.Context(), opts, logger)
		},
	}

	c.Flags().BoolVarP(&opts.Bounce, "dvd", "d", false, "bounce the timer around the window")
	c.Flags().BoolVarP(&opts.Terminal, "terminal", "t", false, "draw in the terminal instead of a window")
	c.Flags().BoolVar(&opts.Mute, "mute", false, "do not play a sound when the timer ends")
	c.Flags().BoolVar(&opts.NoNotify, "no-notify", false, "do not send a desktop notification when the timer ends")
	c.Flags().StringVar(&opts.Sound, "sound", "", "wav, mp3 or flac file to play when the timer ends")
	c.Flags().Float64Var(&opts.Volume, "volume", 0, "sound volume as a power of two (-1 halves, 1 doubles)")
	c.Flags().BoolVarP(&opts.Verbose, "verbose", "v", false, "log debug messages")
	c.Flags().StringVar(&opts.LogFile, "log-file", "", "write logs to this file")

	c.SetOut(deps.Stdout)
	c.SetErr(deps.Stderr)
	return c
}
