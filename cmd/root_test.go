package cmd

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"strings"
	"testing"

	"github.com/iburimskiy/countdown/internal/timer"
)

func captureDeps(t *testing.T, got *Options, called *bool) (Deps, *bytes.Buffer) {
	t.Helper()

	var stderr bytes.Buffer
	return Deps{
		Run: func(ctx context.Context, opts Options, logger *slog.Logger) error {
			*called = true
			*got = opts
			if logger == nil {
				t.Fatalf("logger must not be nil")
			}
			return nil
		},
		Stdout: &bytes.Buffer{},
		Stderr: &stderr,
	}, &stderr
}

func TestRootCmd_ParsesDurationAndFlags(t *testing.T) {
	t.Parallel()

	tests := []struct {
		args []string
		want Options
	}{
		{[]string{"10"}, Options{Seconds: 10}},
		{[]string{"01:10"}, Options{Seconds: 70}},
		{[]string{"--dvd", "01:01:10"}, Options{Seconds: 3670, Bounce: true}},
		{[]string{"90", "-d", "-t"}, Options{Seconds: 90, Bounce: true, Terminal: true}},
		{[]string{"5", "--mute", "--no-notify"}, Options{Seconds: 5, Mute: true, NoNotify: true}},
		{[]string{"5", "--sound", "bell.wav", "--volume", "-1"}, Options{Seconds: 5, Sound: "bell.wav", Volume: -1}},
	}
	for _, tt := range tests {
		var got Options
		var called bool
		deps, _ := captureDeps(t, &got, &called)

		cmd := NewRootCmd(deps)
		cmd.SetArgs(tt.args)
		if err := cmd.Execute(); err != nil {
			t.Fatalf("%v: unexpected error: %v", tt.args, err)
		}
		if !called {
			t.Fatalf("%v: Run not called", tt.args)
		}
		if got != tt.want {
			t.Fatalf("%v: got %+v, want %+v", tt.args, got, tt.want)
		}
	}
}

func TestRootCmd_MissingTimer(t *testing.T) {
	t.Parallel()

	var got Options
	var called bool
	deps, stderr := captureDeps(t, &got, &called)

	cmd := NewRootCmd(deps)
	cmd.SetArgs([]string{"--dvd"})
	err := cmd.Execute()
	if !errors.Is(err, errMissingTimer) {
		t.Fatalf("expected missing timer error, got %v", err)
	}
	if called {
		t.Fatalf("Run must not be called without a duration")
	}
	if !strings.Contains(stderr.String(), "Missing timer") {
		t.Fatalf("expected message on stderr, got %q", stderr.String())
	}
}

func TestRootCmd_InvalidFormatIsFatal(t *testing.T) {
	t.Parallel()

	for _, arg := range []string{"1:2:3:4", "ten", "1:-5"} {
		var got Options
		var called bool
		deps, stderr := captureDeps(t, &got, &called)

		cmd := NewRootCmd(deps)
		cmd.SetArgs([]string{"--", arg})
		err := cmd.Execute()
		if !timer.IsInvalidFormat(err) {
			t.Fatalf("%q: expected InvalidFormat, got %v", arg, err)
		}
		if called {
			t.Fatalf("%q: Run must not be called", arg)
		}
		if !strings.Contains(stderr.String(), "Invalid timer") {
			t.Fatalf("%q: expected message on stderr, got %q", arg, stderr.String())
		}
	}
}

func TestRootCmd_TooManyPartsMessage(t *testing.T) {
	t.Parallel()

	var got Options
	var called bool
	deps, _ := captureDeps(t, &got, &called)

	cmd := NewRootCmd(deps)
	cmd.SetArgs([]string{"1:1:1:1"})
	err := cmd.Execute()
	if err == nil || !strings.Contains(err.Error(), "countdown timer can only have 3 parts at most") {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestRootCmd_RejectsExtraArgs(t *testing.T) {
	t.Parallel()

	var got Options
	var called bool
	deps, _ := captureDeps(t, &got, &called)

	cmd := NewRootCmd(deps)
	cmd.SetArgs([]string{"10", "20"})
	if err := cmd.Execute(); err == nil {
		t.Fatalf("expected error for two durations")
	}
	if called {
		t.Fatalf("Run must not be called")
	}
}

func TestRootCmd_PropagatesRunError(t *testing.T) {
	t.Parallel()

	want := errors.New("no display")
	deps := Deps{
		Run: func(context.Context, Options, *slog.Logger) error {
			return want
		},
		Stdout: &bytes.Buffer{},
		Stderr: &bytes.Buffer{},
	}

	cmd := NewRootCmd(deps)
	cmd.SetArgs([]string{"10"})
	if err := cmd.Execute(); !errors.Is(err, want) {
		t.Fatalf("expected %v, got %v", want, err)
	}
}
