package alert

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync/atomic"
	"testing"
	"time"

	"github.com/faiface/beep"
)

type countingNotifier struct {
	calls atomic.Int32
	err   error
}

func (c *countingNotifier) Notify(context.Context, Notice) error {
	c.calls.Add(1)
	return c.err
}

type hangingNotifier struct{ release chan struct{} }

func (h hangingNotifier) Notify(context.Context, Notice) error {
	<-h.release
	return nil
}

func TestNotificationError_IsNotificationFailure(t *testing.T) {
	t.Parallel()

	base := &NotificationError{Backend: "desktop", Err: errors.New("no bus")}
	wrapped := fmt.Errorf("completion: %w", base)

	if !IsNotificationFailure(base) || !IsNotificationFailure(wrapped) {
		t.Fatalf("expected IsNotificationFailure to be true")
	}
	if IsNotificationFailure(errors.New("other")) {
		t.Fatalf("expected false for unrelated error")
	}
	if got := base.Error(); got != "desktop notification failed: no bus" {
		t.Fatalf("unexpected message %q", got)
	}
}

func TestForPlatform(t *testing.T) {
	t.Parallel()

	for _, goos := range []string{"linux", "darwin", "windows", "freebsd"} {
		if _, ok := ForPlatform(goos).(Desktop); !ok {
			t.Fatalf("%s: expected Desktop notifier", goos)
		}
	}
	for _, goos := range []string{"js", "wasip1", "plan9", "android"} {
		if _, ok := ForPlatform(goos).(NoOp); !ok {
			t.Fatalf("%s: expected NoOp notifier", goos)
		}
	}
}

func TestMulti_NotifiesAllAndJoinsErrors(t *testing.T) {
	t.Parallel()

	ok := &countingNotifier{}
	bad := &countingNotifier{err: &NotificationError{Backend: "desktop"}}
	m := Multi{ok, bad, NoOp{}}

	err := m.Notify(context.Background(), Notice{})
	if err == nil {
		t.Fatalf("expected joined error")
	}
	if !IsNotificationFailure(err) {
		t.Fatalf("expected NotificationError in %v", err)
	}
	if ok.calls.Load() != 1 || bad.calls.Load() != 1 {
		t.Fatalf("expected every notifier to be called once")
	}
}

type signallingNotifier struct{ called chan struct{} }

func (s signallingNotifier) Notify(context.Context, Notice) error {
	close(s.called)
	return nil
}

func TestMulti_StalledNotifierDoesNotDelayOthers(t *testing.T) {
	t.Parallel()

	h := hangingNotifier{release: make(chan struct{})}
	defer close(h.release)
	next := signallingNotifier{called: make(chan struct{})}

	start := time.Now()
	Background(Multi{h, next}, Notice{}, 300*time.Millisecond, nil)

	select {
	case <-next.called:
		if d := time.Since(start); d > 150*time.Millisecond {
			t.Fatalf("second notifier started after %v", d)
		}
	case <-time.After(time.Second):
		t.Fatalf("second notifier was never called")
	}
}

func TestChime_SkipsExpiredNotice(t *testing.T) {
	t.Parallel()

	c := &Chime{buf: toneBuffer(beep.SampleRate(8000))}
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := c.Notify(ctx, Notice{})
	if !errors.Is(err, context.Canceled) || !IsNotificationFailure(err) {
		t.Fatalf("expected canceled NotificationError, got %v", err)
	}
}

func TestDeliver_TimesOutOnHungNotifier(t *testing.T) {
	t.Parallel()

	h := hangingNotifier{release: make(chan struct{})}
	defer close(h.release)

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	start := time.Now()
	err := Deliver(ctx, h, Notice{})
	if !errors.Is(err, context.DeadlineExceeded) {
		t.Fatalf("expected deadline exceeded, got %v", err)
	}
	if !IsNotificationFailure(err) {
		t.Fatalf("expected NotificationError, got %T", err)
	}
	if time.Since(start) > time.Second {
		t.Fatalf("Deliver blocked too long")
	}
}

func TestBackground_ReportsOutcome(t *testing.T) {
	t.Parallel()

	want := &NotificationError{Backend: "desktop", Err: errors.New("denied")}
	n := &countingNotifier{err: want}

	got := make(chan error, 1)
	Background(n, Notice{Title: "Timer"}, time.Second, func(err error) { got <- err })

	select {
	case err := <-got:
		if !errors.Is(err, want) {
			t.Fatalf("expected %v, got %v", want, err)
		}
	case <-time.After(2 * time.Second):
		t.Fatalf("report was never called")
	}
}

func TestToneBuffer_Length(t *testing.T) {
	t.Parallel()

	sr := beep.SampleRate(44100)
	buf := toneBuffer(sr)
	want := 3 * (sr.N(150*time.Millisecond) + sr.N(100*time.Millisecond))
	if buf.Len() != want {
		t.Fatalf("expected %d samples, got %d", want, buf.Len())
	}
}

func TestDecodeFile_Errors(t *testing.T) {
	t.Parallel()

	if _, err := decodeFile(filepath.Join(t.TempDir(), "missing.wav")); err == nil {
		t.Fatalf("expected error for missing file")
	}

	path := filepath.Join(t.TempDir(), "chime.ogg")
	if err := os.WriteFile(path, []byte("not audio"), 0o600); err != nil {
		t.Fatal(err)
	}
	_, err := decodeFile(path)
	if !errors.Is(err, errUnsupportedSound) {
		t.Fatalf("expected unsupported sound error, got %v", err)
	}
}
