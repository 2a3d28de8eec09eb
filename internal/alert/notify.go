package alert

import (
	"context"
	"errors"
	"sync"

	"github.com/ncruces/zenity"
)

// Notice is the message shown when the countdown finishes.
type Notice struct {
	Title string
	Body  string
}

// Notifier delivers a Notice. Implementations should honour ctx so a hung
// backend can be abandoned.
type Notifier interface {
	Notify(ctx context.Context, n Notice) error
}

// NoOp drops every notice.
type NoOp struct{}

func (NoOp) Notify(context.Context, Notice) error { return nil }

// Desktop shows a native desktop notification through zenity
// (notify-send on Linux/BSD, osascript on macOS, toast on Windows).
type Desktop struct{}

func (Desktop) Notify(ctx context.Context, n Notice) error {
	err := zenity.Notify(n.Body,
		zenity.Title(n.Title),
		zenity.InfoIcon,
		zenity.Context(ctx),
	)
	if err != nil {
		return &NotificationError{Backend: "desktop", Err: err}
	}
	return nil
}

// ForPlatform picks the notifier for goos so callers never branch on the platform.
func ForPlatform(goos string) Notifier {
	switch goos {
	case "linux", "freebsd", "openbsd", "netbsd", "dragonfly", "solaris", "illumos",
		"darwin", "windows":
		return Desktop{}
	default:
		return NoOp{}
	}
}

// Multi fans a notice out to every notifier at once, so a stalled one does
// not hold up the rest, and joins their failures.
type Multi []Notifier

func (m Multi) Notify(ctx context.Context, n Notice) error {
	errs := make([]error, len(m))
	var wg sync.WaitGroup
	for i, nt := range m {
		wg.Add(1)
		go func() {
			defer wg.Done()
			errs[i] = nt.Notify(ctx, n)
		}()
	}
	wg.Wait()
	return errors.Join(errs...)
}
