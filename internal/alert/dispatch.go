package alert

import (
	"context"
	"time"
)

// Deliver calls n and waits for it at most until ctx is done. A notifier that
// ignores ctx is left running in the background and its result is dropped.
func Deliver(ctx context.Context, n Notifier, notice Notice) error {
	done := make(chan error, 1)
	go func() {
		done <- n.Notify(ctx, notice)
	}()

	select {
	case err := <-done:
		return err
	case <-ctx.Done():
		return &NotificationError{Backend: "dispatch", Err: ctx.Err()}
	}
}

// Background delivers notice off the caller's goroutine, bounded by timeout,
// and hands the outcome to report.
func Background(n Notifier, notice Notice, timeout time.Duration, report func(error)) {
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()
		err := Deliver(ctx, n, notice)
		if report != nil {
			report(err)
		}
	}()
}
