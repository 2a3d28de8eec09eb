package alert

import (
	"errors"
	"fmt"
)

// NotificationError reports a completion signal that could not be delivered.
// It is informational: the frame loop keeps running.
type NotificationError struct {
	Backend string
	Err     error
}

func (e *NotificationError) Error() string {
	if e == nil {
		return "notification failed"
	}
	if e.Err == nil {
		return fmt.Sprintf("%s notification failed", e.Backend)
	}
	return fmt.Sprintf("%s notification failed: %v", e.Backend, e.Err)
}

func (e *NotificationError) Unwrap() error { return e.Err }

func IsNotificationFailure(err error) bool {
	var e *NotificationError
	return errors.As(err, &e)
}
