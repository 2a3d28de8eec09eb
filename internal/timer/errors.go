package timer

import (
	"errors"
	"fmt"
)

// FormatError reports a duration string that cannot be parsed.
// Reason carries the user-facing explanation and is kept verbatim in Error.
type FormatError struct {
	Input  string
	Reason string
}

func (e *FormatError) Error() string {
	if e == nil || e.Reason == "" {
		return "Invalid timer"
	}
	return "Invalid timer: " + e.Reason
}

// IsInvalidFormat reports whether err (or anything it wraps) is a FormatError.
func IsInvalidFormat(err error) bool {
	var e *FormatError
	return errors.As(err, &e)
}

func errTooManyParts(input string) error {
	return &FormatError{Input: input, Reason: "countdown timer can only have 3 parts at most (hh:mm:ss)"}
}

func errEmpty() error {
	return &FormatError{Reason: "countdown timer is empty"}
}

func errBadField(input, field string) error {
	return &FormatError{
		Input:  input,
		Reason: fmt.Sprintf("%q is not a non-negative whole number (hh:mm:ss)", field),
	}
}

func errTooLong(input string) error {
	return &FormatError{
		Input:  input,
		Reason: fmt.Sprintf("countdown timer can be at most %.0f seconds", MaxSeconds),
	}
}
