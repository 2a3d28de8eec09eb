package game

import (
	"image/color"

	"github.com/iburimskiy/countdown/internal/display"
)

type Key int

const (
	KeyOther Key = iota
	KeySpace
	KeyEscape
)

type EventKind int

const (
	EventQuit EventKind = iota
	EventKey
	EventResize
)

// Event is a backend-neutral input event delivered once per frame.
type Event struct {
	Kind   EventKind
	Key    Key
	Width  int
	Height int
}

func Quit() Event { return Event{Kind: EventQuit} }
func KeyPress(k Key) Event { return Event{Kind: EventKey, Key: k} }
func Resize(w, h int) Event { return Event{Kind: EventResize, Width: w, Height: h} }

// EventSource yields the events that arrived since the previous poll.
// It must not block.
type EventSource interface {
	PollEvents() []Event
}

// FontMeasurer reports the metrics of the face the timer is drawn with.
type FontMeasurer interface {
	FontMetrics() display.FontMetrics
}

// Canvas draws one frame.
type Canvas interface {
	Clear(bg color.Color)
	DrawText(text string, r display.Rect, c color.Color)
	Present()
}

// Flasher grabs the user's attention when the countdown ends.
type Flasher interface {
	FlashWindow()
}
