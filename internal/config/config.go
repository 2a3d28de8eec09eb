package config

import (
	"image/color"
	"time"
)

const (
	WindowWidth  = 800
	WindowHeight = 600
	WindowTitle  = "timer"

	// FinishedTitle replaces the window title once the countdown is over.
	FinishedTitle = "timer - Time's up!"

	// Frame pacing
	FrameRate = 60

	// Static display: text box inset and size as fractions of the viewport
	TextPadding = 0.1
	TextSize    = 0.8

	// Bounce display
	BounceScale         = 0.25
	VelocitySpeed       = 3
	TerminalBounceSpeed = 1

	// FontSize is the rasterization size; glyphs are scaled into the display rect.
	FontSize = 512

	// Completion blink: period in seconds, visible for the first half
	BlinkPeriod = 1.0
	BlinkDuty   = 0.5

	// Notification
	NotifyTitle   = "Timer"
	NotifyBody    = "Time's up!"
	NotifyTimeout = 5 * time.Second

	// Chime
	ChimeSampleRate = 44100
	ChimeFrequency  = 880
	ChimeLength     = 150 * time.Millisecond
	ChimeGap        = 100 * time.Millisecond
	ChimeRepeats    = 3
)

var (
	BackgroundColor = color.RGBA{R: 0, G: 0, B: 0, A: 255}
	RunningColor    = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	PausedColor     = color.RGBA{R: 120, G: 120, B: 120, A: 255}
)

// FrameStep is the fixed time advance of a single frame, in seconds.
func FrameStep() float64 {
	return 1.0 / float64(FrameRate)
}
