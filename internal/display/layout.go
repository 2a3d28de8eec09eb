package display

import "github.com/iburimskiy/countdown/internal/config"

// Rect is the on-screen box the timer text is stretched into.
type Rect struct {
	X, Y          int
	Width, Height int
}

// Viewport is the current drawable size in pixels (or cells for a terminal).
type Viewport struct {
	Width, Height int
}

// FontMetrics describes the face used to render the timer. Descent follows
// the usual rasterizer convention and is zero or negative (below the baseline).
type FontMetrics struct {
	Height  float64
	Ascent  float64
	Descent float64
}

// Layout computes the text rect for the current frame.
type Layout interface {
	Compute(vp Viewport, fm FontMetrics) Rect
}

// Static keeps the text at a fixed fraction of the viewport.
type Static struct{}

func (Static) Compute(vp Viewport, _ FontMetrics) Rect {
	return Rect{
		X:      int(float64(vp.Width) * config.TextPadding),
		Y:      int(float64(vp.Height) * config.TextPadding),
		Width:  int(float64(vp.Width) * config.TextSize),
		Height: int(float64(vp.Height) * config.TextSize),
	}
}

// Velocity is a per-frame displacement in pixels.
type Velocity struct {
	X, Y int
}

// Bounce moves the text like a DVD screensaver logo. Position is integrated
// first and edges are tested afterwards, so a wall hit shows for one frame
// before the reversed velocity carries the text back.
type Bounce struct {
	x, y  int
	speed int
	vel   Velocity
}

func NewBounce(speed int) *Bounce {
	if speed < 0 {
		speed = -speed
	}
	return &Bounce{speed: speed, vel: Velocity{X: speed, Y: speed}}
}

func (b *Bounce) Velocity() Velocity { return b.vel }

func (b *Bounce) Position() (int, int) { return b.x, b.y }

func (b *Bounce) Compute(vp Viewport, fm FontMetrics) Rect {
	b.x += b.vel.X
	b.y += b.vel.Y
	w := int(float64(vp.Width) * config.BounceScale)
	h := int(float64(vp.Height) * config.BounceScale)

	if b.x <= 0 {
		b.vel.X = b.speed
	}
	if b.x+w >= vp.Width {
		b.vel.X = -b.speed
	}

	// Test the visible glyph rather than the box: skip the padding the
	// face reserves above its ascent and below its baseline.
	padding, trueHeight := glyphExtent(h, fm)
	if b.y+padding <= 0 {
		b.vel.Y = b.speed
	}
	if b.y+trueHeight >= vp.Height {
		b.vel.Y = -b.speed
	}

	return Rect{X: b.x, Y: b.y, Width: w, Height: h}
}

// glyphExtent returns the offset of the glyph top and baseline inside a box
// of height h.
func glyphExtent(h int, fm FontMetrics) (top, bottom int) {
	if fm.Height <= 0 {
		return 0, h
	}
	top = int(float64(h) * (fm.Height - fm.Ascent) / fm.Height)
	bottom = int(float64(h) * (fm.Height + fm.Descent) / fm.Height)
	return top, bottom
}
