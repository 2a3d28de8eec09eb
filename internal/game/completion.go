package game

import (
	"math"

	"github.com/iburimskiy/countdown/internal/config"
)

// Signaler fires the completion side effects exactly once and then drives
// the post-completion blink.
type Signaler struct {
	fired    bool
	blink    float64
	onFinish func()
}

func NewSignaler(onFinish func()) *Signaler {
	return &Signaler{onFinish: onFinish}
}

// Evaluate runs once per frame after the clock has been advanced.
func (s *Signaler) Evaluate(active bool, dt float64) {
	if s.fired {
		s.blink += dt
		return
	}
	if active {
		return
	}
	s.fired = true
	if s.onFinish != nil {
		s.onFinish()
	}
}

func (s *Signaler) Fired() bool { return s.fired }

// Visible is a 1 Hz square wave: on for the first half of every period.
func (s *Signaler) Visible() bool {
	return math.Mod(s.blink, config.BlinkPeriod) < config.BlinkDuty
}
