package timer

// finishEpsilon absorbs floating point residue left after subtracting the
// frame step repeatedly, so a timer ticked ceil(R/dt) times always finishes.
const finishEpsilon = 1e-9

// State is the coarse state of a Clock.
type State int

const (
	Running State = iota
	Paused
	Finished
)

func (s State) String() string {
	switch s {
	case Running:
		return "running"
	case Paused:
		return "paused"
	case Finished:
		return "finished"
	default:
		return "unknown"
	}
}

// Clock owns the remaining countdown time. It is not safe for concurrent use;
// the frame loop is its only owner.
type Clock struct {
	remaining float64
	paused    bool
}

func NewClock(seconds float64) *Clock {
	return &Clock{remaining: seconds}
}

// Tick advances the countdown by dt seconds while running. Remaining may go
// slightly negative; callers clamp for presentation. It returns true on the
// tick that takes the clock from running to finished.
func (c *Clock) Tick(dt float64) bool {
	if c.remaining <= 0 || c.paused {
		return false
	}
	c.remaining -= dt
	if c.remaining > 0 && c.remaining < finishEpsilon {
		c.remaining = 0
	}
	return c.remaining <= 0
}

// TogglePause flips the pause flag. A finished clock has nothing to pause.
func (c *Clock) TogglePause() {
	if c.remaining <= 0 {
		return
	}
	c.paused = !c.paused
}

func (c *Clock) IsActive() bool { return c.remaining > 0 }

// IsPaused reports the pause flag only while the clock is active.
func (c *Clock) IsPaused() bool { return c.paused && c.IsActive() }

func (c *Clock) Remaining() float64 { return c.remaining }

func (c *Clock) State() State {
	switch {
	case !c.IsActive():
		return Finished
	case c.paused:
		return Paused
	default:
		return Running
	}
}
