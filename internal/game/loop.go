package game

import (
	"context"
	"errors"
	"time"
)

// Run drives c at rate frames per second until the user quits or ctx ends.
// The simulation always advances by the fixed step; the ticker only paces
// wall-clock time, so slow frames are not compensated.
func Run(ctx context.Context, c *Controller, src EventSource, canvas Canvas, rate int) error {
	if rate <= 0 {
		return errors.New("frame rate must be positive")
	}
	ticker := time.NewTicker(time.Second / time.Duration(rate))
	defer ticker.Stop()

	for {
		if err := c.HandleEvents(src.PollEvents()); err != nil {
			if errors.Is(err, ErrQuit) {
				return nil
			}
			return err
		}

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
		}

		c.Advance()
		c.Render(canvas)
	}
}
