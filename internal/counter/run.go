package counter

import (
	"context"
	"time"
)

// Run triggers e and drives it on its own timers until ctx is done: frames
// at FrameInterval during the count-up, then the live tick. Every update is
// written to d. Run returns ctx.Err().
func Run(ctx context.Context, e *Engine, d Display) error {
	e.Trigger()

	frame := time.NewTicker(FrameInterval)
	defer frame.Stop()
	frames := frame.C

	tick := time.NewTimer(e.NextTick())
	defer tick.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-frames:
			b, done := e.Frame()
			Write(d, b)
			if done {
				frame.Stop()
				frames = nil
			}
		case <-tick.C:
			Write(d, e.Tick())
			tick.Reset(e.NextTick())
		}
	}
}
