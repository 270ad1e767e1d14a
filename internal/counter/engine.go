package counter

import (
	"math"
	"time"

	"github.com/Makepad-fr/forever/internal/elapsed"
)

const (
	// RampDuration is how long the initial count-up takes.
	RampDuration = 2000 * time.Millisecond
	// LiveDelay separates the end of the count-up from the first live tick.
	LiveDelay = 200 * time.Millisecond
	// TickInterval is the live update cadence.
	TickInterval = time.Second
	// FrameInterval approximates one display refresh during the count-up.
	FrameInterval = time.Second / 60
	// VisibleThreshold is the fraction of the counter that must be on screen
	// before counting starts.
	VisibleThreshold = 0.3
)

// Phase is the engine state.
type Phase int

const (
	Idle Phase = iota
	RampingUp
	Live
)

func (p Phase) String() string {
	switch p {
	case Idle:
		return "idle"
	case RampingUp:
		return "ramping"
	case Live:
		return "live"
	}
	return "unknown"
}

// Engine drives the elapsed counter: idle until triggered, then an eased
// count-up from zero to the true breakdown, then a steady live tick.
//
// An Engine is owned by a single goroutine.
type Engine struct {
	reference time.Time
	clock     Clock

	phase   Phase
	started time.Time
	target  elapsed.Breakdown
	shown   elapsed.Breakdown
}

// New returns an idle engine measuring from reference.
func New(reference time.Time, clock Clock) *Engine {
	if clock == nil {
		clock = RealClock{}
	}
	return &Engine{reference: reference, clock: clock}
}

func (e *Engine) Reference() time.Time { return e.reference }

func (e *Engine) Phase() Phase { return e.phase }

// Shown is the breakdown last handed out by Frame or Tick.
func (e *Engine) Shown() elapsed.Breakdown { return e.shown }

// Breakdown computes the true elapsed time right now.
func (e *Engine) Breakdown() elapsed.Breakdown {
	return elapsed.Compute(e.reference, e.clock.Now())
}

// Trigger starts counting. Only the first call has any effect; it reports
// whether this call was the one that started the engine.
func (e *Engine) Trigger() bool {
	if e.phase != Idle {
		return false
	}
	e.started = e.clock.Now()
	e.target = elapsed.Compute(e.reference, e.started)
	e.shown = elapsed.Breakdown{}
	e.phase = RampingUp
	return true
}

// Frame samples the count-up. done reports that the ramp has reached the
// target and no more frames are needed. Outside the ramp it returns the
// current display unchanged with done set.
func (e *Engine) Frame() (b elapsed.Breakdown, done bool) {
	if e.phase != RampingUp {
		return e.shown, true
	}
	p := Progress(e.clock.Now().Sub(e.started), RampDuration)
	e.shown = Interpolate(e.target, EaseOutQuart(p))
	return e.shown, p >= 1
}

// Tick handles the live timer. Once LiveDelay has passed after the ramp the
// engine goes live and every Tick recomputes the full breakdown.
func (e *Engine) Tick() elapsed.Breakdown {
	now := e.clock.Now()
	if e.phase == RampingUp && now.Sub(e.started) >= RampDuration+LiveDelay {
		e.phase = Live
	}
	if e.phase == Live {
		e.shown = elapsed.Compute(e.reference, now)
	}
	return e.shown
}

// NextTick is the delay before the host should call Tick again. It is zero
// while idle.
func (e *Engine) NextTick() time.Duration {
	switch e.phase {
	case RampingUp:
		d := e.started.Add(RampDuration + LiveDelay).Sub(e.clock.Now())
		if d < 0 {
			return 0
		}
		return d
	case Live:
		return TickInterval
	}
	return 0
}

// Progress is elapsed/total clamped to [0, 1].
func Progress(elapsed, total time.Duration) float64 {
	if total <= 0 || elapsed >= total {
		return 1
	}
	if elapsed <= 0 {
		return 0
	}
	return float64(elapsed) / float64(total)
}

// EaseOutQuart is 1 - (1-p)^4.
func EaseOutQuart(p float64) float64 {
	return 1 - math.Pow(1-p, 4)
}

// Interpolate scales every field of target by eased, rounding down.
func Interpolate(target elapsed.Breakdown, eased float64) elapsed.Breakdown {
	if eased >= 1 {
		return target
	}
	scale := func(v int) int { return int(math.Floor(float64(v) * eased)) }
	return elapsed.Breakdown{
		Years:   scale(target.Years),
		Months:  scale(target.Months),
		Days:    scale(target.Days),
		Hours:   scale(target.Hours),
		Minutes: scale(target.Minutes),
		Seconds: scale(target.Seconds),
	}
}
