package music

import (
	"log/slog"
	"sync"
	"sync/atomic"
	"time"

	"github.com/faiface/beep"
	"github.com/faiface/beep/speaker"
)

// Status is a snapshot of the player for the UI.
type Status struct {
	Loaded   bool
	Playing  bool
	Track    string
	Position time.Duration
	Duration time.Duration
}

// Output is where decoded audio goes. The speaker package implements it.
type Output interface {
	Init(rate beep.SampleRate, bufferSize int) error
	Lock()
	Unlock()
	Play(s ...beep.Streamer)
	Clear()
}

type speakerOutput struct{}

func (speakerOutput) Init(rate beep.SampleRate, n int) error { return speaker.Init(rate, n) }
func (speakerOutput) Lock()                                  { speaker.Lock() }
func (speakerOutput) Unlock()                                { speaker.Unlock() }
func (speakerOutput) Play(s ...beep.Streamer)                { speaker.Play(s...) }
func (speakerOutput) Clear()                                 { speaker.Clear() }

// Player plays one track at a time.
type Player struct {
	mu  sync.Mutex
	out Output
	log *slog.Logger

	rate     beep.SampleRate
	ready    bool
	track    *Track
	ctrl     *beep.Ctrl
	queued   bool
	playing  bool
	finished atomic.Bool // set from the speaker goroutine
}

// NewPlayer plays through the system speaker.
func NewPlayer(log *slog.Logger) *Player {
	return NewPlayerWithOutput(speakerOutput{}, log)
}

func NewPlayerWithOutput(out Output, log *slog.Logger) *Player {
	if log == nil {
		log = slog.Default()
	}
	return &Player{out: out, log: log}
}

// Load replaces the current track with the file at path, paused at the start.
func (p *Player) Load(path string) error {
	t, err := Open(path)
	if err != nil {
		return err
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	p.unloadLocked()
	if err := p.initLocked(t.Format.SampleRate); err != nil {
		_ = t.Close()
		return err
	}
	p.track = t
	p.ctrl = &beep.Ctrl{Streamer: t.streamer, Paused: true}
	p.log.Info("music.loaded", "track", t.Name(), "duration", t.Duration().String())
	return nil
}

// (re)initialises the output when the sample rate changes
func (p *Player) initLocked(rate beep.SampleRate) error {
	if p.ready && p.rate == rate {
		return nil
	}
	if err := p.out.Init(rate, rate.N(time.Second/20)); err != nil {
		return err
	}
	p.ready = true
	p.rate = rate
	return nil
}

// Toggle flips between playing and paused. A finished track starts over.
func (p *Player) Toggle() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.syncLocked()
	if p.track == nil {
		return ErrNoTrack
	}

	if p.playing {
		p.out.Lock()
		p.ctrl.Paused = true
		p.out.Unlock()
		p.playing = false
		return nil
	}

	if !p.queued {
		p.out.Lock()
		if p.track.AtEnd() {
			if err := p.track.Seek(0); err != nil {
				p.out.Unlock()
				return err
			}
		}
		p.ctrl.Paused = false
		p.out.Unlock()
		p.finished.Store(false)
		p.out.Play(beep.Seq(p.ctrl, beep.Callback(func() { p.finished.Store(true) })))
		p.queued = true
	} else {
		p.out.Lock()
		p.ctrl.Paused = false
		p.out.Unlock()
	}
	p.playing = true
	return nil
}

// Seek jumps to d, clamped to the track.
func (p *Player) Seek(d time.Duration) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.track == nil {
		return ErrNoTrack
	}
	p.out.Lock()
	defer p.out.Unlock()
	return p.track.Seek(d)
}

func (p *Player) Status() Status {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.syncLocked()
	if p.track == nil {
		return Status{}
	}
	p.out.Lock()
	pos, dur := p.track.Position(), p.track.Duration()
	p.out.Unlock()
	return Status{
		Loaded:   true,
		Playing:  p.playing,
		Track:    p.track.Name(),
		Position: pos,
		Duration: dur,
	}
}

// Close stops playback and releases the track.
func (p *Player) Close() error {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.unloadLocked()
}

// folds a track end reported by the speaker into the player state
func (p *Player) syncLocked() {
	if p.finished.Swap(false) {
		p.playing = false
		p.queued = false
		p.log.Debug("music.ended")
	}
}

func (p *Player) unloadLocked() error {
	if p.track == nil {
		return nil
	}
	if p.ready {
		// Clear takes the output lock itself
		p.out.Clear()
	}
	err := p.track.Close()
	p.track, p.ctrl = nil, nil
	p.queued, p.playing = false, false
	p.finished.Store(false)
	return err
}
