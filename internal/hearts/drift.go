package hearts

import (
	"math/rand/v2"
	"time"
)

// MiniCount is the number of mini hearts behind the message.
const MiniCount = 25

var miniGlyphs = []rune{'♥', '♡', '❤', '❥', '❣', '✿', '❀', '✧'}

// Mini is a small heart that loops from the bottom of its area to the top.
type Mini struct {
	Glyph    rune
	Left     float64 // fraction of the width
	Size     float64 // rem
	Duration time.Duration
	Delay    time.Duration
	Hue      float64
}

// Drift is a looping field of mini hearts.
type Drift struct {
	Hearts []Mini
}

// NewDrift creates count mini hearts. A nil rng uses a randomly seeded source.
func NewDrift(count int, rng *rand.Rand) *Drift {
	if rng == nil {
		rng = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	d := &Drift{Hearts: make([]Mini, count)}
	for i := range d.Hearts {
		d.Hearts[i] = Mini{
			Glyph:    miniGlyphs[rng.IntN(len(miniGlyphs))],
			Left:     rng.Float64(),
			Size:     rng.Float64()*1.5 + 0.6,
			Duration: time.Duration((rng.Float64()*6 + 4) * float64(time.Second)),
			Delay:    time.Duration(rng.Float64() * 8 * float64(time.Second)),
			Hue:      335 + rng.Float64()*25,
		}
	}
	return d
}

// Phase is how far along its loop m is after since, in [0, 1). ok is false
// while the heart is still waiting out its delay.
func (m Mini) Phase(since time.Duration) (phase float64, ok bool) {
	since -= m.Delay
	if since < 0 || m.Duration <= 0 {
		return 0, false
	}
	return float64(since%m.Duration) / float64(m.Duration), true
}

// Draw plots the drift onto c as it looks since after it started. Hearts fade
// in over the first fifth of the loop and out over the last.
func (d *Drift) Draw(c *Canvas, since time.Duration) {
	w, h := c.PixelSize()
	for _, m := range d.Hearts {
		p, ok := m.Phase(since)
		if !ok {
			continue
		}
		alpha := 0.7
		switch {
		case p < 0.2:
			alpha *= p / 0.2
		case p > 0.8:
			alpha *= (1 - p) / 0.2
		}
		c.Plot(m.Left*w, (1-p)*h, Cell{
			Glyph: m.Glyph,
			Hue:   m.Hue,
			Alpha: alpha,
			Bold:  m.Size > 1.5,
		})
	}
}
