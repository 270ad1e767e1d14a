package hearts

import (
	"math"
	"math/rand/v2"
	"time"
)

const (
	// BurstCount is the number of sparks per burst.
	BurstCount = 20
	// BurstLifetime is when a burst's sparks are removed.
	BurstLifetime = 2500 * time.Millisecond
)

var burstGlyphs = []rune{'♥', '❤', '❥', '❣', '✦', '✿', '♡', '✧'}

// Spark is one particle of a burst.
type Spark struct {
	Glyph    rune
	Angle    float64
	Distance float64
	Size     float64
	Duration time.Duration
	Hue      float64
}

// Burst is an explosion of sparks flying out from an origin.
type Burst struct {
	X, Y    float64 // origin, pixels
	Started time.Time
	Sparks  []Spark
}

// NewBurst spreads BurstCount sparks evenly around the origin. A nil rng
// uses a randomly seeded source.
func NewBurst(x, y float64, at time.Time, rng *rand.Rand) *Burst {
	if rng == nil {
		rng = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	b := &Burst{X: x, Y: y, Started: at, Sparks: make([]Spark, BurstCount)}
	for i := range b.Sparks {
		b.Sparks[i] = Spark{
			Glyph:    burstGlyphs[rng.IntN(len(burstGlyphs))],
			Angle:    math.Pi * 2 * float64(i) / BurstCount,
			Distance: rng.Float64()*200 + 80,
			Size:     rng.Float64()*24 + 12,
			Duration: time.Duration((rng.Float64()*1.5 + 0.8) * float64(time.Second)),
			Hue:      330 + rng.Float64()*30,
		}
	}
	return b
}

// Done reports whether the burst should be removed.
func (b *Burst) Done(now time.Time) bool {
	return now.Sub(b.Started) >= BurstLifetime
}

// Spot is a spark's position and scale at some instant.
type Spot struct {
	X, Y  float64
	Scale float64
	Spark Spark
}

// Spots places every spark at now. Sparks that have shrunk away are omitted.
func (b *Burst) Spots(now time.Time) []Spot {
	if b.Done(now) {
		return nil
	}
	since := now.Sub(b.Started)
	out := make([]Spot, 0, len(b.Sparks))
	for _, s := range b.Sparks {
		t := 1.0
		if s.Duration > 0 && since < s.Duration {
			t = float64(since) / float64(s.Duration)
		}
		if since < 0 {
			t = 0
		}
		e := EaseOutExpo(t)
		scale := 1 - e
		if scale <= 0.02 {
			continue
		}
		out = append(out, Spot{
			X:     b.X + math.Cos(s.Angle)*s.Distance*e,
			Y:     b.Y + math.Sin(s.Angle)*s.Distance*e,
			Scale: scale,
			Spark: s,
		})
	}
	return out
}

// Draw plots the burst at now onto c.
func (b *Burst) Draw(c *Canvas, now time.Time) {
	for _, sp := range b.Spots(now) {
		c.Plot(sp.X, sp.Y, Cell{
			Glyph: sp.Spark.Glyph,
			Hue:   sp.Spark.Hue,
			Alpha: sp.Scale,
			Bold:  sp.Spark.Size*sp.Scale >= 20,
		})
	}
}

// EaseOutExpo is a fast-out curve close to cubic-bezier(0.16, 1, 0.3, 1).
func EaseOutExpo(t float64) float64 {
	if t >= 1 {
		return 1
	}
	if t <= 0 {
		return 0
	}
	return 1 - math.Pow(2, -10*t)
}
