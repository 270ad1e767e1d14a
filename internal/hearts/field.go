package hearts

import (
	"math"
	"math/rand/v2"
)

// DefaultCount is the number of floating hearts in the background.
const DefaultCount = 20

// Particle is one floating heart.
type Particle struct {
	X, Y          float64
	Size          float64
	SpeedY        float64
	Opacity       float64
	Hue           float64
	Rotation      float64
	RotationSpeed float64
	WobbleSpeed   float64
	WobbleOffset  float64
	Life          int
}

// Field is the floating hearts canvas: hearts rise from below the bottom
// edge, sway and respawn once they leave through the top.
type Field struct {
	Particles []Particle

	w, h float64 // pixels
	rng  *rand.Rand
}

// NewField sizes a field to a w×h cell area and scatters count hearts over
// its whole height. A nil rng uses a randomly seeded source.
func NewField(w, h, count int, rng *rand.Rand) *Field {
	if rng == nil {
		rng = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	f := &Field{rng: rng}
	f.Resize(w, h)
	f.Particles = make([]Particle, count)
	for i := range f.Particles {
		f.reset(&f.Particles[i])
		f.Particles[i].Y = rng.Float64() * f.h
	}
	return f
}

// Resize changes the field to w×h cells. Hearts keep their positions.
func (f *Field) Resize(w, h int) {
	f.w = float64(max(w, 0) * CellWidth)
	f.h = float64(max(h, 0) * CellHeight)
}

func (f *Field) reset(p *Particle) {
	r := f.rng
	*p = Particle{
		X:             r.Float64() * f.w,
		Y:             f.h + 20,
		Size:          r.Float64()*14 + 6,
		SpeedY:        r.Float64()*1.5 + 0.5,
		Opacity:       r.Float64()*0.4 + 0.1,
		Hue:           340 + r.Float64()*20,
		Rotation:      r.Float64() * 360,
		RotationSpeed: (r.Float64() - 0.5) * 2,
		WobbleSpeed:   r.Float64()*0.02 + 0.01,
		WobbleOffset:  r.Float64() * math.Pi * 2,
	}
}

// Step advances every heart by one frame.
func (f *Field) Step() {
	for i := range f.Particles {
		p := &f.Particles[i]
		p.Life++
		p.Y -= p.SpeedY
		p.X += math.Sin(float64(p.Life)*p.WobbleSpeed+p.WobbleOffset) * 0.5
		p.Rotation += p.RotationSpeed
		if p.Y < -30 {
			f.reset(p)
		}
	}
}

// Draw plots every heart onto c.
func (f *Field) Draw(c *Canvas) {
	for _, p := range f.Particles {
		c.Plot(p.X, p.Y, Cell{
			Glyph: heartGlyph(p),
			Hue:   p.Hue,
			Alpha: p.Opacity * 2,
			Bold:  p.Size >= 14,
		})
	}
}

// a quarter turn either way reads as a tilted heart
func heartGlyph(p Particle) rune {
	r := math.Mod(math.Abs(p.Rotation), 360)
	if r > 45 && r < 135 || r > 225 && r < 315 {
		return '❥'
	}
	if p.Size < 9 {
		return '♡'
	}
	return '♥'
}
