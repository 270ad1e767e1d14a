package tui

import (
	"log/slog"
	"math/rand/v2"
	"time"

	"github.com/Makepad-fr/forever/internal/config"
	"github.com/Makepad-fr/forever/internal/counter"
	"github.com/Makepad-fr/forever/internal/music"
)

// Player is the part of the music player the page uses.
type Player interface {
	Load(path string) error
	Toggle() error
	Seek(d time.Duration) error
	Status() music.Status
}

// Deps is everything the page needs from the outside.
type Deps struct {
	Config config.Config
	Clock  counter.Clock
	Player Player
	// Pick chooses a song; nil disables picking.
	Pick   func() (string, error)
	Logger *slog.Logger
	Rand   *rand.Rand
}

func (d Deps) withDefaults() Deps {
	if d.Clock == nil {
		d.Clock = counter.RealClock{}
	}
	if d.Logger == nil {
		d.Logger = slog.Default()
	}
	if d.Rand == nil {
		d.Rand = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	return d
}
