package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	models "github.com/Makepad-fr/forever/internal/model"
	"github.com/Makepad-fr/forever/internal/ui"
)

const (
	cardWidth  = 24
	cardGap    = 2
	dragFactor = 2
)

// strip is the horizontally scrollable gallery.
type strip struct {
	photos []models.Photo
	scroll int
	view   int // visible width

	dragging    bool
	startX      int
	startScroll int
}

// Width is the full strip width in cells.
func (s *strip) Width() int {
	if len(s.photos) == 0 {
		return 0
	}
	return len(s.photos)*(cardWidth+cardGap) - cardGap
}

func (s *strip) maxScroll() int {
	return max(s.Width()-s.view, 0)
}

func (s *strip) setScroll(x int) {
	s.scroll = min(max(x, 0), s.maxScroll())
}

func (s *strip) resize(view int) {
	s.view = view
	s.setScroll(s.scroll)
}

// by moves one card left (-1) or right (+1).
func (s *strip) by(cards int) {
	s.setScroll(s.scroll + cards*(cardWidth+cardGap))
}

func (s *strip) press(x int) {
	s.dragging = true
	s.startX = x
	s.startScroll = s.scroll
}

func (s *strip) move(x int) {
	if !s.dragging {
		return
	}
	walk := (x - s.startX) * dragFactor
	s.setScroll(s.startScroll - walk)
}

func (s *strip) release() { s.dragging = false }

// render draws the cards, hiding those not yet revealed, and cuts the
// visible window out of the strip.
func (s *strip) render(shown func(i int) bool) []string {
	t := ui.Current()
	if len(s.photos) == 0 {
		return []string{t.Muted.Render("no photos yet")}
	}
	card := lipgloss.NewStyle().
		Width(cardWidth-2).
		Height(4).
		Border(t.Border).
		BorderForeground(t.BorderColor).
		Align(lipgloss.Center)
	blank := lipgloss.NewStyle().Width(cardWidth).Height(6)

	cards := make([]string, 0, len(s.photos)*2)
	for i, p := range s.photos {
		if i > 0 {
			cards = append(cards, strings.Repeat(" ", cardGap))
		}
		if !shown(i) {
			cards = append(cards, blank.Render(""))
			continue
		}
		body := t.Heart.Render(t.HeartGlyph) + "\n" + t.Title.Render(p.Title) + "\n" + t.Muted.Render(p.Caption)
		cards = append(cards, card.Render(body))
	}
	full := strings.Split(lipgloss.JoinHorizontal(lipgloss.Top, cards...), "\n")

	out := make([]string, len(full))
	for i, line := range full {
		out[i] = ansi.Cut(line, s.scroll, s.scroll+s.view)
	}
	return out
}
