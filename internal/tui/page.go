package tui

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/Makepad-fr/forever/internal/counter"
	"github.com/Makepad-fr/forever/internal/hearts"
	"github.com/Makepad-fr/forever/internal/reveal"
	"github.com/Makepad-fr/forever/internal/ui"
)

const (
	secHero    = "hero"
	secCounter = "counter"
	secMessage = "message"
	secLove    = "love"
	secGallery = "gallery"

	heroDelay   = 300 * time.Millisecond
	cardStagger = 120 * time.Millisecond

	loveRows = 9
)

var sectionOrder = []string{secHero, secCounter, secMessage, secLove, secGallery}

var fieldLabels = map[counter.Field]string{
	counter.Years:   "Years",
	counter.Months:  "Months",
	counter.Days:    "Days",
	counter.Hours:   "Hours",
	counter.Minutes: "Minutes",
	counter.Seconds: "Seconds",
}

// page renders every section, each at least one screen tall, and reports
// where each one landed.
func (m *model) page() (string, []reveal.Section) {
	w, h := m.vp.Width, m.vp.Height
	var lines []string
	secs := make([]reveal.Section, 0, len(sectionOrder))
	for _, id := range sectionOrder {
		block := m.section(id, w, h)
		if !m.shown(id) {
			block = make([]string, len(block))
		}
		block = fill(block, h)
		secs = append(secs, reveal.Section{ID: id, Top: len(lines), Height: len(block)})
		lines = append(lines, block...)
	}
	return strings.Join(lines, "\n"), secs
}

// shown reports whether a section has been revealed and its delay is over.
func (m *model) shown(id string) bool {
	at, ok := m.revealed[id]
	if !ok {
		return false
	}
	if id == secHero {
		at = at.Add(heroDelay)
	}
	return !m.now.Before(at)
}

func (m *model) section(id string, w, h int) []string {
	switch id {
	case secHero:
		return m.hero(w, h)
	case secCounter:
		return m.counterBlock(w)
	case secMessage:
		return m.message(w)
	case secLove:
		return m.loveBlock(w)
	case secGallery:
		return m.galleryBlock(w)
	}
	return nil
}

// fill centres block vertically in at least h lines.
func fill(block []string, h int) []string {
	if len(block) >= h {
		return block
	}
	top := (h - len(block)) / 2
	out := make([]string, h)
	copy(out[top:], block)
	return out
}

func center(w int, s string) string {
	return lipgloss.PlaceHorizontal(w, lipgloss.Center, s)
}

func centerAll(w int, block string) []string {
	lines := strings.Split(block, "\n")
	for i := range lines {
		lines[i] = center(w, lines[i])
	}
	return lines
}

// parallax is how far each orb has sunk for a given scroll offset.
func parallax(scroll, orbs int) []int {
	out := make([]int, orbs)
	for i := range out {
		out[i] = int(float64(scroll) * (0.3 + float64(i)*0.1))
	}
	return out
}

func (m *model) hero(w, h int) []string {
	t := ui.Current()
	cfg := m.deps.Config

	rows := make([]map[int]string, h)
	orbCols := []int{w / 6, w * 5 / 6, w / 2}
	orbRows := []int{1, h - 3, h - 1}
	for i, dy := range parallax(m.vp.YOffset, len(orbCols)) {
		r := orbRows[i] + dy
		if r < 0 || r >= h || orbCols[i] >= w {
			continue
		}
		if rows[r] == nil {
			rows[r] = map[int]string{}
		}
		rows[r][orbCols[i]] = t.Accent.Faint(true).Render(t.OrbGlyph)
	}

	lines := make([]string, h)
	for i := range lines {
		lines[i] = plotRow(w, rows[i])
	}

	text := []string{
		t.Heart.Render(strings.Repeat(t.HeartGlyph+" ", 3)),
		"",
		t.Title.Render(cfg.Title),
		t.Subtitle.Render(cfg.Subtitle),
		"",
		t.Muted.Render("scroll down ↓"),
	}
	top := max((h-len(text))/2, 0)
	for i, s := range text {
		if top+i < h && s != "" {
			lines[top+i] = center(w, s)
		}
	}
	return lines
}

// plotRow places styled marks at their columns on an otherwise blank row.
func plotRow(w int, marks map[int]string) string {
	if len(marks) == 0 {
		return ""
	}
	cols := make([]int, 0, len(marks))
	for c := range marks {
		cols = append(cols, c)
	}
	sort.Ints(cols)
	var b strings.Builder
	x := 0
	for _, c := range cols {
		if c < x {
			continue
		}
		b.WriteString(strings.Repeat(" ", c-x))
		b.WriteString(marks[c])
		x = c + lipgloss.Width(marks[c])
	}
	if x < w {
		b.WriteString(strings.Repeat(" ", w-x))
	}
	return b.String()
}

func (m *model) counterBlock(w int) []string {
	t := ui.Current()
	box := lipgloss.NewStyle().
		Width(9).
		Border(t.Border).
		BorderForeground(t.BorderColor).
		Align(lipgloss.Center)

	boxes := make([]string, 0, len(counter.Fields))
	for _, f := range counter.Fields {
		n := t.Number.Render(fmt.Sprintf("%d", m.values[f]))
		boxes = append(boxes, box.Render(n+"\n"+t.Label.Render(fieldLabels[f])))
	}

	var grid string
	if w >= len(boxes)*lipgloss.Width(boxes[0]) {
		grid = lipgloss.JoinHorizontal(lipgloss.Top, boxes...)
	} else {
		half := len(boxes) / 2
		grid = lipgloss.JoinVertical(lipgloss.Center,
			lipgloss.JoinHorizontal(lipgloss.Top, boxes[:half]...),
			lipgloss.JoinHorizontal(lipgloss.Top, boxes[half:]...))
	}

	out := []string{center(w, t.Title.Render("Together for")), ""}
	out = append(out, centerAll(w, grid)...)
	out = append(out, "", center(w, t.Muted.Render("since "+m.engine.Reference().Format("January 2, 2006 at 15:04"))))
	return out
}

func (m *model) message(w int) []string {
	t := ui.Current()
	msg := centerAll(w, t.Subtitle.Width(min(w-4, 56)).Align(lipgloss.Center).Render(m.deps.Config.Message))

	c := hearts.NewCanvas(w, len(msg)+6)
	m.drift.Draw(c, m.now.Sub(m.started))
	rows := c.Lines(paintCell)
	for i, l := range msg {
		rows[3+i] = l
	}
	return rows
}

func (m *model) loveBlock(w int) []string {
	t := ui.Current()
	c := hearts.NewCanvas(w, loveRows)
	for _, b := range m.bursts {
		b.Draw(c, m.now)
	}
	rows := c.Lines(paintCell)

	style := t.Button
	if m.now.Before(m.loveUntil) {
		style = t.ButtonActive
	}
	btn := centerAll(w, style.Render(t.HeartGlyph+" "+m.loveLabel()))
	top := (loveRows - len(btn)) / 2
	for i, l := range btn {
		rows[top+i] = l
	}
	return rows
}

func (m *model) loveLabel() string {
	if m.now.Before(m.loveUntil) && m.loveText != "" {
		return m.loveText
	}
	return m.deps.Config.LoveLabel
}

// loveOrigin is the pixel centre of the love section canvas.
func (m *model) loveOrigin() (float64, float64) {
	return float64(m.vp.Width*hearts.CellWidth) / 2, float64(loveRows*hearts.CellHeight) / 2
}

func (m *model) galleryBlock(w int) []string {
	t := ui.Current()
	since := m.now.Sub(m.revealed[secGallery])
	cards := m.gallery.render(func(i int) bool {
		return since >= time.Duration(i)*cardStagger
	})
	out := []string{center(w, t.Title.Render("Our Moments")), ""}
	out = append(out, cards...)
	out = append(out, "", center(w, t.Muted.Render("drag with the mouse or use h / l")))
	return out
}

func paintCell(c hearts.Cell) string {
	return lipgloss.NewStyle().
		Foreground(lipgloss.Color(c.Color())).
		Bold(c.Bold).
		Render(string(c.Glyph))
}
