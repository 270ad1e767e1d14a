package tui

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/Makepad-fr/forever/internal/counter"
	"github.com/Makepad-fr/forever/internal/hearts"
	"github.com/Makepad-fr/forever/internal/music"
	"github.com/Makepad-fr/forever/internal/reveal"
	"github.com/Makepad-fr/forever/internal/ui"
)

const (
	skyRows        = 3
	loveMessageFor = 2 * time.Second
	noticeFor      = 3 * time.Second
	seekStep       = 5 * time.Second
	minPageRows    = 3
)

type model struct {
	deps Deps
	keys keyMap
	help help.Model
	seek progress.Model
	vp   viewport.Model

	width, height int
	started, now  time.Time

	sky      *hearts.Field
	skyPaper *hearts.Canvas
	drift    *hearts.Drift
	bursts   []*hearts.Burst

	engine *counter.Engine
	values counter.Values

	counterWatch *reveal.Observer
	revealWatch  *reveal.Observer
	navWatch     *reveal.Observer
	sections     []reveal.Section
	revealed     map[string]time.Time
	active       int

	gallery   strip
	loveText  string
	loveUntil time.Time

	status      music.Status
	notice      string
	noticeUntil time.Time
}

func newModel(deps Deps) model {
	deps = deps.withDefaults()
	now := deps.Clock.Now()

	m := model{
		deps:     deps,
		keys:     defaultKeys(),
		help:     help.New(),
		vp:       viewport.New(0, 0),
		started:  now,
		now:      now,
		drift:    hearts.NewDrift(hearts.MiniCount, deps.Rand),
		engine:   counter.New(deps.Config.Start, deps.Clock),
		values:   counter.Values{},
		counterWatch: reveal.NewObserver(reveal.Options{
			Threshold: counter.VisibleThreshold,
			Mode:      reveal.Once,
		}),
		revealWatch: reveal.NewObserver(reveal.Options{
			Threshold:    0.15,
			BottomMargin: 2,
			Mode:         reveal.Once,
		}),
		navWatch: reveal.NewObserver(reveal.Options{
			Threshold: 0.5,
			Mode:      reveal.Edge,
		}),
		revealed: map[string]time.Time{},
		gallery:  strip{photos: deps.Config.Gallery},
	}
	m.seek = progress.New(
		progress.WithGradient(ui.Current().Gradient[0], ui.Current().Gradient[1]),
		progress.WithoutPercentage(),
	)
	counter.Write(m.values, m.engine.Shown())
	return m
}

func (m model) Init() tea.Cmd {
	cmds := []tea.Cmd{frameCmd()}
	if song := m.deps.Config.Song; song != "" && m.deps.Player != nil {
		cmds = append(cmds, loadSongCmd(m.deps.Player, song))
	}
	return tea.Batch(cmds...)
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.resize(msg.Width, msg.Height)
		return m, m.refresh()

	case frameMsg:
		cmd := m.frame()
		return m, tea.Batch(cmd, frameCmd())

	case liveTickMsg:
		counter.Write(m.values, m.engine.Tick())
		return m, liveTickCmd(m.engine.NextTick())

	case songLoadedMsg:
		if msg.err != nil {
			m.deps.Logger.Warn("music.load_failed", "path", msg.path, "err", msg.err)
			m.say("could not load song: " + msg.err.Error())
			return m, nil
		}
		m.deps.Logger.Info("music.song_loaded", "path", msg.path)
		m.status = m.deps.Player.Status()
		m.say("loaded " + m.status.Track)
		return m, nil

	case songPickedMsg:
		if msg.err != nil {
			m.deps.Logger.Warn("music.pick_failed", "err", msg.err)
			m.say("file picker unavailable")
			return m, nil
		}
		if msg.path == "" || m.deps.Player == nil {
			return m, nil
		}
		return m, loadSongCmd(m.deps.Player, msg.path)

	case tea.MouseMsg:
		m.mouse(msg)
		return m, m.refresh()

	case tea.KeyMsg:
		return m.key(msg)
	}
	return m, nil
}

func (m model) key(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		m.layout()
	case key.Matches(msg, m.keys.Down):
		m.scrollTo(m.vp.YOffset + 1)
	case key.Matches(msg, m.keys.Up):
		m.scrollTo(m.vp.YOffset - 1)
	case key.Matches(msg, m.keys.PageDown):
		m.scrollTo(m.vp.YOffset + m.vp.Height)
	case key.Matches(msg, m.keys.PageUp):
		m.scrollTo(m.vp.YOffset - m.vp.Height)
	case key.Matches(msg, m.keys.Jump):
		if i := int(msg.String()[0] - '1'); i < len(m.sections) {
			m.scrollTo(m.sections[i].Top)
		}
	case key.Matches(msg, m.keys.Love):
		m.pressLove()
	case key.Matches(msg, m.keys.GalleryLeft):
		m.gallery.by(-1)
	case key.Matches(msg, m.keys.GalleryRight):
		m.gallery.by(1)
	case key.Matches(msg, m.keys.Music):
		m.toggleMusic()
	case key.Matches(msg, m.keys.SeekBack):
		m.seekBy(-seekStep)
	case key.Matches(msg, m.keys.SeekAhead):
		m.seekBy(seekStep)
	case key.Matches(msg, m.keys.Pick):
		if m.deps.Pick != nil {
			return m, pickSongCmd(m.deps.Pick)
		}
		m.say("no file picker available; set song in the config")
	}
	return m, m.refresh()
}

func (m *model) resize(w, h int) {
	m.width, m.height = w, h
	// hearts are scattered over the first real size, later sizes keep them
	if m.sky == nil {
		m.sky = hearts.NewField(w, skyRows, m.deps.Config.Hearts, m.deps.Rand)
	} else {
		m.sky.Resize(w, skyRows)
	}
	m.skyPaper = hearts.NewCanvas(w, skyRows)
	m.help.Width = w
	m.seek.Width = max(w/3, 10)
	m.layout()
}

// layout gives the page whatever the sky and the footer leave over.
func (m *model) layout() {
	m.vp.Width = m.width
	m.vp.Height = max(m.height-skyRows-lipgloss.Height(m.footer()), minPageRows)
	m.gallery.resize(m.width)
}

func (m *model) scrollTo(y int) {
	m.vp.SetYOffset(y)
}

// frame advances every animation by one step.
func (m *model) frame() tea.Cmd {
	m.now = m.deps.Clock.Now()
	if m.sky != nil {
		m.sky.Step()
	}
	if m.engine.Phase() == counter.RampingUp {
		b, _ := m.engine.Frame()
		counter.Write(m.values, b)
	}
	kept := m.bursts[:0]
	for _, b := range m.bursts {
		if !b.Done(m.now) {
			kept = append(kept, b)
		}
	}
	m.bursts = kept
	if m.deps.Player != nil {
		m.status = m.deps.Player.Status()
	}
	return m.refresh()
}

// refresh re-renders the page and lets the observers look at it.
func (m *model) refresh() tea.Cmd {
	if m.width == 0 {
		return nil
	}
	m.now = m.deps.Clock.Now()
	content, secs := m.page()
	m.sections = secs
	m.vp.SetContent(content)
	return m.observe()
}

func (m *model) observe() tea.Cmd {
	for _, s := range m.sections {
		// a once-only watcher is done with a section after its first report
		if s.ID == secCounter && !m.counterWatch.Fired(s.ID) {
			m.counterWatch.Observe(s)
		}
		if !m.revealWatch.Fired(s.ID) {
			m.revealWatch.Observe(s)
		}
		m.navWatch.Observe(s)
	}
	top, h := m.vp.YOffset, m.vp.Height

	for _, id := range m.revealWatch.Check(top, h) {
		m.revealed[id] = m.now
	}
	for _, id := range m.navWatch.Check(top, h) {
		for i, s := range m.sections {
			if s.ID == id {
				m.active = i
			}
		}
	}
	if len(m.counterWatch.Check(top, h)) > 0 && m.engine.Trigger() {
		m.deps.Logger.Info("counter.started", "reference", m.engine.Reference())
		return liveTickCmd(m.engine.NextTick())
	}
	return nil
}

func (m *model) pressLove() {
	now := m.deps.Clock.Now()
	if msgs := m.deps.Config.LoveMessages; len(msgs) > 0 {
		m.loveText = msgs[m.deps.Rand.IntN(len(msgs))]
		m.loveUntil = now.Add(loveMessageFor)
	}
	x, y := m.loveOrigin()
	m.bursts = append(m.bursts, hearts.NewBurst(x, y, now, m.deps.Rand))
	m.deps.Logger.Debug("love.pressed", "message", m.loveText)
}

func (m *model) toggleMusic() {
	if m.deps.Player == nil {
		m.say("music is unavailable")
		return
	}
	if err := m.deps.Player.Toggle(); err != nil {
		// playback failures are reported and otherwise ignored
		m.deps.Logger.Info("music.toggle_failed", "err", err)
		if errors.Is(err, music.ErrNoTrack) {
			m.say("no song yet, press o to choose one")
		} else {
			m.say("could not play: " + err.Error())
		}
	}
	m.status = m.deps.Player.Status()
}

func (m *model) seekBy(d time.Duration) {
	if m.deps.Player == nil {
		return
	}
	st := m.deps.Player.Status()
	if err := m.deps.Player.Seek(st.Position + d); err != nil {
		m.deps.Logger.Debug("music.seek_failed", "err", err)
		return
	}
	m.status = m.deps.Player.Status()
}

func (m *model) mouse(msg tea.MouseMsg) {
	if msg.Button == tea.MouseButtonWheelUp || msg.Button == tea.MouseButtonWheelDown {
		m.vp, _ = m.vp.Update(msg)
		return
	}

	line := msg.Y - skyRows + m.vp.YOffset
	inGallery := false
	for _, s := range m.sections {
		if s.ID == secGallery && line >= s.Top && line < s.Bottom() {
			inGallery = true
		}
	}

	switch msg.Action {
	case tea.MouseActionPress:
		if inGallery && msg.Button == tea.MouseButtonLeft {
			m.gallery.press(msg.X)
		}
	case tea.MouseActionMotion:
		if !inGallery {
			m.gallery.release()
			return
		}
		m.gallery.move(msg.X)
	case tea.MouseActionRelease:
		m.gallery.release()
	}
}

func (m *model) say(s string) {
	m.notice = s
	m.noticeUntil = m.deps.Clock.Now().Add(noticeFor)
}

func (m model) View() string {
	if m.width == 0 {
		return ""
	}
	return lipgloss.JoinVertical(lipgloss.Left, m.skyView(), m.vp.View(), m.footer())
}

func (m model) skyView() string {
	if m.skyPaper == nil {
		return strings.Repeat("\n", skyRows-1)
	}
	m.skyPaper.Clear()
	m.sky.Draw(m.skyPaper)
	return strings.Join(m.skyPaper.Lines(paintCell), "\n")
}

func (m model) footer() string {
	t := ui.Current()

	var player string
	switch {
	case m.status.Playing:
		player = t.Heart.Render("♫ Now Playing") + " " + t.Accent.Render(m.status.Track)
	case m.status.Loaded:
		player = t.Heart.Render("♪ Play Song") + " " + t.Muted.Render(m.status.Track)
	default:
		player = t.Muted.Render("♪ Play Song (press o to choose one)")
	}
	if m.status.Loaded {
		ratio := 0.0
		if m.status.Duration > 0 {
			ratio = float64(m.status.Position) / float64(m.status.Duration)
		}
		player += "  " + m.seek.ViewAs(ratio) + " " +
			t.Muted.Render(clock(m.status.Position)+" / "+clock(m.status.Duration))
	}

	nav := ui.Dots(m.active, len(sectionOrder))
	if m.notice != "" && m.now.Before(m.noticeUntil) {
		nav += "  " + t.Accent.Render(m.notice)
	}
	return lipgloss.JoinVertical(lipgloss.Left, player, nav, m.help.View(m.keys))
}

func clock(d time.Duration) string {
	d = d.Round(time.Second)
	return fmt.Sprintf("%d:%02d", int(d.Minutes()), int(d.Seconds())%60)
}

// Run shows the page until the user quits.
func Run(deps Deps) error {
	p := tea.NewProgram(newModel(deps), tea.WithAltScreen(), tea.WithMouseCellMotion())
	_, err := p.Run()
	return err
}
