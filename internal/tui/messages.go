package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/Makepad-fr/forever/internal/counter"
)

// frameMsg paces every animation on the page.
type frameMsg time.Time

// liveTickMsg drives the counter once its count-up is over.
type liveTickMsg time.Time

type songLoadedMsg struct {
	path string
	err  error
}

type songPickedMsg struct {
	path string
	err  error
}

func frameCmd() tea.Cmd {
	return tea.Tick(counter.FrameInterval, func(t time.Time) tea.Msg { return frameMsg(t) })
}

func liveTickCmd(d time.Duration) tea.Cmd {
	return tea.Tick(d, func(t time.Time) tea.Msg { return liveTickMsg(t) })
}

func loadSongCmd(p Player, path string) tea.Cmd {
	return func() tea.Msg {
		return songLoadedMsg{path: path, err: p.Load(path)}
	}
}

func pickSongCmd(pick func() (string, error)) tea.Cmd {
	return func() tea.Msg {
		path, err := pick()
		return songPickedMsg{path: path, err: err}
	}
}
