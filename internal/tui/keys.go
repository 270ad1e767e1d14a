package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Down, Up, PageDown, PageUp key.Binding
	Jump                       key.Binding
	Love                       key.Binding
	GalleryLeft, GalleryRight  key.Binding
	Music, SeekBack, SeekAhead key.Binding
	Pick                       key.Binding
	Help, Quit                 key.Binding
}

func defaultKeys() keyMap {
	return keyMap{
		Down:         key.NewBinding(key.WithKeys("j", "down"), key.WithHelp("↓/j", "scroll")),
		Up:           key.NewBinding(key.WithKeys("k", "up"), key.WithHelp("↑/k", "scroll")),
		PageDown:     key.NewBinding(key.WithKeys("pgdown", " ", "f"), key.WithHelp("space", "next page")),
		PageUp:       key.NewBinding(key.WithKeys("pgup", "b"), key.WithHelp("b", "prev page")),
		Jump:         key.NewBinding(key.WithKeys("1", "2", "3", "4", "5", "6", "7", "8", "9"), key.WithHelp("1-9", "go to section")),
		Love:         key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "love")),
		GalleryLeft:  key.NewBinding(key.WithKeys("h"), key.WithHelp("h/l", "gallery")),
		GalleryRight: key.NewBinding(key.WithKeys("l")),
		Music:        key.NewBinding(key.WithKeys("m"), key.WithHelp("m", "play/pause")),
		SeekBack:     key.NewBinding(key.WithKeys("left"), key.WithHelp("←/→", "seek")),
		SeekAhead:    key.NewBinding(key.WithKeys("right")),
		Pick:         key.NewBinding(key.WithKeys("o"), key.WithHelp("o", "choose song")),
		Help:         key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "more")),
		Quit:         key.NewBinding(key.WithKeys("q", "esc", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Down, k.Love, k.Music, k.Help, k.Quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Down, k.Up, k.PageDown, k.PageUp, k.Jump},
		{k.Love, k.GalleryLeft},
		{k.Music, k.SeekBack, k.Pick},
		{k.Help, k.Quit},
	}
}
