package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

// Theme bundles palette + symbols + box borders.
// All UI helpers pull from `current`.
type Theme struct {
	Name string

	Title, Subtitle, Muted, Accent, Heart, Success, Error lipgloss.Style
	Number, Label, Button, ButtonActive                   lipgloss.Style

	Border      lipgloss.Border
	BorderColor lipgloss.TerminalColor

	DotActive, DotInactive string
	BarFull, BarEmpty      string
	HeartGlyph, OrbGlyph   string
	Gradient               [2]string
	Colorless              bool
}

var current = build("rose")

func SetTheme(name string) {
	current = build(name)
	if current.Colorless {
		lipgloss.SetColorProfile(termenv.Ascii)
	}
}

// Current exposes what renderers need.
func Current() Theme { return current }

func build(name string) Theme {
	switch strings.ToLower(name) {
	case "neon":
		pink, cyan := lipgloss.Color("#ff2bd6"), lipgloss.Color("#00f0ff")
		return Theme{
			Name:         "neon",
			Title:        lipgloss.NewStyle().Bold(true).Foreground(pink),
			Subtitle:     lipgloss.NewStyle().Foreground(cyan),
			Muted:        lipgloss.NewStyle().Foreground(lipgloss.Color("#7a7a9d")),
			Accent:       lipgloss.NewStyle().Foreground(cyan),
			Heart:        lipgloss.NewStyle().Foreground(pink),
			Success:      lipgloss.NewStyle().Foreground(lipgloss.Color("#39ff14")),
			Error:        lipgloss.NewStyle().Foreground(lipgloss.Color("#ff3131")).Bold(true),
			Number:       lipgloss.NewStyle().Bold(true).Foreground(cyan),
			Label:        lipgloss.NewStyle().Foreground(lipgloss.Color("#b39ddb")),
			Button:       lipgloss.NewStyle().Padding(0, 2).Foreground(lipgloss.Color("#000000")).Background(pink),
			ButtonActive: lipgloss.NewStyle().Padding(0, 2).Bold(true).Foreground(lipgloss.Color("#000000")).Background(cyan),
			Border:       lipgloss.RoundedBorder(),
			BorderColor:  pink,
			DotActive:    "◆", DotInactive: "◇",
			BarFull: "█", BarEmpty: "░",
			HeartGlyph: "♥", OrbGlyph: "◉",
			Gradient: [2]string{"#ff2bd6", "#00f0ff"},
		}
	case "mono":
		plain := lipgloss.NewStyle()
		return Theme{
			Name:         "mono",
			Title:        plain.Bold(true),
			Subtitle:     plain,
			Muted:        plain.Faint(true),
			Accent:       plain.Underline(true),
			Heart:        plain,
			Success:      plain,
			Error:        plain.Bold(true),
			Number:       plain.Bold(true),
			Label:        plain.Faint(true),
			Button:       plain.Padding(0, 1).Border(lipgloss.NormalBorder()),
			ButtonActive: plain.Padding(0, 1).Bold(true).Border(lipgloss.DoubleBorder()),
			Border: lipgloss.Border{
				Top: "-", Bottom: "-", Left: "|", Right: "|",
				TopLeft: "+", TopRight: "+", BottomLeft: "+", BottomRight: "+",
			},
			BorderColor: lipgloss.NoColor{},
			DotActive:   "*", DotInactive: ".",
			BarFull: "#", BarEmpty: "-",
			HeartGlyph: "<3", OrbGlyph: "o",
			Gradient:   [2]string{"#ffffff", "#ffffff"},
			Colorless:  true,
		}
	default: // rose
		rose, blush := lipgloss.Color("#ff5c8a"), lipgloss.Color("#ffb3c6")
		return Theme{
			Name:         "rose",
			Title:        lipgloss.NewStyle().Bold(true).Foreground(rose),
			Subtitle:     lipgloss.NewStyle().Italic(true).Foreground(blush),
			Muted:        lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
			Accent:       lipgloss.NewStyle().Foreground(blush),
			Heart:        lipgloss.NewStyle().Foreground(rose),
			Success:      lipgloss.NewStyle().Foreground(lipgloss.Color("42")),
			Error:        lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true),
			Number:       lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#ffffff")),
			Label:        lipgloss.NewStyle().Foreground(blush),
			Button:       lipgloss.NewStyle().Padding(0, 2).Foreground(lipgloss.Color("#ffffff")).Background(rose),
			ButtonActive: lipgloss.NewStyle().Padding(0, 2).Bold(true).Foreground(rose).Background(lipgloss.Color("#ffffff")),
			Border:       lipgloss.RoundedBorder(),
			BorderColor:  lipgloss.Color("#c9184a"),
			DotActive:    "●", DotInactive: "○",
			BarFull: "█", BarEmpty: "░",
			HeartGlyph: "♥", OrbGlyph: "●",
			Gradient: [2]string{"#ff5c8a", "#ffccd5"},
		}
	}
}
