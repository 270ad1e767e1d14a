package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// ProgressBar renders a Unicode progress bar with percentage.
func ProgressBar(done, total, width int) string {
	t := Current()
	if total <= 0 {
		total = 1
	}
	if width < 5 {
		width = 5
	}
	done = min(max(done, 0), total)
	filled := int(float64(done) / float64(total) * float64(width))
	bar := strings.Repeat(t.BarFull, filled) + strings.Repeat(t.BarEmpty, width-filled)
	pct := int(float64(done) / float64(total) * 100)
	return fmt.Sprintf("%s %3d%%", bar, pct)
}

// Panel frames lines in a box using the current theme.
func Panel(lines []string) string {
	t := Current()
	return lipgloss.NewStyle().
		Border(t.Border).
		BorderForeground(t.BorderColor).
		Padding(0, 1).
		Render(strings.Join(lines, "\n"))
}

// Dots renders navigation dots with the active one highlighted.
func Dots(active, n int) string {
	t := Current()
	parts := make([]string, n)
	for i := range parts {
		if i == active {
			parts[i] = t.Heart.Render(t.DotActive)
		} else {
			parts[i] = t.Muted.Render(t.DotInactive)
		}
	}
	return strings.Join(parts, " ")
}
