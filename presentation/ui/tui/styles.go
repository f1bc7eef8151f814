package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

const (
	minBarWidth = 10
	maxBarWidth = 60
)

type styles struct {
	frame    lipgloss.Style
	title    lipgloss.Style
	meta     lipgloss.Style
	option   lipgloss.Style
	active   lipgloss.Style
	current  lipgloss.Style
	errText  lipgloss.Style
	barFill  lipgloss.Style
	barEmpty lipgloss.Style
	log      lipgloss.Style
}

func defaultStyles() styles {
	accent := lipgloss.Color("#00ADD8")
	muted := lipgloss.AdaptiveColor{Light: "#374151", Dark: "#5fd18a"}
	return styles{
		frame:    lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(accent).Padding(0, 1),
		title:    lipgloss.NewStyle().Bold(true).Foreground(accent),
		meta:     lipgloss.NewStyle().Foreground(muted),
		option:   lipgloss.NewStyle().PaddingLeft(2),
		active:   lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#ffffff")).Background(accent),
		current:  lipgloss.NewStyle().Foreground(accent),
		errText:  lipgloss.NewStyle().Foreground(lipgloss.Color("#e5484d")),
		barFill:  lipgloss.NewStyle().Foreground(accent),
		barEmpty: lipgloss.NewStyle().Foreground(muted),
		log:      lipgloss.NewStyle().Faint(true),
	}
}

// progressBar renders fraction (0..1) across width cells.
func (s styles) progressBar(fraction float64, width int) string {
	width = max(minBarWidth, min(maxBarWidth, width))
	filled := int(fraction*float64(width) + 0.5)
	filled = max(0, min(width, filled))
	return s.barFill.Render(strings.Repeat("█", filled)) +
		s.barEmpty.Render(strings.Repeat("░", width-filled))
}
