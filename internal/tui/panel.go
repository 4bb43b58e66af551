package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Panel is a rounded box with an optional title set into its top border.
type Panel struct {
	Title       string
	Content     string
	Width       int
	Height      int // 0 sizes the panel to its content
	BorderColor lipgloss.Color
	Dimmed      bool
}

var DefaultBorderColor = lipgloss.Color("#808080")

const (
	minPanelWidth = 10
	panelChrome   = 2 // left + right border
)

// RenderPanel draws p. Content wider than the panel is cut, never wrapped,
// so styled content keeps its layout.
func RenderPanel(p Panel) string {
	width := max(p.Width, minPanelWidth)
	inner := width - panelChrome

	content := clipLines(p.Content, inner, max(p.Height-panelChrome, 0))
	if p.Dimmed {
		content = lipgloss.NewStyle().Faint(true).Render(content)
	}

	body := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderTop(false).
		BorderForeground(p.BorderColor).
		Width(inner)
	if p.Height > panelChrome {
		body = body.Height(p.Height - panelChrome)
	}

	return panelTop(p.Title, width, p.BorderColor) + "\n" + body.Render(content)
}

// panelTop builds "╭─ Title ────╮" exactly width cells wide.
func panelTop(title string, width int, color lipgloss.Color) string {
	b := lipgloss.RoundedBorder()
	style := lipgloss.NewStyle().Foreground(color)

	label := ""
	if title != "" {
		label = " " + title + " "
		if room := width - 3; lipgloss.Width(label) > room {
			label = truncateLine(label, room)
		}
	}

	dashes := max(width-3-lipgloss.Width(label), 0)
	if label == "" {
		return style.Render(b.TopLeft + strings.Repeat(b.Top, width-2) + b.TopRight)
	}
	return style.Render(b.TopLeft+b.Top) + lipgloss.NewStyle().Bold(true).Render(label) +
		style.Render(strings.Repeat(b.Top, dashes)+b.TopRight)
}

// clipLines cuts every line to width cells and keeps at most height lines
// (0 keeps all).
func clipLines(content string, width, height int) string {
	if content == "" {
		return ""
	}
	clip := lipgloss.NewStyle().MaxWidth(width)
	lines := strings.Split(content, "\n")
	if height > 0 && len(lines) > height {
		lines = lines[:height]
	}
	for i, line := range lines {
		if lipgloss.Width(line) > width {
			lines[i] = clip.Render(line)
		}
	}
	return strings.Join(lines, "\n")
}
