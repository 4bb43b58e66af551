package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// RenderLoadError renders the box shown when the site list could not be
// loaded:
//
//	╭──────────────────────────────────────────────╮
//	│  COULD NOT LOAD WEBSITES                     │
//	│                                              │
//	│    failed to load websites from ...: 404     │
//	│                                              │
//	│  Press q to quit                             │
//	╰──────────────────────────────────────────────╯
//
// The message is shown verbatim, wrapped to the box width. A failed load is
// final for the session, so the only way on is to quit.
func RenderLoadError(message string, width int) string {
	innerWidth := max(width-6, 20)

	var content strings.Builder
	content.WriteString(loadErrorHeaderStyle.Render("COULD NOT LOAD WEBSITES"))
	content.WriteString("\n\n")

	for _, line := range wrapText(message, innerWidth-6) {
		content.WriteString(loadErrorTextStyle.Render(line))
		content.WriteString("\n")
	}
	content.WriteString("\n")
	content.WriteString(loadErrorHintStyle.Render("Press q to quit"))

	return loadErrorBoxStyle.Width(innerWidth).Render(content.String())
}

// truncateLine cuts line to maxWidth cells, ending in "..." when shortened.
func truncateLine(line string, maxWidth int) string {
	if lipgloss.Width(line) <= maxWidth {
		return line
	}
	if maxWidth <= 3 {
		return "..."
	}
	runes := []rune(line)
	for len(runes) > 0 && lipgloss.Width(string(runes))+3 > maxWidth {
		runes = runes[:len(runes)-1]
	}
	return string(runes) + "..."
}

// wrapText wraps text to width cells, preferring to break at spaces.
func wrapText(text string, width int) []string {
	if width <= 0 {
		return []string{text}
	}

	var lines []string
	remaining := []rune(text)

	for len(remaining) > 0 {
		if len(remaining) <= width {
			lines = append(lines, string(remaining))
			break
		}

		breakPoint := width
		for i := width - 1; i >= width/2; i-- {
			if remaining[i] == ' ' {
				breakPoint = i
				break
			}
		}

		lines = append(lines, strings.TrimSpace(string(remaining[:breakPoint])))
		remaining = []rune(strings.TrimSpace(string(remaining[breakPoint:])))
	}

	return lines
}
