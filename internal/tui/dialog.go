package tui

import (
	"strings"

	"luckywheel/internal/present"

	"github.com/charmbracelet/lipgloss"
)

// IconCells is the width of the favicon art in the result dialog.
const IconCells = 16

var globe = strings.Join([]string{
	"  ▄▀▀▀▀▄  ",
	" █ ─┼┼─ █ ",
	" █ ─┼┼─ █ ",
	"  ▀▄▄▄▄▀  ",
}, "\n")

// ResultView is everything the result dialog shows.
type ResultView struct {
	Record  present.DisplayRecord
	Favicon present.FaviconState
	Icon    string // rendered favicon art, used once loaded
	Spinner string
	Status  string
	IsError bool
}

// RenderResult draws the result dialog as a titled panel width cells wide.
func RenderResult(v ResultView, width int) string {
	inner := max(width-4, 10)

	var s strings.Builder
	s.WriteString(center(resultIcon(v), inner))
	s.WriteString("\n\n")
	s.WriteString(center(dialogTitleStyle.Render(truncateLine(v.Record.Title, inner)), inner))
	s.WriteString("\n")
	s.WriteString(center(dialogURLStyle.Render(truncateLine(v.Record.CanonicalURL, inner)), inner))
	s.WriteString("\n")

	if v.Status != "" {
		style := statusStyle
		if v.IsError {
			style = errorStatusStyle
		}
		s.WriteString("\n")
		s.WriteString(center(style.Render(truncateLine(v.Status, inner)), inner))
		s.WriteString("\n")
	}

	s.WriteString("\n")
	s.WriteString(center(helpStyle.UnsetMarginTop().Render("o go to website • s spin again"), inner))

	return RenderPanel(Panel{
		Title:       "You got",
		Content:     s.String(),
		Width:       width,
		BorderColor: FocusedBorderColor,
	})
}

func resultIcon(v ResultView) string {
	switch {
	case v.Favicon == present.FaviconLoaded && v.Icon != "":
		return v.Icon
	case v.Favicon == present.FaviconLoading:
		return v.Spinner + " fetching icon"
	default:
		return placeholderStyle.Render(globe)
	}
}

func center(s string, width int) string {
	return lipgloss.PlaceHorizontal(max(width, lipgloss.Width(s)), lipgloss.Center, s)
}
