package tui

import "github.com/charmbracelet/lipgloss"

var (
	green  = lipgloss.Color("#34D399")
	yellow = lipgloss.Color("#FBBF24")
	red    = lipgloss.Color("#F87171")
	cyan   = lipgloss.Color("#5EEAD4")
	gray   = lipgloss.Color("#808080")
	ink    = lipgloss.Color("#1F2937")

	FocusedBorderColor   = lipgloss.Color("14")
	UnfocusedBorderColor = lipgloss.Color("8")

	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(yellow).
			MarginBottom(1)

	subtitleStyle = lipgloss.NewStyle().
			Foreground(gray).
			Italic(true)

	pointerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(red)

	hubStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FFFFFF")).
			Bold(true)

	tickerCurrentStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(yellow)

	tickerNeighbourStyle = lipgloss.NewStyle().
				Foreground(gray).
				Faint(true)

	footerStyle = lipgloss.NewStyle().
			Foreground(green).
			MarginTop(1)

	statusStyle = lipgloss.NewStyle().
			Foreground(gray)

	errorStatusStyle = lipgloss.NewStyle().
				Foreground(red)

	helpStyle = lipgloss.NewStyle().
			Foreground(gray).
			MarginTop(1)

	progressFilledStyle = lipgloss.NewStyle().
				Foreground(cyan)

	progressEmptyStyle = lipgloss.NewStyle().
				Foreground(gray).
				Faint(true)

	progressTextStyle = lipgloss.NewStyle().
				Foreground(cyan)

	dialogTitleStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(lipgloss.Color("#FFFFFF"))

	dialogURLStyle = lipgloss.NewStyle().
			Foreground(cyan).
			Underline(true)

	placeholderStyle = lipgloss.NewStyle().
				Foreground(gray)

	loadErrorBoxStyle = lipgloss.NewStyle().
				Border(lipgloss.RoundedBorder()).
				BorderForeground(red).
				Padding(1, 2).
				MarginTop(1).
				MarginBottom(1)

	loadErrorHeaderStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(red).
				Background(lipgloss.Color("#330000"))

	loadErrorTextStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("#FF6666")).
				PaddingLeft(2)

	loadErrorHintStyle = lipgloss.NewStyle().
				Foreground(gray).
				Italic(true)

	emptyStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(gray)

	appContainerStyle = lipgloss.NewStyle().
				Border(lipgloss.RoundedBorder()).
				BorderForeground(lipgloss.Color("240")).
				Padding(0, 1)
)
