package tui

type LayoutMode int

const (
	LayoutStacked LayoutMode = iota
	LayoutTwoColumn
)

// Layout splits the content area between the wheel and the result dialog.
type Layout struct {
	Mode        LayoutMode
	Width       int
	Height      int
	WheelWidth  int
	DialogWidth int
}

const (
	minWidthTwoColumn = 60
	wideTerminalWidth = 101

	mediumWheelPercent = 55
	wideWheelPercent   = 50

	maxDiscWidth = 64
	minDiscWidth = 12
)

func NewLayout(width, height int) Layout {
	if width <= 0 {
		return Layout{Mode: LayoutStacked, Width: width, Height: height}
	}

	if width < minWidthTwoColumn {
		return Layout{
			Mode:        LayoutStacked,
			Width:       width,
			Height:      height,
			WheelWidth:  width,
			DialogWidth: width,
		}
	}

	percent := mediumWheelPercent
	if width >= wideTerminalWidth {
		percent = wideWheelPercent
	}
	wheel := width * percent / 100

	return Layout{
		Mode:        LayoutTwoColumn,
		Width:       width,
		Height:      height,
		WheelWidth:  wheel,
		DialogWidth: width - wheel,
	}
}

func (l Layout) IsTwoColumn() bool {
	return l.Mode == LayoutTwoColumn
}

// DiscWidth is the diameter of the wheel in cells. The disc is twice as wide
// as it is tall and must leave room for the title, pointer, ticker and help
// lines.
func (l Layout) DiscWidth() int {
	const chromeRows = 10
	w := l.WheelWidth - 2
	if rows := l.Height - chromeRows; rows > 0 && rows*2 < w {
		w = rows * 2
	}
	w = min(w, maxDiscWidth)
	w = max(w, minDiscWidth)
	if w%2 == 1 {
		w--
	}
	return w
}
