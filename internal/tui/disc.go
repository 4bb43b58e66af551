package tui

import (
	"math"
	"strings"

	"luckywheel/internal/selector"
	"luckywheel/internal/util"

	"github.com/charmbracelet/lipgloss"
)

const (
	// MaxRimLabels is the largest wheel that gets labels drawn on its
	// segments. Bigger wheels rely on the ticker.
	MaxRimLabels = 12

	hubRadius   = 0.14
	labelRadius = 0.62
	discBlock   = "█"
	hubBlock    = "●"
)

var emptyDiscColor = lipgloss.Color("#374151")

// Disc describes one frame of the wheel.
type Disc struct {
	Labels   []string
	Palette  []lipgloss.Color
	Rotation float64
	// Width is the diameter in cells; the disc is Width/2 rows tall.
	Width int
}

type cell struct {
	ch   string
	fg   lipgloss.Color
	bg   lipgloss.Color
	bold bool
}

// RenderDisc draws the wheel as coloured blocks. Screen angle 0 is the top
// of the disc and grows clockwise; segment i covers local angles
// [i*w, (i+1)*w) and is drawn rotated by d.Rotation.
func RenderDisc(d Disc) string {
	w := max(d.Width, 4)
	h := w / 2
	n := len(d.Labels)

	rx, ry := float64(w)/2, float64(h)/2
	grid := make([][]cell, h)
	for row := range grid {
		grid[row] = make([]cell, w)
		for col := range grid[row] {
			x := (float64(col) + 0.5 - rx) / rx
			y := (float64(row) + 0.5 - ry) / ry
			r2 := x*x + y*y

			switch {
			case r2 > 1:
				grid[row][col] = cell{ch: " "}
			case r2 < hubRadius*hubRadius:
				grid[row][col] = cell{ch: hubBlock, fg: "#FFFFFF", bold: true}
			case n == 0:
				grid[row][col] = cell{ch: discBlock, fg: emptyDiscColor}
			default:
				seg := selector.SegmentAt(screenAngle(x, y), d.Rotation, n)
				grid[row][col] = cell{ch: discBlock, fg: segmentColor(d.Palette, seg, n)}
			}
		}
	}

	if n > 0 && n <= MaxRimLabels {
		placeRimLabels(grid, d, rx, ry)
	}

	rows := make([]string, h)
	for i, r := range grid {
		rows[i] = renderCells(r)
	}
	return strings.Join(rows, "\n")
}

// screenAngle converts a point relative to the disc centre (y grows
// downwards) into degrees clockwise from the top.
func screenAngle(x, y float64) float64 {
	return util.Wrap360(math.Atan2(x, -y) * 180 / math.Pi)
}

// placeRimLabels writes each segment's label upright, centred on the
// segment's rotated centre angle.
func placeRimLabels(grid [][]cell, d Disc, rx, ry float64) {
	n := len(d.Labels)
	maxLen := max(int(rx*0.8), 3)

	for i, text := range d.Labels {
		angle := (selector.SegmentCenter(i, n) + d.Rotation) * math.Pi / 180
		px := rx + labelRadius*rx*math.Sin(angle)
		py := ry - labelRadius*ry*math.Cos(angle)

		row := int(py)
		if row < 0 || row >= len(grid) {
			continue
		}
		runes := []rune(text)
		if len(runes) > maxLen {
			runes = runes[:maxLen]
		}
		start := int(math.Round(px - float64(len(runes))/2))
		bg := segmentColor(d.Palette, i, n)
		for j, r := range runes {
			col := start + j
			if col < 0 || col >= len(grid[row]) || grid[row][col].ch != discBlock {
				continue
			}
			grid[row][col] = cell{ch: string(r), fg: ink, bg: bg, bold: true}
		}
	}
}

// segmentColor cycles through the palette, avoiding giving the last segment
// the same colour as the first one it touches.
func segmentColor(palette []lipgloss.Color, i, n int) lipgloss.Color {
	k := len(palette)
	if k == 0 {
		return gray
	}
	c := i % k
	if n > 1 && i == n-1 && c == 0 && k > 1 {
		c = 1
		if k > 2 && (i-1)%k == 1 {
			c = 2
		}
	}
	return palette[c]
}

// renderCells styles runs of identical cells together.
func renderCells(cells []cell) string {
	var sb strings.Builder
	for start := 0; start < len(cells); {
		end := start + 1
		for end < len(cells) && sameStyle(cells[start], cells[end]) {
			end++
		}

		var run strings.Builder
		for _, c := range cells[start:end] {
			run.WriteString(c.ch)
		}

		c := cells[start]
		if c.fg == "" && c.bg == "" {
			sb.WriteString(run.String())
		} else {
			style := lipgloss.NewStyle().Bold(c.bold)
			if c.fg != "" {
				style = style.Foreground(c.fg)
			}
			if c.bg != "" {
				style = style.Background(c.bg)
			}
			sb.WriteString(style.Render(run.String()))
		}
		start = end
	}
	return sb.String()
}

func sameStyle(a, b cell) bool {
	return a.fg == b.fg && a.bg == b.bg && a.bold == b.bold
}

// RenderPointer draws the fixed "▼" above the centre of a disc of the given
// width.
func RenderPointer(width int) string {
	return strings.Repeat(" ", max(width, 4)/2) + pointerStyle.Render("▼")
}

// RenderTicker shows the label under the pointer between its neighbours,
// centred in width.
func RenderTicker(labels []string, rotation float64, width int) string {
	n := len(labels)
	if n == 0 {
		return ""
	}
	cur := selector.SegmentUnderPointer(rotation, n)
	line := tickerCurrentStyle.Render("▸ " + labels[cur] + " ◂")
	if n >= 3 {
		prev := labels[(cur-1+n)%n]
		next := labels[(cur+1)%n]
		line = tickerNeighbourStyle.Render(prev) + "  " + line + "  " + tickerNeighbourStyle.Render(next)
	}
	return lipgloss.PlaceHorizontal(max(width, lipgloss.Width(line)), lipgloss.Center, line)
}
