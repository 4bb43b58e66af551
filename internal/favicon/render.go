package favicon

import (
	"fmt"
	"image"
	"image/color"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

const (
	upperHalf = "▀"
	lowerHalf = "▄"

	// opaqueAlpha is the 16-bit alpha above which a pixel is drawn.
	opaqueAlpha = 0x8000
)

// Icon is a decoded favicon.
type Icon struct {
	Image  image.Image
	Format string
}

// Render draws the icon cells columns wide and cells/2 rows tall. Each
// terminal cell carries two vertical pixels: the upper one as foreground of
// "▀" and the lower one as background. Transparent pixels are left blank.
func (i *Icon) Render(cells int) string {
	if i == nil || i.Image == nil || cells <= 0 {
		return ""
	}
	if cells%2 == 1 {
		cells++
	}

	b := i.Image.Bounds()
	if b.Dx() == 0 || b.Dy() == 0 {
		return ""
	}

	sample := func(x, y int) (color.Color, bool) {
		sx := b.Min.X + x*b.Dx()/cells
		sy := b.Min.Y + y*b.Dy()/cells
		c := i.Image.At(sx, sy)
		_, _, _, a := c.RGBA()
		return c, a >= opaqueAlpha
	}

	rows := make([]string, 0, cells/2)
	for y := 0; y < cells; y += 2 {
		var sb strings.Builder
		for x := 0; x < cells; x++ {
			top, topOK := sample(x, y)
			bottom, bottomOK := sample(x, y+1)
			switch {
			case topOK && bottomOK:
				sb.WriteString(lipgloss.NewStyle().
					Foreground(hex(top)).
					Background(hex(bottom)).
					Render(upperHalf))
			case topOK:
				sb.WriteString(lipgloss.NewStyle().Foreground(hex(top)).Render(upperHalf))
			case bottomOK:
				sb.WriteString(lipgloss.NewStyle().Foreground(hex(bottom)).Render(lowerHalf))
			default:
				sb.WriteString(" ")
			}
		}
		rows = append(rows, sb.String())
	}
	return strings.Join(rows, "\n")
}

func hex(c color.Color) lipgloss.Color {
	r, g, b, _ := c.RGBA()
	return lipgloss.Color(fmt.Sprintf("#%02x%02x%02x", r>>8, g>>8, b>>8))
}
