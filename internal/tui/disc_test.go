package tui

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testPalette = []lipgloss.Color{"#F87171", "#FBBF24", "#34D399", "#60A5FA"}

func TestRenderDisc_Dimensions(t *testing.T) {
	tests := []struct {
		name  string
		width int
		rows  int
	}{
		{"default", 24, 12},
		{"small", 12, 6},
		{"clamped", 1, 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out := RenderDisc(Disc{Labels: []string{"a", "b", "c"}, Palette: testPalette, Width: tt.width})
			lines := strings.Split(out, "\n")
			require.Len(t, lines, tt.rows)
			for _, line := range lines {
				assert.Equal(t, max(tt.width, 4), lipgloss.Width(line))
			}
		})
	}
}

func TestRenderDisc_HasHubAndBlocks(t *testing.T) {
	out := RenderDisc(Disc{Labels: []string{"a", "b"}, Palette: testPalette, Width: 24})

	assert.Contains(t, out, hubBlock)
	assert.Contains(t, out, discBlock)
}

func TestRenderDisc_RimLabels(t *testing.T) {
	labels := []string{"google", "github", "reddit"}
	out := RenderDisc(Disc{Labels: labels, Palette: testPalette, Width: 40})

	for _, l := range labels {
		assert.Contains(t, out, l)
	}
}

func TestRenderDisc_NoRimLabelsForLargeWheels(t *testing.T) {
	labels := make([]string, MaxRimLabels+1)
	for i := range labels {
		labels[i] = "site"
	}
	out := RenderDisc(Disc{Labels: labels, Palette: testPalette, Width: 40})

	assert.NotContains(t, out, "site")
}

func TestRenderDisc_Empty(t *testing.T) {
	out := RenderDisc(Disc{Width: 20})

	assert.Contains(t, out, discBlock)
	assert.Equal(t, 10, lipgloss.Height(out))
}

func TestScreenAngle(t *testing.T) {
	assert.InDelta(t, 0, screenAngle(0, -1), 1e-9, "top")
	assert.InDelta(t, 90, screenAngle(1, 0), 1e-9, "right")
	assert.InDelta(t, 180, screenAngle(0, 1), 1e-9, "bottom")
	assert.InDelta(t, 270, screenAngle(-1, 0), 1e-9, "left")
}

func TestSegmentColor(t *testing.T) {
	assert.Equal(t, testPalette[0], segmentColor(testPalette, 0, 3))
	assert.Equal(t, testPalette[2], segmentColor(testPalette, 2, 3))

	// the last segment never shares the first segment's colour
	assert.NotEqual(t, segmentColor(testPalette, 0, 5), segmentColor(testPalette, 4, 5))
	assert.NotEqual(t, segmentColor(testPalette, 3, 5), segmentColor(testPalette, 4, 5))

	assert.Equal(t, gray, segmentColor(nil, 0, 1))
}

func TestRenderPointer(t *testing.T) {
	out := RenderPointer(20)
	assert.Equal(t, strings.Repeat(" ", 10)+"▼", out)
}

func TestRenderTicker(t *testing.T) {
	labels := []string{"alpha", "beta", "gamma", "delta"}

	// rotation 0: segment 0 ([0, 90)) is under the pointer
	out := RenderTicker(labels, 0, 40)
	assert.Contains(t, out, "▸ alpha ◂")
	assert.Contains(t, out, "delta")
	assert.Contains(t, out, "beta")
	assert.Equal(t, 40, lipgloss.Width(out))

	// rotating by -135 brings segment 1's centre under the pointer
	out = RenderTicker(labels, -135, 40)
	assert.Contains(t, out, "▸ beta ◂")

	assert.Empty(t, RenderTicker(nil, 0, 40))
	assert.Contains(t, RenderTicker([]string{"solo"}, 0, 40), "▸ solo ◂")
}
