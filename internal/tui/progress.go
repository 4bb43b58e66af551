package tui

import (
	"fmt"
	"strings"
	"time"

	"luckywheel/internal/util"
)

// RenderSpinProgress renders the spin status line and a bar below it:
//
//	Spinning  •  62%  •  2s left
//	████████████████████░░░░░░░░░░░░
//
// progress is clamped to [0, 1]. The bar uses at most half of width.
func RenderSpinProgress(progress float64, remaining time.Duration, width int) string {
	progress = util.Clamp(progress, 0, 1)
	percent := int(progress * 100)

	var stats string
	if progress >= 1 {
		stats = "Spinning  •  Complete"
	} else {
		stats = strings.Join([]string{
			"Spinning",
			fmt.Sprintf("%d%%", percent),
			formatRemaining(remaining) + " left",
		}, "  •  ")
	}

	barWidth := width
	if barWidth <= 0 {
		barWidth = len(stats)
	}
	if half := width / 2; half > 0 && barWidth > half {
		barWidth = half
	}

	filled := util.Clamp(int(progress*float64(barWidth)), 0, barWidth)
	bar := progressFilledStyle.Render(strings.Repeat("█", filled)) +
		progressEmptyStyle.Render(strings.Repeat("░", barWidth-filled))

	return progressTextStyle.Render(stats) + "\n" + bar
}

// formatRemaining rounds up to whole seconds: "3s", "1m5s".
func formatRemaining(d time.Duration) string {
	if d < 0 {
		d = 0
	}
	seconds := int((d + time.Second - 1) / time.Second)

	minutes := seconds / 60
	secs := seconds % 60
	if minutes > 0 {
		return fmt.Sprintf("%dm%ds", minutes, secs)
	}
	return fmt.Sprintf("%ds", secs)
}
