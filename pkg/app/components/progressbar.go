package components

import (
	"fmt"
	"strings"

	"github.com/kjaer/folio/pkg/app/styles"
)

// ProgressBar renders a percent in [0,100] as a fixed-width bar.
func ProgressBar(percent, width int) string {
	if width <= 0 {
		return ""
	}
	if percent < 0 {
		percent = 0
	}
	if percent > 100 {
		percent = 100
	}

	filled := percent * width / 100
	if filled > width {
		filled = width
	}

	bar := strings.Repeat("█", filled) + strings.Repeat("░", width-filled)
	return styles.ProgressStyle.Render(bar)
}

// ProgressLabel renders a bar with its percentage alongside.
func ProgressLabel(percent, width int) string {
	return fmt.Sprintf("%s %3d%%", ProgressBar(percent, width), percent)
}
