package components

import (
	"fmt"

	"serverbook/internal/tui/styles"

	"github.com/NimbleMarkets/ntcharts/sparkline"
	"github.com/charmbracelet/lipgloss"
)

// chartHeight is the fixed height for the cost sparkline.
const chartHeight = 4

// CostChart renders a monthly cost history as a sparkline with a label
// header and a min/max/latest summary line. Data is expected oldest first.
// Returns a muted placeholder if data is empty.
func CostChart(label string, data []float64, width int) string {
	if len(data) == 0 {
		return styles.MutedText.Render(label + ": no data")
	}

	plotWidth := width - 4
	if plotWidth < 10 {
		plotWidth = 10
	}

	sl := sparkline.New(plotWidth, chartHeight,
		sparkline.WithStyle(lipgloss.NewStyle().Foreground(styles.Blue)),
	)
	for _, v := range data {
		sl.Push(v)
	}
	sl.Draw()

	latest := data[len(data)-1]
	min, max := minMax(data)
	summary := styles.MutedText.Render(
		fmt.Sprintf("  latest: %.2f  min: %.2f  max: %.2f", latest, min, max),
	)

	header := styles.Label.Render(label)
	return lipgloss.JoinVertical(lipgloss.Left, header, sl.View(), summary)
}

// minMax returns the minimum and maximum values from a slice.
func minMax(data []float64) (float64, float64) {
	if len(data) == 0 {
		return 0, 0
	}
	min, max := data[0], data[0]
	for _, v := range data[1:] {
		if v < min {
			min = v
		}
		if v > max {
			max = v
		}
	}
	return min, max
}
