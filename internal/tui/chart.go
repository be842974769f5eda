package tui

import (
	"strconv"
	"strings"

	"github.com/mattn/go-runewidth"

	"github.com/rileyhilliard/fasam/internal/module"
)

// barBlocks give eighth-cell resolution for the top of each bar (lowest to highest).
var barBlocks = []rune{'▁', '▂', '▃', '▄', '▅', '▆', '▇', '█'}

// minChartHeight is one row each for values, bars and labels.
const minChartHeight = 3

// RenderBarChart draws points as vertical bars, oldest on the left. The top
// row carries each bar's value and the bottom row its label. When the width
// cannot fit every bar, the newest points that fit are shown.
func RenderBarChart(points []module.SeriesPoint, width, height int) string {
	if len(points) == 0 || width <= 0 || height < minChartHeight {
		return ""
	}

	colWidth := width / len(points)
	if colWidth < 1 {
		points = points[len(points)-width:]
		colWidth = 1
	}
	barWidth := colWidth
	if colWidth > 1 {
		barWidth = colWidth - 1
	}

	var maxVal int64 = 1
	for _, p := range points {
		if p.Value > maxVal {
			maxVal = p.Value
		}
	}

	barRows := height - 2
	lines := make([]string, 0, height)

	var values strings.Builder
	for _, p := range points {
		values.WriteString(BarValueStyle.Render(fitCell(strconv.FormatInt(p.Value, 10), colWidth)))
	}
	lines = append(lines, values.String())

	for row := 0; row < barRows; row++ {
		level := barRows - 1 - row
		var sb strings.Builder
		for _, p := range points {
			cell := strings.Repeat(string(barCell(p.Value, maxVal, barRows, level)), barWidth)
			sb.WriteString(BarStyle.Render(cell))
			sb.WriteString(strings.Repeat(" ", colWidth-barWidth))
		}
		lines = append(lines, sb.String())
	}

	var labels strings.Builder
	for _, p := range points {
		labels.WriteString(MutedStyle.Render(fitCell(p.Label, colWidth)))
	}
	lines = append(lines, labels.String())

	return strings.Join(lines, "\n")
}

// barCell returns the glyph for a bar at the given row level (0 is the bottom).
func barCell(value, maxVal int64, rows, level int) rune {
	if value <= 0 {
		return ' '
	}
	eighths := int(value * int64(rows) * 8 / maxVal)
	filled := eighths - level*8
	switch {
	case filled <= 0:
		return ' '
	case filled >= 8:
		return barBlocks[len(barBlocks)-1]
	default:
		return barBlocks[filled-1]
	}
}

// fitCell left-aligns s in a cell of exactly width columns.
func fitCell(s string, width int) string {
	return runewidth.FillRight(runewidth.Truncate(s, width, ""), width)
}
