package render

import "github.com/wcharczuk/go-chart/v2/drawing"

// ============================================================================
// RENDER STYLE — Explicit chart defaults
// ============================================================================
// Chart dimensions, bar widths and the palette live in an explicit value
// built from config and passed to the renderer, not in process-wide
// plotting defaults.
// ============================================================================

// Style holds the rendering defaults shared by all chart sets.
type Style struct {
	Width      int
	Height     int
	BarWidth   int
	ROASTarget float64 // bars at or below the target render in the alert color
}

// DefaultStyle returns the standard chart sizing and the 5x ROAS target.
func DefaultStyle() Style {
	return Style{
		Width:      1024,
		Height:     512,
		BarWidth:   60,
		ROASTarget: 5,
	}
}

// Series palette.
var palette = []drawing.Color{
	drawing.ColorFromHex("4F46E5"),
	drawing.ColorFromHex("10B981"),
	drawing.ColorFromHex("F59E0B"),
	drawing.ColorFromHex("EF4444"),
	drawing.ColorFromHex("8B5CF6"),
	drawing.ColorFromHex("06B6D4"),
	drawing.ColorFromHex("EC4899"),
	drawing.ColorFromHex("84CC16"),
	drawing.ColorFromHex("F97316"),
	drawing.ColorFromHex("6366F1"),
}

var (
	colorHealthy = drawing.ColorFromHex("10B981") // above ROAS target
	colorAlert   = drawing.ColorFromHex("F59E0B") // at or below target
	colorRevenue = drawing.ColorFromHex("4F46E5")
	colorCost    = drawing.ColorFromHex("EF4444")
)

func seriesColor(i int) drawing.Color {
	return palette[i%len(palette)]
}
