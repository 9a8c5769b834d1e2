package parameter

// Terminal cell geometry, a cell covers CellWidthPx by CellHeightPx page pixels
// Shapes raster at half-cell vertical resolution
const (
	CellWidthPx  = 8.0
	CellHeightPx = 16.0
)

// Page colors
const (
	BackgroundColor = "#000000"
	TitleColor      = "#ffffff"
	SubtitleColor   = "#d1d5db"
	BodyColor       = "#e5e7eb"
	IconRingColor   = "#9ca3af"
	ProfileRing     = "#4b5563"
)

// GlowWidthPx is the reach of the soft shadow outside the outline
const GlowWidthPx = 15.0

// MinVisibleOpacity skips drawing sections faded below it
const MinVisibleOpacity = 0.05
