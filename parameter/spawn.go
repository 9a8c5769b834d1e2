package parameter

import "time"

// Viewport
const (
	// MobileBreakpoint is the viewport width (px) below which mobile sizing applies
	MobileBreakpoint = 768

	// OffscreenMargin is how far left of the viewport shapes start, and how far right they travel past it
	OffscreenMargin = 600
)

// Spawn Cadence, re-rolled on every interval (re)start
const (
	SpawnIntervalMobileMin  = 1 * time.Second
	SpawnIntervalMobileMax  = 3 * time.Second
	SpawnIntervalDesktopMin = 3 * time.Second
	SpawnIntervalDesktopMax = 7 * time.Second

	// InitialShapeCount shapes are spawned at startup outside the interval
	InitialShapeCount = 2

	// InitialShapeStagger is the offset between initial spawns
	InitialShapeStagger = 2 * time.Second
)

// Shape Geometry (px)
const (
	ShapeSizeDesktopBase      = 200.0
	ShapeSizeDesktopVariation = 200.0
	ShapeSizeMobileBase       = 100.0
	ShapeSizeMobileVariation  = 100.0

	OutlineDesktopBase      = 6.0
	OutlineDesktopVariation = 8.0
	OutlineMobileBase       = 3.0
	OutlineMobileVariation  = 4.0

	// HorizontalRect aspect factors applied to the drawn size
	WideRectWidthFactor  = 1.3
	WideRectHeightFactor = 0.75

	CornerRoundedLarge  = 16.0
	CornerRoundedSquare = 24.0
	CornerWideRect      = 12.0

	// DiamondRotation is the static rotation (degrees) of the diamond variant
	DiamondRotation = 45.0

	// ShapeOpacity is the render opacity of floating shapes
	ShapeOpacity = 0.8
)

// Shape Lifetime
const (
	// ShapeHardCap forcibly releases a shape regardless of animation state
	ShapeHardCap = 15 * time.Second
)

// Placeholder pattern used when a shape image fails to load
const (
	PlaceholderBase   = "#333333"
	PlaceholderStripe = "#444444"
	PlaceholderTile   = 20
)

// OutlinePalette holds the light-on-dark outline colors
var OutlinePalette = []string{"#f0f0f0", "#e0e0e0"}

// GlowColor is the outer shadow tint, GlowAlpha its strength
const (
	GlowColor = "#ffffff"
	GlowAlpha = 0.3
)
