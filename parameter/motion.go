package parameter

import "time"

// Primary traversal
const (
	TraversalDurationMin = 12 * time.Second
	TraversalDurationMax = 20 * time.Second
)

// Vertical wave, yoyo repeating until release
const (
	WaveAmplitudeMax = 150.0
	WaveDurationMin  = 3 * time.Second
	WaveDurationMax  = 7 * time.Second
)

// Rotation, one-shot
const (
	RotationRange       = 45.0 // full span in degrees, centered on zero
	RotationDurationMin = 6 * time.Second
	RotationDurationMax = 14 * time.Second
)
