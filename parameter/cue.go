package parameter

import "time"

// Spawn cue
const (
	CueSampleRate     = 44100
	CueSpeakerBuffer  = 100 * time.Millisecond
	CueDuration       = 450 * time.Millisecond
	CueFreqStart      = 240.0
	CueFreqEnd        = 70.0
	CueVolume         = 0.12
	CueNoiseMix       = 0.35
	CueMinGap         = 300 * time.Millisecond
	CueAttackFraction = 0.15
)
