package parameter

import "time"

// Proximity nudging
const (
	// NudgeTickInterval is the nudger recomputation period
	NudgeTickInterval = 100 * time.Millisecond

	// CollisionRadiusFactor scales shape width plus outline into a collision radius
	CollisionRadiusFactor = 0.7

	// LetterNudgeDuration and BlockNudgeDuration are the ease-out times toward a new target
	LetterNudgeDuration = 250 * time.Millisecond
	BlockNudgeDuration  = 300 * time.Millisecond
)

// Push force per element class (px at full influence)
const (
	ForceTitleLetter    = 40.0
	ForceSubtitleLetter = 25.0
	ForceHeadingLetter  = 35.0
	ForceSocialIcon     = 50.0
	ForceBlock          = 25.0
	ForceProfileImage   = 30.0
)

// Radius overrides, kept as tuned constants
const (
	SocialIconRadiusScale = 1.2
	SocialIconMinRadius   = 120.0
	ProfileImageMinRadius = 200.0
)
