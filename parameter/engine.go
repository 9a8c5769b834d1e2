package parameter

import "time"

// Loop & Scheduler Timing
const (
	// FrameUpdateInterval is the animation frame interval (~60 FPS)
	FrameUpdateInterval = 16 * time.Millisecond

	// PostQueueSize is the capacity of the cross-goroutine post queue into the loop
	PostQueueSize = 256

	// MinRepeatInterval is the floor for repeating tasks, zero intervals would spin the scheduler
	MinRepeatInterval = time.Millisecond
)
