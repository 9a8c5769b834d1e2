package parameter

import "time"

// HTTP server timeouts
const (
	ReadHeaderTimeout = 10 * time.Second
	ShutdownTimeout   = 5 * time.Second
)

// Scene stream
const (
	// StreamBuffer is the per-viewer frame queue, older frames drop when full
	StreamBuffer = 4

	// StreamWriteWait bounds a single websocket write
	StreamWriteWait = 5 * time.Second

	// StreamPongWait is how long a viewer may stay silent before it is dropped
	StreamPongWait = 60 * time.Second

	// StreamPingPeriod must be shorter than StreamPongWait
	StreamPingPeriod = 50 * time.Second

	// StreamEncodeSmoothing weights each frame encode in the running average
	StreamEncodeSmoothing = 0.1

	// StreamReadLimit caps client control messages
	StreamReadLimit = 4096
)

// API error messages
const (
	ErrMsgBlogDirectory = "Blog directory not found"
	ErrMsgPostNotFound  = "Blog post not found"
	ErrMsgPageNotFound  = "Portfolio page not found"
	ErrMsgInternal      = "Internal server error"
)
