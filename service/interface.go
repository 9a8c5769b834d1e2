package service

// Service defines the lifecycle interface for long-lived subsystems
// Services own resources that outlive a request: the scene loop, the audio backend, the HTTP listener
//
// Lifecycle:
//  1. Construction (via factory)
//  2. Init(args...) - configuration from parsed flags and config file
//  3. Start() - launch background goroutines
//  4. [runtime operation]
//  5. Stop() - halt goroutines, release resources
type Service interface {
	// Name returns the unique identifier for this service
	Name() string

	// Dependencies returns names of services that must Init before this one
	// Return nil or empty slice if no dependencies
	Dependencies() []string

	// Init configures the service from optional args
	Init(args ...any) error

	// Start begins service operation (launches goroutines if any)
	// Called after all services have initialized
	Start() error

	// Stop halts service operation and releases resources
	// Must be idempotent - safe to call multiple times
	Stop() error
}

// Arg returns the first of args holding a T
// Services receive the same Init args and pick the values they need by type
func Arg[T any](args []any) (T, bool) {
	for _, a := range args {
		if v, ok := a.(T); ok {
			return v, true
		}
	}
	var zero T
	return zero, false
}
