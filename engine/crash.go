package engine

import (
	"fmt"
	"os"
	"runtime/debug"
	"sync/atomic"
)

// CrashHandler receives the recovered value of a panicking goroutine
type CrashHandler func(r any)

var crashHandler atomic.Pointer[CrashHandler]

// SetCrashHandler injects the process-level panic handler
// Keeps engine independent of the terminal package that needs to restore the tty
func SetCrashHandler(h CrashHandler) {
	if h == nil {
		crashHandler.Store(nil)
		return
	}
	crashHandler.Store(&h)
}

// HandleCrash routes a recovered panic to the injected handler, or prints and exits
func HandleCrash(r any) {
	if r == nil {
		return
	}
	if h := crashHandler.Load(); h != nil {
		(*h)(r)
		return
	}
	fmt.Fprintf(os.Stderr, "\nCRASH DETECTED: %v\nStack Trace:\n%s\n", r, debug.Stack())
	os.Exit(1)
}

// Go runs fn in a new goroutine with panic recovery
// Use instead of the 'go' keyword so a crash restores the terminal
func Go(fn func()) {
	go func() {
		defer func() {
			if r := recover(); r != nil {
				HandleCrash(r)
			}
		}()
		fn()
	}()
}
