// Package debug provides env-gated diagnostic logging. Output is silent by
// default; set DEBUG=1 (or call SetEnabled) to route it to stderr, or
// SetOutput to capture it elsewhere.
package debug

import (
	"fmt"
	"io"
	"os"
	"sync"
)

// Build flag for debug mode - can be overridden at build time
// go build -ldflags "-X github.com/standardbeagle/wordnum/internal/debug.EnableDebug=true"
var EnableDebug = "false"

var (
	mu      sync.Mutex
	enabled bool
	output  io.Writer = os.Stderr
)

// SetEnabled turns debug logging on or off at runtime.
func SetEnabled(on bool) {
	mu.Lock()
	defer mu.Unlock()
	enabled = on
}

// SetOutput sets a custom writer for debug output. Pass nil to restore the
// default (stderr).
func SetOutput(w io.Writer) {
	mu.Lock()
	defer mu.Unlock()
	if w == nil {
		w = os.Stderr
	}
	output = w
}

// IsEnabled returns true if debug logging is active.
func IsEnabled() bool {
	if EnableDebug == "true" {
		return true
	}
	if os.Getenv("DEBUG") == "1" || os.Getenv("DEBUG") == "true" {
		return true
	}
	mu.Lock()
	defer mu.Unlock()
	return enabled
}

// Log provides structured debug logging with component names
func Log(component, format string, args ...interface{}) {
	if !IsEnabled() {
		return
	}
	mu.Lock()
	w := output
	mu.Unlock()
	fmt.Fprintf(w, "[DEBUG:%s] "+format, append([]interface{}{component}, args...)...)
}

// LogPipeline provides debug logging for worker pool operations
func LogPipeline(format string, args ...interface{}) {
	Log("PIPELINE", format, args...)
}

// LogInput provides debug logging for word source operations
func LogInput(format string, args ...interface{}) {
	Log("INPUT", format, args...)
}

// LogWatch provides debug logging for watch-mode operations
func LogWatch(format string, args ...interface{}) {
	Log("WATCH", format, args...)
}
