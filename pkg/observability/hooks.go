// Package observability provides hooks for metrics, tracing, and logging.
//
// This package enables optional instrumentation without adding hard
// dependencies on specific observability backends. Consumers can register
// hooks at startup to receive events about pipeline runs.
//
// # Architecture
//
// The package uses a simple hooks pattern:
//   - Define hook interfaces for different event categories
//   - Provide no-op default implementations
//   - Allow registration of custom implementations at startup
//
// This approach:
//   - Avoids import cycles (hooks are registered by main, not by libraries)
//   - Keeps the core library dependency-free from observability frameworks
//   - Allows different backends (OpenTelemetry, Prometheus, etc.)
//
// # Usage
//
// Register hooks at application startup:
//
//	func main() {
//	    observability.SetProcessHooks(&myProcessHooks{})
//	    // ... run application
//	}
//
// The pipeline calls hooks to emit events:
//
//	observability.Process().OnRunStart(runID, input)
//	// ... stream events ...
//	observability.Process().OnRunComplete(runID, events, duration, err)
package observability

import (
	"sync"
	"time"
)

// ProcessHooks receives events from the SVG processing pipeline.
type ProcessHooks interface {
	// OnRunStart records the beginning of a pipeline run.
	// input is the source description (file path or "stream").
	OnRunStart(runID, input string)

	// OnRunComplete records the end of a run with the number of
	// markup events processed. err is nil on success.
	OnRunComplete(runID string, events int64, duration time.Duration, err error)

	// OnPluginStat records one plugin statistic after a successful run.
	OnPluginStat(runID, plugin, label, value string)
}

// NoopProcessHooks is a no-op implementation of ProcessHooks.
type NoopProcessHooks struct{}

func (NoopProcessHooks) OnRunStart(string, string)                         {}
func (NoopProcessHooks) OnRunComplete(string, int64, time.Duration, error) {}
func (NoopProcessHooks) OnPluginStat(string, string, string, string)       {}

var (
	processHooks ProcessHooks = NoopProcessHooks{}
	hooksMu      sync.RWMutex
)

// SetProcessHooks registers custom process hooks.
// This should be called once at application startup before any runs.
func SetProcessHooks(h ProcessHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		processHooks = h
	}
}

// Process returns the registered process hooks.
func Process() ProcessHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return processHooks
}

// Reset restores the default no-op hooks. Intended for tests.
func Reset() {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	processHooks = NoopProcessHooks{}
}
