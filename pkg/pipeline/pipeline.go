// Package pipeline provides the streaming SVG transformation pipeline.
//
// The Processor pulls markup events from an input stream, offers every
// start and empty element to each registered plugin in order, and writes
// the (possibly mutated) events to the output stream. The document is
// never materialized: memory use is bounded by the largest single event,
// independent of document size.
//
// # Lifecycle
//
// A run moves through Idle → Initializing → Streaming → Finalizing →
// Done, or to Failed from any state on the first error. There are no
// retries: a run either completes or fails, and a mid-stream failure can
// leave a truncated output file behind (the sink is written
// incrementally and is not rolled back).
//
// # Usage
//
//	proc := pipeline.New(8*1024, logger)
//	proc.Add(plugin.NewPathOptimizer(2))
//	if err := proc.ProcessFile("in.svg", "out.svg"); err != nil {
//	    log.Fatal(err)
//	}
//	stats := proc.Stats()
package pipeline

import (
	"time"

	"github.com/google/uuid"

	"github.com/svgtools/svgmin/pkg/plugin"
)

// state tracks the lifecycle position of the current run.
type state int

const (
	stateIdle state = iota
	stateInitializing
	stateStreaming
	stateFinalizing
	stateDone
	stateFailed
)

// String returns a stable name for the state, used in debug logs.
func (s state) String() string {
	switch s {
	case stateIdle:
		return "idle"
	case stateInitializing:
		return "initializing"
	case stateStreaming:
		return "streaming"
	case stateFinalizing:
		return "finalizing"
	case stateDone:
		return "done"
	case stateFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// Run is the ephemeral record of one pipeline execution. It is owned
// exclusively by the Processor and replaced on the next run.
type Run struct {
	// ID uniquely identifies the run in logs and hooks.
	ID uuid.UUID

	// Started is the instant the run began.
	Started time.Time

	// ProcessingTime is the duration of the streaming phase.
	ProcessingTime time.Duration

	// Events counts every markup event successfully processed.
	Events int64
}

// UnitStats carries one plugin's statistics for reporting.
type UnitStats struct {
	Name  string
	Stats []plugin.Stat
}

// Stats is the reporting view of the most recent run.
type Stats struct {
	RunID          string
	Events         int64
	ProcessingTime time.Duration
	TotalTime      time.Duration
	Plugins        []UnitStats
}
