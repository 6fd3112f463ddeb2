// Package pkg provides the core libraries for svgmin SVG optimization.
//
// # Overview
//
// svgmin minifies SVG documents as a stream of markup events. The pkg
// directory is organized into six areas:
//
//  1. [xmlstream] - Streaming markup reader/writer with byte-exact replay
//  2. [pathdata] - Path-data tokenizer and numeric minifier
//  3. [plugin] - Transformation plugins and their registry
//  4. [pipeline] - Orchestration (read → transform → write)
//  5. [observability] - Process lifecycle hooks
//  6. [errors] - Structured error codes and input validation
//
// # Architecture
//
// The typical data flow through svgmin:
//
//	SVG input stream
//	         ↓
//	    [xmlstream] package (tokenize markup into events)
//	         ↓
//	    [plugin] package (rewrite element events)
//	         ↓
//	    [xmlstream] package (serialize events back to markup)
//	         ↓
//	    SVG output stream
//
// # Quick Start
//
// Optimize a file with the path optimizer:
//
//	import (
//	    "github.com/svgtools/svgmin/pkg/pipeline"
//	    "github.com/svgtools/svgmin/pkg/plugin"
//	)
//
//	proc := pipeline.New(0, nil)
//	proc.Add(plugin.NewPathOptimizer(2))
//	if err := proc.ProcessFile("in.svg", "out.svg"); err != nil {
//	    // PARSE_ERROR, IO_ERROR, PLUGIN_ERROR or EMPTY_DOCUMENT
//	}
//	stats := proc.Stats()
//
// # Main Packages
//
// [xmlstream] - Forward-only event reader and writer. Events carry the
// raw tag text so untouched markup round-trips byte-for-byte; only
// elements a plugin rewrites are re-serialized.
//
// [pathdata] - Lexer and minifier for the SVG path mini-language.
// Numbers are re-rendered at a fixed precision, redundant separators
// are dropped, and malformed runs pass through verbatim.
//
// [plugin] - The Plugin interface (Init, ProcessElement, Finalize,
// Stats) plus the builder registry that maps configuration to plugin
// instances. The path optimizer lives here.
//
// [pipeline] - The Processor drives a full run: initializes plugins,
// streams events through them, finalizes, and collects per-run and
// per-plugin statistics.
//
// [observability] - Pluggable hooks for run start/completion and plugin
// statistics, with no-op defaults.
//
// [errors] - Error codes shared by the pipeline and the CLI, and
// conservative validation for user-supplied paths and precision.
//
// # Testing
//
// Run tests:
//
//	go test ./pkg/...              # All tests
//	go test ./pkg/pathdata/...     # Specific package
//
// [xmlstream]: https://pkg.go.dev/github.com/svgtools/svgmin/pkg/xmlstream
// [pathdata]: https://pkg.go.dev/github.com/svgtools/svgmin/pkg/pathdata
// [plugin]: https://pkg.go.dev/github.com/svgtools/svgmin/pkg/plugin
// [pipeline]: https://pkg.go.dev/github.com/svgtools/svgmin/pkg/pipeline
// [observability]: https://pkg.go.dev/github.com/svgtools/svgmin/pkg/observability
// [errors]: https://pkg.go.dev/github.com/svgtools/svgmin/pkg/errors
package pkg
