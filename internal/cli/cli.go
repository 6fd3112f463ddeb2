// Package cli implements the svgmin command-line interface.
//
// This package provides commands for optimizing SVG files, analyzing the
// savings the optimizer plugins would achieve, and listing the available
// plugins. The CLI is built using cobra and supports verbose logging via
// the charmbracelet/log library.
//
// # Commands
//
// The main commands are:
//   - optimize: Minify an SVG file with the configured plugins
//   - analyze: Report optimization statistics without keeping the output
//   - plugins: List available and declared plugins
//
// # Logging
//
// All commands support --verbose (-v) for debug-level logging. Loggers
// are passed through context.Context to allow structured progress
// tracking.
//
// # Example
//
//	import "github.com/svgtools/svgmin/internal/cli"
//
//	func main() {
//	    if err := cli.Execute(context.Background()); err != nil {
//	        os.Exit(1)
//	    }
//	}
package cli

const (
	// appName is the application name used for display.
	appName = "svgmin"

	// defaultBufferKB is the default read/write buffer size in KiB.
	defaultBufferKB = 8

	// defaultPathDecimals is the default precision of the path
	// optimizer.
	defaultPathDecimals = 2
)

// globalOpts carries the persistent flags shared by all commands.
type globalOpts struct {
	verbose  bool
	bufferKB int
}

// bufferBytes returns the configured buffer size in bytes. Non-positive
// values fall back to the default.
func (g *globalOpts) bufferBytes() int {
	if g.bufferKB <= 0 {
		return defaultBufferKB * 1024
	}
	return g.bufferKB * 1024
}
