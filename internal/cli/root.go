package cli

import (
	"context"
	"os"

	charmlog "github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/svgtools/svgmin/pkg/buildinfo"
	"github.com/svgtools/svgmin/pkg/observability"
)

// Execute runs the svgmin CLI and returns an error if any command fails.
// This is the main entry point for the CLI application.
//
// The function sets up the root command with all subcommands (optimize,
// analyze, plugins), configures logging based on the --verbose flag, and
// executes the command tree.
//
// Logging:
//   - Default: info level (logs to stderr)
//   - With --verbose (-v): debug level
//
// The logger is attached to the context and accessible to all commands
// via loggerFromContext.
func Execute(ctx context.Context) error {
	g := &globalOpts{bufferKB: defaultBufferKB}

	root := &cobra.Command{
		Use:          appName,
		Short:        "svgmin minifies SVG files as a stream of markup events",
		Long:         `svgmin is a streaming SVG optimization tool. It rewrites documents event by event through a chain of plugins, so memory use stays bounded regardless of file size. The path optimizer reduces numeric precision in path data and strips redundant separators.`,
		Version:      buildinfo.Version,
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			level := charmlog.InfoLevel
			if g.verbose {
				level = charmlog.DebugLevel
			}
			logger := newLogger(os.Stderr, level)
			observability.SetProcessHooks(logHooks{logger: logger})
			cmd.SetContext(withLogger(cmd.Context(), logger))
		},
	}

	root.SetVersionTemplate(buildinfo.Template())
	root.PersistentFlags().BoolVarP(&g.verbose, "verbose", "v", false, "enable verbose logging")
	root.PersistentFlags().IntVarP(&g.bufferKB, "buffer-size", "b", g.bufferKB, "buffer size in KB for reading/writing files")

	root.AddCommand(newOptimizeCmd(g))
	root.AddCommand(newAnalyzeCmd(g))
	root.AddCommand(newPluginsCmd())

	return root.ExecuteContext(ctx)
}
