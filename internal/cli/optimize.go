package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/svgtools/svgmin/pkg/errors"
	"github.com/svgtools/svgmin/pkg/pipeline"
	"github.com/svgtools/svgmin/pkg/plugin"
)

// optimizeOpts holds the command-line flags for the optimize command.
type optimizeOpts struct {
	optimizePaths   bool     // enable the path optimizer
	pathDecimals    int      // precision of the path optimizer
	dedupeGradients bool     // enable gradient deduplication (declared)
	removeIDs       bool     // enable ID removal (declared)
	preserveIDs     []string // IDs to keep when removal is enabled
	removeDataAttrs bool     // enable data-* removal (declared)
	configFile      string   // optional TOML configuration file
}

// newOptimizeCmd creates the optimize command, the main entry point for
// minifying a file. Plugins are selected via flags or a TOML config
// file; flags explicitly set on the command line override file values.
func newOptimizeCmd(g *globalOpts) *cobra.Command {
	opts := optimizeOpts{pathDecimals: defaultPathDecimals}

	cmd := &cobra.Command{
		Use:   "optimize [input] [output]",
		Short: "Optimize an SVG file",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := opts.config(cmd.Flags())
			if err != nil {
				return err
			}
			return runOptimize(cmd.Context(), g, cfg, args[0], args[1])
		},
	}

	cmd.Flags().BoolVar(&opts.optimizePaths, "optimize-paths", false, "enable path optimization")
	cmd.Flags().IntVar(&opts.pathDecimals, "path-decimals", opts.pathDecimals, "decimal places for path optimization")
	cmd.Flags().BoolVar(&opts.dedupeGradients, "dedupe-gradients", false, "enable gradient deduplication")
	cmd.Flags().BoolVar(&opts.removeIDs, "remove-ids", false, "enable ID removal")
	cmd.Flags().StringSliceVar(&opts.preserveIDs, "preserve-ids", nil, "preserve specified IDs (comma-separated)")
	cmd.Flags().BoolVar(&opts.removeDataAttrs, "remove-data-attrs", false, "enable data attribute removal")
	cmd.Flags().StringVarP(&opts.configFile, "config", "c", "", "plugin configuration file (TOML)")

	return cmd
}

// config builds the plugin configuration from the optional config file
// and the flags. A flag changed on the command line wins over the file.
func (o *optimizeOpts) config(flags *pflag.FlagSet) (plugin.Config, error) {
	var cfg plugin.Config
	if o.configFile != "" {
		var err error
		if cfg, err = loadConfig(o.configFile); err != nil {
			return plugin.Config{}, err
		}
	}

	if flags.Changed("optimize-paths") {
		if o.optimizePaths {
			cfg.PathOptimizer = &plugin.PathOptimizerConfig{DecimalPlaces: o.pathDecimals}
		} else {
			cfg.PathOptimizer = nil
		}
	}
	if flags.Changed("path-decimals") && cfg.PathOptimizer != nil {
		cfg.PathOptimizer.DecimalPlaces = o.pathDecimals
	}
	if flags.Changed("dedupe-gradients") {
		cfg.DedupeGradients = o.dedupeGradients
	}
	if flags.Changed("remove-ids") {
		cfg.RemoveIDs.Enabled = o.removeIDs
	}
	if flags.Changed("preserve-ids") {
		cfg.RemoveIDs.Preserve = o.preserveIDs
	}
	if flags.Changed("remove-data-attrs") {
		cfg.RemoveDataAttrs = o.removeDataAttrs
	}

	if cfg.PathOptimizer != nil {
		if err := errors.ValidatePrecision(cfg.PathOptimizer.DecimalPlaces); err != nil {
			return plugin.Config{}, err
		}
	}
	return cfg, nil
}

// runOptimize assembles the pipeline from the configuration and runs it
// once over the input file.
func runOptimize(ctx context.Context, g *globalOpts, cfg plugin.Config, input, output string) error {
	if err := errors.ValidateFilePath(input); err != nil {
		return err
	}
	if err := errors.ValidateOutputPath(input, output); err != nil {
		return err
	}
	logger := loggerFromContext(ctx)

	proc := pipeline.New(g.bufferBytes(), logger)
	for _, pl := range plugin.FromConfig(cfg, logger) {
		proc.Add(pl)
	}

	logger.Debug("processing file",
		"input", input, "output", output, "plugins", len(proc.Plugins()))

	prog := newProgress(logger)
	spinner := newSpinnerWithContext(ctx, fmt.Sprintf("Optimizing %s...", filepath.Base(input)))
	spinner.Start()
	err := proc.ProcessFile(input, output)
	spinner.Stop()
	if err != nil {
		return err
	}

	prog.done(fmt.Sprintf("Optimized %s -> %s", input, output))
	if g.verbose {
		renderReport(os.Stdout, proc.Stats())
	}
	return nil
}
