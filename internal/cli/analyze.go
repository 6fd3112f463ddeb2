package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/svgtools/svgmin/pkg/errors"
	"github.com/svgtools/svgmin/pkg/pipeline"
	"github.com/svgtools/svgmin/pkg/plugin"
)

// newAnalyzeCmd creates the analyze command. It runs every plugin at
// fixed defaults against a throwaway output file and reports what the
// optimization would achieve.
func newAnalyzeCmd(g *globalOpts) *cobra.Command {
	return &cobra.Command{
		Use:   "analyze [input]",
		Short: "Show optimization statistics for an SVG file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runAnalyze(cmd.Context(), g, args[0])
		},
	}
}

// analysisConfig is the fixed all-plugins-enabled configuration used by
// analyze. Declared-but-unimplemented plugins register nothing; enabling
// them here keeps the report honest about what would run.
func analysisConfig() plugin.Config {
	return plugin.Config{
		PathOptimizer:   &plugin.PathOptimizerConfig{DecimalPlaces: defaultPathDecimals},
		DedupeGradients: true,
		RemoveIDs:       plugin.IDRemoverConfig{Enabled: true},
		RemoveDataAttrs: true,
	}
}

// analysisOutputPath derives the temporary output path for an analysis
// run, next to the input file.
func analysisOutputPath(input string) string {
	return strings.TrimSuffix(input, filepath.Ext(input)) + ".analysis.svg"
}

// runAnalyze processes the input to a temporary file, prints the
// statistics report, and removes the temporary file. Processing and
// deleting are an ordinary two-step composition, not a special pipeline
// mode.
func runAnalyze(ctx context.Context, g *globalOpts, input string) error {
	if err := errors.ValidateFilePath(input); err != nil {
		return err
	}
	logger := loggerFromContext(ctx)
	logger.Info("analyzing SVG file", "input", input)

	proc := pipeline.New(g.bufferBytes(), logger)
	for _, pl := range plugin.FromConfig(analysisConfig(), logger) {
		proc.Add(pl)
	}

	tempOutput := analysisOutputPath(input)
	spinner := newSpinnerWithContext(ctx, fmt.Sprintf("Analyzing %s...", filepath.Base(input)))
	spinner.Start()
	err := proc.ProcessFile(input, tempOutput)
	spinner.Stop()
	if err != nil {
		return err
	}

	renderReport(os.Stdout, proc.Stats())

	if err := os.Remove(tempOutput); err != nil {
		return errors.Wrap(errors.ErrCodeIO, err, "remove %s", tempOutput)
	}
	return nil
}
