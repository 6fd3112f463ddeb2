package cli

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/svgtools/svgmin/pkg/pipeline"
)

const reportRule = "--------------------"

// renderReport prints the processing statistics of a pipeline run,
// followed by one block per plugin with its own statistics.
func renderReport(w io.Writer, stats pipeline.Stats) {
	fmt.Fprintln(w)
	fmt.Fprintln(w, StyleTitle.Render("Processing Statistics"))
	fmt.Fprintln(w, StyleDim.Render(reportRule))
	writeStat(w, "Run", stats.RunID)
	writeStat(w, "Events processed", fmt.Sprintf("%d", stats.Events))
	writeStat(w, "Processing time", formatDuration(stats.ProcessingTime))
	writeStat(w, "Total time", formatDuration(stats.TotalTime))
	fmt.Fprintln(w, StyleDim.Render(reportRule))

	for _, unit := range stats.Plugins {
		fmt.Fprintln(w)
		fmt.Fprintln(w, StyleTitle.Render(unit.Name+" Statistics"))
		fmt.Fprintln(w, StyleDim.Render(reportRule))
		for _, s := range unit.Stats {
			writeStat(w, s.Label, s.Value)
		}
		fmt.Fprintln(w, StyleDim.Render(reportRule))
	}
}

// writeStat prints one aligned label/value line.
func writeStat(w io.Writer, label, value string) {
	padded := label + ":" + strings.Repeat(" ", max(1, 20-len(label)))
	fmt.Fprintf(w, "%s%s\n", StyleDim.Render(padded), StyleNumber.Render(value))
}

// formatDuration renders a duration at millisecond granularity.
func formatDuration(d time.Duration) string {
	return d.Round(time.Millisecond).String()
}
