package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/svgtools/svgmin/pkg/plugin"
)

// newPluginsCmd creates the plugins command, which lists every
// registered plugin with its controlling flags. Declared plugins that
// are not implemented yet are shown as such rather than hidden.
func newPluginsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "plugins",
		Short: "List available plugins",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			out := cmd.OutOrStdout()
			fmt.Fprintln(out, StyleTitle.Render("Available plugins:"))
			for i, b := range plugin.Builders() {
				status := StyleSuccess.Render("available")
				if !b.Implemented() {
					status = StyleDim.Render("not yet implemented")
				}
				fmt.Fprintf(out, "  %d. %s  %s\n", i+1, StyleValue.Render(b.Name), status)
				for _, f := range b.Flags {
					fmt.Fprintf(out, "     %s\n", StyleDim.Render(f))
				}
				fmt.Fprintf(out, "     %s\n", b.Summary)
			}
		},
	}
}
