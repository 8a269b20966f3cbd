package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

func (c *CLI) newLoadCmd() *cobra.Command {
	var worldPath, outPath string
	cmd := &cobra.Command{
		Use:   "load <package>",
		Short: "Restore a saved package into a world",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			report, err := c.app.Load(cmd.Context(), worldPath, args[0], outPath)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			_, _ = fmt.Fprintf(out, "%s\t%d resolved\t%d unresolved\n", report.Package, report.Resolved, report.Unresolved)
			for _, pkg := range report.MissingPackages {
				_, _ = fmt.Fprintf(out, "missing package %s\n", pkg)
			}
			return nil
		},
	}
	cmd.Flags().StringVarP(&worldPath, "world", "w", "world.yaml", "World description to load into")
	cmd.Flags().StringVarP(&outPath, "out", "o", "", "Write the resulting world to this path")
	return cmd
}
