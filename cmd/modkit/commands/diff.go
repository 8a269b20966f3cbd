package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

func (c *CLI) newDiffCmd() *cobra.Command {
	var worldPath string
	cmd := &cobra.Command{
		Use:   "diff <package>",
		Short: "Compare a saved package with a world",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			entries, err := c.app.Diff(cmd.Context(), worldPath, args[0])
			if err != nil {
				return err
			}
			for _, e := range entries {
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\n", e.Status, e.Path)
			}
			return nil
		},
	}
	cmd.Flags().StringVarP(&worldPath, "world", "w", "world.yaml", "World description to compare against")
	return cmd
}
