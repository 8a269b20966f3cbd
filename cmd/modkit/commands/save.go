package commands

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.trai.ch/modkit/internal/app"
)

func (c *CLI) newSaveCmd() *cobra.Command {
	var (
		worldPath string
		all       bool
	)
	cmd := &cobra.Command{
		Use:   "save [packages...]",
		Short: "Save the objects of packages in a world",
		Args:  cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 && !all {
				_ = cmd.Help()
				return nil
			}

			var (
				report *app.SaveReport
				err    error
			)
			if all {
				report, err = c.app.SaveAll(cmd.Context(), worldPath)
			} else {
				report, err = c.app.Save(cmd.Context(), worldPath, args)
			}
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			for _, p := range report.Packages {
				_, _ = fmt.Fprintf(out, "%s\t%s\t%d records\n", p.Status, p.Package, p.Records)
			}
			for _, class := range report.UnhandledNativeClasses {
				_, _ = fmt.Fprintf(out, "warning: native state of %s is not saved\n", class)
			}
			return nil
		},
	}
	cmd.Flags().StringVarP(&worldPath, "world", "w", "world.yaml", "World description to save from")
	cmd.Flags().BoolVar(&all, "all", false, "Save every non-script package of the world")
	return cmd
}
