package commands

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.trai.ch/modkit/internal/build"
	"go.trai.ch/modkit/internal/core/domain"
)

func (c *CLI) newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the application version",
		Run: func(cmd *cobra.Command, _ []string) {
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s (save format %s)\n", build.String(), domain.SaveFormatVersion)
		},
	}
}
