// Package commands implements the CLI commands for modkit.
package commands

import (
	"context"
	"io"

	"github.com/spf13/cobra"
	"go.trai.ch/modkit/internal/app"
	"go.trai.ch/modkit/internal/core/ports"
)

// CLI represents the command line interface for modkit.
type CLI struct {
	app     *app.App
	logger  ports.Logger
	rootCmd *cobra.Command
}

// New creates a new CLI instance with the given app.
func New(a *app.App, logger ports.Logger) *CLI {
	rootCmd := &cobra.Command{
		Use:           "modkit",
		Short:         "Save, restore and compare mod object hierarchies",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.PersistentFlags().StringP("dir", "C", ".", "Directory holding modkit.yaml")
	rootCmd.PersistentFlags().BoolP("quiet", "q", false, "Suppress log output")

	c := &CLI{
		app:     a,
		logger:  logger,
		rootCmd: rootCmd,
	}

	rootCmd.PersistentPreRunE = func(cmd *cobra.Command, _ []string) error {
		dir, err := cmd.Flags().GetString("dir")
		if err != nil {
			return err
		}
		c.app.WithRoot(dir)

		quiet, err := cmd.Flags().GetBool("quiet")
		if err != nil {
			return err
		}
		if quiet {
			if out, ok := c.logger.(interface{ SetOutput(w io.Writer) }); ok {
				out.SetOutput(io.Discard)
			}
		}
		return nil
	}

	rootCmd.AddCommand(c.newSaveCmd())
	rootCmd.AddCommand(c.newLoadCmd())
	rootCmd.AddCommand(c.newDiffCmd())
	rootCmd.AddCommand(c.newDepsCmd())
	rootCmd.AddCommand(c.newListCmd())
	rootCmd.AddCommand(c.newVersionCmd())

	return c
}

// Execute runs the root command with the given context.
func (c *CLI) Execute(ctx context.Context) error {
	c.rootCmd.SetContext(ctx)
	return c.rootCmd.Execute()
}

// SetArgs sets the arguments for the root command. Used for testing.
func (c *CLI) SetArgs(args []string) {
	c.rootCmd.SetArgs(args)
}

// SetOutput redirects command output. Used for testing.
func (c *CLI) SetOutput(w io.Writer) {
	c.rootCmd.SetOut(w)
	c.rootCmd.SetErr(w)
}
