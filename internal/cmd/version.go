package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mikopbx/modgen/internal/config"
	"github.com/mikopbx/modgen/internal/fetch"
	"github.com/mikopbx/modgen/internal/version"
)

// NewVersionCmd creates the version command.
func NewVersionCmd(_ *config.GlobalConfig) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Long: `Show modgen version information.

Displays:
  - modgen version, commit, and build date
  - Go toolchain and platform
  - template repository`,
		Args: cobra.NoArgs,
		RunE: func(c *cobra.Command, args []string) error {
			info := version.GetInfo()
			out := c.OutOrStdout()
			fmt.Fprintln(out, info.String())
			fmt.Fprintf(out, "  Template: %s\n", fetch.SourceURL)
			return nil
		},
	}
}
