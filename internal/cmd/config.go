package cmd

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/mikopbx/modgen/internal/config"
	oerrors "github.com/mikopbx/modgen/internal/errors"
	"github.com/mikopbx/modgen/internal/output"
)

// NewConfigCmd creates the config command group.
func NewConfigCmd(g *config.GlobalConfig) *cobra.Command {
	c := &cobra.Command{
		Use:   "config",
		Short: "Configuration management",
		Long:  `Configuration management for modgen.`,
	}

	c.AddCommand(NewConfigInitCmd(g))

	return c
}

// NewConfigInitCmd creates the config init command.
func NewConfigInitCmd(g *config.GlobalConfig) *cobra.Command {
	var force bool

	c := &cobra.Command{
		Use:   "init",
		Short: "Initialize default configuration",
		Long: `Write a configuration file with default values.

The file is created at $XDG_CONFIG_HOME/modgen/config.yaml unless --config or
MODGEN_CONFIG points elsewhere.

Examples:
  # Initialize configuration
  modgen config init

  # Overwrite existing configuration
  modgen config init --force`,
		Args: cobra.NoArgs,
		RunE: func(c *cobra.Command, args []string) error {
			return runConfigInit(c, g, force)
		},
	}

	c.Flags().BoolVarP(&force, "force", "f", false, "Overwrite existing configuration")

	return c
}

func runConfigInit(c *cobra.Command, g *config.GlobalConfig, force bool) error {
	path, err := config.ExpandPath(g.ConfigPath)
	if err != nil {
		return err
	}

	err = config.Write(newFS(), path, config.DefaultConfig(), force)
	switch {
	case errors.Is(err, os.ErrExist):
		return &oerrors.DetailError{
			Type:     "config exists",
			Message:  "configuration already exists",
			Location: path,
			Hint:     "Use --force to overwrite existing configuration.",
			Cause:    err,
		}
	case err != nil:
		return err
	}

	output.Debug("config written", "path", path)
	fmt.Fprintln(c.OutOrStdout(), output.FormatCheckmark("Configuration initialized at "+output.StyleNoun.Render(path)))

	return nil
}
