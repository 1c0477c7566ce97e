package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mikopbx/modgen/internal/config"
	"github.com/mikopbx/modgen/internal/output"
)

// ScaffoldFlags holds flags for commands that generate modules.
type ScaffoldFlags struct {
	Dir   string
	Depth int
}

// AddTo registers the scaffold flags on the given cobra command.
func (f *ScaffoldFlags) AddTo(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.Dir, "dir", ".",
		"Parent directory of the new module (env: MODGEN_OUTPUT_DIR)")
	cmd.Flags().IntVar(&f.Depth, "depth", 1,
		"Clone depth, 0 for full history (env: MODGEN_CLONE_DEPTH)")
}

// Overrides returns the flags the user set explicitly. Unset flags stay nil
// so env and config values are not shadowed by flag defaults.
func (f *ScaffoldFlags) Overrides(cmd *cobra.Command) config.Overrides {
	var o config.Overrides
	if cmd.Flags().Changed("dir") {
		o.OutputDir = &f.Dir
	}
	if cmd.Flags().Changed("depth") {
		o.CloneDepth = &f.Depth
	}
	return o
}

// OutputFlags holds the output format flag.
type OutputFlags struct {
	Format string
}

// AddTo registers the output flag on the given cobra command.
func (f *OutputFlags) AddTo(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&f.Format, "output", "o", "table",
		"Output format: table, yaml, json")
}

// Parse validates the format.
func (f *OutputFlags) Parse() (output.OutputFormat, error) {
	format, ok := output.ParseOutputFormat(f.Format)
	if !ok {
		return "", fmt.Errorf("invalid output format %q (valid: %v)", f.Format, output.ValidFormats())
	}
	return format, nil
}

// ResolveIdentifier returns the identifier from command args. An omitted
// identifier is the empty string.
func ResolveIdentifier(args []string) string {
	if len(args) > 0 {
		return args[0]
	}
	return ""
}
