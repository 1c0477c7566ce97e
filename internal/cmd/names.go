package cmd

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/mikopbx/modgen/internal/config"
	"github.com/mikopbx/modgen/internal/naming"
	"github.com/mikopbx/modgen/internal/output"
	"github.com/mikopbx/modgen/internal/rewrite"
)

// namesView is the machine-readable output of `modgen names`.
type namesView struct {
	naming.Forms `yaml:",inline"`

	Replacements rewrite.Replacements `json:"replacements" yaml:"replacements"`
}

// NewNamesCmd creates the names command.
func NewNamesCmd(_ *config.GlobalConfig) *cobra.Command {
	var flags OutputFlags

	c := &cobra.Command{
		Use:   "names <identifier>",
		Short: "Show the names derived from an identifier",
		Long: `Show the names derived from a module identifier and the placeholder
replacements "modgen new" would apply. Nothing is written to disk.

Examples:
  modgen names ModulePhoneBook
  modgen names ModuleMyNewModPBX -o json`,
		Args: cobra.ExactArgs(1),
		RunE: func(c *cobra.Command, args []string) error {
			return runNames(c, args[0], &flags)
		},
	}

	flags.AddTo(c)

	return c
}

func runNames(c *cobra.Command, input string, flags *OutputFlags) error {
	outputFormat, err := flags.Parse()
	if err != nil {
		return err
	}

	identifier, err := naming.Resolve(input)
	if err != nil {
		return err
	}
	forms := naming.Derive(identifier, naming.Prefix)
	reps := rewrite.NewReplacements(forms)

	out := c.OutOrStdout()
	if outputFormat != output.FormatTable {
		return output.Encode(out, outputFormat, namesView{Forms: forms, Replacements: reps})
	}

	fmt.Fprintln(out, output.RenderTable([]string{"FORM", "VALUE"}, formRows(forms)))
	fmt.Fprintln(out, output.RenderTable([]string{"TOKEN", "VALUE", "PATHS"}, tokenRows(reps)))

	return nil
}

func formRows(forms naming.Forms) [][]string {
	return [][]string{
		{"identifier", forms.Identifier},
		{"stripped", forms.Stripped},
		{"dash", forms.Dash},
		{"underscore", forms.Underscore},
	}
}

// tokenRows lists replacements in application order. PATHS marks tokens
// that are also applied to file and directory names.
func tokenRows(reps rewrite.Replacements) [][]string {
	rows := make([][]string, 0, len(reps))
	for _, r := range reps {
		rows = append(rows, []string{r.Token, r.Value, strconv.FormatBool(r.Names)})
	}
	return rows
}
