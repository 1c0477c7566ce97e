package cmd

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"github.com/mikopbx/modgen/internal/config"
	"github.com/mikopbx/modgen/internal/fetch"
	"github.com/mikopbx/modgen/internal/output"
	"github.com/mikopbx/modgen/internal/scaffold"
)

// Replaced in tests.
var (
	newFS     = afero.NewOsFs
	newCloner = func(depth int, progress io.Writer) fetch.Cloner {
		return fetch.GitCloner{Depth: depth, Progress: progress}
	}
)

// NewNewCmd creates the new command.
func NewNewCmd(g *config.GlobalConfig) *cobra.Command {
	var flags ScaffoldFlags

	c := &cobra.Command{
		Use:   "new [identifier]",
		Short: "Create a module from the template",
		Long: `Create a new module from the MikoPBX module template.

The identifier must start with "Module", for example ModulePhoneBook. When it
is omitted, ModuleMyNewModPBX is used. The module is written to
<dir>/<identifier>; anything already there is replaced.

Placeholders are rewritten as follows:
  Template          -> PhoneBook   (contents and paths)
  module-template   -> phone-book  (contents and paths)
  mod_tpl           -> phone_book  (contents only)
  module_template   -> phone_book  (contents only)

Examples:
  # Create ./ModulePhoneBook
  modgen new ModulePhoneBook

  # Create the module somewhere else with full history
  modgen new ModulePhoneBook --dir ~/src --depth 0`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(c *cobra.Command, args []string) error {
			return runNew(c, ResolveIdentifier(args), g, flags.Overrides(c))
		},
	}

	flags.AddTo(c)

	return c
}

func runNew(c *cobra.Command, input string, g *config.GlobalConfig, overrides config.Overrides) error {
	cfg, values := g.Loader.Resolve(g.Config, overrides)
	config.LogResolvedValues(values)
	if err := cfg.Validate(); err != nil {
		return err
	}

	parentDir, err := config.ExpandPath(cfg.Output.Dir)
	if err != nil {
		return fmt.Errorf("expanding output dir: %w", err)
	}

	// Verbose runs stream the remote's progress instead of spinning.
	var progress io.Writer
	if g.Verbose {
		progress = os.Stderr
	}
	cloner := &spinnerCloner{
		Cloner:  newCloner(cfg.Clone.Depth, progress),
		enabled: output.IsTTY() && !g.Verbose,
	}

	fs := newFS()
	s, err := scaffold.New(scaffold.Options{
		FS:        fs,
		Cloner:    cloner,
		ParentDir: parentDir,
	})
	if err != nil {
		return err
	}

	res, err := s.Generate(c.Context(), input)
	if err != nil {
		return err
	}

	files, err := collectTree(fs, res.Dir)
	if err != nil {
		return err
	}

	out := c.OutOrStdout()
	fmt.Fprintln(out, output.FormatCheckmark(fmt.Sprintf("Created module %s in %s",
		output.StyleNoun.Render(res.Forms.Identifier), res.Dir)))
	fmt.Fprintln(out)
	fmt.Fprint(out, output.RenderFileTree(res.Forms.Identifier, files))

	return nil
}

// spinnerCloner shows a spinner while the wrapped Cloner runs.
type spinnerCloner struct {
	fetch.Cloner
	enabled bool
}

func (s *spinnerCloner) Clone(ctx context.Context, dir, url string) error {
	return output.RunWithSpinner(ctx, func(ctx context.Context) error {
		return s.Cloner.Clone(ctx, dir, url)
	}, output.WithTitle("Cloning "+url), output.WithSpinner(s.enabled))
}

// collectTree lists dir in the form output.RenderFileTree takes.
func collectTree(fs afero.Fs, dir string) (map[string]string, error) {
	files := make(map[string]string)
	err := afero.Walk(fs, dir, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		rel, err := filepath.Rel(dir, path)
		if err != nil || rel == "." {
			return err
		}
		rel = filepath.ToSlash(rel)
		if info.IsDir() {
			rel += "/"
		}
		files[rel] = ""
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("listing %s: %w", dir, err)
	}
	return files, nil
}
